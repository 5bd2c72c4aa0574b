package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/maplol/adaptix-mvp/internal/dto"
	"github.com/maplol/adaptix-mvp/internal/service"
	"github.com/maplol/adaptix-mvp/pkg/response"
)

// ExchangeHandler 班次交换 HTTP 处理器
type ExchangeHandler struct {
	exchangeSvc service.ExchangeService
}

// NewExchangeHandler 创建 ExchangeHandler
func NewExchangeHandler(exchangeSvc service.ExchangeService) *ExchangeHandler {
	return &ExchangeHandler{exchangeSvc: exchangeSvc}
}

// Board 交换看板：当前员工、空缺班次与本人班次
// GET /api/v1/exchange
func (h *ExchangeHandler) Board(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	board, err := h.exchangeSvc.Board(c.Request.Context(), employeeID)
	if err != nil {
		h.handleExchangeError(c, err)
		return
	}

	response.OK(c, board)
}

// OpenShifts 空缺班次
// GET /api/v1/exchange/open
func (h *ExchangeHandler) OpenShifts(c *gin.Context) {
	shifts, err := h.exchangeSvc.OpenShifts(c.Request.Context())
	if err != nil {
		h.handleExchangeError(c, err)
		return
	}

	response.OKList(c, shifts, len(shifts))
}

// MyShifts 本人班次
// GET /api/v1/exchange/mine
func (h *ExchangeHandler) MyShifts(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	shifts, err := h.exchangeSvc.MyShifts(c.Request.Context(), employeeID)
	if err != nil {
		h.handleExchangeError(c, err)
		return
	}

	response.OKList(c, shifts, len(shifts))
}

// TakeShift 领取空缺班次
// POST /api/v1/exchange/:id/take
func (h *ExchangeHandler) TakeShift(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	result, err := h.exchangeSvc.TakeShift(c.Request.Context(), sid, employeeID, c.Param("id"))
	if err != nil {
		h.handleExchangeError(c, err)
		return
	}

	response.OK(c, result)
}

// RequestSwap 发起换班申请
// POST /api/v1/exchange/:id/swap
func (h *ExchangeHandler) RequestSwap(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}
	var req dto.SwapShiftRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, 10001, msgInvalidParams)
			return
		}
	}

	swap, err := h.exchangeSvc.RequestSwap(c.Request.Context(), sid, employeeID, c.Param("id"), &req)
	if err != nil {
		h.handleExchangeError(c, err)
		return
	}

	response.Created(c, swap)
}

func (h *ExchangeHandler) handleExchangeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShiftNotFound):
		response.NotFound(c, 20101, "Смена не найдена")
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 50301, "Сотрудник не найден")
	case errors.Is(err, service.ErrShiftNotOpen):
		response.Conflict(c, 50401, "Смена уже занята")
	case errors.Is(err, service.ErrShiftNotYours):
		response.Forbidden(c, 50402, "Можно обменять только свою смену")
	case errors.Is(err, service.ErrSwapAlreadyAsked):
		response.Conflict(c, 50403, "Запрос на обмен уже отправлен")
	default:
		response.InternalError(c)
	}
}
