package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/maplol/adaptix-mvp/internal/dto"
	"github.com/maplol/adaptix-mvp/internal/service"
	"github.com/maplol/adaptix-mvp/pkg/response"
)

// ScheduleHandler 排班网格 HTTP 处理器
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler 创建 ScheduleHandler
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// ── 查询 ──

// Meta 班次类型、时间与地点选项
// GET /api/v1/schedule/meta
func (h *ScheduleHandler) Meta(c *gin.Context) {
	response.OK(c, h.scheduleSvc.Meta())
}

// Window 计算视图窗口
// GET /api/v1/schedule/window?anchor=&mode=&nav=
func (h *ScheduleHandler) Window(c *gin.Context) {
	var q dto.WindowQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, msgInvalidParams)
		return
	}

	window, err := h.scheduleSvc.Window(c.Request.Context(), &q)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, window)
}

// Grid 网格渲染数据
// GET /api/v1/schedule/grid?anchor=&mode=&nav=&location=
func (h *ScheduleHandler) Grid(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}
	var q dto.GridQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, msgInvalidParams)
		return
	}

	grid, err := h.scheduleSvc.BuildGrid(c.Request.Context(), sid, &q)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, grid)
}

// Cell 单元格内全部班次
// GET /api/v1/schedule/cell?employee_id=&date=
func (h *ScheduleHandler) Cell(c *gin.Context) {
	var q dto.CellTarget
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, msgInvalidParams)
		return
	}

	shifts, err := h.scheduleSvc.ListShiftsForCell(c.Request.Context(), q.EmployeeID, q.Date)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OKList(c, shifts, len(shifts))
}

// ── 班次 CRUD ──

// CreateShift 新建班次；employee_id 为空即空缺班次
// POST /api/v1/schedule/shifts
func (h *ScheduleHandler) CreateShift(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}
	var req dto.ShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, msgInvalidParams)
		return
	}

	shift, err := h.scheduleSvc.CreateShift(c.Request.Context(), sid, &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.Created(c, shift)
}

// UpdateShift 整体替换班次字段
// PUT /api/v1/schedule/shifts/:id
func (h *ScheduleHandler) UpdateShift(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}
	var req dto.ShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, msgInvalidParams)
		return
	}

	result, err := h.scheduleSvc.UpdateShift(c.Request.Context(), sid, c.Param("id"), &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, result)
}

// DeleteShift 删除班次（幂等）
// DELETE /api/v1/schedule/shifts/:id
func (h *ScheduleHandler) DeleteShift(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}

	deleted, err := h.scheduleSvc.DeleteShift(c.Request.Context(), sid, c.Param("id"))
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, gin.H{"deleted": deleted})
}

// DuplicateShift 复制到次日
// POST /api/v1/schedule/shifts/:id/duplicate
func (h *ScheduleHandler) DuplicateShift(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}

	shift, err := h.scheduleSvc.DuplicateShift(c.Request.Context(), sid, c.Param("id"))
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.Created(c, shift)
}

// MoveShift 改派到目标单元格
// POST /api/v1/schedule/shifts/:id/move
func (h *ScheduleHandler) MoveShift(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}
	var req dto.CellTarget
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, msgInvalidParams)
		return
	}

	result, err := h.scheduleSvc.MoveShift(c.Request.Context(), sid, c.Param("id"), &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, result)
}

// ── 剪贴板 ──

// CopyShift 复制到会话剪贴板
// POST /api/v1/schedule/shifts/:id/copy
func (h *ScheduleHandler) CopyShift(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}

	shift, err := h.scheduleSvc.CopyShift(c.Request.Context(), sid, c.Param("id"))
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, shift)
}

// PasteShift 将剪贴板快照粘贴到目标单元格
// POST /api/v1/schedule/paste
func (h *ScheduleHandler) PasteShift(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}
	var req dto.CellTarget
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, msgInvalidParams)
		return
	}

	shift, err := h.scheduleSvc.PasteShift(c.Request.Context(), sid, &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.Created(c, shift)
}

// ── 溢出弹层 ──

// ToggleOverflow 打开或关闭单元格的溢出弹层
// PUT /api/v1/schedule/overflow
func (h *ScheduleHandler) ToggleOverflow(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}
	var req dto.CellTarget
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, msgInvalidParams)
		return
	}

	response.OK(c, h.scheduleSvc.ToggleOverflow(sid, &req))
}

// CloseOverflow 点击外部或按 Esc 关闭弹层
// DELETE /api/v1/schedule/overflow?reason=
func (h *ScheduleHandler) CloseOverflow(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}
	var req dto.CloseOverflowRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, msgInvalidParams)
		return
	}

	response.OK(c, h.scheduleSvc.CloseOverflow(sid, req.Reason))
}

// ── 拖拽 ──

// DragStart 开始拖拽
// POST /api/v1/schedule/drag/start
func (h *ScheduleHandler) DragStart(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}
	var req dto.DragStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, msgInvalidParams)
		return
	}

	state, err := h.scheduleSvc.BeginDrag(c.Request.Context(), sid, req.ShiftID)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, state)
}

// Drop 在目标单元格放下
// POST /api/v1/schedule/drag/drop
func (h *ScheduleHandler) Drop(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}
	var req dto.CellTarget
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, msgInvalidParams)
		return
	}

	result, err := h.scheduleSvc.Drop(c.Request.Context(), sid, &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, result)
}

// DragCancel 在网格之外释放
// POST /api/v1/schedule/drag/cancel
func (h *ScheduleHandler) DragCancel(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}

	response.OK(c, h.scheduleSvc.CancelDrag(sid))
}

// handleScheduleError 统一处理排班模块业务错误
func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShiftNotFound):
		response.NotFound(c, 20101, "Смена не найдена")
	case errors.Is(err, service.ErrInvalidDropTarget):
		response.BadRequest(c, 20102, "Недопустимая ячейка назначения")
	case errors.Is(err, service.ErrClipboardEmpty):
		response.BadRequest(c, 20103, "Буфер обмена пуст")
	case errors.Is(err, service.ErrAlreadyDragging):
		response.Conflict(c, 20104, "Другая смена уже перетаскивается")
	case errors.Is(err, service.ErrNotDragging):
		response.BadRequest(c, 20105, "Нет перетаскиваемой смены")
	case errors.Is(err, service.ErrInvalidShiftType):
		response.BadRequest(c, 20106, "Неизвестный тип смены")
	case errors.Is(err, service.ErrInvalidViewMode):
		response.BadRequest(c, 20107, "Неизвестный режим просмотра")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 20108, "Неверный формат даты")
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 20109, "Сотрудник не найден")
	default:
		response.InternalError(c)
	}
}
