package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/maplol/adaptix-mvp/internal/dto"
	"github.com/maplol/adaptix-mvp/internal/model"
	"github.com/maplol/adaptix-mvp/internal/repository"
	pkgerrors "github.com/maplol/adaptix-mvp/pkg/errors"
	"github.com/maplol/adaptix-mvp/pkg/metrics"
)

// ── 换班模块业务错误 ──

var (
	ErrShiftNotOpen     = errors.New("班次不是空缺班次")
	ErrShiftNotYours    = errors.New("只能对自己的班次发起换班")
	ErrSwapAlreadyAsked = errors.New("该班次已有待处理的换班申请")
)

// ExchangeService 换班市场业务接口
type ExchangeService interface {
	Board(ctx context.Context, employeeID string) (*dto.ExchangeBoardResponse, error)
	OpenShifts(ctx context.Context) ([]model.Shift, error)
	MyShifts(ctx context.Context, employeeID string) ([]model.Shift, error)
	// TakeShift 领取空缺班次，自动批准
	TakeShift(ctx context.Context, sid, employeeID, shiftID string) (*dto.TakeShiftResponse, error)
	// RequestSwap 对自己的班次发起换班申请，等待经理处理
	RequestSwap(ctx context.Context, sid, employeeID, shiftID string, req *dto.SwapShiftRequest) (*model.SwapRequest, error)
}

type exchangeService struct {
	repo     *repository.Repository
	notifier NotificationService
	now      func() time.Time
	logger   *zap.Logger
}

// NewExchangeService 创建 ExchangeService 实例
func NewExchangeService(repo *repository.Repository, notifier NotificationService, logger *zap.Logger) ExchangeService {
	return &exchangeService{repo: repo, notifier: notifier, now: time.Now, logger: logger}
}

func (s *exchangeService) employee(ctx context.Context, id string) (*model.Employee, error) {
	e, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return e, nil
}

func (s *exchangeService) shift(ctx context.Context, id string) (*model.Shift, error) {
	sh, err := s.repo.Shift.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("查询班次失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return sh, nil
}

func (s *exchangeService) OpenShifts(ctx context.Context) ([]model.Shift, error) {
	shifts, err := s.repo.Shift.ListOpen(ctx)
	if err != nil {
		s.logger.Error("查询空缺班次失败", zap.Error(err))
		return nil, err
	}
	return shifts, nil
}

func (s *exchangeService) MyShifts(ctx context.Context, employeeID string) ([]model.Shift, error) {
	shifts, err := s.repo.Shift.ListByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("查询员工班次失败", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return shifts, nil
}

func (s *exchangeService) Board(ctx context.Context, employeeID string) (*dto.ExchangeBoardResponse, error) {
	me, err := s.employee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	open, err := s.OpenShifts(ctx)
	if err != nil {
		return nil, err
	}
	mine, err := s.MyShifts(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return &dto.ExchangeBoardResponse{
		Me:         dto.NewEmployeeBrief(me),
		OpenShifts: open,
		MyShifts:   mine,
	}, nil
}

func (s *exchangeService) TakeShift(ctx context.Context, sid, employeeID, shiftID string) (*dto.TakeShiftResponse, error) {
	me, err := s.employee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	// 状态检查与认领在同一把写锁内完成，同一空缺班次只能被领取一次
	sh, err := s.repo.Shift.Update(ctx, shiftID, func(sh *model.Shift) error {
		if sh.Status != model.ShiftOpen {
			return ErrShiftNotOpen
		}
		sh.EmployeeID = me.ID
		sh.Status = model.ShiftScheduled
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, pkgerrors.ErrRecordNotFound):
			return nil, ErrShiftNotFound
		case errors.Is(err, ErrShiftNotOpen):
			return nil, err
		}
		s.logger.Error("领取班次失败", zap.String("id", shiftID), zap.Error(err))
		return nil, err
	}

	msg := fmt.Sprintf("Обмен одобрен автоматически: %s → %s (%s)", me.Name, sh.Type, sh.Date)
	metrics.ShiftMutations.WithLabelValues("take").Inc()
	s.notifier.Notify(sid, msg, model.NotifySuccess)
	s.logger.Info("领取空缺班次", zap.String("shift_id", shiftID), zap.String("employee_id", me.ID))
	return &dto.TakeShiftResponse{Shift: *sh, Message: msg}, nil
}

func (s *exchangeService) RequestSwap(ctx context.Context, sid, employeeID, shiftID string, req *dto.SwapShiftRequest) (*model.SwapRequest, error) {
	sh, err := s.shift(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if sh.EmployeeID != employeeID {
		return nil, ErrShiftNotYours
	}

	swap := &model.SwapRequest{
		ID:         uuid.New().String(),
		ShiftID:    shiftID,
		EmployeeID: employeeID,
		Reason:     req.Reason,
		Status:     model.SwapPending,
		CreatedAt:  s.now(),
	}
	created, err := s.repo.SwapRequest.CreatePending(ctx, swap)
	if err != nil {
		s.logger.Error("创建换班申请失败", zap.Error(err))
		return nil, err
	}
	if !created {
		return nil, ErrSwapAlreadyAsked
	}

	s.notifier.Notify(sid, "Запрос на обмен отправлен менеджеру", model.NotifyInfo)
	return swap, nil
}
