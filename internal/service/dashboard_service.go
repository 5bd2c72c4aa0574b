package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/maplol/adaptix-mvp/internal/mockdata"
	"github.com/maplol/adaptix-mvp/internal/model"
	"github.com/maplol/adaptix-mvp/internal/repository"
)

// 按标签覆盖为实时数据的卡片
const (
	statOpenShifts   = "Открытых смен"
	statSwapRequests = "Запросов на обмен"
	baseSwapRequests = 5
)

// DashboardService 仪表盘业务接口
type DashboardService interface {
	Get(ctx context.Context) (*model.Dashboard, error)
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService 创建 DashboardService 实例
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

// Get 静态卡片中空缺班次数与换班申请数按当前数据计算
func (s *dashboardService) Get(ctx context.Context) (*model.Dashboard, error) {
	open, err := s.repo.Shift.CountOpen(ctx)
	if err != nil {
		s.logger.Error("统计空缺班次失败", zap.Error(err))
		return nil, err
	}
	pending, err := s.repo.SwapRequest.CountPending(ctx)
	if err != nil {
		s.logger.Error("统计换班申请失败", zap.Error(err))
		return nil, err
	}

	stats := mockdata.StatsCards()
	for i := range stats {
		switch stats[i].Label {
		case statOpenShifts:
			stats[i].Value = strconv.Itoa(open)
		case statSwapRequests:
			stats[i].Value = strconv.Itoa(baseSwapRequests + pending)
		}
	}

	return &model.Dashboard{
		Stats:      stats,
		WeeklyLoad: mockdata.WeeklyLoad(),
		Feed:       mockdata.Feed(),
		Upcoming:   mockdata.UpcomingShifts(),
	}, nil
}
