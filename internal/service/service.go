package service

import (
	"go.uber.org/zap"

	"github.com/maplol/adaptix-mvp/config"
	"github.com/maplol/adaptix-mvp/internal/repository"
	"github.com/maplol/adaptix-mvp/pkg/jwt"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Notification NotificationService
	Navigation   NavigationService
	Auth         AuthService
	Employee     EmployeeService
	Schedule     ScheduleService
	Rule         RuleService
	Designer     DesignerService
	Exchange     ExchangeService
	Settings     SettingsService
	Dashboard    DashboardService
	Export       ExportService
	Demo         DemoService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	logger *zap.Logger,
) *Service {
	notifier := NewNotificationService(cfg.Notification.TTL, logger)
	nav := NewNavigationService()
	schedule := NewScheduleService(&cfg.Schedule, repo, notifier, logger)

	return &Service{
		Notification: notifier,
		Navigation:   nav,
		Auth:         NewAuthService(cfg, repo, jwtMgr, nav, logger, schedule, notifier),
		Employee:     NewEmployeeService(repo, notifier, logger),
		Schedule:     schedule,
		Rule:         NewRuleService(repo, notifier, logger),
		Designer:     NewDesignerService(repo, notifier, logger),
		Exchange:     NewExchangeService(repo, notifier, logger),
		Settings:     NewSettingsService(repo, notifier, logger),
		Dashboard:    NewDashboardService(repo, logger),
		Export:       NewExportService(&cfg.Schedule, repo, schedule, logger),
		Demo:         NewDemoService(cfg, repo, schedule, notifier, logger),
	}
}
