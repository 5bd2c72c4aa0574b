package handler

import "github.com/maplol/adaptix-mvp/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth         *AuthHandler
	Navigation   *NavigationHandler
	Notification *NotificationHandler
	Employee     *EmployeeHandler
	Schedule     *ScheduleHandler
	Rule         *RuleHandler
	Designer     *DesignerHandler
	Exchange     *ExchangeHandler
	Settings     *SettingsHandler
	Dashboard    *DashboardHandler
	Export       *ExportHandler
	Demo         *DemoHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		Navigation:   NewNavigationHandler(svc.Navigation),
		Notification: NewNotificationHandler(svc.Notification),
		Employee:     NewEmployeeHandler(svc.Employee),
		Schedule:     NewScheduleHandler(svc.Schedule),
		Rule:         NewRuleHandler(svc.Rule),
		Designer:     NewDesignerHandler(svc.Designer),
		Exchange:     NewExchangeHandler(svc.Exchange),
		Settings:     NewSettingsHandler(svc.Settings),
		Dashboard:    NewDashboardHandler(svc.Dashboard),
		Export:       NewExportHandler(svc.Export),
		Demo:         NewDemoHandler(svc.Demo),
	}
}
