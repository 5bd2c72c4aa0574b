package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/maplol/adaptix-mvp/config"
	"github.com/maplol/adaptix-mvp/internal/api/handler"
	"github.com/maplol/adaptix-mvp/internal/api/middleware"
	"github.com/maplol/adaptix-mvp/internal/model"
	"github.com/maplol/adaptix-mvp/internal/repository"
	"github.com/maplol/adaptix-mvp/pkg/jwt"
	"github.com/maplol/adaptix-mvp/pkg/metrics"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, repo *repository.Repository, jwtMgr *jwt.Manager, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(int64(cfg.Server.BodyLimitMB) << 20))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
		r.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	staff := middleware.RoleAuth(model.RoleAdmin, model.RoleManager)
	adminOnly := middleware.RoleAuth(model.RoleAdmin)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	v1.Use(middleware.DataGate(repo, "/api/v1/demo/reset"))
	{
		// 会话模块（无需认证）
		v1.POST("/auth/login", h.Auth.Login)

		// 导航：会话可选
		nav := v1.Group("/navigation")
		nav.Use(middleware.OptionalJWTAuth(jwtMgr))
		{
			nav.GET("/routes", h.Navigation.Routes)
			nav.GET("/resolve", h.Navigation.Resolve)
			nav.GET("/menu", h.Navigation.Menu)
		}

		// 需要会话的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr))
		{
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.POST("/auth/logout", h.Auth.Logout)

			// 提示
			authorized.GET("/notifications", h.Notification.List)
			authorized.DELETE("/notifications/:id", h.Notification.Dismiss)

			// 仪表盘
			authorized.GET("/dashboard", h.Dashboard.Get)

			// 员工目录
			employees := authorized.Group("/employees", staff)
			{
				employees.GET("", h.Employee.List)
				employees.GET("/job-roles", h.Employee.JobRoles)
				employees.GET("/locations", h.Employee.Locations)
				employees.GET("/:id", h.Employee.Get)
				employees.PUT("/:id", h.Employee.Update)
			}

			// 排班网格
			schedule := authorized.Group("/schedule")
			{
				schedule.GET("/meta", h.Schedule.Meta)
				schedule.GET("/window", h.Schedule.Window)
				schedule.GET("/grid", h.Schedule.Grid)
				schedule.GET("/cell", h.Schedule.Cell)
				schedule.PUT("/overflow", h.Schedule.ToggleOverflow)
				schedule.DELETE("/overflow", h.Schedule.CloseOverflow)

				schedule.POST("/shifts", staff, h.Schedule.CreateShift)
				schedule.PUT("/shifts/:id", staff, h.Schedule.UpdateShift)
				schedule.DELETE("/shifts/:id", staff, h.Schedule.DeleteShift)
				schedule.POST("/shifts/:id/duplicate", staff, h.Schedule.DuplicateShift)
				schedule.POST("/shifts/:id/copy", staff, h.Schedule.CopyShift)
				schedule.POST("/shifts/:id/move", staff, h.Schedule.MoveShift)
				schedule.POST("/paste", staff, h.Schedule.PasteShift)
				schedule.POST("/drag/start", staff, h.Schedule.DragStart)
				schedule.POST("/drag/drop", staff, h.Schedule.Drop)
				schedule.POST("/drag/cancel", staff, h.Schedule.DragCancel)
			}

			// 规则构建器
			rules := authorized.Group("/rules", adminOnly)
			{
				rules.GET("/vocabulary", h.Rule.Vocabulary)
				rules.GET("/groups", h.Rule.Groups)
				rules.GET("/groups/:kind/:key", h.Rule.GetGroup)
				rules.POST("/groups/:kind/:key", h.Rule.CreateRule)
				rules.GET("/:id", h.Rule.GetRule)
				rules.PUT("/:id", h.Rule.UpdateRule)
				rules.DELETE("/:id", h.Rule.DeleteRule)
				rules.POST("/:id/toggle", h.Rule.ToggleRule)
			}

			// 表单设计器
			designer := authorized.Group("/designer", adminOnly)
			{
				designer.GET("/palette", h.Designer.Palette)
				designer.GET("/canvas", h.Designer.Canvas)
				designer.DELETE("/canvas", h.Designer.ClearCanvas)
				designer.GET("/schema", h.Designer.Schema)
				designer.GET("/preview", h.Designer.Preview)
				designer.POST("/widgets", h.Designer.AddWidget)
				designer.PUT("/widgets/:id", h.Designer.UpdateWidget)
				designer.DELETE("/widgets/:id", h.Designer.RemoveWidget)
				designer.POST("/widgets/:id/move", h.Designer.MoveWidget)
				designer.POST("/import", h.Designer.ImportSchema)
				designer.POST("/save", h.Designer.SaveForm)
			}

			// 班次交换
			exchange := authorized.Group("/exchange")
			{
				exchange.GET("", h.Exchange.Board)
				exchange.GET("/open", h.Exchange.OpenShifts)
				exchange.GET("/mine", h.Exchange.MyShifts)
				exchange.POST("/:id/take", h.Exchange.TakeShift)
				exchange.POST("/:id/swap", h.Exchange.RequestSwap)
			}

			// 设置
			settings := authorized.Group("/settings", staff)
			{
				settings.GET("", h.Settings.Get)
				settings.PUT("", h.Settings.Update)
			}

			// 导出
			export := authorized.Group("/export")
			{
				export.GET("/schedule.xlsx", staff, h.Export.ExportSchedule)
				export.GET("/shifts.ics", h.Export.ExportShiftCalendar)
			}

			// 演示数据
			authorized.POST("/demo/reset", adminOnly, h.Demo.Reset)
		}
	}

	return r
}
