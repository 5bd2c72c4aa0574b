package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/maplol/adaptix-mvp/config"
	"github.com/maplol/adaptix-mvp/internal/api/handler"
	"github.com/maplol/adaptix-mvp/internal/api/router"
	"github.com/maplol/adaptix-mvp/internal/repository"
	"github.com/maplol/adaptix-mvp/internal/service"
	"github.com/maplol/adaptix-mvp/pkg/jwt"
	applogger "github.com/maplol/adaptix-mvp/pkg/logger"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load(os.Getenv("ADAPTIX_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
		zap.String("timezone", cfg.Schedule.Timezone),
	)

	// 3. 初始化会话令牌管理器
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 4. 依赖注入: Repository → Service → Handler
	repo := repository.NewRepository()
	svc := service.NewService(cfg, repo, jwtMgr, logger)

	// 4.1 装载演示数据并启动定时重置
	if err := svc.Demo.Reset(context.Background(), ""); err != nil {
		logger.Fatal("装载演示数据失败", zap.Error(err))
	}
	if err := svc.Demo.Start(); err != nil {
		logger.Fatal("启动定时重置失败", zap.Error(err), zap.String("cron", cfg.Demo.ResetCron))
	}

	h := handler.NewHandler(svc)

	// 5. 初始化路由
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := router.Setup(cfg, h, repo, jwtMgr, logger)

	// 6. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 7. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownWait)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	// 停止定时重置
	svc.Demo.Stop()

	logger.Info("服务器已关闭")
}
