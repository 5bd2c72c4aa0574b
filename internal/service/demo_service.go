package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/maplol/adaptix-mvp/config"
	"github.com/maplol/adaptix-mvp/internal/mockdata"
	"github.com/maplol/adaptix-mvp/internal/model"
	"github.com/maplol/adaptix-mvp/internal/repository"
	"github.com/maplol/adaptix-mvp/pkg/daterange"
	"github.com/maplol/adaptix-mvp/pkg/metrics"
)

// DemoService 演示数据装载与定时重置
type DemoService interface {
	// Reset 以 mock 数据重新装载全部存储；sid 非空时向该会话发出提示
	Reset(ctx context.Context, sid string) error
	// Start 按 demo.reset_cron 启动定时重置，表达式为空时不启动
	Start() error
	Stop()
}

type demoService struct {
	cfg      *config.Config
	repo     *repository.Repository
	schedule ScheduleService
	notifier NotificationService
	cron     *cron.Cron
	loc      *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

// NewDemoService 创建 DemoService 实例
func NewDemoService(
	cfg *config.Config,
	repo *repository.Repository,
	schedule ScheduleService,
	notifier NotificationService,
	logger *zap.Logger,
) DemoService {
	loc := cfg.Schedule.Location()
	return &demoService{
		cfg:      cfg,
		repo:     repo,
		schedule: schedule,
		notifier: notifier,
		cron:     cron.New(cron.WithLocation(loc)),
		loc:      loc,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *demoService) Reset(ctx context.Context, sid string) error {
	// 班次日期相对业务时区下的本周周一
	monday := daterange.Monday(daterange.DateOf(s.now(), s.loc))

	s.repo.Reload(func() {
		s.repo.Employee.Load(mockdata.Employees())
		s.repo.Shift.Load(mockdata.Shifts(monday))
		s.repo.Rule.Load(mockdata.Rules())
		s.repo.Widget.Load(mockdata.DemoForm())
		s.repo.SwapRequest.Load(nil)
		s.repo.Settings.Load(mockdata.Settings())
		if s.schedule != nil {
			s.schedule.ResetSessions()
		}
	})

	metrics.DemoResets.Inc()
	s.logger.Info("演示数据已装载", zap.String("monday", daterange.Format(monday)))

	if sid != "" {
		s.notifier.Notify(sid, "Демо-данные сброшены", model.NotifyInfo)
	}
	return nil
}

func (s *demoService) Start() error {
	spec := s.cfg.Demo.ResetCron
	if spec == "" {
		return nil
	}
	_, err := s.cron.AddFunc(spec, func() {
		if err := s.Reset(context.Background(), ""); err != nil {
			s.logger.Error("定时重置演示数据失败", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("无效的 demo.reset_cron %q: %w", spec, err)
	}
	s.cron.Start()
	s.logger.Info("演示数据定时重置已启动", zap.String("cron", spec))
	return nil
}

func (s *demoService) Stop() {
	<-s.cron.Stop().Done()
}
