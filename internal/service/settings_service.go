package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/maplol/adaptix-mvp/internal/dto"
	"github.com/maplol/adaptix-mvp/internal/model"
	"github.com/maplol/adaptix-mvp/internal/repository"
)

// ── 设置模块业务错误 ──

var (
	ErrInvalidTimezone = errors.New("时区无效")
	ErrInvalidBreak    = errors.New("最短休息时长须在 0-24 小时之间")
)

// SettingsService 租户与个人设置业务接口
type SettingsService interface {
	Get(ctx context.Context) (*model.Settings, error)
	// Update 保存设置，请求中缺省的部分保持不变
	Update(ctx context.Context, sid string, req *dto.UpdateSettingsRequest) (*model.Settings, error)
}

type settingsService struct {
	repo     *repository.Repository
	notifier NotificationService
	logger   *zap.Logger
}

// NewSettingsService 创建 SettingsService 实例
func NewSettingsService(repo *repository.Repository, notifier NotificationService, logger *zap.Logger) SettingsService {
	return &settingsService{repo: repo, notifier: notifier, logger: logger}
}

func (s *settingsService) Get(ctx context.Context) (*model.Settings, error) {
	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		s.logger.Error("查询设置失败", zap.Error(err))
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, sid string, req *dto.UpdateSettingsRequest) (*model.Settings, error) {
	if t := req.Tenant; t != nil {
		if _, err := time.LoadLocation(t.Timezone); err != nil {
			return nil, ErrInvalidTimezone
		}
		if t.MinBreakHours < 0 || t.MinBreakHours > 24 {
			return nil, ErrInvalidBreak
		}
	}

	settings, err := s.repo.Settings.Update(ctx, func(st *model.Settings) error {
		if t := req.Tenant; t != nil {
			st.Tenant = model.TenantSettings{
				Name:          t.Name,
				Subdomain:     t.Subdomain,
				Timezone:      t.Timezone,
				Country:       t.Country,
				MinBreakHours: t.MinBreakHours,
			}
		}
		if p := req.Profile; p != nil {
			st.Profile = model.Profile{Name: p.Name, Email: p.Email}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("保存设置失败", zap.Error(err))
		return nil, err
	}

	s.notifier.Notify(sid, "Настройки сохранены", model.NotifySuccess)
	return settings, nil
}
