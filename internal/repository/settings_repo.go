package repository

import (
	"context"
	"sync"

	"github.com/maplol/adaptix-mvp/internal/model"
)

// SettingsRepository 设置数据访问接口（单条记录）
type SettingsRepository interface {
	Get(ctx context.Context) (*model.Settings, error)
	// Update 在写锁内修改设置；fn 返回错误时不做任何修改
	Update(ctx context.Context, fn func(*model.Settings) error) (*model.Settings, error)
	Load(settings model.Settings)
}

type settingsRepo struct {
	mu       sync.RWMutex
	settings model.Settings
}

// NewSettingsRepo 创建 SettingsRepository 实例
func NewSettingsRepo() SettingsRepository {
	return &settingsRepo{}
}

func (r *settingsRepo) Get(ctx context.Context) (*model.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := r.settings
	return &s, nil
}

func (r *settingsRepo) Update(ctx context.Context, fn func(*model.Settings) error) (*model.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := r.settings
	if err := fn(&cp); err != nil {
		return nil, err
	}
	r.settings = cp
	out := cp
	return &out, nil
}

func (r *settingsRepo) Load(settings model.Settings) {
	r.mu.Lock()
	r.settings = settings
	r.mu.Unlock()
}
