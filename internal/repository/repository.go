package repository

import "sync"

// Repository 所有 Repository 的聚合入口
//
// 全部为进程内存实现，重启即丢失；演示数据由 DemoService 通过 Reload 整体装载。
type Repository struct {
	Employee    EmployeeRepository
	Shift       ShiftRepository
	Rule        RuleRepository
	Widget      WidgetRepository
	SwapRequest SwapRequestRepository
	Settings    SettingsRepository

	// gate 整体重载与请求之间的读写闸门
	gate sync.RWMutex
}

// NewRepository 创建 Repository 聚合（空表）
func NewRepository() *Repository {
	return &Repository{
		Employee:    NewEmployeeRepo(),
		Shift:       NewShiftRepo(),
		Rule:        NewRuleRepo(),
		Widget:      NewWidgetRepo(),
		SwapRequest: NewSwapRequestRepo(),
		Settings:    NewSettingsRepo(),
	}
}

// Reload 独占执行 fn；持有 Hold 的请求全部结束后才开始，期间新的 Hold 被阻塞，
// 因此不会有请求看到新员工与旧班次并存的中间状态。
func (r *Repository) Reload(fn func()) {
	r.gate.Lock()
	defer r.gate.Unlock()
	fn()
}

// Hold 获取共享闸门，返回释放函数；同一调用链内不得再调用 Reload
func (r *Repository) Hold() (release func()) {
	r.gate.RLock()
	return r.gate.RUnlock
}
