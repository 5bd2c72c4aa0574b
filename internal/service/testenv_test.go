package service

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/maplol/adaptix-mvp/config"
	"github.com/maplol/adaptix-mvp/internal/mockdata"
	"github.com/maplol/adaptix-mvp/internal/model"
	"github.com/maplol/adaptix-mvp/internal/repository"
	"github.com/maplol/adaptix-mvp/pkg/idgen"
	"github.com/maplol/adaptix-mvp/pkg/jwt"
)

// ── 测试辅助 ──

// testMonday 种子数据所在周的周一；testNow 为该周周三
var (
	testMonday = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	testNow    = time.Date(2026, 10, 21, 7, 0, 0, 0, time.UTC)
)

const testSID = "sid-test"

// day 种子周内第 offset 天
func day(offset int) string {
	return testMonday.AddDate(0, 0, offset).Format("2006-01-02")
}

// fakeTimer 记录延迟任务，由测试手动触发
type fakeTimer struct {
	mu        sync.Mutex
	durations []time.Duration
	fns       []func()
}

func (f *fakeTimer) after(d time.Duration, fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.durations = append(f.durations, d)
	f.fns = append(f.fns, fn)
}

func (f *fakeTimer) fireAll() {
	f.mu.Lock()
	fns := f.fns
	f.fns = nil
	f.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, BodyLimitMB: 1},
		Auth: config.AuthConfig{
			JWTSecret:  "test-secret-at-least-16",
			SessionTTL: time.Hour,
		},
		Log: config.LogConfig{Level: "debug", Format: "console"},
		Schedule: config.ScheduleConfig{
			MaxVisibleShifts:    2,
			RestrictedShiftType: "Операционная",
			Timezone:            "UTC",
		},
		Notification: config.NotificationConfig{TTL: 3500 * time.Millisecond},
	}
}

// testEnv 以真实内存仓储 + mock 数据装配的服务集合
type testEnv struct {
	cfg      *config.Config
	repo     *repository.Repository
	timer    *fakeTimer
	notifier *notificationService
	schedule *scheduleService
	rules    RuleService
	designer DesignerService
	employee EmployeeService
	exchange ExchangeService
	settings SettingsService
	nav      NavigationService
	auth     AuthService
}

func seedRepository(repo *repository.Repository) {
	repo.Employee.Load(mockdata.Employees())
	repo.Shift.Load(mockdata.Shifts(testMonday))
	repo.Rule.Load(mockdata.Rules())
	repo.Widget.Load(mockdata.DemoForm())
	repo.Settings.Load(mockdata.Settings())
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := testConfig()
	logger := zap.NewNop()
	repo := repository.NewRepository()
	seedRepository(repo)

	timer := &fakeTimer{}
	notifier := newNotificationService(cfg.Notification.TTL, timer.after, logger)
	notifier.now = func() time.Time { return testNow }

	schedule := newScheduleService(&cfg.Schedule, repo, notifier, idgen.NewSequence(100),
		func() time.Time { return testNow }, logger)
	nav := NewNavigationService()

	return &testEnv{
		cfg:      cfg,
		repo:     repo,
		timer:    timer,
		notifier: notifier,
		schedule: schedule,
		rules:    NewRuleService(repo, notifier, logger),
		designer: NewDesignerService(repo, notifier, logger),
		employee: NewEmployeeService(repo, notifier, logger),
		exchange: NewExchangeService(repo, notifier, logger),
		settings: NewSettingsService(repo, notifier, logger),
		nav:      nav,
		auth:     NewAuthService(cfg, repo, jwt.NewManager(&cfg.Auth), nav, logger, schedule, notifier),
	}
}

// lastNotification 会话最近一条提示
func (e *testEnv) lastNotification(t *testing.T, sid string) model.Notification {
	t.Helper()
	list := e.notifier.List(sid)
	if len(list) == 0 {
		t.Fatalf("期望存在提示，实际为空")
	}
	return list[len(list)-1]
}
