package service

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/maplol/adaptix-mvp/internal/model"
	"github.com/maplol/adaptix-mvp/pkg/metrics"
)

// NotificationService 会话内的临时提示
//
// Notify 即发即忘，提示在 TTL 后自动移除；若此前已被手动关闭，
// 到期移除为空操作。ID 在进程内单调递增。
type NotificationService interface {
	Notify(sid, message, kind string) model.Notification
	Dismiss(sid string, id int64) bool
	List(sid string) []model.Notification
	DropSession(sid string)
}

// afterFunc 延迟执行，测试中可替换
type afterFunc func(d time.Duration, f func())

type notificationService struct {
	mu     sync.Mutex
	nextID int64
	items  map[string][]model.Notification
	ttl    time.Duration
	after  afterFunc
	now    func() time.Time
	logger *zap.Logger
}

// NewNotificationService 创建 NotificationService 实例
func NewNotificationService(ttl time.Duration, logger *zap.Logger) NotificationService {
	return newNotificationService(ttl, func(d time.Duration, f func()) { time.AfterFunc(d, f) }, logger)
}

func newNotificationService(ttl time.Duration, after afterFunc, logger *zap.Logger) *notificationService {
	return &notificationService{
		nextID: 1,
		items:  make(map[string][]model.Notification),
		ttl:    ttl,
		after:  after,
		now:    time.Now,
		logger: logger,
	}
}

func (s *notificationService) Notify(sid, message, kind string) model.Notification {
	s.mu.Lock()
	n := model.Notification{
		ID:        s.nextID,
		Message:   message,
		Kind:      kind,
		CreatedAt: s.now(),
	}
	s.nextID++
	s.items[sid] = append(s.items[sid], n)
	s.mu.Unlock()

	metrics.Notifications.WithLabelValues(kind).Inc()
	s.logger.Debug("发出提示",
		zap.String("sid", sid),
		zap.Int64("id", n.ID),
		zap.String("kind", kind),
		zap.String("message", message),
	)

	id := n.ID
	s.after(s.ttl, func() { s.Dismiss(sid, id) })
	return n
}

func (s *notificationService) Dismiss(sid string, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.items[sid]
	for i := range list {
		if list[i].ID == id {
			list = append(list[:i], list[i+1:]...)
			if len(list) == 0 {
				delete(s.items, sid)
			} else {
				s.items[sid] = list
			}
			return true
		}
	}
	return false
}

func (s *notificationService) List(sid string) []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Notification, len(s.items[sid]))
	copy(out, s.items[sid])
	return out
}

func (s *notificationService) DropSession(sid string) {
	s.mu.Lock()
	delete(s.items, sid)
	s.mu.Unlock()
}
