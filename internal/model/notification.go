package model

import "time"

// 提示类型
const (
	NotifySuccess = "success"
	NotifyWarning = "warning"
	NotifyInfo    = "info"
)

// Notification 会话内的临时提示，到期自动消失
type Notification struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Kind      string    `json:"kind"` // success | warning | info
	CreatedAt time.Time `json:"created_at"`
}
