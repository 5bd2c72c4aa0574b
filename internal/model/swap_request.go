package model

import "time"

// SwapRequest 换班申请，提交后等待经理处理
type SwapRequest struct {
	ID         string    `json:"id"`
	ShiftID    string    `json:"shift_id"`
	EmployeeID string    `json:"employee_id"`
	Reason     string    `json:"reason,omitempty"`
	Status     string    `json:"status"` // pending
	CreatedAt  time.Time `json:"created_at"`
}

// SwapPending 待处理
const SwapPending = "pending"
