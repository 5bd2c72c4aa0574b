package dto

import "github.com/maplol/adaptix-mvp/internal/model"

// ── 换班 ──

// SwapShiftRequest 发起换班申请
type SwapShiftRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

// ExchangeBoardResponse 换班页数据
type ExchangeBoardResponse struct {
	Me         EmployeeBrief `json:"me"`
	OpenShifts []model.Shift `json:"open_shifts"`
	MyShifts   []model.Shift `json:"my_shifts"`
}

// TakeShiftResponse 领取空缺班次结果
type TakeShiftResponse struct {
	Shift   model.Shift `json:"shift"`
	Message string      `json:"message"`
}

// ── 设置 ──

// TenantRequest 租户设置表单
type TenantRequest struct {
	Name          string `json:"name"            binding:"required,max=100"`
	Subdomain     string `json:"subdomain"       binding:"required,alphanum,max=63"`
	Timezone      string `json:"timezone"        binding:"required,max=64"`
	Country       string `json:"country"         binding:"required,max=64"`
	MinBreakHours int    `json:"min_break_hours" binding:"min=0,max=24"`
}

// ProfileRequest 个人资料表单
type ProfileRequest struct {
	Name  string `json:"name"  binding:"required,max=100"`
	Email string `json:"email" binding:"required,email"`
}

// UpdateSettingsRequest 保存设置，缺省部分保持不变
type UpdateSettingsRequest struct {
	Tenant  *TenantRequest  `json:"tenant"`
	Profile *ProfileRequest `json:"profile"`
}

// ── 导出 ──

// ScheduleExportQuery 排班导出参数
type ScheduleExportQuery struct {
	GridQuery
}

// ShiftCalendarQuery 班次日历导出参数，缺省为当前会话员工
type ShiftCalendarQuery struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,max=64"`
}
