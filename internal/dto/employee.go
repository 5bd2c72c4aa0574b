package dto

import "github.com/maplol/adaptix-mvp/internal/model"

// ── 员工模块 DTO ──

// EmployeeListQuery 员工列表查询参数
type EmployeeListQuery struct {
	Search   string `form:"search"   binding:"omitempty,max=100"`
	JobRole  string `form:"job_role" binding:"omitempty,max=100"`
	Location string `form:"location" binding:"omitempty,max=100"`
}

// UpdateEmployeeRequest 编辑员工（部分更新）
type UpdateEmployeeRequest struct {
	Name     *string `json:"name"     binding:"omitempty,min=2,max=100"`
	Position *string `json:"position" binding:"omitempty,max=100"`
	JobRole  *string `json:"job_role" binding:"omitempty,max=100"`
	AppRole  *string `json:"app_role" binding:"omitempty,oneof=admin manager employee"`
	Location *string `json:"location" binding:"omitempty,max=100"`
	Status   *string `json:"status"   binding:"omitempty,oneof=active on_leave sick"`
	Phone    *string `json:"phone"    binding:"omitempty,max=32"`
	Email    *string `json:"email"    binding:"omitempty,email"`
}

// EmployeeResponse 员工详情
type EmployeeResponse struct {
	model.Employee
	ExpiredCertificates int `json:"expired_certificates"`
}

// EmployeeBrief 员工简要信息（网格行头、会话身份）
type EmployeeBrief struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	Avatar                string `json:"avatar"`
	Position              string `json:"position"`
	JobRole               string `json:"job_role"`
	Location              string `json:"location"`
	HasExpiredCertificate bool   `json:"has_expired_certificate"`
}

// NewEmployeeBrief 由员工模型构造简要信息
func NewEmployeeBrief(e *model.Employee) EmployeeBrief {
	return EmployeeBrief{
		ID:                    e.ID,
		Name:                  e.Name,
		Avatar:                e.Avatar,
		Position:              e.Position,
		JobRole:               e.JobRole,
		Location:              e.Location,
		HasExpiredCertificate: e.HasExpiredCertificate(),
	}
}
