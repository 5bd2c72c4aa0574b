package dto

// ── 会话模块 DTO ──

// LoginRequest 选择演示角色登录
//
// EmployeeID 为空时按角色使用默认身份。
type LoginRequest struct {
	Role       string `json:"role"        binding:"required,oneof=admin manager employee"`
	EmployeeID string `json:"employee_id" binding:"omitempty,max=64"`
}

// SessionResponse 登录成功响应
type SessionResponse struct {
	Token     string        `json:"token"`
	ExpiresIn int           `json:"expires_in"` // 秒
	SessionID string        `json:"session_id"`
	Role      string        `json:"role"`
	Employee  EmployeeBrief `json:"employee"`
}

// MeResponse 当前会话信息
type MeResponse struct {
	SessionID string        `json:"session_id"`
	Role      string        `json:"role"`
	Employee  EmployeeBrief `json:"employee"`
	Menu      []MenuItem    `json:"menu"`
}

// ── 导航 ──

// RouteResponse 路由表条目
type RouteResponse struct {
	Path      string   `json:"path"`
	Title     string   `json:"title"`
	Roles     []string `json:"roles,omitempty"`
	AdminOnly bool     `json:"admin_only"`
}

// ResolveResponse 路由解析结果
type ResolveResponse struct {
	Requested  string `json:"requested"`
	Path       string `json:"path"`
	Title      string `json:"title"`
	Redirected bool   `json:"redirected"`
}

// MenuItem 侧边栏菜单项
type MenuItem struct {
	Path  string `json:"path"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}
