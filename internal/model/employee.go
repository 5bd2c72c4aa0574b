package model

// 系统角色
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// 在岗状态
const (
	EmployeeActive  = "active"
	EmployeeOnLeave = "on_leave"
	EmployeeSick    = "sick"
)

// Certificate 资质证书
//
// Expired 为录入数据时写定的布尔值，不按当前日期实时计算。
type Certificate struct {
	Name      string `json:"name"`
	ExpiresAt string `json:"expires_at"`
	Expired   bool   `json:"expired"`
}

// Employee 员工
type Employee struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Avatar       string        `json:"avatar"`
	Position     string        `json:"position"`
	JobRole      string        `json:"job_role"`
	AppRole      string        `json:"app_role"` // admin | manager | employee
	Location     string        `json:"location"`
	Status       string        `json:"status"` // active | on_leave | sick
	Phone        string        `json:"phone"`
	Email        string        `json:"email"`
	Certificates []Certificate `json:"certificates"`
	HireDate     string        `json:"hire_date"`
}

// HasExpiredCertificate 是否持有任一过期证书
func (e *Employee) HasExpiredCertificate() bool {
	return e.ExpiredCertificateCount() > 0
}

// ExpiredCertificateCount 过期证书数量
func (e *Employee) ExpiredCertificateCount() int {
	n := 0
	for _, c := range e.Certificates {
		if c.Expired {
			n++
		}
	}
	return n
}

// Clone 深拷贝（证书切片独立）
func (e Employee) Clone() Employee {
	if e.Certificates != nil {
		certs := make([]Certificate, len(e.Certificates))
		copy(certs, e.Certificates)
		e.Certificates = certs
	}
	return e
}

// IsValidAppRole 校验系统角色
func IsValidAppRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}
