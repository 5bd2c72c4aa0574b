package model

// TenantSettings 租户设置
type TenantSettings struct {
	Name          string `json:"name"`
	Subdomain     string `json:"subdomain"`
	Timezone      string `json:"timezone"`
	Country       string `json:"country"`
	MinBreakHours int    `json:"min_break_hours"`
}

// Profile 当前用户资料
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Settings 设置页数据
type Settings struct {
	Tenant  TenantSettings `json:"tenant"`
	Profile Profile        `json:"profile"`
}
