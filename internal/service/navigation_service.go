package service

import (
	"strings"

	"github.com/maplol/adaptix-mvp/internal/dto"
	"github.com/maplol/adaptix-mvp/internal/model"
)

// 路由常量
const (
	PathLogin     = "/"
	PathDashboard = "/dashboard"
)

type routeDef struct {
	path      string
	title     string
	label     string
	icon      string
	roles     []string // 为空表示任意已登录角色
	adminOnly bool
}

// routeTable 固定路由表，顺序即侧边栏顺序
var routeTable = []routeDef{
	{path: PathDashboard, title: "Дашборд", label: "Дашборд", icon: "LayoutDashboard"},
	{path: "/schedule", title: "Расписание смен", label: "Расписание", icon: "CalendarDays"},
	{path: "/employees", title: "Сотрудники", label: "Сотрудники", icon: "Users", roles: []string{model.RoleAdmin, model.RoleManager}},
	{path: "/shift-exchange", title: "Биржа смен", label: "Биржа смен", icon: "ArrowLeftRight"},
	{path: "/rule-builder", title: "Visual Rule Builder", label: "Rule Builder", icon: "Blocks", roles: []string{model.RoleAdmin}, adminOnly: true},
	{path: "/ui-designer", title: "UI Designer", label: "UI Designer", icon: "PenTool", roles: []string{model.RoleAdmin}, adminOnly: true},
	{path: "/settings", title: "Настройки", label: "Настройки", icon: "Settings", roles: []string{model.RoleAdmin, model.RoleManager}},
}

// NavigationService 路由表与菜单
//
// 角色门控仅用于展示，不构成访问控制。
type NavigationService interface {
	Routes() []dto.RouteResponse
	// Resolve 解析目标路径；role 为空表示未登录
	Resolve(role, path string) dto.ResolveResponse
	Menu(role string) []dto.MenuItem
}

type navigationService struct{}

// NewNavigationService 创建 NavigationService 实例
func NewNavigationService() NavigationService {
	return &navigationService{}
}

func findRoute(path string) (routeDef, bool) {
	for _, r := range routeTable {
		if r.path == path {
			return r, true
		}
	}
	return routeDef{}, false
}

func (r routeDef) allows(role string) bool {
	if len(r.roles) == 0 {
		return true
	}
	for _, allowed := range r.roles {
		if allowed == role {
			return true
		}
	}
	return false
}

func (s *navigationService) Routes() []dto.RouteResponse {
	out := make([]dto.RouteResponse, 0, len(routeTable)+1)
	out = append(out, dto.RouteResponse{Path: PathLogin, Title: "Вход"})
	for _, r := range routeTable {
		out = append(out, dto.RouteResponse{
			Path:      r.path,
			Title:     r.title,
			Roles:     r.roles,
			AdminOnly: r.adminOnly,
		})
	}
	return out
}

func (s *navigationService) Resolve(role, path string) dto.ResolveResponse {
	requested := path
	path = strings.TrimSpace(path)
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}

	resolved := func(target string) dto.ResolveResponse {
		title := "Вход"
		if r, ok := findRoute(target); ok {
			title = r.title
		}
		return dto.ResolveResponse{
			Requested:  requested,
			Path:       target,
			Title:      title,
			Redirected: target != path,
		}
	}

	// 1. 未登录一律回到登录页
	if role == "" {
		return resolved(PathLogin)
	}

	// 2. 已登录访问登录页直接进入看板
	if path == PathLogin || path == "" {
		return resolved(PathDashboard)
	}

	// 3. 未知路径回落到看板
	r, ok := findRoute(path)
	if !ok {
		return resolved(PathDashboard)
	}

	// 4. 仅管理员页面
	if r.adminOnly && role != model.RoleAdmin {
		return resolved(PathDashboard)
	}

	return resolved(r.path)
}

func (s *navigationService) Menu(role string) []dto.MenuItem {
	items := make([]dto.MenuItem, 0, len(routeTable))
	for _, r := range routeTable {
		if !r.allows(role) {
			continue
		}
		items = append(items, dto.MenuItem{Path: r.path, Label: r.label, Icon: r.icon})
	}
	return items
}
