package service

import (
	"testing"

	"github.com/maplol/adaptix-mvp/internal/model"
)

func TestNavigationService_Resolve(t *testing.T) {
	nav := NewNavigationService()

	tests := []struct {
		name       string
		role       string
		path       string
		wantPath   string
		redirected bool
	}{
		{"未登录访问看板", "", "/dashboard", "/", true},
		{"未登录访问登录页", "", "/", "/", false},
		{"已登录访问登录页", model.RoleEmployee, "/", "/dashboard", true},
		{"未知路径", model.RoleManager, "/nope", "/dashboard", true},
		{"员工访问规则引擎", model.RoleEmployee, "/rule-builder", "/dashboard", true},
		{"经理访问表单设计器", model.RoleManager, "/ui-designer", "/dashboard", true},
		{"管理员访问规则引擎", model.RoleAdmin, "/rule-builder", "/rule-builder", false},
		{"员工访问排班", model.RoleEmployee, "/schedule", "/schedule", false},
		{"末尾斜杠", model.RoleAdmin, "/settings/", "/settings", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nav.Resolve(tt.role, tt.path)
			if got.Path != tt.wantPath {
				t.Errorf("期望路径=%s，实际=%s", tt.wantPath, got.Path)
			}
			if got.Redirected != tt.redirected {
				t.Errorf("期望 redirected=%v，实际=%v", tt.redirected, got.Redirected)
			}
		})
	}
}

func TestNavigationService_ResolveTitle(t *testing.T) {
	nav := NewNavigationService()

	if got := nav.Resolve(model.RoleAdmin, "/shift-exchange").Title; got != "Биржа смен" {
		t.Errorf("标题不符: %s", got)
	}
	if got := nav.Resolve("", "/schedule").Title; got != "Вход" {
		t.Errorf("登录页标题不符: %s", got)
	}
}

func TestNavigationService_Menu(t *testing.T) {
	nav := NewNavigationService()

	paths := func(role string) []string {
		var out []string
		for _, item := range nav.Menu(role) {
			out = append(out, item.Path)
		}
		return out
	}

	tests := []struct {
		role string
		want []string
	}{
		{model.RoleAdmin, []string{"/dashboard", "/schedule", "/employees", "/shift-exchange", "/rule-builder", "/ui-designer", "/settings"}},
		{model.RoleManager, []string{"/dashboard", "/schedule", "/employees", "/shift-exchange", "/settings"}},
		{model.RoleEmployee, []string{"/dashboard", "/schedule", "/shift-exchange"}},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			got := paths(tt.role)
			if len(got) != len(tt.want) {
				t.Fatalf("期望 %v，实际 %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("第 %d 项期望=%s，实际=%s", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestNavigationService_Routes(t *testing.T) {
	routes := NewNavigationService().Routes()

	if len(routes) != 8 {
		t.Fatalf("期望 8 条路由（含登录页），实际=%d", len(routes))
	}
	if routes[0].Path != "/" {
		t.Errorf("首条应为登录页，实际=%s", routes[0].Path)
	}
	adminOnly := 0
	for _, r := range routes {
		if r.AdminOnly {
			adminOnly++
		}
	}
	if adminOnly != 2 {
		t.Errorf("期望 2 条仅管理员路由，实际=%d", adminOnly)
	}
}
