package service

import (
	"context"
	"errors"
	"testing"

	"github.com/maplol/adaptix-mvp/internal/dto"
)

func employeeIDs(list []dto.EmployeeResponse) []string {
	ids := make([]string, len(list))
	for i, e := range list {
		ids[i] = e.ID
	}
	return ids
}

func TestEmployeeService_List(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name string
		q    dto.EmployeeListQuery
		want []string
	}{
		{"全部", dto.EmployeeListQuery{}, nil},
		{"按职位搜索（忽略大小写）", dto.EmployeeListQuery{Search: "бАРИСТА"}, []string{"e3", "e4", "e9"}},
		{"按姓名搜索", dto.EmployeeListQuery{Search: "петров"}, []string{"e1"}},
		{"按工种筛选", dto.EmployeeListQuery{JobRole: "Врач"}, []string{"e1", "e6", "e12"}},
		{"工种与地点组合", dto.EmployeeListQuery{JobRole: "Бариста", Location: "Кофейня на Тверской"}, []string{"e9"}},
		{"无匹配", dto.EmployeeListQuery{Search: "zzz"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := env.employee.List(ctx, &tt.q)
			if err != nil {
				t.Fatalf("List 应成功: %v", err)
			}
			got := employeeIDs(list)
			if tt.want == nil {
				if len(got) != 12 {
					t.Errorf("期望 12 名员工，实际=%d", len(got))
				}
				return
			}
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

func TestEmployeeService_Get(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	e, err := env.employee.Get(ctx, "e1")
	if err != nil {
		t.Fatalf("Get 应成功: %v", err)
	}
	if e.ExpiredCertificates != 1 {
		t.Errorf("期望 1 张过期证书，实际=%d", e.ExpiredCertificates)
	}

	if _, err := env.employee.Get(ctx, "e404"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("期望 ErrEmployeeNotFound，实际: %v", err)
	}
}

func TestEmployeeService_Update(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	name := "Дмитрий Сидоров-Младший"
	status := "sick"
	e, err := env.employee.Update(ctx, testSID, "e3", &dto.UpdateEmployeeRequest{Name: &name, Status: &status})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if e.Name != name || e.Status != "sick" || e.Position != "Бариста" {
		t.Errorf("部分更新结果不符: %+v", e.Employee)
	}
	if n := env.lastNotification(t, testSID); n.Message != name+" — данные обновлены" {
		t.Errorf("提示不符: %s", n.Message)
	}

	if _, err := env.employee.Update(ctx, testSID, "e404", &dto.UpdateEmployeeRequest{Name: &name}); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("期望 ErrEmployeeNotFound，实际: %v", err)
	}
}

func TestEmployeeService_Filters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	roles, err := env.employee.JobRoles(ctx)
	if err != nil {
		t.Fatalf("JobRoles 应成功: %v", err)
	}
	if len(roles) != 6 || roles[0] != "Врач" {
		t.Errorf("工种去重结果不符: %v", roles)
	}

	locs, err := env.employee.Locations(ctx)
	if err != nil {
		t.Fatalf("Locations 应成功: %v", err)
	}
	if len(locs) != 5 {
		t.Errorf("期望 5 个地点，实际 %v", locs)
	}
}
