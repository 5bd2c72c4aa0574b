package repository

import (
	"context"

	"github.com/maplol/adaptix-mvp/internal/model"
	pkgerrors "github.com/maplol/adaptix-mvp/pkg/errors"
)

// EmployeeRepository 员工数据访问接口
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	// Update 原子地读取-修改-写回；fn 返回错误时不做任何修改
	Update(ctx context.Context, id string, fn func(*model.Employee) error) (*model.Employee, error)
	Load(employees []model.Employee)
}

type employeeRepo struct {
	table *memTable[model.Employee]
}

// NewEmployeeRepo 创建 EmployeeRepository 实例
func NewEmployeeRepo() EmployeeRepository {
	return &employeeRepo{
		table: newMemTable(func(e *model.Employee) string { return e.ID }, model.Employee.Clone),
	}
}

func (r *employeeRepo) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	e, ok := r.table.get(id)
	if !ok {
		return nil, pkgerrors.ErrRecordNotFound
	}
	return &e, nil
}

func (r *employeeRepo) List(ctx context.Context) ([]model.Employee, error) {
	return r.table.list(nil), nil
}

func (r *employeeRepo) Update(ctx context.Context, id string, fn func(*model.Employee) error) (*model.Employee, error) {
	updated, err := r.table.update(id, fn)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *employeeRepo) Load(employees []model.Employee) {
	r.table.load(employees)
}
