package repository

import (
	"context"

	"github.com/maplol/adaptix-mvp/internal/model"
	pkgerrors "github.com/maplol/adaptix-mvp/pkg/errors"
)

// ShiftRepository 班次数据访问接口
type ShiftRepository interface {
	GetByID(ctx context.Context, id string) (*model.Shift, error)
	List(ctx context.Context) ([]model.Shift, error)
	ListByCell(ctx context.Context, employeeID, date string) ([]model.Shift, error)
	ListByDateRange(ctx context.Context, from, to string) ([]model.Shift, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]model.Shift, error)
	ListOpen(ctx context.Context) ([]model.Shift, error)
	CountOpen(ctx context.Context) (int, error)
	Create(ctx context.Context, shift *model.Shift) error
	// Update 原子地读取-修改-写回；fn 返回错误时不做任何修改
	Update(ctx context.Context, id string, fn func(*model.Shift) error) (*model.Shift, error)
	Delete(ctx context.Context, id string) (bool, error)
	Load(shifts []model.Shift)
}

type shiftRepo struct {
	table *memTable[model.Shift]
}

// NewShiftRepo 创建 ShiftRepository 实例
func NewShiftRepo() ShiftRepository {
	return &shiftRepo{
		table: newMemTable[model.Shift](func(s *model.Shift) string { return s.ID }, nil),
	}
}

func (r *shiftRepo) GetByID(ctx context.Context, id string) (*model.Shift, error) {
	s, ok := r.table.get(id)
	if !ok {
		return nil, pkgerrors.ErrRecordNotFound
	}
	return &s, nil
}

func (r *shiftRepo) List(ctx context.Context) ([]model.Shift, error) {
	return r.table.list(nil), nil
}

func (r *shiftRepo) ListByCell(ctx context.Context, employeeID, date string) ([]model.Shift, error) {
	return r.table.list(func(s *model.Shift) bool {
		return s.EmployeeID == employeeID && s.Date == date
	}), nil
}

// ListByDateRange 日期闭区间 [from, to]，YYYY-MM-DD 可按字典序比较
func (r *shiftRepo) ListByDateRange(ctx context.Context, from, to string) ([]model.Shift, error) {
	return r.table.list(func(s *model.Shift) bool {
		return s.Date >= from && s.Date <= to
	}), nil
}

func (r *shiftRepo) ListByEmployee(ctx context.Context, employeeID string) ([]model.Shift, error) {
	return r.table.list(func(s *model.Shift) bool { return s.EmployeeID == employeeID }), nil
}

func (r *shiftRepo) ListOpen(ctx context.Context) ([]model.Shift, error) {
	return r.table.list(func(s *model.Shift) bool { return s.Status == model.ShiftOpen }), nil
}

func (r *shiftRepo) CountOpen(ctx context.Context) (int, error) {
	return r.table.count(func(s *model.Shift) bool { return s.Status == model.ShiftOpen }), nil
}

func (r *shiftRepo) Create(ctx context.Context, shift *model.Shift) error {
	r.table.insert(*shift)
	return nil
}

func (r *shiftRepo) Update(ctx context.Context, id string, fn func(*model.Shift) error) (*model.Shift, error) {
	updated, err := r.table.update(id, fn)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete 删除班次，返回是否确有记录被删除
func (r *shiftRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.table.remove(id), nil
}

func (r *shiftRepo) Load(shifts []model.Shift) {
	r.table.load(shifts)
}
