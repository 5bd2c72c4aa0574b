package repository

import (
	"context"

	"github.com/maplol/adaptix-mvp/internal/model"
	pkgerrors "github.com/maplol/adaptix-mvp/pkg/errors"
)

// WidgetRepository 设计器画布（有序组件列表）数据访问接口
type WidgetRepository interface {
	GetByID(ctx context.Context, instanceID string) (*model.WidgetInstance, error)
	List(ctx context.Context) ([]model.WidgetInstance, error)
	Append(ctx context.Context, widget *model.WidgetInstance) error
	// Update 原子地读取-修改-写回；fn 返回错误时不做任何修改
	Update(ctx context.Context, id string, fn func(*model.WidgetInstance) error) (*model.WidgetInstance, error)
	Delete(ctx context.Context, instanceID string) (bool, error)
	// Move 与相邻组件交换位置，delta 为 -1（上移）或 +1（下移）；到达边界时 moved=false
	Move(ctx context.Context, instanceID string, delta int) (bool, error)
	Clear(ctx context.Context) error
	Load(widgets []model.WidgetInstance)
}

type widgetRepo struct {
	table *memTable[model.WidgetInstance]
}

// NewWidgetRepo 创建 WidgetRepository 实例
func NewWidgetRepo() WidgetRepository {
	return &widgetRepo{
		table: newMemTable(func(w *model.WidgetInstance) string { return w.InstanceID }, model.WidgetInstance.Clone),
	}
}

func (r *widgetRepo) GetByID(ctx context.Context, instanceID string) (*model.WidgetInstance, error) {
	w, ok := r.table.get(instanceID)
	if !ok {
		return nil, pkgerrors.ErrRecordNotFound
	}
	return &w, nil
}

func (r *widgetRepo) List(ctx context.Context) ([]model.WidgetInstance, error) {
	return r.table.list(nil), nil
}

func (r *widgetRepo) Append(ctx context.Context, widget *model.WidgetInstance) error {
	r.table.insert(*widget)
	return nil
}

func (r *widgetRepo) Update(ctx context.Context, id string, fn func(*model.WidgetInstance) error) (*model.WidgetInstance, error) {
	updated, err := r.table.update(id, fn)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *widgetRepo) Delete(ctx context.Context, instanceID string) (bool, error) {
	return r.table.remove(instanceID), nil
}

func (r *widgetRepo) Move(ctx context.Context, instanceID string, delta int) (bool, error) {
	moved, found := r.table.swapWithNeighbor(instanceID, delta)
	if !found {
		return false, pkgerrors.ErrRecordNotFound
	}
	return moved, nil
}

func (r *widgetRepo) Clear(ctx context.Context) error {
	r.table.clear()
	return nil
}

func (r *widgetRepo) Load(widgets []model.WidgetInstance) {
	r.table.load(widgets)
}
