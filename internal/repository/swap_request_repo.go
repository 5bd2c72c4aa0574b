package repository

import (
	"context"

	"github.com/maplol/adaptix-mvp/internal/model"
)

// SwapRequestRepository 换班申请数据访问接口
type SwapRequestRepository interface {
	// CreatePending 同一员工对同一班次已有待处理申请时不创建，返回 false
	CreatePending(ctx context.Context, req *model.SwapRequest) (bool, error)
	CountPending(ctx context.Context) (int, error)
	Load(reqs []model.SwapRequest)
}

type swapRequestRepo struct {
	table *memTable[model.SwapRequest]
}

// NewSwapRequestRepo 创建 SwapRequestRepository 实例
func NewSwapRequestRepo() SwapRequestRepository {
	return &swapRequestRepo{
		table: newMemTable[model.SwapRequest](func(r *model.SwapRequest) string { return r.ID }, nil),
	}
}

func (r *swapRequestRepo) CreatePending(ctx context.Context, req *model.SwapRequest) (bool, error) {
	created := r.table.insertUnless(*req, func(existing *model.SwapRequest) bool {
		return existing.EmployeeID == req.EmployeeID &&
			existing.ShiftID == req.ShiftID &&
			existing.Status == model.SwapPending
	})
	return created, nil
}

func (r *swapRequestRepo) CountPending(ctx context.Context) (int, error) {
	return r.table.count(func(req *model.SwapRequest) bool { return req.Status == model.SwapPending }), nil
}

func (r *swapRequestRepo) Load(reqs []model.SwapRequest) {
	r.table.load(reqs)
}
