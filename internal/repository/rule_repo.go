package repository

import (
	"context"

	"github.com/maplol/adaptix-mvp/internal/model"
	pkgerrors "github.com/maplol/adaptix-mvp/pkg/errors"
)

// RuleRepository 规则数据访问接口
type RuleRepository interface {
	GetByID(ctx context.Context, id string) (*model.Rule, error)
	List(ctx context.Context) ([]model.Rule, error)
	ListByGroup(ctx context.Context, kind, key string) ([]model.Rule, error)
	CountByGroup(ctx context.Context, kind, key string) (int, error)
	Create(ctx context.Context, rule *model.Rule) error
	// Update 原子地读取-修改-写回；fn 返回错误时不做任何修改
	Update(ctx context.Context, id string, fn func(*model.Rule) error) (*model.Rule, error)
	Delete(ctx context.Context, id string) (bool, error)
	Load(rules []model.Rule)
}

type ruleRepo struct {
	table *memTable[model.Rule]
}

// NewRuleRepo 创建 RuleRepository 实例
func NewRuleRepo() RuleRepository {
	return &ruleRepo{
		table: newMemTable(func(r *model.Rule) string { return r.ID }, model.Rule.Clone),
	}
}

func (r *ruleRepo) GetByID(ctx context.Context, id string) (*model.Rule, error) {
	rule, ok := r.table.get(id)
	if !ok {
		return nil, pkgerrors.ErrRecordNotFound
	}
	return &rule, nil
}

func (r *ruleRepo) List(ctx context.Context) ([]model.Rule, error) {
	return r.table.list(nil), nil
}

func (r *ruleRepo) ListByGroup(ctx context.Context, kind, key string) ([]model.Rule, error) {
	return r.table.list(func(rule *model.Rule) bool { return rule.GroupKey(kind) == key }), nil
}

func (r *ruleRepo) CountByGroup(ctx context.Context, kind, key string) (int, error) {
	return r.table.count(func(rule *model.Rule) bool { return rule.GroupKey(kind) == key }), nil
}

func (r *ruleRepo) Create(ctx context.Context, rule *model.Rule) error {
	r.table.insert(*rule)
	return nil
}

func (r *ruleRepo) Update(ctx context.Context, id string, fn func(*model.Rule) error) (*model.Rule, error) {
	updated, err := r.table.update(id, fn)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *ruleRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.table.remove(id), nil
}

func (r *ruleRepo) Load(rules []model.Rule) {
	r.table.load(rules)
}
