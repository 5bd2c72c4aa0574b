package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/maplol/adaptix-mvp/internal/dto"
	"github.com/maplol/adaptix-mvp/internal/model"
	"github.com/maplol/adaptix-mvp/internal/repository"
	pkgerrors "github.com/maplol/adaptix-mvp/pkg/errors"
	"github.com/maplol/adaptix-mvp/pkg/idgen"
	"github.com/maplol/adaptix-mvp/pkg/metrics"
)

// ── 规则构建器模块业务错误 ──

var (
	ErrRuleNotFound         = errors.New("规则不存在")
	ErrInvalidGroupKind     = errors.New("未知分组方式")
	ErrRuleGroupNotFound    = errors.New("规则分组不存在")
	ErrRuleNameRequired     = errors.New("规则名称不能为空")
	ErrInvalidRuleAction    = errors.New("未知规则动作")
	ErrInvalidConditionSpec = errors.New("条件字段、运算符或值无效")
)

// RuleService 规则构建器业务接口
//
// 规则按动作或端点分组；分组计数每次实时计算。条件只做词表校验，
// 不检查值与字段的语义是否匹配。
type RuleService interface {
	Vocabulary() *dto.VocabularyResponse
	Groups(ctx context.Context, kind string) ([]dto.RuleGroupResponse, error)
	GetGroup(ctx context.Context, kind, key string) (*dto.RuleGroupDetailResponse, error)
	ListRulesForGroup(ctx context.Context, kind, key string) ([]model.Rule, error)
	GetRule(ctx context.Context, id string) (*model.Rule, error)
	CreateRule(ctx context.Context, sid, kind, key string, req *dto.CreateRuleRequest) (*model.Rule, error)
	UpdateRule(ctx context.Context, sid, id string, req *dto.UpdateRuleRequest) (*model.Rule, error)
	ToggleRule(ctx context.Context, sid, id string) (*model.Rule, error)
	DeleteRule(ctx context.Context, sid, id string) error
}

type ruleService struct {
	repo     *repository.Repository
	notifier NotificationService
	ruleSeq  *idgen.Sequence
	condSeq  *idgen.Sequence
	logger   *zap.Logger
}

// NewRuleService 创建 RuleService 实例
func NewRuleService(repo *repository.Repository, notifier NotificationService, logger *zap.Logger) RuleService {
	return &ruleService{
		repo:     repo,
		notifier: notifier,
		ruleSeq:  idgen.NewSequence(200),
		condSeq:  idgen.NewSequence(200),
		logger:   logger,
	}
}

func (s *ruleService) Vocabulary() *dto.VocabularyResponse {
	return &dto.VocabularyResponse{
		Fields:    model.ConditionFields,
		Operators: model.Operators,
		Actions:   model.ActionDefs,
		Endpoints: model.EndpointDefs,
	}
}

// ════════════════════════════════════════════════════════════
// 分组
// ════════════════════════════════════════════════════════════

// groupDef 查找分组定义
func groupDef(kind, key string) (dto.RuleGroupResponse, error) {
	switch kind {
	case model.GroupByAction:
		a, ok := model.FindAction(key)
		if !ok {
			return dto.RuleGroupResponse{}, ErrRuleGroupNotFound
		}
		return dto.RuleGroupResponse{
			Kind: kind, Key: a.ID, Label: a.Label, Description: a.Description, Icon: a.Icon, Color: a.Color,
		}, nil
	case model.GroupByEndpoint:
		e, ok := model.FindEndpoint(key)
		if !ok {
			return dto.RuleGroupResponse{}, ErrRuleGroupNotFound
		}
		return dto.RuleGroupResponse{
			Kind: kind, Key: e.ID, Label: e.Label, Description: e.Description, Icon: e.Icon,
		}, nil
	default:
		return dto.RuleGroupResponse{}, ErrInvalidGroupKind
	}
}

func groupKeys(kind string) ([]string, error) {
	switch kind {
	case model.GroupByAction:
		keys := make([]string, len(model.ActionDefs))
		for i, a := range model.ActionDefs {
			keys[i] = a.ID
		}
		return keys, nil
	case model.GroupByEndpoint:
		keys := make([]string, len(model.EndpointDefs))
		for i, e := range model.EndpointDefs {
			keys[i] = e.ID
		}
		return keys, nil
	default:
		return nil, ErrInvalidGroupKind
	}
}

func (s *ruleService) Groups(ctx context.Context, kind string) ([]dto.RuleGroupResponse, error) {
	keys, err := groupKeys(kind)
	if err != nil {
		return nil, err
	}

	groups := make([]dto.RuleGroupResponse, 0, len(keys))
	for _, key := range keys {
		g, _ := groupDef(kind, key)
		n, err := s.repo.Rule.CountByGroup(ctx, kind, key)
		if err != nil {
			s.logger.Error("统计分组规则数失败", zap.String("kind", kind), zap.String("key", key), zap.Error(err))
			return nil, err
		}
		g.RulesCount = n
		groups = append(groups, g)
	}
	return groups, nil
}

func (s *ruleService) ListRulesForGroup(ctx context.Context, kind, key string) ([]model.Rule, error) {
	if _, err := groupDef(kind, key); err != nil {
		return nil, err
	}
	rules, err := s.repo.Rule.ListByGroup(ctx, kind, key)
	if err != nil {
		s.logger.Error("查询分组规则失败", zap.String("kind", kind), zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return rules, nil
}

func (s *ruleService) GetGroup(ctx context.Context, kind, key string) (*dto.RuleGroupDetailResponse, error) {
	g, err := groupDef(kind, key)
	if err != nil {
		return nil, err
	}
	rules, err := s.ListRulesForGroup(ctx, kind, key)
	if err != nil {
		return nil, err
	}
	g.RulesCount = len(rules)
	return &dto.RuleGroupDetailResponse{Group: g, Rules: rules}, nil
}

// ════════════════════════════════════════════════════════════
// 规则 CRUD
// ════════════════════════════════════════════════════════════

func (s *ruleService) GetRule(ctx context.Context, id string) (*model.Rule, error) {
	rule, err := s.repo.Rule.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrRecordNotFound) {
			return nil, ErrRuleNotFound
		}
		s.logger.Error("查询规则失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return rule, nil
}

// buildConditions 校验条件并为缺少 ID 的条件分配 c_new_N
func (s *ruleService) buildConditions(reqs []dto.ConditionRequest) ([]model.Condition, error) {
	conds := make([]model.Condition, 0, len(reqs))
	for _, r := range reqs {
		value := strings.TrimSpace(r.Value)
		if !model.IsValidConditionField(r.Field) || !model.IsValidOperator(r.Op) || value == "" {
			return nil, ErrInvalidConditionSpec
		}
		id := r.ID
		if id == "" {
			id = s.condSeq.NextID("c_new_")
		}
		conds = append(conds, model.Condition{ID: id, Field: r.Field, Op: r.Op, Value: value})
	}
	return conds, nil
}

// CreateRule 在分组内新建规则，分组键写入 actionId 或 endpoint
func (s *ruleService) CreateRule(ctx context.Context, sid, kind, key string, req *dto.CreateRuleRequest) (*model.Rule, error) {
	// 1. 分组
	if _, err := groupDef(kind, key); err != nil {
		return nil, err
	}

	// 2. 名称与条件
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrRuleNameRequired
	}
	conds, err := s.buildConditions(req.Conditions)
	if err != nil {
		return nil, err
	}

	rule := &model.Rule{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Conditions:  conds,
		Active:      true,
	}

	// 3. 分组键
	if kind == model.GroupByAction {
		rule.ActionID = key
	} else {
		if _, ok := model.FindAction(req.ActionID); !ok {
			return nil, ErrInvalidRuleAction
		}
		rule.ActionID = req.ActionID
		rule.Endpoint = key
	}

	rule.ID = s.ruleSeq.NextID("r_")
	if err := s.repo.Rule.Create(ctx, rule); err != nil {
		s.logger.Error("创建规则失败", zap.Error(err))
		return nil, err
	}

	metrics.RuleMutations.WithLabelValues("create").Inc()
	s.notifier.Notify(sid, fmt.Sprintf("Правило «%s» создано", rule.Name), model.NotifySuccess)
	s.logger.Info("创建规则", zap.String("id", rule.ID), zap.String("kind", kind), zap.String("key", key))
	return rule, nil
}

// UpdateRule 合并名称、描述与条件；按端点分组的规则可修改动作，
// 按动作分组的规则保持原分组。
func (s *ruleService) UpdateRule(ctx context.Context, sid, id string, req *dto.UpdateRuleRequest) (*model.Rule, error) {
	rule, err := s.repo.Rule.Update(ctx, id, func(r *model.Rule) error {
		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return ErrRuleNameRequired
			}
			r.Name = name
		}
		if req.Description != nil {
			r.Description = strings.TrimSpace(*req.Description)
		}
		if req.Conditions != nil {
			conds, err := s.buildConditions(*req.Conditions)
			if err != nil {
				return err
			}
			r.Conditions = conds
		}
		if req.ActionID != nil && r.Endpoint != "" {
			if _, ok := model.FindAction(*req.ActionID); !ok {
				return ErrInvalidRuleAction
			}
			r.ActionID = *req.ActionID
		}
		return nil
	})
	if err != nil {
		return nil, s.mapUpdateError("更新规则失败", id, err)
	}

	metrics.RuleMutations.WithLabelValues("update").Inc()
	s.notifier.Notify(sid, fmt.Sprintf("Правило «%s» обновлено", rule.Name), model.NotifySuccess)
	return rule, nil
}

// ToggleRule 在仓储写锁内翻转 active，并发切换不会相互覆盖
func (s *ruleService) ToggleRule(ctx context.Context, sid, id string) (*model.Rule, error) {
	rule, err := s.repo.Rule.Update(ctx, id, func(r *model.Rule) error {
		r.Active = !r.Active
		return nil
	})
	if err != nil {
		return nil, s.mapUpdateError("切换规则状态失败", id, err)
	}

	metrics.RuleMutations.WithLabelValues("toggle").Inc()
	s.logger.Info("切换规则状态", zap.String("id", id), zap.Bool("active", rule.Active))
	return rule, nil
}

// mapUpdateError 业务错误原样返回，记录不存在转换为 ErrRuleNotFound
func (s *ruleService) mapUpdateError(msg, id string, err error) error {
	switch {
	case errors.Is(err, pkgerrors.ErrRecordNotFound):
		return ErrRuleNotFound
	case errors.Is(err, ErrRuleNameRequired), errors.Is(err, ErrInvalidConditionSpec), errors.Is(err, ErrInvalidRuleAction):
		return err
	}
	s.logger.Error(msg, zap.String("id", id), zap.Error(err))
	return err
}

func (s *ruleService) DeleteRule(ctx context.Context, sid, id string) error {
	rule, err := s.GetRule(ctx, id)
	if err != nil {
		return err
	}

	removed, err := s.repo.Rule.Delete(ctx, id)
	if err != nil {
		s.logger.Error("删除规则失败", zap.String("id", id), zap.Error(err))
		return err
	}
	if !removed {
		return ErrRuleNotFound
	}

	metrics.RuleMutations.WithLabelValues("delete").Inc()
	s.notifier.Notify(sid, fmt.Sprintf("Правило «%s» удалено", rule.Name), model.NotifyInfo)
	return nil
}
