package dto

import "github.com/maplol/adaptix-mvp/internal/model"

// ── 规则构建器模块 DTO ──

// ConditionRequest 条件 (field op value)
//
// ID 为空时由服务端分配；字段与运算符须取自词表，值为非空自由文本。
type ConditionRequest struct {
	ID    string `json:"id"    binding:"omitempty,max=64"`
	Field string `json:"field" binding:"required,max=64"`
	Op    string `json:"op"    binding:"required,max=2"`
	Value string `json:"value" binding:"required,max=200"`
}

// CreateRuleRequest 在分组内新建规则
//
// 按动作分组时动作即分组键，ActionID 被忽略；按端点分组时 ActionID 必填。
type CreateRuleRequest struct {
	Name        string             `json:"name"        binding:"required,max=200"`
	Description string             `json:"description" binding:"omitempty,max=500"`
	Conditions  []ConditionRequest `json:"conditions"  binding:"omitempty,dive"`
	ActionID    string             `json:"action_id"   binding:"omitempty,max=64"`
}

// UpdateRuleRequest 部分更新规则，不改变分组归属
type UpdateRuleRequest struct {
	Name        *string             `json:"name"        binding:"omitempty,max=200"`
	Description *string             `json:"description" binding:"omitempty,max=500"`
	Conditions  *[]ConditionRequest `json:"conditions"  binding:"omitempty,dive"`
	ActionID    *string             `json:"action_id"   binding:"omitempty,max=64"`
}

// VocabularyResponse 编辑器可选词表
type VocabularyResponse struct {
	Fields    []string            `json:"fields"`
	Operators []string            `json:"operators"`
	Actions   []model.ActionDef   `json:"actions"`
	Endpoints []model.EndpointDef `json:"endpoints"`
}

// RuleGroupResponse 分组卡片
type RuleGroupResponse struct {
	Kind        string `json:"kind"`
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color,omitempty"`
	RulesCount  int    `json:"rules_count"`
}

// RuleGroupDetailResponse 分组详情
type RuleGroupDetailResponse struct {
	Group RuleGroupResponse `json:"group"`
	Rules []model.Rule      `json:"rules"`
}
