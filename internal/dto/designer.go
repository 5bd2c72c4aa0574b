package dto

import "github.com/maplol/adaptix-mvp/internal/model"

// ── 表单设计器模块 DTO ──

// AddWidgetRequest 从组件面板拖入画布
type AddWidgetRequest struct {
	Type string `json:"type" binding:"required,max=32"`
}

// UpdateWidgetRequest 浅合并组件属性，对该类型不适用的属性被忽略
type UpdateWidgetRequest struct {
	Label       *string   `json:"label"       binding:"omitempty,max=200"`
	Placeholder *string   `json:"placeholder" binding:"omitempty,max=200"`
	Options     *[]string `json:"options"     binding:"omitempty,max=50,dive,max=200"`
	Required    *bool     `json:"required"`
	Description *string   `json:"description" binding:"omitempty,max=1000"`
}

// MoveWidgetRequest 上移 / 下移
type MoveWidgetRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// PaletteGroup 按分类分组的组件面板
type PaletteGroup struct {
	Category string            `json:"category"`
	Label    string            `json:"label"`
	Items    []model.WidgetDef `json:"items"`
}

// SchemaField 导出 schema 条目，只包含存在且非空的可选键
type SchemaField struct {
	Type        string   `json:"type"`
	Label       string   `json:"label"`
	Required    bool     `json:"required,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"`
	Description string   `json:"description,omitempty"`
}

// PreviewItem 预览投影：控件类型与该类型适用的属性
type PreviewItem struct {
	InstanceID  string   `json:"instance_id"`
	Type        string   `json:"type"`
	Control     string   `json:"control"`
	Label       string   `json:"label,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"`
	Required    bool     `json:"required,omitempty"`
	Description string   `json:"description,omitempty"`
}

// SchemaError 导入校验错误
type SchemaError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// MoveWidgetResponse 移动结果；到达边界时 Moved=false
type MoveWidgetResponse struct {
	Moved   bool                   `json:"moved"`
	Widgets []model.WidgetInstance `json:"widgets"`
}
