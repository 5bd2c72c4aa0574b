package service

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/maplol/adaptix-mvp/internal/dto"
	"github.com/maplol/adaptix-mvp/internal/mockdata"
	"github.com/maplol/adaptix-mvp/internal/model"
	"github.com/maplol/adaptix-mvp/internal/repository"
	pkgerrors "github.com/maplol/adaptix-mvp/pkg/errors"
	"github.com/maplol/adaptix-mvp/pkg/idgen"
	"github.com/maplol/adaptix-mvp/pkg/metrics"
)

// ── 表单设计器模块业务错误 ──

var (
	ErrUnknownWidgetType = errors.New("未知组件类型")
	ErrWidgetNotFound    = errors.New("组件不存在")
)

// DesignerService 表单设计器业务接口
type DesignerService interface {
	Palette() []dto.PaletteGroup
	Canvas(ctx context.Context) ([]model.WidgetInstance, error)
	AddWidget(ctx context.Context, widgetType string) (*model.WidgetInstance, error)
	UpdateWidget(ctx context.Context, id string, req *dto.UpdateWidgetRequest) (*model.WidgetInstance, error)
	RemoveWidget(ctx context.Context, id string) (bool, error)
	MoveWidget(ctx context.Context, id, direction string) (*dto.MoveWidgetResponse, error)
	ClearCanvas(ctx context.Context) error

	// 导出 schema 与预览
	Schema(ctx context.Context) ([]dto.SchemaField, error)
	Preview(ctx context.Context) ([]dto.PreviewItem, error)
	// 校验并导入 schema，替换当前画布
	ImportSchema(ctx context.Context, doc []byte) ([]model.WidgetInstance, error)
	SaveForm(ctx context.Context, sid string) ([]dto.SchemaField, error)
}

type designerService struct {
	repo      *repository.Repository
	notifier  NotificationService
	widgetSeq *idgen.Sequence
	logger    *zap.Logger

	validatorOnce sync.Once
	validator     *formSchemaValidator
	validatorErr  error
}

// NewDesignerService 创建 DesignerService 实例
func NewDesignerService(repo *repository.Repository, notifier NotificationService, logger *zap.Logger) DesignerService {
	return &designerService{
		repo:      repo,
		notifier:  notifier,
		widgetSeq: idgen.NewSequence(100),
		logger:    logger,
	}
}

func (s *designerService) Palette() []dto.PaletteGroup {
	groups := make([]dto.PaletteGroup, 0, len(model.Categories))
	for _, cat := range model.Categories {
		items := make([]model.WidgetDef, 0)
		for _, d := range model.Palette {
			if d.Category == cat {
				items = append(items, d)
			}
		}
		groups = append(groups, dto.PaletteGroup{Category: cat, Label: model.CategoryLabels[cat], Items: items})
	}
	return groups
}

func (s *designerService) Canvas(ctx context.Context) ([]model.WidgetInstance, error) {
	widgets, err := s.repo.Widget.List(ctx)
	if err != nil {
		s.logger.Error("查询画布失败", zap.Error(err))
		return nil, err
	}
	return widgets, nil
}

// ════════════════════════════════════════════════════════════
// 画布编辑
// ════════════════════════════════════════════════════════════

// newInstance 按类型默认值构造组件，仅保留该类型适用的属性
func (s *designerService) newInstance(def model.WidgetDef, src model.WidgetInstance) model.WidgetInstance {
	w := model.WidgetInstance{
		InstanceID: s.widgetSeq.NextID("inst-"),
		Type:       def.Type,
		Label:      src.Label,
	}
	if w.Label == "" {
		w.Label = def.Label
	}
	if def.HasPlaceholder {
		w.Placeholder = src.Placeholder
	}
	if def.HasOptions && len(src.Options) > 0 {
		w.Options = append([]string(nil), src.Options...)
	}
	if def.HasDescription {
		w.Description = src.Description
	}
	if def.HasRequired {
		w.Required = src.Required
	}
	return w
}

// AddWidget 从面板拖入画布，追加到末尾，required 初始为 false
func (s *designerService) AddWidget(ctx context.Context, widgetType string) (*model.WidgetInstance, error) {
	def, ok := model.FindWidgetDef(widgetType)
	if !ok {
		return nil, ErrUnknownWidgetType
	}

	w := s.newInstance(def, mockdata.WidgetDefaults(widgetType))
	if err := s.repo.Widget.Append(ctx, &w); err != nil {
		s.logger.Error("添加组件失败", zap.String("type", widgetType), zap.Error(err))
		return nil, err
	}

	metrics.WidgetMutations.WithLabelValues("add").Inc()
	return &w, nil
}

// UpdateWidget 浅合并；该类型不适用的属性被忽略
func (s *designerService) UpdateWidget(ctx context.Context, id string, req *dto.UpdateWidgetRequest) (*model.WidgetInstance, error) {
	w, err := s.repo.Widget.Update(ctx, id, func(w *model.WidgetInstance) error {
		def, ok := model.FindWidgetDef(w.Type)
		if !ok {
			return ErrUnknownWidgetType
		}
		if req.Label != nil {
			w.Label = *req.Label
		}
		if req.Placeholder != nil && def.HasPlaceholder {
			w.Placeholder = *req.Placeholder
		}
		if req.Options != nil && def.HasOptions {
			w.Options = append([]string(nil), (*req.Options)...)
		}
		if req.Required != nil && def.HasRequired {
			w.Required = *req.Required
		}
		if req.Description != nil && def.HasDescription {
			w.Description = *req.Description
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, pkgerrors.ErrRecordNotFound):
			return nil, ErrWidgetNotFound
		case errors.Is(err, ErrUnknownWidgetType):
			return nil, err
		}
		s.logger.Error("更新组件失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	metrics.WidgetMutations.WithLabelValues("update").Inc()
	return w, nil
}

func (s *designerService) RemoveWidget(ctx context.Context, id string) (bool, error) {
	removed, err := s.repo.Widget.Delete(ctx, id)
	if err != nil {
		s.logger.Error("删除组件失败", zap.String("id", id), zap.Error(err))
		return false, err
	}
	if removed {
		metrics.WidgetMutations.WithLabelValues("remove").Inc()
	}
	return removed, nil
}

// MoveWidget 与相邻组件交换；已在边界时保持不变（Moved=false）
func (s *designerService) MoveWidget(ctx context.Context, id, direction string) (*dto.MoveWidgetResponse, error) {
	delta := 1
	if direction == "up" {
		delta = -1
	}

	moved, err := s.repo.Widget.Move(ctx, id, delta)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrRecordNotFound) {
			return nil, ErrWidgetNotFound
		}
		s.logger.Error("移动组件失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if moved {
		metrics.WidgetMutations.WithLabelValues("move").Inc()
	}

	widgets, err := s.Canvas(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.MoveWidgetResponse{Moved: moved, Widgets: widgets}, nil
}

func (s *designerService) ClearCanvas(ctx context.Context) error {
	if err := s.repo.Widget.Clear(ctx); err != nil {
		s.logger.Error("清空画布失败", zap.Error(err))
		return err
	}
	metrics.WidgetMutations.WithLabelValues("clear").Inc()
	return nil
}

// ════════════════════════════════════════════════════════════
// 导出 / 预览 / 导入
// ════════════════════════════════════════════════════════════

// DeriveSchema 稀疏导出：只包含存在且非空的可选键
func DeriveSchema(widgets []model.WidgetInstance) []dto.SchemaField {
	out := make([]dto.SchemaField, 0, len(widgets))
	for _, w := range widgets {
		f := dto.SchemaField{
			Type:        w.Type,
			Label:       w.Label,
			Required:    w.Required,
			Placeholder: w.Placeholder,
			Description: w.Description,
		}
		if len(w.Options) > 0 {
			f.Options = append([]string(nil), w.Options...)
		}
		out = append(out, f)
	}
	return out
}

// DerivePreview 按类型映射控件，仅投影该类型适用的属性
func DerivePreview(widgets []model.WidgetInstance) []dto.PreviewItem {
	out := make([]dto.PreviewItem, 0, len(widgets))
	for _, w := range widgets {
		def, ok := model.FindWidgetDef(w.Type)
		if !ok {
			continue
		}
		item := dto.PreviewItem{
			InstanceID: w.InstanceID,
			Type:       w.Type,
			Control:    def.Control,
			Label:      w.Label,
		}
		if def.HasPlaceholder {
			item.Placeholder = w.Placeholder
		}
		if def.HasOptions {
			item.Options = w.Options
		}
		if def.HasRequired {
			item.Required = w.Required
		}
		if def.HasDescription {
			item.Description = w.Description
		}
		out = append(out, item)
	}
	return out
}

func (s *designerService) Schema(ctx context.Context) ([]dto.SchemaField, error) {
	widgets, err := s.Canvas(ctx)
	if err != nil {
		return nil, err
	}
	return DeriveSchema(widgets), nil
}

func (s *designerService) Preview(ctx context.Context) ([]dto.PreviewItem, error) {
	widgets, err := s.Canvas(ctx)
	if err != nil {
		return nil, err
	}
	return DerivePreview(widgets), nil
}

func (s *designerService) formValidator() (*formSchemaValidator, error) {
	s.validatorOnce.Do(func() {
		s.validator, s.validatorErr = newFormSchemaValidator()
	})
	return s.validator, s.validatorErr
}

// ImportSchema 校验通过后以全新实例替换整个画布
func (s *designerService) ImportSchema(ctx context.Context, doc []byte) ([]model.WidgetInstance, error) {
	v, err := s.formValidator()
	if err != nil {
		s.logger.Error("初始化表单 schema 校验器失败", zap.Error(err))
		return nil, err
	}
	fields, err := v.Parse(doc)
	if err != nil {
		return nil, err
	}

	widgets := make([]model.WidgetInstance, 0, len(fields))
	for _, f := range fields {
		def, ok := model.FindWidgetDef(f.Type)
		if !ok {
			return nil, ErrUnknownWidgetType
		}
		widgets = append(widgets, s.newInstance(def, model.WidgetInstance{
			Label:       f.Label,
			Placeholder: f.Placeholder,
			Options:     f.Options,
			Required:    f.Required,
			Description: f.Description,
		}))
	}

	if err := s.repo.Widget.Clear(ctx); err != nil {
		s.logger.Error("清空画布失败", zap.Error(err))
		return nil, err
	}
	for i := range widgets {
		if err := s.repo.Widget.Append(ctx, &widgets[i]); err != nil {
			s.logger.Error("导入组件失败", zap.Error(err))
			return nil, err
		}
	}

	metrics.WidgetMutations.WithLabelValues("import").Inc()
	s.logger.Info("导入表单 schema", zap.Int("widgets", len(widgets)))
	return widgets, nil
}

func (s *designerService) SaveForm(ctx context.Context, sid string) ([]dto.SchemaField, error) {
	schema, err := s.Schema(ctx)
	if err != nil {
		return nil, err
	}
	s.notifier.Notify(sid, "Форма сохранена", model.NotifySuccess)
	s.logger.Info("保存表单", zap.Int("fields", len(schema)))
	return schema, nil
}
