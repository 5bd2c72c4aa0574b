package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/maplol/adaptix-mvp/internal/dto"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool     { return &b }

func TestDesignerService_Palette(t *testing.T) {
	env := newTestEnv(t)

	groups := env.designer.Palette()
	if len(groups) != 3 {
		t.Fatalf("期望 3 个分类，实际=%d", len(groups))
	}
	total := 0
	for _, g := range groups {
		total += len(g.Items)
		if g.Label == "" {
			t.Errorf("分类 %s 缺少标题", g.Category)
		}
	}
	if total != 12 {
		t.Errorf("期望 12 种组件，实际=%d", total)
	}
}

func TestDesignerService_AddWidget_Defaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		widgetType  string
		label       string
		placeholder string
		options     int
	}{
		{"text", "Текстовое поле", "Введите текст...", 0},
		{"select", "Выпадающий список", "", 3},
		{"divider", "Разделитель", "", 0},
		{"heading", "Заголовок формы", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.widgetType, func(t *testing.T) {
			w, err := env.designer.AddWidget(ctx, tt.widgetType)
			if err != nil {
				t.Fatalf("AddWidget 应成功: %v", err)
			}
			if w.Label != tt.label {
				t.Errorf("期望标题=%q，实际=%q", tt.label, w.Label)
			}
			if w.Placeholder != tt.placeholder {
				t.Errorf("期望占位符=%q，实际=%q", tt.placeholder, w.Placeholder)
			}
			if len(w.Options) != tt.options {
				t.Errorf("期望 %d 个选项，实际=%d", tt.options, len(w.Options))
			}
			if w.Required {
				t.Error("新组件 required 应为 false")
			}
			if !strings.HasPrefix(w.InstanceID, "inst-") {
				t.Errorf("实例 ID 前缀不符: %s", w.InstanceID)
			}
		})
	}

	canvas, _ := env.designer.Canvas(ctx)
	if len(canvas) != 11+len(tests) {
		t.Errorf("组件应追加到末尾，实际数量=%d", len(canvas))
	}
	if canvas[len(canvas)-1].Type != "heading" {
		t.Errorf("末尾应为最后添加的组件，实际=%s", canvas[len(canvas)-1].Type)
	}
}

func TestDesignerService_AddWidget_UnknownType(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.designer.AddWidget(context.Background(), "video"); !errors.Is(err, ErrUnknownWidgetType) {
		t.Errorf("期望 ErrUnknownWidgetType，实际: %v", err)
	}
}

func TestDesignerService_UpdateWidget_IgnoresInapplicable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// demo-0 为 heading，不支持 placeholder / options / required
	w, err := env.designer.UpdateWidget(ctx, "demo-0", &dto.UpdateWidgetRequest{
		Label:       strPtr("Новый заголовок"),
		Placeholder: strPtr("не применимо"),
		Options:     &[]string{"a"},
		Required:    boolPtr(true),
	})
	if err != nil {
		t.Fatalf("UpdateWidget 应成功: %v", err)
	}
	if w.Label != "Новый заголовок" {
		t.Errorf("标题应更新，实际=%s", w.Label)
	}
	if w.Placeholder != "" || len(w.Options) != 0 || w.Required {
		t.Errorf("不适用的属性应被忽略: %+v", w)
	}

	// demo-3 为 text
	w, err = env.designer.UpdateWidget(ctx, "demo-3", &dto.UpdateWidgetRequest{Required: boolPtr(false), Placeholder: strPtr("ФИО")})
	if err != nil {
		t.Fatalf("UpdateWidget 应成功: %v", err)
	}
	if w.Required || w.Placeholder != "ФИО" {
		t.Errorf("适用属性应更新: %+v", w)
	}

	if _, err := env.designer.UpdateWidget(ctx, "nope", &dto.UpdateWidgetRequest{}); !errors.Is(err, ErrWidgetNotFound) {
		t.Errorf("期望 ErrWidgetNotFound，实际: %v", err)
	}
}

func TestDesignerService_MoveWidget(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.designer.MoveWidget(ctx, "demo-0", "up")
	if err != nil {
		t.Fatalf("MoveWidget 应成功: %v", err)
	}
	if resp.Moved {
		t.Error("首个组件上移应为无操作")
	}

	resp, err = env.designer.MoveWidget(ctx, "demo-10", "down")
	if err != nil || resp.Moved {
		t.Errorf("末尾组件下移应为无操作: moved=%v err=%v", resp != nil && resp.Moved, err)
	}

	resp, err = env.designer.MoveWidget(ctx, "demo-1", "up")
	if err != nil || !resp.Moved {
		t.Fatalf("MoveWidget 应成功: %v", err)
	}
	if resp.Widgets[0].InstanceID != "demo-1" || resp.Widgets[1].InstanceID != "demo-0" {
		t.Errorf("交换结果不符: %s, %s", resp.Widgets[0].InstanceID, resp.Widgets[1].InstanceID)
	}

	if _, err := env.designer.MoveWidget(ctx, "nope", "down"); !errors.Is(err, ErrWidgetNotFound) {
		t.Errorf("期望 ErrWidgetNotFound，实际: %v", err)
	}
}

func TestDesignerService_RemoveAndClear(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	removed, err := env.designer.RemoveWidget(ctx, "demo-2")
	if err != nil || !removed {
		t.Fatalf("RemoveWidget 应成功: removed=%v err=%v", removed, err)
	}
	removed, err = env.designer.RemoveWidget(ctx, "demo-2")
	if err != nil || removed {
		t.Errorf("重复删除应为无操作: removed=%v err=%v", removed, err)
	}

	if err := env.designer.ClearCanvas(ctx); err != nil {
		t.Fatalf("ClearCanvas 应成功: %v", err)
	}
	schema, _ := env.designer.Schema(ctx)
	if len(schema) != 0 {
		t.Errorf("清空后 schema 应为空，实际=%d", len(schema))
	}
}

func TestDesignerService_Schema_Sparse(t *testing.T) {
	env := newTestEnv(t)

	schema, err := env.designer.Schema(context.Background())
	if err != nil {
		t.Fatalf("Schema 应成功: %v", err)
	}
	if len(schema) != 11 {
		t.Fatalf("期望 11 个字段，实际=%d", len(schema))
	}

	raw, _ := json.Marshal(schema)
	var entries []map[string]interface{}
	if err := json.Unmarshal(raw, &entries); err != nil {
		t.Fatalf("解析 schema JSON 失败: %v", err)
	}

	// heading 只含 type 与 label
	if len(entries[0]) != 2 {
		t.Errorf("heading 应只有 type/label，实际=%v", entries[0])
	}
	// divider 的空标题仍输出 label 键
	if label, ok := entries[2]["label"]; !ok || label != "" {
		t.Errorf("divider 应保留空 label，实际=%v", entries[2])
	}
	// email：required + placeholder
	if entries[4]["required"] != true || entries[4]["placeholder"] != "ivan@adaptix.com" {
		t.Errorf("email 条目不符: %v", entries[4])
	}
	if _, ok := entries[4]["options"]; ok {
		t.Error("email 不应输出 options")
	}
	// textarea 非必填：不输出 required
	if _, ok := entries[8]["required"]; ok {
		t.Error("非必填条目不应输出 required 键")
	}
}

func TestDesignerService_Preview(t *testing.T) {
	env := newTestEnv(t)

	items, err := env.designer.Preview(context.Background())
	if err != nil {
		t.Fatalf("Preview 应成功: %v", err)
	}
	controls := map[string]string{}
	for _, it := range items {
		controls[it.Type] = it.Control
	}
	if controls["divider"] != "hr" || controls["radio"] != "radio-group" || controls["email"] != "input:email" {
		t.Errorf("控件映射不符: %v", controls)
	}
}

func TestDesignerService_ImportSchema(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	doc := []byte(`[
		{"type": "heading", "label": "Анкета"},
		{"type": "select", "label": "Смена", "options": ["Утро", "Вечер"], "required": true},
		{"type": "heading", "label": "Игнор", "placeholder": "не применимо"}
	]`)
	widgets, err := env.designer.ImportSchema(ctx, doc)
	if err != nil {
		t.Fatalf("ImportSchema 应成功: %v", err)
	}
	if len(widgets) != 3 {
		t.Fatalf("期望 3 个组件，实际=%d", len(widgets))
	}
	if widgets[2].Placeholder != "" {
		t.Error("不适用的属性导入时应丢弃")
	}

	canvas, _ := env.designer.Canvas(ctx)
	if len(canvas) != 3 || canvas[0].Label != "Анкета" {
		t.Errorf("导入应替换整个画布: %+v", canvas)
	}
	seen := map[string]bool{}
	for _, w := range canvas {
		if seen[w.InstanceID] || !strings.HasPrefix(w.InstanceID, "inst-") {
			t.Errorf("实例 ID 不符: %s", w.InstanceID)
		}
		seen[w.InstanceID] = true
	}
}

func TestDesignerService_ImportSchema_Invalid(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name string
		doc  string
	}{
		{"非法 JSON", `[{"type":`},
		{"未知类型", `[{"type": "video", "label": "x"}]`},
		{"缺少 label", `[{"type": "text"}]`},
		{"多余键", `[{"type": "text", "label": "x", "color": "red"}]`},
		{"非数组", `{"type": "text", "label": "x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.designer.ImportSchema(ctx, []byte(tt.doc))
			if !errors.Is(err, ErrInvalidFormSchema) {
				t.Fatalf("期望 ErrInvalidFormSchema，实际: %v", err)
			}
			var verr *SchemaValidationError
			if !errors.As(err, &verr) || len(verr.Errors) == 0 {
				t.Errorf("应携带逐项错误: %v", err)
			}
		})
	}

	// 校验失败时画布不变
	canvas, _ := env.designer.Canvas(ctx)
	if len(canvas) != 11 {
		t.Errorf("校验失败不应修改画布，实际数量=%d", len(canvas))
	}
}

func TestDesignerService_SaveForm(t *testing.T) {
	env := newTestEnv(t)

	schema, err := env.designer.SaveForm(context.Background(), testSID)
	if err != nil {
		t.Fatalf("SaveForm 应成功: %v", err)
	}
	if len(schema) != 11 {
		t.Errorf("期望 11 个字段，实际=%d", len(schema))
	}
	if n := env.lastNotification(t, testSID); n.Message != "Форма сохранена" {
		t.Errorf("提示不符: %s", n.Message)
	}
}
