package model

// 组件分类
const (
	CategoryLayout = "layout"
	CategoryInput  = "input"
	CategoryChoice = "choice"
)

// Categories 分类顺序
var Categories = []string{CategoryLayout, CategoryInput, CategoryChoice}

// CategoryLabels 分类标题
var CategoryLabels = map[string]string{
	CategoryLayout: "Разметка",
	CategoryInput:  "Ввод данных",
	CategoryChoice: "Выбор",
}

// WidgetDef 组件面板条目
//
// Has* 标记该类型可编辑的可选属性，决定预览与导出 schema 中出现的键。
type WidgetDef struct {
	Type           string `json:"type"`
	Label          string `json:"label"`
	Icon           string `json:"icon"`
	Category       string `json:"category"`
	HasPlaceholder bool   `json:"has_placeholder"`
	HasOptions     bool   `json:"has_options"`
	HasDescription bool   `json:"has_description"`
	HasRequired    bool   `json:"has_required"`
	Control        string `json:"control"`
}

// WidgetInstance 画布上的组件实例
type WidgetInstance struct {
	InstanceID  string   `json:"instance_id"`
	Type        string   `json:"type"`
	Label       string   `json:"label"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"`
	Required    bool     `json:"required,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Clone 深拷贝（选项切片独立）
func (w WidgetInstance) Clone() WidgetInstance {
	if w.Options != nil {
		opts := make([]string, len(w.Options))
		copy(opts, w.Options)
		w.Options = opts
	}
	return w
}

// Palette 组件面板（顺序即展示顺序）
var Palette = []WidgetDef{
	{Type: "heading", Label: "Заголовок", Icon: "Heading1", Category: CategoryLayout, Control: "heading"},
	{Type: "paragraph", Label: "Описание / Текст", Icon: "AlignLeft", Category: CategoryLayout, HasDescription: true, HasRequired: true, Control: "paragraph"},
	{Type: "divider", Label: "Разделитель", Icon: "Minus", Category: CategoryLayout, Control: "hr"},
	{Type: "text", Label: "Текстовое поле", Icon: "Type", Category: CategoryInput, HasPlaceholder: true, HasRequired: true, Control: "input:text"},
	{Type: "textarea", Label: "Многострочное поле", Icon: "TextCursorInput", Category: CategoryInput, HasPlaceholder: true, HasRequired: true, Control: "textarea"},
	{Type: "number", Label: "Числовое поле", Icon: "Hash", Category: CategoryInput, HasPlaceholder: true, HasRequired: true, Control: "input:number"},
	{Type: "email", Label: "Email", Icon: "Mail", Category: CategoryInput, HasPlaceholder: true, HasRequired: true, Control: "input:email"},
	{Type: "date", Label: "Дата", Icon: "Calendar", Category: CategoryInput, HasRequired: true, Control: "input:date"},
	{Type: "select", Label: "Выпадающий список", Icon: "ListFilter", Category: CategoryChoice, HasOptions: true, HasRequired: true, Control: "select"},
	{Type: "radio", Label: "Выбор варианта", Icon: "CircleDot", Category: CategoryChoice, HasOptions: true, HasRequired: true, Control: "radio-group"},
	{Type: "checkbox", Label: "Чекбокс", Icon: "CheckSquare", Category: CategoryChoice, HasDescription: true, HasRequired: true, Control: "checkbox"},
	{Type: "toggle", Label: "Переключатель", Icon: "ToggleLeft", Category: CategoryChoice, HasDescription: true, HasRequired: true, Control: "switch"},
}

// FindWidgetDef 按类型查找面板条目
func FindWidgetDef(widgetType string) (WidgetDef, bool) {
	for _, d := range Palette {
		if d.Type == widgetType {
			return d, true
		}
	}
	return WidgetDef{}, false
}

// WidgetTypes 全部组件类型
func WidgetTypes() []string {
	types := make([]string, len(Palette))
	for i, d := range Palette {
		types[i] = d.Type
	}
	return types
}
