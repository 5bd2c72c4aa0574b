package model

// 规则分组维度
const (
	GroupByAction   = "action"
	GroupByEndpoint = "endpoint"
)

// 动作 ID
const (
	ActionBlock           = "block"
	ActionAllow           = "allow"
	ActionNotify          = "notify"
	ActionRequireApproval = "require-approval"
	ActionAutoApprove     = "auto-approve"
)

// 业务端点 ID
const (
	EndpointTakeShift    = "take-shift"
	EndpointSwapShift    = "swap-shift"
	EndpointAssignShift  = "assign-shift"
	EndpointRequestLeave = "request-leave"
)

// ConditionFields 条件字段词表
var ConditionFields = []string{
	"Смена.Тип", "Смена.Длительность", "Сертификат.Срок", "Сертификат.Категория",
	"Сотрудник.Роль", "Перерыв.Часы", "Локация.Тип",
}

// Operators 比较运算符词表
var Operators = []string{"==", "!=", "<", ">", "<=", ">="}

// Condition 规则条件 (field op value)
//
// Value 为自由文本，不与字段语义类型做一致性校验。
type Condition struct {
	ID    string `json:"id"`
	Field string `json:"field"`
	Op    string `json:"op"`
	Value string `json:"value"`
}

// Rule 条件→动作规则，多个条件之间为"与"关系
type Rule struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Conditions  []Condition `json:"conditions"`
	ActionID    string      `json:"action_id"`
	Endpoint    string      `json:"endpoint,omitempty"`
	Active      bool        `json:"active"`
}

// GroupKey 返回规则在给定分组维度下的分组键
func (r *Rule) GroupKey(kind string) string {
	if kind == GroupByEndpoint {
		return r.Endpoint
	}
	return r.ActionID
}

// Clone 深拷贝（条件切片独立）
func (r Rule) Clone() Rule {
	if r.Conditions != nil {
		conds := make([]Condition, len(r.Conditions))
		copy(conds, r.Conditions)
		r.Conditions = conds
	}
	return r
}

// ActionDef 系统动作定义
type ActionDef struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// EndpointDef 规则可守护的用户操作
type EndpointDef struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ActionDefs 系统动作词表
var ActionDefs = []ActionDef{
	{ID: ActionBlock, Label: "Блокировать назначение", Description: "Запрещает действие при выполнении условий", Icon: "ShieldBan", Color: "red"},
	{ID: ActionAllow, Label: "Разрешить обмен", Description: "Разрешает обмен сменами без участия менеджера", Icon: "ArrowLeftRight", Color: "emerald"},
	{ID: ActionNotify, Label: "Уведомить менеджера", Description: "Отправляет уведомление ответственному менеджеру", Icon: "Bell", Color: "amber"},
	{ID: ActionRequireApproval, Label: "Требовать подтверждение", Description: "Действие выполняется только после подтверждения", Icon: "CheckCircle", Color: "violet"},
	{ID: ActionAutoApprove, Label: "Автоматически одобрить", Description: "Одобряет запрос без ручной проверки", Icon: "Zap", Color: "cyan"},
}

// EndpointDefs 业务端点词表
var EndpointDefs = []EndpointDef{
	{ID: EndpointTakeShift, Label: "Взять смену", Description: "Сотрудник берёт открытую смену", Icon: "Hand"},
	{ID: EndpointSwapShift, Label: "Обмен сменой", Description: "Сотрудник предлагает обмен сменой", Icon: "ArrowLeftRight"},
	{ID: EndpointAssignShift, Label: "Назначение на смену", Description: "Менеджер назначает сотрудника на смену", Icon: "UserPlus"},
	{ID: EndpointRequestLeave, Label: "Заявка на отпуск", Description: "Сотрудник подаёт заявку на отпуск", Icon: "Plane"},
}

// FindAction 按 ID 查找动作定义
func FindAction(id string) (ActionDef, bool) {
	for _, a := range ActionDefs {
		if a.ID == id {
			return a, true
		}
	}
	return ActionDef{}, false
}

// FindEndpoint 按 ID 查找端点定义
func FindEndpoint(id string) (EndpointDef, bool) {
	for _, e := range EndpointDefs {
		if e.ID == id {
			return e, true
		}
	}
	return EndpointDef{}, false
}

// IsValidConditionField 校验条件字段
func IsValidConditionField(f string) bool {
	return contains(ConditionFields, f)
}

// IsValidOperator 校验运算符
func IsValidOperator(op string) bool {
	return contains(Operators, op)
}
