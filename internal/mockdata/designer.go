package mockdata

import "github.com/maplol/adaptix-mvp/internal/model"

// DemoForm 画布初始内容："Заявка на отпуск"
func DemoForm() []model.WidgetInstance {
	return []model.WidgetInstance{
		{InstanceID: "demo-0", Type: "heading", Label: "Заявка на отпуск"},
		{InstanceID: "demo-1", Type: "paragraph", Label: "Описание", Description: "Заполните форму для подачи заявки на отпуск. Все обязательные поля отмечены звёздочкой."},
		{InstanceID: "demo-2", Type: "divider", Label: ""},
		{InstanceID: "demo-3", Type: "text", Label: "ФИО сотрудника", Placeholder: "Иванов Иван Иванович", Required: true},
		{InstanceID: "demo-4", Type: "email", Label: "Email", Placeholder: "ivan@adaptix.com", Required: true},
		{InstanceID: "demo-5", Type: "select", Label: "Тип отпуска", Options: []string{"Ежегодный оплачиваемый", "За свой счёт", "Учебный", "По уходу за ребёнком"}, Required: true},
		{InstanceID: "demo-6", Type: "date", Label: "Дата начала", Required: true},
		{InstanceID: "demo-7", Type: "date", Label: "Дата окончания", Required: true},
		{InstanceID: "demo-8", Type: "textarea", Label: "Комментарий", Placeholder: "Укажите дополнительную информацию..."},
		{InstanceID: "demo-9", Type: "radio", Label: "Замещающий сотрудник", Options: []string{"Петров А.С.", "Сидорова М.И.", "Козлова Е.В.", "Не требуется"}},
		{InstanceID: "demo-10", Type: "checkbox", Label: "Согласие", Description: "Подтверждаю корректность данных", Required: true},
	}
}

// WidgetDefaults 新组件的类型默认值
func WidgetDefaults(widgetType string) model.WidgetInstance {
	switch widgetType {
	case "heading":
		return model.WidgetInstance{Label: "Заголовок формы"}
	case "paragraph":
		return model.WidgetInstance{Label: "Описание", Description: "Заполните форму ниже для подачи заявки."}
	case "divider":
		return model.WidgetInstance{Label: ""}
	case "text":
		return model.WidgetInstance{Label: "Текстовое поле", Placeholder: "Введите текст..."}
	case "textarea":
		return model.WidgetInstance{Label: "Комментарий", Placeholder: "Опишите подробнее..."}
	case "number":
		return model.WidgetInstance{Label: "Числовое поле", Placeholder: "0"}
	case "email":
		return model.WidgetInstance{Label: "Email", Placeholder: "email@example.com"}
	case "date":
		return model.WidgetInstance{Label: "Дата"}
	case "select":
		return model.WidgetInstance{Label: "Выпадающий список", Options: []string{"Вариант 1", "Вариант 2", "Вариант 3"}}
	case "radio":
		return model.WidgetInstance{Label: "Выбор варианта", Options: []string{"Вариант A", "Вариант B", "Вариант C"}}
	case "checkbox":
		return model.WidgetInstance{Label: "Чекбокс", Description: "Включить опцию"}
	case "toggle":
		return model.WidgetInstance{Label: "Переключатель", Description: "Активировать"}
	default:
		return model.WidgetInstance{}
	}
}
