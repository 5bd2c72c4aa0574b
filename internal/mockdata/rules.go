package mockdata

import "github.com/maplol/adaptix-mvp/internal/model"

// Rules 预置规则
func Rules() []model.Rule {
	return []model.Rule{
		{
			ID:          "r1",
			Name:        "Проверка сертификата для операционной",
			Description: "Блокирует назначение на операционную врача с просроченным сертификатом",
			Conditions: []model.Condition{
				{ID: "c1", Field: "Смена.Тип", Op: "==", Value: "Операционная"},
				{ID: "c2", Field: "Сертификат.Срок", Op: "<", Value: "Сегодня"},
			},
			ActionID: model.ActionBlock,
			Endpoint: model.EndpointAssignShift,
			Active:   true,
		},
		{
			ID:          "r2",
			Name:        "Ограничение длительности смены",
			Description: "Сотрудник не может работать более 12 часов подряд",
			Conditions: []model.Condition{
				{ID: "c3", Field: "Смена.Длительность", Op: ">", Value: "12"},
			},
			ActionID: model.ActionBlock,
			Endpoint: model.EndpointAssignShift,
			Active:   true,
		},
		{
			ID:          "r3",
			Name:        "Автоматический обмен сменами",
			Description: "Разрешает обмен сменами между сотрудниками одной роли",
			Conditions: []model.Condition{
				{ID: "c4", Field: "Сотрудник.Роль", Op: "==", Value: "Сотрудник_Б.Роль"},
			},
			ActionID: model.ActionAllow,
			Endpoint: model.EndpointSwapShift,
			Active:   true,
		},
		{
			ID:          "r4",
			Name:        "Перерыв между сменами (РФ)",
			Description: "Минимальный перерыв между сменами — 8 часов",
			Conditions: []model.Condition{
				{ID: "c5", Field: "Перерыв.Часы", Op: "<", Value: "8"},
			},
			ActionID: model.ActionBlock,
			Endpoint: model.EndpointTakeShift,
			Active:   true,
		},
	}
}
