package mockdata

import "github.com/maplol/adaptix-mvp/internal/model"

// StatsCards 仪表盘卡片；"Открытых смен" 的数值由服务层按实时数据覆盖
func StatsCards() []model.StatCard {
	return []model.StatCard{
		{Label: "Сотрудников сегодня", Value: "47", Change: "+3", Icon: "Users"},
		{Label: "Открытых смен", Value: "3", Change: "-2", Icon: "CalendarClock"},
		{Label: "Запросов на обмен", Value: "5", Change: "+1", Icon: "ArrowLeftRight"},
		{Label: "Экономия ФОТ", Value: "12.4%", Change: "+2.1%", Icon: "TrendingUp"},
	}
}

// WeeklyLoad 周负载
func WeeklyLoad() []model.DayLoad {
	return []model.DayLoad{
		{Day: "Пн", Load: 92, Target: 85},
		{Day: "Вт", Load: 87, Target: 85},
		{Day: "Ср", Load: 78, Target: 85},
		{Day: "Чт", Load: 95, Target: 85},
		{Day: "Пт", Load: 88, Target: 85},
		{Day: "Сб", Load: 45, Target: 50},
		{Day: "Вс", Load: 30, Target: 40},
	}
}

// Feed 动态消息
func Feed() []model.FeedItem {
	return []model.FeedItem{
		{ID: "n1", Type: model.NotifyWarning, Text: "Сертификат BLS/ACLS у Алексея Петрова просрочен", Time: "10 мин назад"},
		{ID: "n2", Type: model.NotifyInfo, Text: "Николай Кузнецов запросил обмен смены (Пт 15:00-23:00)", Time: "25 мин назад"},
		{ID: "n3", Type: model.NotifyWarning, Text: "Сертификат «Охрана труда» у Ольги Федоровой просрочен", Time: "1 ч назад"},
		{ID: "n4", Type: model.NotifySuccess, Text: "Обмен смены одобрен: Сидоров ↔ Кузнецов", Time: "2 ч назад"},
		{ID: "n5", Type: model.NotifyInfo, Text: "Создано 3 открытых смены на эту неделю", Time: "3 ч назад"},
	}
}

// UpcomingShifts 即将开始的班次
func UpcomingShifts() []model.UpcomingShift {
	return []model.UpcomingShift{
		{Employee: "Алексей Петров", Time: "08:00–16:00", Type: "Операционная", Location: "Клиника Центральная"},
		{Employee: "Мария Иванова", Time: "08:00–20:00", Type: "Дежурство", Location: "Клиника Центральная"},
		{Employee: "Дмитрий Сидоров", Time: "07:00–15:00", Type: "Утренняя", Location: "Кофейня на Арбате"},
		{Employee: "Игорь Волков", Time: "06:00–14:00", Type: "Склад", Location: "Склад Южный"},
		{Employee: "Анна Морозова", Time: "09:00–17:00", Type: "Приём", Location: "Клиника Центральная"},
	}
}

// Settings 设置页初始值
func Settings() model.Settings {
	return model.Settings{
		Tenant: model.TenantSettings{
			Name:          "Adaptix Demo",
			Subdomain:     "demo",
			Timezone:      "Europe/Moscow",
			Country:       "Россия",
			MinBreakHours: 8,
		},
		Profile: model.Profile{
			Name:  "Татьяна Соколова",
			Email: "sokolova@adaptix.io",
		},
	}
}
