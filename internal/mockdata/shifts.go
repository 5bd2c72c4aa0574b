package mockdata

import (
	"time"

	"github.com/maplol/adaptix-mvp/internal/model"
	"github.com/maplol/adaptix-mvp/pkg/daterange"
)

// Shifts 以 monday 所在周为基准生成的班次，s20–s22 为空缺班次
func Shifts(monday time.Time) []model.Shift {
	day := func(offset int) string {
		return daterange.Format(daterange.AddDays(monday, offset))
	}
	return []model.Shift{
		{ID: "s1", EmployeeID: "e1", Date: day(0), StartTime: "08:00", EndTime: "16:00", Type: "Операционная", Location: "Клиника Центральная", Status: model.ShiftScheduled},
		{ID: "s2", EmployeeID: "e2", Date: day(0), StartTime: "08:00", EndTime: "20:00", Type: "Дежурство", Location: "Клиника Центральная", Status: model.ShiftScheduled},
		{ID: "s3", EmployeeID: "e3", Date: day(0), StartTime: "07:00", EndTime: "15:00", Type: "Утренняя", Location: "Кофейня на Арбате", Status: model.ShiftScheduled},
		{ID: "s4", EmployeeID: "e5", Date: day(0), StartTime: "06:00", EndTime: "14:00", Type: "Склад", Location: "Склад Южный", Status: model.ShiftScheduled},
		{ID: "s5", EmployeeID: "e6", Date: day(0), StartTime: "09:00", EndTime: "17:00", Type: "Приём", Location: "Клиника Центральная", Status: model.ShiftScheduled},
		{ID: "s6", EmployeeID: "e9", Date: day(0), StartTime: "15:00", EndTime: "23:00", Type: "Вечерняя", Location: "Кофейня на Тверской", Status: model.ShiftScheduled},
		{ID: "s7", EmployeeID: "e11", Date: day(0), StartTime: "06:00", EndTime: "14:00", Type: "Склад", Location: "Склад Южный", Status: model.ShiftScheduled},

		{ID: "s8", EmployeeID: "e1", Date: day(1), StartTime: "08:00", EndTime: "16:00", Type: "Приём", Location: "Клиника Центральная", Status: model.ShiftScheduled},
		{ID: "s9", EmployeeID: "e3", Date: day(1), StartTime: "15:00", EndTime: "23:00", Type: "Вечерняя", Location: "Кофейня на Арбате", Status: model.ShiftScheduled},
		{ID: "s10", EmployeeID: "e5", Date: day(1), StartTime: "14:00", EndTime: "22:00", Type: "Склад", Location: "Склад Южный", Status: model.ShiftScheduled},
		{ID: "s11", EmployeeID: "e12", Date: day(1), StartTime: "08:00", EndTime: "16:00", Type: "Операционная", Location: "Клиника Центральная", Status: model.ShiftScheduled},

		{ID: "s12", EmployeeID: "e2", Date: day(2), StartTime: "08:00", EndTime: "20:00", Type: "Дежурство", Location: "Клиника Центральная", Status: model.ShiftScheduled},
		{ID: "s13", EmployeeID: "e9", Date: day(2), StartTime: "07:00", EndTime: "15:00", Type: "Утренняя", Location: "Кофейня на Тверской", Status: model.ShiftScheduled},
		{ID: "s14", EmployeeID: "e11", Date: day(2), StartTime: "06:00", EndTime: "14:00", Type: "Склад", Location: "Склад Южный", Status: model.ShiftScheduled},

		{ID: "s15", EmployeeID: "e1", Date: day(3), StartTime: "08:00", EndTime: "16:00", Type: "Операционная", Location: "Клиника Центральная", Status: model.ShiftScheduled},
		{ID: "s16", EmployeeID: "e6", Date: day(3), StartTime: "09:00", EndTime: "17:00", Type: "Приём", Location: "Клиника Центральная", Status: model.ShiftScheduled},
		{ID: "s17", EmployeeID: "e3", Date: day(3), StartTime: "07:00", EndTime: "15:00", Type: "Утренняя", Location: "Кофейня на Арбате", Status: model.ShiftScheduled},

		{ID: "s18", EmployeeID: "e12", Date: day(4), StartTime: "08:00", EndTime: "16:00", Type: "Операционная", Location: "Клиника Центральная", Status: model.ShiftScheduled},
		{ID: "s19", EmployeeID: "e5", Date: day(4), StartTime: "06:00", EndTime: "14:00", Type: "Склад", Location: "Склад Южный", Status: model.ShiftScheduled},

		{ID: "s20", EmployeeID: "", Date: day(4), StartTime: "15:00", EndTime: "23:00", Type: "Вечерняя", Location: "Кофейня на Арбате", Status: model.ShiftOpen},
		{ID: "s21", EmployeeID: "", Date: day(3), StartTime: "14:00", EndTime: "22:00", Type: "Склад", Location: "Склад Южный", Status: model.ShiftOpen},
		{ID: "s22", EmployeeID: "", Date: day(2), StartTime: "08:00", EndTime: "16:00", Type: "Приём", Location: "Клиника Центральная", Status: model.ShiftOpen},
	}
}
