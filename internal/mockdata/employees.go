// Package mockdata 演示用静态种子数据。
//
// 每个函数都返回新的副本，仓库层 Load 后可随意修改而不影响种子。
package mockdata

import "github.com/maplol/adaptix-mvp/internal/model"

func avatarURL(seed string) string {
	return "https://api.dicebear.com/9.x/notionists/svg?seed=" + seed + "&backgroundColor=b6e3f4"
}

// Employees 员工名录
func Employees() []model.Employee {
	return []model.Employee{
		{
			ID: "e1", Name: "Алексей Петров", Avatar: avatarURL("alexey"),
			Position: "Хирург", JobRole: "Врач", AppRole: model.RoleEmployee,
			Location: "Клиника Центральная", Status: model.EmployeeActive,
			Phone: "+7 (900) 111-22-33", Email: "petrov@adaptix.io",
			Certificates: []model.Certificate{
				{Name: "Сертификат хирурга", ExpiresAt: "2026-08-15", Expired: false},
				{Name: "BLS/ACLS", ExpiresAt: "2025-12-01", Expired: true},
			},
			HireDate: "2022-03-10",
		},
		{
			ID: "e2", Name: "Мария Иванова", Avatar: avatarURL("maria"),
			Position: "Старшая медсестра", JobRole: "Медсестра", AppRole: model.RoleEmployee,
			Location: "Клиника Центральная", Status: model.EmployeeActive,
			Phone: "+7 (900) 222-33-44", Email: "ivanova@adaptix.io",
			Certificates: []model.Certificate{
				{Name: "Сертификат медсестры", ExpiresAt: "2027-01-20", Expired: false},
			},
			HireDate: "2021-07-01",
		},
		{
			ID: "e3", Name: "Дмитрий Сидоров", Avatar: avatarURL("dmitry"),
			Position: "Бариста", JobRole: "Бариста", AppRole: model.RoleEmployee,
			Location: "Кофейня на Арбате", Status: model.EmployeeActive,
			Phone: "+7 (900) 333-44-55", Email: "sidorov@adaptix.io",
			Certificates: []model.Certificate{},
			HireDate:     "2024-09-15",
		},
		{
			ID: "e4", Name: "Елена Козлова", Avatar: avatarURL("elena"),
			Position: "Бариста", JobRole: "Бариста", AppRole: model.RoleEmployee,
			Location: "Кофейня на Арбате", Status: model.EmployeeOnLeave,
			Phone: "+7 (900) 444-55-66", Email: "kozlova@adaptix.io",
			Certificates: []model.Certificate{},
			HireDate:     "2024-11-01",
		},
		{
			ID: "e5", Name: "Игорь Волков", Avatar: avatarURL("igor"),
			Position: "Комплектовщик", JobRole: "Складской рабочий", AppRole: model.RoleEmployee,
			Location: "Склад Южный", Status: model.EmployeeActive,
			Phone: "+7 (900) 555-66-77", Email: "volkov@adaptix.io",
			Certificates: []model.Certificate{
				{Name: "Охрана труда", ExpiresAt: "2026-06-01", Expired: false},
			},
			HireDate: "2023-01-20",
		},
		{
			ID: "e6", Name: "Анна Морозова", Avatar: avatarURL("anna"),
			Position: "Терапевт", JobRole: "Врач", AppRole: model.RoleEmployee,
			Location: "Клиника Центральная", Status: model.EmployeeActive,
			Phone: "+7 (900) 666-77-88", Email: "morozova@adaptix.io",
			Certificates: []model.Certificate{
				{Name: "Сертификат терапевта", ExpiresAt: "2027-03-10", Expired: false},
			},
			HireDate: "2020-05-15",
		},
		{
			ID: "e7", Name: "Сергей Новиков", Avatar: avatarURL("sergey"),
			Position: "Менеджер смен", JobRole: "Менеджер", AppRole: model.RoleManager,
			Location: "Клиника Центральная", Status: model.EmployeeActive,
			Phone: "+7 (900) 777-88-99", Email: "novikov@adaptix.io",
			Certificates: []model.Certificate{},
			HireDate:     "2019-11-01",
		},
		{
			ID: "e8", Name: "Ольга Федорова", Avatar: avatarURL("olga"),
			Position: "Комплектовщик", JobRole: "Складской рабочий", AppRole: model.RoleEmployee,
			Location: "Склад Южный", Status: model.EmployeeSick,
			Phone: "+7 (900) 888-99-00", Email: "fedorova@adaptix.io",
			Certificates: []model.Certificate{
				{Name: "Охрана труда", ExpiresAt: "2025-11-15", Expired: true},
			},
			HireDate: "2023-06-10",
		},
		{
			ID: "e9", Name: "Николай Кузнецов", Avatar: avatarURL("nikolay"),
			Position: "Бариста", JobRole: "Бариста", AppRole: model.RoleEmployee,
			Location: "Кофейня на Тверской", Status: model.EmployeeActive,
			Phone: "+7 (900) 999-00-11", Email: "kuznetsov@adaptix.io",
			Certificates: []model.Certificate{},
			HireDate:     "2025-01-10",
		},
		{
			ID: "e10", Name: "Татьяна Соколова", Avatar: avatarURL("tatyana"),
			Position: "Администратор", JobRole: "Администратор", AppRole: model.RoleAdmin,
			Location: "Главный офис", Status: model.EmployeeActive,
			Phone: "+7 (900) 100-20-30", Email: "sokolova@adaptix.io",
			Certificates: []model.Certificate{},
			HireDate:     "2018-03-01",
		},
		{
			ID: "e11", Name: "Павел Лебедев", Avatar: avatarURL("pavel"),
			Position: "Грузчик", JobRole: "Складской рабочий", AppRole: model.RoleEmployee,
			Location: "Склад Южный", Status: model.EmployeeActive,
			Phone: "+7 (900) 200-30-40", Email: "lebedev@adaptix.io",
			Certificates: []model.Certificate{
				{Name: "Охрана труда", ExpiresAt: "2026-09-20", Expired: false},
			},
			HireDate: "2024-02-14",
		},
		{
			ID: "e12", Name: "Виктория Попова", Avatar: avatarURL("vika"),
			Position: "Анестезиолог", JobRole: "Врач", AppRole: model.RoleEmployee,
			Location: "Клиника Центральная", Status: model.EmployeeActive,
			Phone: "+7 (900) 300-40-50", Email: "popova@adaptix.io",
			Certificates: []model.Certificate{
				{Name: "Сертификат анестезиолога", ExpiresAt: "2026-12-01", Expired: false},
				{Name: "BLS/ACLS", ExpiresAt: "2026-05-20", Expired: false},
			},
			HireDate: "2021-09-01",
		},
	}
}
