package model

// 班次状态
const (
	ShiftScheduled = "scheduled"
	ShiftCompleted = "completed"
	ShiftOpen      = "open"
)

// ShiftTypes 班次类型
var ShiftTypes = []string{"Операционная", "Дежурство", "Утренняя", "Вечерняя", "Склад", "Приём"}

// ShiftLocations 可排班地点
var ShiftLocations = []string{"Клиника Центральная", "Кофейня на Арбате", "Кофейня на Тверской", "Склад Южный"}

// Shift 班次
//
// EmployeeID 为空表示空缺班次，此时 Status 必须为 open。
// 同一 (EmployeeID, Date) 允许多条记录。
type Shift struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`       // YYYY-MM-DD
	StartTime  string `json:"start_time"` // HH:MM
	EndTime    string `json:"end_time"`   // HH:MM
	Type       string `json:"type"`
	Location   string `json:"location"`
	Status     string `json:"status"` // scheduled | completed | open
}

// IsOpen 是否为空缺班次
func (s *Shift) IsOpen() bool {
	return s.EmployeeID == ""
}

// CellKey 网格单元格键 "<employeeId>::<date>"
func CellKey(employeeID, date string) string {
	return employeeID + "::" + date
}

// IsValidShiftType 校验班次类型
func IsValidShiftType(t string) bool {
	return contains(ShiftTypes, t)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
