package daterange

import (
	"time"

	"github.com/rickar/cal/v2"
)

// russianHolidays 俄罗斯法定节假日（固定日期）
var russianHolidays = []struct {
	month time.Month
	day   int
	name  string
}{
	{time.January, 1, "Новогодние каникулы"},
	{time.January, 2, "Новогодние каникулы"},
	{time.January, 3, "Новогодние каникулы"},
	{time.January, 4, "Новогодние каникулы"},
	{time.January, 5, "Новогодние каникулы"},
	{time.January, 6, "Новогодние каникулы"},
	{time.January, 7, "Рождество Христово"},
	{time.January, 8, "Новогодние каникулы"},
	{time.February, 23, "День защитника Отечества"},
	{time.March, 8, "Международный женский день"},
	{time.May, 1, "Праздник Весны и Труда"},
	{time.May, 9, "День Победы"},
	{time.June, 12, "День России"},
	{time.November, 4, "День народного единства"},
}

// HolidayCalendar 网格列头使用的节假日日历
type HolidayCalendar struct {
	cal *cal.BusinessCalendar
}

// NewRussianHolidayCalendar 创建包含俄罗斯法定节假日的日历
func NewRussianHolidayCalendar() *HolidayCalendar {
	c := cal.NewBusinessCalendar()
	for _, h := range russianHolidays {
		c.AddHoliday(&cal.Holiday{
			Name:  h.name,
			Type:  cal.ObservancePublic,
			Month: h.month,
			Day:   h.day,
			Func:  cal.CalcDayOfMonth,
		})
	}
	return &HolidayCalendar{cal: c}
}

// Holiday 返回该日是否为节假日及名称
func (h *HolidayCalendar) Holiday(d time.Time) (string, bool) {
	actual, observed, hol := h.cal.IsHoliday(d)
	if (actual || observed) && hol != nil {
		return hol.Name, true
	}
	return "", false
}

// IsWorkday 是否为工作日（周末与节假日除外）
func (h *HolidayCalendar) IsWorkday(d time.Time) bool {
	return h.cal.IsWorkday(d)
}
