// Package daterange 排班网格的日期窗口工具。
//
// 所有日期以 UTC 零点的 time.Time 表示，字符串格式为 YYYY-MM-DD。
// "今天"的判定由调用方按业务时区换算后传入。
package daterange

import (
	"fmt"
	"time"
)

// DateLayout 日期字符串格式
const DateLayout = "2006-01-02"

// ViewMode 网格视图模式
type ViewMode string

const (
	ModeWeek     ViewMode = "week"
	ModeTwoWeeks ViewMode = "2weeks"
	ModeMonth    ViewMode = "month"
)

// Valid 判断视图模式是否合法
func (m ViewMode) Valid() bool {
	switch m {
	case ModeWeek, ModeTwoWeeks, ModeMonth:
		return true
	}
	return false
}

var (
	dayLabels   = [7]string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"}
	shortMonths = [12]string{"янв", "фев", "мар", "апр", "май", "июн", "июл", "авг", "сен", "окт", "ноя", "дек"}
	fullMonths  = [12]string{"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь", "Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь"}
)

// Parse 解析 YYYY-MM-DD
func Parse(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("无效日期 %q: %w", s, err)
	}
	return d, nil
}

// Format 格式化为 YYYY-MM-DD
func Format(d time.Time) string {
	return d.Format(DateLayout)
}

// DateOf 截取 t 在 loc 时区下的日历日期
func DateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays 日期加减天数
func AddDays(d time.Time, n int) time.Time {
	return d.AddDate(0, 0, n)
}

// NextDay 返回下一个日历日，跨月跨年按日历进位
func NextDay(date string) (string, error) {
	d, err := Parse(date)
	if err != nil {
		return "", err
	}
	return Format(AddDays(d, 1)), nil
}

// Monday 返回 d 所在周的周一（周日归属上一周）
func Monday(d time.Time) time.Time {
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7
	}
	return AddDays(d, 1-wd)
}

// FirstOfMonth 返回 d 所在月的 1 号
func FirstOfMonth(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth 返回 d 所在月的天数
func DaysInMonth(d time.Time) int {
	return FirstOfMonth(d).AddDate(0, 1, -1).Day()
}

// NormalizeAnchor 切换视图模式时的锚点：月视图对齐到 1 号，其余对齐到周一
func NormalizeAnchor(anchor time.Time, mode ViewMode) time.Time {
	if mode == ModeMonth {
		return FirstOfMonth(anchor)
	}
	return Monday(anchor)
}

// Length 返回窗口天数
func Length(anchor time.Time, mode ViewMode) int {
	switch mode {
	case ModeTwoWeeks:
		return 14
	case ModeMonth:
		return DaysInMonth(anchor)
	default:
		return 7
	}
}

// Dates 返回窗口内有序日期列表
func Dates(anchor time.Time, mode ViewMode) []string {
	start := NormalizeAnchor(anchor, mode)
	n := Length(anchor, mode)
	dates := make([]string, n)
	for i := 0; i < n; i++ {
		dates[i] = Format(AddDays(start, i))
	}
	return dates
}

// Navigate 按窗口长度前后翻页：周 ±7 天，两周 ±14 天，月 ±1 个日历月
func Navigate(anchor time.Time, mode ViewMode, direction int) time.Time {
	switch mode {
	case ModeMonth:
		return FirstOfMonth(anchor).AddDate(0, direction, 0)
	case ModeTwoWeeks:
		return AddDays(Monday(anchor), 14*direction)
	default:
		return AddDays(Monday(anchor), 7*direction)
	}
}

// Label 窗口标题，例如 "19 окт — 25 окт 2026" 或 "Октябрь 2026"
func Label(anchor time.Time, mode ViewMode) string {
	if mode == ModeMonth {
		return fmt.Sprintf("%s %d", fullMonths[anchor.Month()-1], anchor.Year())
	}
	start := Monday(anchor)
	end := AddDays(start, Length(anchor, mode)-1)
	return fmt.Sprintf("%d %s — %d %s %d",
		start.Day(), shortMonths[start.Month()-1],
		end.Day(), shortMonths[end.Month()-1], end.Year())
}

// DayLabel 星期缩写（Пн…Вс）
func DayLabel(d time.Time) string {
	return dayLabels[d.Weekday()]
}

// Window 一次网格渲染所需的完整窗口描述
type Window struct {
	Mode   ViewMode
	Anchor time.Time
	Dates  []string
	Label  string
	Prev   time.Time
	Next   time.Time
}

// Start 窗口首日
func (w Window) Start() string { return w.Dates[0] }

// End 窗口末日
func (w Window) End() string { return w.Dates[len(w.Dates)-1] }

// BuildWindow 根据锚点与模式构建窗口
func BuildWindow(anchor time.Time, mode ViewMode) Window {
	anchor = NormalizeAnchor(anchor, mode)
	return Window{
		Mode:   mode,
		Anchor: anchor,
		Dates:  Dates(anchor, mode),
		Label:  Label(anchor, mode),
		Prev:   Navigate(anchor, mode, -1),
		Next:   Navigate(anchor, mode, 1),
	}
}
