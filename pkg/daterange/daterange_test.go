package daterange

import (
	"testing"
	"time"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%s) 失败: %v", s, err)
	}
	return d
}

func TestMonday(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2026-10-19", "2026-10-19"}, // 周一
		{"2026-10-21", "2026-10-19"}, // 周三
		{"2026-10-18", "2026-10-12"}, // 周日归属上一周
		{"2026-11-01", "2026-10-26"}, // 跨月
	}
	for _, tt := range tests {
		got := Format(Monday(mustParse(t, tt.in)))
		if got != tt.want {
			t.Errorf("Monday(%s)=%s，期望=%s", tt.in, got, tt.want)
		}
	}
}

func TestNextDay(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2026-10-19", "2026-10-20"},
		{"2026-10-31", "2026-11-01"},
		{"2026-12-31", "2027-01-01"},
		{"2028-02-28", "2028-02-29"},
	}
	for _, tt := range tests {
		got, err := NextDay(tt.in)
		if err != nil {
			t.Fatalf("NextDay(%s) 失败: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("NextDay(%s)=%s，期望=%s", tt.in, got, tt.want)
		}
	}

	if _, err := NextDay("19.10.2026"); err == nil {
		t.Error("非法日期应返回错误")
	}
}

func TestDates_WindowLengths(t *testing.T) {
	anchor := mustParse(t, "2026-10-21")

	week := Dates(anchor, ModeWeek)
	if len(week) != 7 {
		t.Fatalf("周视图期望 7 天，实际=%d", len(week))
	}
	if week[0] != "2026-10-19" || week[6] != "2026-10-25" {
		t.Errorf("周视图范围错误: %s..%s", week[0], week[6])
	}

	two := Dates(anchor, ModeTwoWeeks)
	if len(two) != 14 {
		t.Fatalf("两周视图期望 14 天，实际=%d", len(two))
	}
	if two[0] != "2026-10-19" || two[13] != "2026-11-01" {
		t.Errorf("两周视图范围错误: %s..%s", two[0], two[13])
	}

	month := Dates(anchor, ModeMonth)
	if len(month) != 31 {
		t.Fatalf("十月期望 31 天，实际=%d", len(month))
	}
	if month[0] != "2026-10-01" {
		t.Errorf("月视图应从 1 号开始，实际=%s", month[0])
	}

	feb := Dates(mustParse(t, "2028-02-15"), ModeMonth)
	if len(feb) != 29 {
		t.Errorf("闰年二月期望 29 天，实际=%d", len(feb))
	}
}

func TestDates_ConsecutiveFromMonday(t *testing.T) {
	for _, mode := range []ViewMode{ModeWeek, ModeTwoWeeks} {
		dates := Dates(mustParse(t, "2026-12-31"), mode)
		first := mustParse(t, dates[0])
		if first.Weekday() != time.Monday {
			t.Errorf("%s 视图首日应为周一，实际=%s", mode, first.Weekday())
		}
		for i := 1; i < len(dates); i++ {
			prev := mustParse(t, dates[i-1])
			if Format(AddDays(prev, 1)) != dates[i] {
				t.Errorf("%s 视图日期不连续: %s → %s", mode, dates[i-1], dates[i])
			}
		}
	}
}

func TestNavigate(t *testing.T) {
	anchor := mustParse(t, "2026-10-19")

	if got := Format(Navigate(anchor, ModeWeek, 1)); got != "2026-10-26" {
		t.Errorf("周视图前进期望 2026-10-26，实际=%s", got)
	}
	if got := Format(Navigate(anchor, ModeWeek, -1)); got != "2026-10-12" {
		t.Errorf("周视图后退期望 2026-10-12，实际=%s", got)
	}
	if got := Format(Navigate(anchor, ModeTwoWeeks, 1)); got != "2026-11-02" {
		t.Errorf("两周视图前进期望 2026-11-02，实际=%s", got)
	}
	if got := Format(Navigate(mustParse(t, "2026-01-31"), ModeMonth, 1)); got != "2026-02-01" {
		t.Errorf("月视图前进期望 2026-02-01，实际=%s", got)
	}
	if got := Format(Navigate(mustParse(t, "2026-01-01"), ModeMonth, -1)); got != "2025-12-01" {
		t.Errorf("月视图后退期望 2025-12-01，实际=%s", got)
	}
}

func TestLabel(t *testing.T) {
	anchor := mustParse(t, "2026-10-19")

	if got := Label(anchor, ModeWeek); got != "19 окт — 25 окт 2026" {
		t.Errorf("周标题错误: %s", got)
	}
	if got := Label(anchor, ModeTwoWeeks); got != "19 окт — 1 ноя 2026" {
		t.Errorf("两周标题错误: %s", got)
	}
	if got := Label(anchor, ModeMonth); got != "Октябрь 2026" {
		t.Errorf("月标题错误: %s", got)
	}
}

func TestDayLabel(t *testing.T) {
	if got := DayLabel(mustParse(t, "2026-10-19")); got != "Пн" {
		t.Errorf("期望 Пн，实际=%s", got)
	}
	if got := DayLabel(mustParse(t, "2026-10-25")); got != "Вс" {
		t.Errorf("期望 Вс，实际=%s", got)
	}
}

func TestBuildWindow(t *testing.T) {
	w := BuildWindow(mustParse(t, "2026-10-21"), ModeWeek)

	if Format(w.Anchor) != "2026-10-19" {
		t.Errorf("锚点应对齐周一，实际=%s", Format(w.Anchor))
	}
	if Format(w.Prev) != "2026-10-12" || Format(w.Next) != "2026-10-26" {
		t.Errorf("翻页锚点错误: prev=%s next=%s", Format(w.Prev), Format(w.Next))
	}
	if w.Start() != "2026-10-19" || w.End() != "2026-10-25" {
		t.Errorf("窗口范围错误: %s..%s", w.Start(), w.End())
	}
}

func TestDateOf(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Skipf("时区数据不可用: %v", err)
	}
	// UTC 22:30 在莫斯科已是次日
	ts := time.Date(2026, 10, 18, 22, 30, 0, 0, time.UTC)
	if got := Format(DateOf(ts, moscow)); got != "2026-10-19" {
		t.Errorf("期望 2026-10-19，实际=%s", got)
	}
}

func TestHolidayCalendar(t *testing.T) {
	hc := NewRussianHolidayCalendar()

	name, ok := hc.Holiday(mustParse(t, "2026-11-04"))
	if !ok || name != "День народного единства" {
		t.Errorf("11 月 4 日应为节假日，实际 ok=%v name=%s", ok, name)
	}
	if _, ok := hc.Holiday(mustParse(t, "2026-10-20")); ok {
		t.Error("10 月 20 日不应为节假日")
	}
	if hc.IsWorkday(mustParse(t, "2026-10-25")) {
		t.Error("周日不应为工作日")
	}
	if !hc.IsWorkday(mustParse(t, "2026-10-20")) {
		t.Error("普通周二应为工作日")
	}
}
