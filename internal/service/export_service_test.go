package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/maplol/adaptix-mvp/internal/dto"
	"github.com/maplol/adaptix-mvp/internal/model"
)

func newTestExport(env *testEnv) *exportService {
	svc := NewExportService(&env.cfg.Schedule, env.repo, env.schedule, zap.NewNop()).(*exportService)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestExportService_ExportSchedule(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestExport(env)

	buf, filename, err := svc.ExportSchedule(context.Background(), &dto.ScheduleExportQuery{})
	if err != nil {
		t.Fatalf("ExportSchedule 应成功: %v", err)
	}
	if filename != "schedule_2026-10-19_2026-10-25.xlsx" {
		t.Errorf("文件名不符: %s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("打开导出文件失败: %v", err)
	}
	defer f.Close()

	const sheet = "Расписание"
	title, _ := f.GetCellValue(sheet, "A1")
	if !strings.Contains(title, "19 окт — 25 окт 2026") {
		t.Errorf("标题不符: %s", title)
	}
	header, _ := f.GetCellValue(sheet, "C2")
	if header != "Пн 19.10" {
		t.Errorf("首个日期列头不符: %s", header)
	}

	// 第 3 行为 e1，周一 s1
	name, _ := f.GetCellValue(sheet, "A3")
	monday, _ := f.GetCellValue(sheet, "C3")
	if name != "Алексей Петров" || monday != "08:00–16:00 Операционная" {
		t.Errorf("首行不符: name=%s monday=%s", name, monday)
	}

	// 11 名员工之后为空缺班次行，周五 s20
	openLabel, _ := f.GetCellValue(sheet, "A14")
	friday, _ := f.GetCellValue(sheet, "G14")
	if openLabel != "Открытые смены" || !strings.Contains(friday, "Вечерняя (Кофейня на Арбате)") {
		t.Errorf("空缺班次行不符: %s / %s", openLabel, friday)
	}
}

func TestExportService_ExportSchedule_InvalidMode(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestExport(env)

	q := &dto.ScheduleExportQuery{}
	q.Mode = "year"
	if _, _, err := svc.ExportSchedule(context.Background(), q); !errors.Is(err, ErrInvalidViewMode) {
		t.Errorf("期望 ErrInvalidViewMode，实际: %v", err)
	}
}

func TestExportService_ExportShiftCalendar(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestExport(env)

	buf, filename, err := svc.ExportShiftCalendar(context.Background(), "e3")
	if err != nil {
		t.Fatalf("ExportShiftCalendar 应成功: %v", err)
	}
	if filename != "shifts_e3.ics" {
		t.Errorf("文件名不符: %s", filename)
	}

	cal, err := ics.ParseCalendar(buf)
	if err != nil {
		t.Fatalf("解析 iCalendar 失败: %v", err)
	}
	events := cal.Events()
	if len(events) != 3 {
		t.Fatalf("期望 3 个事件，实际=%d", len(events))
	}
	summary := events[0].GetProperty(ics.ComponentPropertySummary)
	if summary == nil || summary.Value != "Утренняя смена" {
		t.Errorf("事件标题不符: %+v", summary)
	}
}

func TestExportService_ExportShiftCalendar_StableUID(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestExport(env)
	ctx := context.Background()

	uids := func() []string {
		buf, _, err := svc.ExportShiftCalendar(ctx, "e1")
		if err != nil {
			t.Fatalf("ExportShiftCalendar 应成功: %v", err)
		}
		cal, err := ics.ParseCalendar(buf)
		if err != nil {
			t.Fatalf("解析 iCalendar 失败: %v", err)
		}
		var out []string
		for _, e := range cal.Events() {
			out = append(out, e.Id())
		}
		return out
	}

	a, b := uids(), uids()
	if len(a) != 3 || len(a) != len(b) {
		t.Fatalf("事件数量不符: %d / %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("同一班次的 UID 应稳定: %s != %s", a[i], b[i])
		}
	}
}

func TestExportService_ExportShiftCalendar_UnknownEmployee(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestExport(env)

	if _, _, err := svc.ExportShiftCalendar(context.Background(), "e404"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("期望 ErrEmployeeNotFound，实际: %v", err)
	}
}

func TestShiftBounds_Overnight(t *testing.T) {
	start, end, err := shiftBounds(shiftFixture("22:00", "06:00"), time.UTC)
	if err != nil {
		t.Fatalf("shiftBounds 应成功: %v", err)
	}
	if end.Sub(start) != 8*time.Hour {
		t.Errorf("跨夜班次应为 8 小时，实际=%v", end.Sub(start))
	}
}

func shiftFixture(start, end string) model.Shift {
	return model.Shift{ID: "sx", EmployeeID: "e5", Date: "2026-10-19", StartTime: start, EndTime: end, Type: "Склад"}
}
