package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/maplol/adaptix-mvp/config"
	"github.com/maplol/adaptix-mvp/internal/dto"
	"github.com/maplol/adaptix-mvp/internal/model"
	"github.com/maplol/adaptix-mvp/internal/repository"
	"github.com/maplol/adaptix-mvp/pkg/daterange"
	pkgerrors "github.com/maplol/adaptix-mvp/pkg/errors"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// MIME 类型
const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportService 导出业务接口
//
//   - 排班网格当前窗口导出为 Excel (.xlsx)：行为员工，列为日期
//   - 员工班次导出为 iCalendar (.ics)，可订阅到日历应用
//
// 导出以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response。
type ExportService interface {
	ExportSchedule(ctx context.Context, q *dto.ScheduleExportQuery) (*bytes.Buffer, string, error)
	ExportShiftCalendar(ctx context.Context, employeeID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo     *repository.Repository
	schedule ScheduleService
	loc      *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(
	cfg *config.ScheduleConfig,
	repo *repository.Repository,
	schedule ScheduleService,
	logger *zap.Logger,
) ExportService {
	return &exportService{
		repo:     repo,
		schedule: schedule,
		loc:      cfg.Location(),
		now:      time.Now,
		logger:   logger,
	}
}

// ═══════════════════════════════════════════════════════════
// ExportSchedule 导出排班网格为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 标题行：窗口标题
//   - 表头：Сотрудник | Должность | 每日一列（星期 + 日期，节假日标注）
//   - 单元格：该员工当日全部班次（含折叠部分），每行一条
//   - 末行：空缺班次

func (s *exportService) ExportSchedule(ctx context.Context, q *dto.ScheduleExportQuery) (*bytes.Buffer, string, error) {
	// 1. 复用网格计算（无会话状态）
	grid, err := s.schedule.BuildGrid(ctx, "", &q.GridQuery)
	if err != nil {
		return nil, "", err
	}
	days := grid.Window.Days

	// 2. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Расписание"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 26)
	f.SetColWidth(sheetName, "B", "B", 22)
	if len(days) > 0 {
		f.SetColWidth(sheetName, colName(2), colName(1+len(days)), 24)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	holidayStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#F4B183"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	cellStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("Расписание смен — %s", grid.Window.Label))
	f.MergeCell(sheetName, "A1", cell(colName(1+len(days)), 1))
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	row := 2
	f.SetCellValue(sheetName, cell("A", row), "Сотрудник")
	f.SetCellValue(sheetName, cell("B", row), "Должность")
	f.SetCellStyle(sheetName, cell("A", row), cell("B", row), headerStyle)
	for i, d := range days {
		col := colName(2 + i)
		title := fmt.Sprintf("%s %s", d.DayLabel, shortDate(d.Date))
		style := headerStyle
		if d.IsHoliday {
			title += "\n" + d.Holiday
			style = holidayStyle
		}
		f.SetCellValue(sheetName, cell(col, row), title)
		f.SetCellStyle(sheetName, cell(col, row), cell(col, row), style)
	}

	// 数据行
	row = 3
	for _, r := range grid.Rows {
		f.SetCellValue(sheetName, cell("A", row), r.Employee.Name)
		f.SetCellValue(sheetName, cell("B", row), r.Employee.Position)
		for i, c := range r.Cells {
			all := append(append([]model.Shift{}, c.Visible...), c.Hidden...)
			if text := shiftsText(all, false); text != "" {
				f.SetCellValue(sheetName, cell(colName(2+i), row), text)
			}
		}
		f.SetCellStyle(sheetName, cell("A", row), cell(colName(1+len(days)), row), cellStyle)
		row++
	}

	// 空缺班次
	f.SetCellValue(sheetName, cell("A", row), "Открытые смены")
	for i, col := range grid.OpenShifts {
		if text := shiftsText(col.Shifts, true); text != "" {
			f.SetCellValue(sheetName, cell(colName(2+i), row), text)
		}
	}
	f.SetCellStyle(sheetName, cell("A", row), cell(colName(1+len(days)), row), cellStyle)

	// 3. 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("schedule_%s_%s.xlsx", grid.Window.Start, grid.Window.End)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportShiftCalendar 导出员工班次为 iCalendar
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportShiftCalendar(ctx context.Context, employeeID string) (*bytes.Buffer, string, error) {
	// 1. 查询员工与班次
	emp, err := s.repo.Employee.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrRecordNotFound) {
			return nil, "", ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("id", employeeID), zap.Error(err))
		return nil, "", err
	}
	shifts, err := s.repo.Shift.ListByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("查询员工班次失败", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, "", err
	}

	// 2. 构建日历
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Adaptix//Shift Calendar//RU")
	cal.SetName(fmt.Sprintf("Смены — %s", emp.Name))
	cal.SetTimezoneId(s.loc.String())

	stamp := s.now().UTC()
	for _, sh := range shifts {
		start, end, err := shiftBounds(sh, s.loc)
		if err != nil {
			s.logger.Warn("跳过时间无效的班次", zap.String("id", sh.ID), zap.Error(err))
			continue
		}
		uid := uuid.NewSHA1(uuid.NameSpaceURL, []byte("adaptix:shift:"+sh.ID)).String()
		event := cal.AddEvent(uid)
		event.SetDtStampTime(stamp)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(fmt.Sprintf("%s смена", sh.Type))
		event.SetLocation(sh.Location)
		event.SetDescription(fmt.Sprintf("%s, %s–%s", emp.Name, sh.StartTime, sh.EndTime))
		if sh.Status == model.ShiftCompleted {
			event.SetStatus(ics.ObjectStatusConfirmed)
		} else {
			event.SetStatus(ics.ObjectStatusTentative)
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("shifts_%s.ics", emp.ID)
	return buf, filename, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// shortDate YYYY-MM-DD → DD.MM
func shortDate(date string) string {
	d, err := daterange.Parse(date)
	if err != nil {
		return date
	}
	return d.Format("02.01")
}

func shiftsText(shifts []model.Shift, withLocation bool) string {
	lines := make([]string, 0, len(shifts))
	for _, sh := range shifts {
		line := fmt.Sprintf("%s–%s %s", sh.StartTime, sh.EndTime, sh.Type)
		if withLocation {
			line += " (" + sh.Location + ")"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// shiftBounds 班次起止时刻；结束不晚于开始时视为跨夜
func shiftBounds(sh model.Shift, loc *time.Location) (time.Time, time.Time, error) {
	const layout = "2006-01-02 15:04"
	start, err := time.ParseInLocation(layout, sh.Date+" "+sh.StartTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.ParseInLocation(layout, sh.Date+" "+sh.EndTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end, nil
}
