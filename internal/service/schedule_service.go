package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/maplol/adaptix-mvp/config"
	"github.com/maplol/adaptix-mvp/internal/dto"
	"github.com/maplol/adaptix-mvp/internal/model"
	"github.com/maplol/adaptix-mvp/internal/repository"
	"github.com/maplol/adaptix-mvp/pkg/daterange"
	pkgerrors "github.com/maplol/adaptix-mvp/pkg/errors"
	"github.com/maplol/adaptix-mvp/pkg/idgen"
	"github.com/maplol/adaptix-mvp/pkg/metrics"
)

// ── 排班网格模块业务错误 ──

var (
	ErrShiftNotFound     = errors.New("班次不存在")
	ErrInvalidDropTarget = errors.New("无效的放置目标")
	ErrClipboardEmpty    = errors.New("剪贴板为空")
	ErrAlreadyDragging   = errors.New("已有班次正在拖拽")
	ErrNotDragging       = errors.New("当前没有拖拽中的班次")
	ErrInvalidShiftType  = errors.New("未知班次类型")
	ErrInvalidViewMode   = errors.New("未知视图模式")
	ErrInvalidDate       = errors.New("日期格式无效")
)

// errMoveRejected 证书校验未通过，仅在 MoveShift 内部使用
var errMoveRejected = errors.New("证书过期，拒绝改派")

// 班次 ID 前缀，共用一个序列
const (
	shiftPrefixNew   = "s_new_"
	shiftPrefixDup   = "s_dup_"
	shiftPrefixPaste = "s_paste_"
)

// ScheduleService 排班网格业务接口
//
// sid 标识演示会话；剪贴板、拖拽与溢出弹层状态按会话隔离。
type ScheduleService interface {
	// 表单选项
	Meta() *dto.ScheduleMetaResponse
	// 计算视图窗口（含翻页与"今天"）
	Window(ctx context.Context, q *dto.WindowQuery) (*dto.WindowResponse, error)
	// 网格渲染数据
	BuildGrid(ctx context.Context, sid string, q *dto.GridQuery) (*dto.GridResponse, error)
	// 单元格内班次（插入顺序）
	ListShiftsForCell(ctx context.Context, employeeID, date string) ([]model.Shift, error)

	// 班次 CRUD
	CreateShift(ctx context.Context, sid string, req *dto.ShiftRequest) (*model.Shift, error)
	UpdateShift(ctx context.Context, sid, id string, req *dto.ShiftRequest) (*dto.UpdateShiftResult, error)
	DeleteShift(ctx context.Context, sid, id string) (bool, error)
	DuplicateShift(ctx context.Context, sid, id string) (*model.Shift, error)

	// 改派（含证书校验）
	MoveShift(ctx context.Context, sid, id string, target *dto.CellTarget) (*dto.MoveResult, error)

	// 复制 / 粘贴
	CopyShift(ctx context.Context, sid, id string) (*model.Shift, error)
	PasteShift(ctx context.Context, sid string, target *dto.CellTarget) (*model.Shift, error)

	// 溢出弹层
	ToggleOverflow(sid string, target *dto.CellTarget) dto.OverflowState
	CloseOverflow(sid, reason string) dto.OverflowState

	// 拖拽状态机
	BeginDrag(ctx context.Context, sid, shiftID string) (*dto.DragState, error)
	Drop(ctx context.Context, sid string, target *dto.CellTarget) (*dto.MoveResult, error)
	CancelDrag(sid string) dto.DragState

	DropSession(sid string)
	// 清空所有会话的交互状态（演示数据重置时）
	ResetSessions()
}

type scheduleService struct {
	cfg      *config.ScheduleConfig
	repo     *repository.Repository
	notifier NotificationService
	shiftSeq *idgen.Sequence
	holidays *daterange.HolidayCalendar
	sessions *sessionStore
	loc      *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

// NewScheduleService 创建 ScheduleService 实例
func NewScheduleService(
	cfg *config.ScheduleConfig,
	repo *repository.Repository,
	notifier NotificationService,
	logger *zap.Logger,
) ScheduleService {
	return newScheduleService(cfg, repo, notifier, idgen.NewSequence(100), time.Now, logger)
}

func newScheduleService(
	cfg *config.ScheduleConfig,
	repo *repository.Repository,
	notifier NotificationService,
	seq *idgen.Sequence,
	now func() time.Time,
	logger *zap.Logger,
) *scheduleService {
	return &scheduleService{
		cfg:      cfg,
		repo:     repo,
		notifier: notifier,
		shiftSeq: seq,
		holidays: daterange.NewRussianHolidayCalendar(),
		sessions: newSessionStore(),
		loc:      cfg.Location(),
		now:      now,
		logger:   logger,
	}
}

// ════════════════════════════════════════════════════════════
// 视图窗口
// ════════════════════════════════════════════════════════════

// today 业务时区下的今天
func (s *scheduleService) today() time.Time {
	return daterange.DateOf(s.now(), s.loc)
}

func (s *scheduleService) Meta() *dto.ScheduleMetaResponse {
	return &dto.ScheduleMetaResponse{
		ShiftTypes:     model.ShiftTypes,
		Locations:      model.ShiftLocations,
		Statuses:       []string{model.ShiftScheduled, model.ShiftCompleted, model.ShiftOpen},
		RestrictedType: s.cfg.RestrictedShiftType,
		MaxVisible:     s.cfg.MaxVisibleShifts,
		ViewModes:      []string{string(daterange.ModeWeek), string(daterange.ModeTwoWeeks), string(daterange.ModeMonth)},
	}
}

// resolveWindow 锚点缺省或 nav=today 时取本周周一（与视图模式无关），
// 再按 nav 前后翻页，最后按模式归一化锚点。
func (s *scheduleService) resolveWindow(q *dto.WindowQuery) (daterange.Window, error) {
	mode := daterange.ModeWeek
	if q.Mode != "" {
		mode = daterange.ViewMode(q.Mode)
	}
	if !mode.Valid() {
		return daterange.Window{}, ErrInvalidViewMode
	}

	anchor := daterange.Monday(s.today())
	if q.Anchor != "" && q.Nav != "today" {
		d, err := daterange.Parse(q.Anchor)
		if err != nil {
			return daterange.Window{}, ErrInvalidDate
		}
		anchor = d
	}

	switch q.Nav {
	case "prev":
		anchor = daterange.Navigate(anchor, mode, -1)
	case "next":
		anchor = daterange.Navigate(anchor, mode, 1)
	}

	return daterange.BuildWindow(anchor, mode), nil
}

func (s *scheduleService) toWindowResponse(w daterange.Window) *dto.WindowResponse {
	today := daterange.Format(s.today())
	days := make([]dto.DayColumn, 0, len(w.Dates))
	for _, date := range w.Dates {
		d, _ := daterange.Parse(date)
		col := dto.DayColumn{
			Date:      date,
			DayLabel:  daterange.DayLabel(d),
			IsToday:   date == today,
			IsWorkday: s.holidays.IsWorkday(d),
		}
		if name, ok := s.holidays.Holiday(d); ok {
			col.IsHoliday = true
			col.Holiday = name
		}
		days = append(days, col)
	}
	return &dto.WindowResponse{
		Mode:   string(w.Mode),
		Anchor: daterange.Format(w.Anchor),
		Label:  w.Label,
		Start:  w.Start(),
		End:    w.End(),
		Prev:   daterange.Format(w.Prev),
		Next:   daterange.Format(w.Next),
		Days:   days,
	}
}

func (s *scheduleService) Window(ctx context.Context, q *dto.WindowQuery) (*dto.WindowResponse, error) {
	w, err := s.resolveWindow(q)
	if err != nil {
		return nil, err
	}
	return s.toWindowResponse(w), nil
}

// ════════════════════════════════════════════════════════════
// BuildGrid 行为非管理员员工，列为窗口日期
// ════════════════════════════════════════════════════════════

func (s *scheduleService) BuildGrid(ctx context.Context, sid string, q *dto.GridQuery) (*dto.GridResponse, error) {
	// 1. 窗口
	w, err := s.resolveWindow(&q.WindowQuery)
	if err != nil {
		return nil, err
	}

	// 2. 员工行与地点筛选项
	employees, err := s.repo.Employee.List(ctx)
	if err != nil {
		s.logger.Error("查询员工列表失败", zap.Error(err))
		return nil, err
	}
	locations := make([]string, 0)
	seen := make(map[string]bool)
	for _, e := range employees {
		if !seen[e.Location] {
			seen[e.Location] = true
			locations = append(locations, e.Location)
		}
	}

	// 3. 窗口内班次按单元格分组（保持插入顺序）
	shifts, err := s.repo.Shift.ListByDateRange(ctx, w.Start(), w.End())
	if err != nil {
		s.logger.Error("查询窗口班次失败", zap.Error(err))
		return nil, err
	}
	byCell := make(map[string][]model.Shift)
	openByDate := make(map[string][]model.Shift)
	for _, sh := range shifts {
		if sh.IsOpen() {
			openByDate[sh.Date] = append(openByDate[sh.Date], sh)
			continue
		}
		key := model.CellKey(sh.EmployeeID, sh.Date)
		byCell[key] = append(byCell[key], sh)
	}

	// 4. 会话状态
	state := s.sessions.snapshot(sid)
	maxVisible := s.cfg.MaxVisibleShifts

	rows := make([]dto.GridRow, 0, len(employees))
	for i := range employees {
		e := &employees[i]
		if e.AppRole == model.RoleAdmin {
			continue
		}
		if q.Location != "" && e.Location != q.Location {
			continue
		}
		cells := make([]dto.GridCell, 0, len(w.Dates))
		for _, date := range w.Dates {
			key := model.CellKey(e.ID, date)
			list := byCell[key]
			cell := dto.GridCell{
				Key:          key,
				Date:         date,
				Visible:      list,
				OverflowOpen: state.overflowCell == key,
			}
			if len(list) > maxVisible {
				cell.Visible = list[:maxVisible]
				cell.Hidden = list[maxVisible:]
				cell.HiddenCount = len(list) - maxVisible
			}
			if cell.Visible == nil {
				cell.Visible = []model.Shift{}
			}
			cells = append(cells, cell)
		}
		rows = append(rows, dto.GridRow{Employee: dto.NewEmployeeBrief(e), Cells: cells})
	}

	openShifts := make([]dto.OpenShiftColumn, 0, len(w.Dates))
	for _, date := range w.Dates {
		list := openByDate[date]
		if list == nil {
			list = []model.Shift{}
		}
		openShifts = append(openShifts, dto.OpenShiftColumn{Date: date, Shifts: list})
	}

	return &dto.GridResponse{
		Window:     *s.toWindowResponse(w),
		Location:   q.Location,
		Locations:  locations,
		MaxVisible: maxVisible,
		Rows:       rows,
		OpenShifts: openShifts,
		Clipboard:  state.clipboard,
		Drag:       dto.DragState{Dragging: state.dragShiftID != "", ShiftID: state.dragShiftID},
		Overflow:   dto.OverflowState{OpenCell: state.overflowCell},
	}, nil
}

func (s *scheduleService) ListShiftsForCell(ctx context.Context, employeeID, date string) ([]model.Shift, error) {
	shifts, err := s.repo.Shift.ListByCell(ctx, employeeID, date)
	if err != nil {
		s.logger.Error("查询单元格班次失败",
			zap.String("employee_id", employeeID),
			zap.String("date", date),
			zap.Error(err),
		)
		return nil, err
	}
	return shifts, nil
}

// ════════════════════════════════════════════════════════════
// 班次 CRUD
// ════════════════════════════════════════════════════════════

// validateShiftRequest 校验班次类型与员工
func (s *scheduleService) validateShiftRequest(ctx context.Context, req *dto.ShiftRequest) error {
	if !model.IsValidShiftType(req.Type) {
		return ErrInvalidShiftType
	}
	if _, err := daterange.Parse(req.Date); err != nil {
		return ErrInvalidDate
	}
	if req.EmployeeID == "" {
		return nil
	}
	if _, err := s.repo.Employee.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, pkgerrors.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return err
	}
	return nil
}

func (s *scheduleService) getShift(ctx context.Context, id string) (*model.Shift, error) {
	shift, err := s.repo.Shift.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("查询班次失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return shift, nil
}

func (s *scheduleService) CreateShift(ctx context.Context, sid string, req *dto.ShiftRequest) (*model.Shift, error) {
	if err := s.validateShiftRequest(ctx, req); err != nil {
		return nil, err
	}

	shift := &model.Shift{
		ID:         s.shiftSeq.NextID(shiftPrefixNew),
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Type:       req.Type,
		Location:   req.Location,
		Status:     model.ShiftScheduled,
	}
	if shift.IsOpen() {
		shift.Status = model.ShiftOpen
	}

	if err := s.repo.Shift.Create(ctx, shift); err != nil {
		s.logger.Error("创建班次失败", zap.Error(err))
		return nil, err
	}

	metrics.ShiftMutations.WithLabelValues("create").Inc()
	s.notifier.Notify(sid, "Смена создана", model.NotifySuccess)
	s.logger.Info("创建班次", zap.String("id", shift.ID), zap.String("employee_id", shift.EmployeeID))
	return shift, nil
}

// UpdateShift 班次不存在时为无操作（Updated=false），不报错也不提示
func (s *scheduleService) UpdateShift(ctx context.Context, sid, id string, req *dto.ShiftRequest) (*dto.UpdateShiftResult, error) {
	if _, err := s.repo.Shift.GetByID(ctx, id); err != nil {
		if errors.Is(err, pkgerrors.ErrRecordNotFound) {
			return &dto.UpdateShiftResult{Updated: false}, nil
		}
		s.logger.Error("查询班次失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if err := s.validateShiftRequest(ctx, req); err != nil {
		return nil, err
	}

	shift, err := s.repo.Shift.Update(ctx, id, func(sh *model.Shift) error {
		wasOpen := sh.Status == model.ShiftOpen
		sh.EmployeeID = req.EmployeeID
		sh.Date = req.Date
		sh.StartTime = req.StartTime
		sh.EndTime = req.EndTime
		sh.Type = req.Type
		sh.Location = req.Location
		switch {
		case sh.IsOpen():
			sh.Status = model.ShiftOpen
		case wasOpen:
			sh.Status = model.ShiftScheduled
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, pkgerrors.ErrRecordNotFound) {
			return &dto.UpdateShiftResult{Updated: false}, nil
		}
		s.logger.Error("更新班次失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	metrics.ShiftMutations.WithLabelValues("update").Inc()
	s.notifier.Notify(sid, "Смена обновлена", model.NotifySuccess)
	return &dto.UpdateShiftResult{Updated: true, Shift: shift}, nil
}

// DeleteShift 幂等删除，仅在确有删除时提示
func (s *scheduleService) DeleteShift(ctx context.Context, sid, id string) (bool, error) {
	removed, err := s.repo.Shift.Delete(ctx, id)
	if err != nil {
		s.logger.Error("删除班次失败", zap.String("id", id), zap.Error(err))
		return false, err
	}
	if removed {
		metrics.ShiftMutations.WithLabelValues("delete").Inc()
		s.notifier.Notify(sid, "Смена удалена", model.NotifyInfo)
	}
	return removed, nil
}

// DuplicateShift 复制到下一个日历日，除 ID 与日期外字段完全相同，不做冲突校验
func (s *scheduleService) DuplicateShift(ctx context.Context, sid, id string) (*model.Shift, error) {
	src, err := s.getShift(ctx, id)
	if err != nil {
		return nil, err
	}

	tomorrow, err := daterange.NextDay(src.Date)
	if err != nil {
		s.logger.Error("班次日期无效", zap.String("id", id), zap.String("date", src.Date), zap.Error(err))
		return nil, ErrInvalidDate
	}

	dup := *src
	dup.ID = s.shiftSeq.NextID(shiftPrefixDup)
	dup.Date = tomorrow
	if err := s.repo.Shift.Create(ctx, &dup); err != nil {
		s.logger.Error("复制班次失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	metrics.ShiftMutations.WithLabelValues("duplicate").Inc()
	s.notifier.Notify(sid, fmt.Sprintf("Смена дублирована на %s", tomorrow), model.NotifySuccess)
	return &dup, nil
}

// ════════════════════════════════════════════════════════════
// MoveShift 改派与证书校验
// ════════════════════════════════════════════════════════════

// resolveTarget 校验放置目标并返回目标员工
func (s *scheduleService) resolveTarget(ctx context.Context, target *dto.CellTarget) (*model.Employee, error) {
	if target == nil || target.EmployeeID == "" {
		return nil, ErrInvalidDropTarget
	}
	if _, err := daterange.Parse(target.Date); err != nil {
		return nil, ErrInvalidDropTarget
	}
	emp, err := s.repo.Employee.GetByID(ctx, target.EmployeeID)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrRecordNotFound) {
			return nil, ErrInvalidDropTarget
		}
		s.logger.Error("查询目标员工失败", zap.String("employee_id", target.EmployeeID), zap.Error(err))
		return nil, err
	}
	return emp, nil
}

// MoveShift 受限类型班次不能改派给持有过期证书的员工；
// 拒绝时不修改任何数据，仅发出警告提示并返回 Accepted=false。
func (s *scheduleService) MoveShift(ctx context.Context, sid, id string, target *dto.CellTarget) (*dto.MoveResult, error) {
	// 1. 查询班次与目标员工
	if _, err := s.getShift(ctx, id); err != nil {
		return nil, err
	}
	emp, err := s.resolveTarget(ctx, target)
	if err != nil {
		return nil, err
	}

	// 2. 证书校验与原地改派在同一把写锁内完成；空缺班次被认领后转为已排班
	var rejected *model.Shift
	shift, err := s.repo.Shift.Update(ctx, id, func(sh *model.Shift) error {
		if sh.Type == s.cfg.RestrictedShiftType && emp.HasExpiredCertificate() {
			snap := *sh
			rejected = &snap
			return errMoveRejected
		}
		sh.EmployeeID = emp.ID
		sh.Date = target.Date
		if sh.Status == model.ShiftOpen {
			sh.Status = model.ShiftScheduled
		}
		return nil
	})
	switch {
	case errors.Is(err, errMoveRejected):
		msg := fmt.Sprintf("Нельзя назначить %s: сертификат просрочен!", emp.Name)
		metrics.ShiftMoves.WithLabelValues("rejected").Inc()
		s.notifier.Notify(sid, msg, model.NotifyWarning)
		s.logger.Info("改派被拒绝：证书过期",
			zap.String("shift_id", id),
			zap.String("employee_id", emp.ID),
		)
		return &dto.MoveResult{Accepted: false, Shift: rejected, Message: msg}, nil
	case errors.Is(err, pkgerrors.ErrRecordNotFound):
		return nil, ErrShiftNotFound
	case err != nil:
		s.logger.Error("改派班次失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	msg := fmt.Sprintf("Смена перемещена: %s, %s", emp.Name, target.Date)
	metrics.ShiftMoves.WithLabelValues("accepted").Inc()
	metrics.ShiftMutations.WithLabelValues("move").Inc()
	s.notifier.Notify(sid, msg, model.NotifySuccess)
	return &dto.MoveResult{Accepted: true, Shift: shift, Message: msg}, nil
}

// ════════════════════════════════════════════════════════════
// 复制 / 粘贴
// ════════════════════════════════════════════════════════════

// CopyShift 剪贴板保存快照，后复制覆盖先复制
func (s *scheduleService) CopyShift(ctx context.Context, sid, id string) (*model.Shift, error) {
	shift, err := s.getShift(ctx, id)
	if err != nil {
		return nil, err
	}
	snap := *shift
	s.sessions.with(sid, func(gs *gridSession) {
		gs.clipboard = &snap
	})
	s.notifier.Notify(sid, "Смена скопирована", model.NotifyInfo)
	return shift, nil
}

func (s *scheduleService) PasteShift(ctx context.Context, sid string, target *dto.CellTarget) (*model.Shift, error) {
	state := s.sessions.snapshot(sid)
	if state.clipboard == nil {
		return nil, ErrClipboardEmpty
	}
	emp, err := s.resolveTarget(ctx, target)
	if err != nil {
		return nil, err
	}

	pasted := *state.clipboard
	pasted.ID = s.shiftSeq.NextID(shiftPrefixPaste)
	pasted.EmployeeID = emp.ID
	pasted.Date = target.Date
	pasted.Status = model.ShiftScheduled
	if err := s.repo.Shift.Create(ctx, &pasted); err != nil {
		s.logger.Error("粘贴班次失败", zap.Error(err))
		return nil, err
	}

	metrics.ShiftMutations.WithLabelValues("paste").Inc()
	s.notifier.Notify(sid, "Смена вставлена", model.NotifySuccess)
	return &pasted, nil
}

// ════════════════════════════════════════════════════════════
// 溢出弹层
// ════════════════════════════════════════════════════════════

// ToggleOverflow 同一时刻最多展开一个单元格
func (s *scheduleService) ToggleOverflow(sid string, target *dto.CellTarget) dto.OverflowState {
	key := model.CellKey(target.EmployeeID, target.Date)
	var out dto.OverflowState
	s.sessions.with(sid, func(gs *gridSession) {
		if gs.overflowCell == key {
			gs.overflowCell = ""
		} else {
			gs.overflowCell = key
		}
		out.OpenCell = gs.overflowCell
	})
	return out
}

func (s *scheduleService) CloseOverflow(sid, reason string) dto.OverflowState {
	s.sessions.with(sid, func(gs *gridSession) {
		gs.overflowCell = ""
	})
	s.logger.Debug("关闭溢出弹层", zap.String("sid", sid), zap.String("reason", reason))
	return dto.OverflowState{}
}

// ════════════════════════════════════════════════════════════
// 拖拽状态机：idle → dragging → idle
// ════════════════════════════════════════════════════════════

func (s *scheduleService) BeginDrag(ctx context.Context, sid, shiftID string) (*dto.DragState, error) {
	if _, err := s.getShift(ctx, shiftID); err != nil {
		return nil, err
	}

	var busy bool
	s.sessions.with(sid, func(gs *gridSession) {
		if gs.dragShiftID != "" {
			busy = true
			return
		}
		gs.dragShiftID = shiftID
		gs.overflowCell = ""
	})
	if busy {
		return nil, ErrAlreadyDragging
	}
	return &dto.DragState{Dragging: true, ShiftID: shiftID}, nil
}

// Drop 放下时仅校验一次，无论结果如何都回到 idle
func (s *scheduleService) Drop(ctx context.Context, sid string, target *dto.CellTarget) (*dto.MoveResult, error) {
	var shiftID string
	s.sessions.with(sid, func(gs *gridSession) {
		shiftID = gs.dragShiftID
		gs.dragShiftID = ""
	})
	if shiftID == "" {
		return nil, ErrNotDragging
	}
	return s.MoveShift(ctx, sid, shiftID, target)
}

// CancelDrag 在目标之外释放，不做任何修改
func (s *scheduleService) CancelDrag(sid string) dto.DragState {
	s.sessions.with(sid, func(gs *gridSession) {
		gs.dragShiftID = ""
	})
	return dto.DragState{}
}

func (s *scheduleService) DropSession(sid string) {
	s.sessions.drop(sid)
}

func (s *scheduleService) ResetSessions() {
	s.sessions.reset()
}
