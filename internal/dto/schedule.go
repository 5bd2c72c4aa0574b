package dto

import "github.com/maplol/adaptix-mvp/internal/model"

// ── 排班网格模块 DTO ──

// ShiftRequest 新建 / 编辑班次表单
//
// EmployeeID 为空表示空缺班次。
type ShiftRequest struct {
	EmployeeID string `json:"employee_id" binding:"omitempty,max=64"`
	Date       string `json:"date"        binding:"required,datetime=2006-01-02"`
	Type       string `json:"type"        binding:"required,max=50"`
	StartTime  string `json:"start_time"  binding:"required,datetime=15:04"`
	EndTime    string `json:"end_time"    binding:"required,datetime=15:04"`
	Location   string `json:"location"    binding:"required,max=100"`
}

// CellTarget 目标单元格（移动 / 粘贴 / 放下 / 展开溢出）
type CellTarget struct {
	EmployeeID string `json:"employee_id" form:"employee_id" binding:"required,max=64"`
	Date       string `json:"date"        form:"date"        binding:"required,datetime=2006-01-02"`
}

// DragStartRequest 开始拖拽
type DragStartRequest struct {
	ShiftID string `json:"shift_id" binding:"required,max=64"`
}

// CloseOverflowRequest 关闭溢出弹层
type CloseOverflowRequest struct {
	Reason string `json:"reason" form:"reason" binding:"required,oneof=outside_click escape"`
}

// WindowQuery 视图窗口查询参数
//
// Nav 为 prev/next 时以 Anchor 为基准翻页，为 today 时回到本周周一。
type WindowQuery struct {
	Anchor string `form:"anchor" binding:"omitempty,datetime=2006-01-02"`
	Mode   string `form:"mode"   binding:"omitempty,oneof=week 2weeks month"`
	Nav    string `form:"nav"    binding:"omitempty,oneof=prev next today"`
}

// GridQuery 网格查询参数
type GridQuery struct {
	WindowQuery
	Location string `form:"location" binding:"omitempty,max=100"`
}

// ── 响应 ──

// DayColumn 网格列头
type DayColumn struct {
	Date      string `json:"date"`
	DayLabel  string `json:"day_label"`
	IsToday   bool   `json:"is_today"`
	IsWorkday bool   `json:"is_workday"`
	IsHoliday bool   `json:"is_holiday"`
	Holiday   string `json:"holiday,omitempty"`
}

// WindowResponse 视图窗口
type WindowResponse struct {
	Mode   string      `json:"mode"`
	Anchor string      `json:"anchor"`
	Label  string      `json:"label"`
	Start  string      `json:"start"`
	End    string      `json:"end"`
	Prev   string      `json:"prev"`
	Next   string      `json:"next"`
	Days   []DayColumn `json:"days"`
}

// GridCell 单元格：最多 MaxVisible 条可见，其余折叠
type GridCell struct {
	Key          string        `json:"key"`
	Date         string        `json:"date"`
	Visible      []model.Shift `json:"visible"`
	Hidden       []model.Shift `json:"hidden,omitempty"`
	HiddenCount  int           `json:"hidden_count"`
	OverflowOpen bool          `json:"overflow_open"`
}

// GridRow 网格行（一名员工）
type GridRow struct {
	Employee EmployeeBrief `json:"employee"`
	Cells    []GridCell    `json:"cells"`
}

// OpenShiftColumn 某日的空缺班次
type OpenShiftColumn struct {
	Date   string        `json:"date"`
	Shifts []model.Shift `json:"shifts"`
}

// DragState 拖拽状态机
type DragState struct {
	Dragging bool   `json:"dragging"`
	ShiftID  string `json:"shift_id,omitempty"`
}

// OverflowState 溢出弹层状态
type OverflowState struct {
	OpenCell string `json:"open_cell,omitempty"`
}

// GridResponse 网格渲染数据
type GridResponse struct {
	Window     WindowResponse    `json:"window"`
	Location   string            `json:"location,omitempty"`
	Locations  []string          `json:"locations"`
	MaxVisible int               `json:"max_visible"`
	Rows       []GridRow         `json:"rows"`
	OpenShifts []OpenShiftColumn `json:"open_shifts"`
	Clipboard  *model.Shift      `json:"clipboard,omitempty"`
	Drag       DragState         `json:"drag"`
	Overflow   OverflowState     `json:"overflow"`
}

// MoveResult 改派结果；证书冲突时 Accepted=false 且班次不变
type MoveResult struct {
	Accepted bool         `json:"accepted"`
	Shift    *model.Shift `json:"shift"`
	Message  string       `json:"message"`
}

// UpdateShiftResult 编辑结果；Updated=false 表示班次不存在（无操作）
type UpdateShiftResult struct {
	Updated bool         `json:"updated"`
	Shift   *model.Shift `json:"shift,omitempty"`
}

// ScheduleMetaResponse 表单选项
type ScheduleMetaResponse struct {
	ShiftTypes     []string `json:"shift_types"`
	Locations      []string `json:"locations"`
	Statuses       []string `json:"statuses"`
	RestrictedType string   `json:"restricted_type"`
	MaxVisible     int      `json:"max_visible"`
	ViewModes      []string `json:"view_modes"`
}
