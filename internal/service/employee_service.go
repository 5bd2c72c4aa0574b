package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/maplol/adaptix-mvp/internal/dto"
	"github.com/maplol/adaptix-mvp/internal/model"
	"github.com/maplol/adaptix-mvp/internal/repository"
	pkgerrors "github.com/maplol/adaptix-mvp/pkg/errors"
)

// ── 员工模块业务错误 ──

var (
	ErrEmployeeNotFound = errors.New("员工不存在")
)

// EmployeeService 员工目录业务接口
type EmployeeService interface {
	List(ctx context.Context, q *dto.EmployeeListQuery) ([]dto.EmployeeResponse, error)
	Get(ctx context.Context, id string) (*dto.EmployeeResponse, error)
	Update(ctx context.Context, sid, id string, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	JobRoles(ctx context.Context) ([]string, error)
	Locations(ctx context.Context) ([]string, error)
}

type employeeService struct {
	repo     *repository.Repository
	notifier NotificationService
	logger   *zap.Logger
}

// NewEmployeeService 创建 EmployeeService 实例
func NewEmployeeService(repo *repository.Repository, notifier NotificationService, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, notifier: notifier, logger: logger}
}

func toEmployeeResponse(e *model.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		Employee:            *e,
		ExpiredCertificates: e.ExpiredCertificateCount(),
	}
}

// List 按姓名或职位搜索（不区分大小写），可按工种与地点筛选
func (s *employeeService) List(ctx context.Context, q *dto.EmployeeListQuery) ([]dto.EmployeeResponse, error) {
	employees, err := s.repo.Employee.List(ctx)
	if err != nil {
		s.logger.Error("查询员工列表失败", zap.Error(err))
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		e := &employees[i]
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Name), search) &&
			!strings.Contains(strings.ToLower(e.Position), search) {
			continue
		}
		if q.JobRole != "" && e.JobRole != q.JobRole {
			continue
		}
		if q.Location != "" && e.Location != q.Location {
			continue
		}
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

func (s *employeeService) Get(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	e, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	resp := toEmployeeResponse(e)
	return &resp, nil
}

func (s *employeeService) Update(ctx context.Context, sid, id string, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := s.repo.Employee.Update(ctx, id, func(e *model.Employee) error {
		if req.Name != nil {
			e.Name = strings.TrimSpace(*req.Name)
		}
		if req.Position != nil {
			e.Position = *req.Position
		}
		if req.JobRole != nil {
			e.JobRole = *req.JobRole
		}
		if req.AppRole != nil {
			e.AppRole = *req.AppRole
		}
		if req.Location != nil {
			e.Location = *req.Location
		}
		if req.Status != nil {
			e.Status = *req.Status
		}
		if req.Phone != nil {
			e.Phone = *req.Phone
		}
		if req.Email != nil {
			e.Email = *req.Email
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, pkgerrors.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("更新员工失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.notifier.Notify(sid, fmt.Sprintf("%s — данные обновлены", e.Name), model.NotifySuccess)
	resp := toEmployeeResponse(e)
	return &resp, nil
}

// distinct 按首次出现顺序去重
func (s *employeeService) distinct(ctx context.Context, pick func(*model.Employee) string) ([]string, error) {
	employees, err := s.repo.Employee.List(ctx)
	if err != nil {
		s.logger.Error("查询员工列表失败", zap.Error(err))
		return nil, err
	}
	seen := make(map[string]bool)
	out := make([]string, 0)
	for i := range employees {
		v := pick(&employees[i])
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out, nil
}

func (s *employeeService) JobRoles(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, func(e *model.Employee) string { return e.JobRole })
}

func (s *employeeService) Locations(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, func(e *model.Employee) string { return e.Location })
}
