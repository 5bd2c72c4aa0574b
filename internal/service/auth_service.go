package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/maplol/adaptix-mvp/config"
	"github.com/maplol/adaptix-mvp/internal/dto"
	"github.com/maplol/adaptix-mvp/internal/model"
	"github.com/maplol/adaptix-mvp/internal/repository"
	pkgerrors "github.com/maplol/adaptix-mvp/pkg/errors"
	"github.com/maplol/adaptix-mvp/pkg/jwt"
)

// ── 会话模块业务错误 ──

var (
	ErrInvalidRole      = errors.New("未知角色")
	ErrIdentityNotFound = errors.New("登录身份不存在")
	ErrSessionNotFound  = errors.New("会话身份不存在")
)

// defaultIdentities 各角色的默认演示身份
var defaultIdentities = map[string]string{
	model.RoleAdmin:    "e10",
	model.RoleManager:  "e7",
	model.RoleEmployee: "e3",
}

// sessionDropper 持有会话级状态的服务
type sessionDropper interface {
	DropSession(sid string)
}

// AuthService 演示会话（角色切换）业务接口
type AuthService interface {
	// Login 选择角色进入演示；EmployeeID 为空时使用角色默认身份
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error)
	// Me 当前会话身份与菜单
	Me(ctx context.Context, sid, role, employeeID string) (*dto.MeResponse, error)
	// Logout 清理会话级状态（剪贴板、拖拽、溢出弹层、提示）
	Logout(ctx context.Context, sid string)
}

type authService struct {
	cfg      *config.Config
	repo     *repository.Repository
	jwtMgr   *jwt.Manager
	nav      NavigationService
	droppers []sessionDropper
	logger   *zap.Logger
}

// NewAuthService 创建 AuthService 实例
//
// droppers 为登出时需要清理会话状态的服务。
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	nav NavigationService,
	logger *zap.Logger,
	droppers ...sessionDropper,
) AuthService {
	return &authService{
		cfg:      cfg,
		repo:     repo,
		jwtMgr:   jwtMgr,
		nav:      nav,
		droppers: droppers,
		logger:   logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	// 1. 校验角色
	if !model.IsValidAppRole(req.Role) {
		return nil, ErrInvalidRole
	}

	// 2. 确定身份
	employeeID := req.EmployeeID
	if employeeID == "" {
		employeeID = defaultIdentities[req.Role]
	}
	emp, err := s.repo.Employee.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrRecordNotFound) {
			return nil, ErrIdentityNotFound
		}
		s.logger.Error("查询登录身份失败", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	// 3. 签发会话令牌
	token, sid, err := s.jwtMgr.GenerateSessionToken(req.Role, emp.ID)
	if err != nil {
		s.logger.Error("生成会话令牌失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("进入演示会话",
		zap.String("sid", sid),
		zap.String("role", req.Role),
		zap.String("employee_id", emp.ID),
	)

	return &dto.SessionResponse{
		Token:     token,
		ExpiresIn: int(s.cfg.Auth.SessionTTL.Seconds()),
		SessionID: sid,
		Role:      req.Role,
		Employee:  dto.NewEmployeeBrief(emp),
	}, nil
}

func (s *authService) Me(ctx context.Context, sid, role, employeeID string) (*dto.MeResponse, error) {
	emp, err := s.repo.Employee.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("查询会话身份失败", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	return &dto.MeResponse{
		SessionID: sid,
		Role:      role,
		Employee:  dto.NewEmployeeBrief(emp),
		Menu:      s.nav.Menu(role),
	}, nil
}

func (s *authService) Logout(ctx context.Context, sid string) {
	for _, d := range s.droppers {
		d.DropSession(sid)
	}
	s.logger.Info("退出演示会话", zap.String("sid", sid))
}
