package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maplol/adaptix-mvp/config"
	"github.com/maplol/adaptix-mvp/internal/repository"
	"github.com/maplol/adaptix-mvp/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestManager() *jwt.Manager {
	return jwt.NewManager(&config.AuthConfig{
		JWTSecret:  "test-secret-key-for-unit-testing-2026",
		SessionTTL: time.Hour,
	})
}

// echoSession 回显中间件注入的会话字段
func echoSession(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sid":         c.GetString("sid"),
		"role":        c.GetString("role"),
		"employee_id": c.GetString("employee_id"),
	})
}

func TestJWTAuth(t *testing.T) {
	mgr := newTestManager()
	token, sid, err := mgr.GenerateSessionToken("manager", "e7")
	if err != nil {
		t.Fatalf("GenerateSessionToken 失败: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"有效令牌", "Bearer " + token, http.StatusOK},
		{"缺少认证头", "", http.StatusUnauthorized},
		{"格式错误", "Token " + token, http.StatusUnauthorized},
		{"令牌无效", "Bearer not-a-jwt", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/me", JWTAuth(mgr), echoSession)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("期望状态码 %d，实际 %d", tt.wantStatus, w.Code)
			}
			if tt.wantStatus == http.StatusOK && !strings.Contains(w.Body.String(), `"sid":"`+sid+`"`) {
				t.Errorf("上下文未注入会话: %s", w.Body.String())
			}
		})
	}
}

func TestOptionalJWTAuth(t *testing.T) {
	mgr := newTestManager()
	token, _, _ := mgr.GenerateSessionToken("employee", "e3")

	r := gin.New()
	r.GET("/menu", OptionalJWTAuth(mgr), echoSession)

	for header, wantRole := range map[string]string{
		"":                `"role":""`,
		"Bearer broken":   `"role":""`,
		"Bearer " + token: `"role":"employee"`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/menu", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("可选认证不应拦截请求，实际状态码 %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), wantRole) {
			t.Errorf("header=%q 期望 %s，实际 %s", header, wantRole, w.Body.String())
		}
	}
}

func TestRoleAuth(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{"允许的角色", "manager", http.StatusOK},
		{"不允许的角色", "employee", http.StatusForbidden},
		{"未登录", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/settings", func(c *gin.Context) {
				if tt.role != "" {
					c.Set("role", tt.role)
				}
				c.Next()
			}, RoleAuth("admin", "manager"), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest("GET", "/settings", nil))

			if w.Code != tt.wantStatus {
				t.Errorf("期望状态码 %d，实际 %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.GET("/ping", RequestID(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})

	// 透传合法的外部 ID
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "req-42")
	r.ServeHTTP(w, req)
	if w.Header().Get("X-Request-ID") != "req-42" || w.Body.String() != "req-42" {
		t.Errorf("应透传外部 Request-ID，实际 header=%s body=%s", w.Header().Get("X-Request-ID"), w.Body.String())
	}

	// 过长的 ID 被替换
	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", strings.Repeat("x", requestIDMaxLen+1))
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); len(got) != 36 {
		t.Errorf("过长的 Request-ID 应替换为 UUID，实际=%s", got)
	}
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:5173/"}))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("预检请求期望 204，实际 %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Errorf("允许的来源应回写 Allow-Origin，实际=%q", w.Header().Get("Access-Control-Allow-Origin"))
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	r.ServeHTTP(w, req)
	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("未知来源不应回写 Allow-Origin")
	}
}

func TestDataGate(t *testing.T) {
	repo := repository.NewRepository()
	r := gin.New()
	r.Use(DataGate(repo, "/reset"))

	reloaded := make(chan struct{}, 1)
	r.GET("/grid", func(c *gin.Context) {
		// 请求处理期间发起的重载必须等到请求结束
		go repo.Reload(func() { reloaded <- struct{}{} })
		select {
		case <-reloaded:
			t.Error("请求处理期间不应发生重载")
		case <-time.After(50 * time.Millisecond):
		}
		c.Status(http.StatusOK)
	})
	r.POST("/reset", func(c *gin.Context) {
		repo.Reload(func() {})
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/grid", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际 %d", w.Code)
	}
	select {
	case <-reloaded:
	case <-time.After(time.Second):
		t.Fatal("请求结束后重载应完成")
	}

	// 跳过的路由自身可以执行重载
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/reset", nil))
	if w.Code != http.StatusOK {
		t.Errorf("重载路由期望 200，实际 %d", w.Code)
	}
}
