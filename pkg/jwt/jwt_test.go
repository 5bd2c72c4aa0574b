package jwt

import (
	"testing"
	"time"

	"github.com/maplol/adaptix-mvp/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:  "test-secret-key-for-unit-testing-2026",
		SessionTTL: 12 * time.Hour,
	})
}

func TestGenerateAndParseSessionToken(t *testing.T) {
	m := newTestManager()

	token, sid, err := m.GenerateSessionToken("manager", "e7")
	if err != nil {
		t.Fatalf("GenerateSessionToken 失败: %v", err)
	}
	if sid == "" {
		t.Fatal("会话 ID 不应为空")
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 失败: %v", err)
	}

	if claims.Role != "manager" {
		t.Errorf("期望 Role=manager，实际=%s", claims.Role)
	}
	if claims.EmployeeID != "e7" {
		t.Errorf("期望 EmployeeID=e7，实际=%s", claims.EmployeeID)
	}
	if claims.SessionID != sid {
		t.Errorf("期望 SessionID=%s，实际=%s", sid, claims.SessionID)
	}
	if claims.Issuer != "adaptix-demo" {
		t.Errorf("期望 Issuer=adaptix-demo，实际=%s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("JTI 不应为空")
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 11*time.Hour || ttl > 13*time.Hour {
		t.Errorf("会话 TTL 期望约12h，实际=%v", ttl)
	}
}

func TestGenerateSessionToken_DistinctSessions(t *testing.T) {
	m := newTestManager()

	_, sid1, _ := m.GenerateSessionToken("admin", "e10")
	_, sid2, _ := m.GenerateSessionToken("admin", "e10")
	if sid1 == sid2 {
		t.Error("两次登录应生成不同的会话 ID")
	}
}

func TestParseToken_InvalidToken(t *testing.T) {
	m := newTestManager()

	_, err := m.ParseToken("invalid.token.string")
	if err == nil {
		t.Error("期望解析无效 token 返回错误")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m1 := newTestManager()
	m2 := NewManager(&config.AuthConfig{
		JWTSecret:  "different-secret-key",
		SessionTTL: time.Hour,
	})

	token, _, _ := m1.GenerateSessionToken("admin", "e10")
	_, err := m2.ParseToken(token)
	if err == nil {
		t.Error("不同密钥签名的 token 不应通过验证")
	}
}

func TestParseToken_ExpiredToken(t *testing.T) {
	m := NewManager(&config.AuthConfig{
		JWTSecret:  "test-secret-key-for-unit-testing-2026",
		SessionTTL: -time.Minute,
	})

	token, _, _ := m.GenerateSessionToken("employee", "e3")

	_, err := m.ParseToken(token)
	if err != ErrTokenExpired {
		t.Errorf("期望 ErrTokenExpired，实际: %v", err)
	}
}
