package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("期望 port=8080，实际=%d", cfg.Server.Port)
	}
	if cfg.Schedule.MaxVisibleShifts != 2 {
		t.Errorf("期望 max_visible_shifts=2，实际=%d", cfg.Schedule.MaxVisibleShifts)
	}
	if cfg.Schedule.RestrictedShiftType != "Операционная" {
		t.Errorf("期望 restricted_shift_type=Операционная，实际=%s", cfg.Schedule.RestrictedShiftType)
	}
	if cfg.Notification.TTL != 3500*time.Millisecond {
		t.Errorf("期望 notification.ttl=3.5s，实际=%v", cfg.Notification.TTL)
	}
	if cfg.Auth.SessionTTL != 12*time.Hour {
		t.Errorf("期望 session_ttl=12h，实际=%v", cfg.Auth.SessionTTL)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ADAPTIX_SERVER_PORT", "9090")
	t.Setenv("ADAPTIX_SCHEDULE_MAX_VISIBLE_SHIFTS", "3")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("期望 port=9090，实际=%d", cfg.Server.Port)
	}
	if cfg.Schedule.MaxVisibleShifts != 3 {
		t.Errorf("期望 max_visible_shifts=3，实际=%d", cfg.Schedule.MaxVisibleShifts)
	}
}

func validConfig() Config {
	return Config{
		Server:       ServerConfig{Port: 8080},
		Auth:         AuthConfig{JWTSecret: "0123456789abcdef", SessionTTL: time.Hour},
		Schedule:     ScheduleConfig{MaxVisibleShifts: 2, RestrictedShiftType: "Операционная", Timezone: "UTC"},
		Notification: NotificationConfig{TTL: time.Second},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"short secret", func(c *Config) { c.Auth.JWTSecret = "short" }, true},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, true},
		{"zero visible shifts", func(c *Config) { c.Schedule.MaxVisibleShifts = 0 }, true},
		{"empty restricted type", func(c *Config) { c.Schedule.RestrictedShiftType = "  " }, true},
		{"bad timezone", func(c *Config) { c.Schedule.Timezone = "Mars/Olympus" }, true},
		{"zero ttl", func(c *Config) { c.Notification.TTL = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}
