package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用全局配置结构体
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Auth         AuthConfig         `mapstructure:"auth"`
	Log          LogConfig          `mapstructure:"log"`
	Schedule     ScheduleConfig     `mapstructure:"schedule"`
	Notification NotificationConfig `mapstructure:"notification"`
	Demo         DemoConfig         `mapstructure:"demo"`
	Metrics      MetricsConfig      `mapstructure:"metrics"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Port         int        `mapstructure:"port"`
	BodyLimitMB  int        `mapstructure:"body_limit_mb"`
	CORS         CORSConfig `mapstructure:"cors"`
	ShutdownWait int        `mapstructure:"shutdown_wait"` // 优雅关闭等待（秒）
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// AuthConfig 演示会话令牌配置（角色切换，非真实鉴权）
type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwt_secret"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ScheduleConfig 排班网格配置
type ScheduleConfig struct {
	MaxVisibleShifts    int    `mapstructure:"max_visible_shifts"`
	RestrictedShiftType string `mapstructure:"restricted_shift_type"` // 需要有效证书的班次类型
	Timezone            string `mapstructure:"timezone"`
}

// NotificationConfig 提示消息配置
type NotificationConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// DemoConfig 演示数据配置
type DemoConfig struct {
	ResetCron string `mapstructure:"reset_cron"` // 为空时不定时重置
}

// MetricsConfig Prometheus 指标配置
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Location 返回排班使用的时区，加载失败时回退到 UTC
func (c *ScheduleConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load 从配置文件与环境变量加载配置
// 优先级：环境变量 > 配置文件 > 默认值
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── 默认值 ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.body_limit_mb", 1)
	v.SetDefault("server.shutdown_wait", 10)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("auth.jwt_secret", "adaptix-demo-secret-change-me")
	v.SetDefault("auth.session_ttl", "12h")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("schedule.max_visible_shifts", 2)
	v.SetDefault("schedule.restricted_shift_type", "Операционная")
	v.SetDefault("schedule.timezone", "Europe/Moscow")

	v.SetDefault("notification.ttl", "3500ms")

	v.SetDefault("demo.reset_cron", "")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	// ── 配置文件 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 环境变量 ──
	v.SetEnvPrefix("ADAPTIX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验关键配置项
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("配置校验失败: auth.jwt_secret 长度不能少于 16 字符")
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("配置校验失败: auth.session_ttl 必须大于 0")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("配置校验失败: server.port 必须在 1-65535 之间")
	}
	if c.Schedule.MaxVisibleShifts < 1 {
		return fmt.Errorf("配置校验失败: schedule.max_visible_shifts 不能小于 1")
	}
	if strings.TrimSpace(c.Schedule.RestrictedShiftType) == "" {
		return fmt.Errorf("配置校验失败: schedule.restricted_shift_type 不能为空")
	}
	if _, err := time.LoadLocation(c.Schedule.Timezone); err != nil {
		return fmt.Errorf("配置校验失败: schedule.timezone %q 无效: %w", c.Schedule.Timezone, err)
	}
	if c.Notification.TTL <= 0 {
		return fmt.Errorf("配置校验失败: notification.ttl 必须大于 0")
	}
	return nil
}
