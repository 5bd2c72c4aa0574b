// Package metrics 进程级 Prometheus 指标。
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "adaptix"

var (
	// HTTPRequests 按路由与状态码统计的请求数
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	// HTTPDuration 请求耗时
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// ShiftMoves 拖拽改派结果（accepted / rejected）
	ShiftMoves = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shift_moves_total",
		Help:      "Shift drag-and-drop reassignments by result",
	}, []string{"result"})

	// ShiftMutations 班次增删改
	ShiftMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shift_mutations_total",
		Help:      "Shift create/update/delete/duplicate/paste operations",
	}, []string{"op"})

	// RuleMutations 规则增删改与开关
	RuleMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rule_mutations_total",
		Help:      "Rule create/update/delete/toggle operations",
	}, []string{"op"})

	// WidgetMutations 表单设计器组件操作
	WidgetMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "designer_widget_mutations_total",
		Help:      "Form designer widget operations",
	}, []string{"op"})

	// Notifications 已发出的提示
	Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Notifications emitted by kind",
	}, []string{"kind"})

	// DemoResets 演示数据重置次数
	DemoResets = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "demo_resets_total",
		Help:      "Demo data resets",
	})
)

// Handler /metrics 端点
func Handler() http.Handler {
	return promhttp.Handler()
}
