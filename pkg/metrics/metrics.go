// Package metrics 提供基于Prometheus的指标收集
//
// 指标类型说明:
// - Counter: 只增不减的累计值(请求总数、创建总数)
// - Gauge: 可增可减的瞬时值(处理中的请求数、在库图书数)
// - Histogram: 观测值分布(请求耗时,自动计算P50/P90/P99)
//
// 使用方式:
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initOnce 保证指标只注册一次（promauto重复注册会panic）
	initOnce sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（/api/v1/books）、status（200/409）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 图书目录业务指标

	// BooksCreatedTotal 图书创建总数（Counter）
	BooksCreatedTotal prometheus.Counter

	// BooksDeletedTotal 图书删除总数（Counter）
	BooksDeletedTotal prometheus.Counter

	// BooksInCatalog 当前在库图书数量（Gauge）
	BooksInCatalog prometheus.Gauge

	// CatalogQueriesTotal 筛选查询总数（Counter）
	// 标签：result（success/invalid_genre/error）
	CatalogQueriesTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
// 使用promauto自动注册到默认Registry，重复调用（包括并发调用）是安全的
func InitMetrics() {
	initOnce.Do(registerMetrics)
}

func registerMetrics() {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时分布",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	BooksCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_created_total",
			Help: "图书创建总数",
		},
	)

	BooksDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_deleted_total",
			Help: "图书删除总数",
		},
	)

	BooksInCatalog = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "books_in_catalog",
			Help: "当前在库图书数量",
		},
	)

	CatalogQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_queries_total",
			Help: "筛选查询总数",
		},
		[]string{"result"},
	)
}
