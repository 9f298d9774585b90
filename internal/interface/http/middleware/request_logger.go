package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookcatalog/pkg/logger"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
)

// RequestLogger 请求日志中间件
// 设计说明：
// 1. 每个请求在其他处理之前从Sequencer取一个严格递增的关联ID
// 2. 关联ID注入request context并写回X-Request-ID响应头,
//    同一请求内所有日志事件携带同一个ID,便于串联排查
// 3. 访问日志走request-logger通道的http级别,受通道阈值控制
// 4. 同时记录Prometheus请求指标
type RequestLogger struct {
	sequencer *logger.Sequencer
	log       *logger.Channel
}

// NewRequestLogger 创建请求日志中间件
func NewRequestLogger(sequencer *logger.Sequencer, registry *logger.Registry) *RequestLogger {
	return &RequestLogger{
		sequencer: sequencer,
		log:       registry.Channel(logger.ChannelRequest),
	}
}

// Handler 返回gin中间件函数
func (m *RequestLogger) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 步骤1: 分配关联ID（先于任何其他处理）
		seq := m.sequencer.Next()
		c.Request = c.Request.WithContext(logger.WithSeq(c.Request.Context(), seq))
		c.Header("X-Request-ID", strconv.FormatUint(seq, 10))

		// 步骤2: 记录开始时间与处理中计数
		startTime := time.Now()
		metrics.HTTPRequestsInProgress.Inc()

		// 步骤3: 处理请求
		c.Next()

		// 步骤4: 记录访问日志与指标
		latency := time.Since(startTime)
		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		m.log.HTTP(seq, "%s %s → %d (%v)", c.Request.Method, c.Request.URL.Path, status, latency)

		metrics.HTTPRequestsInProgress.Dec()
		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(status),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method, path,
		).Observe(latency.Seconds())
	}
}
