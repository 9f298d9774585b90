package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 通道名称常量
// 两个通道各自持有独立的级别阈值，可在运行期通过管理接口调整
const (
	ChannelRequest = "request-logger" // HTTP请求日志通道
	ChannelBooks   = "books-logger"   // 图书业务日志通道
)

// Registry 日志级别注册表
// 设计说明：
// 1. 按通道名维护可变的级别阈值，进程启动时初始化为info
// 2. gin并发处理请求，阈值读写用RWMutex保护
// 3. 低于阈值的事件静默丢弃（不是错误）
type Registry struct {
	mu     sync.RWMutex
	levels map[string]Level
	out    io.Writer
}

// Option Registry可选配置
type Option func(*Registry)

// WithOutput 指定日志输出目标（默认os.Stdout）
func WithOutput(w io.Writer) Option {
	return func(r *Registry) {
		r.out = w
	}
}

// NewRegistry 创建注册表，两个通道的阈值初始化为info
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		levels: map[string]Level{
			ChannelRequest: LevelInfo,
			ChannelBooks:   LevelInfo,
		},
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetLevel 查询通道当前阈值
// 未注册的通道名返回ErrCodeChannelNotFound错误
func (r *Registry) GetLevel(channel string) (Level, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	level, ok := r.levels[channel]
	if !ok {
		return 0, apperrors.New(apperrors.ErrCodeChannelNotFound, "日志通道不存在: "+channel)
	}
	return level, nil
}

// SetLevel 替换通道阈值并返回新阈值
// 校验顺序：先校验通道名，再校验级别名（级别名不区分大小写）
func (r *Registry) SetLevel(channel, levelName string) (Level, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.levels[channel]; !ok {
		return 0, apperrors.New(apperrors.ErrCodeChannelNotFound, "日志通道不存在: "+channel)
	}

	level, err := ParseLevel(levelName)
	if err != nil {
		return 0, err
	}

	r.levels[channel] = level
	return level, nil
}

// Channel 获取指定通道的日志记录器
// 通道名不存在时输出会被全部丢弃（Log内部查询阈值失败时忽略事件）
func (r *Registry) Channel(name string) *Channel {
	return &Channel{name: name, registry: r}
}

// Channel 绑定到某个通道的日志记录器
// 每条日志事件携带：时间戳、级别、关联ID、正文
type Channel struct {
	name     string
	registry *Registry
}

// Log 输出一条日志事件
// 事件级别低于通道当前阈值时静默丢弃
func (c *Channel) Log(severity Level, seq uint64, format string, args ...interface{}) {
	c.registry.mu.RLock()
	threshold, ok := c.registry.levels[c.name]
	out := c.registry.out
	c.registry.mu.RUnlock()

	if !ok || !threshold.Enabled(severity) {
		return
	}

	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "%s [%s] [%s] #%d %s\n",
		time.Now().Format("2006-01-02 15:04:05.000"),
		strings.ToUpper(severity.String()),
		c.name,
		seq,
		msg,
	)
}

// Error / Warn / Info / HTTP / Debug 按级别输出的便捷方法
func (c *Channel) Error(seq uint64, format string, args ...interface{}) {
	c.Log(LevelError, seq, format, args...)
}

func (c *Channel) Warn(seq uint64, format string, args ...interface{}) {
	c.Log(LevelWarn, seq, format, args...)
}

func (c *Channel) Info(seq uint64, format string, args ...interface{}) {
	c.Log(LevelInfo, seq, format, args...)
}

func (c *Channel) HTTP(seq uint64, format string, args ...interface{}) {
	c.Log(LevelHTTP, seq, format, args...)
}

func (c *Channel) Debug(seq uint64, format string, args ...interface{}) {
	c.Log(LevelDebug, seq, format, args...)
}
