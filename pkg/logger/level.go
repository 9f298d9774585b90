package logger

import (
	"strings"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// Level 日志级别
// 设计说明：
// 级别按详细程度递增排序：error < warn < info < http < debug
// 数值越大输出越详细；通道阈值为info时，error/warn/info会输出，http/debug被丢弃
type Level int8

const (
	LevelError Level = iota // 仅错误
	LevelWarn               // 警告
	LevelInfo               // 常规业务信息（默认）
	LevelHTTP               // HTTP访问日志
	LevelDebug              // 调试信息（最详细）
)

// levelNames 级别与名称的对应关系（小写规范名）
var levelNames = map[Level]string{
	LevelError: "error",
	LevelWarn:  "warn",
	LevelInfo:  "info",
	LevelHTTP:  "http",
	LevelDebug: "debug",
}

// String 返回级别的小写名称
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLevel 解析级别名称（不区分大小写）
// 无法识别的名称返回ErrCodeInvalidSeverity错误
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "error":
		return LevelError, nil
	case "warn":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "http":
		return LevelHTTP, nil
	case "debug":
		return LevelDebug, nil
	default:
		return 0, apperrors.New(apperrors.ErrCodeInvalidSeverity, "未知的日志级别: "+name)
	}
}

// Enabled 判断阈值为l时，severity级别的事件是否应该输出
// 规则：事件级别不高于阈值时输出（severity <= l）
func (l Level) Enabled(severity Level) bool {
	return severity <= l
}
