package logger

import (
	"bytes"
	"strings"
	"testing"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// TestParseLevel 测试级别名称解析（不区分大小写）
func TestParseLevel(t *testing.T) {
	cases := []struct {
		name string
		want Level
	}{
		{"error", LevelError},
		{"WARN", LevelWarn},
		{"Info", LevelInfo},
		{"http", LevelHTTP},
		{"DEBUG", LevelDebug},
	}

	for _, tc := range cases {
		got, err := ParseLevel(tc.name)
		if err != nil {
			t.Fatalf("解析%q失败: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("解析%q: 期望%v，实际%v", tc.name, tc.want, got)
		}
	}

	// 无法识别的级别名应返回InvalidSeverity错误
	if _, err := ParseLevel("verbose"); !apperrors.HasCode(err, apperrors.ErrCodeInvalidSeverity) {
		t.Errorf("解析verbose期望ErrCodeInvalidSeverity，实际%v", err)
	}
}

// TestRegistryDefaults 测试两个通道的初始阈值为info
func TestRegistryDefaults(t *testing.T) {
	r := NewRegistry()

	for _, channel := range []string{ChannelRequest, ChannelBooks} {
		level, err := r.GetLevel(channel)
		if err != nil {
			t.Fatalf("查询%s失败: %v", channel, err)
		}
		if level != LevelInfo {
			t.Errorf("%s初始阈值期望info，实际%s", channel, level)
		}
	}
}

// TestRegistrySetLevel 测试运行期调整阈值
func TestRegistrySetLevel(t *testing.T) {
	r := NewRegistry()

	// 正常设置
	level, err := r.SetLevel(ChannelBooks, "DEBUG")
	if err != nil {
		t.Fatalf("设置级别失败: %v", err)
	}
	if level != LevelDebug {
		t.Errorf("期望返回debug，实际%s", level)
	}

	got, err := r.GetLevel(ChannelBooks)
	if err != nil {
		t.Fatalf("查询级别失败: %v", err)
	}
	if got != LevelDebug {
		t.Errorf("设置后查询期望debug，实际%s", got)
	}

	// 未注册的通道
	if _, err := r.GetLevel("orders-logger"); !apperrors.HasCode(err, apperrors.ErrCodeChannelNotFound) {
		t.Errorf("查询未知通道期望ErrCodeChannelNotFound，实际%v", err)
	}
	if _, err := r.SetLevel("orders-logger", "info"); !apperrors.HasCode(err, apperrors.ErrCodeChannelNotFound) {
		t.Errorf("设置未知通道期望ErrCodeChannelNotFound，实际%v", err)
	}

	// 无法识别的级别名
	if _, err := r.SetLevel(ChannelBooks, "verbose"); !apperrors.HasCode(err, apperrors.ErrCodeInvalidSeverity) {
		t.Errorf("设置verbose期望ErrCodeInvalidSeverity，实际%v", err)
	}

	// 设置失败不应改变原有阈值
	got, _ = r.GetLevel(ChannelBooks)
	if got != LevelDebug {
		t.Errorf("设置失败后阈值期望保持debug，实际%s", got)
	}
}

// TestChannelGating 测试低于阈值的事件被静默丢弃
func TestChannelGating(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegistry(WithOutput(&buf))
	ch := r.Channel(ChannelBooks)

	// 阈值为error时，info事件不输出
	if _, err := r.SetLevel(ChannelBooks, "error"); err != nil {
		t.Fatalf("设置级别失败: %v", err)
	}
	ch.Info(1, "created book %d", 1)
	if buf.Len() != 0 {
		t.Errorf("阈值error下info事件不应输出，实际输出: %q", buf.String())
	}

	// error事件仍然输出
	ch.Error(2, "boom")
	if !strings.Contains(buf.String(), "[ERROR]") {
		t.Errorf("error事件应输出，实际: %q", buf.String())
	}

	// 阈值调回info后，info及以上级别恢复输出
	buf.Reset()
	if _, err := r.SetLevel(ChannelBooks, "info"); err != nil {
		t.Fatalf("设置级别失败: %v", err)
	}
	ch.Info(3, "created book %d", 2)
	ch.Warn(3, "careful")
	ch.Debug(3, "details") // debug仍低于阈值

	out := buf.String()
	if !strings.Contains(out, "[INFO]") || !strings.Contains(out, "[WARN]") {
		t.Errorf("info/warn事件应输出，实际: %q", out)
	}
	if strings.Contains(out, "[DEBUG]") {
		t.Errorf("debug事件不应输出，实际: %q", out)
	}
}

// TestChannelCarriesSeq 测试日志事件携带关联ID
func TestChannelCarriesSeq(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegistry(WithOutput(&buf))

	r.Channel(ChannelRequest).Info(42, "GET /books")

	if !strings.Contains(buf.String(), "#42") {
		t.Errorf("日志应携带关联ID #42，实际: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "[request-logger]") {
		t.Errorf("日志应携带通道名，实际: %q", buf.String())
	}
}

// TestSequencer 测试关联ID严格递增
func TestSequencer(t *testing.T) {
	s := NewSequencer()

	if got := s.Next(); got != 1 {
		t.Errorf("第一个关联ID期望1，实际%d", got)
	}
	if got := s.Next(); got != 2 {
		t.Errorf("第二个关联ID期望2，实际%d", got)
	}
	if got := s.Current(); got != 2 {
		t.Errorf("Current期望2，实际%d", got)
	}
}
