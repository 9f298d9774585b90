package logger

import "sync/atomic"

// Sequencer 请求序号分配器
// 设计说明：
// 1. 每个进入的请求在其他处理之前分配一个严格递增的关联ID
// 2. 关联ID只用于日志串联，对业务无影响
// 3. gin并发处理请求，用atomic保证递增的唯一性
type Sequencer struct {
	counter atomic.Uint64
}

// NewSequencer 创建序号分配器（从1开始分配）
func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// Next 分配下一个关联ID
func (s *Sequencer) Next() uint64 {
	return s.counter.Add(1)
}

// Current 返回最近分配的关联ID（未分配过时为0）
func (s *Sequencer) Current() uint64 {
	return s.counter.Load()
}
