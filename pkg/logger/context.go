package logger

import "context"

// seqKey context中关联ID的私有键类型
type seqKey struct{}

// WithSeq 把关联ID注入context
// 由请求中间件在处理开始时调用,后续各层通过SeqFrom取出用于日志串联
func WithSeq(ctx context.Context, seq uint64) context.Context {
	return context.WithValue(ctx, seqKey{}, seq)
}

// SeqFrom 从context取出关联ID(未注入时返回0)
func SeqFrom(ctx context.Context) uint64 {
	if seq, ok := ctx.Value(seqKey{}).(uint64); ok {
		return seq
	}
	return 0
}
