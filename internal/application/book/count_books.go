package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/pkg/logger"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
)

// CountBooksUseCase 图书筛选计数用例
// 与列表用例共享同一套查询条件语义,只返回命中数量
type CountBooksUseCase struct {
	bookService book.Service
	log         *logger.Channel
}

// NewCountBooksUseCase 创建计数用例
func NewCountBooksUseCase(bookService book.Service, registry *logger.Registry) *CountBooksUseCase {
	return &CountBooksUseCase{
		bookService: bookService,
		log:         registry.Channel(logger.ChannelBooks),
	}
}

// Execute 按条件统计命中数量
func (uc *CountBooksUseCase) Execute(ctx context.Context, criteria book.Criteria) (int, error) {
	seq := logger.SeqFrom(ctx)

	count, err := uc.bookService.CountFilteredBooks(ctx, criteria)
	if err != nil {
		uc.log.Warn(seq, "统计图书失败: %v", err)
		metrics.CatalogQueriesTotal.WithLabelValues(queryResultLabel(err)).Inc()
		return 0, err
	}

	uc.log.Debug(seq, "统计图书: 命中%d本", count)
	metrics.CatalogQueriesTotal.WithLabelValues("success").Inc()

	return count, nil
}
