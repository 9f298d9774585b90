package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/logger"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
)

// queryResultLabel 根据错误类型映射CatalogQueriesTotal的result标签
func queryResultLabel(err error) string {
	if apperrors.HasCode(err, apperrors.ErrCodeInvalidGenre) {
		return "invalid_genre"
	}
	return "error"
}

// ListBooksUseCase 图书筛选列表用例
// 设计说明:
// 1. 条件由查询引擎校验与解析(未知分类报错,非法数值边界按未提供处理)
// 2. 结果按书名排序(不区分大小写)并投影为公开视图
type ListBooksUseCase struct {
	bookService book.Service
	log         *logger.Channel
}

// NewListBooksUseCase 创建列表用例
func NewListBooksUseCase(bookService book.Service, registry *logger.Registry) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
		log:         registry.Channel(logger.ChannelBooks),
	}
}

// Execute 按条件筛选并返回排好序的公开视图列表
func (uc *ListBooksUseCase) Execute(ctx context.Context, criteria book.Criteria) ([]*BookView, error) {
	seq := logger.SeqFrom(ctx)

	books, err := uc.bookService.FilterBooks(ctx, criteria)
	if err != nil {
		uc.log.Warn(seq, "筛选图书失败: %v", err)
		metrics.CatalogQueriesTotal.WithLabelValues(queryResultLabel(err)).Inc()
		return nil, err
	}

	uc.log.Debug(seq, "筛选图书: 命中%d本", len(books))
	metrics.CatalogQueriesTotal.WithLabelValues("success").Inc()

	return NewBookViews(books), nil
}
