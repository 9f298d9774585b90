package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/pkg/logger"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
)

// DeleteBookUseCase 图书删除用例
type DeleteBookUseCase struct {
	bookService book.Service
	log         *logger.Channel
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(bookService book.Service, registry *logger.Registry) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
		log:         registry.Channel(logger.ChannelBooks),
	}
}

// Execute 执行删除,成功时返回删除后的在库数量
// 被删图书的ID不会再分配给新图书
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) (int, error) {
	seq := logger.SeqFrom(ctx)

	remaining, err := uc.bookService.DeleteBook(ctx, id)
	if err != nil {
		uc.log.Warn(seq, "删除图书id=%d失败: %v", id, err)
		return 0, err
	}

	uc.log.Info(seq, "删除图书成功: id=%d 剩余%d本", id, remaining)
	metrics.BooksDeletedTotal.Inc()
	metrics.BooksInCatalog.Dec()

	return remaining, nil
}
