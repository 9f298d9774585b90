package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/pkg/logger"
)

// GetBookUseCase 图书详情查询用例
type GetBookUseCase struct {
	bookService book.Service
	log         *logger.Channel
}

// NewGetBookUseCase 创建详情查询用例
func NewGetBookUseCase(bookService book.Service, registry *logger.Registry) *GetBookUseCase {
	return &GetBookUseCase{
		bookService: bookService,
		log:         registry.Channel(logger.ChannelBooks),
	}
}

// Execute 根据ID查询图书,不存在返回ErrBookNotFound
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookView, error) {
	seq := logger.SeqFrom(ctx)

	found, err := uc.bookService.GetBookByID(ctx, id)
	if err != nil {
		uc.log.Debug(seq, "查询图书id=%d失败: %v", id, err)
		return nil, err
	}

	uc.log.Debug(seq, "查询图书成功: id=%d", id)
	return NewBookView(found), nil
}
