package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/pkg/logger"
)

// UpdatePriceUseCase 图书改价用例
type UpdatePriceUseCase struct {
	bookService book.Service
	log         *logger.Channel
}

// NewUpdatePriceUseCase 创建改价用例
func NewUpdatePriceUseCase(bookService book.Service, registry *logger.Registry) *UpdatePriceUseCase {
	return &UpdatePriceUseCase{
		bookService: bookService,
		log:         registry.Channel(logger.ChannelBooks),
	}
}

// Execute 执行改价,成功时返回修改前的价格
func (uc *UpdatePriceUseCase) Execute(ctx context.Context, id uint, newPrice float64) (float64, error) {
	seq := logger.SeqFrom(ctx)

	oldPrice, err := uc.bookService.UpdateBookPrice(ctx, id, newPrice)
	if err != nil {
		uc.log.Warn(seq, "改价失败: id=%d price=%v err=%v", id, newPrice, err)
		return 0, err
	}

	uc.log.Info(seq, "改价成功: id=%d %v→%v", id, oldPrice, newPrice)
	return oldPrice, nil
}
