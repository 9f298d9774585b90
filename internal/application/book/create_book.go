package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/pkg/logger"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
)

// CreateBookUseCase 图书创建用例
// 设计说明:
// 1. 应用层负责用例编排:分类标签解析、调用领域服务、记录业务日志与指标
// 2. 输入输出使用DTO,与HTTP层解耦
// 3. 业务规则校验(书名重复、年份、价格)由领域服务负责
type CreateBookUseCase struct {
	bookService book.Service
	log         *logger.Channel
}

// NewCreateBookUseCase 创建图书创建用例
func NewCreateBookUseCase(bookService book.Service, registry *logger.Registry) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService: bookService,
		log:         registry.Channel(logger.ChannelBooks),
	}
}

// CreateBookRequest 创建请求DTO
type CreateBookRequest struct {
	Title  string  // 书名
	Author string  // 作者
	Year   int     // 出版年份
	Price  float64 // 价格
	Genres string  // 逗号分隔的分类标签
}

// Execute 执行创建用例,成功时返回新分配的图书ID
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (uint, error) {
	seq := logger.SeqFrom(ctx)

	// 1. 分类标签校验(任何未知标签立即失败)
	genres, err := book.ParseGenres(req.Genres)
	if err != nil {
		uc.log.Warn(seq, "创建图书被拒绝: %v", err)
		return 0, err
	}

	// 2. 调用领域服务(校验顺序:书名重复→年份→价格)
	created, err := uc.bookService.CreateBook(ctx, req.Title, req.Author, req.Year, req.Price, genres)
	if err != nil {
		uc.log.Warn(seq, "创建图书%q失败: %v", req.Title, err)
		return 0, err
	}

	// 3. 记录业务日志与指标
	uc.log.Info(seq, "创建图书成功: id=%d title=%q", created.ID, created.Title)
	metrics.BooksCreatedTotal.Inc()
	metrics.BooksInCatalog.Inc()

	return created.ID, nil
}
