package book

import (
	"context"
	"errors"
	"strings"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装跨实体的业务逻辑和业务规则校验
// 2. 不依赖具体的Repository实现(依赖倒置)
// 3. 所有写操作全有或全无:第一个不满足的前置条件立即返回,不产生部分修改
type Service interface {
	// CreateBook 创建图书(上架)
	// 业务规则(校验顺序固定,兼容既有客户端):
	// 1. 书名不能与在库图书重复(不区分大小写)
	// 2. 出版年份必须在[1940, 2100]内
	// 3. 价格必须>0
	CreateBook(ctx context.Context, title, author string, year int, price float64, genres []Genre) (*Book, error)

	// GetBookByID 根据ID获取图书详情
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// UpdateBookPrice 更新图书价格,返回修改前的价格
	// 业务规则:图书必须存在,且新价格必须>0
	UpdateBookPrice(ctx context.Context, id uint, newPrice float64) (float64, error)

	// DeleteBook 删除图书,返回删除后的在库数量
	// 被删图书的ID不会再分配给新图书
	DeleteBook(ctx context.Context, id uint) (int, error)

	// ListBooks 按插入顺序返回全部在库图书
	ListBooks(ctx context.Context) ([]*Book, error)

	// CountBooks 返回在库图书数量
	CountBooks(ctx context.Context) (int, error)

	// FilterBooks 按条件筛选图书,按书名排序(不区分大小写)
	FilterBooks(ctx context.Context, criteria Criteria) ([]*Book, error)

	// CountFilteredBooks 按条件统计图书数量
	CountFilteredBooks(ctx context.Context, criteria Criteria) (int, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, title, author string, year int, price float64, genres []Genre) (*Book, error) {
	// 0. 基础参数校验
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if len(genres) == 0 {
		return nil, ErrEmptyGenres
	}

	// 1. 书名重复检查(不区分大小写,只看在库记录)
	// 仓储Create内会在同一临界区再次检查,并发同名创建只有一个成功
	existing, err := s.repo.FindByTitle(ctx, title)
	if err != nil && !errors.Is(err, ErrBookNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateTitle
	}

	// 2. 出版年份范围校验(边界包含)
	if year < MinYear || year > MaxYear {
		return nil, ErrInvalidYear
	}

	// 3. 价格校验
	if price <= 0 {
		return nil, ErrInvalidPrice
	}

	// 4. 创建实体并入库(仓储分配递增ID)
	book := NewBook(title, author, year, price, genres)
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateBookPrice 更新图书价格
func (s *service) UpdateBookPrice(ctx context.Context, id uint, newPrice float64) (float64, error) {
	// 1. 查询图书(不存在优先于价格校验)
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}

	// 2. 领域行为校验并更新价格
	oldPrice, err := book.UpdatePrice(newPrice)
	if err != nil {
		return 0, err
	}

	// 3. 持久化
	if err := s.repo.Update(ctx, book); err != nil {
		return 0, err
	}

	return oldPrice, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) (int, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return 0, err
	}
	return s.repo.Count(ctx)
}

// ListBooks 返回全部在库图书
func (s *service) ListBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.List(ctx)
}

// CountBooks 返回在库图书数量
func (s *service) CountBooks(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// FilterBooks 按条件筛选图书
func (s *service) FilterBooks(ctx context.Context, criteria Criteria) ([]*Book, error) {
	query, err := BuildQuery(criteria)
	if err != nil {
		return nil, err
	}

	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := query.Apply(books)
	SortByTitle(matched)
	return matched, nil
}

// CountFilteredBooks 按条件统计图书数量
func (s *service) CountFilteredBooks(ctx context.Context, criteria Criteria) (int, error) {
	query, err := BuildQuery(criteria)
	if err != nil {
		return 0, err
	}

	books, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	return len(query.Apply(books)), nil
}
