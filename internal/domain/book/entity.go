package book

import (
	"time"
)

// 出版年份的合法范围（边界包含）
const (
	MinYear = 1940
	MaxYear = 2100
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book是图书聚合的根实体,包含图书的核心属性
// 2. ID由仓储在创建时分配,创建后不可变,且删除后不会复用
// 3. Title作为业务唯一标识(不区分大小写,仓储层保证唯一性)
// 4. Genres为封闭枚举集合,创建时校验且不能为空
type Book struct {
	ID        uint
	Title     string  // 书名(不区分大小写唯一)
	Author    string  // 作者
	Year      int     // 出版年份,范围[1940, 2100]
	Price     float64 // 价格,必须>0
	Genres    []Genre // 分类标签集合(非空)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBook 创建新图书(工厂方法)
// 参数说明:
// - title: 书名(需调用方先做重复检查)
// - author: 作者
// - year: 出版年份(需调用方先校验范围)
// - price: 价格,必须>0
// - genres: 分类标签(需调用方先通过ParseGenres校验)
func NewBook(title, author string, year int, price float64, genres []Genre) *Book {
	now := time.Now()
	return &Book{
		Title:     title,
		Author:    author,
		Year:      year,
		Price:     price,
		Genres:    genres,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdatePrice 更新价格(领域行为)
// 业务规则:价格必须>0;成功时返回修改前的价格
func (b *Book) UpdatePrice(newPrice float64) (float64, error) {
	if newPrice <= 0 {
		return 0, ErrInvalidPrice
	}
	oldPrice := b.Price
	b.Price = newPrice
	b.UpdatedAt = time.Now()
	return oldPrice, nil
}

// HasAnyGenre 判断图书分类集合与给定标签列表是否有交集
func (b *Book) HasAnyGenre(genres []Genre) bool {
	for _, want := range genres {
		for _, have := range b.Genres {
			if want == have {
				return true
			}
		}
	}
	return false
}

// Clone 返回实体的深拷贝
// 仓储按值返回拷贝,避免调用方修改到存储内部状态
func (b *Book) Clone() *Book {
	copied := *b
	copied.Genres = append([]Genre(nil), b.Genres...)
	return &copied
}
