package book

import (
	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// BookView 图书公开视图DTO
// 只包含对外暴露的字段,不带存储内部的时间戳等元数据
type BookView struct {
	ID     uint     `json:"id"`
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Year   int      `json:"year"`
	Price  float64  `json:"price"`
	Genres []string `json:"genres"`
}

// NewBookView 由领域实体构建公开视图
func NewBookView(b *book.Book) *BookView {
	genres := make([]string, len(b.Genres))
	for i, g := range b.Genres {
		genres[i] = string(g)
	}
	return &BookView{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		Year:   b.Year,
		Price:  b.Price,
		Genres: genres,
	}
}

// NewBookViews 批量构建公开视图(保持输入顺序)
func NewBookViews(books []*book.Book) []*BookView {
	views := make([]*BookView, len(books))
	for i, b := range books {
		views[i] = NewBookView(b)
	}
	return views
}
