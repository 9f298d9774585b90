// Package memory 提供进程内的易失性存储实现
// 设计说明:
// 1. 全部状态保存在内存中,进程重启后丢失(无持久化)
// 2. gin并发处理请求,写操作用RWMutex串行化,
//    保证ID单调递增与书名唯一这两个不变量
// 3. 查询按值返回拷贝,调用方无法直接修改存储内部状态
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// BookRepository 图书仓储的内存实现
type BookRepository struct {
	mu     sync.RWMutex
	books  []*book.Book // 按插入顺序保存在库图书
	nextID uint         // 下一个待分配ID,只增不减,删除后不复用
}

// NewBookRepository 创建空仓储,ID从1开始分配
func NewBookRepository() *BookRepository {
	return &BookRepository{nextID: 1}
}

// Create 分配ID并按插入顺序入库
// 书名唯一检查与插入在同一临界区内完成,
// 并发创建同名图书时只有一个能成功
func (r *BookRepository) Create(_ context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.books {
		if strings.EqualFold(existing.Title, b.Title) {
			return book.ErrDuplicateTitle
		}
	}

	b.ID = r.nextID
	r.nextID++

	r.books = append(r.books, b.Clone())
	return nil
}

// FindByID 根据ID查找图书
func (r *BookRepository) FindByID(_ context.Context, id uint) (*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.books {
		if b.ID == id {
			return b.Clone(), nil
		}
	}
	return nil, book.ErrBookNotFound
}

// FindByTitle 根据书名查找图书(不区分大小写)
func (r *BookRepository) FindByTitle(_ context.Context, title string) (*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.books {
		if strings.EqualFold(b.Title, title) {
			return b.Clone(), nil
		}
	}
	return nil, book.ErrBookNotFound
}

// Update 按ID整体替换图书信息(保持原有插入位置)
func (r *BookRepository) Update(_ context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.books {
		if existing.ID == b.ID {
			r.books[i] = b.Clone()
			return nil
		}
	}
	return book.ErrBookNotFound
}

// Delete 删除图书,ID不会再分配给新图书
func (r *BookRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.books {
		if b.ID == id {
			r.books = append(r.books[:i], r.books[i+1:]...)
			return nil
		}
	}
	return book.ErrBookNotFound
}

// List 按插入顺序返回全部在库图书的拷贝
func (r *BookRepository) List(_ context.Context) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*book.Book, len(r.books))
	for i, b := range r.books {
		result[i] = b.Clone()
	}
	return result, nil
}

// Count 返回在库图书数量
func (r *BookRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.books), nil
}
