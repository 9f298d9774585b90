package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 当前实现为进程内存储(易失,无持久化);接口保持context签名,
//    便于Mock测试和将来更换实现而不影响domain层
type Repository interface {
	// Create 创建图书并分配ID
	// ID严格递增,删除后不会复用
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书,不存在返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByTitle 根据书名查找图书(不区分大小写),不存在返回ErrBookNotFound
	FindByTitle(ctx context.Context, title string) (*Book, error)

	// Update 按ID整体替换图书信息,不存在返回ErrBookNotFound
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书,不存在返回ErrBookNotFound
	Delete(ctx context.Context, id uint) error

	// List 按插入顺序返回全部在库图书
	List(ctx context.Context) ([]*Book, error)

	// Count 返回在库图书数量
	Count(ctx context.Context) (int, error)
}
