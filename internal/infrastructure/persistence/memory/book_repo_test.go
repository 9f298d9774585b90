package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

func newBook(title string) *book.Book {
	return book.NewBook(title, "某作者", 2000, 30, []book.Genre{book.GenreNovel})
}

// TestCreateAssignsMonotonicIDs 测试ID严格递增且删除后不复用
func TestCreateAssignsMonotonicIDs(t *testing.T) {
	repo := NewBookRepository()
	ctx := context.Background()

	first := newBook("第一本")
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	if first.ID != 1 {
		t.Errorf("第一本ID期望1，实际%d", first.ID)
	}

	// 删除后再创建,ID继续递增
	if err := repo.Delete(ctx, first.ID); err != nil {
		t.Fatalf("删除失败: %v", err)
	}

	second := newBook("第二本")
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	if second.ID != 2 {
		t.Errorf("删除后新ID期望2（不复用1），实际%d", second.ID)
	}
}

// TestCreateRejectsDuplicateTitle 测试Create内的原子书名唯一检查
func TestCreateRejectsDuplicateTitle(t *testing.T) {
	repo := NewBookRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, newBook("Dune")); err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	// 同名(仅大小写不同)直接入库,不经过领域服务的预检查
	if err := repo.Create(ctx, newBook("dUNE")); !errors.Is(err, book.ErrDuplicateTitle) {
		t.Errorf("同名入库期望ErrDuplicateTitle，实际%v", err)
	}

	count, _ := repo.Count(ctx)
	if count != 1 {
		t.Errorf("同名入库失败后数量期望1，实际%d", count)
	}
}

// TestConcurrentCreateSameTitle 测试并发创建同名图书只有一个成功
func TestConcurrentCreateSameTitle(t *testing.T) {
	repo := NewBookRepository()
	ctx := context.Background()

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Create(ctx, newBook("基地"))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else if !errors.Is(err, book.ErrDuplicateTitle) {
			t.Errorf("并发创建期望ErrDuplicateTitle，实际%v", err)
		}
	}
	if succeeded != 1 {
		t.Errorf("并发创建同名图书期望恰好1个成功，实际%d", succeeded)
	}

	count, _ := repo.Count(ctx)
	if count != 1 {
		t.Errorf("并发创建后在库数量期望1，实际%d", count)
	}
}

// TestFindByTitleCaseInsensitive 测试书名查找不区分大小写
func TestFindByTitleCaseInsensitive(t *testing.T) {
	repo := NewBookRepository()
	ctx := context.Background()

	created := newBook("Dune")
	if err := repo.Create(ctx, created); err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	found, err := repo.FindByTitle(ctx, "dUNE")
	if err != nil {
		t.Fatalf("查找失败: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("期望找到ID%d，实际%d", created.ID, found.ID)
	}

	if _, err := repo.FindByTitle(ctx, "不存在的书"); !errors.Is(err, book.ErrBookNotFound) {
		t.Errorf("查找不存在的书名期望ErrBookNotFound，实际%v", err)
	}
}

// TestListKeepsInsertionOrder 测试List按插入顺序返回
func TestListKeepsInsertionOrder(t *testing.T) {
	repo := NewBookRepository()
	ctx := context.Background()

	titles := []string{"丙", "甲", "乙"}
	for _, title := range titles {
		if err := repo.Create(ctx, newBook(title)); err != nil {
			t.Fatalf("创建失败: %v", err)
		}
	}

	books, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List失败: %v", err)
	}
	if len(books) != len(titles) {
		t.Fatalf("期望%d本，实际%d本", len(titles), len(books))
	}
	for i, title := range titles {
		if books[i].Title != title {
			t.Errorf("位置%d期望%q，实际%q", i, title, books[i].Title)
		}
	}
}

// TestReadsReturnCopies 测试查询返回拷贝,外部修改不影响存储
func TestReadsReturnCopies(t *testing.T) {
	repo := NewBookRepository()
	ctx := context.Background()

	created := newBook("原价三十")
	if err := repo.Create(ctx, created); err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	found, _ := repo.FindByID(ctx, created.ID)
	found.Price = 999 // 修改拷贝

	again, _ := repo.FindByID(ctx, created.ID)
	if again.Price != 30 {
		t.Errorf("存储内价格不应被外部修改，期望30，实际%v", again.Price)
	}
}

// TestDeleteAndCount 测试删除与计数
func TestDeleteAndCount(t *testing.T) {
	repo := NewBookRepository()
	ctx := context.Background()

	b := newBook("唯一一本")
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	if err := repo.Delete(ctx, b.ID); err != nil {
		t.Fatalf("删除失败: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("计数失败: %v", err)
	}
	if count != 0 {
		t.Errorf("删除后数量期望0，实际%d", count)
	}

	if _, err := repo.FindByID(ctx, b.ID); !errors.Is(err, book.ErrBookNotFound) {
		t.Errorf("删除后查询期望ErrBookNotFound，实际%v", err)
	}
	if err := repo.Delete(ctx, b.ID); !errors.Is(err, book.ErrBookNotFound) {
		t.Errorf("重复删除期望ErrBookNotFound，实际%v", err)
	}
}
