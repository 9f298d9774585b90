package book

import (
	"errors"
	"testing"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

func sampleBooks() []*Book {
	return []*Book{
		{ID: 1, Title: "basin", Author: "Frank", Year: 1965, Price: 42, Genres: []Genre{GenreSciFi}},
		{ID: 2, Title: "Aether", Author: "frank", Year: 1990, Price: 15, Genres: []Genre{GenreNovel, GenreRomance}},
		{ID: 3, Title: "Chronicle", Author: "Ann", Year: 2015, Price: 99.5, Genres: []Genre{GenreHistory}},
		{ID: 4, Title: "atlas", Author: "Bob", Year: 1940, Price: 30, Genres: []Genre{GenreProfessional}},
	}
}

func titles(books []*Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}

// TestBuildQueryInvalidGenre 测试未知分类标签报错
func TestBuildQueryInvalidGenre(t *testing.T) {
	_, err := BuildQuery(Criteria{Genres: "SCI_FI,NOT_REAL"})
	if !apperrors.HasCode(err, apperrors.ErrCodeInvalidGenre) {
		t.Errorf("期望ErrCodeInvalidGenre，实际%v", err)
	}

	// 空条件不报错
	if _, err := BuildQuery(Criteria{}); err != nil {
		t.Errorf("空条件不应报错，实际%v", err)
	}
}

// TestQueryGenreIntersection 测试分类条件为集合交集(内部逻辑或)
func TestQueryGenreIntersection(t *testing.T) {
	q, err := BuildQuery(Criteria{Genres: "SCI_FI,NOVEL"})
	if err != nil {
		t.Fatalf("构建查询失败: %v", err)
	}

	matched := q.Apply(sampleBooks())
	if len(matched) != 2 {
		t.Fatalf("期望命中2本，实际%d本: %v", len(matched), titles(matched))
	}
	for _, b := range matched {
		if !b.HasAnyGenre([]Genre{GenreSciFi, GenreNovel}) {
			t.Errorf("命中结果%q分类不含SCI_FI/NOVEL", b.Title)
		}
	}
}

// TestQueryAuthorCaseInsensitive 测试作者条件不区分大小写精确匹配
func TestQueryAuthorCaseInsensitive(t *testing.T) {
	q, err := BuildQuery(Criteria{Author: "FRANK"})
	if err != nil {
		t.Fatalf("构建查询失败: %v", err)
	}

	matched := q.Apply(sampleBooks())
	if len(matched) != 2 {
		t.Errorf("期望命中2本，实际%d本", len(matched))
	}
}

// TestQueryNumericBoundsInclusive 测试数值边界包含端点
func TestQueryNumericBoundsInclusive(t *testing.T) {
	q, err := BuildQuery(Criteria{PriceBiggerThan: "30", PriceLessThan: "42"})
	if err != nil {
		t.Fatalf("构建查询失败: %v", err)
	}

	matched := q.Apply(sampleBooks())
	if len(matched) != 2 {
		t.Fatalf("期望命中2本(30和42)，实际%d本: %v", len(matched), titles(matched))
	}

	q, _ = BuildQuery(Criteria{YearBiggerThan: "1940", YearLessThan: "1965"})
	matched = q.Apply(sampleBooks())
	if len(matched) != 2 {
		t.Errorf("年份[1940,1965]期望命中2本，实际%d本", len(matched))
	}
}

// TestQueryMalformedBoundsIgnored 测试无法解析的数值边界按未提供处理
// 注意:这是有意保留的宽松行为,改动前先看DESIGN.md的未决问题记录
func TestQueryMalformedBoundsIgnored(t *testing.T) {
	q, err := BuildQuery(Criteria{PriceBiggerThan: "abc", YearLessThan: "209x"})
	if err != nil {
		t.Fatalf("非法数值边界不应报错，实际%v", err)
	}

	matched := q.Apply(sampleBooks())
	if len(matched) != len(sampleBooks()) {
		t.Errorf("非法边界应等同于未提供，期望命中%d本，实际%d本", len(sampleBooks()), len(matched))
	}
}

// TestQueryCriteriaCombined 测试多条件逻辑与
func TestQueryCriteriaCombined(t *testing.T) {
	q, err := BuildQuery(Criteria{Genres: "SCI_FI,NOVEL", PriceBiggerThan: "20"})
	if err != nil {
		t.Fatalf("构建查询失败: %v", err)
	}

	matched := q.Apply(sampleBooks())
	if len(matched) != 1 || matched[0].Title != "basin" {
		t.Errorf("期望只命中basin，实际%v", titles(matched))
	}
}

// TestSortByTitle 测试书名排序不区分大小写
func TestSortByTitle(t *testing.T) {
	books := sampleBooks()
	SortByTitle(books)

	want := []string{"Aether", "atlas", "basin", "Chronicle"}
	got := titles(books)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("排序结果期望%v，实际%v", want, got)
		}
	}
}

// TestSortByTitleDiacritics 测试带变音符号的书名按基础字母参与排序
func TestSortByTitleDiacritics(t *testing.T) {
	books := []*Book{
		{Title: "Zebra"},
		{Title: "éclair"},
		{Title: "Ebony"},
		{Title: "atlas"},
	}
	SortByTitle(books)

	// é按字母e参与比较,排在Z之前;按字节序é会排在Zebra之后
	want := []string{"atlas", "Ebony", "éclair", "Zebra"}
	got := titles(books)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("排序结果期望%v，实际%v", want, got)
		}
	}
}

// TestParseGenres 测试分类列表解析
func TestParseGenres(t *testing.T) {
	genres, err := ParseGenres("MANGA, HISTORY")
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if len(genres) != 2 || genres[0] != GenreManga || genres[1] != GenreHistory {
		t.Errorf("解析结果错误: %v", genres)
	}

	if _, err := ParseGenres("MANGA,INVALID"); err == nil {
		t.Error("含未知标签的列表应报错")
	}

	var appErr *apperrors.AppError
	_, err = ParseGenres("INVALID")
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrCodeInvalidGenre {
		t.Errorf("期望AppError(ErrCodeInvalidGenre)，实际%v", err)
	}
}
