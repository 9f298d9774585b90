package book

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Criteria 查询条件(原始请求参数,未经解析)
// 设计说明:
// 1. 所有条件均可选,多个条件之间为逻辑与
// 2. Genres内部为逻辑或:图书分类与请求标签有交集即命中
// 3. 数值边界为原始字符串,无法解析的值按"未提供"处理(沿用既有宽松行为,
//    详见DESIGN.md的未决问题记录,未经确认不要改成校验错误)
type Criteria struct {
	Genres          string // 逗号分隔的分类标签列表
	Author          string // 作者(不区分大小写精确匹配)
	PriceBiggerThan string // 价格下限(含)
	PriceLessThan   string // 价格上限(含)
	YearBiggerThan  string // 年份下限(含)
	YearLessThan    string // 年份上限(含)
}

// Query 编译后的查询(条件已校验/解析完毕)
type Query struct {
	genres   []Genre
	author   string
	priceMin *float64
	priceMax *float64
	yearMin  *int
	yearMax  *int
}

// BuildQuery 把原始条件编译为可执行查询
// 分类标签逐个校验,任何未知标签返回ErrInvalidGenre;
// 数值边界解析失败时该条件按未提供处理,不报错
func BuildQuery(c Criteria) (*Query, error) {
	genres, err := ParseGenres(c.Genres)
	if err != nil {
		return nil, err
	}

	return &Query{
		genres:   genres,
		author:   c.Author,
		priceMin: parseFloatBound(c.PriceBiggerThan),
		priceMax: parseFloatBound(c.PriceLessThan),
		yearMin:  parseIntBound(c.YearBiggerThan),
		yearMax:  parseIntBound(c.YearLessThan),
	}, nil
}

// Matches 判断单本图书是否满足全部条件
func (q *Query) Matches(b *Book) bool {
	if len(q.genres) > 0 && !b.HasAnyGenre(q.genres) {
		return false
	}
	if q.author != "" && !strings.EqualFold(b.Author, q.author) {
		return false
	}
	if q.priceMin != nil && b.Price < *q.priceMin {
		return false
	}
	if q.priceMax != nil && b.Price > *q.priceMax {
		return false
	}
	if q.yearMin != nil && b.Year < *q.yearMin {
		return false
	}
	if q.yearMax != nil && b.Year > *q.yearMax {
		return false
	}
	return true
}

// Apply 返回满足条件的子集(不修改输入)
func (q *Query) Apply(books []*Book) []*Book {
	matched := make([]*Book, 0, len(books))
	for _, b := range books {
		if q.Matches(b) {
			matched = append(matched, b)
		}
	}
	return matched
}

// titleCollator 书名排序使用的排序器
// 不区分大小写且按语言环境规则比较(而非简单字节序)
var titleCollator = collate.New(language.Und, collate.IgnoreCase)

// SortByTitle 按书名原地排序(不区分大小写,语言环境感知)
func SortByTitle(books []*Book) {
	sort.SliceStable(books, func(i, j int) bool {
		return titleCollator.CompareString(books[i].Title, books[j].Title) < 0
	})
}

// parseFloatBound 解析价格边界,解析失败视为未提供
func parseFloatBound(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseIntBound 解析年份边界,解析失败视为未提供
func parseIntBound(raw string) *int {
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
