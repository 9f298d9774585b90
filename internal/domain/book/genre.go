package book

import (
	"strings"
)

// Genre 图书分类标签
// 设计说明:
// 封闭枚举,无生命周期,只用于创建和查询时的校验
type Genre string

const (
	GenreSciFi        Genre = "SCI_FI"       // 科幻
	GenreNovel        Genre = "NOVEL"        // 小说
	GenreHistory      Genre = "HISTORY"      // 历史
	GenreManga        Genre = "MANGA"        // 漫画
	GenreRomance      Genre = "ROMANCE"      // 言情
	GenreProfessional Genre = "PROFESSIONAL" // 专业书籍
)

// AllGenres 全部合法分类(固定集合)
var AllGenres = []Genre{
	GenreSciFi,
	GenreNovel,
	GenreHistory,
	GenreManga,
	GenreRomance,
	GenreProfessional,
}

// ParseGenre 校验单个分类标签
// 无法识别的标签返回ErrInvalidGenre
func ParseGenre(tag string) (Genre, error) {
	candidate := Genre(tag)
	for _, g := range AllGenres {
		if g == candidate {
			return g, nil
		}
	}
	return "", invalidGenreError(tag)
}

// ParseGenres 解析逗号分隔的分类标签列表
// 任何一个标签无法识别都返回ErrInvalidGenre;空串返回空列表
func ParseGenres(csv string) ([]Genre, error) {
	if strings.TrimSpace(csv) == "" {
		return nil, nil
	}

	parts := strings.Split(csv, ",")
	genres := make([]Genre, 0, len(parts))
	for _, part := range parts {
		genre, err := ParseGenre(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}
	return genres, nil
}
