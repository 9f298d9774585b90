package book

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrDuplicateTitle 书名已存在(不区分大小写)
	ErrDuplicateTitle = apperrors.New(apperrors.ErrCodeDuplicateTitle, "书名已存在")

	// ErrInvalidYear 出版年份超出范围
	ErrInvalidYear = apperrors.New(apperrors.ErrCodeInvalidYear, "出版年份必须在1940到2100之间")

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidPrice, "价格必须大于0")

	// ErrEmptyTitle 书名不能为空
	ErrEmptyTitle = apperrors.New(apperrors.ErrCodeInvalidParams, "书名不能为空")

	// ErrEmptyGenres 分类集合不能为空
	ErrEmptyGenres = apperrors.New(apperrors.ErrCodeInvalidParams, "至少需要一个图书分类")
)

// invalidGenreError 生成携带具体标签的分类错误
func invalidGenreError(tag string) *apperrors.AppError {
	return apperrors.New(apperrors.ErrCodeInvalidGenre, "未知的图书分类: "+tag)
}
