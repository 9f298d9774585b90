package dto

// CreateBookRequest HTTP创建图书请求
// binding tag说明:
// - required: 必填字段
// - 年份/价格/分类的业务校验由领域层负责,这里只做结构校验
type CreateBookRequest struct {
	Title  string  `json:"title" binding:"required" example:"沙丘"`
	Author string  `json:"author" example:"弗兰克·赫伯特"`
	Year   int     `json:"year" binding:"required" example:"1965"`
	Price  float64 `json:"price" binding:"required" example:"59.9"`
	Genres string  `json:"genres" binding:"required" example:"SCI_FI,NOVEL"`
}

// UpdatePriceRequest HTTP改价请求
type UpdatePriceRequest struct {
	Price float64 `json:"price" binding:"required" example:"49.9"`
}

// FilterBooksRequest HTTP筛选请求(query参数)
// 所有条件可选;数值边界无法解析时按未提供处理(兼容既有客户端的宽松行为)
type FilterBooksRequest struct {
	Genres          string `form:"genres" example:"SCI_FI,NOVEL"`
	Author          string `form:"author" example:"弗兰克·赫伯特"`
	PriceBiggerThan string `form:"price-bigger-than" example:"20"`
	PriceLessThan   string `form:"price-less-than" example:"100"`
	YearBiggerThan  string `form:"year-bigger-than" example:"1960"`
	YearLessThan    string `form:"year-less-than" example:"2020"`
}
