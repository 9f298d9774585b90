package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	domainbook "github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	createBookUseCase  *appbook.CreateBookUseCase
	getBookUseCase     *appbook.GetBookUseCase
	updatePriceUseCase *appbook.UpdatePriceUseCase
	deleteBookUseCase  *appbook.DeleteBookUseCase
	listBooksUseCase   *appbook.ListBooksUseCase
	countBooksUseCase  *appbook.CountBooksUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	createBookUseCase *appbook.CreateBookUseCase,
	getBookUseCase *appbook.GetBookUseCase,
	updatePriceUseCase *appbook.UpdatePriceUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
	listBooksUseCase *appbook.ListBooksUseCase,
	countBooksUseCase *appbook.CountBooksUseCase,
) *BookHandler {
	return &BookHandler{
		createBookUseCase:  createBookUseCase,
		getBookUseCase:     getBookUseCase,
		updatePriceUseCase: updatePriceUseCase,
		deleteBookUseCase:  deleteBookUseCase,
		listBooksUseCase:   listBooksUseCase,
		countBooksUseCase:  countBooksUseCase,
	}
}

// CreateBook 创建图书
// @Summary      创建图书
// @Description  新增一条图书记录,返回新分配的ID
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      200 {object} response.Response "result为新图书ID"
// @Failure      400 {object} response.Response "参数/分类错误"
// @Failure      409 {object} response.Response "书名重复/年份/价格不合法"
// @Router       /api/v1/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数格式错误: "+err.Error())
		return
	}

	id, err := h.createBookUseCase.Execute(c.Request.Context(), appbook.CreateBookRequest{
		Title:  req.Title,
		Author: req.Author,
		Year:   req.Year,
		Price:  req.Price,
		Genres: req.Genres,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, id)
}

// GetBook 查询图书详情
// @Summary      查询图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response "result为图书视图"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.getBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, view)
}

// UpdatePrice 修改图书价格
// @Summary      修改图书价格
// @Description  替换价格并返回修改前的价格
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        request body dto.UpdatePriceRequest true "新价格"
// @Success      200 {object} response.Response "result为旧价格"
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      409 {object} response.Response "价格不合法"
// @Router       /api/v1/books/{id}/price [put]
func (h *BookHandler) UpdatePrice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数格式错误: "+err.Error())
		return
	}

	oldPrice, err := h.updatePriceUseCase.Execute(c.Request.Context(), id, req.Price)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, oldPrice)
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Description  删除后返回剩余在库数量;被删ID不会复用
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response "result为剩余数量"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	remaining, err := h.deleteBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, remaining)
}

// ListBooks 筛选图书列表
// @Summary      筛选图书列表
// @Description  按分类/作者/价格区间/年份区间筛选,结果按书名排序
// @Tags         图书
// @Produce      json
// @Param        genres query string false "逗号分隔的分类标签"
// @Param        author query string false "作者(不区分大小写)"
// @Param        price-bigger-than query number false "价格下限(含)"
// @Param        price-less-than query number false "价格上限(含)"
// @Param        year-bigger-than query int false "年份下限(含)"
// @Param        year-less-than query int false "年份上限(含)"
// @Success      200 {object} response.Response "result为图书视图列表"
// @Failure      400 {object} response.Response "未知的分类标签"
// @Router       /api/v1/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	views, err := h.listBooksUseCase.Execute(c.Request.Context(), criteriaFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, views)
}

// CountBooks 筛选图书计数
// @Summary      筛选图书计数
// @Tags         图书
// @Produce      json
// @Param        genres query string false "逗号分隔的分类标签"
// @Param        author query string false "作者(不区分大小写)"
// @Success      200 {object} response.Response "result为命中数量"
// @Failure      400 {object} response.Response "未知的分类标签"
// @Router       /api/v1/books/count [get]
func (h *BookHandler) CountBooks(c *gin.Context) {
	count, err := h.countBooksUseCase.Execute(c.Request.Context(), criteriaFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, count)
}

// criteriaFrom 从query参数提取筛选条件(原样传给查询引擎解析)
func criteriaFrom(c *gin.Context) domainbook.Criteria {
	var req dto.FilterBooksRequest
	_ = c.ShouldBindQuery(&req)

	return domainbook.Criteria{
		Genres:          req.Genres,
		Author:          req.Author,
		PriceBiggerThan: req.PriceBiggerThan,
		PriceLessThan:   req.PriceLessThan,
		YearBiggerThan:  req.YearBiggerThan,
		YearLessThan:    req.YearLessThan,
	}
}

// parseID 解析路径中的图书ID,非法时直接响应404
// 既有路由把ID当作不透明标识,非数字的ID等同于不存在的图书
func parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.ErrorWithCode(c, 40400, "图书不存在")
		return 0, false
	}
	return uint(id), true
}
