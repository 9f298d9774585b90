package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookcatalog/pkg/logger"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// LoggerHandler 日志级别管理HTTP处理器
// 设计说明:
// 管理接口是注册表get/set操作的薄封装,成功时返回大写级别名的纯文本,
// 方便运维脚本直接读取(不走统一JSON响应)
type LoggerHandler struct {
	registry *logger.Registry
}

// NewLoggerHandler 创建日志级别处理器
func NewLoggerHandler(registry *logger.Registry) *LoggerHandler {
	return &LoggerHandler{registry: registry}
}

// GetLevel 查询通道当前阈值
// @Summary      查询日志通道阈值
// @Tags         日志管理
// @Produce      plain
// @Param        channel path string true "通道名(request-logger | books-logger)"
// @Success      200 {string} string "大写级别名,如INFO"
// @Failure      404 {object} response.Response "通道不存在"
// @Router       /logger/{channel}/level [get]
func (h *LoggerHandler) GetLevel(c *gin.Context) {
	level, err := h.registry.GetLevel(c.Param("channel"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.String(http.StatusOK, strings.ToUpper(level.String()))
}

// SetLevel 调整通道阈值
// @Summary      调整日志通道阈值
// @Tags         日志管理
// @Produce      plain
// @Param        channel path string true "通道名(request-logger | books-logger)"
// @Param        logger-level query string true "级别名(不区分大小写)"
// @Success      200 {string} string "大写的新级别名"
// @Failure      400 {object} response.Response "未知的级别名"
// @Failure      404 {object} response.Response "通道不存在"
// @Router       /logger/{channel}/level [put]
func (h *LoggerHandler) SetLevel(c *gin.Context) {
	level, err := h.registry.SetLevel(c.Param("channel"), c.Query("logger-level"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.String(http.StatusOK, strings.ToUpper(level.String()))
}
