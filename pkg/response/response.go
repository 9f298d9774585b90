package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// Response 统一响应结构
// 设计说明：
// 1. 成功时只返回result字段,失败时只返回errorMessage字段
// 2. errorMessage固定为"Error: <描述>"格式,兼容既有客户端
// 3. 业务错误码不直接暴露给客户端,由本包映射为HTTP状态码
type Response struct {
	Result       interface{} `json:"result,omitempty"`
	ErrorMessage string      `json:"errorMessage,omitempty"`
}

// Success 成功响应（HTTP 200 + {result}）
func Success(c *gin.Context, result interface{}) {
	c.JSON(http.StatusOK, Response{Result: result})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	book, err := createBookUseCase.Execute(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	c.JSON(statusOf(appErr.Code), Response{
		ErrorMessage: "Error: " + appErr.Message,
	})
}

// ErrorWithCode 自定义业务错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	c.JSON(statusOf(code), Response{
		ErrorMessage: "Error: " + message,
	})
}

// statusOf 业务错误码到HTTP状态码的映射
// 约定:
// - 创建侧校验失败(重复书名/年份/价格)统一返回409
// - 资源不存在返回404
// - 分类/级别/参数类错误返回400
func statusOf(code int) int {
	switch code {
	case apperrors.ErrCodeDuplicateTitle,
		apperrors.ErrCodeInvalidYear,
		apperrors.ErrCodeInvalidPrice:
		return http.StatusConflict
	case apperrors.ErrCodeBookNotFound,
		apperrors.ErrCodeChannelNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeInvalidGenre,
		apperrors.ErrCodeInvalidSeverity,
		apperrors.ErrCodeInvalidParams,
		apperrors.ErrCodeBindError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
