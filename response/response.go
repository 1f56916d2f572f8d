// Package response 定义统一的 HTTP 响应信封。
// 所有接口返回 {code, message, data} 三段结构，code 为业务错误码而非 HTTP 状态码。
package response

import "github.com/gin-gonic/gin"

// 业务错误码
const (
	CodeSuccess = 0

	ErrCodeClientInvalidInput = 40001 // 参数校验失败
	ErrCodeClientUnauthorized = 40101 // 未携带有效的用户身份
	ErrCodeClientForbidden    = 40301 // 没有操作权限
	ErrCodeClientNotFound     = 40401 // 目标资源不存在
	ErrCodeServerInternal     = 50001 // 服务内部错误
	ErrCodeServerUnavailable  = 50301 // 依赖的存储/下游不可用
)

// APIResponse 统一响应结构
type APIResponse[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

// RespondSuccess 写出成功响应，HTTP 状态码固定 200。
func RespondSuccess[T any](c *gin.Context, data T, message string) {
	c.JSON(200, APIResponse[T]{
		Code:    CodeSuccess,
		Message: message,
		Data:    data,
	})
}

// RespondError 写出失败响应。
// - httpStatus: HTTP 状态码；code: 业务错误码。
func RespondError(c *gin.Context, httpStatus int, code int, message string) {
	c.JSON(httpStatus, APIResponse[any]{
		Code:    code,
		Message: message,
	})
}
