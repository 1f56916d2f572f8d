package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tnote-app/tnote_service/core"
	"github.com/tnote-app/tnote_service/response"
)

// ErrorHandlingMiddleware 捕获后续 handler 的 panic，记录堆栈并返回 500。
func ErrorHandlingMiddleware(logger *core.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("请求处理发生 panic",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.Stack("stack"),
				)
				response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "服务内部错误")
				c.Abort()
			}
		}()
		c.Next()
	}
}
