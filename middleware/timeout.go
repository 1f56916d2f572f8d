package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tnote-app/tnote_service/core"
	"github.com/tnote-app/tnote_service/response"
)

// RequestTimeoutMiddleware 为请求上下文加上超时。
// 超时后存储层的 WithContext 调用会随 ctx 取消而中断；
// 若 handler 已经开始写响应则不再覆盖。
func RequestTimeoutMiddleware(logger *core.ZapLogger, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			logger.Warn("请求处理超时",
				zap.String("path", c.Request.URL.Path),
				zap.Duration("timeout", timeout),
			)
			response.RespondError(c, http.StatusGatewayTimeout, response.ErrCodeServerUnavailable, "请求处理超时")
			c.Abort()
		}
	}
}
