package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// UserIDKey 网关透传的用户 ID 在 gin.Context 中的存放键。
const UserIDKey = "tnote_user_id"

// UserIDHeader 网关透传用户 ID 使用的请求头。
const UserIDHeader = "X-User-ID"

// UserContextMiddleware 把网关透传的用户 ID 解析进请求上下文。
// 认证在网关完成，这里只做提取；未携带或非法时不拦截，
// 由需要身份的 handler 自行返回 401。
func UserContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(UserIDHeader)
		if raw != "" {
			if userID, err := strconv.ParseInt(raw, 10, 64); err == nil && userID > 0 {
				c.Set(UserIDKey, userID)
			}
		}
		c.Next()
	}
}

// CurrentUserID 从 gin.Context 取出已解析的用户 ID。
// 第二个返回值为 false 表示请求未携带有效身份。
func CurrentUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}
