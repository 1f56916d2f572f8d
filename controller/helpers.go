package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tnote-app/tnote_service/middleware"
	"github.com/tnote-app/tnote_service/myErrors"
	"github.com/tnote-app/tnote_service/response"
)

// respondServiceError 把服务层错误映射为统一的 HTTP 响应。
// 错误种类与状态码的对应关系在此集中定义，各 handler 不再散落判断。
func respondServiceError(c *gin.Context, err error) {
	var validationErr *myErrors.ValidationError

	switch {
	case errors.As(err, &validationErr):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, validationErr.Error())
	case errors.Is(err, myErrors.ErrValidation):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, err.Error())
	case errors.Is(err, myErrors.ErrNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientNotFound, "资源不存在")
	case errors.Is(err, myErrors.ErrPermissionDenied):
		response.RespondError(c, http.StatusForbidden, response.ErrCodeClientForbidden, "没有操作权限")
	case errors.Is(err, myErrors.ErrStorageUnavailable):
		response.RespondError(c, http.StatusServiceUnavailable, response.ErrCodeServerUnavailable, "存储服务不可用")
	default:
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "服务内部错误: "+err.Error())
	}
}

// mustCurrentUserID 取出网关透传的用户 ID，缺失时写出 401 并返回 false。
func mustCurrentUserID(c *gin.Context) (int64, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无法获取有效的用户身份")
		return 0, false
	}
	return userID, true
}
