package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tnote-app/tnote_service/models/dto"
	"github.com/tnote-app/tnote_service/models/vo"
	"github.com/tnote-app/tnote_service/response"
	"github.com/tnote-app/tnote_service/service"
)

// PostController 回帖相关的 HTTP 入口
type PostController struct {
	postService service.PostService
}

// NewPostController 构造函数。
func NewPostController(postService service.PostService) *PostController {
	return &PostController{postService: postService}
}

// RegisterRoutes 把回帖路由挂到给定分组。
func (ctrl *PostController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/posts", ctrl.CreatePost)
	group.PUT("/posts/:id", ctrl.UpdatePost)
	group.DELETE("/posts/:id", ctrl.DeletePost)
	group.GET("/posts/:id/replies", ctrl.GetReplies)
	group.GET("/posts/:id/events", ctrl.GetPostEvents)
}

// CreatePost 创建回帖
// @Summary      创建回帖
// @Description  在话题下创建回帖；parent_post_id 为空表示根帖。引用不做存在性校验。
// @Tags         posts (回帖)
// @Accept       json
// @Produce      json
// @Param        body body dto.CreatePostRequest true "回帖内容"
// @Success      200 {object} response.APIResponse[vo.CreatePostResponse] "创建成功"
// @Failure      400 {object} response.APIResponse[any] "参数校验失败"
// @Failure      401 {object} response.APIResponse[any] "未携带有效身份"
// @Router       /api/v1/tnote/posts [post]
func (ctrl *PostController) CreatePost(c *gin.Context) {
	userID, ok := mustCurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}
	req.UserID = userID

	postID, err := ctrl.postService.CreatePost(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, vo.CreatePostResponse{PostID: postID}, "回帖创建成功")
}

// UpdatePost 更新回帖
// @Summary      更新回帖
// @Description  更新回帖正文，仅作者可操作。
// @Tags         posts (回帖)
// @Accept       json
// @Produce      json
// @Param        id path string true "回帖 ID"
// @Param        body body dto.UpdatePostRequest true "更新内容"
// @Success      200 {object} response.APIResponse[any] "更新成功"
// @Failure      403 {object} response.APIResponse[any] "非作者"
// @Failure      404 {object} response.APIResponse[any] "回帖不存在"
// @Router       /api/v1/tnote/posts/{id} [put]
func (ctrl *PostController) UpdatePost(c *gin.Context) {
	userID, ok := mustCurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}
	req.ID = c.Param("id")
	req.UserID = userID

	if err := ctrl.postService.UpdatePost(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess[any](c, nil, "回帖更新成功")
}

// DeletePost 删除回帖
// @Summary      删除回帖
// @Description  逻辑删除回帖，仅作者可操作。子回帖不级联。
// @Tags         posts (回帖)
// @Produce      json
// @Param        id path string true "回帖 ID"
// @Success      200 {object} response.APIResponse[any] "删除成功"
// @Failure      403 {object} response.APIResponse[any] "非作者"
// @Failure      404 {object} response.APIResponse[any] "回帖不存在"
// @Router       /api/v1/tnote/posts/{id} [delete]
func (ctrl *PostController) DeletePost(c *gin.Context) {
	userID, ok := mustCurrentUserID(c)
	if !ok {
		return
	}
	if err := ctrl.postService.DeletePost(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess[any](c, nil, "回帖删除成功")
}

// GetReplies 直接子回帖
// @Summary      直接子回帖
// @Description  返回指定回帖的直接子回帖，创建时间升序。不递归。
// @Tags         posts (回帖)
// @Produce      json
// @Param        id path string true "回帖 ID"
// @Success      200 {object} response.APIResponse[[]vo.PostVO] "子回帖列表"
// @Router       /api/v1/tnote/posts/{id}/replies [get]
func (ctrl *PostController) GetReplies(c *gin.Context) {
	replies, err := ctrl.postService.GetRepliesByPostID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, replies, "子回帖获取成功")
}

// GetPostEvents 回帖事件历史
// @Summary      回帖事件历史（审计）
// @Description  返回回帖的完整事件序列，已删除回帖同样可查。
// @Tags         posts (回帖)
// @Produce      json
// @Param        id path string true "回帖 ID"
// @Success      200 {object} response.APIResponse[[]vo.EventVO] "事件列表"
// @Failure      404 {object} response.APIResponse[any] "回帖从未存在"
// @Router       /api/v1/tnote/posts/{id}/events [get]
func (ctrl *PostController) GetPostEvents(c *gin.Context) {
	eventList, err := ctrl.postService.GetPostEvents(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, eventList, "事件历史获取成功")
}
