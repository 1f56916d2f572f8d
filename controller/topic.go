package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tnote-app/tnote_service/models/dto"
	"github.com/tnote-app/tnote_service/models/vo"
	"github.com/tnote-app/tnote_service/response"
	"github.com/tnote-app/tnote_service/service"
)

// TopicController 话题相关的 HTTP 入口
type TopicController struct {
	topicService service.TopicService
	postService  service.PostService
}

// NewTopicController 构造函数。
func NewTopicController(topicService service.TopicService, postService service.PostService) *TopicController {
	return &TopicController{
		topicService: topicService,
		postService:  postService,
	}
}

// RegisterRoutes 把话题路由挂到给定分组。
func (ctrl *TopicController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/topics", ctrl.CreateTopic)
	group.GET("/topics", ctrl.ListTopics)
	group.GET("/topics/:id", ctrl.GetTopic)
	group.PUT("/topics/:id", ctrl.UpdateTopic)
	group.DELETE("/topics/:id", ctrl.DeleteTopic)
	group.POST("/topics/:id/tags", ctrl.AddTag)
	group.DELETE("/topics/:id/tags/:name", ctrl.RemoveTag)
	group.GET("/topics/:id/events", ctrl.GetTopicEvents)
	group.GET("/topics/:id/posts", ctrl.GetTopicThread)
}

// CreateTopic 创建话题
// @Summary      创建话题
// @Description  创建一个新话题，可附带标签。用户身份由网关透传。
// @Tags         topics (话题)
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateTopicRequest true "话题内容"
// @Success      200 {object} response.APIResponse[vo.CreateTopicResponse] "创建成功"
// @Failure      400 {object} response.APIResponse[any] "参数校验失败"
// @Failure      401 {object} response.APIResponse[any] "未携带有效身份"
// @Router       /api/v1/tnote/topics [post]
func (ctrl *TopicController) CreateTopic(c *gin.Context) {
	userID, ok := mustCurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}
	req.UserID = userID

	topicID, err := ctrl.topicService.CreateTopic(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, vo.CreateTopicResponse{TopicID: topicID}, "话题创建成功")
}

// ListTopics 话题列表
// @Summary      话题列表
// @Description  按创建时间倒序分页返回未删除的话题。
// @Tags         topics (话题)
// @Produce      json
// @Param        limit query int false "每页数量" default(50) maximum(100)
// @Param        offset query int false "偏移量" default(0)
// @Success      200 {object} response.APIResponse[[]vo.TopicVO] "话题列表"
// @Router       /api/v1/tnote/topics [get]
func (ctrl *TopicController) ListTopics(c *gin.Context) {
	var req dto.ListTopicsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	topics, err := ctrl.topicService.GetAllTopics(c.Request.Context(), req.Limit, req.Offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, topics, "话题列表获取成功")
}

// GetTopic 话题详情
// @Summary      话题详情
// @Description  返回未删除话题及其标签。
// @Tags         topics (话题)
// @Produce      json
// @Param        id path string true "话题 ID"
// @Success      200 {object} response.APIResponse[vo.TopicVO] "话题详情"
// @Failure      404 {object} response.APIResponse[any] "话题不存在或已删除"
// @Router       /api/v1/tnote/topics/{id} [get]
func (ctrl *TopicController) GetTopic(c *gin.Context) {
	topic, err := ctrl.topicService.GetTopicByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, topic, "话题获取成功")
}

// UpdateTopic 更新话题
// @Summary      更新话题
// @Description  更新话题的标题或正文，仅作者可操作。
// @Tags         topics (话题)
// @Accept       json
// @Produce      json
// @Param        id path string true "话题 ID"
// @Param        body body dto.UpdateTopicRequest true "更新内容"
// @Success      200 {object} response.APIResponse[any] "更新成功"
// @Failure      403 {object} response.APIResponse[any] "非作者"
// @Failure      404 {object} response.APIResponse[any] "话题不存在"
// @Router       /api/v1/tnote/topics/{id} [put]
func (ctrl *TopicController) UpdateTopic(c *gin.Context) {
	userID, ok := mustCurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}
	req.ID = c.Param("id")
	req.UserID = userID

	if err := ctrl.topicService.UpdateTopic(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess[any](c, nil, "话题更新成功")
}

// DeleteTopic 删除话题
// @Summary      删除话题
// @Description  逻辑删除话题，仅作者可操作。行保留，审计接口仍可查询。
// @Tags         topics (话题)
// @Produce      json
// @Param        id path string true "话题 ID"
// @Success      200 {object} response.APIResponse[any] "删除成功"
// @Failure      403 {object} response.APIResponse[any] "非作者"
// @Failure      404 {object} response.APIResponse[any] "话题不存在"
// @Router       /api/v1/tnote/topics/{id} [delete]
func (ctrl *TopicController) DeleteTopic(c *gin.Context) {
	userID, ok := mustCurrentUserID(c)
	if !ok {
		return
	}
	if err := ctrl.topicService.DeleteTopic(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess[any](c, nil, "话题删除成功")
}

// AddTag 追加话题标签
// @Summary      追加话题标签
// @Tags         topics (话题)
// @Accept       json
// @Produce      json
// @Param        id path string true "话题 ID"
// @Param        body body dto.TopicTagRequest true "标签名"
// @Success      200 {object} response.APIResponse[any] "追加成功"
// @Router       /api/v1/tnote/topics/{id}/tags [post]
func (ctrl *TopicController) AddTag(c *gin.Context) {
	userID, ok := mustCurrentUserID(c)
	if !ok {
		return
	}

	var req dto.TopicTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}
	req.TopicID = c.Param("id")
	req.UserID = userID

	if err := ctrl.topicService.AddTagToTopic(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess[any](c, nil, "标签追加成功")
}

// RemoveTag 移除话题标签
// @Summary      移除话题标签
// @Tags         topics (话题)
// @Produce      json
// @Param        id path string true "话题 ID"
// @Param        name path string true "标签名"
// @Success      200 {object} response.APIResponse[any] "移除成功"
// @Router       /api/v1/tnote/topics/{id}/tags/{name} [delete]
func (ctrl *TopicController) RemoveTag(c *gin.Context) {
	userID, ok := mustCurrentUserID(c)
	if !ok {
		return
	}

	req := dto.TopicTagRequest{
		TopicID: c.Param("id"),
		TagName: c.Param("name"),
		UserID:  userID,
	}
	if err := ctrl.topicService.RemoveTagFromTopic(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess[any](c, nil, "标签移除成功")
}

// GetTopicEvents 话题事件历史
// @Summary      话题事件历史（审计）
// @Description  返回话题的完整事件序列，已删除话题同样可查。
// @Tags         topics (话题)
// @Produce      json
// @Param        id path string true "话题 ID"
// @Success      200 {object} response.APIResponse[[]vo.EventVO] "事件列表"
// @Failure      404 {object} response.APIResponse[any] "话题从未存在"
// @Router       /api/v1/tnote/topics/{id}/events [get]
func (ctrl *TopicController) GetTopicEvents(c *gin.Context) {
	eventList, err := ctrl.topicService.GetTopicEvents(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, eventList, "事件历史获取成功")
}

// GetTopicThread 话题线程树
// @Summary      话题线程树
// @Description  返回话题下的回帖树：根帖序列，各节点的 replies 递归嵌套。
// @Tags         topics (话题)
// @Produce      json
// @Param        id path string true "话题 ID"
// @Success      200 {object} response.APIResponse[[]vo.PostVO] "线程树"
// @Router       /api/v1/tnote/topics/{id}/posts [get]
func (ctrl *TopicController) GetTopicThread(c *gin.Context) {
	thread, err := ctrl.postService.GetTopicThread(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, thread, "线程树获取成功")
}
