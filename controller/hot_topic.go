package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tnote-app/tnote_service/response"
	"github.com/tnote-app/tnote_service/service"
)

// HotTopicController 热门话题榜的 HTTP 入口
type HotTopicController struct {
	hotTopicService service.HotTopicService
}

// NewHotTopicController 构造函数。
func NewHotTopicController(hotTopicService service.HotTopicService) *HotTopicController {
	return &HotTopicController{hotTopicService: hotTopicService}
}

// RegisterRoutes 把热榜路由挂到给定分组。
func (ctrl *HotTopicController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/topics/hot/list", ctrl.GetHotTopics)
}

// GetHotTopics 热门话题榜
// @Summary      热门话题榜
// @Description  按回帖数降序返回热门话题，数据来自定时刷新的 Redis 快照。
// @Tags         topics (话题)
// @Produce      json
// @Param        limit query int false "返回数量" default(10)
// @Success      200 {object} response.APIResponse[[]vo.TopicVO] "热门话题"
// @Router       /api/v1/tnote/topics/hot/list [get]
func (ctrl *HotTopicController) GetHotTopics(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 limit 参数")
		return
	}

	topics, err := ctrl.hotTopicService.GetHotTopics(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, topics, "热门话题获取成功")
}
