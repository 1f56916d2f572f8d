package vo

import (
	"time"

	"github.com/tnote-app/tnote_service/models/entities"
)

// TagVO 标签响应结构
type TagVO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TopicVO 话题响应结构
// - Tags 由关联表解析得到；Posts 仅在详情页由调用方按需填充。
type TopicVO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    int64     `json:"user_id"`
	IsDeleted bool      `json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Tags      []TagVO   `json:"tags"`
	Posts     []*PostVO `json:"posts,omitempty"`
}

// CreateTopicResponse 创建话题的响应
type CreateTopicResponse struct {
	TopicID string `json:"topic_id"`
}

// MapTopicViewToVO 将话题读模型实体与其标签转换为响应结构。
func MapTopicViewToVO(view *entities.TopicView, tags []*entities.Tag) *TopicVO {
	tagVOs := make([]TagVO, 0, len(tags))
	for _, tag := range tags {
		tagVOs = append(tagVOs, TagVO{ID: tag.ID, Name: tag.Name})
	}
	return &TopicVO{
		ID:        view.ID,
		Title:     view.Title,
		Content:   view.Content,
		UserID:    view.UserID,
		IsDeleted: view.IsDeleted,
		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
		Tags:      tagVOs,
	}
}
