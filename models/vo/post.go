package vo

import (
	"time"

	"github.com/tnote-app/tnote_service/models/entities"
)

// PostVO 回帖响应结构
// - Replies 由线程树构建填充，构成递归的嵌套结构；平铺返回时恒为空切片。
type PostVO struct {
	ID           string    `json:"id"`
	Content      string    `json:"content"`
	TopicID      string    `json:"topic_id"`
	ParentPostID *string   `json:"parent_post_id"`
	UserID       int64     `json:"user_id"`
	IsDeleted    bool      `json:"is_deleted"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Replies      []*PostVO `json:"replies"`
}

// CreatePostResponse 创建回帖的响应
type CreatePostResponse struct {
	PostID string `json:"post_id"`
}

// MapPostViewToVO 将回帖读模型实体转换为响应结构（Replies 置空）。
func MapPostViewToVO(view *entities.PostView) *PostVO {
	return &PostVO{
		ID:           view.ID,
		Content:      view.Content,
		TopicID:      view.TopicID,
		ParentPostID: view.ParentPostID,
		UserID:       view.UserID,
		IsDeleted:    view.IsDeleted,
		CreatedAt:    view.CreatedAt,
		UpdatedAt:    view.UpdatedAt,
		Replies:      []*PostVO{},
	}
}

// MapPostViewsToVOs 批量转换，保持输入顺序。
func MapPostViewsToVOs(views []*entities.PostView) []*PostVO {
	result := make([]*PostVO, 0, len(views))
	for _, view := range views {
		result = append(result, MapPostViewToVO(view))
	}
	return result
}
