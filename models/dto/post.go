package dto

// CreatePostRequest 创建回帖的命令
// - TopicID / ParentPostID 的存在性此处不校验（宽松约定，与来源行为一致）。
type CreatePostRequest struct {
	Content      string  `json:"content" binding:"required,min=1" validate:"required,min=1"`
	TopicID      string  `json:"topic_id" binding:"required" validate:"required"`
	ParentPostID *string `json:"parent_post_id" binding:"omitempty,min=1" validate:"omitempty,min=1"`
	UserID       int64   `json:"-" validate:"required"`
}

// UpdatePostRequest 更新回帖的命令
type UpdatePostRequest struct {
	ID      string `json:"-" validate:"required"`
	Content string `json:"content" binding:"required,min=1" validate:"required,min=1"`
	UserID  int64  `json:"-" validate:"required"`
}
