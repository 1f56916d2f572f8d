package dto

// CreateTopicRequest 创建话题的命令
// - UserID 不由客户端提交，而是由网关透传的用户上下文填充。
// - validate 标签供服务层入库前的命令校验使用，binding 标签供 gin 绑定使用。
type CreateTopicRequest struct {
	Title   string   `json:"title" binding:"required,min=1,max=200" validate:"required,min=1,max=200"`
	Content string   `json:"content" binding:"required,min=1" validate:"required,min=1"`
	Tags    []string `json:"tags" binding:"omitempty,dive,min=1,max=50" validate:"omitempty,dive,min=1,max=50"`
	UserID  int64    `json:"-" validate:"required"`
}

// UpdateTopicRequest 更新话题的命令
// - Title / Content 为 nil 表示不修改对应字段。
type UpdateTopicRequest struct {
	ID      string  `json:"-" validate:"required"`
	Title   *string `json:"title" binding:"omitempty,min=1,max=200" validate:"omitempty,min=1,max=200"`
	Content *string `json:"content" binding:"omitempty,min=1" validate:"omitempty,min=1"`
	UserID  int64   `json:"-" validate:"required"`
}

// ListTopicsRequest 话题列表查询参数
type ListTopicsRequest struct {
	Limit  int `form:"limit,default=50" binding:"omitempty,gt=0,lte=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,gte=0"`
}

// TopicTagRequest 为话题增删标签的命令
type TopicTagRequest struct {
	TopicID string `json:"-" validate:"required"`
	TagName string `json:"tag_name" binding:"required,min=1,max=50" validate:"required,min=1,max=50"`
	UserID  int64  `json:"-" validate:"required"`
}
