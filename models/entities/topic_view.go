package entities

import "time"

// TopicView 话题读模型实体
// - 由话题事件在写入时增量折叠出的当前状态，读取路径不经过事件表。
// - 删除为逻辑删除：is_deleted 置为 true，行保留，按 ID 的审计读取仍可命中。
// - created_at 在首次插入后不再变化；updated_at 随每次写入推进。
// - 表名: topics_view
type TopicView struct {
	// 聚合 ID，形如 "topic_<毫秒时间戳>_<随机后缀>"
	ID string `gorm:"type:varchar(64);primaryKey"`

	// 标题，1-200 字符（业务校验在服务层完成）
	Title string `gorm:"type:varchar(200);not null"`

	// 正文，至少 1 字符
	Content string `gorm:"type:text;not null"`

	// 作者
	UserID int64 `gorm:"not null;index"`

	// 逻辑删除标记
	IsDeleted bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName 指定读模型表名。
func (TopicView) TableName() string {
	return "topics_view"
}
