package entities

import "time"

// PostView 回帖读模型实体
// - 与 TopicView 相同的增量折叠语义。
// - parent_post_id 为空表示楼层根帖；非空时应指向同话题下的另一条回帖，
//   但本层不校验该引用的存在性（与来源系统保持一致的宽松约定），
//   悬空引用由线程树构建时提升为根帖处理。
// - 表名: posts_view
type PostView struct {
	// 聚合 ID，形如 "post_<毫秒时间戳>_<随机后缀>"
	ID string `gorm:"type:varchar(64);primaryKey"`

	// 正文，至少 1 字符
	Content string `gorm:"type:text;not null"`

	// 所属话题，本层不做外键约束校验
	TopicID string `gorm:"type:varchar(64);not null;index"`

	// 父回帖 ID，NULL 表示根帖
	ParentPostID *string `gorm:"type:varchar(64);index"`

	// 作者
	UserID int64 `gorm:"not null;index"`

	// 逻辑删除标记
	IsDeleted bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName 指定读模型表名。
func (PostView) TableName() string {
	return "posts_view"
}
