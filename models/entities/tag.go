package entities

import "time"

// Tag 标签实体
// - 使用场景: 话题的分类标签，首次使用某个名称时惰性创建（get-or-create）。
// - name 上的唯一索引是并发 get-or-create 正确性的依据：
//   两个请求同时插入同名标签时，后者依赖唯一冲突回退为"重新查询"。
// - 表名: tags
type Tag struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	// 标签名，唯一，1-50 字符（业务校验在服务层完成）
	Name string `gorm:"type:varchar(50);uniqueIndex;not null"`

	CreatedAt time.Time `gorm:"not null"`
}

// TopicTag 话题与标签的多对多关联
// - 属于读模型：由 tag_added / tag_removed 事件在写入时增量维护。
// - 表名: topic_tags_view
type TopicTag struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	// 话题 ID，字符串形式的聚合 ID
	TopicID string `gorm:"type:varchar(64);not null;index;uniqueIndex:uk_topic_tag,priority:1"`

	// 标签 ID
	TagID int64 `gorm:"not null;uniqueIndex:uk_topic_tag,priority:2"`

	CreatedAt time.Time `gorm:"not null"`
}

// TableName 指定关联表表名，保留读模型的命名习惯。
func (TopicTag) TableName() string {
	return "topic_tags_view"
}
