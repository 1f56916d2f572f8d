package entities

import (
	"time"

	"github.com/tnote-app/tnote_service/models/enums"
)

// TopicEvent 话题事件实体
// - 追加写入（append-only）：行一经插入永不更新、永不删除，构成话题的权威历史。
// - 对单个 TopicID，按 created_at（再按 id）排序的事件序列即该话题的完整变更史；
//   读模型 topics_view 是这条序列的折叠结果，但折叠在写入时增量完成，不做回放。
// - 表名: topic_events
type TopicEvent struct {
	// 主键，自增，由存储层分配，兼作同一时间戳内的排序决胜键
	ID uint64 `gorm:"primaryKey;autoIncrement"`

	// 话题聚合 ID
	TopicID string `gorm:"type:varchar(64);not null;index"`

	// 事件类型: created / updated / deleted / tag_added / tag_removed
	EventType enums.TopicEventType `gorm:"type:varchar(20);not null"`

	// 事件负载，JSON 序列化后的字符串。
	// 结构随事件类型不同，见 models/events 中的负载定义。
	EventData string `gorm:"type:json;not null"`

	// 触发事件的用户
	UserID int64 `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null;index"`
}
