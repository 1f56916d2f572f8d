package entities

import (
	"time"

	"github.com/tnote-app/tnote_service/models/enums"
)

// PostEvent 回帖事件实体
// - 与 TopicEvent 相同的追加写语义，事件类型集合更小。
// - 表名: post_events
type PostEvent struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"`

	// 回帖聚合 ID
	PostID string `gorm:"type:varchar(64);not null;index"`

	// 事件类型: created / updated / deleted
	EventType enums.PostEventType `gorm:"type:varchar(20);not null"`

	// 事件负载，JSON 序列化后的字符串
	EventData string `gorm:"type:json;not null"`

	UserID int64 `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null;index"`
}
