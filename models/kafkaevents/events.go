// Package kafkaevents 定义发往 Kafka 的跨服务事件结构。
// 这些结构是与下游（搜索同步等）的数据契约，字段只增不改。
package kafkaevents

import "time"

// 变更类型，与领域事件类型保持同一词汇。
const (
	ChangeCreated = "created"
	ChangeUpdated = "updated"
	ChangeDeleted = "deleted"
)

// TopicData 话题当前状态的快照，随变更事件一并下发，
// 下游无需回查即可更新索引。
type TopicData struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    int64     `json:"user_id"`
	IsDeleted bool      `json:"is_deleted"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TopicChangedEvent 话题变更事件
type TopicChangedEvent struct {
	EventID    string    `json:"event_id"`
	Timestamp  time.Time `json:"timestamp"`
	ChangeType string    `json:"change_type"` // created / updated / deleted
	Topic      TopicData `json:"topic"`
}

// PostData 回帖当前状态的快照。
type PostData struct {
	ID           string    `json:"id"`
	Content      string    `json:"content"`
	TopicID      string    `json:"topic_id"`
	ParentPostID *string   `json:"parent_post_id,omitempty"`
	UserID       int64     `json:"user_id"`
	IsDeleted    bool      `json:"is_deleted"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PostChangedEvent 回帖变更事件
type PostChangedEvent struct {
	EventID    string    `json:"event_id"`
	Timestamp  time.Time `json:"timestamp"`
	ChangeType string    `json:"change_type"` // created / updated / deleted
	Post       PostData  `json:"post"`
}
