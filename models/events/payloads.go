// Package events 定义各类领域事件的负载结构。
// 负载以 JSON 形式序列化进事件表的 event_data 列；结构一经使用即视为
// 对外契约的一部分，只增字段、不改含义。
package events

// TopicCreatedData "created" 话题事件负载，记录创建时的完整初始状态。
type TopicCreatedData struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// TopicUpdatedData "updated" 话题事件负载。
// 只携带本次实际变更的字段，nil 表示该字段未被修改。
type TopicUpdatedData struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// TopicDeletedData "deleted" 话题事件负载。
type TopicDeletedData struct {
	Reason string `json:"reason"`
}

// TopicTagData "tag_added" / "tag_removed" 话题事件负载。
type TopicTagData struct {
	TagID   int64  `json:"tag_id"`
	TagName string `json:"tag_name"`
}

// PostCreatedData "created" 回帖事件负载。
type PostCreatedData struct {
	Content      string  `json:"content"`
	TopicID      string  `json:"topic_id"`
	ParentPostID *string `json:"parent_post_id,omitempty"`
}

// PostUpdatedData "updated" 回帖事件负载。
type PostUpdatedData struct {
	Content string `json:"content"`
}

// PostDeletedData "deleted" 回帖事件负载。
type PostDeletedData struct {
	Reason string `json:"reason"`
}

// DeleteReasonUser 用户主动删除时写入 deleted 事件的默认原因。
const DeleteReasonUser = "User deleted"
