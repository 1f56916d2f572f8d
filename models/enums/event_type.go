package enums

// TopicEventType 话题事件类型。
// - 事件一经写入不可修改，类型集合的增删等同于 schema 变更，需谨慎。
type TopicEventType string

const (
	TopicCreated    TopicEventType = "created"
	TopicUpdated    TopicEventType = "updated"
	TopicDeleted    TopicEventType = "deleted"
	TopicTagAdded   TopicEventType = "tag_added"
	TopicTagRemoved TopicEventType = "tag_removed"
)

// PostEventType 回帖事件类型。
type PostEventType string

const (
	PostCreated PostEventType = "created"
	PostUpdated PostEventType = "updated"
	PostDeleted PostEventType = "deleted"
)
