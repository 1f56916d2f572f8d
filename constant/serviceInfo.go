package constant

// 服务标识，用于追踪与日志中的 service 字段
const (
	ServiceName    = "tnote_service"
	ServiceVersion = "1.0.0"
)

// 话题/帖子 ID 的前缀。
// ID 形如 "topic_1717000000000_ab12cd34e"，时间戳保证大体有序，随机后缀保证唯一。
const (
	TopicIDPrefix = "topic"
	PostIDPrefix  = "post"
)

// 分页默认值
const (
	DefaultTopicPageSize = 50
	MaxTopicPageSize     = 100
)
