package constant

// Redis Key 相关常量
const (
	// HotTopicsRankKey 热门话题排行榜的 ZSet Key。
	// member 为话题 ID，score 为该话题下未删除回帖的数量。
	// 由 tasks.HotTopicsCacheTask 定时重建，读取方为 HotTopicService。
	// Redis 类型: ZSet
	HotTopicsRankKey = "tnote:hot_topics_rank"

	// HotTopicsHashKey 热门话题摘要的 Hash Key。
	// field 为话题 ID，value 为话题视图的 JSON 序列化结果。
	// 与 HotTopicsRankKey 同批次刷新，保证两者来自同一快照。
	// Redis 类型: Hash
	HotTopicsHashKey = "tnote:hot_topics"
)
