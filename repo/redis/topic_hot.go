package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tnote-app/tnote_service/constant"
	"github.com/tnote-app/tnote_service/core"
	"github.com/tnote-app/tnote_service/models/entities"
	"github.com/tnote-app/tnote_service/myErrors"
)

// HotTopicCache 定义热门话题排行在 Redis 中的读写操作。
// - 写入方是定时任务（整榜重建），读取方是 HotTopicService。
// - 榜单与摘要 Hash 在同一批次原子替换，两者始终来自同一快照。
type HotTopicCache interface {
	// RebuildSnapshot 用给定的回帖计数与话题摘要整体重建热榜。
	// - counts: 话题 ID -> 未删除回帖数（即热度分值）。
	// - summaries 中缺失的话题不会进榜。
	RebuildSnapshot(ctx context.Context, counts map[string]int64, summaries []*entities.TopicView) error

	// GetTopRange 返回热榜中 [start, stop] 排名区间的话题 ID，按热度降序。
	GetTopRange(ctx context.Context, start, stop int64) ([]string, error)

	// GetTopics 从摘要 Hash 批量取话题视图。
	// - 榜单整体缺失（例如任务尚未跑过）时返回 myErrors.ErrCacheMiss。
	// - 个别 ID 未命中时跳过，不视为错误。
	GetTopics(ctx context.Context, topicIDs []string) ([]*entities.TopicView, error)
}

type hotTopicCache struct {
	client *redis.Client
	logger *core.ZapLogger
}

// NewHotTopicCache 是 hotTopicCache 的构造函数。
func NewHotTopicCache(client *redis.Client, logger *core.ZapLogger) HotTopicCache {
	return &hotTopicCache{client: client, logger: logger}
}

// RebuildSnapshot 在单个 pipeline 中删除旧榜并写入新榜。
func (c *hotTopicCache) RebuildSnapshot(ctx context.Context, counts map[string]int64, summaries []*entities.TopicView) error {
	summaryByID := make(map[string]*entities.TopicView, len(summaries))
	for _, view := range summaries {
		summaryByID[view.ID] = view
	}

	members := make([]redis.Z, 0, len(counts))
	hashValues := make(map[string]interface{}, len(counts))
	for topicID, count := range counts {
		view, ok := summaryByID[topicID]
		if !ok {
			// 计数里有、摘要里没有：话题在统计与取摘要之间被删了，跳过
			continue
		}
		viewBytes, err := json.Marshal(view)
		if err != nil {
			c.logger.Error("序列化话题摘要失败", zap.Error(err), zap.String("topicID", topicID))
			return fmt.Errorf("序列化话题摘要失败: %w", err)
		}
		members = append(members, redis.Z{Score: float64(count), Member: topicID})
		hashValues[topicID] = string(viewBytes)
	}

	pipe := c.client.TxPipeline()
	pipe.Del(ctx, constant.HotTopicsRankKey, constant.HotTopicsHashKey)
	if len(members) > 0 {
		pipe.ZAdd(ctx, constant.HotTopicsRankKey, members...)
		pipe.HSet(ctx, constant.HotTopicsHashKey, hashValues)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Error("重建热榜快照失败", zap.Error(err), zap.Int("members", len(members)))
		return err
	}

	c.logger.Info("热榜快照已重建", zap.Int("members", len(members)))
	return nil
}

// GetTopRange 按热度降序读取排名区间。
func (c *hotTopicCache) GetTopRange(ctx context.Context, start, stop int64) ([]string, error) {
	ids, err := c.client.ZRevRange(ctx, constant.HotTopicsRankKey, start, stop).Result()
	if err != nil {
		c.logger.Error("读取热榜区间失败", zap.Error(err), zap.Int64("start", start), zap.Int64("stop", stop))
		return nil, err
	}
	return ids, nil
}

// GetTopics 批量读取话题摘要。
func (c *hotTopicCache) GetTopics(ctx context.Context, topicIDs []string) ([]*entities.TopicView, error) {
	if len(topicIDs) == 0 {
		return []*entities.TopicView{}, nil
	}

	exists, err := c.client.Exists(ctx, constant.HotTopicsHashKey).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, myErrors.ErrCacheMiss
	}

	values, err := c.client.HMGet(ctx, constant.HotTopicsHashKey, topicIDs...).Result()
	if err != nil {
		c.logger.Error("批量读取话题摘要失败", zap.Error(err), zap.Int("count", len(topicIDs)))
		return nil, err
	}

	views := make([]*entities.TopicView, 0, len(values))
	for i, raw := range values {
		if raw == nil {
			// 榜单与 Hash 之间的短暂不一致，跳过该 ID
			continue
		}
		str, ok := raw.(string)
		if !ok {
			continue
		}
		var view entities.TopicView
		if err := json.Unmarshal([]byte(str), &view); err != nil {
			c.logger.Warn("反序列化话题摘要失败，已跳过",
				zap.Error(err),
				zap.String("topicID", topicIDs[i]),
			)
			continue
		}
		views = append(views, &view)
	}
	return views, nil
}
