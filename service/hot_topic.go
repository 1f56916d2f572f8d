package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tnote-app/tnote_service/core"
	"github.com/tnote-app/tnote_service/models/vo"
	"github.com/tnote-app/tnote_service/myErrors"
	"github.com/tnote-app/tnote_service/repo/mysql"
	redisrepo "github.com/tnote-app/tnote_service/repo/redis"
)

// HotTopicService 提供热门话题榜的读取。
// 榜单来自定时任务维护的 Redis 快照（按回帖数排序）；
// 快照缺失时回源 MySQL 取最新话题兜底，保证接口始终可用。
type HotTopicService interface {
	// GetHotTopics 返回前 limit 个热门话题，热度（回帖数）降序。
	GetHotTopics(ctx context.Context, limit int64) ([]*vo.TopicVO, error)
}

type hotTopicService struct {
	hotCache redisrepo.HotTopicCache
	viewRepo mysql.TopicViewRepository
	tagRepo  mysql.TagRepository
	logger   *core.ZapLogger
}

// NewHotTopicService 是 hotTopicService 的构造函数。
func NewHotTopicService(
	hotCache redisrepo.HotTopicCache,
	viewRepo mysql.TopicViewRepository,
	tagRepo mysql.TagRepository,
	logger *core.ZapLogger,
) HotTopicService {
	return &hotTopicService{
		hotCache: hotCache,
		viewRepo: viewRepo,
		tagRepo:  tagRepo,
		logger:   logger,
	}
}

// GetHotTopics 实现热榜读取。
func (s *hotTopicService) GetHotTopics(ctx context.Context, limit int64) ([]*vo.TopicVO, error) {
	if limit <= 0 {
		limit = 10
	}

	ids, err := s.hotCache.GetTopRange(ctx, 0, limit-1)
	if err != nil {
		s.logger.Warn("读取热榜失败，回源数据库", zap.Error(err))
		return s.fallbackFromDB(ctx, int(limit))
	}
	if len(ids) == 0 {
		// 快照尚未生成（任务还没跑过），回源
		return s.fallbackFromDB(ctx, int(limit))
	}

	views, err := s.hotCache.GetTopics(ctx, ids)
	if err != nil {
		if errors.Is(err, myErrors.ErrCacheMiss) {
			return s.fallbackFromDB(ctx, int(limit))
		}
		return nil, err
	}

	topics := make([]*vo.TopicVO, 0, len(views))
	for _, view := range views {
		tags, tagErr := s.tagRepo.GetTagsByTopicID(ctx, view.ID)
		if tagErr != nil {
			return nil, fmt.Errorf("解析话题 %s 的标签失败: %w", view.ID, tagErr)
		}
		topics = append(topics, vo.MapTopicViewToVO(view, tags))
	}
	return topics, nil
}

// fallbackFromDB 以"最新话题"近似热榜，保证快照缺失时接口可用。
func (s *hotTopicService) fallbackFromDB(ctx context.Context, limit int) ([]*vo.TopicVO, error) {
	views, err := s.viewRepo.GetAll(ctx, limit, 0)
	if err != nil {
		return nil, err
	}
	topics := make([]*vo.TopicVO, 0, len(views))
	for _, view := range views {
		tags, tagErr := s.tagRepo.GetTagsByTopicID(ctx, view.ID)
		if tagErr != nil {
			return nil, fmt.Errorf("解析话题 %s 的标签失败: %w", view.ID, tagErr)
		}
		topics = append(topics, vo.MapTopicViewToVO(view, tags))
	}
	return topics, nil
}
