// File: tasks/hot_topics_cache.go
package tasks

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	appConfig "github.com/tnote-app/tnote_service/config"
	"github.com/tnote-app/tnote_service/core"
	"github.com/tnote-app/tnote_service/repo/mysql"
	redisrepo "github.com/tnote-app/tnote_service/repo/redis"
)

// HotTopicsCacheTask 负责定时刷新 Redis 中的热门话题榜快照。
// 每轮执行：统计各话题回帖数 -> 取话题摘要 -> 整榜重建 ZSet 与 Hash。
type HotTopicsCacheTask struct {
	viewRepo mysql.TopicViewRepository
	hotCache redisrepo.HotTopicCache
	cron     *cron.Cron
	cfg      appConfig.HotTopicsConfig
	logger   *core.ZapLogger
}

// NewHotTopicsCacheTask 初始化并启动热门话题榜的定时任务。
func NewHotTopicsCacheTask(
	viewRepo mysql.TopicViewRepository,
	hotCache redisrepo.HotTopicCache,
	cfg appConfig.HotTopicsConfig,
	logger *core.ZapLogger,
) *HotTopicsCacheTask {
	task := &HotTopicsCacheTask{
		viewRepo: viewRepo,
		hotCache: hotCache,
		cron:     cron.New(),
		cfg:      cfg,
		logger:   logger,
	}
	task.startCronJob()
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *HotTopicsCacheTask) startCronJob() {
	schedule := t.cfg.CronSpec
	if schedule == "" {
		schedule = "@every 5m"
	}
	t.logger.Info("准备启动热门话题榜刷新定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		t.logger.Info("热门话题榜刷新任务开始执行...")
		startTime := time.Now()
		// 单次执行设置超时，防止慢查询把任务卡死
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		t.refreshSnapshot(ctx)

		duration := time.Since(startTime)
		t.logger.Info("热门话题榜刷新任务执行完毕", zap.Duration("duration", duration))
	})

	if err != nil {
		t.logger.Fatal("添加热门话题榜刷新 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("热门话题榜刷新定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// refreshSnapshot 是定时任务执行的实际刷新逻辑。
func (t *HotTopicsCacheTask) refreshSnapshot(ctx context.Context) {
	cacheSize := t.cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = 100
	}

	// 步骤 1: 统计各话题的未删除回帖数，作为热度分值
	counts, err := t.viewRepo.CountPostsPerTopic(ctx, cacheSize)
	if err != nil {
		t.logger.Error("统计话题回帖数失败，保留旧榜", zap.Error(err))
		return
	}
	if len(counts) == 0 {
		t.logger.Info("没有带回帖的话题，跳过本轮榜单重建")
		return
	}

	// 步骤 2: 批量取上榜话题的摘要（已删除的在这里被过滤掉）
	ids := make([]string, 0, len(counts))
	for topicID := range counts {
		ids = append(ids, topicID)
	}
	summaries, err := t.viewRepo.GetByIDs(ctx, ids)
	if err != nil {
		t.logger.Error("批量获取话题摘要失败，保留旧榜", zap.Error(err))
		return
	}

	// 步骤 3: 整榜重建 Redis 快照
	if err := t.hotCache.RebuildSnapshot(ctx, counts, summaries); err != nil {
		t.logger.Error("重建热榜快照失败", zap.Error(err))
		return
	}
	t.logger.Info("热榜快照重建完成", zap.Int("上榜话题数", len(summaries)))
}

// Stop 停止 cron 调度器。
// 返回的 context 会在所有正在运行的作业结束后 Done，调用方可据此等待。
func (t *HotTopicsCacheTask) Stop() context.Context {
	t.logger.Info("正在停止热门话题榜刷新定时任务...")
	return t.cron.Stop()
}
