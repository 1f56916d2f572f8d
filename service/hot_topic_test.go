package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tnote-app/tnote_service/models/entities"
	"github.com/tnote-app/tnote_service/myErrors"
)

// fakeHotTopicCache 用固定的榜单数据模拟 Redis 快照。
type fakeHotTopicCache struct {
	ranked    []string
	summaries map[string]*entities.TopicView
	rangeErr  error
}

func (c *fakeHotTopicCache) RebuildSnapshot(_ context.Context, counts map[string]int64, summaries []*entities.TopicView) error {
	c.summaries = make(map[string]*entities.TopicView, len(summaries))
	for _, view := range summaries {
		c.summaries[view.ID] = view
	}
	_ = counts
	return nil
}

func (c *fakeHotTopicCache) GetTopRange(_ context.Context, start, stop int64) ([]string, error) {
	if c.rangeErr != nil {
		return nil, c.rangeErr
	}
	if start >= int64(len(c.ranked)) {
		return nil, nil
	}
	end := stop + 1
	if end > int64(len(c.ranked)) {
		end = int64(len(c.ranked))
	}
	return c.ranked[start:end], nil
}

func (c *fakeHotTopicCache) GetTopics(_ context.Context, topicIDs []string) ([]*entities.TopicView, error) {
	if len(c.summaries) == 0 {
		return nil, myErrors.ErrCacheMiss
	}
	var result []*entities.TopicView
	for _, id := range topicIDs {
		if view, ok := c.summaries[id]; ok {
			clone := *view
			result = append(result, &clone)
		}
	}
	return result, nil
}

func TestGetHotTopicsFromSnapshot(t *testing.T) {
	now := time.Now()
	cache := &fakeHotTopicCache{
		ranked: []string{"topic_b", "topic_a"},
		summaries: map[string]*entities.TopicView{
			"topic_a": {ID: "topic_a", Title: "冷一点", UserID: 1, CreatedAt: now, UpdatedAt: now},
			"topic_b": {ID: "topic_b", Title: "最热", UserID: 1, CreatedAt: now, UpdatedAt: now},
		},
	}
	viewRepo := newFakeTopicViewRepo()
	tagRepo := newFakeTagRepo()
	svc := NewHotTopicService(cache, viewRepo, tagRepo, newTestLogger(t))

	topics, err := svc.GetHotTopics(context.Background(), 10)
	if err != nil {
		t.Fatalf("GetHotTopics: %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("话题数 = %d, want 2", len(topics))
	}
	// 顺序沿用榜单排名
	if topics[0].ID != "topic_b" || topics[1].ID != "topic_a" {
		t.Errorf("应按热度降序返回: %s, %s", topics[0].ID, topics[1].ID)
	}
}

func TestGetHotTopicsFallbackOnEmptySnapshot(t *testing.T) {
	cache := &fakeHotTopicCache{} // 任务尚未跑过，榜单为空
	viewRepo := newFakeTopicViewRepo()
	tagRepo := newFakeTagRepo()

	now := time.Now()
	if err := viewRepo.Upsert(context.Background(), &entities.TopicView{
		ID: "topic_db", Title: "来自数据库", UserID: 1, CreatedAt: now, UpdatedAt: now,
	}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	svc := NewHotTopicService(cache, viewRepo, tagRepo, newTestLogger(t))
	topics, err := svc.GetHotTopics(context.Background(), 10)
	if err != nil {
		t.Fatalf("GetHotTopics: %v", err)
	}
	if len(topics) != 1 || topics[0].ID != "topic_db" {
		t.Fatalf("快照为空时应回源数据库, got %+v", topics)
	}
}

func TestGetHotTopicsFallbackOnCacheError(t *testing.T) {
	cache := &fakeHotTopicCache{rangeErr: errors.New("redis: connection refused")}
	viewRepo := newFakeTopicViewRepo()
	tagRepo := newFakeTagRepo()

	now := time.Now()
	_ = viewRepo.Upsert(context.Background(), &entities.TopicView{
		ID: "topic_db", Title: "来自数据库", UserID: 1, CreatedAt: now, UpdatedAt: now,
	})

	svc := NewHotTopicService(cache, viewRepo, tagRepo, newTestLogger(t))
	topics, err := svc.GetHotTopics(context.Background(), 10)
	if err != nil {
		t.Fatalf("缓存故障不应上抛错误: %v", err)
	}
	if len(topics) != 1 || topics[0].ID != "topic_db" {
		t.Fatalf("缓存故障时应回源数据库, got %+v", topics)
	}
}
