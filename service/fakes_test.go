package service

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"testing"
	"time"

	appConfig "github.com/tnote-app/tnote_service/config"
	"github.com/tnote-app/tnote_service/core"
	"github.com/tnote-app/tnote_service/models/entities"
	"github.com/tnote-app/tnote_service/models/enums"
	"github.com/tnote-app/tnote_service/myErrors"
)

// 本文件提供服务层测试用的内存仓库替身。
// 替身只模拟仓库接口承诺的语义（过滤、排序、upsert 合并规则），
// 不模拟 MySQL 本身。

func newTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(appConfig.ZapConfig{Level: "error", Encoding: "console"})
	if err != nil {
		t.Fatalf("构建测试 logger 失败: %v", err)
	}
	return logger
}

// --- 话题事件仓库替身 ---

type fakeTopicEventRepo struct {
	mu     sync.Mutex
	nextID uint64
	events []*entities.TopicEvent
}

func newFakeTopicEventRepo() *fakeTopicEventRepo {
	return &fakeTopicEventRepo{nextID: 1}
}

func (r *fakeTopicEventRepo) Append(_ context.Context, topicID string, eventType enums.TopicEventType, payload interface{}, userID int64) (*entities.TopicEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dataBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	event := &entities.TopicEvent{
		ID:        r.nextID,
		TopicID:   topicID,
		EventType: eventType,
		EventData: string(dataBytes),
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	r.nextID++
	r.events = append(r.events, event)
	return event, nil
}

func (r *fakeTopicEventRepo) ListByTopicID(_ context.Context, topicID string) ([]*entities.TopicEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*entities.TopicEvent
	for _, e := range r.events {
		if e.TopicID == topicID {
			result = append(result, e)
		}
	}
	return result, nil
}

// --- 话题读模型仓库替身 ---

type fakeTopicViewRepo struct {
	mu    sync.Mutex
	views map[string]*entities.TopicView
	// postCounts 供 CountPostsPerTopic 直接返回，由测试自行设定
	postCounts map[string]int64
}

func newFakeTopicViewRepo() *fakeTopicViewRepo {
	return &fakeTopicViewRepo{
		views:      make(map[string]*entities.TopicView),
		postCounts: make(map[string]int64),
	}
}

func (r *fakeTopicViewRepo) Upsert(_ context.Context, view *entities.TopicView) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *view
	if existing, ok := r.views[view.ID]; ok {
		// 已存在时 created_at 与 user_id 不变
		stored.CreatedAt = existing.CreatedAt
		stored.UserID = existing.UserID
	}
	r.views[view.ID] = &stored
	return nil
}

func (r *fakeTopicViewRepo) GetByID(_ context.Context, id string) (*entities.TopicView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	view, ok := r.views[id]
	if !ok || view.IsDeleted {
		return nil, myErrors.ErrNotFound
	}
	clone := *view
	return &clone, nil
}

func (r *fakeTopicViewRepo) GetByIDIncludeDeleted(_ context.Context, id string) (*entities.TopicView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	view, ok := r.views[id]
	if !ok {
		return nil, myErrors.ErrNotFound
	}
	clone := *view
	return &clone, nil
}

func (r *fakeTopicViewRepo) GetAll(_ context.Context, limit, offset int) ([]*entities.TopicView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var all []*entities.TopicView
	for _, view := range r.views {
		if !view.IsDeleted {
			clone := *view
			all = append(all, &clone)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeTopicViewRepo) GetByIDs(_ context.Context, ids []string) ([]*entities.TopicView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*entities.TopicView
	for _, id := range ids {
		if view, ok := r.views[id]; ok && !view.IsDeleted {
			clone := *view
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeTopicViewRepo) CountPostsPerTopic(_ context.Context, limit int64) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make(map[string]int64, len(r.postCounts))
	for id, count := range r.postCounts {
		result[id] = count
	}
	_ = limit
	return result, nil
}

// --- 标签仓库替身 ---

type fakeTagRepo struct {
	mu     sync.Mutex
	nextID int64
	byName map[string]*entities.Tag
	// links: topicID -> tagID 集合
	links map[string]map[int64]bool
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{
		nextID: 1,
		byName: make(map[string]*entities.Tag),
		links:  make(map[string]map[int64]bool),
	}
}

func (r *fakeTagRepo) GetOrCreate(_ context.Context, name string) (*entities.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tag, ok := r.byName[name]; ok {
		clone := *tag
		return &clone, nil
	}
	tag := &entities.Tag{ID: r.nextID, Name: name}
	r.nextID++
	r.byName[name] = tag
	clone := *tag
	return &clone, nil
}

func (r *fakeTagRepo) GetByName(_ context.Context, name string) (*entities.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tag, ok := r.byName[name]
	if !ok {
		return nil, myErrors.ErrNotFound
	}
	clone := *tag
	return &clone, nil
}

func (r *fakeTagRepo) AddTopicTag(_ context.Context, topicID string, tagID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.links[topicID] == nil {
		r.links[topicID] = make(map[int64]bool)
	}
	r.links[topicID][tagID] = true
	return nil
}

func (r *fakeTagRepo) RemoveTopicTag(_ context.Context, topicID string, tagID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.links[topicID], tagID)
	return nil
}

func (r *fakeTagRepo) GetTagsByTopicID(_ context.Context, topicID string) ([]*entities.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*entities.Tag
	for _, tag := range r.byName {
		if r.links[topicID][tag.ID] {
			clone := *tag
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// --- 回帖事件仓库替身 ---

type fakePostEventRepo struct {
	mu     sync.Mutex
	nextID uint64
	events []*entities.PostEvent
}

func newFakePostEventRepo() *fakePostEventRepo {
	return &fakePostEventRepo{nextID: 1}
}

func (r *fakePostEventRepo) Append(_ context.Context, postID string, eventType enums.PostEventType, payload interface{}, userID int64) (*entities.PostEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dataBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	event := &entities.PostEvent{
		ID:        r.nextID,
		PostID:    postID,
		EventType: eventType,
		EventData: string(dataBytes),
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	r.nextID++
	r.events = append(r.events, event)
	return event, nil
}

func (r *fakePostEventRepo) ListByPostID(_ context.Context, postID string) ([]*entities.PostEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*entities.PostEvent
	for _, e := range r.events {
		if e.PostID == postID {
			result = append(result, e)
		}
	}
	return result, nil
}

// --- 回帖读模型仓库替身 ---

type fakePostViewRepo struct {
	mu    sync.Mutex
	views map[string]*entities.PostView
	// order 记录插入顺序，代替按 created_at 排序：
	// 同一测试里连续创建的回帖时间戳可能相同
	order []string
}

func newFakePostViewRepo() *fakePostViewRepo {
	return &fakePostViewRepo{views: make(map[string]*entities.PostView)}
}

func (r *fakePostViewRepo) Upsert(_ context.Context, view *entities.PostView) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *view
	if existing, ok := r.views[view.ID]; ok {
		stored.CreatedAt = existing.CreatedAt
		stored.TopicID = existing.TopicID
		stored.ParentPostID = existing.ParentPostID
		stored.UserID = existing.UserID
	} else {
		r.order = append(r.order, view.ID)
	}
	r.views[view.ID] = &stored
	return nil
}

func (r *fakePostViewRepo) GetByID(_ context.Context, id string) (*entities.PostView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	view, ok := r.views[id]
	if !ok || view.IsDeleted {
		return nil, myErrors.ErrNotFound
	}
	clone := *view
	return &clone, nil
}

func (r *fakePostViewRepo) GetByIDIncludeDeleted(_ context.Context, id string) (*entities.PostView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	view, ok := r.views[id]
	if !ok {
		return nil, myErrors.ErrNotFound
	}
	clone := *view
	return &clone, nil
}

func (r *fakePostViewRepo) GetByTopicID(_ context.Context, topicID string) ([]*entities.PostView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*entities.PostView
	for _, id := range r.order {
		view := r.views[id]
		if view.TopicID == topicID && !view.IsDeleted {
			clone := *view
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakePostViewRepo) GetReplies(_ context.Context, parentPostID string) ([]*entities.PostView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*entities.PostView
	for _, id := range r.order {
		view := r.views[id]
		if view.ParentPostID != nil && *view.ParentPostID == parentPostID && !view.IsDeleted {
			clone := *view
			result = append(result, &clone)
		}
	}
	return result, nil
}
