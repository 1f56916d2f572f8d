package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/tnote-app/tnote_service/models/dto"
	"github.com/tnote-app/tnote_service/models/entities"
	"github.com/tnote-app/tnote_service/models/enums"
	"github.com/tnote-app/tnote_service/models/events"
)

func topicEvent(t *testing.T, id uint64, topicID string, eventType enums.TopicEventType, payload interface{}, at time.Time) *entities.TopicEvent {
	t.Helper()
	dataBytes, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("序列化负载失败: %v", err)
	}
	return &entities.TopicEvent{
		ID:        id,
		TopicID:   topicID,
		EventType: eventType,
		EventData: string(dataBytes),
		UserID:    1,
		CreatedAt: at,
	}
}

func postEvent(t *testing.T, id uint64, postID string, eventType enums.PostEventType, payload interface{}, at time.Time) *entities.PostEvent {
	t.Helper()
	dataBytes, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("序列化负载失败: %v", err)
	}
	return &entities.PostEvent{
		ID:        id,
		PostID:    postID,
		EventType: eventType,
		EventData: string(dataBytes),
		UserID:    1,
		CreatedAt: at,
	}
}

func TestReduceTopicEventsFullHistory(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	newTitle := "改后标题"

	history := []*entities.TopicEvent{
		topicEvent(t, 1, "topic_1", enums.TopicCreated, events.TopicCreatedData{Title: "原标题", Content: "原正文"}, base),
		topicEvent(t, 2, "topic_1", enums.TopicTagAdded, events.TopicTagData{TagID: 1, TagName: "golang"}, base.Add(time.Minute)),
		topicEvent(t, 3, "topic_1", enums.TopicTagAdded, events.TopicTagData{TagID: 2, TagName: "mysql"}, base.Add(2*time.Minute)),
		topicEvent(t, 4, "topic_1", enums.TopicUpdated, events.TopicUpdatedData{Title: &newTitle}, base.Add(3*time.Minute)),
		topicEvent(t, 5, "topic_1", enums.TopicTagRemoved, events.TopicTagData{TagID: 1, TagName: "golang"}, base.Add(4*time.Minute)),
	}

	view, tags, err := ReduceTopicEvents(history)
	if err != nil {
		t.Fatalf("ReduceTopicEvents: %v", err)
	}
	if view.ID != "topic_1" || view.Title != "改后标题" || view.Content != "原正文" {
		t.Errorf("折叠结果不对: %+v", view)
	}
	if view.IsDeleted {
		t.Errorf("未删除话题折叠后不应带删除标记")
	}
	if !view.CreatedAt.Equal(base) {
		t.Errorf("CreatedAt 应取 created 事件时间, got %v", view.CreatedAt)
	}
	// 标签事件不推进 UpdatedAt，与写路径一致（挂/摘标签不改读模型行），
	// 因此此处应停在最后一个 updated 事件。
	if !view.UpdatedAt.Equal(base.Add(3 * time.Minute)) {
		t.Errorf("UpdatedAt 应取最后一个 updated 事件时间, got %v", view.UpdatedAt)
	}
	if len(tags) != 1 || tags[0] != "mysql" {
		t.Errorf("标签折叠结果不对: %v", tags)
	}
}

func TestReduceTopicEventsDelete(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	history := []*entities.TopicEvent{
		topicEvent(t, 1, "topic_1", enums.TopicCreated, events.TopicCreatedData{Title: "t", Content: "c"}, base),
		topicEvent(t, 2, "topic_1", enums.TopicDeleted, events.TopicDeletedData{Reason: events.DeleteReasonUser}, base.Add(time.Hour)),
	}

	view, _, err := ReduceTopicEvents(history)
	if err != nil {
		t.Fatalf("ReduceTopicEvents: %v", err)
	}
	if !view.IsDeleted {
		t.Errorf("deleted 事件折叠后应带删除标记")
	}
	// 删除只翻转标记，内容保留
	if view.Title != "t" || view.Content != "c" {
		t.Errorf("删除后内容应保留: %+v", view)
	}
}

func TestReduceTopicEventsInvalidHistory(t *testing.T) {
	if _, _, err := ReduceTopicEvents(nil); err == nil {
		t.Error("空序列应报错")
	}

	base := time.Now()
	notCreatedFirst := []*entities.TopicEvent{
		topicEvent(t, 1, "topic_1", enums.TopicDeleted, events.TopicDeletedData{}, base),
	}
	if _, _, err := ReduceTopicEvents(notCreatedFirst); err == nil {
		t.Error("不以 created 开头的序列应报错")
	}
}

func TestReducePostEventsFullHistory(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	parent := "post_parent"

	history := []*entities.PostEvent{
		postEvent(t, 1, "post_1", enums.PostCreated, events.PostCreatedData{
			Content: "原文", TopicID: "topic_1", ParentPostID: &parent,
		}, base),
		postEvent(t, 2, "post_1", enums.PostUpdated, events.PostUpdatedData{Content: "改后"}, base.Add(time.Minute)),
		postEvent(t, 3, "post_1", enums.PostDeleted, events.PostDeletedData{Reason: events.DeleteReasonUser}, base.Add(2*time.Minute)),
	}

	view, err := ReducePostEvents(history)
	if err != nil {
		t.Fatalf("ReducePostEvents: %v", err)
	}
	if view.ID != "post_1" || view.Content != "改后" || view.TopicID != "topic_1" {
		t.Errorf("折叠结果不对: %+v", view)
	}
	if view.ParentPostID == nil || *view.ParentPostID != parent {
		t.Errorf("父引用应保留: %v", view.ParentPostID)
	}
	if !view.IsDeleted {
		t.Errorf("末尾为 deleted 的序列折叠后应带删除标记")
	}
	if !view.UpdatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("UpdatedAt 应取末尾事件时间, got %v", view.UpdatedAt)
	}
}

func TestReducePostEventsInvalidHistory(t *testing.T) {
	if _, err := ReducePostEvents(nil); err == nil {
		t.Error("空序列应报错")
	}

	notCreatedFirst := []*entities.PostEvent{
		postEvent(t, 1, "post_1", enums.PostUpdated, events.PostUpdatedData{Content: "x"}, time.Now()),
	}
	if _, err := ReducePostEvents(notCreatedFirst); err == nil {
		t.Error("不以 created 开头的序列应报错")
	}
}

// 折叠结果与写路径增量维护的读模型一致：对同一组操作，
// 事件回放得到的状态和服务层落库的状态应该相同。
func TestReplayMatchesIncrementalView(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	newContent := "第二版正文"

	history := []*entities.TopicEvent{
		topicEvent(t, 1, "topic_1", enums.TopicCreated, events.TopicCreatedData{Title: "标题", Content: "第一版正文"}, base),
		topicEvent(t, 2, "topic_1", enums.TopicUpdated, events.TopicUpdatedData{Content: &newContent}, base.Add(time.Minute)),
	}

	view, _, err := ReduceTopicEvents(history)
	if err != nil {
		t.Fatalf("ReduceTopicEvents: %v", err)
	}
	if view.Title != "标题" {
		t.Errorf("未更新的标题应保留首版, got %q", view.Title)
	}
	if view.Content != "第二版正文" {
		t.Errorf("Content = %q, want 第二版正文", view.Content)
	}
}

// 标签事件同样满足折叠与增量一致：写路径挂/摘标签不动读模型行，
// 折叠对应地不推进 UpdatedAt，两边的标签集合也应相同。
func TestReplayMatchesIncrementalViewTagEvents(t *testing.T) {
	svc, eventRepo, viewRepo, _ := newTopicServiceForTest(t)
	ctx := context.Background()

	topicID, err := svc.CreateTopic(ctx, &dto.CreateTopicRequest{
		Title: "标题", Content: "正文", UserID: 1,
	})
	if err != nil {
		t.Fatalf("CreateTopic: %v", err)
	}
	for _, name := range []string{"golang", "mysql"} {
		if err := svc.AddTagToTopic(ctx, &dto.TopicTagRequest{TopicID: topicID, TagName: name, UserID: 1}); err != nil {
			t.Fatalf("AddTagToTopic(%s): %v", name, err)
		}
	}
	if err := svc.RemoveTagFromTopic(ctx, &dto.TopicTagRequest{TopicID: topicID, TagName: "golang", UserID: 1}); err != nil {
		t.Fatalf("RemoveTagFromTopic: %v", err)
	}

	history, err := eventRepo.ListByTopicID(ctx, topicID)
	if err != nil {
		t.Fatalf("ListByTopicID: %v", err)
	}
	folded, tags, err := ReduceTopicEvents(history)
	if err != nil {
		t.Fatalf("ReduceTopicEvents: %v", err)
	}

	stored, err := viewRepo.GetByID(ctx, topicID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if folded.Title != stored.Title || folded.Content != stored.Content || folded.IsDeleted != stored.IsDeleted {
		t.Errorf("折叠结果与读模型不一致: %+v vs %+v", folded, stored)
	}
	// 挂/摘标签之后两边的 updated_at 都应停在创建时刻
	if !folded.UpdatedAt.Equal(folded.CreatedAt) {
		t.Errorf("折叠侧标签事件不应推进 UpdatedAt: %v / %v", folded.UpdatedAt, folded.CreatedAt)
	}
	if !stored.UpdatedAt.Equal(stored.CreatedAt) {
		t.Errorf("写路径侧标签操作不应推进 UpdatedAt: %v / %v", stored.UpdatedAt, stored.CreatedAt)
	}
	if len(tags) != 1 || tags[0] != "mysql" {
		t.Errorf("折叠后的标签集合不对: %v", tags)
	}
}
