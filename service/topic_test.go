package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tnote-app/tnote_service/models/dto"
	"github.com/tnote-app/tnote_service/models/enums"
	"github.com/tnote-app/tnote_service/myErrors"
)

func newTopicServiceForTest(t *testing.T) (TopicService, *fakeTopicEventRepo, *fakeTopicViewRepo, *fakeTagRepo) {
	t.Helper()
	eventRepo := newFakeTopicEventRepo()
	viewRepo := newFakeTopicViewRepo()
	tagRepo := newFakeTagRepo()
	svc := NewTopicService(eventRepo, viewRepo, tagRepo, nil, newTestLogger(t))
	return svc, eventRepo, viewRepo, tagRepo
}

func TestCreateTopicRoundTrip(t *testing.T) {
	svc, _, _, _ := newTopicServiceForTest(t)
	ctx := context.Background()

	topicID, err := svc.CreateTopic(ctx, &dto.CreateTopicRequest{
		Title:   "Go 的错误处理",
		Content: "errors.Is 和 errors.As 的使用场景",
		Tags:    []string{"golang", "errors"},
		UserID:  1,
	})
	if err != nil {
		t.Fatalf("CreateTopic: %v", err)
	}
	if !strings.HasPrefix(topicID, "topic_") {
		t.Fatalf("话题 ID 前缀不对: %s", topicID)
	}

	topic, err := svc.GetTopicByID(ctx, topicID)
	if err != nil {
		t.Fatalf("GetTopicByID: %v", err)
	}
	if topic.Title != "Go 的错误处理" || topic.Content != "errors.Is 和 errors.As 的使用场景" {
		t.Errorf("内容不一致: %+v", topic)
	}
	if topic.UserID != 1 {
		t.Errorf("UserID = %d, want 1", topic.UserID)
	}
	if !topic.CreatedAt.Equal(topic.UpdatedAt) {
		t.Errorf("新建话题 created_at 应等于 updated_at: %v / %v", topic.CreatedAt, topic.UpdatedAt)
	}
	if len(topic.Tags) != 2 {
		t.Fatalf("标签数 = %d, want 2", len(topic.Tags))
	}
	// 标签按名称升序
	if topic.Tags[0].Name != "errors" || topic.Tags[1].Name != "golang" {
		t.Errorf("标签排序不对: %+v", topic.Tags)
	}
}

func TestCreateTopicValidation(t *testing.T) {
	svc, eventRepo, _, _ := newTopicServiceForTest(t)
	ctx := context.Background()

	_, err := svc.CreateTopic(ctx, &dto.CreateTopicRequest{
		Title:   "",
		Content: "正文",
		UserID:  1,
	})
	if !errors.Is(err, myErrors.ErrValidation) {
		t.Fatalf("空标题应返回校验错误, got %v", err)
	}
	var vErr *myErrors.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("错误应可 As 成 *ValidationError, got %T", err)
	}
	if len(eventRepo.events) != 0 {
		t.Errorf("校验失败不应写入任何事件, got %d", len(eventRepo.events))
	}

	longTitle := strings.Repeat("标", 201)
	if _, err := svc.CreateTopic(ctx, &dto.CreateTopicRequest{
		Title:   longTitle,
		Content: "正文",
		UserID:  1,
	}); !errors.Is(err, myErrors.ErrValidation) {
		t.Errorf("超长标题应返回校验错误, got %v", err)
	}
}

func TestCreateTopicEventLog(t *testing.T) {
	svc, _, _, _ := newTopicServiceForTest(t)
	ctx := context.Background()

	topicID, err := svc.CreateTopic(ctx, &dto.CreateTopicRequest{
		Title:   "标题",
		Content: "正文",
		Tags:    []string{"a", "b"},
		UserID:  7,
	})
	if err != nil {
		t.Fatalf("CreateTopic: %v", err)
	}

	eventList, err := svc.GetTopicEvents(ctx, topicID)
	if err != nil {
		t.Fatalf("GetTopicEvents: %v", err)
	}
	// created + 每个标签一条 tag_added
	if len(eventList) != 3 {
		t.Fatalf("事件数 = %d, want 3", len(eventList))
	}
	if eventList[0].EventType != string(enums.TopicCreated) {
		t.Errorf("首个事件应为 created, got %s", eventList[0].EventType)
	}
	for _, e := range eventList[1:] {
		if e.EventType != string(enums.TopicTagAdded) {
			t.Errorf("后续事件应为 tag_added, got %s", e.EventType)
		}
	}
}

func TestGetTopicEventsUnknownID(t *testing.T) {
	svc, _, _, _ := newTopicServiceForTest(t)

	_, err := svc.GetTopicEvents(context.Background(), "topic_never_existed")
	if !errors.Is(err, myErrors.ErrNotFound) {
		t.Fatalf("从未存在的话题应返回 ErrNotFound, got %v", err)
	}
}

func TestUpdateTopicPartialFields(t *testing.T) {
	svc, _, _, _ := newTopicServiceForTest(t)
	ctx := context.Background()

	topicID, _ := svc.CreateTopic(ctx, &dto.CreateTopicRequest{
		Title:   "原标题",
		Content: "原正文",
		UserID:  1,
	})

	newTitle := "新标题"
	if err := svc.UpdateTopic(ctx, &dto.UpdateTopicRequest{
		ID:     topicID,
		Title:  &newTitle,
		UserID: 1,
	}); err != nil {
		t.Fatalf("UpdateTopic: %v", err)
	}

	topic, err := svc.GetTopicByID(ctx, topicID)
	if err != nil {
		t.Fatalf("GetTopicByID: %v", err)
	}
	if topic.Title != "新标题" {
		t.Errorf("Title = %q, want 新标题", topic.Title)
	}
	if topic.Content != "原正文" {
		t.Errorf("未指定的正文不应改变, got %q", topic.Content)
	}
	if topic.UpdatedAt.Before(topic.CreatedAt) {
		t.Errorf("updated_at 不应早于 created_at")
	}
}

func TestUpdateTopicPermissionDenied(t *testing.T) {
	svc, eventRepo, _, _ := newTopicServiceForTest(t)
	ctx := context.Background()

	topicID, _ := svc.CreateTopic(ctx, &dto.CreateTopicRequest{
		Title:   "标题",
		Content: "正文",
		UserID:  1,
	})
	eventsBefore := len(eventRepo.events)

	newTitle := "篡改"
	err := svc.UpdateTopic(ctx, &dto.UpdateTopicRequest{
		ID:     topicID,
		Title:  &newTitle,
		UserID: 2,
	})
	if !errors.Is(err, myErrors.ErrPermissionDenied) {
		t.Fatalf("非作者更新应返回 ErrPermissionDenied, got %v", err)
	}

	// 拒绝发生在事件追加之前：日志与读模型都不应有痕迹
	if len(eventRepo.events) != eventsBefore {
		t.Errorf("权限拒绝不应追加事件")
	}
	topic, _ := svc.GetTopicByID(ctx, topicID)
	if topic.Title != "标题" {
		t.Errorf("权限拒绝后标题不应改变, got %q", topic.Title)
	}
}

func TestDeleteTopicLogical(t *testing.T) {
	svc, _, viewRepo, _ := newTopicServiceForTest(t)
	ctx := context.Background()

	topicID, _ := svc.CreateTopic(ctx, &dto.CreateTopicRequest{
		Title:   "待删",
		Content: "正文",
		UserID:  1,
	})

	if err := svc.DeleteTopic(ctx, topicID, 2); !errors.Is(err, myErrors.ErrPermissionDenied) {
		t.Fatalf("非作者删除应返回 ErrPermissionDenied, got %v", err)
	}
	if err := svc.DeleteTopic(ctx, topicID, 1); err != nil {
		t.Fatalf("DeleteTopic: %v", err)
	}

	// 常规读取不可见
	if _, err := svc.GetTopicByID(ctx, topicID); !errors.Is(err, myErrors.ErrNotFound) {
		t.Errorf("删除后常规读取应返回 ErrNotFound, got %v", err)
	}

	// 行保留：审计点查仍能拿到原始内容
	raw, err := viewRepo.GetByIDIncludeDeleted(ctx, topicID)
	if err != nil {
		t.Fatalf("审计点查: %v", err)
	}
	if !raw.IsDeleted || raw.Title != "待删" {
		t.Errorf("逻辑删除应保留原始内容并置删除标记: %+v", raw)
	}

	// 事件历史照常可查
	eventList, err := svc.GetTopicEvents(ctx, topicID)
	if err != nil {
		t.Fatalf("删除后 GetTopicEvents: %v", err)
	}
	last := eventList[len(eventList)-1]
	if last.EventType != string(enums.TopicDeleted) {
		t.Errorf("末尾事件应为 deleted, got %s", last.EventType)
	}
}

func TestGetAllTopicsFiltersDeleted(t *testing.T) {
	svc, _, _, _ := newTopicServiceForTest(t)
	ctx := context.Background()

	keepID, _ := svc.CreateTopic(ctx, &dto.CreateTopicRequest{Title: "留", Content: "x", UserID: 1})
	dropID, _ := svc.CreateTopic(ctx, &dto.CreateTopicRequest{Title: "删", Content: "x", UserID: 1})
	if err := svc.DeleteTopic(ctx, dropID, 1); err != nil {
		t.Fatalf("DeleteTopic: %v", err)
	}

	topics, err := svc.GetAllTopics(ctx, 10, 0)
	if err != nil {
		t.Fatalf("GetAllTopics: %v", err)
	}
	if len(topics) != 1 || topics[0].ID != keepID {
		t.Fatalf("列表应只含未删除话题, got %+v", topics)
	}
}

func TestAddTagIdempotent(t *testing.T) {
	svc, _, _, tagRepo := newTopicServiceForTest(t)
	ctx := context.Background()

	topicID, _ := svc.CreateTopic(ctx, &dto.CreateTopicRequest{Title: "t", Content: "c", UserID: 1})

	for i := 0; i < 3; i++ {
		if err := svc.AddTagToTopic(ctx, &dto.TopicTagRequest{
			TopicID: topicID,
			TagName: "golang",
			UserID:  1,
		}); err != nil {
			t.Fatalf("AddTagToTopic #%d: %v", i, err)
		}
	}

	tags, err := tagRepo.GetTagsByTopicID(ctx, topicID)
	if err != nil {
		t.Fatalf("GetTagsByTopicID: %v", err)
	}
	if len(tags) != 1 {
		t.Fatalf("重复追加同名标签应只留一条关联, got %d", len(tags))
	}
	if len(tagRepo.byName) != 1 {
		t.Errorf("标签表应只有一行, got %d", len(tagRepo.byName))
	}
}

func TestRemoveTagFromTopic(t *testing.T) {
	svc, _, _, _ := newTopicServiceForTest(t)
	ctx := context.Background()

	topicID, _ := svc.CreateTopic(ctx, &dto.CreateTopicRequest{
		Title:   "t",
		Content: "c",
		Tags:    []string{"golang"},
		UserID:  1,
	})

	// 不存在的标签名
	err := svc.RemoveTagFromTopic(ctx, &dto.TopicTagRequest{
		TopicID: topicID,
		TagName: "no-such-tag",
		UserID:  1,
	})
	if !errors.Is(err, myErrors.ErrNotFound) {
		t.Fatalf("移除不存在的标签应返回 ErrNotFound, got %v", err)
	}

	if err := svc.RemoveTagFromTopic(ctx, &dto.TopicTagRequest{
		TopicID: topicID,
		TagName: "golang",
		UserID:  1,
	}); err != nil {
		t.Fatalf("RemoveTagFromTopic: %v", err)
	}

	topic, _ := svc.GetTopicByID(ctx, topicID)
	if len(topic.Tags) != 0 {
		t.Errorf("移除后话题不应再有标签, got %+v", topic.Tags)
	}

	// 事件里应有 tag_removed
	eventList, _ := svc.GetTopicEvents(ctx, topicID)
	last := eventList[len(eventList)-1]
	if last.EventType != string(enums.TopicTagRemoved) {
		t.Errorf("末尾事件应为 tag_removed, got %s", last.EventType)
	}
}
