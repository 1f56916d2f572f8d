package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tnote-app/tnote_service/models/dto"
	"github.com/tnote-app/tnote_service/models/vo"
	"github.com/tnote-app/tnote_service/myErrors"
)

func newPostServiceForTest(t *testing.T) (PostService, *fakePostEventRepo, *fakePostViewRepo) {
	t.Helper()
	eventRepo := newFakePostEventRepo()
	viewRepo := newFakePostViewRepo()
	svc := NewPostService(eventRepo, viewRepo, nil, newTestLogger(t))
	return svc, eventRepo, viewRepo
}

func TestCreatePostRoundTrip(t *testing.T) {
	svc, _, _ := newPostServiceForTest(t)
	ctx := context.Background()

	postID, err := svc.CreatePost(ctx, &dto.CreatePostRequest{
		Content: "第一条回帖",
		TopicID: "topic_x",
		UserID:  1,
	})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if !strings.HasPrefix(postID, "post_") {
		t.Fatalf("回帖 ID 前缀不对: %s", postID)
	}

	posts, err := svc.GetPostsByTopicID(ctx, "topic_x")
	if err != nil {
		t.Fatalf("GetPostsByTopicID: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("回帖数 = %d, want 1", len(posts))
	}
	got := posts[0]
	if got.ID != postID || got.Content != "第一条回帖" || got.ParentPostID != nil {
		t.Errorf("回帖内容不一致: %+v", got)
	}
	if !got.CreatedAt.Equal(got.UpdatedAt) {
		t.Errorf("新建回帖 created_at 应等于 updated_at")
	}
}

func TestCreatePostDanglingReferencesAllowed(t *testing.T) {
	svc, _, _ := newPostServiceForTest(t)
	ctx := context.Background()

	// topic_id 和 parent_post_id 都不做存在性校验
	ghostParent := "post_ghost"
	postID, err := svc.CreatePost(ctx, &dto.CreatePostRequest{
		Content:      "挂在幽灵父帖下",
		TopicID:      "topic_never_created",
		ParentPostID: &ghostParent,
		UserID:       1,
	})
	if err != nil {
		t.Fatalf("悬空引用不应导致创建失败: %v", err)
	}

	// 线程树把悬空引用的回帖提升为根帖
	thread, err := svc.GetTopicThread(ctx, "topic_never_created")
	if err != nil {
		t.Fatalf("GetTopicThread: %v", err)
	}
	if len(thread) != 1 || thread[0].ID != postID {
		t.Fatalf("悬空父引用的回帖应作为根帖出现, got %+v", thread)
	}
}

func TestCreatePostValidation(t *testing.T) {
	svc, eventRepo, _ := newPostServiceForTest(t)

	_, err := svc.CreatePost(context.Background(), &dto.CreatePostRequest{
		Content: "",
		TopicID: "topic_x",
		UserID:  1,
	})
	if !errors.Is(err, myErrors.ErrValidation) {
		t.Fatalf("空正文应返回校验错误, got %v", err)
	}
	if len(eventRepo.events) != 0 {
		t.Errorf("校验失败不应写入事件")
	}
}

func TestUpdatePostPermissionDenied(t *testing.T) {
	svc, _, _ := newPostServiceForTest(t)
	ctx := context.Background()

	postID, _ := svc.CreatePost(ctx, &dto.CreatePostRequest{
		Content: "原文",
		TopicID: "topic_x",
		UserID:  1,
	})

	err := svc.UpdatePost(ctx, &dto.UpdatePostRequest{
		ID:      postID,
		Content: "篡改",
		UserID:  2,
	})
	if !errors.Is(err, myErrors.ErrPermissionDenied) {
		t.Fatalf("非作者更新应返回 ErrPermissionDenied, got %v", err)
	}

	posts, _ := svc.GetPostsByTopicID(ctx, "topic_x")
	if posts[0].Content != "原文" {
		t.Errorf("权限拒绝后正文不应改变, got %q", posts[0].Content)
	}
}

func TestDeletePostFiltering(t *testing.T) {
	svc, _, viewRepo := newPostServiceForTest(t)
	ctx := context.Background()

	rootID, _ := svc.CreatePost(ctx, &dto.CreatePostRequest{
		Content: "根帖",
		TopicID: "topic_x",
		UserID:  1,
	})
	childID, _ := svc.CreatePost(ctx, &dto.CreatePostRequest{
		Content:      "子回帖",
		TopicID:      "topic_x",
		ParentPostID: &rootID,
		UserID:       2,
	})

	if err := svc.DeletePost(ctx, rootID, 1); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}

	// 平铺读取里根帖消失，子回帖不级联删除
	posts, _ := svc.GetPostsByTopicID(ctx, "topic_x")
	if len(posts) != 1 || posts[0].ID != childID {
		t.Fatalf("删除不应级联到子回帖, got %+v", posts)
	}

	// 父帖被过滤后，子回帖在线程树中提升为根帖
	thread, _ := svc.GetTopicThread(ctx, "topic_x")
	if len(thread) != 1 || thread[0].ID != childID {
		t.Fatalf("孤儿子回帖应提升为根帖, got %+v", thread)
	}

	// 审计点查仍能看到被删的行
	raw, err := viewRepo.GetByIDIncludeDeleted(ctx, rootID)
	if err != nil || !raw.IsDeleted {
		t.Errorf("逻辑删除应保留行: %+v, err=%v", raw, err)
	}

	// 事件历史照常可查
	if _, err := svc.GetPostEvents(ctx, rootID); err != nil {
		t.Errorf("删除后 GetPostEvents: %v", err)
	}
}

func TestGetRepliesDirectOnly(t *testing.T) {
	svc, _, _ := newPostServiceForTest(t)
	ctx := context.Background()

	rootID, _ := svc.CreatePost(ctx, &dto.CreatePostRequest{Content: "根", TopicID: "t", UserID: 1})
	childID, _ := svc.CreatePost(ctx, &dto.CreatePostRequest{Content: "子", TopicID: "t", ParentPostID: &rootID, UserID: 1})
	if _, err := svc.CreatePost(ctx, &dto.CreatePostRequest{Content: "孙", TopicID: "t", ParentPostID: &childID, UserID: 1}); err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	replies, err := svc.GetRepliesByPostID(ctx, rootID)
	if err != nil {
		t.Fatalf("GetRepliesByPostID: %v", err)
	}
	// 只返回直接子回帖，不递归
	if len(replies) != 1 || replies[0].ID != childID {
		t.Fatalf("应只返回直接子回帖, got %+v", replies)
	}
}

func TestGetPostEventsUnknownID(t *testing.T) {
	svc, _, _ := newPostServiceForTest(t)

	_, err := svc.GetPostEvents(context.Background(), "post_never_existed")
	if !errors.Is(err, myErrors.ErrNotFound) {
		t.Fatalf("从未存在的回帖应返回 ErrNotFound, got %v", err)
	}
}

// --- 线程树构建 ---

func flatPost(id string, parent *string) *vo.PostVO {
	return &vo.PostVO{ID: id, ParentPostID: parent}
}

func countNodes(nodes []*vo.PostVO) int {
	total := 0
	for _, n := range nodes {
		total += 1 + countNodes(n.Replies)
	}
	return total
}

func TestBuildThreadTreeNesting(t *testing.T) {
	a := "a"
	b := "b"
	flat := []*vo.PostVO{
		flatPost("a", nil),
		flatPost("b", &a),
		flatPost("c", &a),
		flatPost("d", &b),
		flatPost("e", nil),
	}

	roots := BuildThreadTree(flat)

	if len(roots) != 2 {
		t.Fatalf("根帖数 = %d, want 2", len(roots))
	}
	if roots[0].ID != "a" || roots[1].ID != "e" {
		t.Errorf("根帖顺序应沿用输入顺序: %s, %s", roots[0].ID, roots[1].ID)
	}
	if len(roots[0].Replies) != 2 {
		t.Fatalf("a 的直接回复数 = %d, want 2", len(roots[0].Replies))
	}
	if roots[0].Replies[0].ID != "b" || roots[0].Replies[1].ID != "c" {
		t.Errorf("回复顺序应沿用输入顺序")
	}
	if len(roots[0].Replies[0].Replies) != 1 || roots[0].Replies[0].Replies[0].ID != "d" {
		t.Errorf("d 应嵌套在 b 下")
	}

	// 守恒：不丢帖也不复制帖
	if got := countNodes(roots); got != len(flat) {
		t.Errorf("树节点总数 = %d, want %d", got, len(flat))
	}
}

func TestBuildThreadTreeDanglingParentPromoted(t *testing.T) {
	ghost := "ghost"
	a := "a"
	flat := []*vo.PostVO{
		flatPost("a", nil),
		flatPost("b", &ghost), // 父引用悬空
		flatPost("c", &a),
	}

	roots := BuildThreadTree(flat)

	if len(roots) != 2 {
		t.Fatalf("根帖数 = %d, want 2 (悬空引用提升为根)", len(roots))
	}
	if roots[0].ID != "a" || roots[1].ID != "b" {
		t.Errorf("根帖应为 a 和 b, got %s, %s", roots[0].ID, roots[1].ID)
	}
	if got := countNodes(roots); got != len(flat) {
		t.Errorf("树节点总数 = %d, want %d", got, len(flat))
	}
}

func TestBuildThreadTreeEmpty(t *testing.T) {
	roots := BuildThreadTree(nil)
	if len(roots) != 0 {
		t.Fatalf("空输入应得到空树, got %d", len(roots))
	}
}
