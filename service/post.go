package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tnote-app/tnote_service/constant"
	"github.com/tnote-app/tnote_service/core"
	"github.com/tnote-app/tnote_service/models/dto"
	"github.com/tnote-app/tnote_service/models/entities"
	"github.com/tnote-app/tnote_service/models/enums"
	"github.com/tnote-app/tnote_service/models/events"
	"github.com/tnote-app/tnote_service/models/kafkaevents"
	"github.com/tnote-app/tnote_service/models/vo"
	"github.com/tnote-app/tnote_service/mq/producer"
	"github.com/tnote-app/tnote_service/myErrors"
	"github.com/tnote-app/tnote_service/repo/mysql"
	"github.com/tnote-app/tnote_service/validation"
)

// PostService 定义回帖生命周期的核心业务逻辑。
// 写路径与 TopicService 相同：校验 -> 追加事件 -> 更新读模型，不包事务。
//
// 创建时不校验 topic_id / parent_post_id 的存在性（宽松约定，与来源一致）：
// 悬空的父引用不报错，由线程树构建时把该回帖提升为根帖兜住。
type PostService interface {
	// CreatePost 创建回帖，返回新回帖的聚合 ID。
	CreatePost(ctx context.Context, req *dto.CreatePostRequest) (string, error)

	// GetPostsByTopicID 平铺返回话题下未删除回帖，created_at 升序（阅读顺序）。
	GetPostsByTopicID(ctx context.Context, topicID string) ([]*vo.PostVO, error)

	// GetTopicThread 返回话题的线程树：根帖序列，各节点的 Replies 递归嵌套。
	GetTopicThread(ctx context.Context, topicID string) ([]*vo.PostVO, error)

	// GetRepliesByPostID 返回指定回帖的直接子回帖，created_at 升序。
	GetRepliesByPostID(ctx context.Context, parentPostID string) ([]*vo.PostVO, error)

	// UpdatePost 更新回帖正文，仅作者可操作。
	UpdatePost(ctx context.Context, req *dto.UpdatePostRequest) error

	// DeletePost 逻辑删除回帖，仅作者可操作。
	DeletePost(ctx context.Context, id string, userID int64) error

	// GetPostEvents 返回回帖的完整事件历史（审计读取）。
	GetPostEvents(ctx context.Context, id string) ([]*vo.EventVO, error)
}

type postService struct {
	eventRepo mysql.PostEventRepository
	viewRepo  mysql.PostViewRepository
	kafkaSvc  *producer.KafkaProducer // 可为 nil，表示未启用下游同步
	logger    *core.ZapLogger
}

// NewPostService 是 postService 的构造函数。
func NewPostService(
	eventRepo mysql.PostEventRepository,
	viewRepo mysql.PostViewRepository,
	kafkaSvc *producer.KafkaProducer,
	logger *core.ZapLogger,
) PostService {
	return &postService{
		eventRepo: eventRepo,
		viewRepo:  viewRepo,
		kafkaSvc:  kafkaSvc,
		logger:    logger,
	}
}

// CreatePost 实现回帖创建。
func (s *postService) CreatePost(ctx context.Context, req *dto.CreatePostRequest) (string, error) {
	if err := validation.Struct(req); err != nil {
		return "", err
	}

	postID := newAggregateID(constant.PostIDPrefix)
	now := time.Now()

	_, err := s.eventRepo.Append(ctx, postID, enums.PostCreated, events.PostCreatedData{
		Content:      req.Content,
		TopicID:      req.TopicID,
		ParentPostID: req.ParentPostID,
	}, req.UserID)
	if err != nil {
		return "", fmt.Errorf("追加回帖创建事件失败: %w", err)
	}

	view := &entities.PostView{
		ID:           postID,
		Content:      req.Content,
		TopicID:      req.TopicID,
		ParentPostID: req.ParentPostID,
		UserID:       req.UserID,
		IsDeleted:    false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.viewRepo.Upsert(ctx, view); err != nil {
		return "", fmt.Errorf("写入回帖读模型失败: %w", err)
	}

	s.logger.Info("回帖创建成功",
		zap.String("postID", postID),
		zap.String("topicID", req.TopicID),
		zap.Int64("userID", req.UserID),
	)
	s.notifyPostChanged(kafkaevents.ChangeCreated, view)
	return postID, nil
}

// GetPostsByTopicID 实现话题回帖的平铺读取。
func (s *postService) GetPostsByTopicID(ctx context.Context, topicID string) ([]*vo.PostVO, error) {
	views, err := s.viewRepo.GetByTopicID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	return vo.MapPostViewsToVOs(views), nil
}

// GetTopicThread 实现话题线程树的组装。
func (s *postService) GetTopicThread(ctx context.Context, topicID string) ([]*vo.PostVO, error) {
	flat, err := s.GetPostsByTopicID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	return BuildThreadTree(flat), nil
}

// GetRepliesByPostID 实现直接子回帖的读取。
func (s *postService) GetRepliesByPostID(ctx context.Context, parentPostID string) ([]*vo.PostVO, error) {
	views, err := s.viewRepo.GetReplies(ctx, parentPostID)
	if err != nil {
		return nil, err
	}
	return vo.MapPostViewsToVOs(views), nil
}

// UpdatePost 实现回帖更新。
func (s *postService) UpdatePost(ctx context.Context, req *dto.UpdatePostRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}

	existing, err := s.viewRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if existing.UserID != req.UserID {
		return myErrors.ErrPermissionDenied
	}

	now := time.Now()

	_, err = s.eventRepo.Append(ctx, req.ID, enums.PostUpdated, events.PostUpdatedData{
		Content: req.Content,
	}, req.UserID)
	if err != nil {
		return fmt.Errorf("追加回帖更新事件失败: %w", err)
	}

	view := &entities.PostView{
		ID:           existing.ID,
		Content:      req.Content,
		TopicID:      existing.TopicID,
		ParentPostID: existing.ParentPostID,
		UserID:       existing.UserID,
		IsDeleted:    existing.IsDeleted,
		CreatedAt:    existing.CreatedAt,
		UpdatedAt:    now,
	}
	if err := s.viewRepo.Upsert(ctx, view); err != nil {
		return fmt.Errorf("更新回帖读模型失败: %w", err)
	}

	s.logger.Info("回帖更新成功", zap.String("postID", req.ID), zap.Int64("userID", req.UserID))
	s.notifyPostChanged(kafkaevents.ChangeUpdated, view)
	return nil
}

// DeletePost 实现回帖的逻辑删除。
func (s *postService) DeletePost(ctx context.Context, id string, userID int64) error {
	existing, err := s.viewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return myErrors.ErrPermissionDenied
	}

	now := time.Now()

	_, err = s.eventRepo.Append(ctx, id, enums.PostDeleted, events.PostDeletedData{
		Reason: events.DeleteReasonUser,
	}, userID)
	if err != nil {
		return fmt.Errorf("追加回帖删除事件失败: %w", err)
	}

	view := &entities.PostView{
		ID:           existing.ID,
		Content:      existing.Content,
		TopicID:      existing.TopicID,
		ParentPostID: existing.ParentPostID,
		UserID:       existing.UserID,
		IsDeleted:    true,
		CreatedAt:    existing.CreatedAt,
		UpdatedAt:    now,
	}
	if err := s.viewRepo.Upsert(ctx, view); err != nil {
		return fmt.Errorf("逻辑删除回帖读模型失败: %w", err)
	}

	s.logger.Info("回帖已逻辑删除", zap.String("postID", id), zap.Int64("userID", userID))
	s.notifyPostChanged(kafkaevents.ChangeDeleted, view)
	return nil
}

// GetPostEvents 实现回帖事件历史的审计读取。
func (s *postService) GetPostEvents(ctx context.Context, id string) ([]*vo.EventVO, error) {
	eventList, err := s.eventRepo.ListByPostID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(eventList) == 0 {
		return nil, myErrors.ErrNotFound
	}
	return vo.MapPostEventsToVOs(eventList), nil
}

// notifyPostChanged 异步下发回帖变更事件，失败只记日志不影响主流程。
func (s *postService) notifyPostChanged(changeType string, view *entities.PostView) {
	if s.kafkaSvc == nil {
		return
	}
	data := kafkaevents.PostData{
		ID:           view.ID,
		Content:      view.Content,
		TopicID:      view.TopicID,
		ParentPostID: view.ParentPostID,
		UserID:       view.UserID,
		IsDeleted:    view.IsDeleted,
		CreatedAt:    view.CreatedAt,
		UpdatedAt:    view.UpdatedAt,
	}
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.kafkaSvc.SendPostChangedEvent(bgCtx, changeType, data); err != nil {
			s.logger.Error("下发回帖变更事件失败",
				zap.Error(err),
				zap.String("postID", data.ID),
				zap.String("changeType", changeType),
			)
		}
	}()
}

// BuildThreadTree 把平铺的回帖序列组装成线程树，返回根帖序列。
//
// 单趟遍历：先建 ID 到节点的索引，再按输入顺序归位。
// 有父引用且父在输入集合内的，挂到父节点的 Replies；
// 没有父引用，或父不在输入集合内的（被过滤、或引用悬空），提升为根帖。
// 悬空引用提升为根是刻意保留的行为——宁可展示错位也不丢帖，渲染端依赖这一点。
// Replies 内与根序列的顺序都沿用输入顺序（调用方已按 created_at 升序排好）。
func BuildThreadTree(posts []*vo.PostVO) []*vo.PostVO {
	byID := make(map[string]*vo.PostVO, len(posts))
	for _, post := range posts {
		if post.Replies == nil {
			post.Replies = []*vo.PostVO{}
		}
		byID[post.ID] = post
	}

	roots := make([]*vo.PostVO, 0, len(posts))
	for _, post := range posts {
		if post.ParentPostID != nil {
			if parent, ok := byID[*post.ParentPostID]; ok {
				parent.Replies = append(parent.Replies, post)
				continue
			}
		}
		roots = append(roots, post)
	}
	return roots
}
