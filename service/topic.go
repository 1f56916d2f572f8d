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

// TopicService 定义话题生命周期的核心业务逻辑。
//
// 写路径统一为：校验 -> 追加事件 -> 更新读模型 ->（创建时）维护标签关联。
// 这几步没有包在同一个事务里，而是沿用来源系统的弱一致模型：
// 中途失败可能留下"事件已写、视图未更"或"话题已建、标签未全挂"的状态，
// 错误原样上抛，不做补偿。这是 v1 明确接受的取舍，不是疏漏。
type TopicService interface {
	// CreateTopic 创建话题并挂接标签，返回新话题的聚合 ID。
	CreateTopic(ctx context.Context, req *dto.CreateTopicRequest) (string, error)

	// GetTopicByID 返回未删除话题及其标签；未命中返回 myErrors.ErrNotFound。
	GetTopicByID(ctx context.Context, id string) (*vo.TopicVO, error)

	// GetAllTopics 按创建时间倒序分页返回未删除话题，标签逐个解析。
	GetAllTopics(ctx context.Context, limit, offset int) ([]*vo.TopicVO, error)

	// UpdateTopic 更新话题的标题/正文，仅作者可操作。
	UpdateTopic(ctx context.Context, req *dto.UpdateTopicRequest) error

	// DeleteTopic 逻辑删除话题，仅作者可操作。行保留，按 ID 的审计读取不受影响。
	DeleteTopic(ctx context.Context, id string, userID int64) error

	// AddTagToTopic 为话题追加标签（get-or-create），仅作者可操作。
	AddTagToTopic(ctx context.Context, req *dto.TopicTagRequest) error

	// RemoveTagFromTopic 移除话题标签，仅作者可操作。标签不存在时返回 ErrNotFound。
	RemoveTagFromTopic(ctx context.Context, req *dto.TopicTagRequest) error

	// GetTopicEvents 返回话题的完整事件历史（审计读取，已删话题同样可查）。
	GetTopicEvents(ctx context.Context, id string) ([]*vo.EventVO, error)
}

type topicService struct {
	eventRepo mysql.TopicEventRepository
	viewRepo  mysql.TopicViewRepository
	tagRepo   mysql.TagRepository
	kafkaSvc  *producer.KafkaProducer // 可为 nil，表示未启用下游同步
	logger    *core.ZapLogger
}

// NewTopicService 是 topicService 的构造函数，依赖注入便于测试替换。
func NewTopicService(
	eventRepo mysql.TopicEventRepository,
	viewRepo mysql.TopicViewRepository,
	tagRepo mysql.TagRepository,
	kafkaSvc *producer.KafkaProducer,
	logger *core.ZapLogger,
) TopicService {
	return &topicService{
		eventRepo: eventRepo,
		viewRepo:  viewRepo,
		tagRepo:   tagRepo,
		kafkaSvc:  kafkaSvc,
		logger:    logger,
	}
}

// CreateTopic 实现话题创建。
func (s *topicService) CreateTopic(ctx context.Context, req *dto.CreateTopicRequest) (string, error) {
	if err := validation.Struct(req); err != nil {
		return "", err
	}

	topicID := newAggregateID(constant.TopicIDPrefix)
	now := time.Now()

	// 1. 追加 created 事件
	_, err := s.eventRepo.Append(ctx, topicID, enums.TopicCreated, events.TopicCreatedData{
		Title:   req.Title,
		Content: req.Content,
	}, req.UserID)
	if err != nil {
		return "", fmt.Errorf("追加话题创建事件失败: %w", err)
	}

	// 2. 写入读模型
	view := &entities.TopicView{
		ID:        topicID,
		Title:     req.Title,
		Content:   req.Content,
		UserID:    req.UserID,
		IsDeleted: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.viewRepo.Upsert(ctx, view); err != nil {
		return "", fmt.Errorf("写入话题读模型失败: %w", err)
	}

	// 3. 逐个挂接标签。中途失败时话题保持已创建、已挂的标签保留，错误上抛。
	for _, tagName := range req.Tags {
		tag, tagErr := s.tagRepo.GetOrCreate(ctx, tagName)
		if tagErr != nil {
			return "", fmt.Errorf("创建标签 %q 失败: %w", tagName, tagErr)
		}
		if linkErr := s.tagRepo.AddTopicTag(ctx, topicID, tag.ID); linkErr != nil {
			return "", fmt.Errorf("关联标签 %q 失败: %w", tagName, linkErr)
		}
		if _, evErr := s.eventRepo.Append(ctx, topicID, enums.TopicTagAdded, events.TopicTagData{
			TagID:   tag.ID,
			TagName: tag.Name,
		}, req.UserID); evErr != nil {
			return "", fmt.Errorf("追加标签事件失败: %w", evErr)
		}
	}

	s.logger.Info("话题创建成功",
		zap.String("topicID", topicID),
		zap.Int64("userID", req.UserID),
		zap.Int("tags", len(req.Tags)),
	)

	s.notifyTopicChanged(kafkaevents.ChangeCreated, view, req.Tags)
	return topicID, nil
}

// GetTopicByID 实现话题详情读取，读路径不经过事件表。
func (s *topicService) GetTopicByID(ctx context.Context, id string) (*vo.TopicVO, error) {
	view, err := s.viewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tags, err := s.tagRepo.GetTagsByTopicID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("解析话题标签失败: %w", err)
	}
	return vo.MapTopicViewToVO(view, tags), nil
}

// GetAllTopics 实现话题列表读取。
// 标签解析是逐话题的 N+1 查询，在当前规模下可接受；若列表量级上来，
// 应改为按话题 ID 批量联查。
func (s *topicService) GetAllTopics(ctx context.Context, limit, offset int) ([]*vo.TopicVO, error) {
	if limit <= 0 {
		limit = constant.DefaultTopicPageSize
	}
	if limit > constant.MaxTopicPageSize {
		limit = constant.MaxTopicPageSize
	}
	if offset < 0 {
		offset = 0
	}

	views, err := s.viewRepo.GetAll(ctx, limit, offset)
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

// UpdateTopic 实现话题更新。
func (s *topicService) UpdateTopic(ctx context.Context, req *dto.UpdateTopicRequest) error {
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

	// updated 事件只携带实际变更的字段
	_, err = s.eventRepo.Append(ctx, req.ID, enums.TopicUpdated, events.TopicUpdatedData{
		Title:   req.Title,
		Content: req.Content,
	}, req.UserID)
	if err != nil {
		return fmt.Errorf("追加话题更新事件失败: %w", err)
	}

	// 未指定的字段保留原值
	title := existing.Title
	if req.Title != nil {
		title = *req.Title
	}
	content := existing.Content
	if req.Content != nil {
		content = *req.Content
	}
	view := &entities.TopicView{
		ID:        existing.ID,
		Title:     title,
		Content:   content,
		UserID:    existing.UserID,
		IsDeleted: existing.IsDeleted,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: now,
	}
	if err := s.viewRepo.Upsert(ctx, view); err != nil {
		return fmt.Errorf("更新话题读模型失败: %w", err)
	}

	s.logger.Info("话题更新成功", zap.String("topicID", req.ID), zap.Int64("userID", req.UserID))
	s.notifyTopicChanged(kafkaevents.ChangeUpdated, view, nil)
	return nil
}

// DeleteTopic 实现话题的逻辑删除。
func (s *topicService) DeleteTopic(ctx context.Context, id string, userID int64) error {
	existing, err := s.viewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return myErrors.ErrPermissionDenied
	}

	now := time.Now()

	_, err = s.eventRepo.Append(ctx, id, enums.TopicDeleted, events.TopicDeletedData{
		Reason: events.DeleteReasonUser,
	}, userID)
	if err != nil {
		return fmt.Errorf("追加话题删除事件失败: %w", err)
	}

	// 仅翻转删除标记，其余字段原样保留，供审计读取
	view := &entities.TopicView{
		ID:        existing.ID,
		Title:     existing.Title,
		Content:   existing.Content,
		UserID:    existing.UserID,
		IsDeleted: true,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: now,
	}
	if err := s.viewRepo.Upsert(ctx, view); err != nil {
		return fmt.Errorf("逻辑删除话题读模型失败: %w", err)
	}

	s.logger.Info("话题已逻辑删除", zap.String("topicID", id), zap.Int64("userID", userID))
	s.notifyTopicChanged(kafkaevents.ChangeDeleted, view, nil)
	return nil
}

// AddTagToTopic 实现话题标签追加。
func (s *topicService) AddTagToTopic(ctx context.Context, req *dto.TopicTagRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}

	existing, err := s.viewRepo.GetByID(ctx, req.TopicID)
	if err != nil {
		return err
	}
	if existing.UserID != req.UserID {
		return myErrors.ErrPermissionDenied
	}

	tag, err := s.tagRepo.GetOrCreate(ctx, req.TagName)
	if err != nil {
		return fmt.Errorf("创建标签 %q 失败: %w", req.TagName, err)
	}
	if err := s.tagRepo.AddTopicTag(ctx, req.TopicID, tag.ID); err != nil {
		return fmt.Errorf("关联标签 %q 失败: %w", req.TagName, err)
	}
	if _, err := s.eventRepo.Append(ctx, req.TopicID, enums.TopicTagAdded, events.TopicTagData{
		TagID:   tag.ID,
		TagName: tag.Name,
	}, req.UserID); err != nil {
		return fmt.Errorf("追加标签事件失败: %w", err)
	}

	s.logger.Info("话题标签已追加", zap.String("topicID", req.TopicID), zap.String("tag", req.TagName))
	return nil
}

// RemoveTagFromTopic 实现话题标签移除。
func (s *topicService) RemoveTagFromTopic(ctx context.Context, req *dto.TopicTagRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}

	existing, err := s.viewRepo.GetByID(ctx, req.TopicID)
	if err != nil {
		return err
	}
	if existing.UserID != req.UserID {
		return myErrors.ErrPermissionDenied
	}

	tag, err := s.tagRepo.GetByName(ctx, req.TagName)
	if err != nil {
		return err
	}
	if err := s.tagRepo.RemoveTopicTag(ctx, req.TopicID, tag.ID); err != nil {
		return fmt.Errorf("解除标签 %q 关联失败: %w", req.TagName, err)
	}
	if _, err := s.eventRepo.Append(ctx, req.TopicID, enums.TopicTagRemoved, events.TopicTagData{
		TagID:   tag.ID,
		TagName: tag.Name,
	}, req.UserID); err != nil {
		return fmt.Errorf("追加标签移除事件失败: %w", err)
	}

	s.logger.Info("话题标签已移除", zap.String("topicID", req.TopicID), zap.String("tag", req.TagName))
	return nil
}

// GetTopicEvents 实现话题事件历史的审计读取。
func (s *topicService) GetTopicEvents(ctx context.Context, id string) ([]*vo.EventVO, error) {
	eventList, err := s.eventRepo.ListByTopicID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(eventList) == 0 {
		// 事件表里一条都没有，说明聚合从未存在过
		return nil, myErrors.ErrNotFound
	}
	return vo.MapTopicEventsToVOs(eventList), nil
}

// notifyTopicChanged 异步下发话题变更事件，失败只记日志不影响主流程。
func (s *topicService) notifyTopicChanged(changeType string, view *entities.TopicView, tags []string) {
	if s.kafkaSvc == nil {
		return
	}
	data := kafkaevents.TopicData{
		ID:        view.ID,
		Title:     view.Title,
		Content:   view.Content,
		UserID:    view.UserID,
		IsDeleted: view.IsDeleted,
		Tags:      tags,
		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
	}
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.kafkaSvc.SendTopicChangedEvent(bgCtx, changeType, data); err != nil {
			s.logger.Error("下发话题变更事件失败",
				zap.Error(err),
				zap.String("topicID", data.ID),
				zap.String("changeType", changeType),
			)
		}
	}()
}
