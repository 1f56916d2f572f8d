package mysql

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tnote-app/tnote_service/core"
	"github.com/tnote-app/tnote_service/models/entities"
	"github.com/tnote-app/tnote_service/models/enums"
)

// PostEventRepository 定义回帖事件在 MySQL 中的追加与审计读取操作。
type PostEventRepository interface {
	// Append 追加一条回帖事件，语义与话题事件存储一致。
	Append(ctx context.Context, postID string, eventType enums.PostEventType, payload interface{}, userID int64) (*entities.PostEvent, error)

	// ListByPostID 返回指定回帖的全部事件，按 created_at 升序、id 决胜。
	ListByPostID(ctx context.Context, postID string) ([]*entities.PostEvent, error)
}

type postEventRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewPostEventRepository 是 postEventRepository 的构造函数。
func NewPostEventRepository(db *gorm.DB, logger *core.ZapLogger) PostEventRepository {
	return &postEventRepository{db: db, logger: logger}
}

// Append 实现回帖事件的追加写入。
func (r *postEventRepository) Append(ctx context.Context, postID string, eventType enums.PostEventType, payload interface{}, userID int64) (*entities.PostEvent, error) {
	dataBytes, err := json.Marshal(payload)
	if err != nil {
		r.logger.Error("序列化回帖事件负载失败",
			zap.Error(err),
			zap.String("postID", postID),
			zap.String("eventType", string(eventType)),
		)
		return nil, fmt.Errorf("序列化事件负载失败: %w", err)
	}

	event := &entities.PostEvent{
		PostID:    postID,
		EventType: eventType,
		EventData: string(dataBytes),
		UserID:    userID,
	}
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		r.logger.Error("追加回帖事件失败",
			zap.Error(err),
			zap.String("postID", postID),
			zap.String("eventType", string(eventType)),
		)
		return nil, translateStorageErr(err)
	}
	return event, nil
}

// ListByPostID 实现回帖事件历史的有序读取。
func (r *postEventRepository) ListByPostID(ctx context.Context, postID string) ([]*entities.PostEvent, error) {
	var eventList []*entities.PostEvent
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&eventList).Error
	if err != nil {
		r.logger.Error("查询回帖事件历史失败", zap.Error(err), zap.String("postID", postID))
		return nil, translateStorageErr(err)
	}
	return eventList, nil
}
