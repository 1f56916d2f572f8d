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

// TopicEventRepository 定义话题事件在 MySQL 中的追加与审计读取操作。
// 事件存储是"哑"基础设施：这里不做任何业务校验，合法性由服务层保证。
type TopicEventRepository interface {
	// Append 追加一条话题事件。
	// - payload 会被序列化为 JSON 写入 event_data 列。
	// - id 与 created_at 由存储层分配，写入成功后回填到返回的实体上。
	// - 除底层存储错误外不会失败。
	Append(ctx context.Context, topicID string, eventType enums.TopicEventType, payload interface{}, userID int64) (*entities.TopicEvent, error)

	// ListByTopicID 返回指定话题的全部事件，按 created_at 升序、id 决胜。
	// - 这是该话题的权威历史，逻辑删除不影响此读取。
	ListByTopicID(ctx context.Context, topicID string) ([]*entities.TopicEvent, error)
}

type topicEventRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewTopicEventRepository 是 topicEventRepository 的构造函数。
func NewTopicEventRepository(db *gorm.DB, logger *core.ZapLogger) TopicEventRepository {
	return &topicEventRepository{db: db, logger: logger}
}

// Append 实现话题事件的追加写入。
func (r *topicEventRepository) Append(ctx context.Context, topicID string, eventType enums.TopicEventType, payload interface{}, userID int64) (*entities.TopicEvent, error) {
	dataBytes, err := json.Marshal(payload)
	if err != nil {
		r.logger.Error("序列化话题事件负载失败",
			zap.Error(err),
			zap.String("topicID", topicID),
			zap.String("eventType", string(eventType)),
		)
		return nil, fmt.Errorf("序列化事件负载失败: %w", err)
	}

	event := &entities.TopicEvent{
		TopicID:   topicID,
		EventType: eventType,
		EventData: string(dataBytes),
		UserID:    userID,
	}
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		r.logger.Error("追加话题事件失败",
			zap.Error(err),
			zap.String("topicID", topicID),
			zap.String("eventType", string(eventType)),
		)
		return nil, translateStorageErr(err)
	}
	return event, nil
}

// ListByTopicID 实现话题事件历史的有序读取。
func (r *topicEventRepository) ListByTopicID(ctx context.Context, topicID string) ([]*entities.TopicEvent, error) {
	var eventList []*entities.TopicEvent
	err := r.db.WithContext(ctx).
		Where("topic_id = ?", topicID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&eventList).Error
	if err != nil {
		r.logger.Error("查询话题事件历史失败", zap.Error(err), zap.String("topicID", topicID))
		return nil, translateStorageErr(err)
	}
	return eventList, nil
}
