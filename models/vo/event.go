package vo

import (
	"encoding/json"
	"time"

	"github.com/tnote-app/tnote_service/models/entities"
)

// EventVO 事件审计读取的响应结构
// - 话题与回帖事件共用；EventData 原样透出 JSON 负载。
type EventVO struct {
	ID          uint64          `json:"id"`
	AggregateID string          `json:"aggregate_id"`
	EventType   string          `json:"event_type"`
	EventData   json.RawMessage `json:"event_data"`
	UserID      int64           `json:"user_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// MapTopicEventsToVOs 将话题事件列表转换为审计响应。
func MapTopicEventsToVOs(eventList []*entities.TopicEvent) []*EventVO {
	result := make([]*EventVO, 0, len(eventList))
	for _, e := range eventList {
		result = append(result, &EventVO{
			ID:          e.ID,
			AggregateID: e.TopicID,
			EventType:   string(e.EventType),
			EventData:   json.RawMessage(e.EventData),
			UserID:      e.UserID,
			CreatedAt:   e.CreatedAt,
		})
	}
	return result
}

// MapPostEventsToVOs 将回帖事件列表转换为审计响应。
func MapPostEventsToVOs(eventList []*entities.PostEvent) []*EventVO {
	result := make([]*EventVO, 0, len(eventList))
	for _, e := range eventList {
		result = append(result, &EventVO{
			ID:          e.ID,
			AggregateID: e.PostID,
			EventType:   string(e.EventType),
			EventData:   json.RawMessage(e.EventData),
			UserID:      e.UserID,
			CreatedAt:   e.CreatedAt,
		})
	}
	return result
}
