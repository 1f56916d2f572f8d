package service

import (
	"encoding/json"
	"fmt"

	"github.com/tnote-app/tnote_service/models/entities"
	"github.com/tnote-app/tnote_service/models/enums"
	"github.com/tnote-app/tnote_service/models/events"
)

// 本文件提供事件序列到读模型的纯折叠（replay）。
// 热路径上的读模型由写入时增量维护，这里的折叠只服务于恢复与回填：
// 读模型损坏或漂移时，可以对单个聚合重放事件重建当前状态。

// ReduceTopicEvents 把一个话题的有序事件序列折叠为读模型状态，
// 并返回折叠后仍挂在话题上的标签名（按首次添加的顺序）。
// 序列必须按 created_at 升序、id 决胜排列（即事件仓库的返回顺序）。
// 序列为空或不以 created 事件开头时返回错误。
func ReduceTopicEvents(eventList []*entities.TopicEvent) (*entities.TopicView, []string, error) {
	if len(eventList) == 0 {
		return nil, nil, fmt.Errorf("事件序列为空，无法折叠")
	}

	var view *entities.TopicView
	var tags []string

	for _, e := range eventList {
		switch e.EventType {
		case enums.TopicCreated:
			var data events.TopicCreatedData
			if err := json.Unmarshal([]byte(e.EventData), &data); err != nil {
				return nil, nil, fmt.Errorf("解析事件 %d 的负载失败: %w", e.ID, err)
			}
			view = &entities.TopicView{
				ID:        e.TopicID,
				Title:     data.Title,
				Content:   data.Content,
				UserID:    e.UserID,
				IsDeleted: false,
				CreatedAt: e.CreatedAt,
				UpdatedAt: e.CreatedAt,
			}

		case enums.TopicUpdated:
			if view == nil {
				return nil, nil, fmt.Errorf("事件 %d: 历史未以 created 开头", e.ID)
			}
			var data events.TopicUpdatedData
			if err := json.Unmarshal([]byte(e.EventData), &data); err != nil {
				return nil, nil, fmt.Errorf("解析事件 %d 的负载失败: %w", e.ID, err)
			}
			if data.Title != nil {
				view.Title = *data.Title
			}
			if data.Content != nil {
				view.Content = *data.Content
			}
			view.UpdatedAt = e.CreatedAt

		case enums.TopicDeleted:
			if view == nil {
				return nil, nil, fmt.Errorf("事件 %d: 历史未以 created 开头", e.ID)
			}
			view.IsDeleted = true
			view.UpdatedAt = e.CreatedAt

		case enums.TopicTagAdded:
			if view == nil {
				return nil, nil, fmt.Errorf("事件 %d: 历史未以 created 开头", e.ID)
			}
			var data events.TopicTagData
			if err := json.Unmarshal([]byte(e.EventData), &data); err != nil {
				return nil, nil, fmt.Errorf("解析事件 %d 的负载失败: %w", e.ID, err)
			}
			if !containsString(tags, data.TagName) {
				tags = append(tags, data.TagName)
			}

		case enums.TopicTagRemoved:
			if view == nil {
				return nil, nil, fmt.Errorf("事件 %d: 历史未以 created 开头", e.ID)
			}
			var data events.TopicTagData
			if err := json.Unmarshal([]byte(e.EventData), &data); err != nil {
				return nil, nil, fmt.Errorf("解析事件 %d 的负载失败: %w", e.ID, err)
			}
			tags = removeString(tags, data.TagName)

		default:
			return nil, nil, fmt.Errorf("事件 %d: 未知的事件类型 %q", e.ID, e.EventType)
		}
	}

	if view == nil {
		return nil, nil, fmt.Errorf("历史中缺少 created 事件")
	}
	return view, tags, nil
}

// ReducePostEvents 把一个回帖的有序事件序列折叠为读模型状态。
func ReducePostEvents(eventList []*entities.PostEvent) (*entities.PostView, error) {
	if len(eventList) == 0 {
		return nil, fmt.Errorf("事件序列为空，无法折叠")
	}

	var view *entities.PostView

	for _, e := range eventList {
		switch e.EventType {
		case enums.PostCreated:
			var data events.PostCreatedData
			if err := json.Unmarshal([]byte(e.EventData), &data); err != nil {
				return nil, fmt.Errorf("解析事件 %d 的负载失败: %w", e.ID, err)
			}
			view = &entities.PostView{
				ID:           e.PostID,
				Content:      data.Content,
				TopicID:      data.TopicID,
				ParentPostID: data.ParentPostID,
				UserID:       e.UserID,
				IsDeleted:    false,
				CreatedAt:    e.CreatedAt,
				UpdatedAt:    e.CreatedAt,
			}

		case enums.PostUpdated:
			if view == nil {
				return nil, fmt.Errorf("事件 %d: 历史未以 created 开头", e.ID)
			}
			var data events.PostUpdatedData
			if err := json.Unmarshal([]byte(e.EventData), &data); err != nil {
				return nil, fmt.Errorf("解析事件 %d 的负载失败: %w", e.ID, err)
			}
			view.Content = data.Content
			view.UpdatedAt = e.CreatedAt

		case enums.PostDeleted:
			if view == nil {
				return nil, fmt.Errorf("事件 %d: 历史未以 created 开头", e.ID)
			}
			view.IsDeleted = true
			view.UpdatedAt = e.CreatedAt

		default:
			return nil, fmt.Errorf("事件 %d: 未知的事件类型 %q", e.ID, e.EventType)
		}
	}

	if view == nil {
		return nil, fmt.Errorf("历史中缺少 created 事件")
	}
	return view, nil
}

func containsString(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}

func removeString(list []string, target string) []string {
	result := list[:0]
	for _, item := range list {
		if item != target {
			result = append(result, item)
		}
	}
	return result
}
