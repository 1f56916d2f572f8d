package mysql

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tnote-app/tnote_service/core"
	"github.com/tnote-app/tnote_service/models/entities"
	"github.com/tnote-app/tnote_service/myErrors"
)

// TopicViewRepository 定义话题读模型在 MySQL 中的持久化操作。
// 读模型只关心"当前状态"，历史一律去事件表查。
type TopicViewRepository interface {
	// Upsert 写入话题的当前状态。
	// - 主键已存在时更新可变列（title/content/is_deleted/updated_at），保留 created_at；
	//   不存在时整行插入。
	// - 这是 last-writer-wins 合并：没有乐观并发标记，并发写互相覆盖。
	Upsert(ctx context.Context, view *entities.TopicView) error

	// GetByID 按 ID 点查，只返回未逻辑删除的行。
	// - 未命中返回 myErrors.ErrNotFound。
	GetByID(ctx context.Context, id string) (*entities.TopicView, error)

	// GetByIDIncludeDeleted 按 ID 点查，不过滤逻辑删除标记。
	// - 审计场景使用：被删话题的行及原始内容仍可读取。
	GetByIDIncludeDeleted(ctx context.Context, id string) (*entities.TopicView, error)

	// GetAll 按 created_at 降序分页返回未删除的话题。
	GetAll(ctx context.Context, limit, offset int) ([]*entities.TopicView, error)

	// GetByIDs 批量点查未删除的话题，结果顺序与传入 ID 顺序一致，未命中的 ID 跳过。
	GetByIDs(ctx context.Context, ids []string) ([]*entities.TopicView, error)

	// CountPostsPerTopic 统计每个话题下未删除回帖的数量，供热榜快照使用。
	CountPostsPerTopic(ctx context.Context, limit int64) (map[string]int64, error)
}

type topicViewRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewTopicViewRepository 是 topicViewRepository 的构造函数。
func NewTopicViewRepository(db *gorm.DB, logger *core.ZapLogger) TopicViewRepository {
	return &topicViewRepository{db: db, logger: logger}
}

// Upsert 实现话题读模型的插入或更新。
func (r *topicViewRepository) Upsert(ctx context.Context, view *entities.TopicView) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			// created_at 与 user_id 首次插入后不再变化
			DoUpdates: clause.AssignmentColumns([]string{"title", "content", "is_deleted", "updated_at"}),
		}).
		Create(view).Error
	if err != nil {
		r.logger.Error("写入话题读模型失败", zap.Error(err), zap.String("topicID", view.ID))
		return translateStorageErr(err)
	}
	return nil
}

// GetByID 实现未删除话题的点查。
func (r *topicViewRepository) GetByID(ctx context.Context, id string) (*entities.TopicView, error) {
	var view entities.TopicView
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&view).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, myErrors.ErrNotFound
		}
		r.logger.Error("按 ID 查询话题读模型失败", zap.Error(err), zap.String("topicID", id))
		return nil, translateStorageErr(err)
	}
	return &view, nil
}

// GetByIDIncludeDeleted 实现不过滤删除标记的审计点查。
func (r *topicViewRepository) GetByIDIncludeDeleted(ctx context.Context, id string) (*entities.TopicView, error) {
	var view entities.TopicView
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&view).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, myErrors.ErrNotFound
		}
		r.logger.Error("审计查询话题读模型失败", zap.Error(err), zap.String("topicID", id))
		return nil, translateStorageErr(err)
	}
	return &view, nil
}

// GetAll 实现话题列表的分页查询，最新的在前。
func (r *topicViewRepository) GetAll(ctx context.Context, limit, offset int) ([]*entities.TopicView, error) {
	var views []*entities.TopicView
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&views).Error
	if err != nil {
		r.logger.Error("查询话题列表失败", zap.Error(err), zap.Int("limit", limit), zap.Int("offset", offset))
		return nil, translateStorageErr(err)
	}
	return views, nil
}

// GetByIDs 实现批量点查，保持传入顺序。
func (r *topicViewRepository) GetByIDs(ctx context.Context, ids []string) ([]*entities.TopicView, error) {
	if len(ids) == 0 {
		return []*entities.TopicView{}, nil
	}

	var views []*entities.TopicView
	err := r.db.WithContext(ctx).
		Where("id IN ? AND is_deleted = ?", ids, false).
		Find(&views).Error
	if err != nil {
		r.logger.Error("批量查询话题读模型失败", zap.Error(err), zap.Int("count", len(ids)))
		return nil, translateStorageErr(err)
	}

	byID := make(map[string]*entities.TopicView, len(views))
	for _, view := range views {
		byID[view.ID] = view
	}
	ordered := make([]*entities.TopicView, 0, len(views))
	for _, id := range ids {
		if view, ok := byID[id]; ok {
			ordered = append(ordered, view)
		}
	}
	return ordered, nil
}

// CountPostsPerTopic 统计各话题的回帖数，按回帖数降序截取前 limit 个。
func (r *topicViewRepository) CountPostsPerTopic(ctx context.Context, limit int64) (map[string]int64, error) {
	type row struct {
		TopicID string
		Cnt     int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("posts_view").
		Select("topic_id, COUNT(*) AS cnt").
		Where("is_deleted = ?", false).
		Group("topic_id").
		Order("cnt DESC").
		Limit(int(limit)).
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("统计话题回帖数失败", zap.Error(err))
		return nil, translateStorageErr(err)
	}

	counts := make(map[string]int64, len(rows))
	for _, item := range rows {
		counts[item.TopicID] = item.Cnt
	}
	return counts, nil
}
