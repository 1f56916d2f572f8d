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

// PostViewRepository 定义回帖读模型在 MySQL 中的持久化操作。
type PostViewRepository interface {
	// Upsert 写入回帖的当前状态，语义与话题读模型一致：
	// 已存在则更新可变列（content/is_deleted/updated_at），保留 created_at。
	Upsert(ctx context.Context, view *entities.PostView) error

	// GetByID 按 ID 点查，只返回未逻辑删除的行；未命中返回 myErrors.ErrNotFound。
	GetByID(ctx context.Context, id string) (*entities.PostView, error)

	// GetByIDIncludeDeleted 审计点查，不过滤删除标记。
	GetByIDIncludeDeleted(ctx context.Context, id string) (*entities.PostView, error)

	// GetByTopicID 返回话题下全部未删除回帖，按 created_at 升序（阅读顺序）。
	GetByTopicID(ctx context.Context, topicID string) ([]*entities.PostView, error)

	// GetReplies 返回指定回帖的直接子回帖，同样按 created_at 升序。
	GetReplies(ctx context.Context, parentPostID string) ([]*entities.PostView, error)
}

type postViewRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewPostViewRepository 是 postViewRepository 的构造函数。
func NewPostViewRepository(db *gorm.DB, logger *core.ZapLogger) PostViewRepository {
	return &postViewRepository{db: db, logger: logger}
}

// Upsert 实现回帖读模型的插入或更新。
func (r *postViewRepository) Upsert(ctx context.Context, view *entities.PostView) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			// topic_id / parent_post_id / user_id / created_at 首次插入后不再变化
			DoUpdates: clause.AssignmentColumns([]string{"content", "is_deleted", "updated_at"}),
		}).
		Create(view).Error
	if err != nil {
		r.logger.Error("写入回帖读模型失败", zap.Error(err), zap.String("postID", view.ID))
		return translateStorageErr(err)
	}
	return nil
}

// GetByID 实现未删除回帖的点查。
func (r *postViewRepository) GetByID(ctx context.Context, id string) (*entities.PostView, error) {
	var view entities.PostView
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&view).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, myErrors.ErrNotFound
		}
		r.logger.Error("按 ID 查询回帖读模型失败", zap.Error(err), zap.String("postID", id))
		return nil, translateStorageErr(err)
	}
	return &view, nil
}

// GetByIDIncludeDeleted 实现审计点查。
func (r *postViewRepository) GetByIDIncludeDeleted(ctx context.Context, id string) (*entities.PostView, error) {
	var view entities.PostView
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&view).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, myErrors.ErrNotFound
		}
		r.logger.Error("审计查询回帖读模型失败", zap.Error(err), zap.String("postID", id))
		return nil, translateStorageErr(err)
	}
	return &view, nil
}

// GetByTopicID 实现话题下回帖的时序读取。
func (r *postViewRepository) GetByTopicID(ctx context.Context, topicID string) ([]*entities.PostView, error) {
	var views []*entities.PostView
	err := r.db.WithContext(ctx).
		Where("topic_id = ? AND is_deleted = ?", topicID, false).
		Order("created_at ASC").
		Order("id ASC").
		Find(&views).Error
	if err != nil {
		r.logger.Error("查询话题回帖列表失败", zap.Error(err), zap.String("topicID", topicID))
		return nil, translateStorageErr(err)
	}
	return views, nil
}

// GetReplies 实现直接子回帖的时序读取。
func (r *postViewRepository) GetReplies(ctx context.Context, parentPostID string) ([]*entities.PostView, error) {
	var views []*entities.PostView
	err := r.db.WithContext(ctx).
		Where("parent_post_id = ? AND is_deleted = ?", parentPostID, false).
		Order("created_at ASC").
		Order("id ASC").
		Find(&views).Error
	if err != nil {
		r.logger.Error("查询子回帖列表失败", zap.Error(err), zap.String("parentPostID", parentPostID))
		return nil, translateStorageErr(err)
	}
	return views, nil
}
