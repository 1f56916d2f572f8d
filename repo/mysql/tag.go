package mysql

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tnote-app/tnote_service/core"
	"github.com/tnote-app/tnote_service/models/entities"
	"github.com/tnote-app/tnote_service/myErrors"
)

// TagRepository 定义标签及话题-标签关联在 MySQL 中的持久化操作。
type TagRepository interface {
	// GetOrCreate 按名称取标签，不存在则创建。
	// - 幂等：同名调用任意多次返回同一个标签 ID，只产生一行。
	// - 并发首建竞态依赖 name 唯一索引兜底：插入冲突时回退为重新查询。
	GetOrCreate(ctx context.Context, name string) (*entities.Tag, error)

	// GetByName 按名称点查标签；未命中返回 myErrors.ErrNotFound。
	GetByName(ctx context.Context, name string) (*entities.Tag, error)

	// AddTopicTag 建立话题与标签的关联，重复关联静默成功。
	AddTopicTag(ctx context.Context, topicID string, tagID int64) error

	// RemoveTopicTag 解除话题与标签的关联，关联不存在时静默成功。
	RemoveTopicTag(ctx context.Context, topicID string, tagID int64) error

	// GetTagsByTopicID 返回话题关联的全部标签，按标签名升序。
	GetTagsByTopicID(ctx context.Context, topicID string) ([]*entities.Tag, error)
}

type tagRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewTagRepository 是 tagRepository 的构造函数。
func NewTagRepository(db *gorm.DB, logger *core.ZapLogger) TagRepository {
	return &tagRepository{db: db, logger: logger}
}

// GetOrCreate 实现标签的惰性创建。
func (r *tagRepository) GetOrCreate(ctx context.Context, name string) (*entities.Tag, error) {
	var tag entities.Tag
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Error("查询标签失败", zap.Error(err), zap.String("name", name))
		return nil, translateStorageErr(err)
	}

	tag = entities.Tag{Name: name}
	createErr := r.db.WithContext(ctx).Create(&tag).Error
	if createErr == nil {
		return &tag, nil
	}

	// 并发首建：另一请求抢先插入了同名标签，唯一索引冲突后重新查询即可
	if errors.Is(createErr, gorm.ErrDuplicatedKey) {
		var existing entities.Tag
		if refetchErr := r.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error; refetchErr != nil {
			r.logger.Error("标签唯一冲突后重查失败", zap.Error(refetchErr), zap.String("name", name))
			return nil, translateStorageErr(refetchErr)
		}
		return &existing, nil
	}

	r.logger.Error("创建标签失败", zap.Error(createErr), zap.String("name", name))
	return nil, translateStorageErr(createErr)
}

// GetByName 实现标签的名称点查。
func (r *tagRepository) GetByName(ctx context.Context, name string) (*entities.Tag, error) {
	var tag entities.Tag
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, myErrors.ErrNotFound
		}
		r.logger.Error("查询标签失败", zap.Error(err), zap.String("name", name))
		return nil, translateStorageErr(err)
	}
	return &tag, nil
}

// AddTopicTag 实现话题与标签的关联写入。
func (r *tagRepository) AddTopicTag(ctx context.Context, topicID string, tagID int64) error {
	link := &entities.TopicTag{TopicID: topicID, TagID: tagID}
	err := r.db.WithContext(ctx).Create(link).Error
	if err != nil {
		// 重复关联视为成功，保持幂等
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		r.logger.Error("关联话题标签失败",
			zap.Error(err),
			zap.String("topicID", topicID),
			zap.Int64("tagID", tagID),
		)
		return translateStorageErr(err)
	}
	return nil
}

// RemoveTopicTag 实现话题与标签的关联删除。
func (r *tagRepository) RemoveTopicTag(ctx context.Context, topicID string, tagID int64) error {
	err := r.db.WithContext(ctx).
		Where("topic_id = ? AND tag_id = ?", topicID, tagID).
		Delete(&entities.TopicTag{}).Error
	if err != nil {
		r.logger.Error("解除话题标签关联失败",
			zap.Error(err),
			zap.String("topicID", topicID),
			zap.Int64("tagID", tagID),
		)
		return translateStorageErr(err)
	}
	return nil
}

// GetTagsByTopicID 实现话题标签的联表查询。
func (r *tagRepository) GetTagsByTopicID(ctx context.Context, topicID string) ([]*entities.Tag, error) {
	var tags []*entities.Tag
	err := r.db.WithContext(ctx).
		Model(&entities.Tag{}).
		Joins("JOIN topic_tags_view ON topic_tags_view.tag_id = tags.id").
		Where("topic_tags_view.topic_id = ?", topicID).
		Order("tags.name ASC").
		Find(&tags).Error
	if err != nil {
		r.logger.Error("查询话题标签失败", zap.Error(err), zap.String("topicID", topicID))
		return nil, translateStorageErr(err)
	}
	return tags, nil
}
