package mysql

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tnote-app/tnote_service/core"
	"github.com/tnote-app/tnote_service/models/entities"
)

// UserRepository 定义用户在 MySQL 中的最小持久化操作。
// 认证与会话在上游完成，本服务只需要用户行作为作者引用存在。
type UserRepository interface {
	// GetOrCreate 按用户名取用户，不存在则以给定邮箱创建。
	GetOrCreate(ctx context.Context, username, email string) (*entities.User, error)
}

type userRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewUserRepository 是 userRepository 的构造函数。
func NewUserRepository(db *gorm.DB, logger *core.ZapLogger) UserRepository {
	return &userRepository{db: db, logger: logger}
}

// GetOrCreate 实现用户的惰性创建，与标签相同的唯一冲突回退策略。
func (r *userRepository) GetOrCreate(ctx context.Context, username, email string) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Error("查询用户失败", zap.Error(err), zap.String("username", username))
		return nil, translateStorageErr(err)
	}

	user = entities.User{Username: username, Email: email}
	createErr := r.db.WithContext(ctx).Create(&user).Error
	if createErr == nil {
		return &user, nil
	}
	if errors.Is(createErr, gorm.ErrDuplicatedKey) {
		var existing entities.User
		if refetchErr := r.db.WithContext(ctx).Where("username = ?", username).First(&existing).Error; refetchErr != nil {
			return nil, translateStorageErr(refetchErr)
		}
		return &existing, nil
	}
	r.logger.Error("创建用户失败", zap.Error(createErr), zap.String("username", username))
	return nil, translateStorageErr(createErr)
}
