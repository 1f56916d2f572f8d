package entities

import "time"

// User 用户实体
// - 使用场景: 作为话题/回帖及事件的作者引用（外键目标）。
// - 认证与会话管理不在本服务内，用户由上游认证流程创建。
// - 表名: users
type User struct {
	// 主键，自增
	ID int64 `gorm:"primaryKey;autoIncrement"`

	// 用户名，唯一
	// - 类型: varchar(50)，与注册侧的长度约束保持一致
	Username string `gorm:"type:varchar(50);uniqueIndex;not null"`

	// 邮箱，唯一
	Email string `gorm:"type:varchar(255);uniqueIndex;not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
