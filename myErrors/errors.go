package myErrors

import (
	"errors"
	"fmt"
)

// 服务内统一的哨兵错误，跨层使用 errors.Is 判断。
var (
	// ErrNotFound 目标聚合不存在，或已被逻辑删除而对默认读取不可见。
	ErrNotFound = errors.New("资源不存在")

	// ErrPermissionDenied 当前用户不是聚合的作者，禁止写操作。
	ErrPermissionDenied = errors.New("没有操作权限")

	// ErrValidation 命令校验失败。具体字段信息见 ValidationError。
	ErrValidation = errors.New("参数校验失败")

	// ErrStorageUnavailable 存储依赖不可达或超时。
	// 由仓库层把驱动的连接类故障归一而来，对外映射为 503。
	ErrStorageUnavailable = errors.New("存储服务不可用")

	// ErrCacheMiss 缓存未命中，调用方需要回源。
	ErrCacheMiss = errors.New("cache: key not found (miss)")
)

// ValidationError 携带具体违反约束的字段信息。
// - 通过 errors.Is(err, ErrValidation) 可识别。
type ValidationError struct {
	Field  string // 违反约束的字段名
	Reason string // 约束描述，例如 "长度需在 1-200 之间"
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("参数校验失败: 字段 %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError 构造带字段信息的校验错误。
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
