// Package validation 提供服务层入库前的命令校验。
// gin 的 binding 校验只覆盖 HTTP 入口；服务层作为最后一道闸门再校验一次，
// 保证 seeder、后台任务等非 HTTP 调用方同样不会把坏数据写进事件表。
package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/tnote-app/tnote_service/myErrors"
)

var validate = validator.New()

// Struct 按 validate 标签校验命令结构体。
// 校验失败时返回 *myErrors.ValidationError，标出第一个违反约束的字段。
func Struct(command interface{}) error {
	err := validate.Struct(command)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return myErrors.NewValidationError(first.Field(), describe(first))
	}
	// InvalidValidationError 等非字段错误，按通用校验失败处理
	return fmt.Errorf("%w: %v", myErrors.ErrValidation, err)
}

// describe 把 validator 的约束翻译成面向调用方的描述。
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "不能为空"
	case "min":
		return fmt.Sprintf("长度不能小于 %s", fe.Param())
	case "max":
		return fmt.Sprintf("长度不能超过 %s", fe.Param())
	case "gt":
		return fmt.Sprintf("必须大于 %s", fe.Param())
	case "gte":
		return fmt.Sprintf("不能小于 %s", fe.Param())
	default:
		return fmt.Sprintf("不满足约束 %s", fe.Tag())
	}
}
