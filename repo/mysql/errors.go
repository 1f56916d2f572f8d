package mysql

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"

	"gorm.io/gorm"

	"github.com/tnote-app/tnote_service/myErrors"
)

// translateStorageErr 把驱动层的连接类故障归一为 myErrors.ErrStorageUnavailable，
// 供上层用 errors.Is 识别并映射为 503。业务类错误（未命中、唯一键冲突等）
// 在各仓库方法内先行处理，不会走到这里被误翻译。
func translateStorageErr(err error) error {
	if err == nil {
		return nil
	}

	var netErr net.Error
	switch {
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, gorm.ErrInvalidDB),
		errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr):
		return errors.Join(myErrors.ErrStorageUnavailable, err)
	default:
		return err
	}
}
