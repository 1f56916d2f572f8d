package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newAggregateID 生成聚合 ID，形如 "topic_1717000000000_ab12cd34e"。
// 毫秒时间戳让 ID 大体随时间递增，uuid 派生的随机后缀保证唯一；
// 这里只承诺唯一性，不承诺严格可排序。
func newAggregateID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix)
}
