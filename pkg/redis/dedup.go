package redis

import (
	"context"
	"time"

	rd "github.com/redis/go-redis/v9"
)

// MarkAuditSeenOnce 用 SETNX 标记审计事件，保证同一事件只入库一次：
// - 首次标记返回 true，调用方继续写库
// - 重复标记返回 false，调用方跳过
// Kafka 是 at-least-once，重复投递靠这里去重。
func MarkAuditSeenOnce(ctx context.Context, rdb *rd.Client, eventID string, ttl time.Duration) (bool, error) {
	return rdb.SetNX(ctx, AuditSeenKey(eventID), "1", ttl).Result()
}
