package queue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	rd "github.com/redis/go-redis/v9"
)

// Outbox 把审计事件先原子写入 Redis Stream，由 Relay 异步转发 Kafka。
// 请求路径只付一次 XADD 的代价，Kafka 抖动不影响在线接口。
type Outbox struct {
	rdb    *rd.Client
	stream string
}

func NewOutbox(rdb *rd.Client, stream string) *Outbox {
	return &Outbox{rdb: rdb, stream: stream}
}

// Emit 填充 event_id / occurred_at 缺省值后入流。
func (o *Outbox) Emit(ctx context.Context, msg AuditMessage) error {
	if msg.EventID == "" {
		msg.EventID = uuid.New().String()
	}
	if msg.OccurredAt.IsZero() {
		msg.OccurredAt = time.Now()
	}
	if err := msg.Validate(); err != nil {
		return err
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return o.rdb.XAdd(ctx, &rd.XAddArgs{
		Stream: o.stream,
		Values: map[string]any{
			"event_id": msg.EventID,
			"payload":  string(payload),
		},
	}).Err()
}
