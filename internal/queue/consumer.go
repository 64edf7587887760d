package queue

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	rd "github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"gorm.io/gorm"

	"marketplace/internal/repository"
	pkgredis "marketplace/pkg/redis"
)

// 去重标记保留一周，覆盖 Kafka 重复投递的常见窗口。
const auditSeenTTL = 7 * 24 * time.Hour

// Consumer 消费审计事件并落 audit_logs。
// Kafka 是 at-least-once，入库前用 Redis SETNX 按 event_id 去重。
type Consumer struct {
	r    *kafka.Reader
	rdb  *rd.Client
	logs *repository.AuditLogRepo
}

func NewConsumer(brokers []string, topic, groupID string, db *gorm.DB, rdb *rd.Client) *Consumer {
	return &Consumer{
		r: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  groupID,
			MinBytes: 1e3,
			MaxBytes: 1e6,
		}),
		rdb:  rdb,
		logs: repository.NewAuditLogRepo(db),
	}
}

func (c *Consumer) Close() error { return c.r.Close() }

func (c *Consumer) Run(ctx context.Context) {
	for {
		m, err := c.r.ReadMessage(ctx)
		if err != nil {
			return // ctx cancel / 连接断开等
		}

		var msg AuditMessage
		if err := json.Unmarshal(m.Value, &msg); err != nil {
			log.Printf("audit consumer unmarshal: %v", err)
			continue
		}
		if err := msg.Validate(); err != nil {
			log.Printf("audit consumer drop invalid event: %v", err)
			continue
		}

		first, err := pkgredis.MarkAuditSeenOnce(ctx, c.rdb, msg.EventID, auditSeenTTL)
		if err != nil {
			log.Printf("audit consumer dedup check: %v", err)
			// Redis 不可用时放弃去重继续写库，宁可重复不可丢失。
		} else if !first {
			continue
		}

		if err := c.logs.Append(msg.Record()); err != nil {
			if errorsLikeUnique(err) {
				continue
			}
			log.Printf("audit consumer append: %v", err)
			continue
		}
	}
}

func errorsLikeUnique(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "UNIQUE") || strings.Contains(s, "unique")
}
