package queue

import (
	"fmt"
	"time"

	"marketplace/internal/model"
)

// AuditMessage 是流经审计管道（outbox → Kafka → audit_logs）的事件。
// event_id 贯穿整条链路，既是 Kafka key 也是消费端去重标识。
type AuditMessage struct {
	EventID      string         `json:"event_id"`
	UserID       *uint          `json:"user_id,omitempty"`
	Action       string         `json:"action"`
	IPAddress    string         `json:"ip_address,omitempty"`
	UserAgent    string         `json:"user_agent,omitempty"`
	ResourceType string         `json:"resource_type,omitempty"`
	ResourceID   string         `json:"resource_id,omitempty"`
	Details      map[string]any `json:"details,omitempty"`
	OccurredAt   time.Time      `json:"occurred_at"`
}

// Validate 做最小字段校验，防止消费者处理脏消息。
func (m AuditMessage) Validate() error {
	if m.EventID == "" {
		return fmt.Errorf("event_id is required")
	}
	if !model.AuditAction(m.Action).Valid() {
		return fmt.Errorf("unknown audit action %q", m.Action)
	}
	if m.OccurredAt.IsZero() {
		return fmt.Errorf("occurred_at is required")
	}
	return nil
}

// Record 转成待落库的 AuditLog 行。
func (m AuditMessage) Record() *model.AuditLog {
	return &model.AuditLog{
		CreatedAt:    m.OccurredAt,
		UserID:       m.UserID,
		Action:       model.AuditAction(m.Action),
		IPAddress:    m.IPAddress,
		UserAgent:    m.UserAgent,
		ResourceType: m.ResourceType,
		ResourceID:   m.ResourceID,
		Details:      m.Details,
	}
}
