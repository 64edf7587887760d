package model

import (
	"time"
)

// AuditAction 安全审计动作。
type AuditAction string

const (
	AuditLogin    AuditAction = "login"
	AuditLogout   AuditAction = "logout"
	AuditCreate   AuditAction = "create"
	AuditUpdate   AuditAction = "update"
	AuditDelete   AuditAction = "delete"
	AuditView     AuditAction = "view"
	AuditDownload AuditAction = "download"
	AuditPayment  AuditAction = "payment"
)

// Valid 判断审计动作是否为已知取值。
func (a AuditAction) Valid() bool {
	switch a {
	case AuditLogin, AuditLogout, AuditCreate, AuditUpdate,
		AuditDelete, AuditView, AuditDownload, AuditPayment:
		return true
	}
	return false
}

// AuditLog 安全审计日志，append-only。
// user_id 可空：账号删除后日志保留，引用置空。
type AuditLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	UserID *uint `gorm:"index" json:"user_id"`
	User   *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`

	Action       AuditAction `gorm:"size:20;not null;index" json:"action"`
	IPAddress    string      `gorm:"size:45" json:"ip_address"` // IPv4/IPv6 文本形式
	UserAgent    string      `gorm:"type:text" json:"user_agent"`
	ResourceType string      `gorm:"size:50" json:"resource_type"`
	ResourceID   string      `gorm:"size:50" json:"resource_id"`

	// Details 开放的键值负载，序列化为 JSON 存储。
	Details map[string]any `gorm:"serializer:json" json:"details"`
}

func (AuditLog) TableName() string { return "audit_logs" }
