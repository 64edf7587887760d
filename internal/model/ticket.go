package model

import (
	"time"

	"gorm.io/gorm"
)

// TicketStatus 工单状态，建议性枚举，不强制迁移规则。
type TicketStatus string

const (
	TicketOpen           TicketStatus = "open"
	TicketInProgress     TicketStatus = "in_progress"
	TicketWaitingForUser TicketStatus = "waiting_for_user"
	TicketClosed         TicketStatus = "closed"
)

// Valid 判断工单状态是否为已知取值。
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketWaitingForUser, TicketClosed:
		return true
	}
	return false
}

// TicketPriority 工单优先级。
type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
	PriorityUrgent TicketPriority = "urgent"
)

// Valid 判断优先级是否为已知取值。
func (p TicketPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Ticket 客服工单。assigned_to 可空，处理人账号删除时置空。
type Ticket struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID       uint           `gorm:"not null;index" json:"user_id"`
	User         *User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Subject      string         `gorm:"size:200;not null" json:"subject"`
	Message      string         `gorm:"type:text;not null" json:"message"`
	Status       TicketStatus   `gorm:"size:20;not null;default:'open';index" json:"status"`
	Priority     TicketPriority `gorm:"size:20;not null;default:'medium'" json:"priority"`
	AssignedToID *uint          `gorm:"index" json:"assigned_to_id"`
	AssignedTo   *User          `gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Ticket) TableName() string { return "tickets" }
