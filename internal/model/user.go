package model

import (
	"time"

	"gorm.io/gorm"
)

// User 平台用户的最小落库形态：钱包、订单、工单等实体的外键目标。
// 认证、权限在上层服务处理，这里不关心。
type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	FullName string `gorm:"size:100;not null" json:"full_name"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
}

func (User) TableName() string { return "users" }
