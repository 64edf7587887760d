package model

import (
	"time"

	"gorm.io/gorm"
)

// Review 商品评价。(user_id, product_id) 组合唯一索引保证一人一评，
// 重复插入由存储层以约束冲突报错。
type Review struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID    uint     `gorm:"not null;uniqueIndex:idx_reviews_user_product" json:"user_id"`
	User      *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ProductID uint     `gorm:"not null;uniqueIndex:idx_reviews_user_product" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`

	Rating             int    `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5" json:"rating"`
	Comment            string `gorm:"type:text;not null" json:"comment"`
	IsVerifiedPurchase bool   `gorm:"not null;default:false" json:"is_verified_purchase"`
}

func (Review) TableName() string { return "reviews" }
