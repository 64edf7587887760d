package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem 订单行项目：数量 × 单价的派生总价，每次落库重算。
type OrderItem struct {
	ID uint `gorm:"primarykey" json:"id"`

	OrderID   uint     `gorm:"not null;index" json:"order_id"`
	ProductID uint     `gorm:"not null;index" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"-"`

	Quantity   int             `gorm:"not null;default:1;check:chk_order_items_quantity,quantity >= 1" json:"quantity"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"` // 下单时的单价快照
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
}

func (OrderItem) TableName() string { return "order_items" }

// BeforeSave 总价永远等于 quantity × price，覆盖调用方传入的任何值。
func (i *OrderItem) BeforeSave(tx *gorm.DB) error {
	i.TotalPrice = i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
	return nil
}
