package model

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus 订单状态，开放的字符串枚举。
// 状态迁移不在模型层强制，CanCancel/CanRefund 仅作建议性判断。
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCanceled  OrderStatus = "canceled"
	OrderStatusRefunded  OrderStatus = "refunded"
)

// Valid 判断状态是否为已知取值，供上层做输入校验时使用。
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCanceled, OrderStatusRefunded:
		return true
	}
	return false
}

// Order 买家的购买请求。订单号在首次落库时生成，之后不再变更。
type Order struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BuyerID    uint            `gorm:"not null;index" json:"buyer_id"`
	Buyer      *User           `gorm:"foreignKey:BuyerID;constraint:OnDelete:CASCADE" json:"-"`
	OrderNo    string          `gorm:"size:20;uniqueIndex;not null" json:"order_no"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Status     OrderStatus     `gorm:"size:20;not null;default:'pending'" json:"status"`
	Notes      string          `gorm:"type:text" json:"notes"`
	Items      []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Order) TableName() string { return "orders" }

// BeforeCreate 订单号为空时生成 ORD- 前缀 + 8 位大写十六进制随机串。
// 碰撞概率可忽略，真撞上由 order_no 的唯一索引兜底报错。
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.OrderNo == "" {
		u := uuid.New()
		o.OrderNo = "ORD-" + strings.ToUpper(hex.EncodeToString(u[:4]))
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	return nil
}

// CanCancel 是否可取消：pending 或 paid。
func (o *Order) CanCancel() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusPaid
}

// CanRefund 是否可退款：paid、shipped 或 delivered。
func (o *Order) CanRefund() bool {
	return o.Status == OrderStatusPaid || o.Status == OrderStatusShipped || o.Status == OrderStatusDelivered
}
