package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType 流水类型。
type TransactionType string

const (
	TransactionDeposit  TransactionType = "deposit"
	TransactionWithdraw TransactionType = "withdraw"
	TransactionPurchase TransactionType = "purchase"
	TransactionRefund   TransactionType = "refund"
	TransactionTransfer TransactionType = "transfer"
)

// Valid 判断流水类型是否为已知取值。
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionDeposit, TransactionWithdraw, TransactionPurchase,
		TransactionRefund, TransactionTransfer:
		return true
	}
	return false
}

// Transaction 钱包流水，append-only：只创建、只读，没有更新语义。
// 钱包的资金操作本身不写流水，由调用方在同一业务动作里补记。
type Transaction struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	WalletID    uint            `gorm:"not null;index" json:"wallet_id"`
	Wallet      *Wallet         `gorm:"foreignKey:WalletID;constraint:OnDelete:CASCADE" json:"-"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Type        TransactionType `gorm:"size:20;not null;index" json:"type"`
	Description string          `gorm:"size:255" json:"description"`
	ReferenceID string          `gorm:"size:100" json:"reference_id"` // 外部参考号（支付网关等）
}

func (Transaction) TableName() string { return "transactions" }
