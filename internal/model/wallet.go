package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrInvalidAmount 表示资金操作收到了非正数金额。
var ErrInvalidAmount = errors.New("amount must be positive")

// Wallet 用户钱包：一人一个，余额为两位小数的定点数，永不为负。
type Wallet struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID   uint            `gorm:"uniqueIndex;not null" json:"user_id"`
	User     *User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Balance  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"balance"`
	Currency string          `gorm:"size:3;not null;default:'USD'" json:"currency"`
}

func (Wallet) TableName() string { return "wallets" }

// CanAfford 纯读判断：余额是否足够支付 amount，不产生副作用。
func (w *Wallet) CanAfford(amount decimal.Decimal) bool {
	return w.Balance.GreaterThanOrEqual(amount)
}

// AddFunds 充值。amount <= 0 返回 ErrInvalidAmount，余额不变。
// 这里不会写 Transaction 流水，流水由调用方负责落账。
func (w *Wallet) AddFunds(db *gorm.DB, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	w.Balance = w.Balance.Add(amount)
	return db.Save(w).Error
}

// DeductFunds 扣款。amount <= 0 返回 ErrInvalidAmount；
// 余额不足返回 false 且不做任何修改；成功时扣减并落库。
// 读改写序列，与并发扣款存在竞态；需要原子扣款请走 repository.WalletRepo.Withdraw。
func (w *Wallet) DeductFunds(db *gorm.DB, amount decimal.Decimal) (bool, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return false, ErrInvalidAmount
	}
	if !w.CanAfford(amount) {
		return false, nil
	}
	w.Balance = w.Balance.Sub(amount)
	if err := db.Save(w).Error; err != nil {
		return false, err
	}
	return true, nil
}
