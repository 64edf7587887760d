package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"marketplace/internal/model"
)

// WalletRepo 钱包存取。Deposit/Withdraw 是单条条件 UPDATE，
// 在存储层关闭模型方法里存在的读改写竞态。
type WalletRepo struct {
	db *gorm.DB
}

func NewWalletRepo(db *gorm.DB) *WalletRepo { return &WalletRepo{db: db} }

// Create 开户，一人一个钱包由 user_id 唯一索引保证。
func (r *WalletRepo) Create(w *model.Wallet) error {
	return r.db.Create(w).Error
}

// GetByUserID 按用户查钱包。
func (r *WalletRepo) GetByUserID(userID uint) (*model.Wallet, error) {
	var w model.Wallet
	if err := r.db.Where("user_id = ?", userID).First(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

// Deposit 原子加款：balance = balance + amount。
func (r *WalletRepo) Deposit(walletID uint, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return model.ErrInvalidAmount
	}
	res := r.db.Model(&model.Wallet{}).
		Where("id = ?", walletID).
		Update("balance", gorm.Expr("balance + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Withdraw 原子扣款：WHERE balance >= amount 的条件 UPDATE。
// 余额不足时没有行被更新，返回 false，余额保持不变。
func (r *WalletRepo) Withdraw(walletID uint, amount decimal.Decimal) (bool, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return false, model.ErrInvalidAmount
	}
	res := r.db.Model(&model.Wallet{}).
		Where("id = ? AND balance >= ?", walletID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
