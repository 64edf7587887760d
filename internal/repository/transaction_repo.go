package repository

import (
	"gorm.io/gorm"

	"marketplace/internal/model"
)

// TransactionRepo 钱包流水，append-only：只有 Append 和读取，没有更新、删除。
type TransactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) *TransactionRepo { return &TransactionRepo{db: db} }

// Append 追加一条流水。
func (r *TransactionRepo) Append(t *model.Transaction) error {
	return r.db.Create(t).Error
}

// ListByWallet 某钱包的流水，新的在前。
func (r *TransactionRepo) ListByWallet(walletID uint, limit, offset int) ([]model.Transaction, error) {
	var out []model.Transaction
	err := r.db.Where("wallet_id = ?", walletID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error
	return out, err
}
