package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"marketplace/internal/model"
)

func TestWalletRepoWithdraw(t *testing.T) {
	db := newTestDB(t)
	w := seedWallet(t, db, "100.00")
	repo := NewWalletRepo(db)

	ok, err := repo.Withdraw(w.ID, decimal.RequireFromString("100.00"))
	require.NoError(t, err)
	require.True(t, ok)

	got, err := repo.GetByUserID(w.UserID)
	require.NoError(t, err)
	require.Equal(t, "0.00", got.Balance.StringFixed(2))

	// 条件 UPDATE 没命中任何行：余额不足
	ok, err = repo.Withdraw(w.ID, decimal.RequireFromString("0.01"))
	require.NoError(t, err)
	require.False(t, ok)

	got, err = repo.GetByUserID(w.UserID)
	require.NoError(t, err)
	require.Equal(t, "0.00", got.Balance.StringFixed(2))
}

func TestWalletRepoWithdrawRejectsNonPositive(t *testing.T) {
	db := newTestDB(t)
	w := seedWallet(t, db, "50.00")
	repo := NewWalletRepo(db)

	ok, err := repo.Withdraw(w.ID, decimal.Zero)
	require.ErrorIs(t, err, model.ErrInvalidAmount)
	require.False(t, ok)

	ok, err = repo.Withdraw(w.ID, decimal.RequireFromString("-3"))
	require.ErrorIs(t, err, model.ErrInvalidAmount)
	require.False(t, ok)
}

func TestWalletRepoDeposit(t *testing.T) {
	db := newTestDB(t)
	w := seedWallet(t, db, "1.25")
	repo := NewWalletRepo(db)

	require.NoError(t, repo.Deposit(w.ID, decimal.RequireFromString("3.75")))

	got, err := repo.GetByUserID(w.UserID)
	require.NoError(t, err)
	require.Equal(t, "5.00", got.Balance.StringFixed(2))

	require.ErrorIs(t, repo.Deposit(w.ID, decimal.Zero), model.ErrInvalidAmount)
	require.ErrorIs(t, repo.Deposit(99999, decimal.RequireFromString("1.00")), gorm.ErrRecordNotFound)
}

func TestTransactionRepoAppend(t *testing.T) {
	db := newTestDB(t)
	w := seedWallet(t, db, "20.00")
	repo := NewTransactionRepo(db)

	require.NoError(t, repo.Append(&model.Transaction{
		WalletID: w.ID,
		Amount:   decimal.RequireFromString("20.00"),
		Type:     model.TransactionDeposit,
	}))
	require.NoError(t, repo.Append(&model.Transaction{
		WalletID: w.ID,
		Amount:   decimal.RequireFromString("5.00"),
		Type:     model.TransactionPurchase,
	}))

	list, err := repo.ListByWallet(w.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
}
