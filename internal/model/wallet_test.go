package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestWalletCanAfford(t *testing.T) {
	w := &Wallet{Balance: decimal.RequireFromString("50.00")}

	require.True(t, w.CanAfford(decimal.RequireFromString("50.00")))
	require.True(t, w.CanAfford(decimal.RequireFromString("0.01")))
	require.False(t, w.CanAfford(decimal.RequireFromString("50.01")))
}

func TestWalletAddFunds(t *testing.T) {
	db := newTestDB(t)
	w := seedWallet(t, db, "10.00")

	require.NoError(t, w.AddFunds(db, decimal.RequireFromString("2.50")))

	var got Wallet
	require.NoError(t, db.First(&got, w.ID).Error)
	require.Equal(t, "12.50", got.Balance.StringFixed(2))
}

func TestWalletAddFundsRejectsNonPositive(t *testing.T) {
	db := newTestDB(t)
	w := seedWallet(t, db, "10.00")

	for _, raw := range []string{"0", "-0.01", "-100"} {
		err := w.AddFunds(db, decimal.RequireFromString(raw))
		require.ErrorIs(t, err, ErrInvalidAmount, "amount %s", raw)
	}

	var got Wallet
	require.NoError(t, db.First(&got, w.ID).Error)
	require.Equal(t, "10.00", got.Balance.StringFixed(2))
}

func TestWalletDeductFunds(t *testing.T) {
	db := newTestDB(t)
	w := seedWallet(t, db, "100.00")

	// 全额扣到 0 是允许的
	ok, err := w.DeductFunds(db, decimal.RequireFromString("100.00"))
	require.NoError(t, err)
	require.True(t, ok)

	var got Wallet
	require.NoError(t, db.First(&got, w.ID).Error)
	require.Equal(t, "0.00", got.Balance.StringFixed(2))

	// 余额为 0 之后哪怕一分钱也不给扣
	ok, err = w.DeductFunds(db, decimal.RequireFromString("0.01"))
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, db.First(&got, w.ID).Error)
	require.Equal(t, "0.00", got.Balance.StringFixed(2))
}

func TestWalletDeductFundsRejectsNonPositive(t *testing.T) {
	db := newTestDB(t)
	w := seedWallet(t, db, "100.00")

	ok, err := w.DeductFunds(db, decimal.Zero)
	require.ErrorIs(t, err, ErrInvalidAmount)
	require.False(t, ok)

	ok, err = w.DeductFunds(db, decimal.RequireFromString("-5"))
	require.ErrorIs(t, err, ErrInvalidAmount)
	require.False(t, ok)

	var got Wallet
	require.NoError(t, db.First(&got, w.ID).Error)
	require.Equal(t, "100.00", got.Balance.StringFixed(2))
}

func TestWalletOnePerUser(t *testing.T) {
	db := newTestDB(t)
	w := seedWallet(t, db, "0.00")

	dup := &Wallet{UserID: w.UserID, Currency: "USD"}
	require.Error(t, db.Create(dup).Error)
}
