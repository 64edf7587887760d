package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"marketplace/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, model.AutoMigrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	u := &model.User{Email: email, FullName: "Test User", IsActive: true}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedWallet(t *testing.T, db *gorm.DB, balance string) *model.Wallet {
	t.Helper()
	u := seedUser(t, db, "wallet-"+balance+"@example.com")
	w := &model.Wallet{
		UserID:   u.ID,
		Balance:  decimal.RequireFromString(balance),
		Currency: "USD",
	}
	require.NoError(t, db.Create(w).Error)
	return w
}

func seedProduct(t *testing.T, db *gorm.DB, slug string, price string, stock int64) *model.Product {
	t.Helper()
	seller := seedUser(t, db, "seller-"+slug+"@example.com")
	cat := &model.Category{Name: "cat-" + slug, Slug: "cat-" + slug, IsActive: true}
	require.NoError(t, db.Create(cat).Error)
	p := &model.Product{
		SellerID:   seller.ID,
		Title:      slug,
		Slug:       slug,
		CategoryID: cat.ID,
		Price:      decimal.RequireFromString(price),
		Stock:      stock,
		FilePath:   "products/" + slug + ".zip",
		FileSize:   1024,
		IsActive:   true,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}
