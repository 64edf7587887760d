package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB 每个测试一个独立的内存库。
// 连接池压到 1，避免 :memory: 在多连接下各开各的库。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, AutoMigrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *User {
	t.Helper()
	u := &User{Email: email, FullName: "Test User", IsActive: true}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedWallet(t *testing.T, db *gorm.DB, balance string) *Wallet {
	t.Helper()
	u := seedUser(t, db, "wallet-"+balance+"@example.com")
	w := &Wallet{
		UserID:   u.ID,
		Balance:  decimal.RequireFromString(balance),
		Currency: "USD",
	}
	require.NoError(t, db.Create(w).Error)
	return w
}

func seedCategory(t *testing.T, db *gorm.DB, slug string, parentID *uint) *Category {
	t.Helper()
	c := &Category{Name: slug, Slug: slug, ParentID: parentID, IsActive: true}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedProduct(t *testing.T, db *gorm.DB, slug string, price string, stock int64) *Product {
	t.Helper()
	seller := seedUser(t, db, "seller-"+slug+"@example.com")
	cat := seedCategory(t, db, "cat-"+slug, nil)
	p := &Product{
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
