package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReviewOnePerUserProduct(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "reviewer@example.com")
	p := seedProduct(t, db, "ebook-rust", "29.99", 10)

	first := &Review{UserID: u.ID, ProductID: p.ID, Rating: 5, Comment: "great"}
	require.NoError(t, db.Create(first).Error)

	dup := &Review{UserID: u.ID, ProductID: p.ID, Rating: 1, Comment: "changed my mind"}
	require.Error(t, db.Create(dup).Error)

	// 同一用户评不同商品没有限制
	p2 := seedProduct(t, db, "ebook-zig", "29.99", 10)
	other := &Review{UserID: u.ID, ProductID: p2.ID, Rating: 4, Comment: "ok"}
	require.NoError(t, db.Create(other).Error)
}

func TestReviewRatingRange(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "rater@example.com")
	p := seedProduct(t, db, "ebook-c", "5.00", 10)

	for _, rating := range []int{0, 6, -1} {
		r := &Review{UserID: u.ID, ProductID: p.ID, Rating: rating, Comment: "x"}
		require.Error(t, db.Create(r).Error, "rating %d", rating)
	}

	ok := &Review{UserID: u.ID, ProductID: p.ID, Rating: 1, Comment: "meh"}
	require.NoError(t, db.Create(ok).Error)
}
