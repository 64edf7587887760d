package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProductIsAvailable(t *testing.T) {
	cases := []struct {
		name   string
		active bool
		stock  int64
		want   bool
	}{
		{"active with stock", true, 3, true},
		{"active without stock", true, 0, false},
		{"inactive with stock", false, 3, false},
		{"inactive without stock", false, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := &Product{IsActive: c.active, Stock: c.stock}
			require.Equal(t, c.want, p.IsAvailable())
		})
	}
}

func TestProductDecreaseStock(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, "ebook-go", "19.99", 5)

	ok, err := p.DecreaseStock(db, 3)
	require.NoError(t, err)
	require.True(t, ok)

	var got Product
	require.NoError(t, db.First(&got, p.ID).Error)
	require.EqualValues(t, 2, got.Stock)

	// 剩 2 件扣 3 件，拒绝且库存不动
	ok, err = p.DecreaseStock(db, 3)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, db.First(&got, p.ID).Error)
	require.EqualValues(t, 2, got.Stock)
}

func TestProductIncreaseStock(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, "ebook-sql", "9.99", 2)

	require.NoError(t, p.IncreaseStock(db, 4))

	var got Product
	require.NoError(t, db.First(&got, p.ID).Error)
	require.EqualValues(t, 6, got.Stock)
}
