package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"marketplace/internal/model"
)

func TestOrderRepoCreateWithItems(t *testing.T) {
	db := newTestDB(t)
	buyer := seedUser(t, db, "buyer@example.com")
	p := seedProduct(t, db, "ebook-go", "19.99", 10)
	repo := NewOrderRepo(db)

	order := &model.Order{
		BuyerID:    buyer.ID,
		TotalPrice: decimal.RequireFromString("39.98"),
		Status:     model.OrderStatusPaid,
	}
	items := []model.OrderItem{
		{ProductID: p.ID, Quantity: 2, Price: decimal.RequireFromString("19.99")},
	}
	require.NoError(t, repo.CreateWithItems(order, items))
	require.NotEmpty(t, order.OrderNo)

	got, err := repo.GetByOrderNo(order.OrderNo)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.Equal(t, order.ID, got.Items[0].OrderID)
	require.Equal(t, "39.98", got.Items[0].TotalPrice.StringFixed(2))
}

func TestOrderRepoListByBuyer(t *testing.T) {
	db := newTestDB(t)
	buyer := seedUser(t, db, "buyer2@example.com")
	other := seedUser(t, db, "buyer3@example.com")
	repo := NewOrderRepo(db)

	require.NoError(t, repo.CreateWithItems(&model.Order{BuyerID: buyer.ID, TotalPrice: decimal.Zero}, nil))
	require.NoError(t, repo.CreateWithItems(&model.Order{BuyerID: buyer.ID, TotalPrice: decimal.Zero}, nil))
	require.NoError(t, repo.CreateWithItems(&model.Order{BuyerID: other.ID, TotalPrice: decimal.Zero}, nil))

	list, err := repo.ListByBuyer(buyer.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestOrderRepoUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	buyer := seedUser(t, db, "buyer4@example.com")
	repo := NewOrderRepo(db)

	order := &model.Order{BuyerID: buyer.ID, TotalPrice: decimal.Zero}
	require.NoError(t, repo.CreateWithItems(order, nil))

	require.NoError(t, repo.UpdateStatus(order.ID, model.OrderStatusCanceled))

	got, err := repo.GetByID(order.ID)
	require.NoError(t, err)
	require.Equal(t, model.OrderStatusCanceled, got.Status)

	require.ErrorIs(t, repo.UpdateStatus(99999, model.OrderStatusPaid), gorm.ErrRecordNotFound)
}
