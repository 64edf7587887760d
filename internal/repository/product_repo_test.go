package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProductRepoReserveStock(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, "ebook-go", "19.99", 5)
	repo := NewProductRepo(db)

	ok, err := repo.ReserveStock(p.ID, 3)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, got.Stock)

	ok, err = repo.ReserveStock(p.ID, 3)
	require.NoError(t, err)
	require.False(t, ok)

	got, err = repo.GetByID(p.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, got.Stock)
}

func TestProductRepoRestockBy(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, "ebook-sql", "9.99", 0)
	repo := NewProductRepo(db)

	require.NoError(t, repo.RestockBy(p.ID, 7))

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	require.EqualValues(t, 7, got.Stock)

	require.ErrorIs(t, repo.RestockBy(99999, 1), gorm.ErrRecordNotFound)
}

func TestProductRepoIncrementDownloads(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, "ebook-k8s", "14.99", 1)
	repo := NewProductRepo(db)

	require.NoError(t, repo.IncrementDownloads(p.ID))
	require.NoError(t, repo.IncrementDownloads(p.ID))

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, got.DownloadCount)
}

func TestProductRepoListActive(t *testing.T) {
	db := newTestDB(t)
	active := seedProduct(t, db, "ebook-live", "5.00", 3)
	inactive := seedProduct(t, db, "ebook-dead", "5.00", 3)
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	repo := NewProductRepo(db)
	list, err := repo.ListActive(0, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, active.ID, list[0].ID)

	// 按分类过滤
	list, err = repo.ListActive(active.CategoryID, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = repo.ListActive(inactive.CategoryID, 10, 0)
	require.NoError(t, err)
	require.Empty(t, list)
}
