package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoryLevel(t *testing.T) {
	db := newTestDB(t)

	root := seedCategory(t, db, "software", nil)
	child := seedCategory(t, db, "dev-tools", &root.ID)
	grand := seedCategory(t, db, "editors", &child.ID)

	require.True(t, root.IsRoot())
	require.False(t, child.IsRoot())

	lv, err := root.Level(db)
	require.NoError(t, err)
	require.Equal(t, 0, lv)

	lv, err = child.Level(db)
	require.NoError(t, err)
	require.Equal(t, 1, lv)

	lv, err = grand.Level(db)
	require.NoError(t, err)
	require.Equal(t, 2, lv)
}

func TestCategoryLevelDetectsCycle(t *testing.T) {
	db := newTestDB(t)

	a := seedCategory(t, db, "a", nil)
	b := seedCategory(t, db, "b", &a.ID)

	// 人为把 a 的 parent 指回 b，绕过仓储层的环检查
	require.NoError(t, db.Model(&Category{}).Where("id = ?", a.ID).Update("parent_id", b.ID).Error)

	var got Category
	require.NoError(t, db.First(&got, b.ID).Error)
	_, err := got.Level(db)
	require.ErrorIs(t, err, ErrCategoryCycle)
}

func TestCategorySlugUnique(t *testing.T) {
	db := newTestDB(t)

	seedCategory(t, db, "books", nil)
	dup := &Category{Name: "Books Again", Slug: "books", IsActive: true}
	require.Error(t, db.Create(dup).Error)
}
