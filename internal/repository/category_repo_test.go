package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"marketplace/internal/model"
)

func TestCategoryRepoRejectsCycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepo(db)

	a := &model.Category{Name: "a", Slug: "a", IsActive: true}
	require.NoError(t, repo.Create(a))
	b := &model.Category{Name: "b", Slug: "b", ParentID: &a.ID, IsActive: true}
	require.NoError(t, repo.Create(b))

	// a 改挂到 b 下面会成环
	a.ParentID = &b.ID
	require.ErrorIs(t, repo.Update(a), model.ErrCategoryCycle)

	// 自己指自己也是环
	c := &model.Category{Name: "c", Slug: "c", IsActive: true}
	require.NoError(t, repo.Create(c))
	c.ParentID = &c.ID
	require.ErrorIs(t, repo.Update(c), model.ErrCategoryCycle)
}

func TestCategoryRepoListChildren(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepo(db)

	root := &model.Category{Name: "software", Slug: "software", IsActive: true}
	require.NoError(t, repo.Create(root))
	child1 := &model.Category{Name: "editors", Slug: "editors", ParentID: &root.ID, IsActive: true, SortOrder: 2}
	require.NoError(t, repo.Create(child1))
	child2 := &model.Category{Name: "compilers", Slug: "compilers", ParentID: &root.ID, IsActive: true, SortOrder: 1}
	require.NoError(t, repo.Create(child2))

	kids, err := repo.ListChildren(root.ID)
	require.NoError(t, err)
	require.Len(t, kids, 2)
	require.Equal(t, "compilers", kids[0].Slug)
	require.Equal(t, "editors", kids[1].Slug)
}
