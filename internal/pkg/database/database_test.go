package database

import (
	"Bloghouse/internal/api/config"
	"Bloghouse/internal/model"
	"Bloghouse/internal/pkg/util"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGormDB_UnsupportedDriver(t *testing.T) {
	_, err := NewGormDB(&config.DBConfig{Driver: "oracle", DSN: "x"})
	assert.Error(t, err)
}

func TestRunMigrations_SeedsRootOnce(t *testing.T) {
	ctx := context.Background()
	db, err := NewMemoryDB(ctx, t.Name())
	require.NoError(t, err)

	// second run must not duplicate or fail
	require.NoError(t, RunMigrations(ctx, db, "ignored"))

	var roots []model.Category
	require.NoError(t, db.Where("id = ?", model.RootCategoryID).Find(&roots).Error)
	require.Len(t, roots, 1)
	assert.Equal(t, "Без категорії", roots[0].Title)
	assert.Equal(t, uint64(0), roots[0].ParentID)
	assert.Equal(t, util.Slugify("Без категорії"), roots[0].Slug)
	assert.NotEqual(t, "root", roots[0].Slug)

	for _, table := range []string{"users", "blog_categories", "blog_posts"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestNewMemoryDB_Isolated(t *testing.T) {
	ctx := context.Background()
	a, err := NewMemoryDB(ctx, t.Name())
	require.NoError(t, err)
	b, err := NewMemoryDB(ctx, t.Name())
	require.NoError(t, err)

	require.NoError(t, a.Create(&model.Category{Title: "Only in A", Slug: "only-in-a", ParentID: model.RootCategoryID}).Error)

	var count int64
	require.NoError(t, b.Model(&model.Category{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
