package database

import (
	"Bloghouse/internal/api/config"
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"gorm.io/gorm"
)

var memSeq atomic.Uint64

// NewMemoryDB opens a migrated, private in-memory sqlite database for tests.
func NewMemoryDB(ctx context.Context, name string) (*gorm.DB, error) {
	name = strings.NewReplacer("/", "_", " ", "_").Replace(name)
	db, err := NewGormDB(&config.DBConfig{
		Driver:      "sqlite",
		DSN:         fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, memSeq.Add(1)),
		MaxLifetime: 0,
	})
	if err != nil {
		return nil, err
	}
	if err = RunMigrations(ctx, db, "Без категорії"); err != nil {
		return nil, err
	}
	return db, nil
}
