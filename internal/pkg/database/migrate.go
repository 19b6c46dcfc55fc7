package database

import (
	"Bloghouse/internal/model"
	"Bloghouse/internal/pkg/util"
	"context"
	"errors"
	"fmt"
	log "log/slog"

	"gorm.io/gorm"
)

// RunMigrations 建表并写入根分类
func RunMigrations(ctx context.Context, db *gorm.DB, rootTitle string) error {
	log.InfoContext(ctx, "Running database migrations...")

	err := db.WithContext(ctx).AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Post{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err = SeedRootCategory(ctx, db, rootTitle); err != nil {
		return err
	}

	log.InfoContext(ctx, "Migrations completed successfully")
	return nil
}

// SeedRootCategory inserts the ROOT sentinel category when it is missing.
func SeedRootCategory(ctx context.Context, db *gorm.DB, title string) error {
	var root model.Category
	err := db.WithContext(ctx).First(&root, model.RootCategoryID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup root category: %w", err)
	}

	root = model.Category{
		ID:       model.RootCategoryID,
		ParentID: 0,
		Title:    title,
		Slug:     util.Slugify(title),
	}
	if err = db.WithContext(ctx).Create(&root).Error; err != nil {
		return fmt.Errorf("seed root category: %w", err)
	}
	// 显式写入 id 不会推进 postgres 序列
	if db.Dialector.Name() == "postgres" {
		err = db.WithContext(ctx).Exec(
			"SELECT setval(pg_get_serial_sequence('blog_categories', 'id'), (SELECT MAX(id) FROM blog_categories))",
		).Error
		if err != nil {
			return fmt.Errorf("sync category sequence: %w", err)
		}
	}
	log.InfoContext(ctx, "Seeded root category", "id", root.ID, "title", title)
	return nil
}
