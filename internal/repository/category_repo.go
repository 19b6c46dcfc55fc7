package repository

import (
	"Bloghouse/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepo interface {
	ListCategories(ctx context.Context) ([]*model.Category, error)
	GetCategory(ctx context.Context, id uint64) (*model.Category, error)
	LockCategory(ctx context.Context, id uint64) (*model.Category, error)
	ListParentCandidates(ctx context.Context) ([]*model.Category, error)
	CountChildren(ctx context.Context, id uint64) (int64, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	UpdateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, id uint64) error
}

type CategoryRepoImpl struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepo {
	return &CategoryRepoImpl{db: db}
}

// ListCategories 父分类通过一次批量 IN 查询加载，避免 N+1
func (s *CategoryRepoImpl) ListCategories(ctx context.Context) ([]*model.Category, error) {
	categories := make([]*model.Category, 0)
	err := conn(ctx, s.db).
		Preload("Parent").
		Order("id").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryRepoImpl) GetCategory(ctx context.Context, id uint64) (*model.Category, error) {
	category := &model.Category{}
	err := conn(ctx, s.db).Preload("Parent").First(category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return category, nil
}

// LockCategory 读取并对该行加写锁（SELECT ... FOR UPDATE），需在事务内调用
func (s *CategoryRepoImpl) LockCategory(ctx context.Context, id uint64) (*model.Category, error) {
	category := &model.Category{}
	err := conn(ctx, s.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryRepoImpl) ListParentCandidates(ctx context.Context) ([]*model.Category, error) {
	categories := make([]*model.Category, 0)
	err := conn(ctx, s.db).
		Select("id", "title", "parent_id").
		Order("title").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryRepoImpl) CountChildren(ctx context.Context, id uint64) (int64, error) {
	var count int64
	err := conn(ctx, s.db).Model(&model.Category{}).Where("parent_id = ?", id).Count(&count).Error
	return count, err
}

func (s *CategoryRepoImpl) CreateCategory(ctx context.Context, category *model.Category) error {
	return conn(ctx, s.db).Omit(clause.Associations).Create(category).Error
}

func (s *CategoryRepoImpl) UpdateCategory(ctx context.Context, category *model.Category) error {
	return conn(ctx, s.db).
		Model(category).
		Select("title", "slug", "parent_id", "description").
		Updates(category).Error
}

func (s *CategoryRepoImpl) DeleteCategory(ctx context.Context, id uint64) error {
	return conn(ctx, s.db).Delete(&model.Category{}, id).Error
}
