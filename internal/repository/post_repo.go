package repository

import (
	"Bloghouse/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepo interface {
	ListPosts(ctx context.Context) ([]*model.Post, error)
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	LockPost(ctx context.Context, id uint64) (*model.Post, error)
	CountByCategory(ctx context.Context, categoryID uint64) (int64, error)
	CreatePost(ctx context.Context, post *model.Post) error
	UpdatePost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id uint64) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

// ListPosts 作者与分类各一次批量查询
func (s *PostRepoImpl) ListPosts(ctx context.Context) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	err := conn(ctx, s.db).
		Preload("User").
		Preload("Category").
		Order("id").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	post := &model.Post{}
	err := conn(ctx, s.db).Preload("User").Preload("Category").First(post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return post, nil
}

func (s *PostRepoImpl) LockPost(ctx context.Context, id uint64) (*model.Post, error) {
	post := &model.Post{}
	err := conn(ctx, s.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return post, nil
}

func (s *PostRepoImpl) CountByCategory(ctx context.Context, categoryID uint64) (int64, error) {
	var count int64
	err := conn(ctx, s.db).Model(&model.Post{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return conn(ctx, s.db).Omit(clause.Associations).Create(post).Error
}

// UpdatePost 整体替换可编辑字段，零值（false / nil）同样写入
func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post) error {
	return conn(ctx, s.db).
		Model(post).
		Select("category_id", "slug", "title", "excerpt", "content_raw", "is_published", "published_at").
		Updates(post).Error
}

func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return conn(ctx, s.db).Delete(&model.Post{}, id).Error
}
