package service

import (
	"Bloghouse/internal/model"
	"Bloghouse/internal/repository"
	"context"
)

// DeleteGuard 删除前必须成立的一条约束；Violated 返回 true 时以 Err 拒绝删除
type DeleteGuard struct {
	Name     string
	Err      error
	Violated func(ctx context.Context, id uint64) (bool, error)
}

// DeletePolicy 每种实体的删除前检查表。分类有三条，帖子没有依赖方，列表为空。
type DeletePolicy map[model.Entity][]DeleteGuard

func NewDeletePolicy(categoryRepo repository.CategoryRepo, postRepo repository.PostRepo) DeletePolicy {
	return DeletePolicy{
		model.EntityCategory: {
			{
				Name: "root",
				Err:  ErrCategoryIsRoot,
				Violated: func(_ context.Context, id uint64) (bool, error) {
					return id == model.RootCategoryID, nil
				},
			},
			{
				Name: "children",
				Err:  ErrCategoryHasChildren,
				Violated: func(ctx context.Context, id uint64) (bool, error) {
					n, err := categoryRepo.CountChildren(ctx, id)
					return n > 0, err
				},
			},
			{
				Name: "posts",
				Err:  ErrCategoryHasPosts,
				Violated: func(ctx context.Context, id uint64) (bool, error) {
					n, err := postRepo.CountByCategory(ctx, id)
					return n > 0, err
				},
			},
		},
		model.EntityPost: nil,
	}
}

// Guards 返回实体的检查名称，便于审查与测试
func (p DeletePolicy) Guards(entity model.Entity) []string {
	names := make([]string, 0, len(p[entity]))
	for _, g := range p[entity] {
		names = append(names, g.Name)
	}
	return names
}

// Check runs the entity's guards in order and returns the first violation.
// Call it inside the transaction that performs the delete.
func (p DeletePolicy) Check(ctx context.Context, entity model.Entity, id uint64) error {
	for _, g := range p[entity] {
		violated, err := g.Violated(ctx, id)
		if err != nil {
			return err
		}
		if violated {
			return g.Err
		}
	}
	return nil
}
