package service

import (
	"Bloghouse/internal/api/dto"
	"Bloghouse/internal/model"
	"Bloghouse/internal/pkg/util"
	"Bloghouse/internal/repository"
	"context"
	log "log/slog"

	"github.com/jinzhu/copier"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error)
	GetCategory(ctx context.Context, id uint64) (*dto.CategoryDTO, error)
	CreateCategory(ctx context.Context, req *dto.CategoryBaseDTO) (*dto.CategoryDTO, error)
	UpdateCategory(ctx context.Context, id uint64, req *dto.CategoryBaseDTO) (*dto.CategoryDTO, error)
	DeleteCategory(ctx context.Context, id uint64) error
	ListParentCandidates(ctx context.Context) ([]*dto.ParentCandidateDTO, error)
}

type categoryServiceImpl struct {
	txm          repository.TxManager
	categoryRepo repository.CategoryRepo
	policy       DeletePolicy
}

func NewCategoryService(txm repository.TxManager, categoryRepo repository.CategoryRepo, policy DeletePolicy) CategoryService {
	return &categoryServiceImpl{
		txm:          txm,
		categoryRepo: categoryRepo,
		policy:       policy,
	}
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		item, err := toCategoryDTO(c)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *categoryServiceImpl) GetCategory(ctx context.Context, id uint64) (*dto.CategoryDTO, error) {
	category, err := s.categoryRepo.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return toCategoryDTO(category)
}

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, req *dto.CategoryBaseDTO) (*dto.CategoryDTO, error) {
	req.Normalize()
	vErr, err := util.ValidateDTO(req)
	if err != nil {
		return nil, err
	}

	var created *model.Category
	err = s.txm.Transaction(ctx, func(ctx context.Context) error {
		if err := s.checkParentExists(ctx, req.ParentID, vErr); err != nil {
			return err
		}
		if err := vErr.OrNil(); err != nil {
			return err
		}

		category := &model.Category{
			Title:       req.Title,
			Slug:        util.Slugify(req.Title),
			ParentID:    model.RootCategoryID,
			Description: req.Description,
		}
		if req.ParentID != nil {
			category.ParentID = *req.ParentID
		}
		if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
			return err
		}

		loaded, err := s.categoryRepo.GetCategory(ctx, category.ID)
		created = loaded
		return err
	})
	if err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "category created", "category_id", created.ID, "parent_id", created.ParentID)
	return toCategoryDTO(created)
}

func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, id uint64, req *dto.CategoryBaseDTO) (*dto.CategoryDTO, error) {
	var updated *model.Category
	err := s.txm.Transaction(ctx, func(ctx context.Context) error {
		category, err := s.categoryRepo.LockCategory(ctx, id)
		if err != nil {
			return err
		}
		if category == nil {
			return ErrCategoryNotFound
		}

		req.Normalize()
		vErr, err := util.ValidateDTO(req)
		if err != nil {
			return err
		}
		if req.ParentID != nil && *req.ParentID == id {
			vErr.Add("parent_id", util.RuleNotIn, "")
		} else if err = s.checkParentExists(ctx, req.ParentID, vErr); err != nil {
			return err
		}
		if err = vErr.OrNil(); err != nil {
			return err
		}

		category.Title = req.Title
		category.Slug = util.Slugify(req.Title)
		category.Description = req.Description
		switch {
		case req.ParentID != nil:
			category.ParentID = *req.ParentID
		case category.IsRoot():
			// 根分类不能以自身为父
			category.ParentID = 0
		default:
			category.ParentID = model.RootCategoryID
		}
		if err = s.categoryRepo.UpdateCategory(ctx, category); err != nil {
			return err
		}

		updated, err = s.categoryRepo.GetCategory(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toCategoryDTO(updated)
}

func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, id uint64) error {
	err := s.txm.Transaction(ctx, func(ctx context.Context) error {
		category, err := s.categoryRepo.LockCategory(ctx, id)
		if err != nil {
			return err
		}
		if category == nil {
			return ErrCategoryNotFound
		}
		if err = s.policy.Check(ctx, model.EntityCategory, category.ID); err != nil {
			return err
		}
		return s.categoryRepo.DeleteCategory(ctx, category.ID)
	})
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "category deleted", "category_id", id)
	return nil
}

func (s *categoryServiceImpl) ListParentCandidates(ctx context.Context) ([]*dto.ParentCandidateDTO, error) {
	categories, err := s.categoryRepo.ListParentCandidates(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ParentCandidateDTO, 0, len(categories))
	if err = copier.Copy(&out, &categories); err != nil {
		return nil, err
	}
	return out, nil
}

// checkParentExists 锁定父分类行，使并发删除无法在本事务提交前移除它
func (s *categoryServiceImpl) checkParentExists(ctx context.Context, parentID *uint64, vErr *util.ValidationError) error {
	if parentID == nil {
		return nil
	}
	if !util.StorableID(*parentID) {
		vErr.Add("parent_id", util.RuleExists, "")
		return nil
	}
	parent, err := s.categoryRepo.LockCategory(ctx, *parentID)
	if err != nil {
		return err
	}
	if parent == nil {
		vErr.Add("parent_id", util.RuleExists, "")
	}
	return nil
}

func toCategoryDTO(c *model.Category) (*dto.CategoryDTO, error) {
	out := &dto.CategoryDTO{}
	if err := copier.Copy(out, c); err != nil {
		return nil, err
	}
	if c.Parent != nil {
		parent, err := toCategoryDTO(c.Parent)
		if err != nil {
			return nil, err
		}
		out.ParentCategory = parent
	}
	return out, nil
}
