package service

import (
	"Bloghouse/internal/api/dto"
	"Bloghouse/internal/model"
	"Bloghouse/internal/pkg/util"
	"Bloghouse/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
)

type PostService interface {
	ListPosts(ctx context.Context) ([]*dto.PostDTO, error)
	GetPost(ctx context.Context, id uint64) (*dto.PostDTO, error)
	CreatePost(ctx context.Context, authorID uint64, req *dto.PostBaseDTO) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, id uint64, req *dto.PostBaseDTO) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, id uint64) error
}

type postServiceImpl struct {
	txm          repository.TxManager
	postRepo     repository.PostRepo
	categoryRepo repository.CategoryRepo
	userRepo     repository.UserRepo
	policy       DeletePolicy
	now          func() time.Time
}

func NewPostService(
	txm repository.TxManager,
	postRepo repository.PostRepo,
	categoryRepo repository.CategoryRepo,
	userRepo repository.UserRepo,
	policy DeletePolicy,
) PostService {
	return &postServiceImpl{
		txm:          txm,
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		policy:       policy,
		now:          time.Now,
	}
}

func (s *postServiceImpl) ListPosts(ctx context.Context) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		item, err := toPostDTO(p)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, id uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return toPostDTO(post)
}

// CreatePost authorID 必须来自已认证的请求；为 0 说明路由未挂载鉴权，属于配置错误
func (s *postServiceImpl) CreatePost(ctx context.Context, authorID uint64, req *dto.PostBaseDTO) (*dto.PostDTO, error) {
	if authorID == 0 {
		log.ErrorContext(ctx, "post create reached without caller identity")
		return nil, ErrCallerIdentityMissing
	}
	author, err := s.userRepo.GetUserById(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}

	req.Normalize()
	vErr, err := validatePost(req)
	if err != nil {
		return nil, err
	}

	var created *model.Post
	err = s.txm.Transaction(ctx, func(ctx context.Context) error {
		if err := s.checkCategoryExists(ctx, req.CategoryID, vErr); err != nil {
			return err
		}
		if err := vErr.OrNil(); err != nil {
			return err
		}

		post := &model.Post{UserID: author.ID}
		s.fill(post, req)
		if err := s.postRepo.CreatePost(ctx, post); err != nil {
			return err
		}

		loaded, err := s.postRepo.GetPost(ctx, post.ID)
		created = loaded
		return err
	})
	if err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "post created", "post_id", created.ID, "user_id", created.UserID, "published", created.IsPublished)
	return toPostDTO(created)
}

func (s *postServiceImpl) UpdatePost(ctx context.Context, id uint64, req *dto.PostBaseDTO) (*dto.PostDTO, error) {
	var updated *model.Post
	err := s.txm.Transaction(ctx, func(ctx context.Context) error {
		post, err := s.postRepo.LockPost(ctx, id)
		if err != nil {
			return err
		}
		if post == nil {
			return ErrPostNotFound
		}

		req.Normalize()
		vErr, err := validatePost(req)
		if err != nil {
			return err
		}
		if err = s.checkCategoryExists(ctx, req.CategoryID, vErr); err != nil {
			return err
		}
		if err = vErr.OrNil(); err != nil {
			return err
		}

		s.fill(post, req)
		if err = s.postRepo.UpdatePost(ctx, post); err != nil {
			return err
		}

		updated, err = s.postRepo.GetPost(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toPostDTO(updated)
}

func (s *postServiceImpl) DeletePost(ctx context.Context, id uint64) error {
	err := s.txm.Transaction(ctx, func(ctx context.Context) error {
		post, err := s.postRepo.LockPost(ctx, id)
		if err != nil {
			return err
		}
		if post == nil {
			return ErrPostNotFound
		}
		if err = s.policy.Check(ctx, model.EntityPost, post.ID); err != nil {
			return err
		}
		return s.postRepo.DeletePost(ctx, post.ID)
	})
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "post deleted", "post_id", id)
	return nil
}

// fill 用请求整体替换可编辑字段，并推进发布状态
func (s *postServiceImpl) fill(post *model.Post, req *dto.PostBaseDTO) {
	post.Title = req.Title
	post.Slug = util.Slugify(req.Title)
	post.CategoryID = *req.CategoryID
	post.Excerpt = req.Excerpt
	post.ContentRaw = req.Content
	post.ApplyPublishState(req.Publish(), s.now())
}

// validatePost 标签规则之外，is_published 必须是可识别的布尔值
func validatePost(req *dto.PostBaseDTO) (*util.ValidationError, error) {
	vErr, err := util.ValidateDTO(req)
	if err != nil {
		return nil, err
	}
	if !req.IsPublished.Valid() {
		vErr.Add("is_published", util.RuleBoolean, "")
	}
	return vErr, nil
}

func (s *postServiceImpl) checkCategoryExists(ctx context.Context, categoryID *uint64, vErr *util.ValidationError) error {
	if categoryID == nil || vErr.Has("category_id") {
		return nil
	}
	if !util.StorableID(*categoryID) {
		vErr.Add("category_id", util.RuleExists, "")
		return nil
	}
	category, err := s.categoryRepo.LockCategory(ctx, *categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		vErr.Add("category_id", util.RuleExists, "")
	}
	return nil
}

func toPostDTO(p *model.Post) (*dto.PostDTO, error) {
	out := &dto.PostDTO{}
	if err := copier.Copy(out, p); err != nil {
		return nil, err
	}
	if p.User != nil {
		out.Author = &dto.UserSimpleDTO{}
		if err := copier.Copy(out.Author, p.User); err != nil {
			return nil, err
		}
	}
	if p.Category != nil {
		category, err := toCategoryDTO(p.Category)
		if err != nil {
			return nil, err
		}
		out.CategoryInfo = category
	}
	return out, nil
}
