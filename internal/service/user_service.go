package service

import (
	"Bloghouse/internal/model"
	"Bloghouse/internal/pkg/util"
	"Bloghouse/internal/repository"
	"context"
	"strings"
)

// UserService 只服务于运维 CLI：作者账号由 blogctl 创建
type UserService interface {
	CreateUser(ctx context.Context, name, email string) (*model.User, error)
	GetUser(ctx context.Context, id uint64) (*model.User, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

type newUserInput struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
}

func (s *userServiceImpl) CreateUser(ctx context.Context, name, email string) (*model.User, error) {
	in := &newUserInput{Name: strings.TrimSpace(name), Email: strings.ToLower(strings.TrimSpace(email))}
	vErr, err := util.ValidateDTO(in)
	if err != nil {
		return nil, err
	}
	if err = vErr.OrNil(); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExist
	}

	user := &model.User{Name: in.Name, Email: in.Email}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userServiceImpl) GetUser(ctx context.Context, id uint64) (*model.User, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrAuthorNotFound
	}
	return user, nil
}
