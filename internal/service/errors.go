package service

import (
	"Bloghouse/internal/pkg/i18n"
	"errors"
	"net/http"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryIsRoot        = errors.New("root category cannot be deleted")
	ErrCategoryHasChildren   = errors.New("category has child categories")
	ErrCategoryHasPosts      = errors.New("category has posts")
	ErrPostNotFound          = errors.New("post not found")
	ErrAuthorNotFound        = errors.New("author does not exist")
	ErrCallerIdentityMissing = errors.New("caller identity missing from request context")
	ErrUserExist             = errors.New("user already exists")
)

// ErrorInfo HTTP 状态码与用户可见消息
type ErrorInfo struct {
	Status  int
	Message i18n.Key
}

var ErrorMap = map[error]ErrorInfo{
	ErrCategoryNotFound:      {http.StatusNotFound, i18n.CategoryNotFound},
	ErrCategoryIsRoot:        {http.StatusUnprocessableEntity, i18n.CategoryDeleteRoot},
	ErrCategoryHasChildren:   {http.StatusUnprocessableEntity, i18n.CategoryDeleteHasChild},
	ErrCategoryHasPosts:      {http.StatusUnprocessableEntity, i18n.CategoryDeleteHasPosts},
	ErrPostNotFound:          {http.StatusNotFound, i18n.PostNotFound},
	ErrAuthorNotFound:        {http.StatusUnauthorized, i18n.AuthUnknownUser},
	ErrCallerIdentityMissing: {http.StatusInternalServerError, i18n.ServerIdentityMissing},
}

// LookupError 按 errors.Is 在 ErrorMap 中查找，支持被包装的错误
func LookupError(err error) (ErrorInfo, bool) {
	if info, ok := ErrorMap[err]; ok {
		return info, true
	}
	for sentinel, info := range ErrorMap {
		if errors.Is(err, sentinel) {
			return info, true
		}
	}
	return ErrorInfo{}, false
}
