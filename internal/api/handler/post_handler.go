package handler

import (
	"Bloghouse/internal/api/dto"
	"Bloghouse/internal/pkg/consts"
	"Bloghouse/internal/pkg/i18n"
	"Bloghouse/internal/pkg/response"
	"Bloghouse/internal/pkg/util"
	"Bloghouse/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

func (s *PostHandler) ListPosts(c *gin.Context) {
	posts, err := s.postSvc.ListPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, posts, "")
}

func (s *PostHandler) GetPost(c *gin.Context) {
	id, ok := util.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, service.ErrPostNotFound)
		return
	}

	post, err := s.postSvc.GetPost(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, post, "")
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint64(consts.UserIDKey)

	var req dto.PostBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, post, i18n.PostCreated)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := util.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, service.ErrPostNotFound)
		return
	}

	var req dto.PostBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		if _, getErr := s.postSvc.GetPost(c.Request.Context(), id); getErr != nil {
			response.Error(c, getErr)
			return
		}
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.UpdatePost(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, post, i18n.PostUpdated)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	id, ok := util.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, service.ErrPostNotFound)
		return
	}

	if err := s.postSvc.DeletePost(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil, i18n.PostDeleted)
}
