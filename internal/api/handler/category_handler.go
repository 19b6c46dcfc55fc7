package handler

import (
	"Bloghouse/internal/api/dto"
	"Bloghouse/internal/pkg/i18n"
	"Bloghouse/internal/pkg/response"
	"Bloghouse/internal/pkg/util"
	"Bloghouse/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categorySvc service.CategoryService
}

func NewCategoryHandler(categorySvc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categorySvc: categorySvc,
	}
}

func (s *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := s.categorySvc.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, categories, "")
}

func (s *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := util.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, service.ErrCategoryNotFound)
		return
	}

	category, err := s.categorySvc.GetCategory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, category, "")
}

func (s *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	category, err := s.categorySvc.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, category, i18n.CategoryCreated)
}

func (s *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := util.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, service.ErrCategoryNotFound)
		return
	}

	var req dto.CategoryBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		// 不存在的分类优先返回 404
		if _, getErr := s.categorySvc.GetCategory(c.Request.Context(), id); getErr != nil {
			response.Error(c, getErr)
			return
		}
		response.Error(c, err)
		return
	}

	category, err := s.categorySvc.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, category, i18n.CategoryUpdated)
}

func (s *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := util.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, service.ErrCategoryNotFound)
		return
	}

	if err := s.categorySvc.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil, i18n.CategoryDeleted)
}

// ListParentCandidates 父分类下拉框数据
func (s *CategoryHandler) ListParentCandidates(c *gin.Context) {
	candidates, err := s.categorySvc.ListParentCandidates(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, candidates, "")
}
