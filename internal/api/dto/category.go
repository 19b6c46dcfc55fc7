package dto

import (
	"strings"
	"time"
)

// CategoryDTO 分类，parent_category 为已解析的父分类
type CategoryDTO struct {
	ID             uint64       `json:"id"`
	ParentID       uint64       `json:"parent_id"`
	Slug           string       `json:"slug"`
	Title          string       `json:"title"`
	Description    *string      `json:"description"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	ParentCategory *CategoryDTO `json:"parent_category"`
}

// CategoryBaseDTO 分类 - 新增或修改
type CategoryBaseDTO struct {
	Title       string  `json:"title" validate:"required,max=255"`
	ParentID    *uint64 `json:"parent_id"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// Normalize trims input; a blank description counts as absent.
func (d *CategoryBaseDTO) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = trimOptional(d.Description)
}

// ParentCandidateDTO 父分类选择器条目
type ParentCandidateDTO struct {
	ID       uint64 `json:"id"`
	Title    string `json:"title"`
	ParentID uint64 `json:"parent_id"`
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
