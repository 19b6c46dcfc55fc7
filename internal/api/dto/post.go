package dto

import (
	"strings"
	"time"
)

// PostDTO 帖子，附带作者与分类
type PostDTO struct {
	ID           uint64         `json:"id"`
	CategoryID   uint64         `json:"category_id"`
	UserID       uint64         `json:"user_id"`
	Slug         string         `json:"slug"`
	Title        string         `json:"title"`
	Excerpt      *string        `json:"excerpt"`
	ContentRaw   string         `json:"content_raw"`
	IsPublished  bool           `json:"is_published"`
	PublishedAt  *time.Time     `json:"published_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	Author       *UserSimpleDTO `json:"user"`
	CategoryInfo *CategoryDTO   `json:"category"`
}

// PostBaseDTO 帖子 - 新增或修改
type PostBaseDTO struct {
	Title       string   `json:"title" validate:"required,max=255"`
	CategoryID  *uint64  `json:"category_id" validate:"required"`
	Excerpt     *string  `json:"excerpt" validate:"omitempty,max=500"`
	Content     string   `json:"content" validate:"required"`
	ContentRaw  string   `json:"content_raw" validate:"-"`
	IsPublished FlexBool `json:"is_published"`
}

// Normalize trims input and accepts content_raw as an alias of content.
func (d *PostBaseDTO) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
	d.Excerpt = trimOptional(d.Excerpt)
	if strings.TrimSpace(d.Content) == "" {
		d.Content = d.ContentRaw
	}
	d.Content = strings.TrimSpace(d.Content)
	d.ContentRaw = ""
}

// Publish is_published 缺省为 false
func (d *PostBaseDTO) Publish() bool {
	return d.IsPublished.Bool()
}

type UserSimpleDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
