package model

import (
	"time"
)

type Post struct {
	ID          uint64     `gorm:"primaryKey" json:"id"`
	CategoryID  uint64     `gorm:"not null;index:idx_category_id" json:"category_id"`
	UserID      uint64     `gorm:"not null;index:idx_user_id" json:"user_id"`
	Slug        string     `gorm:"type:varchar(255);not null;index:idx_post_slug" json:"slug"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Excerpt     *string    `gorm:"type:text" json:"excerpt"`
	ContentRaw  string     `gorm:"type:text;not null" json:"content_raw"`
	IsPublished bool       `gorm:"not null;default:false" json:"is_published"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// 关联关系
	Category *Category `gorm:"foreignKey:CategoryID;references:ID" json:"-"`
	User     *User     `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (Post) TableName() string {
	return "blog_posts"
}

// ApplyPublishState moves the post into the requested publish state. The first
// transition to published stamps PublishedAt with now; staying published keeps
// the existing stamp; unpublishing clears it.
func (p *Post) ApplyPublishState(publish bool, now time.Time) {
	p.IsPublished = publish
	if !publish {
		p.PublishedAt = nil
		return
	}
	if p.PublishedAt == nil {
		stamp := now
		p.PublishedAt = &stamp
	}
}
