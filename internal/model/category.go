package model

import (
	"time"
)

// RootCategoryID 根分类哨兵：顶级分类的 parent_id 指向它
const RootCategoryID uint64 = 1

type Category struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	ParentID    uint64    `gorm:"not null;default:0;index:idx_parent_id" json:"parent_id"`
	Slug        string    `gorm:"type:varchar(255);not null;index:idx_slug" json:"slug"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 关联关系
	Parent *Category `gorm:"foreignKey:ParentID;references:ID" json:"-"`
}

func (Category) TableName() string {
	return "blog_categories"
}

func (c *Category) IsRoot() bool {
	return c.ID == RootCategoryID
}
