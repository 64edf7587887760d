package model

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrCategoryCycle 表示 parent 链存在环，树结构被破坏。
var ErrCategoryCycle = errors.New("category parent chain contains a cycle")

// Category 商品分类，parent 自引用构成多级树；根节点 parent 为空。
type Category struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string      `gorm:"size:100;not null" json:"name"`
	Slug        string      `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Description string      `gorm:"type:text" json:"description"`
	ParentID    *uint       `gorm:"index" json:"parent_id"`
	Parent      *Category   `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"-"`
	Children    []*Category `gorm:"foreignKey:ParentID" json:"-"`
	IsActive    bool        `gorm:"not null;default:true" json:"is_active"`
	SortOrder   uint        `gorm:"not null;default:0" json:"sort_order"`
}

func (Category) TableName() string { return "categories" }

// IsRoot 是否为根分类。
func (c *Category) IsRoot() bool { return c.ParentID == nil }

// Level 返回分类层级，根为 0，子节点逐级 +1。
// 沿 parent_id 回溯；遇到环时返回 ErrCategoryCycle，不会无限循环。
func (c *Category) Level(db *gorm.DB) (int, error) {
	seen := map[uint]struct{}{c.ID: {}}
	level := 0
	cur := c
	for cur.ParentID != nil {
		var parent Category
		if err := db.First(&parent, *cur.ParentID).Error; err != nil {
			return 0, err
		}
		if _, ok := seen[parent.ID]; ok {
			return 0, ErrCategoryCycle
		}
		seen[parent.ID] = struct{}{}
		level++
		cur = &parent
	}
	return level, nil
}
