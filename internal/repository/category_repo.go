package repository

import (
	"gorm.io/gorm"

	"marketplace/internal/model"
)

// CategoryRepo 分类存取。
type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo { return &CategoryRepo{db: db} }

// Create 建分类前校验 parent 链无环（对源行为的加固，见 Category.Level）。
func (r *CategoryRepo) Create(c *model.Category) error {
	if err := r.checkParentChain(c); err != nil {
		return err
	}
	return r.db.Create(c).Error
}

// Update 改 parent 时同样走环检查。
func (r *CategoryRepo) Update(c *model.Category) error {
	if err := r.checkParentChain(c); err != nil {
		return err
	}
	return r.db.Save(c).Error
}

func (r *CategoryRepo) checkParentChain(c *model.Category) error {
	if c.ParentID == nil {
		return nil
	}
	seen := map[uint]struct{}{}
	if c.ID != 0 {
		seen[c.ID] = struct{}{}
	}
	next := c.ParentID
	for next != nil {
		if _, ok := seen[*next]; ok {
			return model.ErrCategoryCycle
		}
		seen[*next] = struct{}{}
		var parent model.Category
		if err := r.db.Select("id", "parent_id").First(&parent, *next).Error; err != nil {
			return err
		}
		next = parent.ParentID
	}
	return nil
}

func (r *CategoryRepo) GetByID(id uint) (*model.Category, error) {
	var c model.Category
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) GetBySlug(slug string) (*model.Category, error) {
	var c model.Category
	if err := r.db.Where("slug = ?", slug).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ListActive 上架分类，按展示顺序、名称排列。
func (r *CategoryRepo) ListActive() ([]model.Category, error) {
	var out []model.Category
	err := r.db.Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").Find(&out).Error
	return out, err
}

// ListChildren 某分类的直接子分类。
func (r *CategoryRepo) ListChildren(parentID uint) ([]model.Category, error) {
	var out []model.Category
	err := r.db.Where("parent_id = ?", parentID).
		Order("sort_order ASC, name ASC").Find(&out).Error
	return out, err
}
