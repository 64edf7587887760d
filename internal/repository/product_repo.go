package repository

import (
	"gorm.io/gorm"

	"marketplace/internal/model"
)

// ProductRepo 商品存取。ReserveStock/RestockBy 是条件 UPDATE 版本的库存操作，
// 结账路径用它们避免并发超卖。
type ProductRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Create(p *model.Product) error {
	return r.db.Create(p).Error
}

func (r *ProductRepo) GetByID(id uint) (*model.Product, error) {
	var p model.Product
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) GetBySlug(slug string) (*model.Product, error) {
	var p model.Product
	if err := r.db.Where("slug = ?", slug).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListActive 按分类（可选）列出上架商品。
func (r *ProductRepo) ListActive(categoryID uint, limit, offset int) ([]model.Product, error) {
	q := r.db.Where("is_active = ?", true)
	if categoryID > 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	var out []model.Product
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error
	return out, err
}

// ReserveStock 原子扣库存：WHERE stock >= quantity 的条件 UPDATE。
// 库存不足时没有行被更新，返回 false。
func (r *ProductRepo) ReserveStock(productID uint, quantity int64) (bool, error) {
	res := r.db.Model(&model.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// RestockBy 原子加库存（取消、退款回补时使用）。
func (r *ProductRepo) RestockBy(productID uint, quantity int64) error {
	res := r.db.Model(&model.Product{}).
		Where("id = ?", productID).
		Update("stock", gorm.Expr("stock + ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementDownloads 下载计数 +1。
func (r *ProductRepo) IncrementDownloads(productID uint) error {
	return r.db.Model(&model.Product{}).
		Where("id = ?", productID).
		Update("download_count", gorm.Expr("download_count + 1")).Error
}
