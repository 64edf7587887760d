package repository

import (
	"gorm.io/gorm"

	"marketplace/internal/model"
)

// ReviewRepo 评价存取。一人一评由 (user_id, product_id) 唯一索引保证，
// 重复创建返回存储层的约束冲突错误。
type ReviewRepo struct {
	db *gorm.DB
}

func NewReviewRepo(db *gorm.DB) *ReviewRepo { return &ReviewRepo{db: db} }

func (r *ReviewRepo) Create(rev *model.Review) error {
	return r.db.Create(rev).Error
}

// ListByProduct 商品的评价，新的在前。
func (r *ReviewRepo) ListByProduct(productID uint, limit, offset int) ([]model.Review, error) {
	var out []model.Review
	err := r.db.Where("product_id = ?", productID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error
	return out, err
}

// GetByUserAndProduct 查某用户对某商品的评价。
func (r *ReviewRepo) GetByUserAndProduct(userID, productID uint) (*model.Review, error) {
	var rev model.Review
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&rev).Error
	if err != nil {
		return nil, err
	}
	return &rev, nil
}
