package repository

import (
	"gorm.io/gorm"

	"marketplace/internal/model"
)

// OrderRepo 订单存取。
type OrderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

// CreateWithItems 在一个事务里落订单与行项目。
// 订单号由 Order.BeforeCreate 生成，行总价由 OrderItem.BeforeSave 重算。
func (r *OrderRepo) CreateWithItems(order *model.Order, items []model.OrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		order.Items = items
		return nil
	})
}

func (r *OrderRepo) GetByID(id uint) (*model.Order, error) {
	var o model.Order
	if err := r.db.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) GetByOrderNo(orderNo string) (*model.Order, error) {
	var o model.Order
	if err := r.db.Preload("Items").Where("order_no = ?", orderNo).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ListByBuyer 买家订单列表，新单在前。
func (r *OrderRepo) ListByBuyer(buyerID uint, limit, offset int) ([]model.Order, error) {
	var out []model.Order
	err := r.db.Where("buyer_id = ?", buyerID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error
	return out, err
}

// UpdateStatus 直接改状态。迁移合法性不在这里强制，调用方自行判断
// （CanCancel/CanRefund 仅为建议）。
func (r *OrderRepo) UpdateStatus(orderID uint, status model.OrderStatus) error {
	res := r.db.Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
