package repository

import (
	"gorm.io/gorm"

	"marketplace/internal/model"
)

// TicketRepo 工单存取。
type TicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *TicketRepo { return &TicketRepo{db: db} }

func (r *TicketRepo) Create(t *model.Ticket) error {
	return r.db.Create(t).Error
}

func (r *TicketRepo) GetByID(id uint) (*model.Ticket, error) {
	var t model.Ticket
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// ListByUser 用户自己的工单，新的在前。
func (r *TicketRepo) ListByUser(userID uint, limit, offset int) ([]model.Ticket, error) {
	var out []model.Ticket
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error
	return out, err
}

// UpdateStatus 状态与处理人都是建议性字段，直接更新。
func (r *TicketRepo) UpdateStatus(ticketID uint, status model.TicketStatus) error {
	res := r.db.Model(&model.Ticket{}).
		Where("id = ?", ticketID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Assign 指派处理人；assigneeID 为 nil 表示取消指派。
func (r *TicketRepo) Assign(ticketID uint, assigneeID *uint) error {
	res := r.db.Model(&model.Ticket{}).
		Where("id = ?", ticketID).
		Update("assigned_to_id", assigneeID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
