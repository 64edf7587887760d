package repository

import (
	"time"

	"gorm.io/gorm"

	"marketplace/internal/model"
)

// AuditLogRepo 审计日志，append-only。同步写入方直接 Append；
// 异步路径走 internal/queue 的审计事件管道，最终也只会 Append。
type AuditLogRepo struct {
	db *gorm.DB
}

func NewAuditLogRepo(db *gorm.DB) *AuditLogRepo { return &AuditLogRepo{db: db} }

// Append 追加一条审计记录。
func (r *AuditLogRepo) Append(l *model.AuditLog) error {
	return r.db.Create(l).Error
}

// AuditFilter 查询过滤条件，零值字段忽略。
type AuditFilter struct {
	UserID       uint
	Action       model.AuditAction
	ResourceType string
	Since        time.Time
}

// List 按条件查询审计记录，新的在前。
func (r *AuditLogRepo) List(f AuditFilter, limit, offset int) ([]model.AuditLog, error) {
	q := r.db.Model(&model.AuditLog{})
	if f.UserID > 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.ResourceType != "" {
		q = q.Where("resource_type = ?", f.ResourceType)
	}
	if !f.Since.IsZero() {
		q = q.Where("created_at >= ?", f.Since)
	}
	var out []model.AuditLog
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error
	return out, err
}
