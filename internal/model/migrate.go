package model

import "gorm.io/gorm"

// AutoMigrate 按依赖顺序建表（被引用方在前）。
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Wallet{},
		&Category{},
		&Product{},
		&Order{},
		&OrderItem{},
		&Transaction{},
		&Ticket{},
		&Review{},
		&AuditLog{},
	)
}
