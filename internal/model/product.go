package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product 数字商品：有库存、定价为两位小数的定点数，严格大于 0。
// 分类与订单项对商品是 RESTRICT 关系，被引用期间不允许删除。
type Product struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	SellerID    uint            `gorm:"not null;index" json:"seller_id"`
	Seller      *User           `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string          `gorm:"size:200;not null" json:"title"`
	Slug        string          `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Description string          `gorm:"type:text" json:"description"`
	CategoryID  uint            `gorm:"not null;index" json:"category_id"`
	Category    *Category       `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT" json:"-"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;check:chk_products_price,price > 0" json:"price"`
	Stock       int64           `gorm:"not null;default:0;check:chk_products_stock,stock >= 0" json:"stock"`

	// 数字商品的文件信息；文件存储本身在外部服务。
	FilePath     string `gorm:"size:255;not null" json:"file_path"`
	FileSize     int64  `gorm:"not null" json:"file_size"` // bytes
	PreviewImage string `gorm:"size:255" json:"preview_image"`

	IsActive      bool  `gorm:"not null;default:true" json:"is_active"`
	IsFeatured    bool  `gorm:"not null;default:false" json:"is_featured"`
	DownloadCount int64 `gorm:"not null;default:0" json:"download_count"`
}

func (Product) TableName() string { return "products" }

// IsAvailable 商品可售：已上架且库存大于 0。
func (p *Product) IsAvailable() bool {
	return p.IsActive && p.Stock > 0
}

// DecreaseStock 扣库存。仅当 stock >= quantity 时扣减并落库，否则返回 false 不做修改。
// 读改写序列，与并发扣减存在竞态；需要原子扣减请走 repository.ProductRepo.ReserveStock。
func (p *Product) DecreaseStock(db *gorm.DB, quantity int64) (bool, error) {
	if p.Stock < quantity {
		return false, nil
	}
	p.Stock -= quantity
	if err := db.Save(p).Error; err != nil {
		return false, err
	}
	return true, nil
}

// IncreaseStock 无条件加库存并落库。
func (p *Product) IncreaseStock(db *gorm.DB, quantity int64) error {
	p.Stock += quantity
	return db.Save(p).Error
}
