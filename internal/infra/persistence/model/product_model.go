package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SKU         string          `gorm:"type:varchar(40);not null;uniqueIndex:ux_products_sku"`
	Name        string          `gorm:"type:varchar(160);not null;index:idx_products_on_name"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Stock       int             `gorm:"not null;default:0;check:stock >= 0"`
	// No column default: the application always writes the flag explicitly,
	// and a GORM default tag would drop Active=false on insert.
	Active bool `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
