package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table. The
// partial unique index keeps more than one default per customer out of the
// table even if application code misbehaves.
type AddressModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index:idx_addresses_on_customer;uniqueIndex:ux_addresses_default_per_customer,where:is_default"`
	Line1      string    `gorm:"type:varchar(160);not null"`
	Line2      string    `gorm:"type:varchar(160)"`
	City       string    `gorm:"type:varchar(80);not null"`
	PostalCode string    `gorm:"type:varchar(20);not null"`
	Country    string    `gorm:"type:varchar(80);not null"`
	IsDefault  bool      `gorm:"column:is_default;not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
