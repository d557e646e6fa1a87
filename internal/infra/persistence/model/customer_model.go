// Package model contains the GORM-specific structs mapped to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	FullName  string    `gorm:"type:varchar(120);not null"`
	Email     string    `gorm:"type:varchar(160);not null;uniqueIndex:ux_customers_email"`
	Phone     string    `gorm:"type:varchar(20)"`
	Addresses []AddressModel `gorm:"foreignKey:CustomerID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
