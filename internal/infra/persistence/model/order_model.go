package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CustomerID        uuid.UUID `gorm:"type:uuid;not null;index:idx_orders_on_customer"`
	ShippingAddressID uuid.UUID `gorm:"type:uuid;not null"`
	Customer          *CustomerModel  `gorm:"foreignKey:CustomerID"`
	ShippingAddress   *AddressModel   `gorm:"foreignKey:ShippingAddressID"`
	OrderDate         time.Time       `gorm:"not null;index:idx_orders_on_date"`
	Status            string          `gorm:"type:varchar(20);not null;index:idx_orders_on_status"`
	Total             decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Items             []OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// UnitPrice is the snapshot taken at order creation.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index:idx_order_items_on_order"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Product   *ProductModel   `gorm:"foreignKey:ProductID"`
	Quantity  int             `gorm:"not null;check:quantity > 0"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
