package usecase

import (
	"context"
	"time"

	"github.com/gerysx/spb-ecommerce/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput is the payload for creating or updating a catalog product.
type ProductInput struct {
	SKU         string          `json:"sku" validate:"required,max=40"`
	Name        string          `json:"name" validate:"required,max=160"`
	Description string          `json:"description,omitempty" validate:"max=2000"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Active      *bool           `json:"active,omitempty"`
}

// ProductOutput is the external projection of a product.
type ProductOutput struct {
	ID          uuid.UUID       `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProductSearchInput carries the optional filters of a catalog search.
type ProductSearchInput struct {
	PageRequest
	Name   string `query:"name"`
	Active *bool  `query:"active"`
}

// ProductUsecase drives the product catalog. Products are soft-deleted
// (deactivated) so historical order lines keep a valid reference.
type ProductUsecase interface {
	// Create registers a new product; the SKU must be unused.
	Create(ctx context.Context, input *ProductInput) (*ProductOutput, error)

	// GetByID returns one product.
	GetByID(ctx context.Context, productID uuid.UUID) (*ProductOutput, error)

	// Update modifies a product under an exclusive row lock. A changed SKU
	// must not collide with another product.
	Update(ctx context.Context, productID uuid.UUID, input *ProductInput) (*ProductOutput, error)

	// Deactivate soft-deletes the product (Active=false).
	Deactivate(ctx context.Context, productID uuid.UUID) error

	// Search returns a page of products filtered by name substring and
	// active flag.
	Search(ctx context.Context, input *ProductSearchInput) (*Page[ProductOutput], error)
}

// NewProductOutput maps a domain product to its external projection.
func NewProductOutput(product *entity.Product) *ProductOutput {
	return &ProductOutput{
		ID:          product.ID,
		SKU:         product.SKU,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		Active:      product.Active,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}
