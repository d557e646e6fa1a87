package postgres

import (
	"context"

	"github.com/gerysx/spb-ecommerce/internal/domain/entity"
	domainerrors "github.com/gerysx/spb-ecommerce/internal/domain/errors"
	"github.com/gerysx/spb-ecommerce/internal/domain/repository"
	"github.com/gerysx/spb-ecommerce/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new catalog product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSKU
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "product violates a catalog constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	err := repo.db.WithContext(ctx).First(&productM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindByIDForUpdate retrieves a product while taking an exclusive row lock.
// Stock is only ever read and decremented under this lock, so concurrent
// orders serialize on the product row.
func (repo *productRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&productM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}
		if isLockContention(err) {
			return nil, domainerrors.ErrLockContention
		}

		return nil, errors.Wrap(err, "failed to lock product by id")
	}

	return toProductDomain(&productM), nil
}

// ExistsBySKU reports whether any product carries the SKU.
func (repo *productRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("sku = ?", sku).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check product sku existence")
	}

	return count > 0, nil
}

// ExistsBySKUExcluding reports whether another product already carries the SKU.
func (repo *productRepository) ExistsBySKUExcluding(ctx context.Context, sku string, excludeID uuid.UUID) (bool, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("sku = ? AND id <> ?", sku, excludeID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check product sku existence")
	}

	return count > 0, nil
}

// Update persists changes to an existing product. All mutable columns are
// written explicitly so zero values (stock 0, active false) are not skipped.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"sku":         product.SKU,
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"stock":       product.Stock,
			"active":      product.Active,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSKU
		}
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.NewDatabaseExecuteError(result.Error, "product violates a catalog constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Search returns one page of products matching the query plus the total match count.
func (repo *productRepository) Search(ctx context.Context, query repository.ProductQuery) ([]*entity.Product, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.ProductModel{})
	if query.NameContains != "" {
		tx = tx.Where("name ILIKE ?", "%"+query.NameContains+"%")
	}
	if query.Active != nil {
		tx = tx.Where("active = ?", *query.Active)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productMs []*model.ProductModel
	err := tx.
		Order("name ASC").
		Offset(query.Offset).
		Limit(query.Limit).
		Find(&productMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to search products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for _, productM := range productMs {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		SKU:         data.SKU,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Stock:       data.Stock,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel for persistence.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		SKU:         data.SKU,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Stock:       data.Stock,
		Active:      data.Active,
	}
}
