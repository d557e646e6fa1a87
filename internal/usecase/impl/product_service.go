package impl

import (
	"context"
	"log/slog"

	"github.com/gerysx/spb-ecommerce/internal/domain/entity"
	domainerrors "github.com/gerysx/spb-ecommerce/internal/domain/errors"
	"github.com/gerysx/spb-ecommerce/internal/domain/repository"
	"github.com/gerysx/spb-ecommerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		txManager: txManager,
		logger:    logger,
	}
}

// Create registers a new catalog product. A missing Active flag defaults to
// true.
func (srv *productService) Create(ctx context.Context, input *usecase.ProductInput) (*usecase.ProductOutput, error) {
	srv.logger.Info("Creating product", "sku", input.SKU)

	var created *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		exists, err := productRepo.ExistsBySKU(ctx, input.SKU)
		if err != nil {
			return errors.Wrap(err, "failed to check sku uniqueness")
		}
		if exists {
			return errors.Wrap(domainerrors.ErrSKUAlreadyInUse, input.SKU)
		}

		product := &entity.Product{
			SKU:         input.SKU,
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Stock:       input.Stock,
			Active:      true,
		}
		if input.Active != nil {
			product.Active = *input.Active
		}

		if err := productRepo.Create(ctx, product); err != nil {
			if errors.Is(err, repository.ErrDuplicateSKU) {
				return errors.Wrap(domainerrors.ErrSKUAlreadyInUse, input.SKU)
			}

			return errors.Wrap(err, "failed to create product")
		}
		created = product

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}
	srv.logger.Info("Product created", "productID", created.ID, "sku", created.SKU)

	return usecase.NewProductOutput(created), nil
}

// GetByID returns one product.
func (srv *productService) GetByID(ctx context.Context, productID uuid.UUID) (*usecase.ProductOutput, error) {
	srv.logger.Debug("Getting product", "productID", productID)

	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewProductRepository().FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, productID.String())
			}

			return errors.Wrap(err, "failed to find product")
		}
		product = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	return usecase.NewProductOutput(product), nil
}

// Update modifies a product under an exclusive row lock. The lock keeps the
// update from interleaving with concurrent stock decrements.
func (srv *productService) Update(ctx context.Context, productID uuid.UUID, input *usecase.ProductInput) (*usecase.ProductOutput, error) {
	srv.logger.Info("Updating product", "productID", productID)

	var updated *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := productRepo.FindByIDForUpdate(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, productID.String())
			}

			return errors.Wrap(err, "failed to lock product")
		}

		if input.SKU != product.SKU {
			exists, err := productRepo.ExistsBySKUExcluding(ctx, input.SKU, productID)
			if err != nil {
				return errors.Wrap(err, "failed to check sku uniqueness")
			}
			if exists {
				return errors.Wrap(domainerrors.ErrSKUAlreadyInUse, input.SKU)
			}
		}

		product.SKU = input.SKU
		product.Name = input.Name
		product.Description = input.Description
		product.Price = input.Price
		product.Stock = input.Stock
		if input.Active != nil {
			product.Active = *input.Active
		}

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product")
		}
		updated = product

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}
	srv.logger.Info("Product updated", "productID", productID)

	return usecase.NewProductOutput(updated), nil
}

// Deactivate soft-deletes the product so historical order lines keep a valid
// reference. Idempotent.
func (srv *productService) Deactivate(ctx context.Context, productID uuid.UUID) error {
	srv.logger.Info("Deactivating product", "productID", productID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := productRepo.FindByIDForUpdate(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, productID.String())
			}

			return errors.Wrap(err, "failed to lock product")
		}

		if !product.Active {
			return nil
		}
		product.Active = false

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to deactivate product")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to deactivate product")
	}
	srv.logger.Info("Product deactivated", "productID", productID)

	return nil
}

// Search returns a page of products filtered by name substring and active
// flag.
func (srv *productService) Search(ctx context.Context, input *usecase.ProductSearchInput) (*usecase.Page[usecase.ProductOutput], error) {
	page := input.Normalize()

	var (
		products []*entity.Product
		total    int64
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, count, err := repoFactory.NewProductRepository().Search(ctx, repository.ProductQuery{
			NameContains: input.Name,
			Active:       input.Active,
			Offset:       page.Offset(),
			Limit:        page.Size,
		})
		if err != nil {
			return errors.Wrap(err, "failed to search products")
		}
		products, total = found, count

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	outputs := make([]usecase.ProductOutput, 0, len(products))
	for _, product := range products {
		outputs = append(outputs, *usecase.NewProductOutput(product))
	}

	return usecase.NewPage(outputs, page, total), nil
}
