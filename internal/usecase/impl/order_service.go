package impl

import (
	"bytes"
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/gerysx/spb-ecommerce/internal/domain/entity"
	domainerrors "github.com/gerysx/spb-ecommerce/internal/domain/errors"
	"github.com/gerysx/spb-ecommerce/internal/domain/repository"
	"github.com/gerysx/spb-ecommerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// orderService implements the OrderUsecase interface. Order creation and
// status changes run entirely inside one transaction so an order can never
// be observed without its stock decrement or mid-transition.
type orderService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		logger:    logger,
	}
}

// Create validates the request, locks the referenced products, snapshots
// unit prices, persists the order and decrements stock, all atomically.
func (srv *orderService) Create(ctx context.Context, input *usecase.OrderCreateInput) (*usecase.OrderSummaryOutput, error) {
	srv.logger.Info("Creating order",
		"customerID", input.CustomerID,
		"shippingAddressID", input.ShippingAddressID,
		"itemCount", len(input.Items))

	var created *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.NewCustomerRepository()
		addressRepo := repoFactory.NewAddressRepository()
		productRepo := repoFactory.NewProductRepository()
		orderRepo := repoFactory.NewOrderRepository()

		// 1. Resolve the customer.
		if _, err := customerRepo.FindByID(ctx, input.CustomerID); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrCustomerNotFound, input.CustomerID.String())
			}

			return errors.Wrap(err, "failed to find customer")
		}

		// 2. Resolve the shipping address, then enforce ownership. The two
		// checks are separate so an unknown address id is not-found while an
		// existing address of another customer is a business-rule violation.
		shippingAddr, err := addressRepo.FindByID(ctx, input.ShippingAddressID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, input.ShippingAddressID.String())
			}

			return errors.Wrap(err, "failed to find shipping address")
		}
		if shippingAddr.CustomerID != input.CustomerID {
			return errors.Wrap(domainerrors.ErrAddressNotOwnedByCustomer, input.ShippingAddressID.String())
		}

		// 3. An order needs at least one line.
		if len(input.Items) == 0 {
			return errors.WithStack(domainerrors.ErrOrderItemsEmpty)
		}

		// 4. Aggregate the requested quantity per distinct product. Repeated
		// lines for the same product are checked against stock cumulatively.
		requested := make(map[uuid.UUID]int, len(input.Items))
		for _, item := range input.Items {
			requested[item.ProductID] += item.Quantity
		}

		// 5. Lock the product rows in a deterministic order so two orders
		// touching the same products cannot deadlock each other.
		productIDs := make([]uuid.UUID, 0, len(requested))
		for id := range requested {
			productIDs = append(productIDs, id)
		}
		sort.Slice(productIDs, func(i, j int) bool {
			return bytes.Compare(productIDs[i][:], productIDs[j][:]) < 0
		})

		products := make(map[uuid.UUID]*entity.Product, len(productIDs))
		for _, id := range productIDs {
			product, err := productRepo.FindByIDForUpdate(ctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return errors.Wrap(domainerrors.ErrProductNotFound, id.String())
				}

				return errors.Wrap(err, "failed to lock product")
			}

			if !product.Active {
				return errors.Wrap(domainerrors.ErrInactiveProduct, product.SKU)
			}
			if product.Stock < requested[id] {
				return errors.WithStack(&domainerrors.InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Requested:   requested[id],
					Available:   product.Stock,
				})
			}

			products[id] = product
		}

		// 6. Build the order, snapshotting the current unit price into each
		// line so later catalog price changes never rewrite history.
		order := &entity.Order{
			CustomerID:        input.CustomerID,
			ShippingAddressID: input.ShippingAddressID,
			OrderDate:         time.Now().UTC(),
			Status:            entity.OrderStatusCreated,
			Total:             decimal.Zero,
		}
		for _, item := range input.Items {
			product := products[item.ProductID]
			line := &entity.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.Price,
			}
			order.Items = append(order.Items, line)
			order.Total = order.Total.Add(line.LineTotal())
		}

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		// 7. Decrement stock while the locks are still held.
		for _, id := range productIDs {
			product := products[id]
			product.Stock -= requested[id]
			if err := productRepo.Update(ctx, product); err != nil {
				return errors.Wrap(err, "failed to decrement stock")
			}
		}

		created = order

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}
	srv.logger.Info("Order created", "orderID", created.ID, "total", created.Total)

	return usecase.NewOrderSummaryOutput(created), nil
}

// ChangeStatus drives the order state machine under an exclusive row lock.
func (srv *orderService) ChangeStatus(ctx context.Context, orderID uuid.UUID, status string) (*usecase.OrderOutput, error) {
	srv.logger.Info("Changing order status", "orderID", orderID, "status", status)

	// Unknown status strings are a validation problem, not a conflict.
	target, err := entity.ParseOrderStatus(status)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidOrderStatus, status)
	}

	var updated *entity.Order

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		// 1. Lock the header; concurrent transitions on the same order
		// serialize here and re-evaluate against the committed status.
		order, err := orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, orderID.String())
			}

			return errors.Wrap(err, "failed to lock order")
		}

		// 2. The transition table is the single authority on legal moves.
		if !order.Status.CanTransitionTo(target) {
			return errors.WithStack(&domainerrors.InvalidTransitionError{
				From: order.Status,
				To:   target,
			})
		}

		if err := orderRepo.UpdateStatus(ctx, orderID, target); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		detail, err := orderRepo.FindWithDetailsByID(ctx, orderID)
		if err != nil {
			return errors.Wrap(err, "failed to reload order")
		}
		updated = detail

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to change order status")
	}
	srv.logger.Info("Order status changed", "orderID", orderID, "status", target)

	return usecase.NewOrderOutput(updated), nil
}

// GetByID returns the full detail projection of one order.
func (srv *orderService) GetByID(ctx context.Context, orderID uuid.UUID) (*usecase.OrderOutput, error) {
	srv.logger.Debug("Getting order", "orderID", orderID)

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewOrderRepository().FindWithDetailsByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, orderID.String())
			}

			return errors.Wrap(err, "failed to find order")
		}
		order = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}

	return usecase.NewOrderOutput(order), nil
}

// Search returns a page of orders matching the filters, newest first.
func (srv *orderService) Search(ctx context.Context, input *usecase.OrderSearchInput) (*usecase.Page[usecase.OrderOutput], error) {
	page := input.Normalize()

	query := repository.OrderQuery{
		CustomerID: input.CustomerID,
		FromDate:   input.FromDate,
		ToDate:     input.ToDate,
		Offset:     page.Offset(),
		Limit:      page.Size,
	}
	if input.Status != "" {
		status, err := entity.ParseOrderStatus(input.Status)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrInvalidOrderStatus, input.Status)
		}
		query.Status = &status
	}

	var (
		orders []*entity.Order
		total  int64
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, count, err := repoFactory.NewOrderRepository().Search(ctx, query)
		if err != nil {
			return errors.Wrap(err, "failed to search orders")
		}
		orders, total = found, count

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to search orders")
	}

	outputs := make([]usecase.OrderOutput, 0, len(orders))
	for _, order := range orders {
		outputs = append(outputs, *usecase.NewOrderOutput(order))
	}

	return usecase.NewPage(outputs, page, total), nil
}
