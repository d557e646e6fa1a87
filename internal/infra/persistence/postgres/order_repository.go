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

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order entity together with its line items.
// GORM's Create with associations inserts into orders and order_items in one pass.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "order references a missing row")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "order violates a line item constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Propagate the generated IDs back to the entity.
	order.ID = orderM.ID
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = itemM.OrderID
	}

	return nil
}

// FindByIDForUpdate retrieves the order header while taking an exclusive row
// lock, serializing concurrent status changes on the same order.
func (repo *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&orderM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}
		if isLockContention(err) {
			return nil, domainerrors.ErrLockContention
		}

		return nil, errors.Wrap(err, "failed to lock order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindWithDetailsByID retrieves the full detail graph in one fetch: items
// with their products, the customer and the shipping address.
func (repo *orderRepository) FindWithDetailsByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Items.Product").
		Preload("Customer").
		Preload("ShippingAddress").
		First(&orderM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// UpdateStatus persists a new status on the order header.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Search returns one page of orders matching the query plus the total match
// count, newest first. The detail graph is loaded for every returned order.
func (repo *orderRepository) Search(ctx context.Context, query repository.OrderQuery) ([]*entity.Order, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.OrderModel{})
	if query.CustomerID != nil {
		tx = tx.Where("customer_id = ?", *query.CustomerID)
	}
	if query.FromDate != nil {
		tx = tx.Where("order_date >= ?", *query.FromDate)
	}
	if query.ToDate != nil {
		tx = tx.Where("order_date <= ?", *query.ToDate)
	}
	if query.Status != nil {
		tx = tx.Where("status = ?", query.Status.String())
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderMs []*model.OrderModel
	err := tx.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Items.Product").
		Preload("Customer").
		Preload("ShippingAddress").
		Order("order_date DESC").
		Offset(query.Offset).
		Limit(query.Limit).
		Find(&orderMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to search orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for _, orderM := range orderMs {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for i := range data.Items {
		items = append(items, toOrderItemDomain(&data.Items[i]))
	}

	return &entity.Order{
		ID:                data.ID,
		CustomerID:        data.CustomerID,
		ShippingAddressID: data.ShippingAddressID,
		Customer:          toCustomerDomain(data.Customer),
		ShippingAddress:   toAddressDomain(data.ShippingAddress),
		OrderDate:         data.OrderDate,
		Status:            entity.OrderStatus(data.Status),
		Total:             data.Total,
		Items:             items,
	}
}

// toOrderItemDomain converts a GORM OrderItemModel to a domain OrderItem entity.
func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Product:   toProductDomain(data.Product),
		Quantity:  data.Quantity,
		UnitPrice: data.UnitPrice,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel for persistence.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return &model.OrderModel{
		ID:                data.ID,
		CustomerID:        data.CustomerID,
		ShippingAddressID: data.ShippingAddressID,
		OrderDate:         data.OrderDate,
		Status:            data.Status.String(),
		Total:             data.Total,
		Items:             items,
	}
}
