package orders

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/locallinkhq/locallink-backend/pkg/db/models"
	"github.com/locallinkhq/locallink-backend/pkg/enums"
	pkgerrors "github.com/locallinkhq/locallink-backend/pkg/errors"
	"github.com/locallinkhq/locallink-backend/pkg/metrics"
	"github.com/locallinkhq/locallink-backend/pkg/pagination"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// InventoryAdjuster moves stock inside the order transaction.
type InventoryAdjuster interface {
	Reserve(ctx context.Context, tx *gorm.DB, productID uuid.UUID, qty int) error
	Release(ctx context.Context, tx *gorm.DB, productID uuid.UUID, qty int) error
}

// Service defines the order lifecycle operations.
type Service interface {
	Create(ctx context.Context, input CreateInput) ([]models.Order, error)
	ListForCustomer(ctx context.Context, customerID uuid.UUID, filter ListFilter) ([]models.Order, pagination.Meta, error)
	ListForVendor(ctx context.Context, vendorID uuid.UUID, filter ListFilter) ([]models.Order, pagination.Meta, error)
	Get(ctx context.Context, principal Principal, orderID uuid.UUID) (*models.Order, error)
	UpdateStatus(ctx context.Context, input UpdateStatusInput) (*models.Order, error)
	Cancel(ctx context.Context, principal Principal, orderID uuid.UUID) (*models.Order, error)
}

type service struct {
	repo      Repository
	tx        txRunner
	inventory InventoryAdjuster
	lifecycle *metrics.LifecycleMetrics
	now       func() time.Time
}

// Option configures optional order engine collaborators.
type Option func(*service)

// WithLifecycleMetrics counts create/cancel/status outcomes.
func WithLifecycleMetrics(m *metrics.LifecycleMetrics) Option {
	return func(s *service) { s.lifecycle = m }
}

// NewService builds the order engine with the required dependencies.
func NewService(repo Repository, tx txRunner, inventory InventoryAdjuster, opts ...Option) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if inventory == nil {
		return nil, fmt.Errorf("inventory adjuster required")
	}
	svc := &service{
		repo:      repo,
		tx:        tx,
		inventory: inventory,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

func (s *service) observe(operation string, err error) {
	if err != nil {
		s.lifecycle.IncFailure(operation)
		return
	}
	s.lifecycle.IncSuccess(operation)
}

// Create validates the cart, splits it by vendor and persists every
// resulting order, its item snapshots and the stock decrements in one
// transaction. Any failure rolls the whole cart back.
func (s *service) Create(ctx context.Context, input CreateInput) ([]models.Order, error) {
	if input.CustomerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order must contain at least one item")
	}
	for _, item := range input.Items {
		if item.ProductID == uuid.Nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item product id required")
		}
		if item.Quantity <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item quantity must be positive").
				WithDetails(map[string]any{"product_id": item.ProductID})
		}
	}
	if !input.DeliveryType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid delivery type")
	}
	if !input.PaymentMethod.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method")
	}
	if input.DeliveryType == enums.DeliveryTypeHomeDelivery {
		if input.DeliveryAddress == nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "delivery address required for home delivery")
		}
		if missing := input.DeliveryAddress.MissingFields(); len(missing) > 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "delivery address incomplete").
				WithDetails(map[string]any{"missing": missing})
		}
	}

	var created []models.Order
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		now := s.now()

		groups, err := s.partitionByVendor(ctx, repo, input.Items)
		if err != nil {
			return err
		}

		for _, group := range groups {
			order := s.buildOrder(input, group, now)
			if err := repo.Create(ctx, order); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order")
			}
			for _, line := range group.lines {
				if err := s.inventory.Reserve(ctx, tx, line.product.ID, line.quantity); err != nil {
					return err
				}
			}
			created = append(created, *order)
		}
		return nil
	})
	s.observe("order_create", err)
	if err != nil {
		return nil, err
	}
	return created, nil
}

type orderLine struct {
	product  *models.Product
	quantity int
}

type vendorGroup struct {
	vendorID uuid.UUID
	lines    []orderLine
}

func (s *service) partitionByVendor(ctx context.Context, repo Repository, items []CreateItemInput) ([]vendorGroup, error) {
	grouped := map[uuid.UUID][]orderLine{}
	for _, item := range items {
		product, err := repo.FindProduct(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
					WithDetails(map[string]any{"product_id": item.ProductID})
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
		}
		if !product.IsActive || product.Status != enums.CatalogStatusActive || !product.IsAvailable {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "product is not available").
				WithDetails(map[string]any{"product_id": product.ID})
		}
		if product.Stock < item.Quantity {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "insufficient stock").
				WithDetails(map[string]any{"product_id": product.ID, "available": product.Stock, "requested": item.Quantity})
		}
		grouped[product.VendorID] = append(grouped[product.VendorID], orderLine{product: product, quantity: item.Quantity})
	}

	groups := make([]vendorGroup, 0, len(grouped))
	for vendorID, lines := range grouped {
		groups = append(groups, vendorGroup{vendorID: vendorID, lines: lines})
	}
	// Deterministic creation order keeps order numbers stable across retries.
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].vendorID.String() < groups[j].vendorID.String()
	})
	return groups, nil
}

// buildOrder prices the group from the product snapshots alone. Delivery
// charges and discounts are vendor-side adjustments applied later, never
// taken from the create request.
func (s *service) buildOrder(input CreateInput, group vendorGroup, now time.Time) *models.Order {
	var subtotal int64
	items := make([]models.OrderItem, 0, len(group.lines))
	for _, line := range group.lines {
		total := line.product.PriceCents * int64(line.quantity)
		subtotal += total
		items = append(items, models.OrderItem{
			ProductID:  line.product.ID,
			Name:       line.product.Name,
			PriceCents: line.product.PriceCents,
			Quantity:   line.quantity,
			Unit:       line.product.Unit,
			TotalCents: total,
		})
	}

	order := &models.Order{
		OrderNumber:      GenerateOrderNumber(now),
		CustomerID:       input.CustomerID,
		VendorID:         group.vendorID,
		SubtotalCents:    subtotal,
		TotalAmountCents: subtotal,
		DeliveryType:     input.DeliveryType,
		DeliveryAddress:  input.DeliveryAddress,
		PaymentMethod:    input.PaymentMethod,
		PaymentStatus:    enums.PaymentStatusUnpaid,
		Status:           enums.OrderStatusPending,
		Notes:            input.Notes,
		Items:            items,
	}
	order.AppendStatus(enums.OrderStatusPending, "Order placed", "customer", now)
	return order
}

func (s *service) ListForCustomer(ctx context.Context, customerID uuid.UUID, filter ListFilter) ([]models.Order, pagination.Meta, error) {
	if customerID == uuid.Nil {
		return nil, pagination.Meta{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	orders, total, err := s.repo.ListByCustomer(ctx, customerID, filter)
	if err != nil {
		return nil, pagination.Meta{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return orders, pagination.BuildMeta(filter.Page, total), nil
}

func (s *service) ListForVendor(ctx context.Context, vendorID uuid.UUID, filter ListFilter) ([]models.Order, pagination.Meta, error) {
	if vendorID == uuid.Nil {
		return nil, pagination.Meta{}, pkgerrors.New(pkgerrors.CodeForbidden, "vendor profile required")
	}
	orders, total, err := s.repo.ListByVendor(ctx, vendorID, filter)
	if err != nil {
		return nil, pagination.Meta{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return orders, pagination.BuildMeta(filter.Page, total), nil
}

func (s *service) Get(ctx context.Context, principal Principal, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.loadOrder(ctx, s.repo, orderID)
	if err != nil {
		return nil, err
	}
	if !canAccess(principal, order) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "order does not belong to caller")
	}
	return order, nil
}

// UpdateStatus applies a vendor-driven transition after checking the
// transition table. Delivered orders get their delivery timestamp stamped.
func (s *service) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*models.Order, error) {
	if input.VendorID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "vendor profile required")
	}
	if !input.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status")
	}

	var updated *models.Order
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		order, err := s.loadOrder(ctx, repo, input.OrderID)
		if err != nil {
			return err
		}
		if order.VendorID != input.VendorID {
			return pkgerrors.New(pkgerrors.CodeForbidden, "order does not belong to vendor")
		}
		if !order.Status.CanTransitionTo(input.Status) {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "status transition not allowed").
				WithDetails(map[string]any{"from": order.Status, "to": input.Status})
		}

		now := s.now()
		order.Status = input.Status
		if input.Status == enums.OrderStatusDelivered {
			order.DeliveredAt = &now
		}
		order.AppendStatus(input.Status, input.Note, "vendor", now)

		if err := repo.Save(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order status")
		}
		updated = order
		return nil
	})
	s.observe("order_status_update", err)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Cancel is available to the customer and the owning vendor while the order
// has not been delivered. Item stock is returned in the same transaction.
func (s *service) Cancel(ctx context.Context, principal Principal, orderID uuid.UUID) (*models.Order, error) {
	var cancelled *models.Order
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		order, err := s.loadOrder(ctx, repo, orderID)
		if err != nil {
			return err
		}
		if !canAccess(principal, order) {
			return pkgerrors.New(pkgerrors.CodeForbidden, "order does not belong to caller")
		}
		if order.Status == enums.OrderStatusDelivered || order.Status == enums.OrderStatusCancelled {
			return pkgerrors.New(pkgerrors.CodeConflict, "order can no longer be cancelled").
				WithDetails(map[string]any{"status": order.Status})
		}

		for _, item := range order.Items {
			if err := s.inventory.Release(ctx, tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		now := s.now()
		order.Status = enums.OrderStatusCancelled
		order.CancelledAt = &now
		order.AppendStatus(enums.OrderStatusCancelled, "Order cancelled", string(principal.Role), now)

		if err := repo.Save(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order cancellation")
		}
		cancelled = order
		return nil
	})
	s.observe("order_cancel", err)
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

func (s *service) loadOrder(ctx context.Context, repo Repository, orderID uuid.UUID) (*models.Order, error) {
	if orderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	order, err := repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}

func canAccess(principal Principal, order *models.Order) bool {
	if principal.UserID != uuid.Nil && order.CustomerID == principal.UserID {
		return true
	}
	if principal.VendorID != uuid.Nil && order.VendorID == principal.VendorID {
		return true
	}
	return false
}
