package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locallinkhq/locallink-backend/pkg/db/models"
	"github.com/locallinkhq/locallink-backend/pkg/enums"
	"github.com/locallinkhq/locallink-backend/pkg/pagination"
)

func seedOrder(t *testing.T, repo Repository, customerID, vendorID uuid.UUID, status enums.OrderStatus, totalCents int64, createdAt time.Time) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNumber:      GenerateOrderNumber(createdAt),
		CustomerID:       customerID,
		VendorID:         vendorID,
		SubtotalCents:    totalCents,
		TotalAmountCents: totalCents,
		DeliveryType:     enums.DeliveryTypeSelfPickup,
		PaymentMethod:    enums.OrderPaymentPayAtShop,
		PaymentStatus:    enums.PaymentStatusUnpaid,
		Status:           status,
		CreatedAt:        createdAt,
		Items: []models.OrderItem{{
			ProductID:  uuid.New(),
			Name:       "sample item",
			PriceCents: totalCents,
			Quantity:   1,
			Unit:       enums.ProductUnitPiece,
			TotalCents: totalCents,
		}},
	}
	require.NoError(t, repo.Create(context.Background(), order))
	return order
}

func TestCreateRecomputesTotalsFromItems(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewRepository(db)
	order := &models.Order{
		OrderNumber:      GenerateOrderNumber(time.Now()),
		CustomerID:       uuid.New(),
		VendorID:         uuid.New(),
		SubtotalCents:    1,
		TotalAmountCents: 1,
		DeliveryType:     enums.DeliveryTypeSelfPickup,
		PaymentMethod:    enums.OrderPaymentPayAtShop,
		PaymentStatus:    enums.PaymentStatusUnpaid,
		Status:           enums.OrderStatusPending,
		Items: []models.OrderItem{{
			ProductID:  uuid.New(),
			Name:       "sample item",
			PriceCents: 1000,
			Quantity:   3,
			Unit:       enums.ProductUnitPiece,
			TotalCents: 3000,
		}},
	}
	require.NoError(t, repo.Create(context.Background(), order))

	persisted, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3000, persisted.SubtotalCents, "subtotal must follow the item snapshots")
	assert.EqualValues(t, 3000, persisted.TotalAmountCents, "total must follow the item snapshots")
}

func TestListByCustomerFiltersAndPages(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewRepository(db)
	customerID := uuid.New()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		seedOrder(t, repo, customerID, uuid.New(), enums.OrderStatusPending, 1000, base.Add(time.Duration(i)*time.Hour))
	}
	seedOrder(t, repo, customerID, uuid.New(), enums.OrderStatusDelivered, 9000, base.Add(10*time.Hour))
	seedOrder(t, repo, uuid.New(), uuid.New(), enums.OrderStatusPending, 500, base)

	pending := enums.OrderStatusPending
	orders, total, err := repo.ListByCustomer(context.Background(), customerID, ListFilter{
		Status: &pending,
		Page:   pagination.Params{Page: 1, Limit: 2},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, orders, 2)
	for _, order := range orders {
		assert.Equal(t, customerID, order.CustomerID)
		assert.NotEmpty(t, order.Items, "items should be preloaded")
	}
	assert.True(t, orders[0].CreatedAt.After(orders[1].CreatedAt), "default sort should be created_at desc")
}

func TestListByVendorSortsByWhitelistedColumn(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewRepository(db)
	vendorID := uuid.New()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	seedOrder(t, repo, uuid.New(), vendorID, enums.OrderStatusPending, 5000, base)
	seedOrder(t, repo, uuid.New(), vendorID, enums.OrderStatusPending, 1000, base.Add(time.Hour))
	seedOrder(t, repo, uuid.New(), vendorID, enums.OrderStatusPending, 3000, base.Add(2*time.Hour))

	orders, _, err := repo.ListByVendor(context.Background(), vendorID, ListFilter{
		Page:      pagination.Params{Page: 1, Limit: 10},
		SortBy:    "total_amount",
		SortOrder: "asc",
	})
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.EqualValues(t, 1000, orders[0].TotalAmountCents)
	assert.EqualValues(t, 5000, orders[2].TotalAmountCents)
}

func TestListIgnoresUnknownSortColumn(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewRepository(db)
	vendorID := uuid.New()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	seedOrder(t, repo, uuid.New(), vendorID, enums.OrderStatusPending, 100, base)
	seedOrder(t, repo, uuid.New(), vendorID, enums.OrderStatusPending, 200, base.Add(time.Hour))

	orders, _, err := repo.ListByVendor(context.Background(), vendorID, ListFilter{
		Page:   pagination.Params{Page: 1, Limit: 10},
		SortBy: "created_at; DROP TABLE orders",
	})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.True(t, orders[0].CreatedAt.After(orders[1].CreatedAt),
		"unknown sort column should fall back to created_at desc")
}
