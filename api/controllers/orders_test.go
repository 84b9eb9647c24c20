package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/locallinkhq/locallink-backend/api/middleware"
	"github.com/locallinkhq/locallink-backend/internal/orders"
	"github.com/locallinkhq/locallink-backend/pkg/db/models"
	"github.com/locallinkhq/locallink-backend/pkg/enums"
	"github.com/locallinkhq/locallink-backend/pkg/pagination"
)

type stubOrderService struct {
	orders.Service
	create func(ctx context.Context, input orders.CreateInput) ([]models.Order, error)
	list   func(ctx context.Context, customerID uuid.UUID, filter orders.ListFilter) ([]models.Order, pagination.Meta, error)
}

func (s *stubOrderService) Create(ctx context.Context, input orders.CreateInput) ([]models.Order, error) {
	return s.create(ctx, input)
}

func (s *stubOrderService) ListForCustomer(ctx context.Context, customerID uuid.UUID, filter orders.ListFilter) ([]models.Order, pagination.Meta, error) {
	return s.list(ctx, customerID, filter)
}

func authedRequest(method, target, body string, userID uuid.UUID, role enums.UserRole) *http.Request {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	ctx := middleware.WithUserID(req.Context(), userID.String())
	ctx = middleware.WithRole(ctx, role.String())
	return req.WithContext(ctx)
}

func TestCreateOrderBuildsInput(t *testing.T) {
	t.Parallel()

	customerID := uuid.New()
	productID := uuid.New()
	var captured orders.CreateInput
	svc := &stubOrderService{
		create: func(_ context.Context, input orders.CreateInput) ([]models.Order, error) {
			captured = input
			return []models.Order{{OrderNumber: "ORD-20250601-AAAA1111"}}, nil
		},
	}

	body := `{
		"items": [{"product_id": "` + productID.String() + `", "quantity": 2}],
		"delivery_type": "home-delivery",
		"delivery_address": {"name": "Asha Rao", "phone": "9876543210", "street": "14 Gandhi Road", "city": "Mysuru", "pincode": "570001"},
		"payment_method": "cash-on-delivery"
	}`
	req := authedRequest(http.MethodPost, "/api/v1/orders", body, customerID, enums.UserRoleCustomer)
	rec := httptest.NewRecorder()
	CreateOrder(svc, nil)(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.CustomerID != customerID {
		t.Fatal("customer id must come from the token, not the body")
	}
	if len(captured.Items) != 1 || captured.Items[0].ProductID != productID || captured.Items[0].Quantity != 2 {
		t.Fatalf("items not forwarded: %+v", captured.Items)
	}
	if captured.DeliveryType != enums.DeliveryTypeHomeDelivery {
		t.Fatalf("delivery type not forwarded: %s", captured.DeliveryType)
	}
}

func TestCreateOrderRejectsClientPricing(t *testing.T) {
	t.Parallel()

	svc := &stubOrderService{
		create: func(context.Context, orders.CreateInput) ([]models.Order, error) {
			t.Fatal("service must not be called when the body sets pricing")
			return nil, nil
		},
	}

	for _, body := range []string{
		`{"items": [{"product_id": "` + uuid.NewString() + `", "quantity": 1}], "delivery_type": "self-pickup", "payment_method": "pay-at-shop", "discount_cents": 3000}`,
		`{"items": [{"product_id": "` + uuid.NewString() + `", "quantity": 1}], "delivery_type": "self-pickup", "payment_method": "pay-at-shop", "delivery_charge_cents": 0}`,
	} {
		req := authedRequest(http.MethodPost, "/api/v1/orders", body, uuid.New(), enums.UserRoleCustomer)
		rec := httptest.NewRecorder()
		CreateOrder(svc, nil)(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", body, rec.Code)
		}
	}
}

func TestCreateOrderRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	svc := &stubOrderService{
		create: func(context.Context, orders.CreateInput) ([]models.Order, error) {
			t.Fatal("service must not be called on malformed body")
			return nil, nil
		},
	}

	body := `{"items": [], "delivery_type": "home-delivery", "payment_method": "cash-on-delivery", "surprise": true}`
	req := authedRequest(http.MethodPost, "/api/v1/orders", body, uuid.New(), enums.UserRoleCustomer)
	rec := httptest.NewRecorder()
	CreateOrder(svc, nil)(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateOrderRequiresAuth(t *testing.T) {
	t.Parallel()

	svc := &stubOrderService{
		create: func(context.Context, orders.CreateInput) ([]models.Order, error) {
			t.Fatal("service must not be called without identity")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	CreateOrder(svc, nil)(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestListMyOrdersForwardsStatusFilter(t *testing.T) {
	t.Parallel()

	customerID := uuid.New()
	var captured orders.ListFilter
	svc := &stubOrderService{
		list: func(_ context.Context, gotCustomer uuid.UUID, filter orders.ListFilter) ([]models.Order, pagination.Meta, error) {
			if gotCustomer != customerID {
				t.Fatalf("wrong customer id %s", gotCustomer)
			}
			captured = filter
			return nil, pagination.Meta{Current: 1, Pages: 1}, nil
		},
	}

	req := authedRequest(http.MethodGet, "/api/v1/orders?status=pending&sort_by=total_amount&sort_order=asc", "", customerID, enums.UserRoleCustomer)
	rec := httptest.NewRecorder()
	ListMyOrders(svc, nil)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Status == nil || *captured.Status != enums.OrderStatusPending {
		t.Fatalf("status filter not forwarded: %+v", captured.Status)
	}
	if captured.SortBy != "total_amount" || captured.SortOrder != "asc" {
		t.Fatalf("sort not forwarded: %s %s", captured.SortBy, captured.SortOrder)
	}
}
