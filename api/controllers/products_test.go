package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/locallinkhq/locallink-backend/internal/products"
	"github.com/locallinkhq/locallink-backend/pkg/db/models"
	"github.com/locallinkhq/locallink-backend/pkg/enums"
	pkgerrors "github.com/locallinkhq/locallink-backend/pkg/errors"
	"github.com/locallinkhq/locallink-backend/pkg/pagination"
)

type stubProductService struct {
	products.Service
	listPublic func(ctx context.Context, filter products.ListFilter) ([]models.Product, pagination.Meta, error)
	getPublic  func(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

func (s *stubProductService) ListPublic(ctx context.Context, filter products.ListFilter) ([]models.Product, pagination.Meta, error) {
	return s.listPublic(ctx, filter)
}

func (s *stubProductService) GetPublic(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.getPublic(ctx, id)
}

func TestListProductsPassesFilters(t *testing.T) {
	t.Parallel()

	var captured products.ListFilter
	svc := &stubProductService{
		listPublic: func(_ context.Context, filter products.ListFilter) ([]models.Product, pagination.Meta, error) {
			captured = filter
			return []models.Product{{Name: "organic tomatoes"}}, pagination.Meta{Current: 2, Pages: 3, Total: 25}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/products?page=2&limit=10&category=vegetables&search=tomato&min_price_cents=100&max_price_cents=9000", nil)
	rec := httptest.NewRecorder()
	ListProducts(svc, nil)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Page.Page != 2 || captured.Page.Limit != 10 {
		t.Fatalf("pagination not forwarded: %+v", captured.Page)
	}
	if captured.Category == nil || *captured.Category != enums.ProductCategoryVegetables {
		t.Fatalf("category not forwarded: %+v", captured.Category)
	}
	if captured.Search != "tomato" {
		t.Fatalf("search not forwarded: %q", captured.Search)
	}
	if captured.MinPriceCents == nil || *captured.MinPriceCents != 100 {
		t.Fatalf("min price not forwarded: %+v", captured.MinPriceCents)
	}
	if captured.MaxPriceCents == nil || *captured.MaxPriceCents != 9000 {
		t.Fatalf("max price not forwarded: %+v", captured.MaxPriceCents)
	}

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Products   []models.Product `json:"products"`
			Pagination pagination.Meta  `json:"pagination"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Success || len(envelope.Data.Products) != 1 {
		t.Fatalf("unexpected envelope: %s", rec.Body.String())
	}
	if envelope.Data.Pagination.Total != 25 {
		t.Fatalf("pagination meta lost: %+v", envelope.Data.Pagination)
	}
}

func TestListProductsRejectsBadCategory(t *testing.T) {
	t.Parallel()

	svc := &stubProductService{
		listPublic: func(context.Context, products.ListFilter) ([]models.Product, pagination.Meta, error) {
			t.Fatal("service must not be called on invalid filter")
			return nil, pagination.Meta{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?category=weapons", nil)
	rec := httptest.NewRecorder()
	ListProducts(svc, nil)(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var envelope struct {
		Success bool   `json:"success"`
		Code    string `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Success || envelope.Code != string(pkgerrors.CodeValidation) {
		t.Fatalf("unexpected error envelope: %s", rec.Body.String())
	}
}

func TestGetProductNotFound(t *testing.T) {
	t.Parallel()

	svc := &stubProductService{
		getPublic: func(context.Context, uuid.UUID) (*models.Product, error) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		},
	}

	router := chi.NewRouter()
	router.Get("/api/v1/products/{id}", GetProduct(svc, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetProductRejectsMalformedID(t *testing.T) {
	t.Parallel()

	svc := &stubProductService{
		getPublic: func(context.Context, uuid.UUID) (*models.Product, error) {
			t.Fatal("service must not be called on malformed id")
			return nil, nil
		},
	}

	router := chi.NewRouter()
	router.Get("/api/v1/products/{id}", GetProduct(svc, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
