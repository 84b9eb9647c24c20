package products

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/locallinkhq/locallink-backend/pkg/db/models"
	"github.com/locallinkhq/locallink-backend/pkg/enums"
	pkgerrors "github.com/locallinkhq/locallink-backend/pkg/errors"
	"github.com/locallinkhq/locallink-backend/pkg/pagination"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:products_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestService(t *testing.T, db *gorm.DB) Service {
	t.Helper()
	svc, err := NewService(NewRepository(db))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestCreateDerivesAvailability(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newTestService(t, db)

	product, err := svc.Create(context.Background(), CreateInput{
		VendorID:   uuid.New(),
		Name:       "idli batter 1kg",
		Category:   enums.ProductCategoryGroceries,
		PriceCents: 8000,
		Stock:      3,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if product.Unit != enums.ProductUnitPiece {
		t.Fatalf("expected default unit piece, got %s", product.Unit)
	}
	if product.AvailabilityStatus != enums.AvailabilityLimitedStock {
		t.Fatalf("expected limited-stock for 3 units, got %s", product.AvailabilityStatus)
	}
	if !product.IsAvailable {
		t.Fatal("expected product to be available")
	}
}

func TestCreateValidation(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newTestService(t, db)
	vendorID := uuid.New()

	cases := []struct {
		name  string
		input CreateInput
	}{
		{"missing name", CreateInput{VendorID: vendorID, Category: enums.ProductCategoryGroceries, PriceCents: 100}},
		{"bad category", CreateInput{VendorID: vendorID, Name: "x", Category: "weapons", PriceCents: 100}},
		{"zero price", CreateInput{VendorID: vendorID, Name: "x", Category: enums.ProductCategoryGroceries}},
		{"negative stock", CreateInput{VendorID: vendorID, Name: "x", Category: enums.ProductCategoryGroceries, PriceCents: 100, Stock: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestUpdateOwnershipAndPartialEdit(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newTestService(t, db)
	vendorID := uuid.New()

	product, err := svc.Create(context.Background(), CreateInput{
		VendorID:   vendorID,
		Name:       "fresh paneer",
		Category:   enums.ProductCategoryDairy,
		PriceCents: 30000,
		Stock:      10,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newPrice := int64(32000)
	newStock := 0
	updated, err := svc.Update(context.Background(), UpdateInput{
		VendorID:   vendorID,
		ProductID:  product.ID,
		PriceCents: &newPrice,
		Stock:      &newStock,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "fresh paneer" {
		t.Fatal("untouched fields must survive partial update")
	}
	if updated.PriceCents != 32000 {
		t.Fatalf("price not applied: %d", updated.PriceCents)
	}
	if updated.AvailabilityStatus != enums.AvailabilityOutOfStock || updated.IsAvailable {
		t.Fatalf("expected out-of-stock after zeroing, got %s", updated.AvailabilityStatus)
	}

	_, err = svc.Update(context.Background(), UpdateInput{
		VendorID:   uuid.New(),
		ProductID:  product.ID,
		PriceCents: &newPrice,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden for foreign vendor, got %v", err)
	}
}

func TestDeleteSoftDeletesAndHidesFromPublic(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newTestService(t, db)
	vendorID := uuid.New()

	product, err := svc.Create(context.Background(), CreateInput{
		VendorID:   vendorID,
		Name:       "mango pickle",
		Category:   enums.ProductCategoryGroceries,
		PriceCents: 12000,
		Stock:      4,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), vendorID, product.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var persisted models.Product
	if err := db.First(&persisted, "id = ?", product.ID).Error; err != nil {
		t.Fatalf("row must survive soft delete: %v", err)
	}
	if persisted.IsActive || persisted.Status != enums.CatalogStatusInactive {
		t.Fatalf("expected inactive, got active=%v status=%s", persisted.IsActive, persisted.Status)
	}

	_, err = svc.GetPublic(context.Background(), product.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for public get, got %v", err)
	}

	listed, _, err := svc.ListPublic(context.Background(), ListFilter{Page: pagination.Params{Page: 1, Limit: 10}})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("soft-deleted product leaked into public list: %d", len(listed))
	}

	mine, _, err := svc.ListForVendor(context.Background(), vendorID, ListFilter{Page: pagination.Params{Page: 1, Limit: 10}})
	if err != nil {
		t.Fatalf("vendor list: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("vendor should still see own inactive product, got %d", len(mine))
	}
}

func TestListPublicFilters(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newTestService(t, db)
	vendorID := uuid.New()

	seed := []struct {
		name     string
		category enums.ProductCategory
		price    int64
	}{
		{"organic tomatoes", enums.ProductCategoryVegetables, 4000},
		{"red onions", enums.ProductCategoryVegetables, 3000},
		{"toor dal", enums.ProductCategoryGroceries, 15000},
	}
	for _, row := range seed {
		if _, err := svc.Create(context.Background(), CreateInput{
			VendorID:   vendorID,
			Name:       row.name,
			Category:   row.category,
			PriceCents: row.price,
			Stock:      10,
		}); err != nil {
			t.Fatalf("seed %s: %v", row.name, err)
		}
	}

	vegetables := enums.ProductCategoryVegetables
	listed, meta, err := svc.ListPublic(context.Background(), ListFilter{
		Category: &vegetables,
		Page:     pagination.Params{Page: 1, Limit: 10},
	})
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if len(listed) != 2 || meta.Total != 2 {
		t.Fatalf("expected 2 vegetables, got %d (total %d)", len(listed), meta.Total)
	}

	listed, _, err = svc.ListPublic(context.Background(), ListFilter{
		Search: "tomato",
		Page:   pagination.Params{Page: 1, Limit: 10},
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(listed) != 1 || listed[0].Name != "organic tomatoes" {
		t.Fatalf("unexpected search result: %+v", listed)
	}

	minPrice := int64(3500)
	maxPrice := int64(20000)
	listed, _, err = svc.ListPublic(context.Background(), ListFilter{
		MinPriceCents: &minPrice,
		MaxPriceCents: &maxPrice,
		Page:          pagination.Params{Page: 1, Limit: 10},
		SortBy:        "price",
		SortOrder:     "asc",
	})
	if err != nil {
		t.Fatalf("price range: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 in price range, got %d", len(listed))
	}
	if listed[0].PriceCents != 4000 || listed[1].PriceCents != 15000 {
		t.Fatalf("expected ascending price sort, got %d,%d", listed[0].PriceCents, listed[1].PriceCents)
	}
}
