package services

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
	"github.com/locallinkhq/locallink-backend/pkg/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:services_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Service{}); err != nil {
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

func validInput(vendorID uuid.UUID) CreateInput {
	return CreateInput{
		VendorID:        vendorID,
		Title:           "tap and pipe repair",
		Category:        enums.ServiceCategoryPlumbing,
		BasePriceCents:  80000,
		DurationMinutes: 60,
		AvailableSlots: types.WeeklySlots{
			"monday": {{Start: "09:00", End: "18:00"}},
			"friday": {{Start: "10:00", End: "16:00"}},
		},
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newTestService(t, db)

	offering, err := svc.Create(context.Background(), validInput(uuid.New()))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if offering.PricingType != enums.PricingTypeFixed {
		t.Fatalf("expected default pricing type fixed, got %s", offering.PricingType)
	}
	if offering.PriceUnit != enums.PriceUnitPerVisit {
		t.Fatalf("expected default price unit per-visit, got %s", offering.PriceUnit)
	}
	if !offering.IsActive || offering.Status != enums.CatalogStatusActive {
		t.Fatal("expected new offering to be active")
	}
}

func TestCreateValidation(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newTestService(t, db)
	vendorID := uuid.New()

	cases := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{"missing title", func(i *CreateInput) { i.Title = "" }},
		{"bad category", func(i *CreateInput) { i.Category = "fortune-telling" }},
		{"zero duration", func(i *CreateInput) { i.DurationMinutes = 0 }},
		{"bad weekday", func(i *CreateInput) {
			i.AvailableSlots = types.WeeklySlots{"someday": {{Start: "09:00", End: "10:00"}}}
		}},
		{"inverted window", func(i *CreateInput) {
			i.AvailableSlots = types.WeeklySlots{"monday": {{Start: "18:00", End: "09:00"}}}
		}},
		{"bad clock", func(i *CreateInput) {
			i.AvailableSlots = types.WeeklySlots{"monday": {{Start: "morning", End: "noon"}}}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput(vendorID)
			tc.mutate(&input)
			_, err := svc.Create(context.Background(), input)
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestUpdateTogglesAvailability(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newTestService(t, db)
	vendorID := uuid.New()

	offering, err := svc.Create(context.Background(), validInput(vendorID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	off := false
	updated, err := svc.Update(context.Background(), UpdateInput{
		VendorID:    vendorID,
		ServiceID:   offering.ID,
		IsAvailable: &off,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.IsAvailable {
		t.Fatal("expected offering paused")
	}
	if updated.Title != offering.Title {
		t.Fatal("untouched fields must survive partial update")
	}

	_, err = svc.Update(context.Background(), UpdateInput{
		VendorID:    uuid.New(),
		ServiceID:   offering.ID,
		IsAvailable: &off,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden for foreign vendor, got %v", err)
	}
}

func TestDeleteHidesFromPublicListing(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newTestService(t, db)
	vendorID := uuid.New()

	offering, err := svc.Create(context.Background(), validInput(vendorID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(context.Background(), vendorID, offering.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, err = svc.GetPublic(context.Background(), offering.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}

	listed, _, err := svc.ListPublic(context.Background(), ListFilter{Page: pagination.Params{Page: 1, Limit: 10}})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("soft-deleted offering leaked into public list: %d", len(listed))
	}

	mine, _, err := svc.ListForVendor(context.Background(), vendorID, ListFilter{Page: pagination.Params{Page: 1, Limit: 10}})
	if err != nil {
		t.Fatalf("vendor list: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("vendor should still see own inactive offering, got %d", len(mine))
	}
}

func TestListPublicByCategory(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := newTestService(t, db)
	vendorID := uuid.New()

	plumbing := validInput(vendorID)
	if _, err := svc.Create(context.Background(), plumbing); err != nil {
		t.Fatalf("seed plumbing: %v", err)
	}
	cleaning := validInput(vendorID)
	cleaning.Title = "sofa shampooing"
	cleaning.Category = enums.ServiceCategoryCleaning
	if _, err := svc.Create(context.Background(), cleaning); err != nil {
		t.Fatalf("seed cleaning: %v", err)
	}

	category := enums.ServiceCategoryPlumbing
	listed, meta, err := svc.ListPublic(context.Background(), ListFilter{
		Category: &category,
		Page:     pagination.Params{Page: 1, Limit: 10},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || meta.Total != 1 {
		t.Fatalf("expected 1 plumbing service, got %d (total %d)", len(listed), meta.Total)
	}
	if listed[0].Category != enums.ServiceCategoryPlumbing {
		t.Fatalf("unexpected category %s", listed[0].Category)
	}
}
