package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/locallinkhq/locallink-backend/pkg/db/models"
	"github.com/locallinkhq/locallink-backend/pkg/enums"
	pkgerrors "github.com/locallinkhq/locallink-backend/pkg/errors"
	"github.com/locallinkhq/locallink-backend/pkg/pagination"
	"github.com/locallinkhq/locallink-backend/pkg/types"
)

// Service defines the service catalog operations.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*models.Service, error)
	Update(ctx context.Context, input UpdateInput) (*models.Service, error)
	Delete(ctx context.Context, vendorID, serviceID uuid.UUID) error
	ListPublic(ctx context.Context, filter ListFilter) ([]models.Service, pagination.Meta, error)
	ListForVendor(ctx context.Context, vendorID uuid.UUID, filter ListFilter) ([]models.Service, pagination.Meta, error)
	GetPublic(ctx context.Context, serviceID uuid.UUID) (*models.Service, error)
}

type service struct {
	repo Repository
}

// NewService builds the service catalog service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("services repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Service, error) {
	if input.VendorID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "vendor profile required")
	}
	if input.Title == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "service title required")
	}
	if !input.Category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid service category")
	}
	if input.BasePriceCents < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	if input.DurationMinutes <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "duration must be positive")
	}
	pricingType := input.PricingType
	if pricingType == "" {
		pricingType = enums.PricingTypeFixed
	}
	if !pricingType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid pricing type")
	}
	priceUnit := input.PriceUnit
	if priceUnit == "" {
		priceUnit = enums.PriceUnitPerVisit
	}
	if !priceUnit.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid price unit")
	}
	if err := validateSlots(input.AvailableSlots); err != nil {
		return nil, err
	}

	offering := &models.Service{
		VendorID:        input.VendorID,
		Title:           input.Title,
		Description:     input.Description,
		Category:        input.Category,
		PricingType:     pricingType,
		BasePriceCents:  input.BasePriceCents,
		PriceUnit:       priceUnit,
		DurationMinutes: input.DurationMinutes,
		AvailableSlots:  input.AvailableSlots,
		IsAvailable:     true,
		Status:          enums.CatalogStatusActive,
		IsActive:        true,
	}
	if err := s.repo.Create(ctx, offering); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist service")
	}
	return offering, nil
}

func (s *service) Update(ctx context.Context, input UpdateInput) (*models.Service, error) {
	offering, err := s.loadOwned(ctx, input.VendorID, input.ServiceID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "service title required")
		}
		offering.Title = *input.Title
	}
	if input.Description != nil {
		offering.Description = *input.Description
	}
	if input.Category != nil {
		if !input.Category.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid service category")
		}
		offering.Category = *input.Category
	}
	if input.PricingType != nil {
		if !input.PricingType.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid pricing type")
		}
		offering.PricingType = *input.PricingType
	}
	if input.BasePriceCents != nil {
		if *input.BasePriceCents < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
		}
		offering.BasePriceCents = *input.BasePriceCents
	}
	if input.PriceUnit != nil {
		if !input.PriceUnit.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid price unit")
		}
		offering.PriceUnit = *input.PriceUnit
	}
	if input.DurationMinutes != nil {
		if *input.DurationMinutes <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "duration must be positive")
		}
		offering.DurationMinutes = *input.DurationMinutes
	}
	if input.AvailableSlots != nil {
		if err := validateSlots(input.AvailableSlots); err != nil {
			return nil, err
		}
		offering.AvailableSlots = input.AvailableSlots
	}
	if input.IsAvailable != nil {
		offering.IsAvailable = *input.IsAvailable
	}

	if err := s.repo.Save(ctx, offering); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist service")
	}
	return offering, nil
}

// Delete soft-deletes the offering so existing booking snapshots keep a
// referent. Active bookings are unaffected; they carry their own snapshot.
func (s *service) Delete(ctx context.Context, vendorID, serviceID uuid.UUID) error {
	offering, err := s.loadOwned(ctx, vendorID, serviceID)
	if err != nil {
		return err
	}
	offering.IsActive = false
	offering.Status = enums.CatalogStatusInactive
	if err := s.repo.Save(ctx, offering); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist service removal")
	}
	return nil
}

func (s *service) ListPublic(ctx context.Context, filter ListFilter) ([]models.Service, pagination.Meta, error) {
	services, total, err := s.repo.List(ctx, filter, true)
	if err != nil {
		return nil, pagination.Meta{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list services")
	}
	return services, pagination.BuildMeta(filter.Page, total), nil
}

func (s *service) ListForVendor(ctx context.Context, vendorID uuid.UUID, filter ListFilter) ([]models.Service, pagination.Meta, error) {
	if vendorID == uuid.Nil {
		return nil, pagination.Meta{}, pkgerrors.New(pkgerrors.CodeForbidden, "vendor profile required")
	}
	filter.VendorID = &vendorID
	services, total, err := s.repo.List(ctx, filter, false)
	if err != nil {
		return nil, pagination.Meta{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list services")
	}
	return services, pagination.BuildMeta(filter.Page, total), nil
}

func (s *service) GetPublic(ctx context.Context, serviceID uuid.UUID) (*models.Service, error) {
	offering, err := s.load(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if !offering.IsActive || offering.Status != enums.CatalogStatusActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "service not found")
	}
	return offering, nil
}

func (s *service) load(ctx context.Context, serviceID uuid.UUID) (*models.Service, error) {
	if serviceID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "service id required")
	}
	offering, err := s.repo.FindByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "service not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load service")
	}
	return offering, nil
}

func (s *service) loadOwned(ctx context.Context, vendorID, serviceID uuid.UUID) (*models.Service, error) {
	if vendorID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "vendor profile required")
	}
	offering, err := s.load(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if offering.VendorID != vendorID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "service does not belong to vendor")
	}
	return offering, nil
}

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

func validateSlots(slots types.WeeklySlots) error {
	for day, windows := range slots {
		if !weekdays[day] {
			return pkgerrors.New(pkgerrors.CodeValidation, "invalid weekday in availability").
				WithDetails(map[string]any{"day": day})
		}
		for _, window := range windows {
			if !validClock(window.Start) || !validClock(window.End) || window.End <= window.Start {
				return pkgerrors.New(pkgerrors.CodeValidation, "invalid availability window").
					WithDetails(map[string]any{"day": day, "start": window.Start, "end": window.End})
			}
		}
	}
	return nil
}

func validClock(clock string) bool {
	var hour, minute int
	if n, err := fmt.Sscanf(clock, "%02d:%02d", &hour, &minute); err != nil || n != 2 {
		return false
	}
	return hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59
}
