package services

import (
	"github.com/google/uuid"

	"github.com/locallinkhq/locallink-backend/pkg/enums"
	"github.com/locallinkhq/locallink-backend/pkg/pagination"
	"github.com/locallinkhq/locallink-backend/pkg/types"
)

// CreateInput carries a new service offering for a vendor.
type CreateInput struct {
	VendorID        uuid.UUID
	Title           string
	Description     string
	Category        enums.ServiceCategory
	PricingType     enums.PricingType
	BasePriceCents  int64
	PriceUnit       enums.PriceUnit
	DurationMinutes int
	AvailableSlots  types.WeeklySlots
}

// UpdateInput applies a partial edit; nil fields are left untouched.
type UpdateInput struct {
	VendorID        uuid.UUID
	ServiceID       uuid.UUID
	Title           *string
	Description     *string
	Category        *enums.ServiceCategory
	PricingType     *enums.PricingType
	BasePriceCents  *int64
	PriceUnit       *enums.PriceUnit
	DurationMinutes *int
	AvailableSlots  types.WeeklySlots
	IsAvailable     *bool
}

// ListFilter narrows public service browsing.
type ListFilter struct {
	VendorID  *uuid.UUID
	Category  *enums.ServiceCategory
	Search    string
	Page      pagination.Params
	SortBy    string
	SortOrder string
}
