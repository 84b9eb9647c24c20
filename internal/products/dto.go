package products

import (
	"github.com/google/uuid"

	"github.com/locallinkhq/locallink-backend/pkg/enums"
	"github.com/locallinkhq/locallink-backend/pkg/pagination"
)

// CreateInput carries a new catalog entry for a vendor.
type CreateInput struct {
	VendorID    uuid.UUID
	Name        string
	Description string
	Category    enums.ProductCategory
	PriceCents  int64
	Stock       int
	Unit        enums.ProductUnit
	Tags        []string
	Images      []string
}

// UpdateInput applies a partial edit; nil fields are left untouched.
type UpdateInput struct {
	VendorID    uuid.UUID
	ProductID   uuid.UUID
	Name        *string
	Description *string
	Category    *enums.ProductCategory
	PriceCents  *int64
	Stock       *int
	Unit        *enums.ProductUnit
	Tags        []string
	Images      []string
}

// ListFilter narrows public catalog browsing.
type ListFilter struct {
	VendorID      *uuid.UUID
	Category      *enums.ProductCategory
	Search        string
	MinPriceCents *int64
	MaxPriceCents *int64
	Page          pagination.Params
	SortBy        string
	SortOrder     string
}
