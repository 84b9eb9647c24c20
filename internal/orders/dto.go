package orders

import (
	"github.com/google/uuid"

	"github.com/locallinkhq/locallink-backend/pkg/enums"
	"github.com/locallinkhq/locallink-backend/pkg/pagination"
	"github.com/locallinkhq/locallink-backend/pkg/types"
)

// Principal identifies the caller for ownership checks. VendorID is set only
// when the caller has a vendor profile.
type Principal struct {
	UserID   uuid.UUID
	Role     enums.UserRole
	VendorID uuid.UUID
}

// CreateItemInput is one requested cart line.
type CreateItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateInput carries everything needed to place an order. Items spanning
// multiple vendors are split into one order per vendor inside a single
// transaction. Pricing is derived server-side from product snapshots; the
// caller has no say in charges or discounts.
type CreateInput struct {
	CustomerID      uuid.UUID
	Items           []CreateItemInput
	DeliveryType    enums.DeliveryType
	DeliveryAddress *types.Address
	PaymentMethod   enums.OrderPaymentMethod
	Notes           string
}

// ListFilter narrows and pages order listings.
type ListFilter struct {
	Status    *enums.OrderStatus
	Page      pagination.Params
	SortBy    string
	SortOrder string
}

// UpdateStatusInput captures a vendor-driven status transition.
type UpdateStatusInput struct {
	VendorID uuid.UUID
	OrderID  uuid.UUID
	Status   enums.OrderStatus
	Note     string
}
