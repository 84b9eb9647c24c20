package bookings

import (
	"time"

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

// CreateInput carries everything needed to book a service slot.
type CreateInput struct {
	CustomerID      uuid.UUID
	ServiceID       uuid.UUID
	ScheduledDate   time.Time
	ScheduledTime   string
	CustomerInfo    types.CustomerInfo
	ServiceLocation enums.ServiceLocation
	ServiceAddress  *types.Address
	PaymentMethod   enums.BookingPaymentMethod
	SpecialRequests string
}

// ListFilter narrows and pages booking listings. Date, when set, limits
// vendor listings to bookings scheduled on that calendar day.
type ListFilter struct {
	Status    *enums.BookingStatus
	Date      *time.Time
	Page      pagination.Params
	SortBy    string
	SortOrder string
}

// UpdateStatusInput captures a vendor-driven status transition.
type UpdateStatusInput struct {
	VendorID  uuid.UUID
	BookingID uuid.UUID
	Status    enums.BookingStatus
	Note      string
}

// CancelInput captures a cancellation with its optional reason.
type CancelInput struct {
	Principal Principal
	BookingID uuid.UUID
	Reason    string
}

// RescheduleInput moves a booking to a new slot.
type RescheduleInput struct {
	Principal Principal
	BookingID uuid.UUID
	NewDate   time.Time
	NewTime   string
	Reason    string
}

// VendorStats summarizes a vendor's booking book.
type VendorStats struct {
	Total        int64 `json:"total"`
	Pending      int64 `json:"pending"`
	Confirmed    int64 `json:"confirmed"`
	Completed    int64 `json:"completed"`
	Cancelled    int64 `json:"cancelled"`
	Today        int64 `json:"today"`
	Upcoming     int64 `json:"upcoming"`
	RevenueCents int64 `json:"revenue_cents"`
}
