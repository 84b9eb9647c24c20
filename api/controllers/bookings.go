package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/locallinkhq/locallink-backend/api/middleware"
	"github.com/locallinkhq/locallink-backend/api/responses"
	"github.com/locallinkhq/locallink-backend/api/validators"
	"github.com/locallinkhq/locallink-backend/internal/bookings"
	"github.com/locallinkhq/locallink-backend/internal/vendors"
	"github.com/locallinkhq/locallink-backend/pkg/db/models"
	"github.com/locallinkhq/locallink-backend/pkg/enums"
	"github.com/locallinkhq/locallink-backend/pkg/logger"
	"github.com/locallinkhq/locallink-backend/pkg/pagination"
	"github.com/locallinkhq/locallink-backend/pkg/types"
)

type createBookingRequest struct {
	ServiceID       string             `json:"service_id" validate:"required,uuid"`
	ScheduledDate   string             `json:"scheduled_date" validate:"required"`
	ScheduledTime   string             `json:"scheduled_time" validate:"required"`
	CustomerInfo    types.CustomerInfo `json:"customer_info" validate:"required"`
	ServiceLocation string             `json:"service_location" validate:"required,oneof=customer-location vendor-location online"`
	ServiceAddress  *types.Address     `json:"service_address"`
	PaymentMethod   string             `json:"payment_method" validate:"required,oneof=cash-on-service pay-at-shop"`
	SpecialRequests string             `json:"special_requests" validate:"max=500"`
}

type updateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note" validate:"max=500"`
}

type cancelBookingRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

type rescheduleBookingRequest struct {
	NewDate string `json:"new_date" validate:"required"`
	NewTime string `json:"new_time" validate:"required"`
	Reason  string `json:"reason" validate:"max=500"`
}

type bookingListResponse struct {
	Bookings   []models.Booking `json:"bookings"`
	Pagination pagination.Meta  `json:"pagination"`
}

// CreateBooking books a service slot for the authenticated customer.
func CreateBooking(svc bookings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		customerID, err := userIDFromRequest(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req createBookingRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		serviceID, err := uuid.Parse(req.ServiceID)
		if err != nil {
			responses.WriteError(ctx, logg, w, validationError("invalid service id"))
			return
		}
		date, err := parseDay(req.ScheduledDate)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		booking, err := svc.Create(ctx, bookings.CreateInput{
			CustomerID:      customerID,
			ServiceID:       serviceID,
			ScheduledDate:   date,
			ScheduledTime:   req.ScheduledTime,
			CustomerInfo:    req.CustomerInfo,
			ServiceLocation: enums.ServiceLocation(req.ServiceLocation),
			ServiceAddress:  req.ServiceAddress,
			PaymentMethod:   enums.BookingPaymentMethod(req.PaymentMethod),
			SpecialRequests: req.SpecialRequests,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, http.StatusCreated, "booking created", map[string]any{"booking": booking})
	}
}

// ListMyBookings lists the authenticated customer's bookings.
func ListMyBookings(svc bookings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		customerID, err := userIDFromRequest(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		filter, err := bookingFilterFromQuery(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		list, meta, err := svc.ListForCustomer(ctx, customerID, filter)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, bookingListResponse{Bookings: list, Pagination: meta})
	}
}

// GetBooking returns one booking, visible to its customer and its vendor.
func GetBooking(svc bookings.Service, vendorRepo vendors.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		principal, err := bookingPrincipal(r, vendorRepo)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		bookingID, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		booking, err := svc.Get(ctx, principal, bookingID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"booking": booking})
	}
}

// CancelBooking cancels a booking for its customer or its vendor.
func CancelBooking(svc bookings.Service, vendorRepo vendors.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		principal, err := bookingPrincipal(r, vendorRepo)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		bookingID, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req cancelBookingRequest
		if r.ContentLength > 0 {
			if err := validators.DecodeJSONBody(r, &req); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
		}

		booking, err := svc.Cancel(ctx, bookings.CancelInput{
			Principal: principal,
			BookingID: bookingID,
			Reason:    req.Reason,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, http.StatusOK, "booking cancelled", map[string]any{"booking": booking})
	}
}

// RescheduleBooking moves a booking to a new future slot.
func RescheduleBooking(svc bookings.Service, vendorRepo vendors.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		principal, err := bookingPrincipal(r, vendorRepo)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		bookingID, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req rescheduleBookingRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		date, err := parseDay(req.NewDate)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		booking, err := svc.Reschedule(ctx, bookings.RescheduleInput{
			Principal: principal,
			BookingID: bookingID,
			NewDate:   date,
			NewTime:   req.NewTime,
			Reason:    req.Reason,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, http.StatusOK, "booking rescheduled", map[string]any{"booking": booking})
	}
}

// ListVendorBookings lists bookings against the caller's vendor profile,
// optionally narrowed to one calendar day.
func ListVendorBookings(svc bookings.Service, vendorRepo vendors.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		vendorID, err := vendorIDFromRequest(ctx, r, vendorRepo)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		filter, err := bookingFilterFromQuery(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		list, meta, err := svc.ListForVendor(ctx, vendorID, filter)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, bookingListResponse{Bookings: list, Pagination: meta})
	}
}

// UpdateBookingStatus moves a booking along its lifecycle, vendor side.
func UpdateBookingStatus(svc bookings.Service, vendorRepo vendors.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		vendorID, err := vendorIDFromRequest(ctx, r, vendorRepo)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		bookingID, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req updateBookingStatusRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		status, err := enums.ParseBookingStatus(req.Status)
		if err != nil {
			responses.WriteError(ctx, logg, w, validationError("invalid booking status"))
			return
		}

		booking, err := svc.UpdateStatus(ctx, bookings.UpdateStatusInput{
			VendorID:  vendorID,
			BookingID: bookingID,
			Status:    status,
			Note:      req.Note,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, http.StatusOK, "booking status updated", map[string]any{"booking": booking})
	}
}

// VendorBookingStats summarizes the caller's booking book.
func VendorBookingStats(svc bookings.Service, vendorRepo vendors.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		vendorID, err := vendorIDFromRequest(ctx, r, vendorRepo)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		stats, err := svc.StatsForVendor(ctx, vendorID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"stats": stats})
	}
}

func bookingPrincipal(r *http.Request, vendorRepo vendors.Repository) (bookings.Principal, error) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		return bookings.Principal{}, err
	}
	principal := bookings.Principal{
		UserID: userID,
		Role:   enums.UserRole(middleware.RoleFromContext(r.Context())),
	}
	if principal.Role == enums.UserRoleVendor {
		profile, err := vendorRepo.FindByUserID(r.Context(), userID)
		if err != nil {
			return bookings.Principal{}, err
		}
		principal.VendorID = profile.ID
	}
	return principal, nil
}

func bookingFilterFromQuery(r *http.Request) (bookings.ListFilter, error) {
	page, err := parsePagination(r)
	if err != nil {
		return bookings.ListFilter{}, err
	}
	filter := bookings.ListFilter{
		Page:      page,
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := enums.ParseBookingStatus(raw)
		if err != nil {
			return bookings.ListFilter{}, validationError("invalid booking status filter")
		}
		filter.Status = &status
	}
	date, err := validators.ParseQueryDate(r, "date")
	if err != nil {
		return bookings.ListFilter{}, err
	}
	filter.Date = date
	return filter, nil
}

func parseDay(raw string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		return time.Time{}, validationError("date must be YYYY-MM-DD")
	}
	return day, nil
}
