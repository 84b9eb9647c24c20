package bookings

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/locallinkhq/locallink-backend/pkg/db"
	"github.com/locallinkhq/locallink-backend/pkg/db/models"
	"github.com/locallinkhq/locallink-backend/pkg/enums"
	pkgerrors "github.com/locallinkhq/locallink-backend/pkg/errors"
	"github.com/locallinkhq/locallink-backend/pkg/metrics"
	"github.com/locallinkhq/locallink-backend/pkg/pagination"
	"github.com/locallinkhq/locallink-backend/pkg/types"
)

// slotConstraint is the partial unique index guarding vendor slots.
const slotConstraint = "uq_bookings_vendor_slot_active"

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines the booking lifecycle operations.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*models.Booking, error)
	ListForCustomer(ctx context.Context, customerID uuid.UUID, filter ListFilter) ([]models.Booking, pagination.Meta, error)
	ListForVendor(ctx context.Context, vendorID uuid.UUID, filter ListFilter) ([]models.Booking, pagination.Meta, error)
	Get(ctx context.Context, principal Principal, bookingID uuid.UUID) (*models.Booking, error)
	UpdateStatus(ctx context.Context, input UpdateStatusInput) (*models.Booking, error)
	Cancel(ctx context.Context, input CancelInput) (*models.Booking, error)
	Reschedule(ctx context.Context, input RescheduleInput) (*models.Booking, error)
	StatsForVendor(ctx context.Context, vendorID uuid.UUID) (VendorStats, error)
}

type service struct {
	repo      Repository
	tx        txRunner
	lifecycle *metrics.LifecycleMetrics
	now       func() time.Time
}

// Option configures optional booking engine collaborators.
type Option func(*service)

// WithLifecycleMetrics counts create/cancel/reschedule/status outcomes.
func WithLifecycleMetrics(m *metrics.LifecycleMetrics) Option {
	return func(s *service) { s.lifecycle = m }
}

// NewService builds the booking engine with the required dependencies.
func NewService(repo Repository, tx txRunner, opts ...Option) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("bookings repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	svc := &service{repo: repo, tx: tx, now: time.Now}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

func (s *service) observe(operation string, err error) {
	if err != nil {
		s.lifecycle.IncFailure(operation)
		return
	}
	s.lifecycle.IncSuccess(operation)
}

// Create books a vendor slot. The slot is checked inside the transaction and
// the partial unique index catches the race two concurrent bookings can win
// past the check.
func (s *service) Create(ctx context.Context, input CreateInput) (*models.Booking, error) {
	if input.CustomerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if input.ServiceID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "service id required")
	}
	if err := validateClock(input.ScheduledTime); err != nil {
		return nil, err
	}
	if !input.ServiceLocation.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid service location")
	}
	if !input.PaymentMethod.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method")
	}
	if input.CustomerInfo.Name == "" || input.CustomerInfo.Phone == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer name and phone required")
	}
	if input.ServiceLocation == enums.ServiceLocationCustomer {
		if input.ServiceAddress == nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "service address required for customer-location bookings")
		}
		if missing := input.ServiceAddress.MissingFields(); len(missing) > 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "service address incomplete").
				WithDetails(map[string]any{"missing": missing})
		}
	}

	day := input.ScheduledDate.UTC().Truncate(24 * time.Hour)
	if err := s.ensureFutureSlot(day, input.ScheduledTime); err != nil {
		return nil, err
	}

	var created *models.Booking
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		svc, err := repo.FindService(ctx, input.ServiceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "service not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load service")
		}
		if !svc.IsActive || svc.Status != enums.CatalogStatusActive || !svc.IsAvailable {
			return pkgerrors.New(pkgerrors.CodeConflict, "service is not available for booking")
		}

		taken, err := repo.SlotTaken(ctx, svc.VendorID, day, input.ScheduledTime, uuid.Nil)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check slot")
		}
		if taken {
			return slotConflict(day, input.ScheduledTime)
		}

		now := s.now()
		booking := &models.Booking{
			BookingNumber: GenerateBookingNumber(now),
			CustomerID:    input.CustomerID,
			VendorID:      svc.VendorID,
			ServiceID:     svc.ID,
			ServiceDetails: types.ServiceSnapshot{
				Title:           svc.Title,
				Description:     svc.Description,
				PriceCents:      svc.BasePriceCents,
				DurationMinutes: svc.DurationMinutes,
				Category:        svc.Category.String(),
			},
			ScheduledDate:    day,
			ScheduledTime:    input.ScheduledTime,
			TotalAmountCents: svc.BasePriceCents,
			CustomerInfo:     input.CustomerInfo,
			ServiceLocation:  input.ServiceLocation,
			ServiceAddress:   input.ServiceAddress,
			PaymentMethod:    input.PaymentMethod,
			PaymentStatus:    enums.PaymentStatusUnpaid,
			Status:           enums.BookingStatusPending,
			SpecialRequests:  input.SpecialRequests,
		}
		booking.AppendStatus(enums.BookingStatusPending, "Booking created", "customer", now)

		if err := repo.Create(ctx, booking); err != nil {
			if db.IsUniqueViolation(err, slotConstraint) {
				return slotConflict(day, input.ScheduledTime)
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist booking")
		}
		created = booking
		return nil
	})
	s.observe("booking_create", err)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *service) ListForCustomer(ctx context.Context, customerID uuid.UUID, filter ListFilter) ([]models.Booking, pagination.Meta, error) {
	if customerID == uuid.Nil {
		return nil, pagination.Meta{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	bookings, total, err := s.repo.ListByCustomer(ctx, customerID, filter)
	if err != nil {
		return nil, pagination.Meta{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list bookings")
	}
	return bookings, pagination.BuildMeta(filter.Page, total), nil
}

func (s *service) ListForVendor(ctx context.Context, vendorID uuid.UUID, filter ListFilter) ([]models.Booking, pagination.Meta, error) {
	if vendorID == uuid.Nil {
		return nil, pagination.Meta{}, pkgerrors.New(pkgerrors.CodeForbidden, "vendor profile required")
	}
	bookings, total, err := s.repo.ListByVendor(ctx, vendorID, filter)
	if err != nil {
		return nil, pagination.Meta{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list bookings")
	}
	return bookings, pagination.BuildMeta(filter.Page, total), nil
}

func (s *service) Get(ctx context.Context, principal Principal, bookingID uuid.UUID) (*models.Booking, error) {
	booking, err := s.loadBooking(ctx, s.repo, bookingID)
	if err != nil {
		return nil, err
	}
	if !canAccess(principal, booking) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "booking does not belong to caller")
	}
	return booking, nil
}

// UpdateStatus applies a vendor-driven transition after checking the
// transition table. Starting work stamps the actual start time; completing
// stamps the end time and the measured duration.
func (s *service) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*models.Booking, error) {
	if input.VendorID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "vendor profile required")
	}
	if !input.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid booking status")
	}

	var updated *models.Booking
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		booking, err := s.loadBooking(ctx, repo, input.BookingID)
		if err != nil {
			return err
		}
		if booking.VendorID != input.VendorID {
			return pkgerrors.New(pkgerrors.CodeForbidden, "booking does not belong to vendor")
		}
		if !booking.Status.CanTransitionTo(input.Status) {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "status transition not allowed").
				WithDetails(map[string]any{"from": booking.Status, "to": input.Status})
		}

		now := s.now()
		switch input.Status {
		case enums.BookingStatusInProgress:
			booking.ServiceStartTime = &now
		case enums.BookingStatusCompleted:
			booking.ServiceEndTime = &now
			if booking.ServiceStartTime != nil {
				minutes := int(math.Round(now.Sub(*booking.ServiceStartTime).Minutes()))
				booking.ActualDurationMin = &minutes
			}
		case enums.BookingStatusCancelled:
			booking.CancelledAt = &now
		}
		booking.Status = input.Status
		booking.AppendStatus(input.Status, input.Note, "vendor", now)

		if err := repo.Save(ctx, booking); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist booking status")
		}
		updated = booking
		return nil
	})
	s.observe("booking_status_update", err)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Cancel is available to the customer and the owning vendor while the booking
// has not entered a state that blocks cancellation.
func (s *service) Cancel(ctx context.Context, input CancelInput) (*models.Booking, error) {
	var cancelled *models.Booking
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		booking, err := s.loadBooking(ctx, repo, input.BookingID)
		if err != nil {
			return err
		}
		if !canAccess(input.Principal, booking) {
			return pkgerrors.New(pkgerrors.CodeForbidden, "booking does not belong to caller")
		}
		if !booking.Status.CanBeCancelled() {
			return pkgerrors.New(pkgerrors.CodeConflict, "booking can no longer be cancelled").
				WithDetails(map[string]any{"status": booking.Status})
		}

		now := s.now()
		booking.Status = enums.BookingStatusCancelled
		booking.CancelledAt = &now
		booking.CancellationReason = input.Reason
		booking.AppendStatus(enums.BookingStatusCancelled, "Booking cancelled", string(input.Principal.Role), now)

		if err := repo.Save(ctx, booking); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist booking cancellation")
		}
		cancelled = booking
		return nil
	})
	s.observe("booking_cancel", err)
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

// Reschedule moves a booking to a new future slot, keeping the original slot
// on the reschedule log. The moved booking must be re-confirmed by the vendor.
func (s *service) Reschedule(ctx context.Context, input RescheduleInput) (*models.Booking, error) {
	if err := validateClock(input.NewTime); err != nil {
		return nil, err
	}
	day := input.NewDate.UTC().Truncate(24 * time.Hour)
	if err := s.ensureFutureSlot(day, input.NewTime); err != nil {
		return nil, err
	}

	var moved *models.Booking
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		booking, err := s.loadBooking(ctx, repo, input.BookingID)
		if err != nil {
			return err
		}
		if !canAccess(input.Principal, booking) {
			return pkgerrors.New(pkgerrors.CodeForbidden, "booking does not belong to caller")
		}
		if !booking.Status.CanBeRescheduled() {
			return pkgerrors.New(pkgerrors.CodeConflict, "booking can no longer be rescheduled").
				WithDetails(map[string]any{"status": booking.Status})
		}

		taken, err := repo.SlotTaken(ctx, booking.VendorID, day, input.NewTime, booking.ID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check slot")
		}
		if taken {
			return slotConflict(day, input.NewTime)
		}

		now := s.now()
		requestedBy := string(input.Principal.Role)
		booking.RescheduleHistory = append(booking.RescheduleHistory, types.RescheduleChange{
			OriginalDate: booking.ScheduledDate,
			OriginalTime: booking.ScheduledTime,
			NewDate:      day,
			NewTime:      input.NewTime,
			Reason:       input.Reason,
			RequestedBy:  requestedBy,
			Timestamp:    now,
		})
		booking.ScheduledDate = day
		booking.ScheduledTime = input.NewTime
		booking.Status = enums.BookingStatusRescheduled
		booking.AppendStatus(enums.BookingStatusRescheduled, "Booking rescheduled", requestedBy, now)

		if err := repo.Save(ctx, booking); err != nil {
			if db.IsUniqueViolation(err, slotConstraint) {
				return slotConflict(day, input.NewTime)
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist reschedule")
		}
		moved = booking
		return nil
	})
	s.observe("booking_reschedule", err)
	if err != nil {
		return nil, err
	}
	return moved, nil
}

func (s *service) StatsForVendor(ctx context.Context, vendorID uuid.UUID) (VendorStats, error) {
	if vendorID == uuid.Nil {
		return VendorStats{}, pkgerrors.New(pkgerrors.CodeForbidden, "vendor profile required")
	}
	stats, err := s.repo.Stats(ctx, vendorID, s.now())
	if err != nil {
		return VendorStats{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load booking stats")
	}
	return stats, nil
}

func (s *service) loadBooking(ctx context.Context, repo Repository, bookingID uuid.UUID) (*models.Booking, error) {
	if bookingID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "booking id required")
	}
	booking, err := repo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load booking")
	}
	return booking, nil
}

// ensureFutureSlot rejects slots at or before the current instant.
func (s *service) ensureFutureSlot(day time.Time, clock string) error {
	var hour, minute int
	fmt.Sscanf(clock, "%d:%d", &hour, &minute)
	at := day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	if !at.After(s.now().UTC()) {
		return pkgerrors.New(pkgerrors.CodeValidation, "scheduled slot must be in the future")
	}
	return nil
}

func validateClock(clock string) error {
	var hour, minute int
	if n, err := fmt.Sscanf(clock, "%02d:%02d", &hour, &minute); err != nil || n != 2 {
		return pkgerrors.New(pkgerrors.CodeValidation, "scheduled time must be HH:MM")
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return pkgerrors.New(pkgerrors.CodeValidation, "scheduled time must be HH:MM")
	}
	return nil
}

func slotConflict(day time.Time, clock string) error {
	return pkgerrors.New(pkgerrors.CodeConflict, "slot already booked").
		WithDetails(map[string]any{"date": day.Format("2006-01-02"), "time": clock})
}

func canAccess(principal Principal, booking *models.Booking) bool {
	if principal.UserID != uuid.Nil && booking.CustomerID == principal.UserID {
		return true
	}
	if principal.VendorID != uuid.Nil && booking.VendorID == principal.VendorID {
		return true
	}
	return false
}
