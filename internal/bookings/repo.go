package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/locallinkhq/locallink-backend/pkg/db/models"
	"github.com/locallinkhq/locallink-backend/pkg/enums"
)

// activeSlotStatuses are the statuses that keep a vendor slot occupied.
// Cancelled, completed and no-show bookings free the slot for rebooking.
var activeSlotStatuses = []enums.BookingStatus{
	enums.BookingStatusPending,
	enums.BookingStatusConfirmed,
	enums.BookingStatusRescheduled,
	enums.BookingStatusInProgress,
}

// Repository is the persistence surface of the booking engine.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, filter ListFilter) ([]models.Booking, int64, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID, filter ListFilter) ([]models.Booking, int64, error)
	Save(ctx context.Context, booking *models.Booking) error
	FindService(ctx context.Context, id uuid.UUID) (*models.Service, error)
	SlotTaken(ctx context.Context, vendorID uuid.UUID, date time.Time, clock string, excludeID uuid.UUID) (bool, error)
	Stats(ctx context.Context, vendorID uuid.UUID, now time.Time) (VendorStats, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a bookings repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) ListByCustomer(ctx context.Context, customerID uuid.UUID, filter ListFilter) ([]models.Booking, int64, error) {
	return r.list(ctx, "customer_id = ?", customerID, filter)
}

func (r *repository) ListByVendor(ctx context.Context, vendorID uuid.UUID, filter ListFilter) ([]models.Booking, int64, error) {
	return r.list(ctx, "vendor_id = ?", vendorID, filter)
}

func (r *repository) list(ctx context.Context, ownerClause string, ownerID uuid.UUID, filter ListFilter) ([]models.Booking, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Booking{}).Where(ownerClause, ownerID)
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Date != nil {
		day := filter.Date.UTC().Truncate(24 * time.Hour)
		query = query.Where("scheduled_date >= ? AND scheduled_date < ?", day, day.Add(24*time.Hour))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page.Normalize()
	var bookings []models.Booking
	err := query.
		Order(orderClause(filter)).
		Limit(page.Limit).
		Offset(filter.Page.Offset()).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *repository) Save(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *repository) FindService(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	var service models.Service
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&service).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// SlotTaken checks the exact vendor slot against bookings that still occupy
// it. The partial unique index backs this up at the storage level; the check
// here exists to fail with a useful error before hitting the constraint.
func (r *repository) SlotTaken(ctx context.Context, vendorID uuid.UUID, date time.Time, clock string, excludeID uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("vendor_id = ? AND scheduled_date = ? AND scheduled_time = ?", vendorID, date, clock).
		Where("status IN ?", activeSlotStatuses)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) Stats(ctx context.Context, vendorID uuid.UUID, now time.Time) (VendorStats, error) {
	var stats VendorStats
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.Booking{}).Where("vendor_id = ?", vendorID)
	}

	counts := []struct {
		dest  *int64
		scope func(*gorm.DB) *gorm.DB
	}{
		{&stats.Total, func(q *gorm.DB) *gorm.DB { return q }},
		{&stats.Pending, func(q *gorm.DB) *gorm.DB { return q.Where("status = ?", enums.BookingStatusPending) }},
		{&stats.Confirmed, func(q *gorm.DB) *gorm.DB { return q.Where("status = ?", enums.BookingStatusConfirmed) }},
		{&stats.Completed, func(q *gorm.DB) *gorm.DB { return q.Where("status = ?", enums.BookingStatusCompleted) }},
		{&stats.Cancelled, func(q *gorm.DB) *gorm.DB { return q.Where("status = ?", enums.BookingStatusCancelled) }},
	}
	for _, c := range counts {
		if err := c.scope(base()).Count(c.dest).Error; err != nil {
			return VendorStats{}, err
		}
	}

	today := now.UTC().Truncate(24 * time.Hour)
	if err := base().
		Where("scheduled_date >= ? AND scheduled_date < ?", today, today.Add(24*time.Hour)).
		Count(&stats.Today).Error; err != nil {
		return VendorStats{}, err
	}

	// Upcoming counts every booking still on the calendar, refunded ones
	// included; only terminal outcomes drop out.
	if err := base().
		Where("scheduled_date >= ? AND scheduled_date < ?", today, today.Add(7*24*time.Hour)).
		Where("status NOT IN ?", []enums.BookingStatus{
			enums.BookingStatusCancelled,
			enums.BookingStatusCompleted,
			enums.BookingStatusNoShow,
		}).
		Count(&stats.Upcoming).Error; err != nil {
		return VendorStats{}, err
	}

	var revenue *int64
	if err := base().
		Where("status = ?", enums.BookingStatusCompleted).
		Select("SUM(total_amount_cents)").
		Scan(&revenue).Error; err != nil {
		return VendorStats{}, err
	}
	if revenue != nil {
		stats.RevenueCents = *revenue
	}
	return stats, nil
}

var sortableColumns = map[string]string{
	"created_at":     "created_at",
	"scheduled_date": "scheduled_date",
	"total_amount":   "total_amount_cents",
	"status":         "status",
}

func orderClause(filter ListFilter) string {
	column, ok := sortableColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if filter.SortOrder == "asc" {
		direction = "ASC"
	}
	return column + " " + direction
}
