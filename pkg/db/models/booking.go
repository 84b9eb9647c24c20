package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/locallinkhq/locallink-backend/pkg/enums"
	"github.com/locallinkhq/locallink-backend/pkg/types"
)

// Booking represents a scheduled service appointment. ScheduledDate is
// normalized to UTC midnight; ScheduledTime is a 24h HH:MM string.
// EstimatedEndTime is derived on every save.
type Booking struct {
	ID                 uuid.UUID                  `gorm:"column:id;type:uuid;primaryKey"`
	BookingNumber      string                     `gorm:"column:booking_number;uniqueIndex;not null"`
	CustomerID         uuid.UUID                  `gorm:"column:customer_id;type:uuid;not null;index"`
	VendorID           uuid.UUID                  `gorm:"column:vendor_id;type:uuid;not null;index"`
	ServiceID          uuid.UUID                  `gorm:"column:service_id;type:uuid;not null"`
	ServiceDetails     types.ServiceSnapshot      `gorm:"column:service_details;serializer:json"`
	ScheduledDate      time.Time                  `gorm:"column:scheduled_date;not null;index:idx_bookings_vendor_slot,priority:2"`
	ScheduledTime      string                     `gorm:"column:scheduled_time;not null;index:idx_bookings_vendor_slot,priority:3"`
	EstimatedEndTime   string                     `gorm:"column:estimated_end_time"`
	TotalAmountCents   int64                      `gorm:"column:total_amount_cents;not null"`
	CustomerInfo       types.CustomerInfo         `gorm:"column:customer_info;serializer:json"`
	ServiceLocation    enums.ServiceLocation      `gorm:"column:service_location;type:text;not null"`
	ServiceAddress     *types.Address             `gorm:"column:service_address;serializer:json"`
	PaymentMethod      enums.BookingPaymentMethod `gorm:"column:payment_method;type:text;not null"`
	PaymentStatus      enums.PaymentStatus        `gorm:"column:payment_status;type:text;not null;default:'unpaid'"`
	Status             enums.BookingStatus        `gorm:"column:status;type:text;not null;default:'pending';index:idx_bookings_vendor_slot,priority:4"`
	StatusHistory      []types.StatusChange       `gorm:"column:status_history;serializer:json"`
	RescheduleHistory  []types.RescheduleChange   `gorm:"column:reschedule_history;serializer:json"`
	SpecialRequests    string                     `gorm:"column:special_requests"`
	ServiceStartTime   *time.Time                 `gorm:"column:service_start_time"`
	ServiceEndTime     *time.Time                 `gorm:"column:service_end_time"`
	ActualDurationMin  *int                       `gorm:"column:actual_duration_min"`
	CancelledAt        *time.Time                 `gorm:"column:cancelled_at"`
	CancellationReason string                     `gorm:"column:cancellation_reason"`
	CreatedAt          time.Time                  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time                  `gorm:"column:updated_at;autoUpdateTime"`
}

func (b *Booking) BeforeCreate(_ *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// BeforeSave keeps the derived end time in sync with the scheduled slot and
// the snapshotted duration.
func (b *Booking) BeforeSave(_ *gorm.DB) error {
	b.EstimatedEndTime = addMinutesToClock(b.ScheduledTime, b.ServiceDetails.DurationMinutes)
	return nil
}

// AppendStatus records a status change on the append-only history log.
func (b *Booking) AppendStatus(status enums.BookingStatus, note, updatedBy string, at time.Time) {
	b.StatusHistory = append(b.StatusHistory, types.StatusChange{
		Status:    status.String(),
		Timestamp: at,
		Note:      note,
		UpdatedBy: updatedBy,
	})
}

// ScheduledAt combines the UTC date and the HH:MM slot into one instant.
func (b *Booking) ScheduledAt() time.Time {
	var hour, minute int
	if _, err := fmt.Sscanf(b.ScheduledTime, "%d:%d", &hour, &minute); err != nil {
		return b.ScheduledDate
	}
	return b.ScheduledDate.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// addMinutesToClock advances an HH:MM clock value, wrapping past midnight.
func addMinutesToClock(clock string, minutes int) string {
	var hour, minute int
	if _, err := fmt.Sscanf(clock, "%d:%d", &hour, &minute); err != nil {
		return clock
	}
	total := (hour*60 + minute + minutes) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
