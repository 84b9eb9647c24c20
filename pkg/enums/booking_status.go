package enums

import "fmt"

// BookingStatus tracks the lifecycle of a service booking.
type BookingStatus string

const (
	BookingStatusPending     BookingStatus = "pending"
	BookingStatusConfirmed   BookingStatus = "confirmed"
	BookingStatusRescheduled BookingStatus = "rescheduled"
	BookingStatusInProgress  BookingStatus = "in-progress"
	BookingStatusCompleted   BookingStatus = "completed"
	BookingStatusCancelled   BookingStatus = "cancelled"
	BookingStatusNoShow      BookingStatus = "no-show"
	BookingStatusRefunded    BookingStatus = "refunded"
)

var validBookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusRescheduled,
	BookingStatusInProgress,
	BookingStatusCompleted,
	BookingStatusCancelled,
	BookingStatusNoShow,
	BookingStatusRefunded,
}

// bookingTransitions is the authoritative transition table. A rescheduled
// booking behaves like a fresh pending one; refunds are only reachable after
// a no-show.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:     {BookingStatusConfirmed, BookingStatusRescheduled, BookingStatusCancelled, BookingStatusNoShow},
	BookingStatusRescheduled: {BookingStatusConfirmed, BookingStatusRescheduled, BookingStatusCancelled, BookingStatusNoShow},
	BookingStatusConfirmed:   {BookingStatusInProgress, BookingStatusRescheduled, BookingStatusCancelled, BookingStatusNoShow},
	BookingStatusInProgress:  {BookingStatusCompleted},
	BookingStatusNoShow:      {BookingStatusRefunded},
	BookingStatusCompleted:   {},
	BookingStatusCancelled:   {},
	BookingStatusRefunded:    {},
}

// String implements fmt.Stringer.
func (b BookingStatus) String() string {
	return string(b)
}

// IsValid reports whether the value is a known BookingStatus.
func (b BookingStatus) IsValid() bool {
	for _, candidate := range validBookingStatuses {
		if candidate == b {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (b BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[b]) == 0 && b.IsValid()
}

// CanTransitionTo reports whether the transition table allows moving to next.
func (b BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, candidate := range bookingTransitions[b] {
		if candidate == next {
			return true
		}
	}
	return false
}

// CanBeCancelled reports whether the booking may still be cancelled by either
// party. In-progress work cannot be abandoned through the cancel path.
func (b BookingStatus) CanBeCancelled() bool {
	switch b {
	case BookingStatusCompleted, BookingStatusCancelled, BookingStatusRefunded, BookingStatusInProgress:
		return false
	}
	return true
}

// CanBeRescheduled mirrors CanBeCancelled: the same states block both.
func (b BookingStatus) CanBeRescheduled() bool {
	return b.CanBeCancelled()
}

// ParseBookingStatus converts raw input into a BookingStatus.
func ParseBookingStatus(value string) (BookingStatus, error) {
	for _, candidate := range validBookingStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid booking status %q", value)
}
