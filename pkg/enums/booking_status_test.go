package enums

import "testing"

func TestBookingStatusTransitions(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusNoShow, true},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusRescheduled, BookingStatusConfirmed, true},
		{BookingStatusRescheduled, BookingStatusRescheduled, true},
		{BookingStatusConfirmed, BookingStatusInProgress, true},
		{BookingStatusConfirmed, BookingStatusCompleted, false},
		{BookingStatusInProgress, BookingStatusCompleted, true},
		{BookingStatusInProgress, BookingStatusCancelled, false},
		{BookingStatusNoShow, BookingStatusRefunded, true},
		{BookingStatusCompleted, BookingStatusRefunded, false},
		{BookingStatusCancelled, BookingStatusRefunded, false},
		{BookingStatusRefunded, BookingStatusPending, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
			t.Fatalf("%s -> %s: expected %v got %v", tt.from, tt.to, tt.allowed, got)
		}
	}
}

func TestBookingCancelReschedulePredicates(t *testing.T) {
	blocked := []BookingStatus{BookingStatusCompleted, BookingStatusCancelled, BookingStatusRefunded, BookingStatusInProgress}
	for _, status := range blocked {
		if status.CanBeCancelled() {
			t.Fatalf("%s should not be cancellable", status)
		}
		if status.CanBeRescheduled() {
			t.Fatalf("%s should not be reschedulable", status)
		}
	}

	open := []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusRescheduled, BookingStatusNoShow}
	for _, status := range open {
		if !status.CanBeCancelled() {
			t.Fatalf("%s should be cancellable", status)
		}
		if !status.CanBeRescheduled() {
			t.Fatalf("%s should be reschedulable", status)
		}
	}
}

func TestAvailabilityForStock(t *testing.T) {
	tests := []struct {
		stock int
		want  AvailabilityStatus
	}{
		{0, AvailabilityOutOfStock},
		{-2, AvailabilityOutOfStock},
		{1, AvailabilityLimitedStock},
		{5, AvailabilityLimitedStock},
		{6, AvailabilityInStock},
		{100, AvailabilityInStock},
	}
	for _, tt := range tests {
		if got := AvailabilityForStock(tt.stock); got != tt.want {
			t.Fatalf("stock %d: expected %s got %s", tt.stock, tt.want, got)
		}
	}
}
