package types

import "time"

// StatusChange is one append-only entry in an order or booking status
// history log.
type StatusChange struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}

// RescheduleChange records one reschedule of a booking.
type RescheduleChange struct {
	OriginalDate time.Time `json:"original_date"`
	OriginalTime string    `json:"original_time"`
	NewDate      time.Time `json:"new_date"`
	NewTime      string    `json:"new_time"`
	Reason       string    `json:"reason,omitempty"`
	RequestedBy  string    `json:"requested_by"`
	Timestamp    time.Time `json:"timestamp"`
}

// CustomerInfo is the customer contact snapshot frozen onto a booking at
// creation time.
type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}
