package types

// SlotWindow is one bookable window within a weekday, times in HH:MM.
type SlotWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeeklySlots maps lowercase weekday names to bookable windows.
type WeeklySlots map[string][]SlotWindow

// ServiceSnapshot freezes the booked service's details onto the booking so
// later catalog edits cannot rewrite history.
type ServiceSnapshot struct {
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	PriceCents      int64  `json:"price_cents"`
	DurationMinutes int    `json:"duration_minutes"`
	Category        string `json:"category"`
}
