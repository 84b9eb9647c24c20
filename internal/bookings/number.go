package bookings

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateBookingNumber produces a human-scannable booking number with a
// random suffix wide enough to never collide in practice.
func GenerateBookingNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("BKG-%s-%s", now.UTC().Format("20060102"), suffix)
}
