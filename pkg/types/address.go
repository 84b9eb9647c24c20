package types

import "strings"

// Address is the contact-plus-location block embedded in orders (delivery
// address) and bookings (service address). Stored as JSON via the GORM
// serializer.
type Address struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Street   string `json:"street"`
	City     string `json:"city"`
	Pincode  string `json:"pincode"`
	Landmark string `json:"landmark,omitempty"`
}

// Complete reports whether every required field is present.
func (a Address) Complete() bool {
	for _, field := range []string{a.Name, a.Phone, a.Street, a.City, a.Pincode} {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}

// MissingFields lists the required fields that are empty, for validation
// error details.
func (a Address) MissingFields() []string {
	required := map[string]string{
		"name":    a.Name,
		"phone":   a.Phone,
		"street":  a.Street,
		"city":    a.City,
		"pincode": a.Pincode,
	}
	missing := []string{}
	for _, key := range []string{"name", "phone", "street", "city", "pincode"} {
		if strings.TrimSpace(required[key]) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}
