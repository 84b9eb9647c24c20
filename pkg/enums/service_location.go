package enums

import "fmt"

// ServiceLocation is where a booked service is performed.
type ServiceLocation string

const (
	ServiceLocationCustomer ServiceLocation = "customer-location"
	ServiceLocationVendor   ServiceLocation = "vendor-location"
	ServiceLocationOnline   ServiceLocation = "online"
)

var validServiceLocations = []ServiceLocation{
	ServiceLocationCustomer,
	ServiceLocationVendor,
	ServiceLocationOnline,
}

func (s ServiceLocation) String() string {
	return string(s)
}

func (s ServiceLocation) IsValid() bool {
	for _, candidate := range validServiceLocations {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseServiceLocation converts raw input into a ServiceLocation.
func ParseServiceLocation(value string) (ServiceLocation, error) {
	for _, candidate := range validServiceLocations {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid service location %q", value)
}
