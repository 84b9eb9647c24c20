package enums

import "fmt"

// DeliveryType is how an order reaches the customer.
type DeliveryType string

const (
	DeliveryTypeHomeDelivery DeliveryType = "home-delivery"
	DeliveryTypeSelfPickup   DeliveryType = "self-pickup"
)

var validDeliveryTypes = []DeliveryType{
	DeliveryTypeHomeDelivery,
	DeliveryTypeSelfPickup,
}

func (d DeliveryType) String() string {
	return string(d)
}

func (d DeliveryType) IsValid() bool {
	for _, candidate := range validDeliveryTypes {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDeliveryType converts raw input into a DeliveryType.
func ParseDeliveryType(value string) (DeliveryType, error) {
	for _, candidate := range validDeliveryTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid delivery type %q", value)
}
