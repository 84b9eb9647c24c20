package enums

import "fmt"

// OrderPaymentMethod is how a product order gets settled.
type OrderPaymentMethod string

const (
	OrderPaymentCashOnDelivery OrderPaymentMethod = "cash-on-delivery"
	OrderPaymentPayAtShop      OrderPaymentMethod = "pay-at-shop"
)

var validOrderPaymentMethods = []OrderPaymentMethod{
	OrderPaymentCashOnDelivery,
	OrderPaymentPayAtShop,
}

func (m OrderPaymentMethod) String() string {
	return string(m)
}

func (m OrderPaymentMethod) IsValid() bool {
	for _, candidate := range validOrderPaymentMethods {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseOrderPaymentMethod converts raw input into an OrderPaymentMethod.
func ParseOrderPaymentMethod(value string) (OrderPaymentMethod, error) {
	for _, candidate := range validOrderPaymentMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order payment method %q", value)
}

// BookingPaymentMethod is how a service booking gets settled.
type BookingPaymentMethod string

const (
	BookingPaymentCashOnService BookingPaymentMethod = "cash-on-service"
	BookingPaymentPayAtShop     BookingPaymentMethod = "pay-at-shop"
)

var validBookingPaymentMethods = []BookingPaymentMethod{
	BookingPaymentCashOnService,
	BookingPaymentPayAtShop,
}

func (m BookingPaymentMethod) String() string {
	return string(m)
}

func (m BookingPaymentMethod) IsValid() bool {
	for _, candidate := range validBookingPaymentMethods {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseBookingPaymentMethod converts raw input into a BookingPaymentMethod.
func ParseBookingPaymentMethod(value string) (BookingPaymentMethod, error) {
	for _, candidate := range validBookingPaymentMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid booking payment method %q", value)
}
