package enums

import "fmt"

// BusinessType distinguishes goods vendors from service providers.
type BusinessType string

const (
	BusinessTypeShop    BusinessType = "shop"
	BusinessTypeService BusinessType = "service"
)

var validBusinessTypes = []BusinessType{
	BusinessTypeShop,
	BusinessTypeService,
}

func (b BusinessType) String() string {
	return string(b)
}

func (b BusinessType) IsValid() bool {
	for _, candidate := range validBusinessTypes {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseBusinessType converts raw input into a BusinessType.
func ParseBusinessType(value string) (BusinessType, error) {
	for _, candidate := range validBusinessTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid business type %q", value)
}
