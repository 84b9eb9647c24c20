package enums

import "fmt"

// CatalogStatus is the moderation state shared by products and services.
type CatalogStatus string

const (
	CatalogStatusActive          CatalogStatus = "active"
	CatalogStatusInactive        CatalogStatus = "inactive"
	CatalogStatusPendingApproval CatalogStatus = "pending-approval"
	CatalogStatusRejected        CatalogStatus = "rejected"
)

var validCatalogStatuses = []CatalogStatus{
	CatalogStatusActive,
	CatalogStatusInactive,
	CatalogStatusPendingApproval,
	CatalogStatusRejected,
}

func (c CatalogStatus) String() string {
	return string(c)
}

func (c CatalogStatus) IsValid() bool {
	for _, candidate := range validCatalogStatuses {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCatalogStatus converts raw input into a CatalogStatus.
func ParseCatalogStatus(value string) (CatalogStatus, error) {
	for _, candidate := range validCatalogStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid catalog status %q", value)
}
