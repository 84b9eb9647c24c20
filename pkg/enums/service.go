package enums

import "fmt"

// ServiceCategory classifies catalog services.
type ServiceCategory string

const (
	ServiceCategoryPlumbing        ServiceCategory = "plumbing"
	ServiceCategoryElectrical      ServiceCategory = "electrical"
	ServiceCategoryCarpentry       ServiceCategory = "carpentry"
	ServiceCategoryPainting        ServiceCategory = "painting"
	ServiceCategoryCleaning        ServiceCategory = "cleaning"
	ServiceCategoryApplianceRepair ServiceCategory = "appliance-repair"
	ServiceCategoryACRepair        ServiceCategory = "ac-repair"
	ServiceCategoryComputerRepair  ServiceCategory = "computer-repair"
	ServiceCategoryMobileRepair    ServiceCategory = "mobile-repair"
	ServiceCategoryHomeMaintenance ServiceCategory = "home-maintenance"
	ServiceCategoryGardening       ServiceCategory = "gardening"
	ServiceCategoryPestControl     ServiceCategory = "pest-control"
	ServiceCategoryTutoring        ServiceCategory = "tutoring"
	ServiceCategoryMusicLessons    ServiceCategory = "music-lessons"
	ServiceCategoryFitnessTraining ServiceCategory = "fitness-training"
	ServiceCategoryBeautyServices  ServiceCategory = "beauty-services"
	ServiceCategoryMassage         ServiceCategory = "massage"
	ServiceCategoryHealthcare      ServiceCategory = "healthcare"
	ServiceCategoryPhotography     ServiceCategory = "photography"
	ServiceCategoryEventPlanning   ServiceCategory = "event-planning"
	ServiceCategoryCatering        ServiceCategory = "catering"
	ServiceCategoryTransportation  ServiceCategory = "transportation"
	ServiceCategoryDelivery        ServiceCategory = "delivery"
	ServiceCategoryMoving          ServiceCategory = "moving"
	ServiceCategoryOther           ServiceCategory = "other"
)

var validServiceCategories = []ServiceCategory{
	ServiceCategoryPlumbing,
	ServiceCategoryElectrical,
	ServiceCategoryCarpentry,
	ServiceCategoryPainting,
	ServiceCategoryCleaning,
	ServiceCategoryApplianceRepair,
	ServiceCategoryACRepair,
	ServiceCategoryComputerRepair,
	ServiceCategoryMobileRepair,
	ServiceCategoryHomeMaintenance,
	ServiceCategoryGardening,
	ServiceCategoryPestControl,
	ServiceCategoryTutoring,
	ServiceCategoryMusicLessons,
	ServiceCategoryFitnessTraining,
	ServiceCategoryBeautyServices,
	ServiceCategoryMassage,
	ServiceCategoryHealthcare,
	ServiceCategoryPhotography,
	ServiceCategoryEventPlanning,
	ServiceCategoryCatering,
	ServiceCategoryTransportation,
	ServiceCategoryDelivery,
	ServiceCategoryMoving,
	ServiceCategoryOther,
}

func (s ServiceCategory) String() string {
	return string(s)
}

func (s ServiceCategory) IsValid() bool {
	for _, candidate := range validServiceCategories {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseServiceCategory converts raw input into a ServiceCategory.
func ParseServiceCategory(value string) (ServiceCategory, error) {
	for _, candidate := range validServiceCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid service category %q", value)
}

// PricingType is how a service charges.
type PricingType string

const (
	PricingTypeFixed      PricingType = "fixed"
	PricingTypeHourly     PricingType = "hourly"
	PricingTypePerVisit   PricingType = "per-visit"
	PricingTypeNegotiable PricingType = "negotiable"
)

var validPricingTypes = []PricingType{
	PricingTypeFixed,
	PricingTypeHourly,
	PricingTypePerVisit,
	PricingTypeNegotiable,
}

func (p PricingType) String() string {
	return string(p)
}

func (p PricingType) IsValid() bool {
	for _, candidate := range validPricingTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePricingType converts raw input into a PricingType.
func ParsePricingType(value string) (PricingType, error) {
	for _, candidate := range validPricingTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid pricing type %q", value)
}

// PriceUnit qualifies the base price of a service.
type PriceUnit string

const (
	PriceUnitPerHour    PriceUnit = "per-hour"
	PriceUnitPerVisit   PriceUnit = "per-visit"
	PriceUnitPerProject PriceUnit = "per-project"
	PriceUnitPerDay     PriceUnit = "per-day"
)

var validPriceUnits = []PriceUnit{
	PriceUnitPerHour,
	PriceUnitPerVisit,
	PriceUnitPerProject,
	PriceUnitPerDay,
}

func (p PriceUnit) String() string {
	return string(p)
}

func (p PriceUnit) IsValid() bool {
	for _, candidate := range validPriceUnits {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePriceUnit converts raw input into a PriceUnit.
func ParsePriceUnit(value string) (PriceUnit, error) {
	for _, candidate := range validPriceUnits {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid price unit %q", value)
}
