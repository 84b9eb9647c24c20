package enums

import "fmt"

// ProductCategory classifies catalog products.
type ProductCategory string

const (
	ProductCategoryGroceries      ProductCategory = "groceries"
	ProductCategoryVegetables     ProductCategory = "vegetables"
	ProductCategoryFruits         ProductCategory = "fruits"
	ProductCategoryDairy          ProductCategory = "dairy"
	ProductCategoryBakery         ProductCategory = "bakery"
	ProductCategoryClothing       ProductCategory = "clothing"
	ProductCategoryFootwear       ProductCategory = "footwear"
	ProductCategoryAccessories    ProductCategory = "accessories"
	ProductCategoryElectronics    ProductCategory = "electronics"
	ProductCategoryMobile         ProductCategory = "mobile"
	ProductCategoryComputers      ProductCategory = "computers"
	ProductCategoryPharmacy       ProductCategory = "pharmacy"
	ProductCategoryMedicines      ProductCategory = "medicines"
	ProductCategoryHealth         ProductCategory = "health"
	ProductCategoryStationery     ProductCategory = "stationery"
	ProductCategoryBooks          ProductCategory = "books"
	ProductCategoryOffice         ProductCategory = "office"
	ProductCategoryHomeAppliances ProductCategory = "home-appliances"
	ProductCategoryFurniture      ProductCategory = "furniture"
	ProductCategoryOther          ProductCategory = "other"
)

var validProductCategories = []ProductCategory{
	ProductCategoryGroceries,
	ProductCategoryVegetables,
	ProductCategoryFruits,
	ProductCategoryDairy,
	ProductCategoryBakery,
	ProductCategoryClothing,
	ProductCategoryFootwear,
	ProductCategoryAccessories,
	ProductCategoryElectronics,
	ProductCategoryMobile,
	ProductCategoryComputers,
	ProductCategoryPharmacy,
	ProductCategoryMedicines,
	ProductCategoryHealth,
	ProductCategoryStationery,
	ProductCategoryBooks,
	ProductCategoryOffice,
	ProductCategoryHomeAppliances,
	ProductCategoryFurniture,
	ProductCategoryOther,
}

func (p ProductCategory) String() string {
	return string(p)
}

func (p ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}

// ProductUnit is the sell unit for a product.
type ProductUnit string

const (
	ProductUnitPiece  ProductUnit = "piece"
	ProductUnitKg     ProductUnit = "kg"
	ProductUnitGram   ProductUnit = "gram"
	ProductUnitLiter  ProductUnit = "liter"
	ProductUnitMl     ProductUnit = "ml"
	ProductUnitPacket ProductUnit = "packet"
	ProductUnitBox    ProductUnit = "box"
	ProductUnitDozen  ProductUnit = "dozen"
)

var validProductUnits = []ProductUnit{
	ProductUnitPiece,
	ProductUnitKg,
	ProductUnitGram,
	ProductUnitLiter,
	ProductUnitMl,
	ProductUnitPacket,
	ProductUnitBox,
	ProductUnitDozen,
}

func (u ProductUnit) String() string {
	return string(u)
}

func (u ProductUnit) IsValid() bool {
	for _, candidate := range validProductUnits {
		if candidate == u {
			return true
		}
	}
	return false
}

// ParseProductUnit converts raw input into a ProductUnit.
func ParseProductUnit(value string) (ProductUnit, error) {
	for _, candidate := range validProductUnits {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product unit %q", value)
}

// AvailabilityStatus is derived from remaining stock and never set directly
// by API clients.
type AvailabilityStatus string

const (
	AvailabilityInStock      AvailabilityStatus = "in-stock"
	AvailabilityLimitedStock AvailabilityStatus = "limited-stock"
	AvailabilityOutOfStock   AvailabilityStatus = "out-of-stock"
)

// LimitedStockThreshold is the stock level at or below which a product is
// flagged limited-stock.
const LimitedStockThreshold = 5

func (a AvailabilityStatus) String() string {
	return string(a)
}

// AvailabilityForStock derives the availability bucket for a stock level.
func AvailabilityForStock(stock int) AvailabilityStatus {
	switch {
	case stock <= 0:
		return AvailabilityOutOfStock
	case stock <= LimitedStockThreshold:
		return AvailabilityLimitedStock
	default:
		return AvailabilityInStock
	}
}
