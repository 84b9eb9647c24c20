package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/locallinkhq/locallink-backend/pkg/enums"
)

// Product represents a vendor's sellable item. AvailabilityStatus and
// IsAvailable are derived from Stock on every save; the inventory adjuster
// recomputes them inside its UPDATE as well so raw SQL writes stay
// consistent.
type Product struct {
	ID                 uuid.UUID                `gorm:"column:id;type:uuid;primaryKey"`
	VendorID           uuid.UUID                `gorm:"column:vendor_id;type:uuid;not null;index"`
	Name               string                   `gorm:"column:name;not null"`
	Description        string                   `gorm:"column:description"`
	Category           enums.ProductCategory    `gorm:"column:category;type:text;not null"`
	PriceCents         int64                    `gorm:"column:price_cents;not null"`
	Stock              int                      `gorm:"column:stock;not null;default:0"`
	Unit               enums.ProductUnit        `gorm:"column:unit;type:text;not null;default:'piece'"`
	Tags               []string                 `gorm:"column:tags;serializer:json"`
	Images             []string                 `gorm:"column:images;serializer:json"`
	IsAvailable        bool                     `gorm:"column:is_available;not null;default:true"`
	AvailabilityStatus enums.AvailabilityStatus `gorm:"column:availability_status;type:text;not null;default:'in-stock'"`
	Status             enums.CatalogStatus      `gorm:"column:status;type:text;not null;default:'active'"`
	IsActive           bool                     `gorm:"column:is_active;not null;default:true"`
	CreatedAt          time.Time                `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time                `gorm:"column:updated_at;autoUpdateTime"`
}

func (p *Product) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// BeforeSave keeps the derived availability columns in sync with Stock.
func (p *Product) BeforeSave(_ *gorm.DB) error {
	p.AvailabilityStatus = enums.AvailabilityForStock(p.Stock)
	p.IsAvailable = p.Stock > 0
	return nil
}
