package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/locallinkhq/locallink-backend/pkg/enums"
	"github.com/locallinkhq/locallink-backend/pkg/types"
)

// Service represents a bookable service offering.
type Service struct {
	ID              uuid.UUID             `gorm:"column:id;type:uuid;primaryKey"`
	VendorID        uuid.UUID             `gorm:"column:vendor_id;type:uuid;not null;index"`
	Title           string                `gorm:"column:title;not null"`
	Description     string                `gorm:"column:description"`
	Category        enums.ServiceCategory `gorm:"column:category;type:text;not null"`
	PricingType     enums.PricingType     `gorm:"column:pricing_type;type:text;not null;default:'fixed'"`
	BasePriceCents  int64                 `gorm:"column:base_price_cents;not null"`
	PriceUnit       enums.PriceUnit       `gorm:"column:price_unit;type:text;not null;default:'per-visit'"`
	DurationMinutes int                   `gorm:"column:duration_minutes;not null"`
	AvailableSlots  types.WeeklySlots     `gorm:"column:available_slots;serializer:json"`
	IsAvailable     bool                  `gorm:"column:is_available;not null;default:true"`
	Status          enums.CatalogStatus   `gorm:"column:status;type:text;not null;default:'active'"`
	IsActive        bool                  `gorm:"column:is_active;not null;default:true"`
	CreatedAt       time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}

func (s *Service) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
