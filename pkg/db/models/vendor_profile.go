package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/locallinkhq/locallink-backend/pkg/enums"
)

// VendorProfile is the business identity every vendor-scoped query keys off.
// A user has at most one profile.
type VendorProfile struct {
	ID              uuid.UUID          `gorm:"column:id;type:uuid;primaryKey"`
	UserID          uuid.UUID          `gorm:"column:user_id;type:uuid;uniqueIndex;not null"`
	BusinessName    string             `gorm:"column:business_name;not null"`
	BusinessType    enums.BusinessType `gorm:"column:business_type;type:text;not null"`
	Category        string             `gorm:"column:category;not null"`
	Description     string             `gorm:"column:description"`
	ServiceRadiusKm float64            `gorm:"column:service_radius_km;not null;default:0"`
	IsActive        bool               `gorm:"column:is_active;not null;default:true"`
	CreatedAt       time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (v *VendorProfile) BeforeCreate(_ *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
