package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/locallinkhq/locallink-backend/pkg/enums"
)

// OrderItem is a point-in-time snapshot of a purchased product. Name, price
// and unit are copied at order time so later catalog edits cannot change
// what the customer agreed to.
type OrderItem struct {
	ID         uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	OrderID    uuid.UUID         `gorm:"column:order_id;type:uuid;not null;index"`
	ProductID  uuid.UUID         `gorm:"column:product_id;type:uuid;not null"`
	Name       string            `gorm:"column:name;not null"`
	PriceCents int64             `gorm:"column:price_cents;not null"`
	Quantity   int               `gorm:"column:quantity;not null"`
	Unit       enums.ProductUnit `gorm:"column:unit;type:text;not null"`
	TotalCents int64             `gorm:"column:total_cents;not null"`
}

func (i *OrderItem) BeforeCreate(_ *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
