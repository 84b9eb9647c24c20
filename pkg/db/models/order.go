package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/locallinkhq/locallink-backend/pkg/enums"
	"github.com/locallinkhq/locallink-backend/pkg/types"
)

// Order represents a single-vendor product order. Multi-vendor carts are
// split into one order per vendor before anything is persisted.
type Order struct {
	ID                  uuid.UUID                `gorm:"column:id;type:uuid;primaryKey"`
	OrderNumber         string                   `gorm:"column:order_number;uniqueIndex;not null"`
	CustomerID          uuid.UUID                `gorm:"column:customer_id;type:uuid;not null;index"`
	VendorID            uuid.UUID                `gorm:"column:vendor_id;type:uuid;not null;index"`
	SubtotalCents       int64                    `gorm:"column:subtotal_cents;not null"`
	DeliveryChargeCents int64                    `gorm:"column:delivery_charge_cents;not null;default:0"`
	DiscountCents       int64                    `gorm:"column:discount_cents;not null;default:0"`
	TotalAmountCents    int64                    `gorm:"column:total_amount_cents;not null"`
	DeliveryType        enums.DeliveryType       `gorm:"column:delivery_type;type:text;not null"`
	DeliveryAddress     *types.Address           `gorm:"column:delivery_address;serializer:json"`
	PaymentMethod       enums.OrderPaymentMethod `gorm:"column:payment_method;type:text;not null"`
	PaymentStatus       enums.PaymentStatus      `gorm:"column:payment_status;type:text;not null;default:'unpaid'"`
	Status              enums.OrderStatus        `gorm:"column:status;type:text;not null;default:'pending'"`
	StatusHistory       []types.StatusChange     `gorm:"column:status_history;serializer:json"`
	Notes               string                   `gorm:"column:notes"`
	DeliveredAt         *time.Time               `gorm:"column:delivered_at"`
	CancelledAt         *time.Time               `gorm:"column:cancelled_at"`
	Items               []OrderItem              `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt           time.Time                `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time                `gorm:"column:updated_at;autoUpdateTime"`
}

func (o *Order) BeforeCreate(_ *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// BeforeSave keeps the money columns derived from the item snapshots. Orders
// are always loaded with their items, so every write passes through here with
// the full cart attached.
func (o *Order) BeforeSave(_ *gorm.DB) error {
	var subtotal int64
	for i := range o.Items {
		o.Items[i].TotalCents = o.Items[i].PriceCents * int64(o.Items[i].Quantity)
		subtotal += o.Items[i].TotalCents
	}
	o.SubtotalCents = subtotal
	o.TotalAmountCents = subtotal + o.DeliveryChargeCents - o.DiscountCents
	return nil
}

// AppendStatus records a status change on the append-only history log.
func (o *Order) AppendStatus(status enums.OrderStatus, note, updatedBy string, at time.Time) {
	o.StatusHistory = append(o.StatusHistory, types.StatusChange{
		Status:    status.String(),
		Timestamp: at,
		Note:      note,
		UpdatedBy: updatedBy,
	})
}
