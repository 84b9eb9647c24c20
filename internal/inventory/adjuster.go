package inventory

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/locallinkhq/locallink-backend/pkg/errors"
)

// Adjuster moves product stock with a single conditional UPDATE so
// concurrent orders can never oversell. The statement recomputes the derived
// availability columns in SQL because it bypasses model hooks.
type Adjuster interface {
	Reserve(ctx context.Context, tx *gorm.DB, productID uuid.UUID, qty int) error
	Release(ctx context.Context, tx *gorm.DB, productID uuid.UUID, qty int) error
}

type adjuster struct{}

// NewAdjuster builds the stock adjuster.
func NewAdjuster() Adjuster {
	return adjuster{}
}

const reserveSQL = `
UPDATE products
SET stock = stock - ?,
    availability_status = CASE
        WHEN stock - ? <= 0 THEN 'out-of-stock'
        WHEN stock - ? <= 5 THEN 'limited-stock'
        ELSE 'in-stock'
    END,
    is_available = CASE WHEN stock - ? <= 0 THEN FALSE ELSE TRUE END,
    updated_at = CURRENT_TIMESTAMP
WHERE id = ? AND stock >= ?`

const releaseSQL = `
UPDATE products
SET stock = stock + ?,
    availability_status = CASE
        WHEN stock + ? <= 0 THEN 'out-of-stock'
        WHEN stock + ? <= 5 THEN 'limited-stock'
        ELSE 'in-stock'
    END,
    is_available = CASE WHEN stock + ? <= 0 THEN FALSE ELSE TRUE END,
    updated_at = CURRENT_TIMESTAMP
WHERE id = ?`

// Reserve decrements stock when enough remains; zero rows affected means the
// guard failed and the caller's transaction must roll back.
func (adjuster) Reserve(ctx context.Context, tx *gorm.DB, productID uuid.UUID, qty int) error {
	if qty <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	result := tx.WithContext(ctx).Exec(reserveSQL, qty, qty, qty, qty, productID, qty)
	if result.Error != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, result.Error, "reserve stock")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeConflict, "insufficient stock").
			WithDetails(map[string]any{"product_id": productID, "requested": qty})
	}
	return nil
}

// Release returns previously reserved stock, e.g. when an order is cancelled.
func (adjuster) Release(ctx context.Context, tx *gorm.DB, productID uuid.UUID, qty int) error {
	if qty <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	result := tx.WithContext(ctx).Exec(releaseSQL, qty, qty, qty, qty, productID)
	if result.Error != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, result.Error, "release stock")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return nil
}
