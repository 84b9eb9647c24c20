package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/locallinkhq/locallink-backend/pkg/db/models"
)

// Repository is the persistence surface of the order engine.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, filter ListFilter) ([]models.Order, int64, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID, filter ListFilter) ([]models.Order, int64, error)
	Save(ctx context.Context, order *models.Order) error
	FindProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repository) ListByCustomer(ctx context.Context, customerID uuid.UUID, filter ListFilter) ([]models.Order, int64, error) {
	return r.list(ctx, "customer_id = ?", customerID, filter)
}

func (r *repository) ListByVendor(ctx context.Context, vendorID uuid.UUID, filter ListFilter) ([]models.Order, int64, error) {
	return r.list(ctx, "vendor_id = ?", vendorID, filter)
}

func (r *repository) list(ctx context.Context, ownerClause string, ownerID uuid.UUID, filter ListFilter) ([]models.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Order{}).Where(ownerClause, ownerID)
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page.Normalize()
	var orders []models.Order
	err := query.
		Preload("Items").
		Order(orderClause(filter)).
		Limit(page.Limit).
		Offset(filter.Page.Offset()).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *repository) Save(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *repository) FindProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// sortableColumns whitelists single-field sorts so arbitrary SQL can never
// reach the ORDER BY clause.
var sortableColumns = map[string]string{
	"created_at":   "created_at",
	"total_amount": "total_amount_cents",
	"status":       "status",
}

func orderClause(filter ListFilter) string {
	column, ok := sortableColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if filter.SortOrder == "asc" {
		direction = "ASC"
	}
	return column + " " + direction
}
