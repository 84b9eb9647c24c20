package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/locallinkhq/locallink-backend/pkg/db/models"
	"github.com/locallinkhq/locallink-backend/pkg/enums"
)

// Repository is the persistence surface of the service catalog.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, service *models.Service) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Service, error)
	List(ctx context.Context, filter ListFilter, publicOnly bool) ([]models.Service, int64, error)
	Save(ctx context.Context, service *models.Service) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a services repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	var service models.Service
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&service).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter, publicOnly bool) ([]models.Service, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Service{})
	if publicOnly {
		query = query.Where("is_active = ? AND status = ?", true, enums.CatalogStatusActive)
	}
	if filter.VendorID != nil {
		query = query.Where("vendor_id = ?", *filter.VendorID)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page.Normalize()
	var services []models.Service
	err := query.
		Order(orderClause(filter)).
		Limit(page.Limit).
		Offset(filter.Page.Offset()).
		Find(&services).Error
	if err != nil {
		return nil, 0, err
	}
	return services, total, nil
}

func (r *repository) Save(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Save(service).Error
}

var sortableColumns = map[string]string{
	"created_at": "created_at",
	"price":      "base_price_cents",
	"title":      "title",
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
