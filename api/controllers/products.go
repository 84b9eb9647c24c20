package controllers

import (
	"net/http"

	"github.com/locallinkhq/locallink-backend/api/responses"
	"github.com/locallinkhq/locallink-backend/api/validators"
	"github.com/locallinkhq/locallink-backend/internal/products"
	"github.com/locallinkhq/locallink-backend/internal/vendors"
	"github.com/locallinkhq/locallink-backend/pkg/db/models"
	"github.com/locallinkhq/locallink-backend/pkg/enums"
	"github.com/locallinkhq/locallink-backend/pkg/logger"
	"github.com/locallinkhq/locallink-backend/pkg/pagination"
)

type createProductRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Description string   `json:"description" validate:"max=2000"`
	Category    string   `json:"category" validate:"required"`
	PriceCents  int64    `json:"price_cents" validate:"required,gt=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Unit        string   `json:"unit"`
	Tags        []string `json:"tags" validate:"max=20"`
	Images      []string `json:"images" validate:"max=10"`
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	PriceCents  *int64   `json:"price_cents"`
	Stock       *int     `json:"stock"`
	Unit        *string  `json:"unit"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

type productListResponse struct {
	Products   []models.Product `json:"products"`
	Pagination pagination.Meta  `json:"pagination"`
}

// ListProducts is the public catalog browse endpoint.
func ListProducts(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		filter, err := productFilterFromQuery(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		list, meta, err := svc.ListPublic(ctx, filter)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, productListResponse{Products: list, Pagination: meta})
	}
}

// GetProduct returns one publicly visible product.
func GetProduct(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		productID, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, err := svc.GetPublic(ctx, productID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"product": product})
	}
}

// CreateProduct adds a catalog entry for the caller's vendor profile.
func CreateProduct(svc products.Service, vendorRepo vendors.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		vendorID, err := vendorIDFromRequest(ctx, r, vendorRepo)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req createProductRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, err := svc.Create(ctx, products.CreateInput{
			VendorID:    vendorID,
			Name:        req.Name,
			Description: req.Description,
			Category:    enums.ProductCategory(req.Category),
			PriceCents:  req.PriceCents,
			Stock:       req.Stock,
			Unit:        enums.ProductUnit(req.Unit),
			Tags:        req.Tags,
			Images:      req.Images,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, http.StatusCreated, "product created", map[string]any{"product": product})
	}
}

// UpdateProduct edits one of the caller's catalog entries.
func UpdateProduct(svc products.Service, vendorRepo vendors.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		vendorID, err := vendorIDFromRequest(ctx, r, vendorRepo)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		productID, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req updateProductRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		input := products.UpdateInput{
			VendorID:    vendorID,
			ProductID:   productID,
			Name:        req.Name,
			Description: req.Description,
			PriceCents:  req.PriceCents,
			Stock:       req.Stock,
			Tags:        req.Tags,
			Images:      req.Images,
		}
		if req.Category != nil {
			category := enums.ProductCategory(*req.Category)
			input.Category = &category
		}
		if req.Unit != nil {
			unit := enums.ProductUnit(*req.Unit)
			input.Unit = &unit
		}

		product, err := svc.Update(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, http.StatusOK, "product updated", map[string]any{"product": product})
	}
}

// DeleteProduct soft-deletes one of the caller's catalog entries.
func DeleteProduct(svc products.Service, vendorRepo vendors.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		vendorID, err := vendorIDFromRequest(ctx, r, vendorRepo)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		productID, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Delete(ctx, vendorID, productID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, http.StatusOK, "product removed", nil)
	}
}

// ListVendorProducts lists the caller's own catalog, inactive rows included.
func ListVendorProducts(svc products.Service, vendorRepo vendors.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		vendorID, err := vendorIDFromRequest(ctx, r, vendorRepo)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		filter, err := productFilterFromQuery(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		list, meta, err := svc.ListForVendor(ctx, vendorID, filter)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, productListResponse{Products: list, Pagination: meta})
	}
}

func productFilterFromQuery(r *http.Request) (products.ListFilter, error) {
	page, err := parsePagination(r)
	if err != nil {
		return products.ListFilter{}, err
	}
	filter := products.ListFilter{
		Page:      page,
		Search:    r.URL.Query().Get("search"),
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
	}
	if raw := r.URL.Query().Get("category"); raw != "" {
		category, err := enums.ParseProductCategory(raw)
		if err != nil {
			return products.ListFilter{}, validationError("invalid product category filter")
		}
		filter.Category = &category
	}
	if minPrice, err := validators.ParseQueryInt(r, "min_price_cents", -1, 0, 1<<30); err != nil {
		return products.ListFilter{}, err
	} else if minPrice >= 0 {
		v := int64(minPrice)
		filter.MinPriceCents = &v
	}
	if maxPrice, err := validators.ParseQueryInt(r, "max_price_cents", -1, 0, 1<<30); err != nil {
		return products.ListFilter{}, err
	} else if maxPrice >= 0 {
		v := int64(maxPrice)
		filter.MaxPriceCents = &v
	}
	return filter, nil
}
