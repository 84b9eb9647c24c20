package controllers

import (
	"net/http"

	"github.com/locallinkhq/locallink-backend/api/responses"
	"github.com/locallinkhq/locallink-backend/api/validators"
	"github.com/locallinkhq/locallink-backend/internal/services"
	"github.com/locallinkhq/locallink-backend/internal/vendors"
	"github.com/locallinkhq/locallink-backend/pkg/db/models"
	"github.com/locallinkhq/locallink-backend/pkg/enums"
	"github.com/locallinkhq/locallink-backend/pkg/logger"
	"github.com/locallinkhq/locallink-backend/pkg/pagination"
	"github.com/locallinkhq/locallink-backend/pkg/types"
)

type createServiceRequest struct {
	Title           string            `json:"title" validate:"required,max=200"`
	Description     string            `json:"description" validate:"max=2000"`
	Category        string            `json:"category" validate:"required"`
	PricingType     string            `json:"pricing_type"`
	BasePriceCents  int64             `json:"base_price_cents" validate:"gte=0"`
	PriceUnit       string            `json:"price_unit"`
	DurationMinutes int               `json:"duration_minutes" validate:"required,gt=0"`
	AvailableSlots  types.WeeklySlots `json:"available_slots"`
}

type updateServiceRequest struct {
	Title           *string           `json:"title"`
	Description     *string           `json:"description"`
	Category        *string           `json:"category"`
	PricingType     *string           `json:"pricing_type"`
	BasePriceCents  *int64            `json:"base_price_cents"`
	PriceUnit       *string           `json:"price_unit"`
	DurationMinutes *int              `json:"duration_minutes"`
	AvailableSlots  types.WeeklySlots `json:"available_slots"`
	IsAvailable     *bool             `json:"is_available"`
}

type serviceListResponse struct {
	Services   []models.Service `json:"services"`
	Pagination pagination.Meta  `json:"pagination"`
}

// ListServices is the public service browse endpoint.
func ListServices(svc services.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		filter, err := serviceFilterFromQuery(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		list, meta, err := svc.ListPublic(ctx, filter)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, serviceListResponse{Services: list, Pagination: meta})
	}
}

// GetService returns one publicly visible service offering.
func GetService(svc services.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		serviceID, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		offering, err := svc.GetPublic(ctx, serviceID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"service": offering})
	}
}

// CreateService adds a service offering for the caller's vendor profile.
func CreateService(svc services.Service, vendorRepo vendors.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		vendorID, err := vendorIDFromRequest(ctx, r, vendorRepo)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req createServiceRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		offering, err := svc.Create(ctx, services.CreateInput{
			VendorID:        vendorID,
			Title:           req.Title,
			Description:     req.Description,
			Category:        enums.ServiceCategory(req.Category),
			PricingType:     enums.PricingType(req.PricingType),
			BasePriceCents:  req.BasePriceCents,
			PriceUnit:       enums.PriceUnit(req.PriceUnit),
			DurationMinutes: req.DurationMinutes,
			AvailableSlots:  req.AvailableSlots,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, http.StatusCreated, "service created", map[string]any{"service": offering})
	}
}

// UpdateService edits one of the caller's service offerings.
func UpdateService(svc services.Service, vendorRepo vendors.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		vendorID, err := vendorIDFromRequest(ctx, r, vendorRepo)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		serviceID, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req updateServiceRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		input := services.UpdateInput{
			VendorID:        vendorID,
			ServiceID:       serviceID,
			Title:           req.Title,
			Description:     req.Description,
			BasePriceCents:  req.BasePriceCents,
			DurationMinutes: req.DurationMinutes,
			AvailableSlots:  req.AvailableSlots,
			IsAvailable:     req.IsAvailable,
		}
		if req.Category != nil {
			category := enums.ServiceCategory(*req.Category)
			input.Category = &category
		}
		if req.PricingType != nil {
			pricingType := enums.PricingType(*req.PricingType)
			input.PricingType = &pricingType
		}
		if req.PriceUnit != nil {
			priceUnit := enums.PriceUnit(*req.PriceUnit)
			input.PriceUnit = &priceUnit
		}

		offering, err := svc.Update(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, http.StatusOK, "service updated", map[string]any{"service": offering})
	}
}

// DeleteService soft-deletes one of the caller's service offerings.
func DeleteService(svc services.Service, vendorRepo vendors.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		vendorID, err := vendorIDFromRequest(ctx, r, vendorRepo)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		serviceID, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Delete(ctx, vendorID, serviceID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, http.StatusOK, "service removed", nil)
	}
}

// ListVendorServices lists the caller's own offerings, inactive rows included.
func ListVendorServices(svc services.Service, vendorRepo vendors.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		vendorID, err := vendorIDFromRequest(ctx, r, vendorRepo)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		filter, err := serviceFilterFromQuery(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		list, meta, err := svc.ListForVendor(ctx, vendorID, filter)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, serviceListResponse{Services: list, Pagination: meta})
	}
}

func serviceFilterFromQuery(r *http.Request) (services.ListFilter, error) {
	page, err := parsePagination(r)
	if err != nil {
		return services.ListFilter{}, err
	}
	filter := services.ListFilter{
		Page:      page,
		Search:    r.URL.Query().Get("search"),
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
	}
	if raw := r.URL.Query().Get("category"); raw != "" {
		category, err := enums.ParseServiceCategory(raw)
		if err != nil {
			return services.ListFilter{}, validationError("invalid service category filter")
		}
		filter.Category = &category
	}
	return filter, nil
}
