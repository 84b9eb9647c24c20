package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/locallinkhq/locallink-backend/api/middleware"
	"github.com/locallinkhq/locallink-backend/api/responses"
	"github.com/locallinkhq/locallink-backend/api/validators"
	"github.com/locallinkhq/locallink-backend/internal/orders"
	"github.com/locallinkhq/locallink-backend/internal/vendors"
	"github.com/locallinkhq/locallink-backend/pkg/db/models"
	"github.com/locallinkhq/locallink-backend/pkg/enums"
	"github.com/locallinkhq/locallink-backend/pkg/logger"
	"github.com/locallinkhq/locallink-backend/pkg/pagination"
	"github.com/locallinkhq/locallink-backend/pkg/types"
)

type createOrderItem struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type createOrderRequest struct {
	Items           []createOrderItem `json:"items" validate:"required,min=1,dive"`
	DeliveryType    string            `json:"delivery_type" validate:"required,oneof=home-delivery self-pickup"`
	DeliveryAddress *types.Address    `json:"delivery_address"`
	PaymentMethod   string            `json:"payment_method" validate:"required,oneof=cash-on-delivery pay-at-shop"`
	Notes           string            `json:"notes" validate:"max=500"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note" validate:"max=500"`
}

type orderListResponse struct {
	Orders     []models.Order  `json:"orders"`
	Pagination pagination.Meta `json:"pagination"`
}

// CreateOrder places an order for the authenticated customer. Carts that
// span vendors come back as multiple orders.
func CreateOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		customerID, err := userIDFromRequest(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req createOrderRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		input := orders.CreateInput{
			CustomerID:      customerID,
			DeliveryType:    enums.DeliveryType(req.DeliveryType),
			DeliveryAddress: req.DeliveryAddress,
			PaymentMethod:   enums.OrderPaymentMethod(req.PaymentMethod),
			Notes:           req.Notes,
		}
		for _, item := range req.Items {
			productID, err := uuid.Parse(item.ProductID)
			if err != nil {
				responses.WriteError(ctx, logg, w, validationError("invalid product id"))
				return
			}
			input.Items = append(input.Items, orders.CreateItemInput{
				ProductID: productID,
				Quantity:  item.Quantity,
			})
		}

		created, err := svc.Create(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, http.StatusCreated, "order placed", map[string]any{"orders": created})
	}
}

// ListMyOrders lists the authenticated customer's orders.
func ListMyOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		customerID, err := userIDFromRequest(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		filter, err := orderFilterFromQuery(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		list, meta, err := svc.ListForCustomer(ctx, customerID, filter)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, orderListResponse{Orders: list, Pagination: meta})
	}
}

// GetOrder returns one order, visible to its customer and its vendor.
func GetOrder(svc orders.Service, vendorRepo vendors.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		principal, err := orderPrincipal(r, vendorRepo)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		orderID, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		order, err := svc.Get(ctx, principal, orderID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"order": order})
	}
}

// CancelOrder cancels an order on behalf of its customer or its vendor.
func CancelOrder(svc orders.Service, vendorRepo vendors.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		principal, err := orderPrincipal(r, vendorRepo)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		orderID, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		order, err := svc.Cancel(ctx, principal, orderID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, http.StatusOK, "order cancelled", map[string]any{"order": order})
	}
}

// ListVendorOrders lists orders placed against the caller's vendor profile.
func ListVendorOrders(svc orders.Service, vendorRepo vendors.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		vendorID, err := vendorIDFromRequest(ctx, r, vendorRepo)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		filter, err := orderFilterFromQuery(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		list, meta, err := svc.ListForVendor(ctx, vendorID, filter)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, orderListResponse{Orders: list, Pagination: meta})
	}
}

// UpdateOrderStatus moves an order along its lifecycle, vendor side.
func UpdateOrderStatus(svc orders.Service, vendorRepo vendors.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		vendorID, err := vendorIDFromRequest(ctx, r, vendorRepo)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		orderID, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req updateOrderStatusRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		status, err := enums.ParseOrderStatus(req.Status)
		if err != nil {
			responses.WriteError(ctx, logg, w, validationError("invalid order status"))
			return
		}

		order, err := svc.UpdateStatus(ctx, orders.UpdateStatusInput{
			VendorID: vendorID,
			OrderID:  orderID,
			Status:   status,
			Note:     req.Note,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessMessage(w, http.StatusOK, "order status updated", map[string]any{"order": order})
	}
}

func orderPrincipal(r *http.Request, vendorRepo vendors.Repository) (orders.Principal, error) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		return orders.Principal{}, err
	}
	principal := orders.Principal{
		UserID: userID,
		Role:   enums.UserRole(middleware.RoleFromContext(r.Context())),
	}
	if principal.Role == enums.UserRoleVendor {
		profile, err := vendorRepo.FindByUserID(r.Context(), userID)
		if err != nil {
			return orders.Principal{}, err
		}
		principal.VendorID = profile.ID
	}
	return principal, nil
}

func orderFilterFromQuery(r *http.Request) (orders.ListFilter, error) {
	page, err := parsePagination(r)
	if err != nil {
		return orders.ListFilter{}, err
	}
	filter := orders.ListFilter{
		Page:      page,
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := enums.ParseOrderStatus(raw)
		if err != nil {
			return orders.ListFilter{}, validationError("invalid order status filter")
		}
		filter.Status = &status
	}
	return filter, nil
}
