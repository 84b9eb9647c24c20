package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/locallinkhq/locallink-backend/api/controllers"
	"github.com/locallinkhq/locallink-backend/api/middleware"
	"github.com/locallinkhq/locallink-backend/internal/bookings"
	"github.com/locallinkhq/locallink-backend/internal/orders"
	"github.com/locallinkhq/locallink-backend/internal/products"
	"github.com/locallinkhq/locallink-backend/internal/services"
	"github.com/locallinkhq/locallink-backend/internal/vendors"
	"github.com/locallinkhq/locallink-backend/pkg/config"
	"github.com/locallinkhq/locallink-backend/pkg/enums"
	"github.com/locallinkhq/locallink-backend/pkg/logger"
	"github.com/locallinkhq/locallink-backend/pkg/metrics"
	pkgredis "github.com/locallinkhq/locallink-backend/pkg/redis"
)

// Deps bundles everything the router needs wired in.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	Orders      orders.Service
	Bookings    bookings.Service
	Products    products.Service
	Services    services.Service
	Vendors     vendors.Repository
	Idempotency pkgredis.IdempotencyStore
	HTTPMetrics *metrics.HTTPMetrics
	DBPinger    controllers.Pinger
	CachePinger controllers.Pinger
}

// New assembles the HTTP surface: public catalog browsing, authenticated
// customer routes and vendor-only management routes under /api/v1.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer(deps.Logger))
	r.Use(middleware.RequestID(deps.Logger))
	r.Use(middleware.Logging(deps.Logger))
	if deps.HTTPMetrics != nil {
		r.Use(middleware.Metrics(deps.HTTPMetrics))
	}
	r.Use(middleware.CORS())

	r.Get("/health/live", controllers.Liveness())
	r.Get("/health/ready", controllers.Readiness(deps.DBPinger, deps.CachePinger, deps.Logger))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(api chi.Router) {
		// Public catalog browsing needs no token.
		api.Get("/products", controllers.ListProducts(deps.Products, deps.Logger))
		api.Get("/products/{id}", controllers.GetProduct(deps.Products, deps.Logger))
		api.Get("/services", controllers.ListServices(deps.Services, deps.Logger))
		api.Get("/services/{id}", controllers.GetService(deps.Services, deps.Logger))

		api.Group(func(authed chi.Router) {
			authed.Use(middleware.Auth(deps.Config.JWT, deps.Logger))
			if deps.Idempotency != nil {
				authed.Use(middleware.Idempotency(deps.Idempotency, deps.Logger))
			}

			// Placing orders and bookings, and the "my" listings, are
			// customer-only. Detail, cancel and reschedule stay shared
			// because the owning vendor may hit them too.
			authed.Group(func(customer chi.Router) {
				customer.Use(middleware.RequireRole(enums.UserRoleCustomer.String(), deps.Logger))

				customer.Post("/orders", controllers.CreateOrder(deps.Orders, deps.Logger))
				customer.Get("/orders", controllers.ListMyOrders(deps.Orders, deps.Logger))
				customer.Post("/bookings", controllers.CreateBooking(deps.Bookings, deps.Logger))
				customer.Get("/bookings", controllers.ListMyBookings(deps.Bookings, deps.Logger))
			})

			authed.Get("/orders/{id}", controllers.GetOrder(deps.Orders, deps.Vendors, deps.Logger))
			authed.Put("/orders/{id}/cancel", controllers.CancelOrder(deps.Orders, deps.Vendors, deps.Logger))

			authed.Get("/bookings/{id}", controllers.GetBooking(deps.Bookings, deps.Vendors, deps.Logger))
			authed.Put("/bookings/{id}/cancel", controllers.CancelBooking(deps.Bookings, deps.Vendors, deps.Logger))
			authed.Put("/bookings/{id}/reschedule", controllers.RescheduleBooking(deps.Bookings, deps.Vendors, deps.Logger))

			authed.Route("/vendor", func(vendor chi.Router) {
				vendor.Use(middleware.RequireRole(enums.UserRoleVendor.String(), deps.Logger))

				vendor.Get("/orders", controllers.ListVendorOrders(deps.Orders, deps.Vendors, deps.Logger))
				vendor.Put("/orders/{id}/status", controllers.UpdateOrderStatus(deps.Orders, deps.Vendors, deps.Logger))

				vendor.Get("/bookings", controllers.ListVendorBookings(deps.Bookings, deps.Vendors, deps.Logger))
				vendor.Put("/bookings/{id}/status", controllers.UpdateBookingStatus(deps.Bookings, deps.Vendors, deps.Logger))
				vendor.Get("/bookings/stats", controllers.VendorBookingStats(deps.Bookings, deps.Vendors, deps.Logger))

				vendor.Post("/products", controllers.CreateProduct(deps.Products, deps.Vendors, deps.Logger))
				vendor.Get("/products", controllers.ListVendorProducts(deps.Products, deps.Vendors, deps.Logger))
				vendor.Put("/products/{id}", controllers.UpdateProduct(deps.Products, deps.Vendors, deps.Logger))
				vendor.Delete("/products/{id}", controllers.DeleteProduct(deps.Products, deps.Vendors, deps.Logger))

				vendor.Post("/services", controllers.CreateService(deps.Services, deps.Vendors, deps.Logger))
				vendor.Get("/services", controllers.ListVendorServices(deps.Services, deps.Vendors, deps.Logger))
				vendor.Put("/services/{id}", controllers.UpdateService(deps.Services, deps.Vendors, deps.Logger))
				vendor.Delete("/services/{id}", controllers.DeleteService(deps.Services, deps.Vendors, deps.Logger))
			})
		})
	})

	return r
}
