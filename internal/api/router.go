package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/prolist/prolist/internal/api/handlers"
	"github.com/prolist/prolist/internal/api/middleware"
	"github.com/prolist/prolist/internal/repository"
	"github.com/prolist/prolist/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	authService *service.AuthService,
	requirementService *service.RequirementService,
	numberingService *service.NumberingService,
	packService *service.PackService,
	shipmentRepo *repository.ShipmentRepository,
	productRepo *repository.ProductRepository,
	certRepo *repository.CertificateRepository,
	issueRepo *repository.IssueRepository,
	accountRepo *repository.AccountRepository,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS)

	// Health checks (no auth required)
	r.Get("/health", handlers.Health)
	r.Get("/ready", handlers.Ready)

	// Create handlers
	authHandler := handlers.NewAuthHandler(authService)
	shipmentHandler := handlers.NewShipmentHandler(shipmentRepo, productRepo, requirementService, numberingService)
	packHandler := handlers.NewPackHandler(packService)
	productHandler := handlers.NewProductHandler(productRepo)
	certHandler := handlers.NewCertificateHandler(certRepo, shipmentRepo)
	issueHandler := handlers.NewIssueHandler(issueRepo, shipmentRepo)
	prefsHandler := handlers.NewPrefsHandler(accountRepo)

	// Create middleware
	authMiddleware := middleware.NewAuthMiddleware(authService)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints (no auth required)
		r.Post("/auth/token", authHandler.Token)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Shipment endpoints
			r.Route("/shipments", func(r chi.Router) {
				r.Post("/", shipmentHandler.Create)
				r.Get("/", shipmentHandler.List)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", shipmentHandler.Get)
					r.Patch("/status", shipmentHandler.UpdateStatus)
					r.Get("/requirements", shipmentHandler.Requirements)
					r.Get("/numbers/preview", shipmentHandler.NumberPreview)

					r.Post("/submit", packHandler.Submit)
					r.Get("/packs", packHandler.List)
					r.Delete("/packs/{packID}", packHandler.Delete)

					r.Post("/certificates", certHandler.Create)
					r.Get("/certificates", certHandler.List)

					r.Post("/issues", issueHandler.Create)
					r.Get("/issues", issueHandler.List)
				})
			})

			r.Post("/issues/{id}/resolve", issueHandler.Resolve)

			// Catalog endpoints
			r.Route("/products", func(r chi.Router) {
				r.Post("/", productHandler.Create)
				r.Get("/", productHandler.List)
				r.Get("/{id}", productHandler.Get)
			})

			// Workspace preference endpoints
			r.Get("/me/notification-prefs", prefsHandler.Get)
			r.Put("/me/notification-prefs", prefsHandler.Update)
		})
	})

	return r
}
