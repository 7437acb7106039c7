package api

import (
	"net/http"
	"time"

	"threadline-be/internal/logger"
	"threadline-be/internal/middleware"
	"threadline-be/internal/user"

	"github.com/go-chi/chi/v5"
)

// Handlers bundles everything the router needs to mount.
type Handlers struct {
	Auth    *AuthHandler
	Product *ProductHandler
	Cart    *CartHandler
	Order   *OrderHandler
}

func NewRouter(h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Get("/health", healthCheck)
	h.Auth.RegisterRoutes(r)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate)

		r.Route("/products", func(r chi.Router) {
			h.Product.RegisterRoutes(r)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRoles(user.RoleVendor, user.RoleAdmin))
				h.Product.RegisterStaffRoutes(r)
			})
		})

		r.Route("/cart", func(r chi.Router) {
			h.Cart.RegisterRoutes(r)
		})

		h.Order.RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRoles(user.RoleVendor, user.RoleAdmin))
			h.Order.RegisterStaffRoutes(r)
		})
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
