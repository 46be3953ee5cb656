package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/inventory/services/inventory/application/handlers"
	appsvcs "github.com/ghuser/inventory/services/inventory/application/services"
)

// InventoryRoutes registers part and product endpoints on the provided chi router.
func InventoryRoutes(r chi.Router, svcs *appsvcs.Services) {
	parts := handlers.NewPartHandlers(svcs)
	products := handlers.NewProductHandlers(svcs)

	r.Group(func(r chi.Router) {
		r.Route("/parts", func(r chi.Router) {
			r.Get("/", parts.List)
			r.Post("/", parts.Create)
			r.Get("/next-id", parts.NextID)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", parts.Get)
				r.Put("/", parts.Update)
				r.Delete("/", parts.Delete)
			})
		})
		r.Route("/products", func(r chi.Router) {
			r.Get("/", products.List)
			r.Post("/", products.Create)
			r.Get("/next-id", products.NextID)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", products.Get)
				r.Put("/", products.Update)
				r.Delete("/", products.Delete)
				r.Post("/parts", products.AssociatePart)
				r.Delete("/parts/{partID}", products.DissociatePart)
			})
		})
	})
}
