package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/brightpixel/studio-api/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Group(func(r chi.Router) {
			r.Use(mw.APIKeyAuth)
			r.Post("/invoices", h.CreateInvoice)
			r.Post("/contracts", h.UploadContract)
			r.Post("/products/provision", h.ProvisionProducts)
		})

		r.Get("/accounts", h.ListAccounts)
		r.Get("/products", h.ListProducts)
		r.Get("/businesses", h.ListBusinesses)
	})

	return mux
}
