package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"shop-backend/internal/api/handlers"
	"shop-backend/internal/metrics"
	"shop-backend/internal/repository"
)

// NewRouter wires both resources onto a chi mux. m may be nil when no
// metrics registration is wanted (tests).
func NewRouter(store repository.RecordStore, m *metrics.ServerMetrics) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	if m != nil {
		r.Use(m.Middleware)
	}

	orders := handlers.NewOrderHandler(store)
	products := handlers.NewProductHandler(store)

	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", orders.GetAll)
		r.Post("/", orders.Create)
		r.Get("/{id}", orders.GetByID)
		r.Patch("/{id}/status", orders.UpdateStatus)
	})

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", products.GetAll)
		r.Post("/", products.Create)
		r.Get("/{id}", products.GetByID)
		r.Put("/{id}", products.Update)
		r.Delete("/{id}", products.Delete)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", metrics.Handler())

	return r
}
