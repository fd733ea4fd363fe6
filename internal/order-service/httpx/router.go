package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ravelar/storefront/internal/order-service/httpx/middlewares"
	"github.com/ravelar/storefront/internal/pkg/metrics"
)

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middlewares.PropagateRequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/orders", handler.CreateOrder)
	r.Get("/orders", handler.ListOrders)
	r.Get("/orders/{id}", handler.GetOrderByID)
	r.Get("/orders-detail", handler.ListOrdersDetailed)
	r.Get("/health", handler.Health)
	r.Handle("/metrics", metrics.Handler())
	return r
}
