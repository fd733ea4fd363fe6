package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/items", handler.ListItems)
	r.Get("/items/{id}", handler.GetItemByID)
	r.Post("/items", handler.CreateItem)
	r.Get("/items-with-accounts", handler.ListItemsWithAccounts)
	r.Get("/health", handler.Health)
	return r
}
