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

	r.Get("/accounts", handler.ListAccounts)
	r.Get("/accounts/{id}", handler.GetAccountByID)
	r.Post("/accounts", handler.CreateAccount)
	r.Get("/health", handler.Health)
	return r
}
