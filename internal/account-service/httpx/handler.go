package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ravelar/storefront/internal/account-service/domain"
	"github.com/ravelar/storefront/internal/pkg/store"
)

type Handler struct {
	accounts store.Store[domain.Account]
}

type createAccountRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewHandler(accounts store.Store[domain.Account]) *Handler {
	return &Handler{accounts: accounts}
}

func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accounts.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": accounts})
}

func (h *Handler) GetAccountByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_account_id", "account id must be an integer")
		return
	}

	account, ok, err := h.accounts.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "account_not_found", "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": account})
}

func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Name == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name and email are required")
		return
	}

	account, err := h.accounts.Insert(r.Context(), func(id int64) domain.Account {
		return domain.Account{ID: id, Name: req.Name, Email: req.Email}
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"data": account, "message": "account created"})
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "account-service"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, map[string]string{"error": code, "message": msg})
}
