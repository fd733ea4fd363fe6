package httpx

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ravelar/storefront/internal/catalog-service/domain"
	"github.com/ravelar/storefront/internal/pkg/store"
)

// AccountLister is the capability the cross-service listing needs; nil
// disables the endpoint's enrichment entirely.
type AccountLister interface {
	ListAll(ctx context.Context) ([]domain.Account, error)
}

type Handler struct {
	items    store.Store[domain.CatalogItem]
	accounts AccountLister
}

type createItemRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

func NewHandler(items store.Store[domain.CatalogItem], accounts AccountLister) *Handler {
	return &Handler{items: items, accounts: accounts}
}

func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": items})
}

func (h *Handler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_item_id", "item id must be an integer")
		return
	}

	item, ok, err := h.items.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "item_not_found", "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": item})
}

func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Name == "" || req.Price < 0 || req.Stock < 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "name is required; price and stock must be non-negative")
		return
	}

	item, err := h.items.Insert(r.Context(), func(id int64) domain.CatalogItem {
		return domain.CatalogItem{ID: id, Name: req.Name, Price: req.Price, Stock: req.Stock}
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"data": item, "message": "item created"})
}

// ListItemsWithAccounts returns the full catalog together with the account
// roster. The account half degrades to an empty list when the account service
// is unreachable; the catalog half always succeeds or the call fails.
func (h *Handler) ListItemsWithAccounts(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	accounts := []domain.Account{}
	if h.accounts != nil {
		if listed, err := h.accounts.ListAll(r.Context()); err == nil {
			accounts = listed
		} else {
			slog.WarnContext(r.Context(), "account roster omitted", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items, "accounts": accounts})
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "catalog-service"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, map[string]string{"error": code, "message": msg})
}
