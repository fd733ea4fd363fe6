package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ravelar/storefront/internal/order-service/app"
	"github.com/ravelar/storefront/internal/order-service/domain"
)

// Handler serves the order service's HTTP surface. It holds the same
// coordinator the gRPC server uses, so the two entry points cannot diverge.
type Handler struct {
	coordinator *app.Coordinator
	aggregator  *app.Aggregator
}

func NewHandler(coordinator *app.Coordinator, aggregator *app.Aggregator) *Handler {
	return &Handler{coordinator: coordinator, aggregator: aggregator}
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	created, err := h.coordinator.CreateOrder(r.Context(), req.AccountID, req.ItemID, req.Quantity)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreateOrderResponse{
		Data:    created.Order,
		Message: "order created successfully",
		Account: AccountRef{ID: created.Order.AccountID},
		Item:    ItemPriceEcho{ID: created.Order.ItemID, Price: created.UnitPrice},
	})
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.coordinator.ListOrders(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, DataResponse{Data: orders})
}

func (h *Handler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_order_id", "order id must be an integer")
		return
	}

	order, ok, err := h.coordinator.GetOrder(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "order_not_found", "")
		return
	}
	writeJSON(w, http.StatusOK, DataResponse{Data: order})
}

func (h *Handler) ListOrdersDetailed(w http.ResponseWriter, r *http.Request) {
	details, err := h.aggregator.ListOrdersDetailed(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, DataResponse{Data: details})
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "order-service"})
}

func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, domain.ErrAccountNotFound):
		writeError(w, http.StatusNotFound, "account_not_found", err.Error())
	case errors.Is(err, domain.ErrItemNotFound):
		writeError(w, http.StatusNotFound, "item_not_found", err.Error())
	case errors.Is(err, domain.ErrInsufficientStock):
		writeError(w, http.StatusConflict, "insufficient_stock", err.Error())
	case errors.Is(err, domain.ErrDependencyUnavailable):
		writeError(w, http.StatusServiceUnavailable, "dependency_unavailable", err.Error())
	default:
		slog.ErrorContext(r.Context(), "unexpected failure", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: msg})
}
