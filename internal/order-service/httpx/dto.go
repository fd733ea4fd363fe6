package httpx

import "github.com/ravelar/storefront/internal/order-service/domain"

type CreateOrderRequest struct {
	AccountID int64 `json:"account_id"`
	ItemID    int64 `json:"item_id"`
	Quantity  int   `json:"quantity"`
}

// CreateOrderResponse mirrors the creation contract: the persisted order plus
// echoes of the validated account reference and the unit price used.
type CreateOrderResponse struct {
	Data    domain.Order  `json:"data"`
	Message string        `json:"message"`
	Account AccountRef    `json:"account"`
	Item    ItemPriceEcho `json:"item"`
}

type AccountRef struct {
	ID int64 `json:"id"`
}

type ItemPriceEcho struct {
	ID    int64   `json:"id"`
	Price float64 `json:"price"`
}

// DataResponse is the plain list/read envelope.
type DataResponse struct {
	Data any `json:"data"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
