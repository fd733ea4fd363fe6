package domain

import "errors"

// Order is the entity owned by the order service. TotalPrice is derived once
// at creation time and never recomputed, even if the catalog price changes.
type Order struct {
	ID         int64   `json:"id"`
	AccountID  int64   `json:"account_id"`
	ItemID     int64   `json:"item_id"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
}

// Account is the order service's read-only snapshot of an account owned by
// the account service.
type Account struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CatalogItem is the order service's read-only snapshot of a catalog record
// owned by the catalog service.
type CatalogItem struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// CreatedOrder is the result of a successful creation: the persisted order
// plus the unit price the total was derived from, echoed for the caller.
type CreatedOrder struct {
	Order     Order
	UnitPrice float64
}

// OrderDetail is an order enriched with snapshots of its references. A nil
// snapshot means that dependency lookup failed; the order itself is always
// present.
type OrderDetail struct {
	Order
	Account *Account     `json:"account,omitempty"`
	Item    *CatalogItem `json:"item,omitempty"`
}

var (
	// ErrInvalidArgument rejects malformed requests before any remote call.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAccountNotFound and ErrItemNotFound are validation failures: the
	// referenced entity does not exist. Nothing is written.
	ErrAccountNotFound = errors.New("account not found")
	ErrItemNotFound    = errors.New("catalog item not found")

	// ErrInsufficientStock rejects a quantity above the item's stock at
	// validation time. Nothing is written.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrDependencyUnavailable is a transport failure or timeout talking to
	// another service. Nothing is written; the caller may retry.
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrInternal is an unexpected failure writing to the order store.
	ErrInternal = errors.New("internal error")
)
