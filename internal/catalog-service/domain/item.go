package domain

// CatalogItem is the entity owned by the catalog service. Stock is mutated
// only by this service; other services read it.
type CatalogItem struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// Account is the catalog service's read-only snapshot of an account, used by
// the cross-service listing endpoint.
type Account struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
