package domain

// Account is the entity owned by the account service. Immutable once created.
type Account struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
