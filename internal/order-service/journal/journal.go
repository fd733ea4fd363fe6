// Package journal defines an append-only audit trail of coordination
// decisions. Every CreateOrder attempt — accepted or rejected — produces one
// entry, so the store can be queried to see exactly why an order does or does
// not exist and correlated with a distributed trace via the trace_id field.
package journal

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// Outcome is the coordinator's decision for a single creation attempt.
type Outcome string

const (
	OutcomeCreated           Outcome = "CREATED"
	OutcomeInvalidArgument   Outcome = "INVALID_ARGUMENT"
	OutcomeAccountNotFound   Outcome = "ACCOUNT_NOT_FOUND"
	OutcomeItemNotFound      Outcome = "ITEM_NOT_FOUND"
	OutcomeInsufficientStock Outcome = "INSUFFICIENT_STOCK"
	OutcomeUnavailable       Outcome = "DEPENDENCY_UNAVAILABLE"
	OutcomeStoreFailure      Outcome = "STORE_FAILURE"
)

// Entry is a single row in the order_journal table.
type Entry struct {
	// OrderID is the allocated order id; zero for rejected attempts.
	OrderID int64

	// AccountID, ItemID and Quantity echo the request that was decided on.
	AccountID int64
	ItemID    int64
	Quantity  int

	Outcome Outcome

	// Detail is a free-form failure description, empty on success.
	Detail string

	// TraceID and SpanID tie this entry to the active OpenTelemetry span,
	// empty when no span was recording (e.g. unit tests).
	TraceID string
	SpanID  string

	CreatedAt time.Time
}

// Repository persists journal entries. The coordinator treats it as optional:
// a nil Repository disables journalling, and a failed Save never fails the
// request it describes.
type Repository interface {
	Save(ctx context.Context, entry *Entry) error
}

// NewEntry builds an Entry for the given decision, stamping trace identifiers
// from the active span in ctx when there is one.
func NewEntry(ctx context.Context, orderID, accountID, itemID int64, quantity int, outcome Outcome, detail string) *Entry {
	entry := &Entry{
		OrderID:   orderID,
		AccountID: accountID,
		ItemID:    itemID,
		Quantity:  quantity,
		Outcome:   outcome,
		Detail:    detail,
		CreatedAt: time.Now().UTC(),
	}

	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		entry.TraceID = sc.TraceID().String()
		entry.SpanID = sc.SpanID().String()
	}
	return entry
}
