// Package app holds the order service core: the Coordinator that creates
// orders after validating their cross-service references, and the Aggregator
// that enriches stored orders with those references.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ravelar/storefront/internal/order-service/domain"
	"github.com/ravelar/storefront/internal/order-service/journal"
	"github.com/ravelar/storefront/internal/order-service/remote"
	"github.com/ravelar/storefront/internal/pkg/metrics"
	"github.com/ravelar/storefront/internal/pkg/store"
)

// AccountReader and CatalogReader are the capabilities the core needs from the
// remote entity clients. Implementations must return remote.ErrNotFound or
// remote.ErrUnavailable; any other error is treated as unavailable.
type AccountReader interface {
	GetByID(ctx context.Context, id int64) (domain.Account, error)
}

type CatalogReader interface {
	GetByID(ctx context.Context, id int64) (domain.CatalogItem, error)
}

// Coordinator creates orders. The write happens only after both remote checks
// succeed, so a failed validation leaves the store untouched; that ordering is
// the whole consistency mechanism — no distributed transaction, no rollback.
//
// Stock is validated but deliberately never decremented here: the catalog
// service owns all stock mutation, so repeated creations against one item can
// oversell. See DESIGN.md.
type Coordinator struct {
	accounts  AccountReader
	catalog   CatalogReader
	orders    store.Store[domain.Order]
	journal   journal.Repository      // nil disables journalling
	decisions *metrics.OrderDecisions // nil disables metrics
}

func NewCoordinator(
	accounts AccountReader,
	catalog CatalogReader,
	orders store.Store[domain.Order],
	jr journal.Repository,
	decisions *metrics.OrderDecisions,
) *Coordinator {
	return &Coordinator{
		accounts:  accounts,
		catalog:   catalog,
		orders:    orders,
		journal:   jr,
		decisions: decisions,
	}
}

// CreateOrder validates the account and catalog references, computes the
// total and persists the order with an atomically allocated id.
func (c *Coordinator) CreateOrder(ctx context.Context, accountID, itemID int64, quantity int) (*domain.CreatedOrder, error) {
	if accountID <= 0 || itemID <= 0 || quantity <= 0 {
		err := fmt.Errorf("account %d, item %d, quantity %d: %w", accountID, itemID, quantity, domain.ErrInvalidArgument)
		c.record(ctx, 0, accountID, itemID, quantity, journal.OutcomeInvalidArgument, err.Error())
		return nil, err
	}

	if _, err := c.accounts.GetByID(ctx, accountID); err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			c.record(ctx, 0, accountID, itemID, quantity, journal.OutcomeAccountNotFound, "")
			return nil, fmt.Errorf("account %d: %w", accountID, domain.ErrAccountNotFound)
		}
		c.record(ctx, 0, accountID, itemID, quantity, journal.OutcomeUnavailable, err.Error())
		return nil, fmt.Errorf("account service: %v: %w", err, domain.ErrDependencyUnavailable)
	}

	item, err := c.catalog.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			c.record(ctx, 0, accountID, itemID, quantity, journal.OutcomeItemNotFound, "")
			return nil, fmt.Errorf("item %d: %w", itemID, domain.ErrItemNotFound)
		}
		c.record(ctx, 0, accountID, itemID, quantity, journal.OutcomeUnavailable, err.Error())
		return nil, fmt.Errorf("catalog service: %v: %w", err, domain.ErrDependencyUnavailable)
	}

	if item.Stock < quantity {
		c.record(ctx, 0, accountID, itemID, quantity, journal.OutcomeInsufficientStock,
			fmt.Sprintf("stock %d, requested %d", item.Stock, quantity))
		return nil, fmt.Errorf("item %d has stock %d, requested %d: %w", itemID, item.Stock, quantity, domain.ErrInsufficientStock)
	}

	total := item.Price * float64(quantity)

	order, err := c.orders.Insert(ctx, func(id int64) domain.Order {
		return domain.Order{
			ID:         id,
			AccountID:  accountID,
			ItemID:     itemID,
			Quantity:   quantity,
			TotalPrice: total,
		}
	})
	if err != nil {
		c.record(ctx, 0, accountID, itemID, quantity, journal.OutcomeStoreFailure, err.Error())
		return nil, fmt.Errorf("insert order: %v: %w", err, domain.ErrInternal)
	}

	c.record(ctx, order.ID, accountID, itemID, quantity, journal.OutcomeCreated, "")
	slog.InfoContext(ctx, "order created",
		"order_id", order.ID,
		"account_id", accountID,
		"item_id", itemID,
		"quantity", quantity,
		"total_price", total,
	)

	return &domain.CreatedOrder{Order: order, UnitPrice: item.Price}, nil
}

// GetOrder returns a stored order by id.
func (c *Coordinator) GetOrder(ctx context.Context, id int64) (domain.Order, bool, error) {
	order, ok, err := c.orders.Get(ctx, id)
	if err != nil {
		return domain.Order{}, false, fmt.Errorf("get order %d: %v: %w", id, err, domain.ErrInternal)
	}
	return order, ok, nil
}

// ListOrders returns every stored order in insertion order.
func (c *Coordinator) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := c.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %v: %w", err, domain.ErrInternal)
	}
	return orders, nil
}

// record journals and counts one decision. Journal failures are logged, never
// surfaced: the decision already happened.
func (c *Coordinator) record(ctx context.Context, orderID, accountID, itemID int64, quantity int, outcome journal.Outcome, detail string) {
	c.decisions.Observe(string(outcome))

	if c.journal == nil {
		return
	}
	entry := journal.NewEntry(ctx, orderID, accountID, itemID, quantity, outcome, detail)
	if err := c.journal.Save(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "journal write failed", "outcome", string(outcome), "error", err)
	}
}
