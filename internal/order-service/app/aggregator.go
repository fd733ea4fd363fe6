package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ravelar/storefront/internal/order-service/domain"
	"github.com/ravelar/storefront/internal/pkg/store"
)

// Aggregator produces enriched order listings. Enrichment is best effort: a
// failed dependency lookup — not found or unavailable — omits that field only
// and never fails the listing as a whole, so the read path stays available
// while a dependency is degraded.
type Aggregator struct {
	accounts AccountReader
	catalog  CatalogReader
	orders   store.Store[domain.Order]
}

func NewAggregator(accounts AccountReader, catalog CatalogReader, orders store.Store[domain.Order]) *Aggregator {
	return &Aggregator{accounts: accounts, catalog: catalog, orders: orders}
}

// ListOrdersDetailed returns every stored order, in insertion order, enriched
// with snapshots of its account and catalog references where those lookups
// succeed.
func (a *Aggregator) ListOrdersDetailed(ctx context.Context) ([]domain.OrderDetail, error) {
	orders, err := a.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %v: %w", err, domain.ErrInternal)
	}

	details := make([]domain.OrderDetail, 0, len(orders))
	for _, order := range orders {
		detail := domain.OrderDetail{Order: order}

		if account, err := a.accounts.GetByID(ctx, order.AccountID); err == nil {
			detail.Account = &account
		} else {
			slog.DebugContext(ctx, "account enrichment omitted", "order_id", order.ID, "account_id", order.AccountID, "error", err)
		}

		if item, err := a.catalog.GetByID(ctx, order.ItemID); err == nil {
			detail.Item = &item
		} else {
			slog.DebugContext(ctx, "item enrichment omitted", "order_id", order.ID, "item_id", order.ItemID, "error", err)
		}

		details = append(details, detail)
	}
	return details, nil
}
