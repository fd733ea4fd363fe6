package app

import (
	"context"
	"fmt"

	"github.com/ravelar/storefront/internal/order-service/domain"
	"github.com/ravelar/storefront/internal/pkg/store"
)

// SeedDemoData loads the fixed demo orders. Called once at startup; totals
// are the values frozen at their original creation time.
func SeedDemoData(ctx context.Context, orders store.Store[domain.Order]) error {
	seed := []domain.Order{
		{ID: 1, AccountID: 1, ItemID: 1, Quantity: 2, TotalPrice: 1999.98},
		{ID: 2, AccountID: 2, ItemID: 2, Quantity: 5, TotalPrice: 149.95},
	}
	for _, order := range seed {
		if err := orders.Put(ctx, order.ID, order); err != nil {
			return fmt.Errorf("seed order %d: %w", order.ID, err)
		}
	}
	return nil
}
