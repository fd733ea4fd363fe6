package remote

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"

	"github.com/ravelar/storefront/internal/order-service/domain"
	"github.com/ravelar/storefront/internal/rpc"
)

type catalogRPC interface {
	GetItem(ctx context.Context, in *rpc.GetItemRequest, opts ...grpc.CallOption) (*rpc.GetItemReply, error)
	ListItems(ctx context.Context, in *rpc.ListItemsRequest, opts ...grpc.CallOption) (*rpc.ListItemsReply, error)
}

// Catalog reads catalog records from the catalog service.
type Catalog struct {
	rpc     catalogRPC
	timeout time.Duration
}

func NewCatalog(client catalogRPC, timeout time.Duration) *Catalog {
	return &Catalog{rpc: client, timeout: timeout}
}

func (c *Catalog) GetByID(ctx context.Context, id int64) (domain.CatalogItem, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reply, err := c.rpc.GetItem(ctx, &rpc.GetItemRequest{ID: id})
	if err != nil {
		return domain.CatalogItem{}, wrapStatus("get catalog item", err)
	}
	if reply.Item == nil {
		return domain.CatalogItem{}, fmt.Errorf("get catalog item: empty reply: %w", ErrUnavailable)
	}

	return itemFromWire(reply.Item), nil
}

func (c *Catalog) ListAll(ctx context.Context) ([]domain.CatalogItem, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reply, err := c.rpc.ListItems(ctx, &rpc.ListItemsRequest{})
	if err != nil {
		return nil, wrapStatus("list catalog items", err)
	}

	items := make([]domain.CatalogItem, 0, len(reply.Items))
	for _, item := range reply.Items {
		items = append(items, itemFromWire(item))
	}
	return items, nil
}

func itemFromWire(item *rpc.CatalogItem) domain.CatalogItem {
	return domain.CatalogItem{
		ID:    item.ID,
		Name:  item.Name,
		Price: item.Price,
		Stock: int(item.Stock),
	}
}
