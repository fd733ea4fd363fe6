// Package app implements the catalog service over its entity store.
package app

import (
	"context"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ravelar/storefront/internal/catalog-service/domain"
	"github.com/ravelar/storefront/internal/pkg/store"
	"github.com/ravelar/storefront/internal/rpc"
)

// Server exposes the catalog store over gRPC.
type Server struct {
	items store.Store[domain.CatalogItem]
}

var _ rpc.CatalogServer = (*Server)(nil)

func NewServer(items store.Store[domain.CatalogItem]) *Server {
	return &Server{items: items}
}

func (s *Server) GetItem(ctx context.Context, req *rpc.GetItemRequest) (*rpc.GetItemReply, error) {
	item, ok, err := s.items.Get(ctx, req.ID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get item: %v", err)
	}
	if !ok {
		return nil, status.Errorf(codes.NotFound, "catalog item %d not found", req.ID)
	}
	return &rpc.GetItemReply{Item: toWire(item)}, nil
}

func (s *Server) ListItems(ctx context.Context, _ *rpc.ListItemsRequest) (*rpc.ListItemsReply, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list items: %v", err)
	}

	out := make([]*rpc.CatalogItem, 0, len(items))
	for _, item := range items {
		out = append(out, toWire(item))
	}
	return &rpc.ListItemsReply{Items: out}, nil
}

func toWire(item domain.CatalogItem) *rpc.CatalogItem {
	return &rpc.CatalogItem{
		ID:    item.ID,
		Name:  item.Name,
		Price: item.Price,
		Stock: int32(item.Stock),
	}
}

// SeedDemoData loads the fixed demo catalog. Called once at startup.
func SeedDemoData(ctx context.Context, items store.Store[domain.CatalogItem]) error {
	seed := []domain.CatalogItem{
		{ID: 1, Name: "Laptop", Price: 999.99, Stock: 10},
		{ID: 2, Name: "Mouse", Price: 29.99, Stock: 50},
		{ID: 3, Name: "Keyboard", Price: 79.99, Stock: 30},
	}
	for _, item := range seed {
		if err := items.Put(ctx, item.ID, item); err != nil {
			return fmt.Errorf("seed item %d: %w", item.ID, err)
		}
	}
	return nil
}
