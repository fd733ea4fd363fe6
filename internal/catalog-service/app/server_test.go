package app

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ravelar/storefront/internal/catalog-service/domain"
	"github.com/ravelar/storefront/internal/pkg/store"
	"github.com/ravelar/storefront/internal/rpc"
)

func seededServer(t *testing.T) *Server {
	t.Helper()
	items := store.NewMemory[domain.CatalogItem]()
	if err := SeedDemoData(context.Background(), items); err != nil {
		t.Fatalf("SeedDemoData: %v", err)
	}
	return NewServer(items)
}

func TestGetItem(t *testing.T) {
	s := seededServer(t)

	reply, err := s.GetItem(context.Background(), &rpc.GetItemRequest{ID: 1})
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if reply.Item.Name != "Laptop" || reply.Item.Price != 999.99 || reply.Item.Stock != 10 {
		t.Errorf("item = %+v, want the Laptop seed", reply.Item)
	}
}

func TestGetItemNotFound(t *testing.T) {
	s := seededServer(t)

	_, err := s.GetItem(context.Background(), &rpc.GetItemRequest{ID: 99})
	if got := status.Code(err); got != codes.NotFound {
		t.Fatalf("status code = %v, want NotFound", got)
	}
}

func TestListItems(t *testing.T) {
	s := seededServer(t)

	reply, err := s.ListItems(context.Background(), &rpc.ListItemsRequest{})
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(reply.Items) != 3 {
		t.Fatalf("listed %d items, want 3", len(reply.Items))
	}
	if reply.Items[1].Name != "Mouse" || reply.Items[1].Stock != 50 {
		t.Errorf("items[1] = %+v, want Mouse", reply.Items[1])
	}
}
