package remote

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ravelar/storefront/internal/rpc"
)

const testTimeout = 500 * time.Millisecond

type stubAccountRPC struct {
	getReply  *rpc.GetAccountReply
	listReply *rpc.ListAccountsReply
	err       error
}

func (s *stubAccountRPC) GetAccount(_ context.Context, _ *rpc.GetAccountRequest, _ ...grpc.CallOption) (*rpc.GetAccountReply, error) {
	return s.getReply, s.err
}

func (s *stubAccountRPC) ListAccounts(_ context.Context, _ *rpc.ListAccountsRequest, _ ...grpc.CallOption) (*rpc.ListAccountsReply, error) {
	return s.listReply, s.err
}

type stubCatalogRPC struct {
	getReply  *rpc.GetItemReply
	listReply *rpc.ListItemsReply
	err       error
}

func (s *stubCatalogRPC) GetItem(_ context.Context, _ *rpc.GetItemRequest, _ ...grpc.CallOption) (*rpc.GetItemReply, error) {
	return s.getReply, s.err
}

func (s *stubCatalogRPC) ListItems(_ context.Context, _ *rpc.ListItemsRequest, _ ...grpc.CallOption) (*rpc.ListItemsReply, error) {
	return s.listReply, s.err
}

func TestAccountsGetByID(t *testing.T) {
	client := NewAccounts(&stubAccountRPC{
		getReply: &rpc.GetAccountReply{Account: &rpc.Account{ID: 1, Name: "Alice", Email: "alice@example.com"}},
	}, testTimeout)

	account, err := client.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if account.ID != 1 || account.Name != "Alice" || account.Email != "alice@example.com" {
		t.Errorf("account = %+v", account)
	}
}

func TestAccountsGetByIDNotFound(t *testing.T) {
	client := NewAccounts(&stubAccountRPC{
		err: status.Error(codes.NotFound, "account 99 not found"),
	}, testTimeout)

	_, err := client.GetByID(context.Background(), 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if errors.Is(err, ErrUnavailable) {
		t.Fatal("a NotFound answer must not also read as unavailable")
	}
}

func TestAccountsGetByIDUnavailable(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"transport failure", status.Error(codes.Unavailable, "connection refused")},
		{"deadline exceeded", status.Error(codes.DeadlineExceeded, "context deadline exceeded")},
		{"remote crash", status.Error(codes.Internal, "panic in handler")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := NewAccounts(&stubAccountRPC{err: tc.err}, testTimeout)

			_, err := client.GetByID(context.Background(), 1)
			if !errors.Is(err, ErrUnavailable) {
				t.Fatalf("err = %v, want ErrUnavailable", err)
			}
			if errors.Is(err, ErrNotFound) {
				t.Fatal("a failed call must not read as a definitive not-found")
			}
		})
	}
}

func TestAccountsGetByIDEmptyReply(t *testing.T) {
	client := NewAccounts(&stubAccountRPC{getReply: &rpc.GetAccountReply{}}, testTimeout)

	_, err := client.GetByID(context.Background(), 1)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable for an empty reply", err)
	}
}

func TestAccountsListAll(t *testing.T) {
	client := NewAccounts(&stubAccountRPC{
		listReply: &rpc.ListAccountsReply{Accounts: []*rpc.Account{
			{ID: 1, Name: "Alice", Email: "alice@example.com"},
			{ID: 2, Name: "Bob", Email: "bob@example.com"},
		}},
	}, testTimeout)

	accounts, err := client.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(accounts) != 2 || accounts[1].Name != "Bob" {
		t.Errorf("accounts = %+v", accounts)
	}
}

func TestCatalogGetByID(t *testing.T) {
	client := NewCatalog(&stubCatalogRPC{
		getReply: &rpc.GetItemReply{Item: &rpc.CatalogItem{ID: 1, Name: "Laptop", Price: 999.99, Stock: 10}},
	}, testTimeout)

	item, err := client.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if item.Name != "Laptop" || item.Price != 999.99 || item.Stock != 10 {
		t.Errorf("item = %+v", item)
	}
}

func TestCatalogGetByIDNotFound(t *testing.T) {
	client := NewCatalog(&stubCatalogRPC{
		err: status.Error(codes.NotFound, "item 99 not found"),
	}, testTimeout)

	_, err := client.GetByID(context.Background(), 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCatalogGetByIDEmptyReply(t *testing.T) {
	client := NewCatalog(&stubCatalogRPC{getReply: &rpc.GetItemReply{}}, testTimeout)

	_, err := client.GetByID(context.Background(), 1)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable for an empty reply", err)
	}
}

func TestCatalogListAll(t *testing.T) {
	client := NewCatalog(&stubCatalogRPC{
		listReply: &rpc.ListItemsReply{Items: []*rpc.CatalogItem{
			{ID: 1, Name: "Laptop", Price: 999.99, Stock: 10},
			{ID: 2, Name: "Mouse", Price: 29.99, Stock: 50},
		}},
	}, testTimeout)

	items, err := client.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(items) != 2 || items[1].Stock != 50 {
		t.Errorf("items = %+v", items)
	}
}
