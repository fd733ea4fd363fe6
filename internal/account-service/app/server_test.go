package app

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ravelar/storefront/internal/account-service/domain"
	"github.com/ravelar/storefront/internal/pkg/store"
	"github.com/ravelar/storefront/internal/rpc"
)

func seededServer(t *testing.T) *Server {
	t.Helper()
	accounts := store.NewMemory[domain.Account]()
	if err := SeedDemoData(context.Background(), accounts); err != nil {
		t.Fatalf("SeedDemoData: %v", err)
	}
	return NewServer(accounts)
}

func TestGetAccount(t *testing.T) {
	s := seededServer(t)

	reply, err := s.GetAccount(context.Background(), &rpc.GetAccountRequest{ID: 1})
	if err != nil {
		t.Fatalf("GetAccount: %v", err)
	}
	if reply.Account.Name != "Alice" || reply.Account.Email != "alice@example.com" {
		t.Errorf("account = %+v, want Alice", reply.Account)
	}
}

func TestGetAccountNotFound(t *testing.T) {
	s := seededServer(t)

	_, err := s.GetAccount(context.Background(), &rpc.GetAccountRequest{ID: 99})
	if got := status.Code(err); got != codes.NotFound {
		t.Fatalf("status code = %v, want NotFound", got)
	}
}

func TestListAccounts(t *testing.T) {
	s := seededServer(t)

	reply, err := s.ListAccounts(context.Background(), &rpc.ListAccountsRequest{})
	if err != nil {
		t.Fatalf("ListAccounts: %v", err)
	}
	if len(reply.Accounts) != 3 {
		t.Fatalf("listed %d accounts, want 3", len(reply.Accounts))
	}
	if reply.Accounts[2].Name != "Charlie" {
		t.Errorf("accounts[2] = %+v, want Charlie", reply.Accounts[2])
	}
}
