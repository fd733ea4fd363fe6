// Package app implements the account service over its entity store.
package app

import (
	"context"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ravelar/storefront/internal/account-service/domain"
	"github.com/ravelar/storefront/internal/pkg/store"
	"github.com/ravelar/storefront/internal/rpc"
)

// Server exposes the account store over gRPC.
type Server struct {
	accounts store.Store[domain.Account]
}

var _ rpc.AccountServer = (*Server)(nil)

func NewServer(accounts store.Store[domain.Account]) *Server {
	return &Server{accounts: accounts}
}

func (s *Server) GetAccount(ctx context.Context, req *rpc.GetAccountRequest) (*rpc.GetAccountReply, error) {
	account, ok, err := s.accounts.Get(ctx, req.ID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get account: %v", err)
	}
	if !ok {
		return nil, status.Errorf(codes.NotFound, "account %d not found", req.ID)
	}
	return &rpc.GetAccountReply{Account: toWire(account)}, nil
}

func (s *Server) ListAccounts(ctx context.Context, _ *rpc.ListAccountsRequest) (*rpc.ListAccountsReply, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list accounts: %v", err)
	}

	out := make([]*rpc.Account, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, toWire(account))
	}
	return &rpc.ListAccountsReply{Accounts: out}, nil
}

func toWire(account domain.Account) *rpc.Account {
	return &rpc.Account{ID: account.ID, Name: account.Name, Email: account.Email}
}

// SeedDemoData loads the fixed demo accounts. Called once at startup.
func SeedDemoData(ctx context.Context, accounts store.Store[domain.Account]) error {
	seed := []domain.Account{
		{ID: 1, Name: "Alice", Email: "alice@example.com"},
		{ID: 2, Name: "Bob", Email: "bob@example.com"},
		{ID: 3, Name: "Charlie", Email: "charlie@example.com"},
	}
	for _, account := range seed {
		if err := accounts.Put(ctx, account.ID, account); err != nil {
			return fmt.Errorf("seed account %d: %w", account.ID, err)
		}
	}
	return nil
}
