// Package remote implements the catalog service's client for the account
// service, used by the cross-service listing endpoint.
package remote

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"

	"github.com/ravelar/storefront/internal/catalog-service/domain"
	"github.com/ravelar/storefront/internal/rpc"
)

type accountRPC interface {
	ListAccounts(ctx context.Context, in *rpc.ListAccountsRequest, opts ...grpc.CallOption) (*rpc.ListAccountsReply, error)
}

// AccountDirectory lists accounts from the account service with a bounded
// per-call timeout.
type AccountDirectory struct {
	rpc     accountRPC
	timeout time.Duration
}

func NewAccountDirectory(client accountRPC, timeout time.Duration) *AccountDirectory {
	return &AccountDirectory{rpc: client, timeout: timeout}
}

func (d *AccountDirectory) ListAll(ctx context.Context) ([]domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	reply, err := d.rpc.ListAccounts(ctx, &rpc.ListAccountsRequest{})
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	accounts := make([]domain.Account, 0, len(reply.Accounts))
	for _, account := range reply.Accounts {
		accounts = append(accounts, domain.Account{ID: account.ID, Name: account.Name, Email: account.Email})
	}
	return accounts, nil
}
