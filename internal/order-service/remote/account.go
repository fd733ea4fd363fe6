package remote

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"

	"github.com/ravelar/storefront/internal/order-service/domain"
	"github.com/ravelar/storefront/internal/rpc"
)

// accountRPC is the slice of rpc.AccountClient this package needs.
type accountRPC interface {
	GetAccount(ctx context.Context, in *rpc.GetAccountRequest, opts ...grpc.CallOption) (*rpc.GetAccountReply, error)
	ListAccounts(ctx context.Context, in *rpc.ListAccountsRequest, opts ...grpc.CallOption) (*rpc.ListAccountsReply, error)
}

// Accounts reads account records from the account service.
type Accounts struct {
	rpc     accountRPC
	timeout time.Duration
}

func NewAccounts(client accountRPC, timeout time.Duration) *Accounts {
	return &Accounts{rpc: client, timeout: timeout}
}

func (a *Accounts) GetByID(ctx context.Context, id int64) (domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	reply, err := a.rpc.GetAccount(ctx, &rpc.GetAccountRequest{ID: id})
	if err != nil {
		return domain.Account{}, wrapStatus("get account", err)
	}
	if reply.Account == nil {
		return domain.Account{}, fmt.Errorf("get account: empty reply: %w", ErrUnavailable)
	}

	return domain.Account{
		ID:    reply.Account.ID,
		Name:  reply.Account.Name,
		Email: reply.Account.Email,
	}, nil
}

func (a *Accounts) ListAll(ctx context.Context) ([]domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	reply, err := a.rpc.ListAccounts(ctx, &rpc.ListAccountsRequest{})
	if err != nil {
		return nil, wrapStatus("list accounts", err)
	}

	accounts := make([]domain.Account, 0, len(reply.Accounts))
	for _, acc := range reply.Accounts {
		accounts = append(accounts, domain.Account{ID: acc.ID, Name: acc.Name, Email: acc.Email})
	}
	return accounts, nil
}
