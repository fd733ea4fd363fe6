package app

import (
	"context"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ravelar/storefront/internal/order-service/domain"
	"github.com/ravelar/storefront/internal/pkg/store"
	"github.com/ravelar/storefront/internal/rpc"
)

func TestStatusFromDomain(t *testing.T) {
	cases := []struct {
		err  error
		want codes.Code
	}{
		{domain.ErrInvalidArgument, codes.InvalidArgument},
		{domain.ErrAccountNotFound, codes.NotFound},
		{domain.ErrItemNotFound, codes.NotFound},
		{domain.ErrInsufficientStock, codes.FailedPrecondition},
		{domain.ErrDependencyUnavailable, codes.Unavailable},
		{domain.ErrInternal, codes.Internal},
	}

	for _, tc := range cases {
		wrapped := fmt.Errorf("context: %w", tc.err)
		if got := status.Code(statusFromDomain(wrapped)); got != tc.want {
			t.Errorf("statusFromDomain(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestServerCreateOrder(t *testing.T) {
	c := NewCoordinator(&fakeAccounts{account: alice()}, &fakeCatalog{item: laptop()}, store.NewMemory[domain.Order](), nil, nil)
	s := NewServer(c)

	reply, err := s.CreateOrder(context.Background(), &rpc.CreateOrderRequest{
		AccountID: 1,
		ItemID:    1,
		Quantity:  2,
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if reply.Order == nil || reply.Order.TotalPrice != 1999.98 {
		t.Errorf("reply order = %+v, want total 1999.98", reply.Order)
	}
	if reply.UnitPrice != 999.99 {
		t.Errorf("unit price = %v, want 999.99", reply.UnitPrice)
	}

	listed, err := s.ListOrders(context.Background(), &rpc.ListOrdersRequest{})
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(listed.Orders) != 1 {
		t.Fatalf("listed %d orders, want 1", len(listed.Orders))
	}
}

func TestServerCreateOrderMapsErrors(t *testing.T) {
	c := NewCoordinator(&fakeAccounts{account: alice()}, &fakeCatalog{item: laptop()}, store.NewMemory[domain.Order](), nil, nil)
	s := NewServer(c)

	_, err := s.CreateOrder(context.Background(), &rpc.CreateOrderRequest{
		AccountID: 1,
		ItemID:    1,
		Quantity:  0,
	})
	if got := status.Code(err); got != codes.InvalidArgument {
		t.Fatalf("status code = %v, want InvalidArgument", got)
	}
}
