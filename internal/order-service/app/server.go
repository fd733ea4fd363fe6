package app

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ravelar/storefront/internal/order-service/domain"
	"github.com/ravelar/storefront/internal/rpc"
)

// Server adapts the coordinator and aggregator to the gRPC OrderService.
// Both transports go through the same Coordinator, so the gRPC path computes
// the same total as the HTTP path.
type Server struct {
	coordinator *Coordinator
}

var _ rpc.OrderServer = (*Server)(nil)

func NewServer(coordinator *Coordinator) *Server {
	return &Server{coordinator: coordinator}
}

func (s *Server) CreateOrder(ctx context.Context, req *rpc.CreateOrderRequest) (*rpc.CreateOrderReply, error) {
	created, err := s.coordinator.CreateOrder(ctx, req.AccountID, req.ItemID, int(req.Quantity))
	if err != nil {
		return nil, statusFromDomain(err)
	}

	return &rpc.CreateOrderReply{
		Order:     orderToWire(created.Order),
		AccountID: created.Order.AccountID,
		UnitPrice: created.UnitPrice,
	}, nil
}

func (s *Server) ListOrders(ctx context.Context, _ *rpc.ListOrdersRequest) (*rpc.ListOrdersReply, error) {
	orders, err := s.coordinator.ListOrders(ctx)
	if err != nil {
		return nil, statusFromDomain(err)
	}

	out := make([]*rpc.Order, 0, len(orders))
	for _, order := range orders {
		out = append(out, orderToWire(order))
	}
	return &rpc.ListOrdersReply{Orders: out}, nil
}

func orderToWire(order domain.Order) *rpc.Order {
	return &rpc.Order{
		ID:         order.ID,
		AccountID:  order.AccountID,
		ItemID:     order.ItemID,
		Quantity:   int32(order.Quantity),
		TotalPrice: order.TotalPrice,
	}
}

func statusFromDomain(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrItemNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrInsufficientStock):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrDependencyUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
