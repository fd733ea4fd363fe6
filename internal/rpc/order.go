package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const (
	OrderService_CreateOrder_FullMethodName = "/storefront.order.v1.OrderService/CreateOrder"
	OrderService_ListOrders_FullMethodName  = "/storefront.order.v1.OrderService/ListOrders"
)

// Order is the wire representation of an order record.
type Order struct {
	ID         int64   `json:"id"`
	AccountID  int64   `json:"account_id"`
	ItemID     int64   `json:"item_id"`
	Quantity   int32   `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
}

type CreateOrderRequest struct {
	AccountID int64 `json:"account_id"`
	ItemID    int64 `json:"item_id"`
	Quantity  int32 `json:"quantity"`
}

// CreateOrderReply carries the created order plus echoes of the validated
// account reference and the unit price the total was derived from.
type CreateOrderReply struct {
	Order     *Order  `json:"order"`
	AccountID int64   `json:"account_id"`
	UnitPrice float64 `json:"unit_price"`
}

type ListOrdersRequest struct{}

type ListOrdersReply struct {
	Orders []*Order `json:"orders"`
}

// OrderServer is the server API for the OrderService. Validation failures are
// reported as status errors: codes.InvalidArgument, codes.NotFound,
// codes.FailedPrecondition (stock) or codes.Unavailable (dependency down).
type OrderServer interface {
	CreateOrder(context.Context, *CreateOrderRequest) (*CreateOrderReply, error)
	ListOrders(context.Context, *ListOrdersRequest) (*ListOrdersReply, error)
}

func RegisterOrderServer(s grpc.ServiceRegistrar, srv OrderServer) {
	s.RegisterService(&OrderService_ServiceDesc, srv)
}

// OrderClient is the client API for the OrderService.
type OrderClient struct {
	cc grpc.ClientConnInterface
}

func NewOrderClient(cc grpc.ClientConnInterface) *OrderClient {
	return &OrderClient{cc: cc}
}

func (c *OrderClient) CreateOrder(ctx context.Context, in *CreateOrderRequest, opts ...grpc.CallOption) (*CreateOrderReply, error) {
	out := new(CreateOrderReply)
	if err := c.cc.Invoke(ctx, OrderService_CreateOrder_FullMethodName, in, out, callOpts(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *OrderClient) ListOrders(ctx context.Context, in *ListOrdersRequest, opts ...grpc.CallOption) (*ListOrdersReply, error) {
	out := new(ListOrdersReply)
	if err := c.cc.Invoke(ctx, OrderService_ListOrders_FullMethodName, in, out, callOpts(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func _OrderService_CreateOrder_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateOrderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderServer).CreateOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OrderService_CreateOrder_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(OrderServer).CreateOrder(ctx, req.(*CreateOrderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OrderService_ListOrders_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListOrdersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderServer).ListOrders(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OrderService_ListOrders_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(OrderServer).ListOrders(ctx, req.(*ListOrdersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var OrderService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "storefront.order.v1.OrderService",
	HandlerType: (*OrderServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateOrder",
			Handler:    _OrderService_CreateOrder_Handler,
		},
		{
			MethodName: "ListOrders",
			Handler:    _OrderService_ListOrders_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/rpc/order.go",
}
