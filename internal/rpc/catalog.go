package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const (
	CatalogService_GetItem_FullMethodName   = "/storefront.catalog.v1.CatalogService/GetItem"
	CatalogService_ListItems_FullMethodName = "/storefront.catalog.v1.CatalogService/ListItems"
)

// CatalogItem is the wire representation of a catalog record.
type CatalogItem struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int32   `json:"stock"`
}

type GetItemRequest struct {
	ID int64 `json:"id"`
}

type GetItemReply struct {
	Item *CatalogItem `json:"item"`
}

type ListItemsRequest struct{}

type ListItemsReply struct {
	Items []*CatalogItem `json:"items"`
}

// CatalogServer is the server API for the CatalogService.
type CatalogServer interface {
	GetItem(context.Context, *GetItemRequest) (*GetItemReply, error)
	ListItems(context.Context, *ListItemsRequest) (*ListItemsReply, error)
}

func RegisterCatalogServer(s grpc.ServiceRegistrar, srv CatalogServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

// CatalogClient is the client API for the CatalogService.
type CatalogClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogClient(cc grpc.ClientConnInterface) *CatalogClient {
	return &CatalogClient{cc: cc}
}

func (c *CatalogClient) GetItem(ctx context.Context, in *GetItemRequest, opts ...grpc.CallOption) (*GetItemReply, error) {
	out := new(GetItemReply)
	if err := c.cc.Invoke(ctx, CatalogService_GetItem_FullMethodName, in, out, callOpts(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CatalogClient) ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ListItemsReply, error) {
	out := new(ListItemsReply)
	if err := c.cc.Invoke(ctx, CatalogService_ListItems_FullMethodName, in, out, callOpts(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func _CatalogService_GetItem_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServer).GetItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_GetItem_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServer).GetItem(ctx, req.(*GetItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_ListItems_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListItemsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServer).ListItems(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_ListItems_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServer).ListItems(ctx, req.(*ListItemsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "storefront.catalog.v1.CatalogService",
	HandlerType: (*CatalogServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetItem",
			Handler:    _CatalogService_GetItem_Handler,
		},
		{
			MethodName: "ListItems",
			Handler:    _CatalogService_ListItems_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/rpc/catalog.go",
}
