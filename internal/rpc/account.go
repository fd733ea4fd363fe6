package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const (
	AccountService_GetAccount_FullMethodName   = "/storefront.account.v1.AccountService/GetAccount"
	AccountService_ListAccounts_FullMethodName = "/storefront.account.v1.AccountService/ListAccounts"
)

// Account is the wire representation of an account record.
type Account struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type GetAccountRequest struct {
	ID int64 `json:"id"`
}

type GetAccountReply struct {
	Account *Account `json:"account"`
}

type ListAccountsRequest struct{}

type ListAccountsReply struct {
	Accounts []*Account `json:"accounts"`
}

// AccountServer is the server API for the AccountService.
// A missing account is reported as a codes.NotFound status error, never as an
// empty reply.
type AccountServer interface {
	GetAccount(context.Context, *GetAccountRequest) (*GetAccountReply, error)
	ListAccounts(context.Context, *ListAccountsRequest) (*ListAccountsReply, error)
}

func RegisterAccountServer(s grpc.ServiceRegistrar, srv AccountServer) {
	s.RegisterService(&AccountService_ServiceDesc, srv)
}

// AccountClient is the client API for the AccountService.
type AccountClient struct {
	cc grpc.ClientConnInterface
}

func NewAccountClient(cc grpc.ClientConnInterface) *AccountClient {
	return &AccountClient{cc: cc}
}

func (c *AccountClient) GetAccount(ctx context.Context, in *GetAccountRequest, opts ...grpc.CallOption) (*GetAccountReply, error) {
	out := new(GetAccountReply)
	if err := c.cc.Invoke(ctx, AccountService_GetAccount_FullMethodName, in, out, callOpts(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AccountClient) ListAccounts(ctx context.Context, in *ListAccountsRequest, opts ...grpc.CallOption) (*ListAccountsReply, error) {
	out := new(ListAccountsReply)
	if err := c.cc.Invoke(ctx, AccountService_ListAccounts_FullMethodName, in, out, callOpts(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func _AccountService_GetAccount_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetAccountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AccountServer).GetAccount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AccountService_GetAccount_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AccountServer).GetAccount(ctx, req.(*GetAccountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AccountService_ListAccounts_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListAccountsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AccountServer).ListAccounts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AccountService_ListAccounts_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AccountServer).ListAccounts(ctx, req.(*ListAccountsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var AccountService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "storefront.account.v1.AccountService",
	HandlerType: (*AccountServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetAccount",
			Handler:    _AccountService_GetAccount_Handler,
		},
		{
			MethodName: "ListAccounts",
			Handler:    _AccountService_ListAccounts_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/rpc/account.go",
}
