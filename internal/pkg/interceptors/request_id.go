// Package interceptors propagates a request id across process boundaries via
// gRPC metadata, minting one when the caller did not supply it.
package interceptors

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// HeaderRequestID is the metadata key requests are correlated by.
const HeaderRequestID = "x-request-id"

type ctxKey string

const requestIDKey ctxKey = HeaderRequestID

// RequestIDServerInterceptor reads x-request-id from incoming metadata,
// generates one when absent, and stores it in the handler context.
func RequestIDServerInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		_ *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		requestID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if ids := md.Get(HeaderRequestID); len(ids) > 0 {
				requestID = ids[0]
			}
		}
		if requestID == "" {
			requestID = uuid.NewString()
		}

		return handler(context.WithValue(ctx, requestIDKey, requestID), req)
	}
}

// RequestIDFromContext returns the request id stored by the interceptor or
// middleware, empty when there is none.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithRequestID stores id in ctx and attaches it to outgoing gRPC
// metadata, so in-process readers and downstream services see the same value.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey, id)
	return metadata.AppendToOutgoingContext(ctx, HeaderRequestID, id)
}
