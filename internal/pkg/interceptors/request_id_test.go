package interceptors

import (
	"context"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func invoke(t *testing.T, ctx context.Context) string {
	t.Helper()

	var captured string
	handler := func(ctx context.Context, _ any) (any, error) {
		captured = RequestIDFromContext(ctx)
		return nil, nil
	}

	if _, err := RequestIDServerInterceptor()(ctx, nil, &grpc.UnaryServerInfo{}, handler); err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	return captured
}

func TestInterceptorForwardsIncomingRequestID(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs(HeaderRequestID, "req-123"))

	if got := invoke(t, ctx); got != "req-123" {
		t.Fatalf("request id = %q, want req-123", got)
	}
}

func TestInterceptorMintsRequestIDWhenAbsent(t *testing.T) {
	if got := invoke(t, context.Background()); got == "" {
		t.Fatal("no request id minted for a bare context")
	}
}

func TestContextWithRequestIDSetsOutgoingMetadata(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-456")

	if got := RequestIDFromContext(ctx); got != "req-456" {
		t.Fatalf("in-process request id = %q, want req-456", got)
	}

	md, ok := metadata.FromOutgoingContext(ctx)
	if !ok {
		t.Fatal("no outgoing metadata attached")
	}
	if ids := md.Get(HeaderRequestID); len(ids) != 1 || ids[0] != "req-456" {
		t.Fatalf("outgoing %s = %v, want [req-456]", HeaderRequestID, ids)
	}
}
