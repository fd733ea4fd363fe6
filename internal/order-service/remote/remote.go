// Package remote implements the order service's clients for entities owned by
// other services. Each client wraps a gRPC connection established once at
// startup and distinguishes exactly three outcomes per lookup: found,
// ErrNotFound, ErrUnavailable. There is no local caching; every call is a
// fresh round trip bounded by a per-call timeout.
package remote

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrNotFound means the remote service answered and the entity does not
	// exist. This is a normal outcome, not a transport failure.
	ErrNotFound = errors.New("remote entity not found")

	// ErrUnavailable means the call did not produce an answer: connection
	// failure, remote error or timeout.
	ErrUnavailable = errors.New("remote service unavailable")
)

// wrapStatus maps a gRPC call error onto the two-sentinel contract.
// codes.NotFound is the only status treated as an answer; everything else,
// including DeadlineExceeded, counts as unavailable.
func wrapStatus(op string, err error) error {
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %v: %w", op, err, ErrUnavailable)
}
