// Package rpc defines the wire contract between the storefront services.
//
// The services speak plain gRPC, but the message bodies are encoded with a
// registered JSON codec instead of protobuf: interface-definition compilation
// and code generation are deliberately kept out of the build, so the service
// descriptors below are maintained by hand in the same shape protoc-gen-go
// would emit. Status codes carry the error contract either way.
package rpc

import (
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// codecName is the gRPC content-subtype under which the codec is registered.
// Clients select it per call via grpc.CallContentSubtype; servers pick it up
// from the registry because this package is imported on both sides.
const codecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func (jsonCodec) Name() string { return codecName }

// callOpts prepends the codec selection to the caller-supplied options.
func callOpts(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
}
