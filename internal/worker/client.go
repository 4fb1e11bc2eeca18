package worker

import (
	"context"

	meterreaderv1 "github.com/milad/meterreader/gen/go/proto/meterreader/v1"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

// TokenClient is the part of the gRPC client the TokenManager needs.
type TokenClient interface {
	CreateToken(ctx context.Context, in *meterreaderv1.TokenRequest, opts ...grpc.CallOption) (*meterreaderv1.TokenResponse, error)
}

// MeterReadingClient is the small subset of the gRPC client we need, to keep tests simple.
type MeterReadingClient interface {
	TokenClient
	AddReading(ctx context.Context, in *meterreaderv1.ReadingPackage, opts ...grpc.CallOption) (*meterreaderv1.StatusMessage, error)
	SendDiagnostics(ctx context.Context, opts ...grpc.CallOption) (grpc.ClientStreamingClient[meterreaderv1.ReadingMessage, emptypb.Empty], error)
}
