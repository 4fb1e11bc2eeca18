package httpserver

import (
	"context"

	meterreaderv1 "github.com/milad/meterreader/gen/go/proto/meterreader/v1"
	"google.golang.org/grpc"
)

// MeterReadingClient is the small subset of the gRPC client we need, to keep tests simple.
type MeterReadingClient interface {
	CreateToken(ctx context.Context, in *meterreaderv1.TokenRequest, opts ...grpc.CallOption) (*meterreaderv1.TokenResponse, error)
	AddReading(ctx context.Context, in *meterreaderv1.ReadingPackage, opts ...grpc.CallOption) (*meterreaderv1.StatusMessage, error)
}
