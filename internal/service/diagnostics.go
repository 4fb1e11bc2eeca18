package service

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/milad/meterreader/internal/diagnostics"
	"github.com/milad/meterreader/internal/domain"
)

// ReadingStream yields inbound readings until io.EOF.
type ReadingStream interface {
	Recv() (domain.Reading, error)
}

type DiagnosticsService struct {
	sink   diagnostics.Sink
	logger *zap.Logger
}

func NewDiagnosticsService(sink diagnostics.Sink, logger *zap.Logger) *DiagnosticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sink == nil {
		sink = diagnostics.NewLogSink(logger)
	}
	return &DiagnosticsService{sink: sink, logger: logger}
}

// StreamDiagnostics drains stream in arrival order and returns how many
// readings were observed. Sink failures are logged and skipped.
func (s *DiagnosticsService) StreamDiagnostics(ctx context.Context, stream ReadingStream) (int, error) {
	n := 0
	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		r, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		n++
		if err := s.sink.Observe(ctx, r); err != nil {
			s.logger.Warn("diagnostics sink failed",
				zap.Int32("customer_id", r.CustomerID),
				zap.Int32("reading_value", r.Value),
				zap.Error(err),
			)
		}
	}
}
