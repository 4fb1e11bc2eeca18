package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milad/meterreader/internal/domain"
)

type sliceStream struct {
	readings []domain.Reading
	err      error
	i        int
}

func (s *sliceStream) Recv() (domain.Reading, error) {
	if s.i >= len(s.readings) {
		if s.err != nil {
			return domain.Reading{}, s.err
		}
		return domain.Reading{}, io.EOF
	}
	r := s.readings[s.i]
	s.i++
	return r, nil
}

type recordingSink struct {
	seen []int32
	fail map[int32]bool
}

func (s *recordingSink) Observe(_ context.Context, r domain.Reading) error {
	s.seen = append(s.seen, r.Value)
	if s.fail[r.Value] {
		return errors.New("sink unavailable")
	}
	return nil
}

func TestStreamDiagnostics_ObservesInArrivalOrder(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{fail: map[int32]bool{2: true}}
	svc := NewDiagnosticsService(sink, nil)

	// Values below the ingestion minimum are fine here; nothing is validated.
	stream := &sliceStream{readings: []domain.Reading{{Value: 3}, {Value: 1}, {Value: 2}, {Value: 50000}}}
	n, err := svc.StreamDiagnostics(context.Background(), stream)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []int32{3, 1, 2, 50000}, sink.seen)
}

func TestStreamDiagnostics_EmptyStream(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	n, err := NewDiagnosticsService(sink, nil).StreamDiagnostics(context.Background(), &sliceStream{})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, sink.seen)
}

func TestStreamDiagnostics_RecvErrorStops(t *testing.T) {
	t.Parallel()

	boom := errors.New("stream reset")
	sink := &recordingSink{}
	stream := &sliceStream{readings: []domain.Reading{{Value: 1}}, err: boom}

	n, err := NewDiagnosticsService(sink, nil).StreamDiagnostics(context.Background(), stream)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, n)
}

func TestStreamDiagnostics_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := &recordingSink{}
	stream := &sliceStream{readings: []domain.Reading{{Value: 1}}}
	n, err := NewDiagnosticsService(sink, nil).StreamDiagnostics(ctx, stream)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
	assert.Empty(t, sink.seen)
}
