package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/milad/meterreader/internal/domain"
	"github.com/milad/meterreader/internal/events"
	"github.com/milad/meterreader/internal/repo"
)

const (
	DefaultMinReadingValue = 10000

	ReadingValueField  = "reading_value"
	ReadingTimeField   = "reading_time"
	InvalidReadingsMsg = "Readings are invalid"
)

type IngestService struct {
	repo      repo.ReadingRepository
	publisher events.Publisher
	minValue  int32
	logger    *zap.Logger
	now       func() time.Time
}

func NewIngestService(r repo.ReadingRepository, publisher events.Publisher, minValue int32, logger *zap.Logger) *IngestService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IngestService{
		repo:      r,
		publisher: publisher,
		minValue:  minValue,
		logger:    logger,
		now:       time.Now,
	}
}

// MinReadingValue is the smallest value accepted for a reading.
func (s *IngestService) MinReadingValue() int32 { return s.minValue }

// AddReadingBatch validates and persists a batch as a unit.
//
// A batch not flagged as successful by the client is answered with
// StatusFailure without looking at its readings. The first reading below
// the minimum rejects the whole batch with a *ValidationError; a reading
// with a zero Time is reported as *MissingTimeError once its value passed.
// Repository failures are returned as *InternalError.
func (s *IngestService) AddReadingBatch(ctx context.Context, b domain.Batch) (domain.Status, error) {
	if b.Status != domain.StatusSuccess {
		return domain.StatusFailure, nil
	}

	records := make([]domain.ReadingRecord, 0, len(b.Readings))
	for i, r := range b.Readings {
		if r.Value < s.minValue {
			return domain.StatusFailure, &ValidationError{
				Field:   ReadingValueField,
				Value:   r.Value,
				Message: InvalidReadingsMsg,
			}
		}
		if r.Time.IsZero() {
			return domain.StatusFailure, &MissingTimeError{Index: i}
		}
		records = append(records, domain.RecordOf(r))
	}

	saved, err := s.repo.SaveBatch(ctx, records)
	if err != nil {
		return domain.StatusFailure, &InternalError{Cause: err}
	}
	if !saved {
		return domain.StatusFailure, nil
	}

	ev := events.NewReadingsAccepted(b, s.now())
	if err := s.publisher.PublishReadingsAccepted(ctx, ev); err != nil {
		s.logger.Warn("publish readings accepted failed", zap.Int("count", ev.Count), zap.Error(err))
	}
	return domain.StatusSuccess, nil
}
