package repo

import (
	"context"

	"github.com/milad/meterreader/internal/domain"
)

// ReadingRepository durably appends validated readings.
type ReadingRepository interface {
	// SaveBatch persists records as one unit: either every record is stored or none is.
	// saved=false with a nil error means the backend declined the batch without failing.
	SaveBatch(ctx context.Context, records []domain.ReadingRecord) (saved bool, err error)
}
