package events

import (
	"context"
	"time"

	"github.com/milad/meterreader/internal/domain"
)

// ReadingsAccepted is published once per committed batch.
type ReadingsAccepted struct {
	CustomerIDs []int32   `json:"customer_ids"`
	Count       int       `json:"count"`
	Notes       string    `json:"notes,omitempty"`
	AcceptedAt  time.Time `json:"accepted_at"`
}

// NewReadingsAccepted summarizes a committed batch.
func NewReadingsAccepted(b domain.Batch, at time.Time) ReadingsAccepted {
	seen := make(map[int32]struct{}, 1)
	var ids []int32
	for _, r := range b.Readings {
		if _, ok := seen[r.CustomerID]; ok {
			continue
		}
		seen[r.CustomerID] = struct{}{}
		ids = append(ids, r.CustomerID)
	}
	return ReadingsAccepted{
		CustomerIDs: ids,
		Count:       len(b.Readings),
		Notes:       b.Notes,
		AcceptedAt:  at.UTC(),
	}
}

type Publisher interface {
	PublishReadingsAccepted(ctx context.Context, ev ReadingsAccepted) error
}

// Nop discards events.
type Nop struct{}

func (Nop) PublishReadingsAccepted(context.Context, ReadingsAccepted) error { return nil }
