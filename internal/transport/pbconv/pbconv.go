// Package pbconv maps between domain values and meterreader.v1 messages.
package pbconv

import (
	meterreaderv1 "github.com/milad/meterreader/gen/go/proto/meterreader/v1"
	"github.com/milad/meterreader/internal/domain"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Trailer keys attached to rejected or failed AddReading calls.
const (
	TrailerBadValue  = "badvalue"
	TrailerField     = "field"
	TrailerMessage   = "message"
	TrailerException = "exception"
)

func FromStatus(s meterreaderv1.ReadingStatus) domain.Status {
	switch s {
	case meterreaderv1.ReadingStatus_READING_STATUS_SUCCESS:
		return domain.StatusSuccess
	case meterreaderv1.ReadingStatus_READING_STATUS_FAILURE:
		return domain.StatusFailure
	default:
		return domain.StatusUnspecified
	}
}

func ToStatus(s domain.Status) meterreaderv1.ReadingStatus {
	switch s {
	case domain.StatusSuccess:
		return meterreaderv1.ReadingStatus_READING_STATUS_SUCCESS
	case domain.StatusFailure:
		return meterreaderv1.ReadingStatus_READING_STATUS_FAILURE
	default:
		return meterreaderv1.ReadingStatus_READING_STATUS_UNSPECIFIED
	}
}

// FromReading leaves Time zero when reading_time is missing or invalid.
// Whether that is acceptable is up to the caller.
func FromReading(m *meterreaderv1.ReadingMessage) domain.Reading {
	r := domain.Reading{CustomerID: m.GetCustomerId(), Value: m.GetReadingValue()}
	if ts := m.GetReadingTime(); ts != nil && ts.IsValid() {
		r.Time = ts.AsTime().UTC()
	}
	return r
}

func FromPackage(p *meterreaderv1.ReadingPackage) domain.Batch {
	b := domain.Batch{
		Status:   FromStatus(p.GetStatus()),
		Notes:    p.GetNotes(),
		Readings: make([]domain.Reading, 0, len(p.GetReadings())),
	}
	for _, m := range p.GetReadings() {
		b.Readings = append(b.Readings, FromReading(m))
	}
	return b
}

func ToReading(r domain.Reading) *meterreaderv1.ReadingMessage {
	return &meterreaderv1.ReadingMessage{
		CustomerId:   r.CustomerID,
		ReadingValue: r.Value,
		ReadingTime:  timestamppb.New(r.Time),
	}
}

func ToPackage(b domain.Batch) *meterreaderv1.ReadingPackage {
	out := make([]*meterreaderv1.ReadingMessage, 0, len(b.Readings))
	for _, r := range b.Readings {
		out = append(out, ToReading(r))
	}
	return &meterreaderv1.ReadingPackage{
		Readings: out,
		Status:   ToStatus(b.Status),
		Notes:    b.Notes,
	}
}
