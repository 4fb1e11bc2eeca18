package domain

import "time"

// Status is the outcome flag carried by a batch and returned for a submission.
type Status int

const (
	StatusUnspecified Status = iota
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "unspecified"
	}
}

// Reading represents a single meter reading for one customer at a point in time.
type Reading struct {
	CustomerID int32
	Value      int32
	Time       time.Time
}

// Batch is an ordered group of readings submitted together.
type Batch struct {
	Readings []Reading
	Status   Status
	Notes    string
}

// ReadingRecord is the durable form of a validated reading.
type ReadingRecord struct {
	CustomerID int32
	Value      int32
	Date       time.Time
}

// RecordOf converts a reading into its persisted representation.
func RecordOf(r Reading) ReadingRecord {
	return ReadingRecord{
		CustomerID: r.CustomerID,
		Value:      r.Value,
		Date:       r.Time.UTC(),
	}
}
