package csvrepo

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/milad/meterreader/internal/domain"
)

func TestParseRecordsCSV_OK(t *testing.T) {
	t.Parallel()

	csv := strings.NewReader(strings.TrimSpace(`
customer_id,value,date
100,15000,2024-03-01T00:15:00Z
100,20000,2024-03-01T00:30:00Z
`))

	records, err := ParseRecordsCSV(csv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := len(records), 2; got != want {
		t.Fatalf("len(records)=%d want %d", got, want)
	}
	if records[0].Date.Location() != time.UTC {
		t.Fatalf("date location=%v want UTC", records[0].Date.Location())
	}
	if got, want := records[1].Value, int32(20000); got != want {
		t.Fatalf("value[1]=%v want %v", got, want)
	}
}

func TestParseRecordsCSV_SkipsInvalidRows(t *testing.T) {
	t.Parallel()

	csv := strings.NewReader(strings.TrimSpace(`
customer_id,value,date
100,15000,2024-03-01T00:15:00Z
100,NaN,2024-03-01T00:30:00Z
abc,12000,2024-03-01T00:30:00Z
100,12000,not-a-time
100,18000,2024-03-01T00:45:00Z
`))

	records, err := ParseRecordsCSV(csv)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if got, want := len(records), 2; got != want {
		t.Fatalf("len(records)=%d want %d", got, want)
	}
}

func TestParseRecordsCSV_RejectsHeader(t *testing.T) {
	t.Parallel()

	_, err := ParseRecordsCSV(strings.NewReader("timestamp,kwh\n"))
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestEncodeRecords_RoundTripsThroughParser(t *testing.T) {
	t.Parallel()

	in := []domain.ReadingRecord{
		{CustomerID: 1, Value: 10000, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{CustomerID: 2, Value: 99999, Date: time.Date(2024, 3, 1, 0, 0, 1, 500, time.UTC)},
	}
	var buf bytes.Buffer
	if err := encodeRecords(&buf, in, true); err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := ParseRecordsCSV(&buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("len=%d want %d", len(out), len(in))
	}
	for i := range in {
		if !out[i].Date.Equal(in[i].Date) || out[i].Value != in[i].Value || out[i].CustomerID != in[i].CustomerID {
			t.Fatalf("record %d: got %#v want %#v", i, out[i], in[i])
		}
	}
}
