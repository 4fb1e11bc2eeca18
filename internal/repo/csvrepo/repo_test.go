package csvrepo

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milad/meterreader/internal/domain"
)

func mustUTC(t *testing.T, s string) time.Time {
	t.Helper()
	got, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse time %q: %v", s, err)
	}
	return got.UTC()
}

func TestRepo_SaveBatchAppendsInOrder(t *testing.T) {
	t.Parallel()

	r := New(nil)
	batch := []domain.ReadingRecord{
		{CustomerID: 1, Value: 11000, Date: mustUTC(t, "2024-03-01T00:15:00Z")},
		{CustomerID: 1, Value: 12000, Date: mustUTC(t, "2024-03-01T00:30:00Z")},
	}

	saved, err := r.SaveBatch(context.Background(), batch)
	if err != nil {
		t.Fatalf("SaveBatch: %v", err)
	}
	if !saved {
		t.Fatalf("saved=false want true")
	}
	out := r.Records()
	if got, want := len(out), 2; got != want {
		t.Fatalf("len(out)=%d want %d", got, want)
	}
	if out[0].Value != 11000 || out[1].Value != 12000 {
		t.Fatalf("unexpected order: %#v", out)
	}
}

func TestRepo_SaveBatchHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	r := New(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	saved, err := r.SaveBatch(ctx, []domain.ReadingRecord{{CustomerID: 1, Value: 10000}})
	if err == nil || saved {
		t.Fatalf("saved=%v err=%v, want false and error", saved, err)
	}
	if got := len(r.Records()); got != 0 {
		t.Fatalf("len(records)=%d want 0", got)
	}
}

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "readings.csv")
	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	batch := []domain.ReadingRecord{
		{CustomerID: 42, Value: 15000, Date: mustUTC(t, "2024-03-01T00:15:00Z")},
		{CustomerID: 42, Value: 25000, Date: mustUTC(t, "2024-03-01T00:16:00Z")},
	}
	if _, err := r.SaveBatch(context.Background(), batch); err != nil {
		t.Fatalf("SaveBatch: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	out := reopened.Records()
	if got, want := len(out), 2; got != want {
		t.Fatalf("len(out)=%d want %d", got, want)
	}
	if !out[1].Date.Equal(batch[1].Date) || out[1].CustomerID != 42 {
		t.Fatalf("unexpected record: %#v", out[1])
	}
}

func TestOpen_RejectsForeignFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "other.csv")
	if err := os.WriteFile(path, []byte("timestamp,kwh\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Open(path); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
