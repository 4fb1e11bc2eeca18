package csvrepo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/milad/meterreader/internal/domain"
	"github.com/milad/meterreader/internal/repo"
)

var _ repo.ReadingRepository = (*Repo)(nil)

// Repo appends readings to a CSV file and mirrors them in memory.
// A Repo created with New has no backing file.
type Repo struct {
	mu      sync.Mutex
	path    string
	records []domain.ReadingRecord
}

// Open loads path if it exists, or creates it with a header row.
func Open(path string) (*Repo, error) {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		var buf bytes.Buffer
		if err := encodeRecords(&buf, nil, true); err != nil {
			return nil, fmt.Errorf("encode header: %w", err)
		}
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return nil, fmt.Errorf("create csv %q: %w", path, err)
		}
		return &Repo{path: path, records: []domain.ReadingRecord{}}, nil
	case err != nil:
		return nil, fmt.Errorf("open csv %q: %w", path, err)
	}

	records, parseErr := ParseRecordsCSV(bytes.NewReader(data))
	if records == nil {
		return nil, fmt.Errorf("parse csv %q: %w", path, parseErr)
	}
	// Parsing can be partially successful; surface warnings to the caller.
	if parseErr != nil {
		return &Repo{path: path, records: records}, fmt.Errorf("parse csv %q: %w", path, parseErr)
	}
	return &Repo{path: path, records: records}, nil
}

func New(records []domain.ReadingRecord) *Repo {
	cp := append([]domain.ReadingRecord{}, records...)
	return &Repo{records: cp}
}

// SaveBatch appends all records with a single write. A failed write is
// truncated back to the previous file size so no partial batch remains.
func (r *Repo) SaveBatch(ctx context.Context, records []domain.ReadingRecord) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.path != "" {
		if err := r.appendFile(records); err != nil {
			return false, err
		}
	}
	r.records = append(r.records, records...)
	return true, nil
}

// Records returns a copy of everything stored so far, in insertion order.
func (r *Repo) Records() []domain.ReadingRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.ReadingRecord(nil), r.records...)
}

func (r *Repo) appendFile(records []domain.ReadingRecord) error {
	var buf bytes.Buffer
	if err := encodeRecords(&buf, records, false); err != nil {
		return fmt.Errorf("encode batch: %w", err)
	}

	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open csv %q: %w", r.path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat csv %q: %w", r.path, err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Truncate(info.Size())
		return fmt.Errorf("append csv %q: %w", r.path, err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Truncate(info.Size())
		return fmt.Errorf("sync csv %q: %w", r.path, err)
	}
	return nil
}
