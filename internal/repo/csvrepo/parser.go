package csvrepo

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/milad/meterreader/internal/domain"
)

var header = []string{"customer_id", "value", "date"}

// ParseRecordsCSV parses persisted readings from the provided CSV reader.
//
// Expected header: customer_id,value,date
//
// Dates are RFC3339 and normalized to UTC.
// Invalid rows are skipped and returned as a joined error (errors.Join).
func ParseRecordsCSV(r io.Reader) ([]domain.ReadingRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // be permissive; validate ourselves
	cr.TrimLeadingSpace = true

	got, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if !headerMatches(got) {
		return nil, fmt.Errorf("unexpected header %q (want %q)", strings.Join(got, ","), strings.Join(header, ","))
	}

	var (
		records []domain.ReadingRecord
		rowErrs []error
		rowNum  = 1 // header
	)

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("row %d: read: %w", rowNum, err))
			continue
		}
		if len(row) < 3 {
			rowErrs = append(rowErrs, fmt.Errorf("row %d: expected 3 columns, got %d", rowNum, len(row)))
			continue
		}

		customerID, err := strconv.ParseInt(strings.TrimSpace(row[0]), 10, 32)
		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("row %d: parse customer_id %q: %w", rowNum, row[0], err))
			continue
		}
		value, err := strconv.ParseInt(strings.TrimSpace(row[1]), 10, 32)
		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("row %d: parse value %q: %w", rowNum, row[1], err))
			continue
		}
		date, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(row[2]))
		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("row %d: parse date %q: %w", rowNum, row[2], err))
			continue
		}

		records = append(records, domain.ReadingRecord{
			CustomerID: int32(customerID),
			Value:      int32(value),
			Date:       date.UTC(),
		})
	}

	// Ensure we return stable, non-nil slice.
	if records == nil {
		records = []domain.ReadingRecord{}
	}
	return records, errors.Join(rowErrs...)
}

func encodeRecords(w io.Writer, records []domain.ReadingRecord, withHeader bool) error {
	cw := csv.NewWriter(w)
	if withHeader {
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	for _, rec := range records {
		row := []string{
			strconv.FormatInt(int64(rec.CustomerID), 10),
			strconv.FormatInt(int64(rec.Value), 10),
			rec.Date.UTC().Format(time.RFC3339Nano),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func headerMatches(got []string) bool {
	if len(got) < len(header) {
		return false
	}
	for i, h := range header {
		if strings.ToLower(strings.TrimSpace(got[i])) != h {
			return false
		}
	}
	return true
}
