package pgrepo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/milad/meterreader/internal/domain"
)

func TestCopyRows_PreservesOrderInUTC(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+2", 2*60*60)
	at := time.Date(2024, 3, 1, 14, 0, 0, 0, loc)
	records := []domain.ReadingRecord{
		{CustomerID: 1, Value: 15000, Date: at},
		{CustomerID: 1, Value: 20000, Date: at.Add(time.Second)},
	}

	src := copyRows(records)
	i := 0
	for src.Next() {
		vals, err := src.Values()
		if err != nil {
			t.Fatalf("Values: %v", err)
		}
		if got, want := len(vals), len(readingColumns); got != want {
			t.Fatalf("len(values)=%d want %d", got, want)
		}
		if vals[0] != records[i].CustomerID || vals[1] != records[i].Value {
			t.Fatalf("row %d=%v want %v", i, vals, records[i])
		}
		date, ok := vals[2].(time.Time)
		if !ok || date.Location() != time.UTC || !date.Equal(records[i].Date) {
			t.Fatalf("row %d date=%v want %v in UTC", i, vals[2], records[i].Date)
		}
		i++
	}
	if err := src.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if i != len(records) {
		t.Fatalf("rows=%d want %d", i, len(records))
	}
}

// Runs against a real PostgreSQL when DATABASE_URL is set.
func TestRepo_SaveBatch(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	t.Cleanup(pool.Close)

	r := New(pool)
	if err := r.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}

	customer := int32(time.Now().UnixNano() % 1_000_000_000)
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), "DELETE FROM meter_readings WHERE customer_id = $1", customer)
	})

	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []domain.ReadingRecord{
		{CustomerID: customer, Value: 15000, Date: at},
		{CustomerID: customer, Value: 20000, Date: at.Add(time.Second)},
		{CustomerID: customer, Value: 30000, Date: at.Add(2 * time.Second)},
	}
	saved, err := r.SaveBatch(ctx, records)
	if err != nil || !saved {
		t.Fatalf("SaveBatch: saved=%v err=%v", saved, err)
	}

	rows, err := pool.Query(ctx, "SELECT value FROM meter_readings WHERE customer_id = $1 ORDER BY id", customer)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	defer rows.Close()
	var got []int32
	for rows.Next() {
		var v int32
		if err := rows.Scan(&v); err != nil {
			t.Fatalf("scan: %v", err)
		}
		got = append(got, v)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(got) != 3 || got[0] != 15000 || got[1] != 20000 || got[2] != 30000 {
		t.Fatalf("values=%v want [15000 20000 30000]", got)
	}

	// A cancelled context must leave nothing behind.
	cctx, ccancel := context.WithCancel(ctx)
	ccancel()
	if saved, err := r.SaveBatch(cctx, records[:1]); err == nil || saved {
		t.Fatalf("SaveBatch with cancelled ctx: saved=%v err=%v", saved, err)
	}
	var n int
	if err := pool.QueryRow(ctx, "SELECT count(*) FROM meter_readings WHERE customer_id = $1", customer).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("count=%d want 3", n)
	}
}
