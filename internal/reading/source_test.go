package reading

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSource_Generate_UsesProviderAndClock(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+3", 3*60*60)
	at := time.Date(2024, 3, 1, 15, 0, 0, 0, loc)

	var gotCustomer int32
	src := NewSource(
		WithValueProvider(ValueProviderFunc(func(_ context.Context, id int32) (int32, error) {
			gotCustomer = id
			return 12345, nil
		})),
		WithClock(func() time.Time { return at }),
	)

	r, err := src.Generate(context.Background(), 42)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if gotCustomer != 42 {
		t.Fatalf("provider customer=%d want 42", gotCustomer)
	}
	if r.CustomerID != 42 || r.Value != 12345 {
		t.Fatalf("unexpected reading %#v", r)
	}
	if !r.Time.Equal(at) || r.Time.Location() != time.UTC {
		t.Fatalf("time=%v want %v in UTC", r.Time, at)
	}
}

func TestSource_Generate_ProviderErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("sensor offline")
	src := NewSource(WithValueProvider(ValueProviderFunc(func(context.Context, int32) (int32, error) {
		return 0, boom
	})))

	if _, err := src.Generate(context.Background(), 1); !errors.Is(err, boom) {
		t.Fatalf("err=%v want %v", err, boom)
	}
}

func TestSource_Generate_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewSource().Generate(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v want context.Canceled", err)
	}
}

func TestRandomValues_Range(t *testing.T) {
	t.Parallel()

	p := RandomValues()
	for i := 0; i < 1000; i++ {
		v, err := p.Value(context.Background(), 1)
		if err != nil {
			t.Fatalf("Value: %v", err)
		}
		if v < MinGeneratedValue || v >= MaxGeneratedValue {
			t.Fatalf("value %d out of [%d, %d)", v, MinGeneratedValue, MaxGeneratedValue)
		}
	}
}
