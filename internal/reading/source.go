package reading

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/milad/meterreader/internal/domain"
)

const (
	MinGeneratedValue = 1000
	MaxGeneratedValue = 100000
)

// ValueProvider produces the measured value for one customer.
type ValueProvider interface {
	Value(ctx context.Context, customerID int32) (int32, error)
}

// ValueProviderFunc adapts a function to ValueProvider.
type ValueProviderFunc func(ctx context.Context, customerID int32) (int32, error)

func (f ValueProviderFunc) Value(ctx context.Context, customerID int32) (int32, error) {
	return f(ctx, customerID)
}

// RandomValues draws uniformly from [MinGeneratedValue, MaxGeneratedValue).
func RandomValues() ValueProvider {
	return ValueProviderFunc(func(context.Context, int32) (int32, error) {
		return MinGeneratedValue + rand.Int32N(MaxGeneratedValue-MinGeneratedValue), nil
	})
}

// Source produces timestamped readings.
type Source struct {
	values ValueProvider
	now    func() time.Time
}

type Option func(*Source)

func WithValueProvider(p ValueProvider) Option {
	return func(s *Source) { s.values = p }
}

func WithClock(now func() time.Time) Option {
	return func(s *Source) { s.now = now }
}

func NewSource(opts ...Option) *Source {
	s := &Source{values: RandomValues(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate returns one reading for customerID stamped with the current UTC time.
func (s *Source) Generate(ctx context.Context, customerID int32) (domain.Reading, error) {
	if err := ctx.Err(); err != nil {
		return domain.Reading{}, err
	}
	v, err := s.values.Value(ctx, customerID)
	if err != nil {
		return domain.Reading{}, err
	}
	return domain.Reading{
		CustomerID: customerID,
		Value:      v,
		Time:       s.now().UTC(),
	}, nil
}
