package diagnostics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/milad/meterreader/internal/domain"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Sink observes diagnostic readings. Observing never validates or persists.
type Sink interface {
	Observe(ctx context.Context, r domain.Reading) error
}

type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Observe(_ context.Context, r domain.Reading) error {
	s.logger.Info("received diagnostic reading",
		zap.Int32("customer_id", r.CustomerID),
		zap.Int32("value", r.Value),
		zap.Time("reading_time", r.Time),
	)
	return nil
}

type entry struct {
	CustomerID int32     `json:"customer_id"`
	Value      int32     `json:"value"`
	Time       time.Time `json:"time"`
}

// RedisSink pushes readings onto a capped list, newest first.
type RedisSink struct {
	rdb    redis.Cmdable
	key    string
	maxLen int64
}

func NewRedisSink(rdb redis.Cmdable, key string, maxLen int64) *RedisSink {
	if maxLen <= 0 {
		maxLen = 1000
	}
	return &RedisSink{rdb: rdb, key: key, maxLen: maxLen}
}

func (s *RedisSink) Observe(ctx context.Context, r domain.Reading) error {
	body, err := json.Marshal(entry{CustomerID: r.CustomerID, Value: r.Value, Time: r.Time.UTC()})
	if err != nil {
		return fmt.Errorf("marshal diagnostic: %w", err)
	}
	_, err = s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.LPush(ctx, s.key, body)
		p.LTrim(ctx, s.key, 0, s.maxLen-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("push diagnostic: %w", err)
	}
	return nil
}

// Multi fans out to every sink and returns the first error after trying all of them.
type Multi []Sink

func (m Multi) Observe(ctx context.Context, r domain.Reading) error {
	var first error
	for _, s := range m {
		if err := s.Observe(ctx, r); err != nil && first == nil {
			first = err
		}
	}
	return first
}
