package diagnostics

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/milad/meterreader/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestRedisSink_PushesNewestFirstAndCaps(t *testing.T) {
	mr, rdb := newRedis(t)
	sink := NewRedisSink(rdb, "diag", 2)
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	for i, v := range []int32{1000, 2000, 3000} {
		r := domain.Reading{CustomerID: 5, Value: v, Time: base.Add(time.Duration(i) * time.Second)}
		require.NoError(t, sink.Observe(context.Background(), r))
	}

	items, err := mr.List("diag")
	require.NoError(t, err)
	require.Len(t, items, 2)

	var newest entry
	require.NoError(t, json.Unmarshal([]byte(items[0]), &newest))
	assert.Equal(t, int32(3000), newest.Value)
	assert.Equal(t, int32(5), newest.CustomerID)

	var oldest entry
	require.NoError(t, json.Unmarshal([]byte(items[1]), &oldest))
	assert.Equal(t, int32(2000), oldest.Value)
}

func TestRedisSink_ReportsUnavailableServer(t *testing.T) {
	mr, rdb := newRedis(t)
	mr.Close()

	err := NewRedisSink(rdb, "diag", 10).Observe(context.Background(), domain.Reading{Value: 1})
	assert.Error(t, err)
}

type failingSink struct{ calls int }

func (f *failingSink) Observe(context.Context, domain.Reading) error {
	f.calls++
	return errors.New("down")
}

type countingSink struct{ calls int }

func (c *countingSink) Observe(context.Context, domain.Reading) error {
	c.calls++
	return nil
}

func TestMulti_TriesEverySink(t *testing.T) {
	bad := &failingSink{}
	good := &countingSink{}
	m := Multi{bad, NewLogSink(zap.NewNop()), good}

	err := m.Observe(context.Background(), domain.Reading{Value: 1})
	assert.EqualError(t, err, "down")
	assert.Equal(t, 1, bad.calls)
	assert.Equal(t, 1, good.calls)
}
