package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/milad/meterreader/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChannel struct {
	declared   []string
	published  []amqp.Publishing
	keys       []string
	publishErr error
	closed     bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	f.declared = append(f.declared, name+":"+kind)
	return nil
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.keys = append(f.keys, exchange+"/"+key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestAMQPPublisher_PublishesPersistentJSON(t *testing.T) {
	ch := &fakeChannel{}
	p, err := NewAMQPPublisher(ch, "meterreader.events", "readings.accepted", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"meterreader.events:topic"}, ch.declared)

	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	ev := NewReadingsAccepted(domain.Batch{
		Readings: []domain.Reading{{CustomerID: 7}, {CustomerID: 7}, {CustomerID: 8}},
		Notes:    "From the client",
	}, at)
	require.NoError(t, p.PublishReadingsAccepted(context.Background(), ev))

	require.Len(t, ch.published, 1)
	msg := ch.published[0]
	assert.Equal(t, "meterreader.events/readings.accepted", ch.keys[0])
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "application/json", msg.ContentType)

	var got ReadingsAccepted
	require.NoError(t, json.Unmarshal(msg.Body, &got))
	assert.Equal(t, []int32{7, 8}, got.CustomerIDs)
	assert.Equal(t, 3, got.Count)
	assert.True(t, got.AcceptedAt.Equal(at))
}

func TestAMQPPublisher_WrapsPublishError(t *testing.T) {
	boom := errors.New("channel closed")
	p, err := NewAMQPPublisher(&fakeChannel{publishErr: boom}, "x", "k", zap.NewNop())
	require.NoError(t, err)

	err = p.PublishReadingsAccepted(context.Background(), ReadingsAccepted{})
	assert.ErrorIs(t, err, boom)
}
