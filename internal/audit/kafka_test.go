package audit

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaPublisher_Publish(t *testing.T) {
	sp := mocks.NewSyncProducer(t, producerConfig())
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var e Event
		if err := json.Unmarshal(val, &e); err != nil {
			return err
		}
		if e.Type != TypeStatusChanged || e.OrderID != "abc" || e.Status != "shipped" {
			return errors.New("unexpected event payload")
		}
		return nil
	})

	p := NewKafkaPublisherWithProducer(sp, "order-console-audit")
	e := NewEvent(TypeStatusChanged, "abc", "admin-1", time.Now())
	e.Status = "shipped"

	require.NoError(t, p.Publish(context.Background(), e))
	require.NoError(t, p.Close())
}

func TestKafkaPublisher_PublishFailure(t *testing.T) {
	sp := mocks.NewSyncProducer(t, producerConfig())
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewKafkaPublisherWithProducer(sp, "order-console-audit")
	err := p.Publish(context.Background(), NewEvent(TypeDeleted, "abc", "admin-1", time.Now()))

	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}

func TestKafkaPublisher_CanceledContext(t *testing.T) {
	sp := mocks.NewSyncProducer(t, producerConfig())
	p := NewKafkaPublisherWithProducer(sp, "order-console-audit")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, p.Publish(ctx, NewEvent(TypeDeleted, "abc", "admin-1", time.Now())), context.Canceled)
	require.NoError(t, p.Close())
}

func TestNewEvent(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	e := NewEvent(TypeDeleted, "o-1", "u-1", now)

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, TypeDeleted, e.Type)
	assert.Equal(t, time.UTC, e.At.Location())
	assert.True(t, e.At.Equal(now))
}

func producerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	return cfg
}
