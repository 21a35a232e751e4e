//go:build unit

package events

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"cozycup/internal/usecase/shared"
	"cozycup/tests/common/builder"
	"cozycup/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func TestKafkaPublisher_Publish(t *testing.T) {
	actor := uuid.New()
	e := shared.NewEvent(shared.EventBookingCheckedIn, uuid.New(), &actor, builder.BaseTime, map[string]any{"by": "kiosk"})

	t.Run("OK: keyed by aggregate with type header", func(t *testing.T) {
		w := &recordingWriter{}
		p := &KafkaPublisher{writer: w}

		require.NoError(t, p.Publish(context.Background(), e))

		require.Len(t, w.msgs, 1)
		msg := w.msgs[0]
		assert.Equal(t, e.AggregateID.String(), string(msg.Key))
		assert.Equal(t, builder.BaseTime, msg.Time)
		assert.Equal(t, []kafka.Header{{Key: headerEventType, Value: []byte("booking_checked_in")}}, msg.Headers)

		var decoded shared.Event
		require.NoError(t, json.Unmarshal(msg.Value, &decoded))
		assert.Equal(t, e.ID, decoded.ID)
		assert.Equal(t, e.Type, decoded.Type)
		assert.Equal(t, "kiosk", decoded.Data["by"])
	})

	t.Run("NG: broker failure surfaces", func(t *testing.T) {
		p := &KafkaPublisher{writer: &recordingWriter{err: assert.AnError}}

		err := p.Publish(context.Background(), e)

		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestLogPublisher_Publish(t *testing.T) {
	e := shared.NewEvent(shared.EventCreditRedeemed, uuid.New(), nil, builder.BaseTime, nil)

	t.Run("OK: logs and forwards", func(t *testing.T) {
		var buf bytes.Buffer
		next := &memstore.Publisher{}
		p := NewLogPublisher(slog.New(slog.NewTextHandler(&buf, nil)), next)

		require.NoError(t, p.Publish(context.Background(), e))

		assert.Contains(t, buf.String(), "msg=credit_redeemed")
		assert.Contains(t, buf.String(), "aggregate_id="+e.AggregateID.String())
		assert.NotContains(t, buf.String(), "actor_id")
		assert.Equal(t, []shared.EventType{shared.EventCreditRedeemed}, next.Types())
	})

	t.Run("OK: without a sink", func(t *testing.T) {
		p := NewLogPublisher(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), nil)

		assert.NoError(t, p.Publish(context.Background(), e))
	})
}
