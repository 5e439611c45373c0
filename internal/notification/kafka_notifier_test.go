package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-leave/internal/events"
	"go-leave/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

type fakeWriter struct {
	msgs []kafkago.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func TestKafkaNotifier_SendNotification(t *testing.T) {
	t.Run("publishes event", func(t *testing.T) {
		w := &fakeWriter{}
		n := newKafkaNotifier(w, "")
		occurred := time.Date(2020, 8, 1, 9, 0, 0, 0, time.UTC)
		n.now = func() time.Time { return occurred }
		ctx := contextutil.WithRequestID(context.Background(), "rid-1")

		err := n.SendNotification(ctx, "ada@x.test", "Leave Request Created", "hello Ada")

		assert.NoError(t, err)
		if assert.Len(t, w.msgs, 1) {
			msg := w.msgs[0]
			assert.Equal(t, events.NotificationRequestedTopic, msg.Topic)
			assert.Equal(t, []byte("ada@x.test"), msg.Key)

			var got events.NotificationRequestedEvent
			assert.NoError(t, json.Unmarshal(msg.Value, &got))
			assert.Equal(t, events.NotificationRequestedEvent{
				EventType:  "notification_requested",
				RequestID:  "rid-1",
				Recipient:  "ada@x.test",
				Subject:    "Leave Request Created",
				Body:       "hello Ada",
				OccurredAt: occurred,
			}, got)
		}
	})

	t.Run("custom topic", func(t *testing.T) {
		w := &fakeWriter{}
		n := newKafkaNotifier(w, "mail.outgoing")

		assert.NoError(t, n.SendNotification(context.Background(), "ada@x.test", "s", "b"))
		assert.Equal(t, "mail.outgoing", w.msgs[0].Topic)
	})

	t.Run("writer error is returned", func(t *testing.T) {
		brokerErr := errors.New("leader not available")
		n := newKafkaNotifier(&fakeWriter{err: brokerErr}, "")

		err := n.SendNotification(context.Background(), "ada@x.test", "s", "b")

		assert.ErrorIs(t, err, brokerErr)
	})
}
