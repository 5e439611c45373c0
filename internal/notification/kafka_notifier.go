package notification

import (
	"context"
	"encoding/json"
	"time"

	"go-leave/internal/events"
	"go-leave/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// KafkaNotifier hands each notification to a mail relay listening on topic.
type KafkaNotifier struct {
	writer messageWriter
	topic  string
	now    func() time.Time
}

func NewKafkaNotifier(writer *kafkago.Writer, topic string) *KafkaNotifier {
	return newKafkaNotifier(writer, topic)
}

func newKafkaNotifier(writer messageWriter, topic string) *KafkaNotifier {
	if topic == "" {
		topic = events.NotificationRequestedTopic
	}
	return &KafkaNotifier{writer: writer, topic: topic, now: time.Now}
}

func (n *KafkaNotifier) SendNotification(ctx context.Context, to, subject, body string) error {
	event := events.NotificationRequestedEvent{
		EventType:  "notification_requested",
		RequestID:  contextutil.GetRequestID(ctx),
		Recipient:  to,
		Subject:    subject,
		Body:       body,
		OccurredAt: n.now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return n.writer.WriteMessages(ctx, kafkago.Message{
		Topic: n.topic,
		Key:   []byte(to),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	})
}
