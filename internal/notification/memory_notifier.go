package notification

import (
	"context"
	"sync"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// MemoryNotifier records every message it is asked to send.
type MemoryNotifier struct {
	mu   sync.Mutex
	sent []Message
	err  error
}

func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{}
}

// FailWith makes later sends record nothing and return err. A nil err restores normal behaviour.
func (n *MemoryNotifier) FailWith(err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.err = err
}

func (n *MemoryNotifier) SendNotification(_ context.Context, to, subject, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, Message{To: to, Subject: subject, Body: body})
	return nil
}

// Sent returns a copy of the recorded messages in send order.
func (n *MemoryNotifier) Sent() []Message {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Message, len(n.sent))
	copy(out, n.sent)
	return out
}
