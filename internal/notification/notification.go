// Package notification holds the port used to tell a person about a workflow
// outcome, plus the transports that implement it.
package notification

import "context"

// Service sends one message to one recipient. Implementations make a single
// delivery attempt and report the transport error, if any, unchanged.
//
//go:generate mockgen -source=notification.go -destination=mock/notification_mock.go -package=mock
type Service interface {
	SendNotification(ctx context.Context, to, subject, body string) error
}
