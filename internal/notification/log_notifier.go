package notification

import (
	"context"

	"go-leave/internal/shared/contextutil"

	"go.uber.org/zap"
)

// LogNotifier writes messages to the log instead of delivering them.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger ...*zap.Logger) *LogNotifier {
	l := zap.L().Named("notification.log")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.log")
	}
	return &LogNotifier{logger: l}
}

func (n *LogNotifier) SendNotification(ctx context.Context, to, subject, body string) error {
	contextutil.Logger(ctx, n.logger).Info("notification",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}
