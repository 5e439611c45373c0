package app

import (
	"context"
	"time"

	"go-leave/internal/employee"
	"go-leave/internal/leave"
	"go-leave/internal/notification"

	"go.uber.org/zap"
)

type DemoResult struct {
	LeaveRequests []leave.LeaveRequest
	Notifications []notification.Message
}

// RunDemo wires the in-memory adapters, registers employee 12 and submits one
// leave request for them.
func RunDemo(ctx context.Context) (DemoResult, error) {
	logger := zap.L().Named("app.demo")

	employeeRepo := employee.NewMemoryRepository(employee.NewMemoryStore())
	leaveStore := leave.NewMemoryStore()
	notifier := notification.NewMemoryNotifier()

	if err := employeeRepo.Save(ctx, employee.Employee{ID: 12, Name: "Ada", Email: "ada@x.test"}); err != nil {
		return DemoResult{}, err
	}

	useCase := leave.NewService(employeeRepo, leave.NewMemoryRepository(leaveStore), notifier)
	start := time.Date(2020, time.August, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, time.August, 5, 0, 0, 0, 0, time.UTC)
	if err := useCase.Execute(ctx, 12, start, end, 3); err != nil {
		return DemoResult{}, err
	}

	result := DemoResult{
		LeaveRequests: leaveStore.List(),
		Notifications: notifier.Sent(),
	}
	for _, msg := range result.Notifications {
		logger.Info("notification recorded",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
			zap.String("body", msg.Body),
		)
	}
	return result, nil
}
