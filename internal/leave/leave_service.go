package leave

import (
	"context"
	"time"

	"go-leave/internal/employee"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/notification"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const NotificationSubject = "Leave Request Created"

func NotificationBody(employeeName string) string {
	return "Leave request created for employee: " + employeeName
}

type Service interface {
	// Execute submits a leave request for an existing employee and notifies them.
	// It returns ErrEmployeeNotFound, without side effects, when the employee does not exist.
	Execute(ctx context.Context, employeeID int64, startDate, endDate time.Time, leaveType int) error
	// Create runs the same workflow as Execute and returns the stored request.
	Create(ctx context.Context, employeeID int64, startDate, endDate time.Time, leaveType int) (LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
}

type service struct {
	employees employee.Repository
	leaves    Repository
	notifier  notification.Service
	newID     func() uuid.UUID
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	employees employee.Repository,
	leaves Repository,
	notifier notification.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		employees: employees,
		leaves:    leaves,
		notifier:  notifier,
		newID:     uuid.New,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) Execute(ctx context.Context, employeeID int64, startDate, endDate time.Time, leaveType int) error {
	_, err := s.Create(ctx, employeeID, startDate, endDate, leaveType)
	return err
}

func (s *service) Create(ctx context.Context, employeeID int64, startDate, endDate time.Time, leaveType int) (LeaveResponse, error) {
	log := contextutil.Logger(ctx, s.logger)
	log.Debug("create leave request requested",
		zap.Int64("employee_id", employeeID),
		zap.String("start_date", startDate.Format(dateLayout)),
		zap.String("end_date", endDate.Format(dateLayout)),
		zap.Int("leave_type", leaveType),
	)

	emp, found, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		log.Error("create leave request employee lookup failed", zap.Int64("employee_id", employeeID), zap.Error(err))
		return LeaveResponse{}, err
	}
	if !found {
		log.Warn("create leave request employee not found", zap.Int64("employee_id", employeeID))
		return LeaveResponse{}, leaveerrors.ErrEmployeeNotFound
	}

	l := LeaveRequest{
		ID:         s.newID(),
		EmployeeID: employeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		LeaveType:  leaveType,
		Status:     StatusPending,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.leaves.Save(ctx, l); err != nil {
		log.Error("create leave request persist failed", zap.String("leave_id", l.ID.String()), zap.Error(err))
		return LeaveResponse{}, err
	}

	// The request is already stored; a failed notification is reported but does not fail the call.
	if err := s.notifier.SendNotification(ctx, emp.Email, NotificationSubject, NotificationBody(emp.Name)); err != nil {
		log.Warn("create leave request notification failed",
			zap.String("leave_id", l.ID.String()),
			zap.Int64("employee_id", employeeID),
			zap.Error(err),
		)
	}

	log.Info("create leave request success",
		zap.String("leave_id", l.ID.String()),
		zap.Int64("employee_id", employeeID),
	)
	return mapToResponse(l), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	leaveID, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	l, found, err := s.leaves.FindByID(ctx, leaveID)
	if err != nil {
		contextutil.Logger(ctx, s.logger).Error("get leave request failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if !found {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}
	return mapToResponse(l), nil
}
