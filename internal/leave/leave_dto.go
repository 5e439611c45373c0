package leave

import (
	"time"

	leaveerrors "go-leave/internal/leave/errors"
)

const dateLayout = "2006-01-02"

type CreateLeaveRequest struct {
	EmployeeID int64  `json:"employee_id"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	LeaveType  int    `json:"leave_type"`
}

type LeaveResponse struct {
	ID         string `json:"id"`
	EmployeeID int64  `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	LeaveType  int    `json:"leave_type"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID,
		StartDate:  l.StartDate.Format(dateLayout),
		EndDate:    l.EndDate.Format(dateLayout),
		LeaveType:  l.LeaveType,
		Status:     l.Status,
		CreatedAt:  l.CreatedAt.Format(time.RFC3339),
	}
}
