package leave

import (
	"time"

	"github.com/google/uuid"
)

const StatusPending = "PENDING"

// LeaveRequest references its employee by id only; the employee record is not embedded.
// LeaveType is kept as the caller's code and is not interpreted.
type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID int64     `gorm:"not null;index:idx_leave_requests_employee"`
	StartDate  time.Time `gorm:"type:date;not null"`
	EndDate    time.Time `gorm:"type:date;not null"`
	LeaveType  int       `gorm:"not null"`
	Status     string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	CreatedAt  time.Time
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}
