package leave

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository is the leave request storage port. Absence is found == false with a nil error.
//
//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (l LeaveRequest, found bool, err error)
	Save(ctx context.Context, l LeaveRequest) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (LeaveRequest, bool, error) {
	var l LeaveRequest
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return LeaveRequest{}, false, nil
	}
	if err != nil {
		return LeaveRequest{}, false, err
	}
	return l, true, nil
}

func (r *repository) Save(ctx context.Context, l LeaveRequest) error {
	return r.db.WithContext(ctx).Save(&l).Error
}
