package employee

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository is the employee storage port.
// FindByID reports absence with found == false and a nil error; err is reserved for backend failures.
//
//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id int64) (e Employee, found bool, err error)
	Save(ctx context.Context, e Employee) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id int64) (Employee, bool, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Employee{}, false, nil
	}
	if err != nil {
		return Employee{}, false, err
	}
	return e, true, nil
}

// Save updates the row with e.ID and inserts it when no row was touched.
func (r *repository) Save(ctx context.Context, e Employee) error {
	return mapRepositoryError(r.db.WithContext(ctx).Save(&e).Error)
}
