package leave_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-leave/internal/leave"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupGormRepo(t *testing.T) (leave.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	assert.NoError(t, err)

	return leave.NewRepository(gormDB), mock
}

func TestGormRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	created := time.Date(2020, 8, 1, 9, 0, 0, 0, time.UTC)
	columns := []string{"id", "employee_id", "start_date", "end_date", "leave_type", "status", "created_at"}

	t.Run("found", func(t *testing.T) {
		repo, mock := setupGormRepo(t)
		mock.ExpectQuery(`SELECT \* FROM "leave_requests"`).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(
				id.String(), int64(12), date(t, "2020-08-01"), date(t, "2020-08-05"), int64(3), leave.StatusPending, created,
			))

		got, found, err := repo.FindByID(ctx, id)

		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, int64(12), got.EmployeeID)
		assert.Equal(t, 3, got.LeaveType)
		assert.Equal(t, leave.StatusPending, got.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent", func(t *testing.T) {
		repo, mock := setupGormRepo(t)
		mock.ExpectQuery(`SELECT \* FROM "leave_requests"`).WillReturnRows(sqlmock.NewRows(columns))

		_, found, err := repo.FindByID(ctx, id)

		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("backend failure", func(t *testing.T) {
		repo, mock := setupGormRepo(t)
		mock.ExpectQuery(`SELECT \* FROM "leave_requests"`).WillReturnError(errors.New("connection refused"))

		_, found, err := repo.FindByID(ctx, id)

		assert.Error(t, err)
		assert.False(t, found)
	})
}

func TestGormRepository_Save(t *testing.T) {
	ctx := context.Background()
	newRequest := func() leave.LeaveRequest {
		return leave.LeaveRequest{
			ID:         uuid.New(),
			EmployeeID: 12,
			StartDate:  date(t, "2020-08-01"),
			EndDate:    date(t, "2020-08-05"),
			LeaveType:  3,
			Status:     leave.StatusPending,
			CreatedAt:  time.Now().UTC(),
		}
	}

	t.Run("updates existing row", func(t *testing.T) {
		repo, mock := setupGormRepo(t)
		mock.ExpectExec(`UPDATE "leave_requests" SET`).WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Save(ctx, newRequest())

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("inserts new request", func(t *testing.T) {
		repo, mock := setupGormRepo(t)
		mock.ExpectExec(`UPDATE "leave_requests" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`INSERT INTO "leave_requests"`).WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Save(ctx, newRequest())

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("backend failure", func(t *testing.T) {
		repo, mock := setupGormRepo(t)
		mock.ExpectExec(`UPDATE "leave_requests" SET`).WillReturnError(errors.New("disk full"))

		err := repo.Save(ctx, newRequest())

		assert.EqualError(t, err, "disk full")
	})
}
