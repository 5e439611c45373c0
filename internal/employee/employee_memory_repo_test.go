package employee_test

import (
	"context"
	"testing"

	"go-leave/internal/employee"

	"github.com/stretchr/testify/assert"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("absent employee is not an error", func(t *testing.T) {
		repo := employee.NewMemoryRepository(employee.NewMemoryStore())

		got, found, err := repo.FindByID(ctx, 99)

		assert.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, employee.Employee{}, got)
	})

	t.Run("save then find", func(t *testing.T) {
		repo := employee.NewMemoryRepository(employee.NewMemoryStore())
		ada := employee.Employee{ID: 12, Name: "Ada", Email: "ada@x.test"}

		assert.NoError(t, repo.Save(ctx, ada))
		got, found, err := repo.FindByID(ctx, 12)

		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, ada, got)
	})

	t.Run("save overwrites by id", func(t *testing.T) {
		store := employee.NewMemoryStore()
		repo := employee.NewMemoryRepository(store)

		assert.NoError(t, repo.Save(ctx, employee.Employee{ID: 12, Name: "Ada", Email: "ada@x.test"}))
		assert.NoError(t, repo.Save(ctx, employee.Employee{ID: 12, Name: "Ada Lovelace", Email: "ada@lovelace.test"}))

		got, found, err := repo.FindByID(ctx, 12)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "Ada Lovelace", got.Name)
		assert.Equal(t, "ada@lovelace.test", got.Email)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("stores are isolated", func(t *testing.T) {
		first := employee.NewMemoryRepository(employee.NewMemoryStore())
		second := employee.NewMemoryRepository(employee.NewMemoryStore())

		assert.NoError(t, first.Save(ctx, employee.Employee{ID: 1, Name: "A", Email: "a@x.test"}))

		_, found, err := second.FindByID(ctx, 1)
		assert.NoError(t, err)
		assert.False(t, found)
	})
}
