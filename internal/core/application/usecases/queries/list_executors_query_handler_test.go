package queries_test

import (
	"errors"
	"testing"

	"dispatchops/internal/core/application/usecases/queries"
	"dispatchops/internal/core/domain/model/executor"
	"dispatchops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoreExecutor(t *testing.T, id, name string, availability executor.Availability) *executor.Executor {
	t.Helper()
	executorID, err := kernel.ExecutorIDFromString(id)
	require.NoError(t, err)
	aggregate, err := executor.RestoreExecutor(executorID, name, "+1-555-0201", "Black Suburban", availability)
	require.NoError(t, err)
	return aggregate
}

func TestListExecutorsQueryHandler_Handle(t *testing.T) {
	t.Run("should list executors sorted by id", func(t *testing.T) {
		reader := &MockExecutorReader{}
		reader.On("AllExecutors", mock.Anything).Return([]*executor.Executor{
			restoreExecutor(t, "EX-003", "Omar Haddad", executor.Offline),
			restoreExecutor(t, "EX-001", "Marcus Webb", executor.Active),
		}, nil)

		handler := queries.NewListExecutorsQueryHandler(reader)
		rows, err := handler.Handle(t.Context(), queries.NewListExecutorsQuery())

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "EX-001", rows[0].ID.String())
		assert.Equal(t, "Marcus Webb", rows[0].Name)
		assert.Equal(t, executor.Active, rows[0].Availability)
		assert.Equal(t, "EX-003", rows[1].ID.String())
		assert.Equal(t, executor.Offline, rows[1].Availability)
	})

	t.Run("should propagate reader errors", func(t *testing.T) {
		reader := &MockExecutorReader{}
		reader.On("AllExecutors", mock.Anything).Return(nil, errors.New("storage offline"))

		handler := queries.NewListExecutorsQueryHandler(reader)
		_, err := handler.Handle(t.Context(), queries.NewListExecutorsQuery())

		require.Error(t, err)
	})

	t.Run("should reject a zero-value query", func(t *testing.T) {
		reader := &MockExecutorReader{}

		handler := queries.NewListExecutorsQueryHandler(reader)
		_, err := handler.Handle(t.Context(), queries.ListExecutorsQuery{})

		require.ErrorIs(t, err, queries.ErrListExecutorsQueryIsNotConstructed)
		reader.AssertNotCalled(t, "AllExecutors")
	})
}
