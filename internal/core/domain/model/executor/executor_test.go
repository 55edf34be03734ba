package executor_test

import (
	"testing"

	"dispatchops/internal/core/domain/model/executor"
	"dispatchops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExecutor(t *testing.T) {
	id, err := kernel.ExecutorIDFromString("EX-001")
	require.NoError(t, err)

	t.Run("should create executor in ACTIVE state", func(t *testing.T) {
		e, err := executor.NewExecutor(id, "Mike Ross", "+15550201", "Mercedes V-Class (Black)")

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, executor.Active, e.Availability())
		assert.Equal(t, "Mercedes V-Class (Black)", e.Vehicle())
	})

	t.Run("should reject missing fields", func(t *testing.T) {
		_, err := executor.NewExecutor(kernel.ExecutorID{}, "Mike", "+1", "Car")
		require.Error(t, err)

		_, err = executor.NewExecutor(id, "", "+1", "Car")
		require.Error(t, err)

		_, err = executor.NewExecutor(id, "Mike", "", "Car")
		require.Error(t, err)

		_, err = executor.NewExecutor(id, "Mike", "+1", "")
		require.Error(t, err)
	})
}

func TestExecutor_SetAvailability(t *testing.T) {
	id, _ := kernel.ExecutorIDFromString("EX-002")

	t.Run("should flip between any valid states", func(t *testing.T) {
		e, err := executor.NewExecutor(id, "Harvey Specter", "+15550202", "Cadillac Escalade")
		require.NoError(t, err)

		for _, target := range []executor.Availability{executor.Busy, executor.Offline, executor.Active} {
			require.NoError(t, e.SetAvailability(target))
			assert.Equal(t, target, e.Availability())
		}
	})

	t.Run("should reject invalid states", func(t *testing.T) {
		e, _ := executor.NewExecutor(id, "Harvey Specter", "+15550202", "Cadillac Escalade")

		require.Error(t, e.SetAvailability(executor.AvailabilityUnknown))
		require.Error(t, e.SetAvailability(executor.Availability(42)))
		assert.Equal(t, executor.Active, e.Availability())
	})
}

func TestRestoreExecutor(t *testing.T) {
	id, _ := kernel.ExecutorIDFromString("EX-003")

	t.Run("should restore stored availability", func(t *testing.T) {
		e, err := executor.RestoreExecutor(id, "Louis Litt", "+15550203", "BMW 7 Series", executor.Offline)

		require.NoError(t, err)
		assert.Equal(t, executor.Offline, e.Availability())
	})

	t.Run("should reject invalid availability", func(t *testing.T) {
		_, err := executor.RestoreExecutor(id, "Louis Litt", "+15550203", "BMW 7 Series", executor.AvailabilityUnknown)

		require.Error(t, err)
	})
}

func TestAvailability(t *testing.T) {
	t.Run("should round-trip wire names", func(t *testing.T) {
		for _, state := range []executor.Availability{executor.Active, executor.Busy, executor.Offline} {
			parsed, err := executor.AvailabilityFromString(state.String())

			require.NoError(t, err)
			assert.Equal(t, state, parsed)
		}
	})

	t.Run("should reject unrecognized names", func(t *testing.T) {
		_, err := executor.AvailabilityFromString("IDLE")
		require.Error(t, err)
	})
}

func TestExecutor_Validate(t *testing.T) {
	t.Run("zero value fails", func(t *testing.T) {
		var e executor.Executor
		require.ErrorIs(t, e.Validate(), executor.ErrExecutorIsNotConstructed)
	})
}
