package kernel_test

import (
	"strings"
	"testing"

	"dispatchops/internal/core/domain/model/kernel"
	"dispatchops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderID(t *testing.T) {
	t.Run("should generate valid identifiers with ORD prefix", func(t *testing.T) {
		id := kernel.NewOrderID()

		require.NoError(t, id.Validate())
		assert.True(t, strings.HasPrefix(id.String(), "ORD-"))
	})

	t.Run("should generate distinct identifiers", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 100 {
			id := kernel.NewOrderID()
			assert.False(t, seen[id.String()], "duplicate identifier %s", id)
			seen[id.String()] = true
		}
	})

	t.Run("should parse well-formed identifiers", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("ORD-7701")

		require.NoError(t, err)
		assert.Equal(t, "ORD-7701", id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("should reject empty string", func(t *testing.T) {
		_, err := kernel.OrderIDFromString("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject wrong prefix", func(t *testing.T) {
		_, err := kernel.OrderIDFromString("CL-101")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject bare prefix", func(t *testing.T) {
		_, err := kernel.OrderIDFromString("ORD-")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var id kernel.OrderID

		require.Error(t, id.Validate())
	})

	t.Run("IsEqual compares by value", func(t *testing.T) {
		a, _ := kernel.OrderIDFromString("ORD-1")
		b, _ := kernel.OrderIDFromString("ORD-1")
		c := kernel.NewOrderID()

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}

func TestClientID(t *testing.T) {
	t.Run("should generate valid identifiers with CL prefix", func(t *testing.T) {
		id := kernel.NewClientID()

		require.NoError(t, id.Validate())
		assert.True(t, strings.HasPrefix(id.String(), "CL-"))
	})

	t.Run("should reject order identifiers", func(t *testing.T) {
		_, err := kernel.ClientIDFromString("ORD-7701")

		require.Error(t, err)
	})

	t.Run("should parse seeded identifiers", func(t *testing.T) {
		id, err := kernel.ClientIDFromString("CL-101")

		require.NoError(t, err)
		assert.Equal(t, "CL-101", id.String())
	})
}

func TestExecutorID(t *testing.T) {
	t.Run("should generate valid identifiers with EX prefix", func(t *testing.T) {
		id := kernel.NewExecutorID()

		require.NoError(t, id.Validate())
		assert.True(t, strings.HasPrefix(id.String(), "EX-"))
	})

	t.Run("should parse seeded identifiers", func(t *testing.T) {
		id, err := kernel.ExecutorIDFromString("EX-001")

		require.NoError(t, err)
		assert.Equal(t, "EX-001", id.String())
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var id kernel.ExecutorID

		require.Error(t, id.Validate())
	})
}

func TestActorID(t *testing.T) {
	t.Run("should accept any non-empty value", func(t *testing.T) {
		for _, value := range []string{"USR-001", "EX-001", "CL-101", "system"} {
			id, err := kernel.ActorIDFromString(value)

			require.NoError(t, err)
			assert.Equal(t, value, id.String())
			require.NoError(t, id.Validate())
		}
	})

	t.Run("should reject empty value", func(t *testing.T) {
		_, err := kernel.ActorIDFromString("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var id kernel.ActorID

		require.Error(t, id.Validate())
	})
}
