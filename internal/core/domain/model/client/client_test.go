package client_test

import (
	"testing"

	"dispatchops/internal/core/domain/model/client"
	"dispatchops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	id, err := kernel.ClientIDFromString("CL-101")
	require.NoError(t, err)

	t.Run("should create valid client", func(t *testing.T) {
		c, err := client.NewClient(id, "Acme Corp Travel", "corp@acme.com", "+15550101", client.Business)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Acme Corp Travel", c.Name())
		assert.Equal(t, client.Business, c.Category())
		assert.Zero(t, c.TotalOrders())
	})

	t.Run("should reject missing fields", func(t *testing.T) {
		_, err := client.NewClient(kernel.ClientID{}, "Acme", "a@b.c", "+1", client.Business)
		require.Error(t, err)

		_, err = client.NewClient(id, "", "a@b.c", "+1", client.Business)
		require.Error(t, err)

		_, err = client.NewClient(id, "Acme", "", "+1", client.Business)
		require.Error(t, err)

		_, err = client.NewClient(id, "Acme", "not-an-email", "+1", client.Business)
		require.Error(t, err)

		_, err = client.NewClient(id, "Acme", "a@b.c", "", client.Business)
		require.Error(t, err)

		_, err = client.NewClient(id, "Acme", "a@b.c", "+1", client.CategoryUnknown)
		require.Error(t, err)
	})
}

func TestClient_RecordOrder(t *testing.T) {
	t.Run("should increment the running count", func(t *testing.T) {
		id, _ := kernel.ClientIDFromString("CL-102")
		c, err := client.NewClient(id, "John Doe", "john@gmail.com", "+15550102", client.Individual)
		require.NoError(t, err)

		c.RecordOrder()
		c.RecordOrder()

		assert.Equal(t, 2, c.TotalOrders())
	})
}

func TestRestoreClient(t *testing.T) {
	id, _ := kernel.ClientIDFromString("CL-103")

	t.Run("should restore accumulated count", func(t *testing.T) {
		c, err := client.RestoreClient(id, "Global Tech Summit", "events@global.com", "+15550103", client.Business, 45)

		require.NoError(t, err)
		assert.Equal(t, 45, c.TotalOrders())
	})

	t.Run("should reject negative counts", func(t *testing.T) {
		_, err := client.RestoreClient(id, "Global Tech Summit", "events@global.com", "+15550103", client.Business, -1)

		require.Error(t, err)
	})
}

func TestCategory(t *testing.T) {
	t.Run("should round-trip wire names", func(t *testing.T) {
		for _, category := range []client.Category{client.Business, client.Individual} {
			parsed, err := client.CategoryFromString(category.String())

			require.NoError(t, err)
			assert.Equal(t, category, parsed)
		}
	})

	t.Run("should reject unrecognized names", func(t *testing.T) {
		_, err := client.CategoryFromString("B2G")
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		require.Error(t, client.CategoryUnknown.Validate())
		assert.Equal(t, "UNKNOWN", client.CategoryUnknown.String())
	})
}

func TestClient_Validate(t *testing.T) {
	t.Run("zero value fails", func(t *testing.T) {
		var c client.Client
		require.ErrorIs(t, c.Validate(), client.ErrClientIsNotConstructed)
	})
}
