package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestDefaultProducts(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	products := DefaultProducts(now)

	require.Len(t, products, 10)
	for _, p := range products {
		assert.NotEmpty(t, p.Nombre)
		assert.NotEmpty(t, p.Categoria)
		assert.NotEmpty(t, p.Icono)
		assert.Greater(t, p.Precio, 0.0)
		assert.True(t, p.Activo)
		assert.Equal(t, now, p.CreatedAt)
		assert.Equal(t, now, p.UpdatedAt)
	}
}

func TestEnsureSeeded(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("empty collection gets the default catalog", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "resort.productos", mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		n, err := EnsureSeeded(context.Background(), mt.Coll)
		require.NoError(mt, err)
		assert.Equal(mt, 10, n)
	})

	mt.Run("non-empty collection is left untouched", func(mt *mtest.T) {
		// dos comprobaciones seguidas; ninguna inserta
		for i := 0; i < 2; i++ {
			mt.AddMockResponses(mtest.CreateCursorResponse(0, "resort.productos", mtest.FirstBatch,
				bson.D{{Key: "n", Value: int64(12)}},
			))

			n, err := EnsureSeeded(context.Background(), mt.Coll)
			require.NoError(mt, err)
			assert.Zero(mt, n)
		}
	})

	mt.Run("count failure is returned", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized",
		}))

		_, err := EnsureSeeded(context.Background(), mt.Coll)
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "count productos")
	})
}

func TestDatabaseSeedWithoutConnection(t *testing.T) {
	db := NewDatabase(nil)
	require.NoError(t, db.Connect(context.Background(), "", DefaultDBName))

	_, err := db.Seed(context.Background())
	assert.ErrorIs(t, err, ErrNoDatabase)
}
