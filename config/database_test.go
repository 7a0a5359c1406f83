package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseDegradedWithoutURI(t *testing.T) {
	db := NewDatabase(nil)
	assert.Equal(t, StateUninitialized, db.State())

	require.NoError(t, db.Connect(context.Background(), "", "resort"))
	assert.Equal(t, StateDegraded, db.State())
	assert.Equal(t, "resort", db.Name())

	_, err := db.Collection(GuestCollection)
	assert.ErrorIs(t, err, ErrNoDatabase)
	assert.ErrorIs(t, db.Ping(context.Background()), ErrNoDatabase)
}

func TestDatabaseDegradedOnBadURI(t *testing.T) {
	db := NewDatabase(nil)

	err := db.Connect(context.Background(), "not-a-mongo-uri", "resort")
	require.Error(t, err)
	assert.Equal(t, StateDegraded, db.State())

	_, err = db.Collection(ProductCollection)
	assert.ErrorIs(t, err, ErrNoDatabase)
}

func TestDatabaseCloseIsIdempotent(t *testing.T) {
	db := NewDatabase(nil)
	require.NoError(t, db.Close(context.Background()))
	require.NoError(t, db.Close(context.Background()))
	assert.Equal(t, StateClosed, db.State())

	_, err := db.Collection(TransactionCollection)
	assert.ErrorIs(t, err, ErrNoDatabase)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "uninitialized", StateUninitialized.String())
	assert.Equal(t, "connected", StateConnected.String())
	assert.Equal(t, "degraded", StateDegraded.String())
	assert.Equal(t, "closed", StateClosed.String())
}
