package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwave/inkwave-api/internal/testutil"
)

func TestWaitlistJoinAndCount(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewWaitlistService(db, nil)

	entry, err := svc.Join("Alice Zhang", "alice@example.com")
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)

	_, err = svc.Join("Bob Li", "bob@example.com")
	require.NoError(t, err)

	count, err := svc.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestWaitlistJoinDuplicateEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewWaitlistService(db, nil)

	_, err := svc.Join("Alice Zhang", "alice@example.com")
	require.NoError(t, err)

	_, err = svc.Join("Another Alice", "alice@example.com")
	assert.ErrorIs(t, err, ErrEmailTaken)

	count, err := svc.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
