package postgres

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockOpener(t *testing.T, calls *int32, failFirst bool) OpenFunc {
	t.Helper()
	return func(ctx context.Context) (*sql.DB, error) {
		n := atomic.AddInt32(calls, 1)
		if failFirst && n == 1 {
			return nil, errors.New("connection refused")
		}
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		mock.ExpectClose()
		return db, nil
	}
}

func TestConnector_SingleInitialization(t *testing.T) {
	var calls int32
	c := NewConnectorWithOpener(mockOpener(t, &calls, false))
	defer c.Close()

	var wg sync.WaitGroup
	results := make([]*sql.DB, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			db, err := c.Get(context.Background())
			assert.NoError(t, err)
			results[i] = db
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, db := range results {
		assert.Same(t, results[0], db)
	}
}

func TestConnector_RetryAfterFailure(t *testing.T) {
	var calls int32
	c := NewConnectorWithOpener(mockOpener(t, &calls, true))
	defer c.Close()

	_, err := c.Get(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnect)

	db, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, db)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestConnector_CloseResets(t *testing.T) {
	var calls int32
	c := NewConnectorWithOpener(mockOpener(t, &calls, false))

	first, err := c.Get(context.Background())
	require.NoError(t, err)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	second, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	require.NoError(t, c.Close())
}

func TestConnector_Ping(t *testing.T) {
	var calls int32
	c := NewConnectorWithOpener(mockOpener(t, &calls, false))
	defer c.Close()

	assert.NoError(t, c.Ping(context.Background()))
}
