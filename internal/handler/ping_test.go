package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"planetary-api/internal/cache"
	"planetary-api/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newPingDB(t *testing.T) (*database.Conn, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return database.New(db, database.DriverSQLite), mock
}

func TestPingHandler(t *testing.T) {
	e := echo.New()

	t.Run("db unhealthy", func(t *testing.T) {
		db, mock := newPingDB(t)
		mock.ExpectPing().WillReturnError(errors.New("fail"))
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		core, logs := observer.New(zap.ErrorLevel)
		err := PingHandler(db, &cache.FakeCache{}, zap.New(core))(e.NewContext(req, rec))
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "database unhealthy")
		require.Equal(t, 1, logs.FilterMessage("database ping").Len())
	})

	t.Run("cache unhealthy", func(t *testing.T) {
		db, mock := newPingDB(t)
		mock.ExpectPing()
		cch := &cache.FakeCache{SetFn: func(ctx context.Context, key string, val any, exp time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("", errors.New("set"))
		}}
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		core, logs := observer.New(zap.ErrorLevel)
		err := PingHandler(db, cch, zap.New(core))(e.NewContext(req, rec))
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "cache unhealthy")
		require.Equal(t, 1, logs.FilterMessage("cache ping").Len())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ok", func(t *testing.T) {
		db, mock := newPingDB(t)
		mock.ExpectPing()
		cacheCalled := false
		cch := &cache.FakeCache{SetFn: func(ctx context.Context, key string, val any, exp time.Duration) *redis.StatusCmd {
			cacheCalled = true
			require.Equal(t, pingKey, key)
			return redis.NewStatusResult("OK", nil)
		}}
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		err := PingHandler(db, cch, zap.NewNop())(e.NewContext(req, rec))
		require.NoError(t, err)
		require.True(t, cacheCalled)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "pong")
	})

	t.Run("nop cache", func(t *testing.T) {
		db, mock := newPingDB(t)
		mock.ExpectPing()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, PingHandler(db, cache.Nop{}, zap.NewNop())(e.NewContext(req, rec)))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
