package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// stubClient implements redisClient for testing.
type stubClient struct {
	pingErr error
	pingCtx context.Context
	closed  bool
}

func (s *stubClient) Ping(ctx context.Context) *redis.StatusCmd {
	s.pingCtx = ctx
	return redis.NewStatusResult("PONG", s.pingErr)
}

func (s *stubClient) Get(ctx context.Context, key string) *redis.StringCmd {
	return redis.NewStringResult("", nil)
}

func (s *stubClient) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	return redis.NewStatusResult("OK", nil)
}

func (s *stubClient) Incr(ctx context.Context, key string) *redis.IntCmd {
	return redis.NewIntResult(1, nil)
}

func (s *stubClient) Close() error {
	s.closed = true
	return nil
}

func TestNewRedisClient(t *testing.T) {
	restore := func() { redisNewClient = func(o *redis.Options) redisClient { return redis.NewClient(o) } }

	t.Run("success", func(t *testing.T) {
		var opts *redis.Options
		stub := &stubClient{}
		redisNewClient = func(o *redis.Options) redisClient {
			opts = o
			return stub
		}
		defer restore()

		c, err := NewRedisClient("127.0.0.1:6379", "secret", 1)
		require.NoError(t, err)
		require.Equal(t, stub, c)
		require.Equal(t, "127.0.0.1:6379", opts.Addr)
		require.Equal(t, "secret", opts.Password)
		require.Equal(t, 1, opts.DB)
		require.False(t, stub.closed)
	})

	t.Run("ping is bounded by a timeout", func(t *testing.T) {
		stub := &stubClient{}
		redisNewClient = func(*redis.Options) redisClient { return stub }
		defer restore()

		start := time.Now()
		_, err := NewRedisClient("addr", "", 0)
		require.NoError(t, err)

		require.NotNil(t, stub.pingCtx)
		deadline, ok := stub.pingCtx.Deadline()
		require.True(t, ok)
		require.WithinDuration(t, start.Add(5*time.Second), deadline, time.Second)
		// 回傳後 ping 的 context 已取消
		require.ErrorIs(t, stub.pingCtx.Err(), context.Canceled)
	})

	t.Run("ping fail closes the client", func(t *testing.T) {
		stub := &stubClient{pingErr: errors.New("fail")}
		redisNewClient = func(o *redis.Options) redisClient { return stub }
		defer restore()

		c, err := NewRedisClient("addr", "", 0)
		require.EqualError(t, err, "fail")
		require.Nil(t, c)
		require.True(t, stub.closed)
	})
}
