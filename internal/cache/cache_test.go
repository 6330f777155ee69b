package cache

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCache(t *testing.T) {
	c := &FakeCache{}
	require.Panics(t, func() { c.Get(context.Background(), "k") })
	require.Panics(t, func() { c.Set(context.Background(), "k", 1, 0) })
	require.Panics(t, func() { c.Incr(context.Background(), "k") })
	require.NoError(t, c.Close())

	gCalled := false
	sCalled := false
	iCalled := false
	clCalled := false
	c.GetFn = func(ctx context.Context, key string) *redis.StringCmd {
		gCalled = true
		return redis.NewStringResult("v", nil)
	}
	c.SetFn = func(ctx context.Context, key string, val any, exp time.Duration) *redis.StatusCmd {
		sCalled = true
		return redis.NewStatusResult("OK", nil)
	}
	c.IncrFn = func(ctx context.Context, key string) *redis.IntCmd {
		iCalled = true
		return redis.NewIntResult(2, nil)
	}
	c.CloseFn = func() error { clCalled = true; return errors.New("close") }

	require.Equal(t, "v", c.Get(context.Background(), "k").Val())
	require.Equal(t, "OK", c.Set(context.Background(), "k", 1, 0).Val())
	require.Equal(t, int64(2), c.Incr(context.Background(), "a").Val())
	require.EqualError(t, c.Close(), "close")
	require.True(t, gCalled)
	require.True(t, sCalled)
	require.True(t, iCalled)
	require.True(t, clCalled)
}

func TestNop(t *testing.T) {
	ctx := context.Background()
	var c Cache = Nop{}
	require.ErrorIs(t, c.Get(ctx, "k").Err(), redis.Nil)
	require.NoError(t, c.Set(ctx, "k", "v", time.Minute).Err())
	require.NoError(t, c.Incr(ctx, "k").Err())
	require.NoError(t, c.Close())

	gen, err := PlanetGeneration(ctx, c)
	require.NoError(t, err)
	require.Zero(t, gen)
	require.NoError(t, BumpPlanets(ctx, c))

	var dst []string
	hit, err := GetJSON(ctx, c, PlanetListKey(gen), &dst)
	require.NoError(t, err)
	require.False(t, hit)
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	store := map[string][]byte{}
	c := &FakeCache{
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			v, ok := store[key]
			if !ok {
				return redis.NewStringResult("", redis.Nil)
			}
			return redis.NewStringResult(string(v), nil)
		},
		SetFn: func(_ context.Context, key string, val any, ttl time.Duration) *redis.StatusCmd {
			require.Equal(t, time.Minute, ttl)
			store[key] = val.([]byte)
			return redis.NewStatusResult("OK", nil)
		},
	}

	require.Equal(t, "planets:0:7", PlanetKey(0, 7))
	require.Equal(t, "planets:3:all", PlanetListKey(3))

	type item struct {
		Name string `json:"name"`
	}
	require.NoError(t, SetJSON(ctx, c, PlanetKey(0, 7), item{Name: "Mars"}, time.Minute))

	var got item
	hit, err := GetJSON(ctx, c, PlanetKey(0, 7), &got)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, "Mars", got.Name)

	hit, err = GetJSON(ctx, c, PlanetKey(1, 7), &got)
	require.NoError(t, err)
	require.False(t, hit)

	store["bad"] = []byte("{")
	_, err = GetJSON(ctx, c, "bad", &got)
	require.Error(t, err)

	require.Error(t, SetJSON(ctx, c, "k", func() {}, time.Minute))

	c.GetFn = func(context.Context, string) *redis.StringCmd {
		return redis.NewStringResult("", errors.New("down"))
	}
	_, err = GetJSON(ctx, c, "k", &got)
	require.Error(t, err)
}

func TestPlanetGeneration(t *testing.T) {
	ctx := context.Background()
	var gen int64
	c := &FakeCache{
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			require.Equal(t, "planets:gen", key)
			if gen == 0 {
				return redis.NewStringResult("", redis.Nil)
			}
			return redis.NewStringResult(strconv.FormatInt(gen, 10), nil)
		},
		IncrFn: func(_ context.Context, key string) *redis.IntCmd {
			require.Equal(t, "planets:gen", key)
			gen++
			return redis.NewIntResult(gen, nil)
		},
	}

	got, err := PlanetGeneration(ctx, c)
	require.NoError(t, err)
	require.Zero(t, got)

	require.NoError(t, BumpPlanets(ctx, c))
	require.NoError(t, BumpPlanets(ctx, c))
	got, err = PlanetGeneration(ctx, c)
	require.NoError(t, err)
	require.Equal(t, int64(2), got)
	require.NotEqual(t, PlanetListKey(0), PlanetListKey(got))

	c.GetFn = func(context.Context, string) *redis.StringCmd {
		return redis.NewStringResult("", errors.New("down"))
	}
	_, err = PlanetGeneration(ctx, c)
	require.Error(t, err)

	c.IncrFn = func(context.Context, string) *redis.IntCmd {
		return redis.NewIntResult(0, errors.New("down"))
	}
	require.Error(t, BumpPlanets(ctx, c))
}
