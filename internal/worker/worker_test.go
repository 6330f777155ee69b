package worker

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestPool(t *testing.T) {
	p := NewPool(3, zap.NewNop())
	var mu sync.Mutex
	count := 0
	for i := 0; i < 5; i++ {
		p.Submit(func() {
			mu.Lock()
			count++
			mu.Unlock()
		})
	}
	p.Stop()
	require.Equal(t, 5, count)
}

func TestPoolSurvivesPanicAndNil(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	p := NewPool(0, zap.New(core))
	done := false
	p.Submit(nil)
	p.Submit(func() { panic("boom") })
	p.Submit(func() { done = true })
	p.Stop()
	p.Stop()
	require.True(t, done)

	entries := logs.FilterMessage("worker task panicked").All()
	require.Len(t, entries, 1)
	require.Equal(t, "boom", entries[0].ContextMap()["panic"])
	require.NotEmpty(t, entries[0].ContextMap()["stack"])
}

func TestPoolNilLogger(t *testing.T) {
	p := NewPool(1, nil)
	p.Submit(func() { panic("quiet") })
	done := false
	p.Submit(func() { done = true })
	p.Stop()
	require.True(t, done)
}
