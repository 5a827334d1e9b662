package shutdown

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dessert-clicker/internal/logger"
)

func TestShutdownReverseOrderOnce(t *testing.T) {
	m := NewManager(logger.NoOp{}, time.Second)

	var mu sync.Mutex
	var order []string
	record := func(name string) Func {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		}
	}

	m.Register("session", record("session"))
	m.Register("gui", record("gui"))
	m.Register("app", record("app"))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"app", "gui", "session"}, order)

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownTimeout(t *testing.T) {
	m := NewManager(logger.NoOp{}, 20*time.Millisecond)

	release := make(chan struct{})
	defer close(release)

	ran := false
	m.Register("fast", Func(func() { ran = true }))
	m.Register("stuck", Func(func() { <-release }))

	start := time.Now()
	m.Shutdown()

	assert.True(t, ran)
	assert.Less(t, time.Since(start), time.Second)
}

func TestListenStop(t *testing.T) {
	m := NewManager(logger.NoOp{}, 0)
	stop := m.Listen()
	stop()
	stop()

	select {
	case <-m.Done():
		t.Fatal("shutdown ran without a signal")
	default:
	}
}
