package service_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/linemk/foodcart/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestPoller_FiresPeriodically(t *testing.T) {
	poller := service.NewPoller(testLogger(), 10*time.Millisecond)

	var fired atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		poller.Run(ctx, func(ctx context.Context) {
			fired.Add(1)
		})
		close(done)
	}()

	assert.Eventually(t, func() bool { return fired.Load() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

func TestPoller_StopsDeterministically(t *testing.T) {
	poller := service.NewPoller(testLogger(), 5*time.Millisecond)

	var fired atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		poller.Run(ctx, func(ctx context.Context) {
			fired.Add(1)
		})
		close(done)
	}()

	assert.Eventually(t, func() bool { return fired.Load() >= 1 }, time.Second, time.Millisecond)
	cancel()
	<-done

	// После остановки ни одного нового срабатывания быть не должно
	after := fired.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, fired.Load(), "poller must not fire after teardown")
}
