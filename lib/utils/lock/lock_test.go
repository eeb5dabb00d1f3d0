package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	t.Run(`serializes one key`, func(t *testing.T) {
		var running, maxRunning int32
		wg := sync.WaitGroup{}
		for n := 0; n < 5; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := WithDelay(context.Background(), "register:a@b.c", 5*time.Second, func() error {
					current := atomic.AddInt32(&running, 1)
					for {
						prev := atomic.LoadInt32(&maxRunning)
						if current <= prev || atomic.CompareAndSwapInt32(&maxRunning, prev, current) {
							break
						}
					}
					time.Sleep(10 * time.Millisecond)
					atomic.AddInt32(&running, -1)
					return nil
				})
				require.True(t, ok)
				require.Nil(t, err)
			}()
		}
		wg.Wait()
		require.Equal(t, int32(1), maxRunning)
	})

	t.Run(`timeout`, func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan struct{})
		go func() {
			_, _ = WithDelay(context.Background(), "busy", time.Second, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started
		ok, err := WithDelay(context.Background(), "busy", 100*time.Millisecond, func() error {
			return errors.New("must not run")
		})
		require.False(t, ok)
		require.Nil(t, err)
		close(release)
	})

	t.Run(`code error returned`, func(t *testing.T) {
		ok, err := WithDelay(context.Background(), "fail", time.Second, func() error {
			return errors.New("boom")
		})
		require.True(t, ok)
		require.EqualError(t, err, "boom")
	})
}
