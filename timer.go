package main

import (
	"sync"
	"time"
)

// turnTimer is the server-authoritative countdown for one turn. It
// ticks once per interval, decrementing the remaining whole seconds,
// and calls expired exactly once when they run out.
type turnTimer struct {
	stop chan struct{}
	once sync.Once
}

func startTurnTimer(seconds int, interval time.Duration, expired func()) *turnTimer {
	t := &turnTimer{
		stop: make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		remaining := seconds
		for {
			select {
			case <-t.stop:
				return
			case <-ticker.C:
				remaining--
				if remaining <= 0 {
					t.cancel()
					expired()
					return
				}
			}
		}
	}()

	return t
}

// cancel is safe to call multiple times and after the timer has fired.
func (t *turnTimer) cancel() {
	t.once.Do(func() {
		close(t.stop)
	})
}
