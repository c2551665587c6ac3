package main

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTurnTimerFiresExactlyOnce(t *testing.T) {
	t.Parallel()

	var fired atomic.Int32
	startTurnTimer(3, time.Millisecond, func() {
		fired.Add(1)
	})

	assert.Eventually(t, func() bool {
		return fired.Load() == 1
	}, time.Second, time.Millisecond)

	time.Sleep(20 * time.Millisecond)
	assert.EqualValues(t, 1, fired.Load(), "timer must never fire twice")
}

func TestTurnTimerCancelPreventsFiring(t *testing.T) {
	t.Parallel()

	var fired atomic.Int32
	timer := startTurnTimer(60, 10*time.Millisecond, func() {
		fired.Add(1)
	})

	timer.cancel()

	time.Sleep(50 * time.Millisecond)
	assert.EqualValues(t, 0, fired.Load())
}

func TestTurnTimerCancelIsIdempotent(t *testing.T) {
	t.Parallel()

	timer := startTurnTimer(60, time.Minute, func() {})

	timer.cancel()
	assert.NotPanics(t, func() {
		timer.cancel()
		timer.cancel()
	})
}

func TestTurnTimerCancelAfterFiring(t *testing.T) {
	t.Parallel()

	var fired atomic.Int32
	timer := startTurnTimer(1, time.Millisecond, func() {
		fired.Add(1)
	})

	assert.Eventually(t, func() bool {
		return fired.Load() == 1
	}, time.Second, time.Millisecond)

	assert.NotPanics(t, timer.cancel)
}
