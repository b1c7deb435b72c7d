// Package trigger implements the auto-trigger coordinator: a debounced,
// cancellable, at-most-one-in-flight scheduler that decides when to
// automatically begin a new capture session.
package trigger

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jmhartley/utter/internal/service"
)

// State identifies the coordinator's position in its trigger cycle.
type State int

// Coordinator states.
const (
	StateIdle State = iota
	StateScheduled
	StateTriggering
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScheduled:
		return "scheduled"
	case StateTriggering:
		return "triggering"
	default:
		return "unknown"
	}
}

// DefaultDelay is the debounce between scheduling a trigger and firing it.
const DefaultDelay = 1500 * time.Millisecond

// Coordinator schedules at most one capture trigger cycle at a time. All
// state transitions happen under a single mutex; concurrent callers serialize
// through it rather than racing on the state field. Cancellation is
// synchronously observable: after Cancel returns, the next TriggerIfNeeded
// sees Idle.
type Coordinator struct {
	lifecycle  service.Lifecycle
	cancelWait context.CancelFunc
	begin      chan struct{}
	delay      time.Duration
	state      State
	epoch      uint64
	mu         sync.Mutex
}

// New creates an idle coordinator gated on the given lifecycle signals.
func New(lifecycle service.Lifecycle, delay time.Duration) *Coordinator {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Coordinator{
		lifecycle: lifecycle,
		delay:     delay,
		begin:     make(chan struct{}, 1),
	}
}

// BeginCapture returns the channel that receives one signal per fired
// trigger. The capture layer consumes it and must call OnCaptureCompleted
// when its session ends; a consumer that never reports completion blocks all
// future auto-triggers, which is an accepted limitation rather than a
// deadlock the coordinator resolves itself.
func (c *Coordinator) BeginCapture() <-chan struct{} {
	return c.begin
}

// State returns the current coordinator state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// TriggerIfNeeded starts a trigger cycle when the coordinator is idle and all
// preconditions hold. Calls while a cycle is scheduled or in flight are
// no-ops, not queued retries. Precondition failures are expected steady-state
// conditions and are logged, never escalated.
func (c *Coordinator) TriggerIfNeeded(isCaptureActive bool) {
	c.mu.Lock()

	if c.state != StateIdle {
		state := c.state
		c.mu.Unlock()
		slog.Debug("auto-trigger skipped: cycle already in flight", "state", state)
		return
	}

	switch {
	case !c.lifecycle.FirstLaunchComplete():
		c.mu.Unlock()
		slog.Debug("auto-trigger skipped: first launch not completed")
		return
	case !c.lifecycle.IsForeground():
		c.mu.Unlock()
		slog.Debug("auto-trigger skipped: app not in foreground")
		return
	case !c.lifecycle.PermissionsGranted():
		c.mu.Unlock()
		slog.Debug("auto-trigger skipped: permissions not granted")
		return
	case isCaptureActive:
		c.mu.Unlock()
		slog.Debug("auto-trigger skipped: capture session already active")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancelWait = cancel
	c.state = StateScheduled
	epoch := c.epoch
	c.lifecycle.RecordScheduledCapture()
	c.mu.Unlock()

	go c.waitAndFire(ctx, epoch)
}

// waitAndFire sleeps out the debounce, re-validates, and emits the
// begin-capture signal. The epoch guard keeps a cancelled waiter from
// clobbering state set by a newer cycle.
func (c *Coordinator) waitAndFire(ctx context.Context, epoch uint64) {
	timer := time.NewTimer(c.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.epoch != epoch || c.state != StateScheduled {
		return
	}

	if !c.lifecycle.IsForeground() {
		c.state = StateIdle
		c.cancelWait = nil
		slog.Debug("auto-trigger cancelled: app left foreground during delay")
		return
	}

	c.state = StateTriggering
	c.cancelWait = nil
	select {
	case c.begin <- struct{}{}:
	default:
	}
	slog.Debug("auto-trigger fired")
}

// Cancel aborts any pending or in-flight cycle and forces Idle immediately.
// Used when the app backgrounds or the user manually starts a capture.
func (c *Coordinator) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateIdle {
		return
	}
	if c.cancelWait != nil {
		c.cancelWait()
		c.cancelWait = nil
	}
	c.epoch++
	c.state = StateIdle
	slog.Debug("auto-trigger cancelled")
}

// OnCaptureCompleted reports that the externally-run capture session has
// finished, returning the coordinator to Idle so future triggers may fire.
func (c *Coordinator) OnCaptureCompleted() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateTriggering {
		c.state = StateIdle
	}
}
