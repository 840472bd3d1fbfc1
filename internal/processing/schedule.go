// Package processing drives the cosmetic "analysis in progress" sequence
// shown between submitting the questionnaire and revealing the result: a
// rotating status message followed by a completion notification, and a
// score counter that ticks up to the final value. Every run is cancellable
// and a new run supersedes the previous one.
package processing

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultMessages are the status lines shown while "analysing".
var DefaultMessages = []string{
	"Analyzing Vitals...",
	"Checking Medical History...",
	"Correlating Symptoms...",
	"Generating Action Plan...",
}

const (
	DefaultMessageInterval = 500 * time.Millisecond
	DefaultSettleDelay     = 2500 * time.Millisecond
	DefaultCounterInterval = 20 * time.Millisecond
)

// EventKind distinguishes status updates from completion.
type EventKind int

const (
	EventMessage EventKind = iota
	EventDone
)

// Event is emitted by a running Schedule.
type Event struct {
	Kind    EventKind
	Message string
}

// Schedule describes one processing sequence.
type Schedule struct {
	Messages        []string
	MessageInterval time.Duration
	SettleDelay     time.Duration
}

// DefaultSchedule returns the standard sequence.
func DefaultSchedule() Schedule {
	return Schedule{
		Messages:        DefaultMessages,
		MessageInterval: DefaultMessageInterval,
		SettleDelay:     DefaultSettleDelay,
	}
}

// MessageAt returns the status message shown after elapsed time. Messages
// advance every MessageInterval and hold on the last one.
func (s Schedule) MessageAt(elapsed time.Duration) string {
	if len(s.Messages) == 0 {
		return ""
	}
	if s.MessageInterval <= 0 {
		return s.Messages[len(s.Messages)-1]
	}
	i := int(elapsed / s.MessageInterval)
	return s.Messages[min(i, len(s.Messages)-1)]
}

// Run emits each message at its interval, then EventDone once SettleDelay
// has elapsed since the start. It returns ctx.Err() if cancelled first, in
// which case EventDone is never emitted. emit is called from the calling
// goroutine.
func (s Schedule) Run(ctx context.Context, emit func(Event)) error {
	start := time.Now()
	done := time.NewTimer(s.SettleDelay)
	defer done.Stop()

	if len(s.Messages) > 0 {
		emit(Event{Kind: EventMessage, Message: s.Messages[0]})
	}

	var tick <-chan time.Time
	if s.MessageInterval > 0 && len(s.Messages) > 1 {
		ticker := time.NewTicker(s.MessageInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	next := 1
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
			if next < len(s.Messages) {
				emit(Event{Kind: EventMessage, Message: s.Messages[next]})
				next++
			}
			if next >= len(s.Messages) {
				tick = nil
			}
		case <-done.C:
			zap.L().Named("processing").Debug("schedule settled", zap.Duration("elapsed", time.Since(start)))
			emit(Event{Kind: EventDone})
			return nil
		}
	}
}

// Runner runs at most one Schedule at a time in the background. It is safe
// for concurrent use, but emit must not call back into the same Runner.
type Runner struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Start cancels any run in flight, waits for it to stop, and starts s.
// Events of the new run are delivered to emit from a background goroutine.
func (r *Runner) Start(ctx context.Context, s Schedule, emit func(Event)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopLocked()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer cancel()
		_ = s.Run(runCtx, emit)
	}()
}

// Stop cancels the current run, if any, and waits for it to return.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopLocked()
}

func (r *Runner) stopLocked() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.wg.Wait()
}
