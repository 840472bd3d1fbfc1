package processing

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fastSchedule() Schedule {
	return Schedule{
		Messages:        []string{"a", "b", "c"},
		MessageInterval: 5 * time.Millisecond,
		SettleDelay:     100 * time.Millisecond,
	}
}

// recorder collects events from any goroutine.
type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) emit(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) snapshot() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

func (r *recorder) doneCount() int {
	n := 0
	for _, e := range r.snapshot() {
		if e.Kind == EventDone {
			n++
		}
	}
	return n
}

func TestSchedule_RunEmitsMessagesThenDone(t *testing.T) {
	rec := &recorder{}
	err := fastSchedule().Run(context.Background(), rec.emit)
	require.NoError(t, err)

	events := rec.snapshot()
	require.NotEmpty(t, events)
	assert.Equal(t, Event{Kind: EventMessage, Message: "a"}, events[0])
	assert.Equal(t, EventDone, events[len(events)-1].Kind)

	var messages []string
	for _, e := range events {
		if e.Kind == EventMessage {
			messages = append(messages, e.Message)
		}
	}
	assert.Equal(t, []string{"a", "b", "c"}, messages)
}

func TestSchedule_RunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rec := &recorder{}

	s := fastSchedule()
	s.SettleDelay = time.Hour
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := s.Run(ctx, rec.emit)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, rec.doneCount())
}

func TestSchedule_MessageAt(t *testing.T) {
	s := DefaultSchedule()
	assert.Equal(t, "Analyzing Vitals...", s.MessageAt(0))
	assert.Equal(t, "Checking Medical History...", s.MessageAt(500*time.Millisecond))
	assert.Equal(t, "Correlating Symptoms...", s.MessageAt(1200*time.Millisecond))
	assert.Equal(t, "Generating Action Plan...", s.MessageAt(1500*time.Millisecond))
	assert.Equal(t, "Generating Action Plan...", s.MessageAt(10*time.Second))

	assert.Empty(t, Schedule{}.MessageAt(time.Second))
}

func TestRunner_RestartSupersedesPreviousRun(t *testing.T) {
	var r Runner
	first := &recorder{}
	second := &recorder{}

	slow := fastSchedule()
	slow.SettleDelay = time.Hour
	r.Start(context.Background(), slow, first.emit)
	r.Start(context.Background(), fastSchedule(), second.emit)

	require.Eventually(t, func() bool { return second.doneCount() == 1 }, time.Second, 5*time.Millisecond)
	r.Stop()

	assert.Zero(t, first.doneCount(), "superseded run must not complete")
}

func TestRunner_ConcurrentStartsLeaveOneRun(t *testing.T) {
	var r Runner
	slow := fastSchedule()
	slow.SettleDelay = time.Hour

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Start(context.Background(), slow, (&recorder{}).emit)
		}()
	}
	wg.Wait()

	// every superseded run was cancelled, so Stop leaves nothing behind
	r.Stop()
	goleak.VerifyNone(t)
}

func TestRunner_StopIsIdempotent(t *testing.T) {
	var r Runner
	r.Stop()

	rec := &recorder{}
	s := fastSchedule()
	s.SettleDelay = time.Hour
	r.Start(context.Background(), s, rec.emit)
	r.Stop()
	r.Stop()

	assert.Zero(t, rec.doneCount())
}

func TestCounter_Run(t *testing.T) {
	var values []int
	c := Counter{Target: 5, Interval: time.Millisecond}
	require.NoError(t, c.Run(context.Background(), func(v int) { values = append(values, v) }))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, values)
}

func TestCounter_ZeroTarget(t *testing.T) {
	var values []int
	c := Counter{Target: 0, Interval: time.Millisecond}
	require.NoError(t, c.Run(context.Background(), func(v int) { values = append(values, v) }))
	assert.Equal(t, []int{0}, values)
}

func TestCounter_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := Counter{Target: 1000, Interval: time.Millisecond}

	var last int
	err := c.Run(ctx, func(v int) {
		last = v
		if v == 3 {
			cancel()
		}
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, last, 1000)
}

func TestCounter_Next(t *testing.T) {
	c := Counter{Target: 2}
	assert.Equal(t, 1, c.Next(0))
	assert.Equal(t, 2, c.Next(1))
	assert.Equal(t, 2, c.Next(2))
	assert.True(t, c.Done(2))
	assert.False(t, c.Done(1))
}
