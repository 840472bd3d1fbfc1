package processing

import (
	"context"
	"time"
)

// Counter animates a number from 0 up to Target, one unit per Interval.
type Counter struct {
	Target   int
	Interval time.Duration
}

// Next returns the value following current, never exceeding Target.
func (c Counter) Next(current int) int {
	if current >= c.Target {
		return c.Target
	}
	return current + 1
}

// Done reports whether current has reached Target.
func (c Counter) Done(current int) bool {
	return current >= c.Target
}

// Run emits 0, 1, ... Target, one value per Interval. It returns ctx.Err()
// when cancelled before reaching Target.
func (c Counter) Run(ctx context.Context, emit func(int)) error {
	value := 0
	emit(value)
	if c.Done(value) {
		return nil
	}

	ticker := time.NewTicker(max(c.Interval, time.Millisecond))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			value = c.Next(value)
			emit(value)
			if c.Done(value) {
				return nil
			}
		}
	}
}
