package timing

import (
	"sync"
	"time"
)

// Span is an in-flight measurement returned by StartTiming.
type Span struct {
	tracker   *Tracker
	operation string
	start     time.Time
}

// End records the elapsed time of the span and returns it.
func (s Span) End() time.Duration {
	duration := s.tracker.now().Sub(s.start)
	s.tracker.record(s.operation, duration)
	return duration
}

// Tracker accumulates durations per operation name. It is safe for
// concurrent use.
type Tracker struct {
	timings map[string][]time.Duration
	mu      sync.RWMutex
	now     func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		timings: make(map[string][]time.Duration),
		now:     time.Now,
	}
}

func (tt *Tracker) StartTiming(operation string) Span {
	return Span{tracker: tt, operation: operation, start: tt.now()}
}

func (tt *Tracker) record(operation string, duration time.Duration) {
	tt.mu.Lock()
	tt.timings[operation] = append(tt.timings[operation], duration)
	tt.mu.Unlock()
}

func (tt *Tracker) GetTimings(operation string) []time.Duration {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	timings := tt.timings[operation]
	if timings == nil {
		return nil
	}

	result := make([]time.Duration, len(timings))
	copy(result, timings)
	return result
}

// Totals returns the summed duration of every operation seen so far.
func (tt *Tracker) Totals() map[string]time.Duration {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	result := make(map[string]time.Duration, len(tt.timings))
	for operation, timings := range tt.timings {
		var total time.Duration
		for _, duration := range timings {
			total += duration
		}
		result[operation] = total
	}
	return result
}

func (tt *Tracker) GetAverageTime(operation string) time.Duration {
	timings := tt.GetTimings(operation)
	if len(timings) == 0 {
		return 0
	}

	var total time.Duration
	for _, duration := range timings {
		total += duration
	}

	return total / time.Duration(len(timings))
}
