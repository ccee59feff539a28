package domain

import (
	"fmt"
	"sync"
)

// Tracker holds the process-wide pipeline progress counters. Counters are
// mutated exclusively by the pipeline runner: Start once per pipeline at its
// first step, then exactly one of Finish or Fail at its terminal state.
//
// Invariants after every transition: 0 <= finished <= started and
// 0 <= failed <= finished.
type Tracker struct {
	mu       sync.Mutex
	started  int
	finished int
	failed   int
}

// NewTracker creates a zeroed Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Start records a new pipeline entering execution.
func (t *Tracker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.started++
}

// Finish records a pipeline that ran all of its steps successfully.
func (t *Tracker) Finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.finished++
}

// Fail records a pipeline terminated by a step failure. A failed pipeline
// is also finished.
func (t *Tracker) Fail() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.finished++
	t.failed++
}

// Reset zeroes all counters. It is a no-op while any pipeline is in flight
// (started != finished), so a reset can never corrupt an active batch.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started != t.finished {
		return
	}
	t.started = 0
	t.finished = 0
	t.failed = 0
}

// Idle reports whether no pipeline is currently in flight.
func (t *Tracker) Idle() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.started == t.finished
}

// Counts returns a snapshot of the three counters.
func (t *Tracker) Counts() (started, finished, failed int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.started, t.finished, t.failed
}

// Status renders the progress line: "{finished}/{started}", with
// ", failed: {failed}" appended when any pipeline has failed.
func (t *Tracker) Status() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := fmt.Sprintf("%d/%d", t.finished, t.started)
	if t.failed > 0 {
		s += fmt.Sprintf(", failed: %d", t.failed)
	}
	return s
}
