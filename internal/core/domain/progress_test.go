package domain_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/parsnip/internal/core/domain"
)

func TestTracker_Transitions(t *testing.T) {
	tr := domain.NewTracker()

	started, finished, failed := tr.Counts()
	assert.Zero(t, started)
	assert.Zero(t, finished)
	assert.Zero(t, failed)
	assert.True(t, tr.Idle())

	tr.Start()
	assert.False(t, tr.Idle())

	tr.Finish()
	assert.True(t, tr.Idle())

	tr.Start()
	tr.Fail()

	started, finished, failed = tr.Counts()
	assert.Equal(t, 2, started)
	assert.Equal(t, 2, finished)
	assert.Equal(t, 1, failed)
}

func TestTracker_FailCountsAsFinished(t *testing.T) {
	tr := domain.NewTracker()

	tr.Start()
	tr.Fail()

	// A failed pipeline still reaches a terminal state.
	assert.True(t, tr.Idle())
	_, finished, failed := tr.Counts()
	assert.Equal(t, 1, finished)
	assert.Equal(t, 1, failed)
}

func TestTracker_Status(t *testing.T) {
	tr := domain.NewTracker()
	assert.Equal(t, "0/0", tr.Status())

	tr.Start()
	tr.Start()
	tr.Finish()
	assert.Equal(t, "1/2", tr.Status())

	tr.Fail()
	assert.Equal(t, "2/2, failed: 1", tr.Status())
}

func TestTracker_ResetIsGuarded(t *testing.T) {
	tr := domain.NewTracker()

	tr.Start()
	tr.Reset() // in flight: must not zero anything

	started, _, _ := tr.Counts()
	assert.Equal(t, 1, started)

	tr.Finish()
	tr.Reset()

	started, finished, failed := tr.Counts()
	assert.Zero(t, started)
	assert.Zero(t, finished)
	assert.Zero(t, failed)
}

func TestTracker_ConcurrentUpdates(t *testing.T) {
	tr := domain.NewTracker()

	const n = 64
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tr.Start()
			if i%4 == 0 {
				tr.Fail()
			} else {
				tr.Finish()
			}
		}(i)
	}
	wg.Wait()

	started, finished, failed := tr.Counts()
	assert.Equal(t, n, started)
	assert.Equal(t, n, finished)
	assert.Equal(t, n/4, failed)
	assert.True(t, tr.Idle())
}
