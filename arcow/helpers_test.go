package arcow_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

// lifeCounts tallies every trackedValue that was created, duplicated or destroyed
type lifeCounts struct {
	live     atomic.Int64
	clones   atomic.Int64
	destroys atomic.Int64
}

type trackedValue struct {
	Data   []int
	counts *lifeCounts
}

func newTrackedValue(counts *lifeCounts, data ...int) trackedValue {
	counts.live.Add(1)
	return trackedValue{Data: data, counts: counts}
}

func (v trackedValue) Clone() trackedValue {
	v.counts.clones.Add(1)
	v.counts.live.Add(1)
	return trackedValue{Data: slices.Clone(v.Data), counts: v.counts}
}

func (v trackedValue) Destroy() {
	if v.counts.live.Add(-1) < 0 {
		panic("destroyed more values than were created")
	}
	v.counts.destroys.Add(1)
}

type ints []int

func (i ints) Clone() ints {
	return slices.Clone(i)
}

func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")

		err, isErr := r.(error)
		require.True(t, isErr, "expected to panic with an error, got %v", r)
		require.ErrorIs(t, err, target)
	}()

	fn()
}
