package arcow_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arcow/arcow"
)

func TestBasic(t *testing.T) {
	a := arcow.NewFunc(32, arcow.CopyValue[int])
	b := a.Clone()
	c := b.Clone()
	d := a.Clone()

	d.Update(func(value *int) {
		*value = 64
	})

	require.Equal(t, 32, *a.Get())
	require.Equal(t, 32, *b.Get())
	require.Equal(t, 32, *c.Get())
	require.Equal(t, 64, *d.Get())
	require.Equal(t, 3, a.Count())
	require.Equal(t, 1, d.Count())

	for _, handle := range []*arcow.Arcow[int]{a, b, c, d} {
		handle.Release()
	}
}

func TestDropping(t *testing.T) {
	var counts lifeCounts

	a := arcow.New(newTrackedValue(&counts))
	require.Equal(t, int64(1), counts.live.Load())

	b := a.Clone()
	c := b.Clone()
	d := a.Clone()
	e := a.Clone()
	require.Equal(t, int64(1), counts.live.Load())

	e.Release()
	require.Equal(t, int64(1), counts.live.Load())

	d.Update(func(value *trackedValue) {})
	require.Equal(t, int64(2), counts.live.Load())

	b.Release()
	require.Equal(t, int64(2), counts.live.Load())

	c.Release()
	require.Equal(t, int64(2), counts.live.Load())

	d.Release()
	require.Equal(t, int64(1), counts.live.Load())

	a.Release()
	require.Equal(t, int64(0), counts.live.Load())
	require.Equal(t, int64(2), counts.destroys.Load())
	require.Equal(t, int64(1), counts.clones.Load())
}

func TestSplitScenario(t *testing.T) {
	a := arcow.New(ints{1, 2, 3})
	defer a.Release()
	b := a.Clone()
	defer b.Release()
	c := a.Clone()
	defer c.Release()

	require.Equal(t, 3, a.Count())
	oldValue := b.Get()

	borrow := a.Mut()
	require.Equal(t, 1, a.Count())
	require.Equal(t, 2, b.Count())
	require.Equal(t, 2, c.Count())
	require.NotSame(t, oldValue, borrow.Value())

	require.Equal(t, ints{1, 2, 3}, *b.Get())
	require.Equal(t, ints{1, 2, 3}, *c.Get())

	(*borrow.Value())[0] = 9
	borrow.Release()

	require.Equal(t, ints{9, 2, 3}, *a.Get())
	require.Equal(t, ints{1, 2, 3}, *b.Get())
	require.Equal(t, ints{1, 2, 3}, *c.Get())
	require.Same(t, oldValue, b.Get())
	require.Same(t, b.Get(), c.Get())
}

func TestRoundTrip(t *testing.T) {
	var counts lifeCounts

	original := arcow.New(newTrackedValue(&counts, 4, 5, 6))
	clones := []*arcow.Arcow[trackedValue]{original.Clone(), original.Clone(), original.Clone()}

	for _, handle := range append(clones, original) {
		require.Equal(t, []int{4, 5, 6}, handle.Get().Data)
	}

	original.Update(func(value *trackedValue) {
		value.Data = append(value.Data, 7)
	})

	require.Equal(t, []int{4, 5, 6, 7}, original.Get().Data)
	for _, handle := range clones {
		require.Equal(t, []int{4, 5, 6}, handle.Get().Data)
		require.Equal(t, 3, handle.Count())
	}

	original.Release()
	for _, handle := range clones {
		handle.Release()
	}
	require.Equal(t, int64(0), counts.live.Load())
}

func TestUniqueWriteIsInPlace(t *testing.T) {
	var counts lifeCounts

	handle := arcow.New(newTrackedValue(&counts, 1))
	defer handle.Release()

	before := handle.Get()
	for i := 0; i < 5; i++ {
		handle.Update(func(value *trackedValue) {
			value.Data[0]++
		})
	}

	require.Same(t, before, handle.Get())
	require.Equal(t, []int{6}, handle.Get().Data)
	require.Equal(t, int64(0), counts.clones.Load())
	require.Equal(t, 1, handle.Count())
}

func TestSharedWriteSplitsOnce(t *testing.T) {
	var counts lifeCounts

	handle := arcow.New(newTrackedValue(&counts, 1))
	defer handle.Release()
	other := handle.Clone()
	defer other.Release()

	handle.Update(func(value *trackedValue) {
		value.Data[0] = 2
	})
	afterSplit := handle.Get()
	require.Equal(t, int64(1), counts.clones.Load())

	handle.Update(func(value *trackedValue) {
		value.Data[0] = 3
	})
	require.Same(t, afterSplit, handle.Get())
	require.Equal(t, int64(1), counts.clones.Load())

	require.Equal(t, []int{3}, handle.Get().Data)
	require.Equal(t, []int{1}, other.Get().Data)
	require.Equal(t, 1, handle.Count())
	require.Equal(t, 1, other.Count())
}

func TestReadNeverDuplicates(t *testing.T) {
	var counts lifeCounts

	handle := arcow.New(newTrackedValue(&counts, 1, 2))
	defer handle.Release()
	other := handle.Clone()
	defer other.Release()

	for i := 0; i < 10; i++ {
		require.Equal(t, []int{1, 2}, handle.Get().Data)
		require.Equal(t, []int{1, 2}, other.Get().Data)
	}

	require.Equal(t, 2, handle.Count())
	require.Equal(t, int64(0), counts.clones.Load())
	require.Same(t, handle.Get(), other.Get())
}

func TestCloneReleaseSequences(t *testing.T) {
	testCases := map[string]string{
		"ReleaseOnly":      "r",
		"CloneThenRelease": "crr",
		"Interleaved":      "ccrcrrr",
		"DeepStack":        "ccccccrrrrrrr",
		"Sawtooth":         "crcrcrcrr",
	}

	for name, ops := range testCases {
		t.Run(name, func(t *testing.T) {
			var counts lifeCounts

			handles := []*arcow.Arcow[trackedValue]{arcow.New(newTrackedValue(&counts))}
			clones, releases := 0, 0

			for _, op := range ops {
				switch op {
				case 'c':
					handles = append(handles, handles[len(handles)-1].Clone())
					clones++
				case 'r':
					last := handles[len(handles)-1]
					handles = handles[:len(handles)-1]
					last.Release()
					releases++
				}

				expected := 1 + clones - releases
				if expected > 0 {
					require.Equal(t, expected, handles[0].Count())
					require.Equal(t, int64(0), counts.destroys.Load())
				} else {
					require.Equal(t, int64(1), counts.destroys.Load())
				}
			}

			require.Empty(t, handles)
			require.Equal(t, int64(1), counts.destroys.Load())
			require.Equal(t, int64(0), counts.live.Load())
		})
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	var counts lifeCounts

	handle := arcow.New(newTrackedValue(&counts))
	other := handle.Clone()

	handle.Release()
	handle.Release()
	require.True(t, handle.Released())
	require.Equal(t, 1, other.Count())
	require.Equal(t, int64(0), counts.destroys.Load())

	other.Release()
	require.Equal(t, int64(1), counts.destroys.Load())

	var nilHandle *arcow.Arcow[int]
	nilHandle.Release()
}

func TestUseAfterRelease(t *testing.T) {
	handle := arcow.NewFunc(1, arcow.CopyValue[int])
	handle.Release()

	requirePanicsWith(t, arcow.ErrReleased, func() { handle.Get() })
	requirePanicsWith(t, arcow.ErrReleased, func() { handle.Count() })
	requirePanicsWith(t, arcow.ErrReleased, func() { handle.Clone() })
	requirePanicsWith(t, arcow.ErrReleased, func() { handle.Mut() })
	requirePanicsWith(t, arcow.ErrReleased, func() { handle.Set(2) })

	_, err := handle.TryClone()
	require.ErrorIs(t, err, arcow.ErrReleased)
	_, err = handle.TryMut()
	require.ErrorIs(t, err, arcow.ErrReleased)

	require.NoError(t, handle.Validate())
}

func TestNewWithOptionsUsesCloner(t *testing.T) {
	var counts lifeCounts

	handle := arcow.NewWithOptions(newTrackedValue(&counts, 1), arcow.Options[trackedValue]{})
	defer handle.Release()
	other := handle.Clone()
	defer other.Release()

	handle.Update(func(value *trackedValue) {
		value.Data[0] = 2
	})

	require.Equal(t, int64(1), counts.clones.Load())
	require.Equal(t, []int{1}, other.Get().Data)
	require.Equal(t, []int{2}, handle.Get().Data)
}

func TestSet(t *testing.T) {
	var counts lifeCounts

	handle := arcow.New(newTrackedValue(&counts, 1))
	other := handle.Clone()

	handle.Set(newTrackedValue(&counts, 2))
	require.Equal(t, int64(0), counts.clones.Load())
	require.Equal(t, int64(0), counts.destroys.Load())
	require.Equal(t, []int{2}, handle.Get().Data)
	require.Equal(t, []int{1}, other.Get().Data)
	require.Equal(t, 1, other.Count())

	inPlace := handle.Get()
	replaced := *handle.Get()
	handle.Set(newTrackedValue(&counts, 3))
	require.Same(t, inPlace, handle.Get())
	require.Equal(t, int64(0), counts.destroys.Load())
	require.Equal(t, []int{3}, handle.Get().Data)

	handle.Release()
	other.Release()
	require.Equal(t, int64(2), counts.destroys.Load())

	// The replaced value belongs to the caller again
	require.Equal(t, int64(1), counts.live.Load())
	replaced.Destroy()
	require.Equal(t, int64(0), counts.live.Load())
}

func TestSetSameValueDestroysOnce(t *testing.T) {
	var counts lifeCounts

	handle := arcow.New(newTrackedValue(&counts, 1))
	handle.Set(*handle.Get())
	require.Equal(t, int64(0), counts.destroys.Load())
	require.Equal(t, []int{1}, handle.Get().Data)

	handle.Release()
	require.Equal(t, int64(1), counts.destroys.Load())
	require.Equal(t, int64(0), counts.live.Load())
}

func TestValidate(t *testing.T) {
	handle := arcow.New(ints{1})
	require.NoError(t, handle.Validate())

	other := handle.Clone()
	require.NoError(t, other.Validate())

	handle.Release()
	require.NoError(t, handle.Validate())
	require.NoError(t, other.Validate())

	other.Release()
}

func TestFormat(t *testing.T) {
	handle := arcow.New(ints{1, 2, 3})
	other := handle.Clone()

	require.Equal(t, "[1 2 3]", handle.String())
	require.Equal(t, "[1 2 3]", fmt.Sprint(handle))
	require.Equal(t, "Arcow/2{arcow_test.ints{1, 2, 3}}", fmt.Sprintf("%#v", handle))

	other.Release()
	require.Equal(t, "Arcow/1{arcow_test.ints{1, 2, 3}}", handle.GoString())

	handle.Release()
	require.Equal(t, "Arcow/released", handle.String())
	require.Equal(t, "Arcow/released", handle.GoString())
}

func TestZeroValueHandle(t *testing.T) {
	var handle arcow.Arcow[ints]

	_, err := handle.TryClone()
	require.ErrorIs(t, err, arcow.ErrUninitialized)
	_, err = handle.TryMut()
	require.ErrorIs(t, err, arcow.ErrUninitialized)

	requirePanicsWith(t, arcow.ErrUninitialized, func() { handle.Get() })
	requirePanicsWith(t, arcow.ErrUninitialized, func() { handle.Count() })
	requirePanicsWith(t, arcow.ErrUninitialized, func() { handle.Set(ints{1}) })
	requirePanicsWith(t, arcow.ErrUninitialized, func() {
		handle.Update(func(value *ints) {})
	})

	// Failed accesses leave the handle idle, so it can still be released
	handle.Release()
	require.True(t, handle.Released())
	requirePanicsWith(t, arcow.ErrReleased, func() { handle.Get() })
}
