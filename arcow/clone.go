package arcow

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Cloner is implemented by values that can produce an independent duplicate of themselves.
// Clone must return a value that shares no mutable state with the receiver: a handle mutates
// the duplicate in place while other handles keep reading the original.
type Cloner[T any] interface {
	Clone() T
}

// CloneFunc duplicates a value when a shared handle is split for writing
type CloneFunc[T any] func(value T) T

// Destroyer is implemented by values that hold resources that must be released when the
// last handle to them goes away. Destroy is called exactly once per block, after the last
// handle has been released and before the block's memory is handed back to the garbage collector.
type Destroyer interface {
	Destroy()
}

// CopyValue duplicates a value with plain assignment. It is only a correct CloneFunc for types
// that hold no references: numbers, strings, arrays and structs of those.
func CopyValue[T any](value T) T {
	return value
}

// CloneSlice duplicates the backing array of a slice. The elements themselves are copied
// with assignment.
func CloneSlice[S ~[]E, E any](value S) S {
	return slices.Clone(value)
}

// CloneMap duplicates a map. The keys and values are copied with assignment.
func CloneMap[M ~map[K]V, K comparable, V any](value M) M {
	return maps.Clone(value)
}

// CloneDeepSlice duplicates a slice and calls Clone on every element
func CloneDeepSlice[S ~[]E, E Cloner[E]](value S) S {
	if value == nil {
		return nil
	}

	out := make(S, len(value))
	for i := range value {
		out[i] = value[i].Clone()
	}
	return out
}

func clonerFunc[T Cloner[T]](value T) T {
	return value.Clone()
}
