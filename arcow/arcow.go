package arcow

import (
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arcow/memutils"
)

const (
	stateIdle     int32 = 0
	stateBorrowed int32 = -1
	stateReleased int32 = -2
)

// Options contains optional settings when constructing a handle with NewWithOptions
type Options[T any] struct {
	// CloneFunc duplicates the value when a shared handle is split for writing. If it is
	// left nil, the value's own Clone method is used when T implements Cloner[T], and CopyValue
	// is used otherwise.
	CloneFunc CloneFunc[T]
	// Observer is notified of every lifecycle event of the blocks allocated for this handle
	// and for every handle cloned or split from it. It may be left nil.
	Observer Observer
}

// Arcow is an atomically reference-counted, copy-on-write handle to a value of type T. It
// behaves like a cheaply clonable copy of the value: cloning a handle only increments a
// shared count, and a handle that is mutated while other handles still share its value
// first splits off a private duplicate.
//
// Handles must be released with Release when they go out of scope, usually with defer. The
// zero value is not a valid handle: it panics with ErrUninitialized when used, and releasing
// it does nothing. A
// handle may be sent to another goroutine, and any number of goroutines may call Get, Count
// and Clone on the same handle at once. Mut, Update, Set and Release require that the calling
// goroutine be the only one using that handle.
type Arcow[T any] struct {
	// state is stateIdle, stateBorrowed, stateReleased, or the positive number of clones in flight
	state atomic.Int32
	block *block[T]
}

// New wraps the provided value in a new handle, using the value's Clone method to duplicate it
// when the handle is split
func New[T Cloner[T]](value T) *Arcow[T] {
	return NewWithOptions(value, Options[T]{CloneFunc: clonerFunc[T]})
}

// NewFunc wraps the provided value in a new handle, using clone to duplicate it when the handle
// is split
func NewFunc[T any](value T, clone CloneFunc[T]) *Arcow[T] {
	return NewWithOptions(value, Options[T]{CloneFunc: clone})
}

// NewWithOptions wraps the provided value in a new handle. The handle's block starts out
// unique, with a reference count of 1.
func NewWithOptions[T any](value T, options Options[T]) *Arcow[T] {
	clone := options.CloneFunc
	if clone == nil {
		if _, isCloner := any(value).(Cloner[T]); isCloner {
			clone = func(value T) T {
				return any(value).(Cloner[T]).Clone()
			}
		} else {
			clone = CopyValue[T]
		}
	}

	return &Arcow[T]{
		block: allocate(value, clone, options.Observer, OriginNew),
	}
}

// Get returns a read-only view of the value. It never allocates or changes the reference
// count, and it is valid whether or not the handle is shared. The value must not be modified
// through the returned pointer: use Mut, Update or Set instead.
//
// The pointer is only valid until this handle is mutated or released.
func (a *Arcow[T]) Get() *T {
	b := a.block
	if b == nil {
		panic(a.missingBlockError())
	}
	memutils.DebugCheckRefCount(b.refs.Load(), "handle block")

	return &b.value
}

// Count returns the number of live handles that share this handle's value. If this returns
// 1, the handle is unique and mutation happens in place. More than 1, and the next mutation
// will split the handle onto a private duplicate of the value.
//
// The count may change at any time if other goroutines hold handles to the same value.
func (a *Arcow[T]) Count() int {
	b := a.block
	if b == nil {
		panic(a.missingBlockError())
	}
	return b.Refs()
}

// IsUnique returns true if no other live handle shares this handle's value
func (a *Arcow[T]) IsUnique() bool {
	return a.Count() == 1
}

// Released returns true once Release has been called on this handle
func (a *Arcow[T]) Released() bool {
	return a.state.Load() == stateReleased
}

// TryClone returns a new handle to the same value, incrementing the reference count. The value
// itself is not touched. It returns an error wrapping ErrBorrowed if a Borrow taken from this
// handle is outstanding, ErrReleased if the handle was released, or ErrUninitialized for the
// zero value.
func (a *Arcow[T]) TryClone() (*Arcow[T], error) {
	err := a.acquireShared()
	if err != nil {
		return nil, err
	}
	defer a.state.Add(-1)

	memutils.DebugValidate(a.block)

	a.block.increment()
	return &Arcow[T]{block: a.block}, nil
}

// Clone returns a new handle to the same value, incrementing the reference count. It panics
// in the same situations in which TryClone returns an error.
func (a *Arcow[T]) Clone() *Arcow[T] {
	clone, err := a.TryClone()
	if err != nil {
		panic(err)
	}
	return clone
}

// Release gives up this handle's share of the value. When the last handle to a value is
// released, the value's Destroy method is called if it implements Destroyer and the value
// becomes garbage.
//
// Release is idempotent, which allows it to be deferred right after the handle is created
// while still releasing early on some paths. Releasing a handle while a Borrow taken from it
// is outstanding panics with ErrBorrowed.
func (a *Arcow[T]) Release() {
	if a == nil {
		return
	}

	for {
		state := a.state.Load()
		if state == stateReleased {
			return
		} else if state == stateBorrowed {
			panic(errors.Wrap(ErrBorrowed, "attempted to release a handle"))
		} else if state > stateIdle {
			panic(errors.Wrap(ErrHandleBusy, "attempted to release a handle"))
		}

		if a.state.CompareAndSwap(stateIdle, stateReleased) {
			break
		}
	}

	b := a.block
	a.block = nil
	if b != nil {
		b.decrement()
	}
}

// Validate checks the internal consistency of the handle and its block
func (a *Arcow[T]) Validate() error {
	state := a.state.Load()
	if state == stateReleased {
		if a.block != nil {
			return errors.New("released handle still points at a block")
		}
		return nil
	}

	if state < stateReleased {
		return errors.Newf("handle has invalid state %d", state)
	}
	if a.block == nil {
		return errors.New("live handle does not point at a block")
	}

	return a.block.Validate()
}

func (a *Arcow[T]) acquireShared() error {
	for {
		state := a.state.Load()
		if state == stateReleased {
			return errors.WithStack(ErrReleased)
		} else if state == stateBorrowed {
			return errors.WithStack(ErrBorrowed)
		}

		if a.state.CompareAndSwap(state, state+1) {
			break
		}
	}

	if a.block == nil {
		a.state.Add(-1)
		return errors.WithStack(ErrUninitialized)
	}
	return nil
}

func (a *Arcow[T]) missingBlockError() error {
	if a.state.Load() == stateReleased {
		return ErrReleased
	}
	return ErrUninitialized
}
