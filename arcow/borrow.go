package arcow

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arcow/memutils"
)

// Borrow is an exclusive, mutable view of the value behind a handle. While it is outstanding,
// the handle it was taken from cannot be cloned, released or borrowed again, which keeps the
// handle's block unique for as long as the view may write through it.
//
// A Borrow must be released when the caller is done writing, usually with defer. After
// Release, pointers previously returned from Value must no longer be used.
type Borrow[T any] struct {
	handle *Arcow[T]
	value  *T
}

// TryMut returns exclusive mutable access to this handle's value. If the handle's block is
// unique, the view points directly into it and nothing is allocated or duplicated. If the
// block is shared, the value is duplicated into a fresh block with a reference count of 1,
// this handle's share of the old block is released, and the view points into the new block.
// Other handles that shared the old block keep observing the unchanged value.
//
// It returns an error wrapping ErrBorrowed if the handle is already borrowed, ErrHandleBusy
// if it is being cloned on another goroutine, ErrReleased if it was released, and
// ErrUninitialized for the zero value.
func (a *Arcow[T]) TryMut() (*Borrow[T], error) {
	err := a.acquireExclusive()
	if err != nil {
		return nil, err
	}

	unique := false
	defer func() {
		// A panicking clone func leaves the handle on its old block, usable again
		if !unique {
			a.releaseExclusive()
		}
	}()

	a.makeUnique()
	unique = true

	return &Borrow[T]{
		handle: a,
		value:  &a.block.value,
	}, nil
}

// Mut returns exclusive mutable access to this handle's value, as TryMut does. It panics in
// the same situations in which TryMut returns an error.
func (a *Arcow[T]) Mut() *Borrow[T] {
	borrow, err := a.TryMut()
	if err != nil {
		panic(err)
	}
	return borrow
}

// Update calls fn with exclusive mutable access to this handle's value, splitting the handle
// first if it is shared. The borrow is released when fn returns or panics.
func (a *Arcow[T]) Update(fn func(value *T)) {
	borrow := a.Mut()
	defer borrow.Release()

	fn(borrow.Value())
}

// Set replaces this handle's value. If the handle is shared, it is detached onto a new block
// holding the provided value, without duplicating the old one. If it is unique, the old value
// is overwritten in place.
//
// Destroy is only ever called by the release that frees a block, so the replaced value is not
// destroyed. Values holding resources should release them through Update instead.
func (a *Arcow[T]) Set(value T) {
	err := a.acquireExclusive()
	if err != nil {
		panic(err)
	}
	defer a.releaseExclusive()

	old := a.block
	if old.Refs() == 1 {
		old.value = value
		old.written()
		return
	}

	a.block = allocate(value, old.clone, old.observer, OriginSet)
	old.decrement()
}

func (a *Arcow[T]) acquireExclusive() error {
	if a.state.CompareAndSwap(stateIdle, stateBorrowed) {
		if a.block == nil {
			a.releaseExclusive()
			return errors.WithStack(ErrUninitialized)
		}
		return nil
	}

	state := a.state.Load()
	if state == stateReleased {
		return errors.WithStack(ErrReleased)
	} else if state == stateBorrowed {
		return errors.WithStack(ErrBorrowed)
	}
	return errors.WithStack(ErrHandleBusy)
}

func (a *Arcow[T]) releaseExclusive() {
	if !a.state.CompareAndSwap(stateBorrowed, stateIdle) {
		panic(errors.AssertionFailedf("borrowed handle had state %d on release", a.state.Load()))
	}
}

// makeUnique guarantees that this handle is the only one pointing at its block. It must only
// be called while the handle is borrowed, so that the count cannot rise between the check and
// the write.
func (a *Arcow[T]) makeUnique() {
	old := a.block
	memutils.DebugValidate(old)

	if old.Refs() == 1 {
		old.written()
		return
	}

	// Duplicate while still holding our share, so the old value cannot be freed underneath us.
	// If every other handle is released before the decrement below, the split was unnecessary
	// but harmless, and the decrement frees the old block.
	next := allocate(old.clone(old.value), old.clone, old.observer, OriginSplit)
	old.decrement()
	a.block = next
}

// Value returns a mutable pointer into the borrowed handle's value
func (b *Borrow[T]) Value() *T {
	if b.value == nil {
		panic(ErrBorrowReleased)
	}
	return b.value
}

// Release ends the borrow, allowing the handle to be cloned, released or borrowed again. It
// is idempotent.
func (b *Borrow[T]) Release() {
	if b.handle == nil {
		return
	}

	handle := b.handle
	b.handle = nil
	b.value = nil
	handle.releaseExclusive()
}
