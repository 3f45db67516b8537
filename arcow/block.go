package arcow

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/arcow/memutils"
)

// block is the heap allocation shared by every handle pointing at the same value. refs is the
// exact number of live handles pointing at the block; the value is never written while refs > 1.
type block[T any] struct {
	refs  atomic.Int64
	freed atomic.Bool

	id       atomic.Uint64
	observer Observer
	clone    CloneFunc[T]

	value T
}

var _ Block = &block[int]{}

func allocate[T any](value T, clone CloneFunc[T], observer Observer, origin Origin) *block[T] {
	b := &block[T]{
		clone:    clone,
		observer: observer,
		value:    value,
	}
	b.refs.Store(1)

	if observer != nil {
		b.id.Store(uint64(observer.BlockAllocated(b, origin)))
	}

	return b
}

func (b *block[T]) ID() BlockID { return BlockID(b.id.Load()) }

func (b *block[T]) Refs() int { return int(b.refs.Load()) }

func (b *block[T]) Size() int { return int(unsafe.Sizeof(*b)) }

func (b *block[T]) Describe(json *jwriter.ObjectState) {
	json.Name("ID").Int(int(b.ID()))
	json.Name("Refs").Int(b.Refs())
	json.Name("Size").Int(b.Size())
	json.Name("Type").String(fmt.Sprintf("%T", b.value))
	json.Name("Value").String(fmt.Sprintf("%+v", b.value))
}

func (b *block[T]) increment() {
	count := b.refs.Add(1)
	if count < 2 {
		panic(errors.Wrapf(memutils.ErrRefCountOverflow, "block %d has reference count %d after increment", b.ID(), count))
	}

	if b.observer != nil {
		b.observer.BlockShared(b)
	}
}

// decrement releases one handle's share of the block and returns the number of handles still
// pointing at it. The handle that brings the count to zero frees the block.
func (b *block[T]) decrement() int {
	count := b.refs.Add(-1)
	if count > 0 {
		if b.observer != nil {
			b.observer.BlockReleased(b)
		}
		return int(count)
	}

	if count < 0 {
		panic(errors.Wrapf(memutils.ErrRefCountUnderflow, "block %d has reference count %d after decrement", b.ID(), count))
	}

	b.free()
	return 0
}

func (b *block[T]) free() {
	if !b.freed.CompareAndSwap(false, true) {
		panic(errors.Wrapf(memutils.ErrRefCountUnderflow, "block %d was freed twice", b.ID()))
	}

	if b.observer != nil {
		b.observer.BlockFreed(b)
	}

	destroyValue(&b.value)

	var zero T
	b.value = zero
	b.clone = nil
}

func (b *block[T]) written() {
	if b.observer != nil {
		b.observer.BlockWritten(b)
	}
}

func (b *block[T]) Validate() error {
	if b.freed.Load() {
		return errors.Newf("block %d is still referenced after being freed", b.ID())
	}
	if b.clone == nil {
		return errors.Newf("block %d has no clone function", b.ID())
	}

	return memutils.CheckRefCount(b.refs.Load(), fmt.Sprintf("block %d", b.ID()))
}

func destroyValue[T any](value *T) {
	if destroyer, ok := any(value).(Destroyer); ok {
		destroyer.Destroy()
	} else if destroyer, ok := any(*value).(Destroyer); ok {
		destroyer.Destroy()
	}
}
