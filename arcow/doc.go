// Package arcow provides Arcow, an atomically reference-counted handle that uses copy-on-write
// semantics to allow mutation.
//
// An *Arcow[T] acts like a cheaply clonable T that can still be mutated normally, even if T is
// expensive to copy. Clone only increments an atomic count shared by every handle to the same
// value. A handle whose value is unique is mutated in place; a handle whose value is shared is
// first "split": the value is duplicated into a private block and the handle is detached from
// the shared one. The other handles never observe the write.
//
// This pays off when T is large and most clones are read and thrown away without ever being
// mutated. The canonical case is a sequence of simulation snapshots that all carry the same
// big map: most snapshots never touch the map, the occasional snapshot that does pays for a
// single copy, and a lone snapshot with no siblings pays nothing at all.
//
// If writes must be visible to every holder, this is the wrong tool: share a pointer guarded
// by a sync.Mutex instead.
//
// # Lifetimes
//
// Go has no destructors, so every handle must be released explicitly, usually by deferring
// Release right after the handle is obtained:
//
//	snapshot := state.Clone()
//	defer snapshot.Release()
//
// When the last handle to a value is released, the value's Destroy method is called if it
// implements Destroyer.
//
// # Exclusivity
//
// Mut returns a Borrow, an exclusive mutable view. While it is outstanding the handle cannot
// be cloned, released or borrowed again: such attempts panic with ErrBorrowed (or return it,
// from the Try variants). This is what guarantees that a handle found unique when the borrow
// was taken stays unique while it is being written through. Update wraps the borrow in a
// callback so it is always released.
//
// # Tracking
//
// A Tracker can be attached to handles as their Observer. It keeps a registry of live blocks,
// collects statistics, can render them as JSON, and reports blocks that were never released.
// Building with the debug_arcow tag additionally validates block invariants on every clone and
// mutable access.
package arcow
