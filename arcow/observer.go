package arcow

//go:generate mockgen -source observer.go -destination ./mocks/observer.go -package mock_arcow

import "github.com/launchdarkly/go-jsonstream/v3/jwriter"

// BlockID identifies an allocation block to an Observer. Ids are assigned by the observer
// and are only unique within it.
type BlockID uint64

// NoBlock is the BlockID of blocks that were allocated without an observer
const NoBlock BlockID = 0

// Origin indicates why a block was allocated
type Origin uint8

const (
	// OriginNew blocks were allocated by constructing a handle
	OriginNew Origin = iota + 1
	// OriginSplit blocks were allocated by a mutable access to a shared handle, and hold a
	// duplicate of the value in the block the handle was detached from
	OriginSplit
	// OriginSet blocks were allocated when a shared handle had its value replaced
	OriginSet
)

var originMapping = map[Origin]string{
	OriginNew:   "OriginNew",
	OriginSplit: "OriginSplit",
	OriginSet:   "OriginSet",
}

func (o Origin) String() string {
	return originMapping[o]
}

// Block is the type-erased view of an allocation block that is handed to an Observer
type Block interface {
	// ID returns the id the observer assigned when the block was allocated
	ID() BlockID
	// Refs returns the number of live handles pointing at the block. The value may be stale
	// by the time it is used if other goroutines are cloning or releasing handles.
	Refs() int
	// Size returns the shallow size in bytes of the block
	Size() int
	// Describe populates a json object with information about the block and its value
	Describe(json *jwriter.ObjectState)
}

// Observer receives a notification for every lifecycle event of the blocks it was attached
// to. Observers are called synchronously from the goroutine performing the operation, so they
// must be safe for concurrent use and should be fast.
type Observer interface {
	// BlockAllocated is called once when a block is allocated, with a reference count of 1.
	// It returns the id that the block will report from Block.ID.
	BlockAllocated(block Block, origin Origin) BlockID
	// BlockShared is called after a handle was cloned and the block's count incremented
	BlockShared(block Block)
	// BlockReleased is called after a handle released the block without freeing it
	BlockReleased(block Block)
	// BlockWritten is called when a handle obtained mutable access to a block without
	// having to split it
	BlockWritten(block Block)
	// BlockFreed is called exactly once, after the last handle released the block
	BlockFreed(block Block)
}
