package arcow

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/arcow/internal/utils"
	"github.com/vkngwrapper/arcow/memutils"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// Tracker is an Observer that keeps a registry of the live blocks attached to it, along with
// statistics about their lifecycle. It is useful in tests and diagnostics to prove that every
// handle was released and to see how often handles are split.
//
// A Tracker is an ordinary value owned by whoever created it. Handles only report to a tracker
// when they are created by Track, TrackFunc, or NewWithOptions with the tracker as Observer.
type Tracker struct {
	logger        *slog.Logger
	name          string
	createFlags   TrackerCreateFlags
	logOperations bool

	nextID atomic.Uint64

	mutex  utils.OptionalRWMutex
	blocks *swiss.Map[BlockID, Block]
	stats  memutils.DetailedStatistics
}

var _ Observer = &Tracker{}

func (t *Tracker) Name() string { return t.name }

func (t *Tracker) Flags() TrackerCreateFlags { return t.createFlags }

func (t *Tracker) BlockAllocated(block Block, origin Origin) BlockID {
	id := BlockID(t.nextID.Add(1))
	size := block.Size()

	t.mutex.Lock()
	t.blocks.Put(id, block)
	t.stats.AddBlock(size)
	if origin == OriginSplit {
		t.stats.Splits++
	}
	t.mutex.Unlock()

	if t.logOperations {
		t.logger.LogAttrs(context.Background(), slog.LevelDebug, "Tracker::BlockAllocated",
			slog.String("tracker", t.name),
			slog.Uint64("block.id", uint64(id)),
			slog.String("origin", origin.String()),
			slog.Int("size", size),
		)
	}

	return id
}

func (t *Tracker) BlockShared(block Block) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.stats.Clones++
	t.stats.HandleCount++
}

func (t *Tracker) BlockReleased(block Block) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.stats.Releases++
	t.stats.HandleCount--
}

func (t *Tracker) BlockWritten(block Block) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.stats.InPlaceWrites++
}

func (t *Tracker) BlockFreed(block Block) {
	id := block.ID()
	size := block.Size()

	t.mutex.Lock()
	t.blocks.Delete(id)
	t.stats.RemoveBlock(size)
	t.mutex.Unlock()

	if t.logOperations {
		t.logger.LogAttrs(context.Background(), slog.LevelDebug, "Tracker::BlockFreed",
			slog.String("tracker", t.name),
			slog.Uint64("block.id", uint64(id)),
		)
	}
}

// LiveBlocks returns the number of blocks attached to this tracker that have not been freed
func (t *Tracker) LiveBlocks() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.blocks.Count()
}

// CalculateStatistics sums this tracker's statistics into the statistics currently present in
// the provided memutils.DetailedStatistics object
func (t *Tracker) CalculateStatistics(stats *memutils.DetailedStatistics) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	stats.AddDetailedStatistics(&t.stats)
}

// Validate performs internal consistency checks on the tracker and every live block. It
// must not be called while handles attached to the tracker are being cloned, mutated or released
// on other goroutines, since reference counts change before the tracker hears about it.
func (t *Tracker) Validate() error {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	err := t.stats.Validate()
	if err != nil {
		return err
	}

	if t.blocks.Count() != t.stats.BlockCount {
		return errors.Newf("the tracker's registry holds %d blocks, but statistics list %d", t.blocks.Count(), t.stats.BlockCount)
	}

	handleCount := 0
	t.blocks.Iter(func(id BlockID, block Block) (stop bool) {
		refs := block.Refs()
		handleCount += refs

		if block.ID() != id {
			err = errors.Newf("block %d is registered under id %d", block.ID(), id)
			return true
		}

		err = memutils.CheckRefCount(refs, fmt.Sprintf("block %d", id))
		return err != nil
	})
	if err != nil {
		return err
	}

	if handleCount != t.stats.HandleCount {
		return errors.Newf("live blocks are referenced by %d handles, but statistics list %d", handleCount, t.stats.HandleCount)
	}

	return nil
}

// Destroy reports every block attached to this tracker that has not been freed. Each one is
// logged at the error level, and an error is returned if there were any.
func (t *Tracker) Destroy() error {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	unreleased := t.blocks.Count()
	if unreleased == 0 {
		return nil
	}

	for _, id := range t.sortedIDs() {
		block, _ := t.blocks.Get(id)
		t.logger.LogAttrs(context.Background(), slog.LevelError, "[UNRELEASED BLOCK] block was never freed",
			slog.String("tracker", t.name),
			slog.Uint64("block.id", uint64(id)),
			slog.Int("refs", block.Refs()),
			slog.Int("size", block.Size()),
		)
	}

	return errors.Newf("%d blocks were not released before the destruction of this tracker", unreleased)
}

// BuildStatsString renders this tracker's statistics as a JSON document. If detailedMap is true,
// every live block is described as well, including a formatted copy of its value; this reads
// the values, so it must not be called while handles attached to the tracker are being mutated.
func (t *Tracker) BuildStatsString(detailedMap bool) string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	writer := jwriter.NewWriter()
	obj := writer.Object()

	obj.Name("Name").String(t.name)

	total := obj.Name("Total").Object()
	total.Name("BlockCount").Int(t.stats.BlockCount)
	total.Name("HandleCount").Int(t.stats.HandleCount)
	total.Name("BlockBytes").Int(t.stats.BlockBytes)
	total.Name("Allocations").Int(t.stats.Allocations)
	total.Name("Splits").Int(t.stats.Splits)
	total.Name("InPlaceWrites").Int(t.stats.InPlaceWrites)
	total.Name("Clones").Int(t.stats.Clones)
	total.Name("Releases").Int(t.stats.Releases)
	total.Name("Frees").Int(t.stats.Frees)
	if t.stats.Allocations > 0 {
		total.Name("BlockSizeMin").Int(t.stats.BlockSizeMin)
		total.Name("BlockSizeMax").Int(t.stats.BlockSizeMax)
	}
	total.End()

	if detailedMap {
		blocks := obj.Name("Blocks").Array()
		for _, id := range t.sortedIDs() {
			block, _ := t.blocks.Get(id)

			blockObj := blocks.Object()
			block.Describe(&blockObj)
			blockObj.End()
		}
		blocks.End()
	}

	obj.End()
	return string(writer.Bytes())
}

func (t *Tracker) sortedIDs() []BlockID {
	ids := make([]BlockID, 0, t.blocks.Count())
	t.blocks.Iter(func(id BlockID, _ Block) (stop bool) {
		ids = append(ids, id)
		return false
	})
	slices.Sort(ids)
	return ids
}
