package memutils

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Statistics describes the blocks and handles that are live at a single point in time
type Statistics struct {
	// BlockCount is the number of live allocation blocks
	BlockCount int
	// HandleCount is the number of live handles across all live blocks, i.e. the sum of their
	// reference counts
	HandleCount int
	// BlockBytes is the shallow size in bytes of all live blocks
	BlockBytes int
}

func (s *Statistics) Clear() {
	s.BlockCount = 0
	s.HandleCount = 0
	s.BlockBytes = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.BlockCount += other.BlockCount
	s.HandleCount += other.HandleCount
	s.BlockBytes += other.BlockBytes
}

// DetailedStatistics extends Statistics with cumulative counters covering the whole lifetime
// of whatever is being measured
type DetailedStatistics struct {
	Statistics
	// Allocations is the number of blocks ever allocated, including blocks created by splits
	Allocations int
	// Splits is the number of mutable accesses that had to duplicate a shared value
	Splits int
	// InPlaceWrites is the number of mutable accesses that found their block unique
	InPlaceWrites int
	// Clones is the number of handles created by cloning
	Clones int
	// Releases is the number of handle releases that did not free their block
	Releases int
	// Frees is the number of blocks that have been freed
	Frees int

	BlockSizeMin int
	BlockSizeMax int
}

func (s *DetailedStatistics) Clear() {
	s.Statistics.Clear()
	s.Allocations = 0
	s.Splits = 0
	s.InPlaceWrites = 0
	s.Clones = 0
	s.Releases = 0
	s.Frees = 0
	s.BlockSizeMin = math.MaxInt
	s.BlockSizeMax = 0
}

// AddBlock records the allocation of a new block of the provided size holding one handle
func (s *DetailedStatistics) AddBlock(size int) {
	s.Allocations++
	s.BlockCount++
	s.HandleCount++
	s.BlockBytes += size

	if size < s.BlockSizeMin {
		s.BlockSizeMin = size
	}

	if size > s.BlockSizeMax {
		s.BlockSizeMax = size
	}
}

// RemoveBlock records that a block of the provided size was freed when its last handle was released
func (s *DetailedStatistics) RemoveBlock(size int) {
	s.Frees++
	s.BlockCount--
	s.HandleCount--
	s.BlockBytes -= size
}

func (s *DetailedStatistics) AddDetailedStatistics(other *DetailedStatistics) {
	s.Statistics.AddStatistics(&other.Statistics)
	s.Allocations += other.Allocations
	s.Splits += other.Splits
	s.InPlaceWrites += other.InPlaceWrites
	s.Clones += other.Clones
	s.Releases += other.Releases
	s.Frees += other.Frees

	if other.BlockSizeMin < s.BlockSizeMin {
		s.BlockSizeMin = other.BlockSizeMin
	}

	if other.BlockSizeMax > s.BlockSizeMax {
		s.BlockSizeMax = other.BlockSizeMax
	}
}

// Validate verifies that the live counts can be derived from the cumulative counts
func (s *DetailedStatistics) Validate() error {
	if s.BlockCount != s.Allocations-s.Frees {
		return errors.Wrapf(ErrStatisticsMismatch, "%d live blocks, but %d allocations and %d frees", s.BlockCount, s.Allocations, s.Frees)
	}

	// Every allocation and clone adds a handle; every release and free removes one. A split
	// allocates a block for a handle that releases its old block, which is counted on both sides.
	expectedHandles := s.Allocations + s.Clones - s.Releases - s.Frees
	if s.HandleCount != expectedHandles {
		return errors.Wrapf(ErrStatisticsMismatch, "%d live handles, but expected %d", s.HandleCount, expectedHandles)
	}

	if s.HandleCount < s.BlockCount {
		return errors.Wrapf(ErrStatisticsMismatch, "%d live handles cannot hold %d live blocks", s.HandleCount, s.BlockCount)
	}

	return nil
}
