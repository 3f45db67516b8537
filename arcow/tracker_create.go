package arcow

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/arcow/internal/utils"
	"github.com/vkngwrapper/core/v2/common"
	"golang.org/x/exp/slog"
)

// TrackerCreateFlags indicate specific tracker behaviors to activate or deactivate
type TrackerCreateFlags int32

var trackerCreateFlagsMapping = common.NewFlagStringMapping[TrackerCreateFlags]()

func (f TrackerCreateFlags) Register(str string) {
	trackerCreateFlagsMapping.Register(f, str)
}
func (f TrackerCreateFlags) String() string {
	return trackerCreateFlagsMapping.FlagsToString(f)
}

const (
	// TrackerCreateExternallySynchronized ensures that the tracker will not be synchronized
	// internally. The consumer must guarantee that every handle attached to the tracker is
	// used from only one goroutine at a time or is synchronized by some other mechanism, but
	// performance may improve because the internal mutex is not used.
	TrackerCreateExternallySynchronized TrackerCreateFlags = 1 << iota
	// TrackerCreateLogOperations causes every allocation, split and free to be logged at the
	// debug level
	TrackerCreateLogOperations
)

func init() {
	TrackerCreateExternallySynchronized.Register("TrackerCreateExternallySynchronized")
	TrackerCreateLogOperations.Register("TrackerCreateLogOperations")
}

const (
	// defaultRegistrySize is the number of blocks the live block registry is sized for when
	// TrackerCreateOptions.InitialCapacity is left at 0
	defaultRegistrySize int = 64
)

// TrackerCreateOptions contains optional settings when creating a tracker
type TrackerCreateOptions struct {
	// Flags indicates specific tracker behaviors to activate or deactivate
	Flags TrackerCreateFlags
	// Name is included in log messages and stats output to tell trackers apart
	Name string
	// InitialCapacity is the number of live blocks the registry is sized for up front
	InitialCapacity int
}

// NewTracker creates a new Tracker
//
// logger - Receives reports about unreleased blocks and, with TrackerCreateLogOperations,
// about every block operation
//
// options - Optional parameters: it is valid to leave all the fields blank
func NewTracker(logger *slog.Logger, options TrackerCreateOptions) (*Tracker, error) {
	if logger == nil {
		return nil, errors.New("NewTracker requires a non-nil logger")
	}
	if options.InitialCapacity < 0 {
		return nil, errors.Newf("TrackerCreateOptions.InitialCapacity must not be negative, but was %d", options.InitialCapacity)
	}

	capacity := options.InitialCapacity
	if capacity == 0 {
		capacity = defaultRegistrySize
	}

	tracker := &Tracker{
		logger:        logger,
		name:          options.Name,
		createFlags:   options.Flags,
		logOperations: options.Flags&TrackerCreateLogOperations != 0,
		mutex:         utils.OptionalRWMutex{UseMutex: options.Flags&TrackerCreateExternallySynchronized == 0},
		blocks:        swiss.NewMap[BlockID, Block](uint32(capacity)),
	}
	tracker.stats.Clear()

	return tracker, nil
}

// Track wraps the provided value in a new handle that is tracked by tracker, using the value's
// Clone method to duplicate it when the handle is split. A nil tracker produces an untracked handle.
func Track[T Cloner[T]](tracker *Tracker, value T) *Arcow[T] {
	return TrackFunc(tracker, value, clonerFunc[T])
}

// TrackFunc wraps the provided value in a new handle that is tracked by tracker, using clone to
// duplicate it when the handle is split. A nil tracker produces an untracked handle.
func TrackFunc[T any](tracker *Tracker, value T, clone CloneFunc[T]) *Arcow[T] {
	options := Options[T]{CloneFunc: clone}
	if tracker != nil {
		options.Observer = tracker
	}
	return NewWithOptions(value, options)
}
