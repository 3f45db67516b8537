package memutils

import "github.com/cockroachdb/errors"

// ErrRefCountUnderflow is the error raised when a reference count is decremented past zero,
// which means some handle was released more times than it was acquired
var ErrRefCountUnderflow error = errors.New("reference count decremented below zero")

// ErrRefCountOverflow is the error raised when a reference count is incremented from a
// non-positive value (resurrecting a freed block) or wraps past its maximum
var ErrRefCountOverflow error = errors.New("reference count incremented from an invalid value")

// ErrStatisticsMismatch is the error returned from Statistics validation when live counts
// disagree with cumulative counts
var ErrStatisticsMismatch error = errors.New("statistics are inconsistent")
