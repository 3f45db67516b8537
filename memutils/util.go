package memutils

import (
	cerrors "github.com/cockroachdb/errors"
)

type Number interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// CheckRefCount returns an error if the provided reference count cannot belong to a live
// block, i.e. it is less than 1.
func CheckRefCount[T Number](count T, name string) error {
	if count < 1 {
		return cerrors.Wrapf(ErrRefCountUnderflow, "%s has reference count %d", name, count)
	}
	return nil
}
