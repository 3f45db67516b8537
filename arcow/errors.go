package arcow

import "github.com/cockroachdb/errors"

// ErrReleased is the error raised when a handle is used after Release was called on it
var ErrReleased error = errors.New("handle has already been released")

// ErrUninitialized is the error raised when a handle that was not created by one of the
// constructors is used. The zero value of Arcow is not a valid handle.
var ErrUninitialized error = errors.New("handle was not initialized by a constructor")

// ErrBorrowed is the error raised when a handle is cloned, released or borrowed again while
// a mutable Borrow taken from it is still outstanding
var ErrBorrowed error = errors.New("handle is mutably borrowed")

// ErrHandleBusy is the error raised when a handle is borrowed or released while another
// goroutine is cloning it
var ErrHandleBusy error = errors.New("handle is being cloned by another goroutine")

// ErrBorrowReleased is the error raised when a Borrow is used after it was released
var ErrBorrowReleased error = errors.New("borrow has already been released")
