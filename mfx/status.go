package mfx

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Status is the result code reported by every frame allocator operation. Negative values are
// failures, zero is success.
type Status int32

const (
	StatusOK             Status = 0
	StatusUnknown        Status = -1
	StatusNullPtr        Status = -2
	StatusUnsupported    Status = -3
	StatusMemoryAlloc    Status = -4
	StatusInvalidHandle  Status = -6
	StatusLockMemory     Status = -7
	StatusNotInitialized Status = -8
)

var (
	ErrUnknown        = errors.New("unknown error")
	ErrNullPtr        = errors.New("null pointer")
	ErrUnsupported    = errors.New("unsupported")
	ErrMemoryAlloc    = errors.New("allocation failure")
	ErrInvalidHandle  = errors.New("invalid handle")
	ErrLockMemory     = errors.New("lock failure")
	ErrNotInitialized = errors.New("not initialized")
)

var statusMapping = map[Status]string{
	StatusOK:             "StatusOK",
	StatusUnknown:        "StatusUnknown",
	StatusNullPtr:        "StatusNullPtr",
	StatusUnsupported:    "StatusUnsupported",
	StatusMemoryAlloc:    "StatusMemoryAlloc",
	StatusInvalidHandle:  "StatusInvalidHandle",
	StatusLockMemory:     "StatusLockMemory",
	StatusNotInitialized: "StatusNotInitialized",
}

var statusErrors = map[Status]error{
	StatusUnknown:        ErrUnknown,
	StatusNullPtr:        ErrNullPtr,
	StatusUnsupported:    ErrUnsupported,
	StatusMemoryAlloc:    ErrMemoryAlloc,
	StatusInvalidHandle:  ErrInvalidHandle,
	StatusLockMemory:     ErrLockMemory,
	StatusNotInitialized: ErrNotInitialized,
}

func (s Status) String() string {
	str, ok := statusMapping[s]
	if !ok {
		return fmt.Sprintf("Status(%d)", int32(s))
	}
	return str
}

// ToError returns the sentinel error for a failing status, or nil for success and warning codes.
// Codes without a sentinel of their own map to ErrUnknown.
func (s Status) ToError() error {
	if s >= 0 {
		return nil
	}

	err, ok := statusErrors[s]
	if !ok {
		return errors.Wrapf(ErrUnknown, "status %d", int32(s))
	}
	return err
}

// StatusFromError recovers the Status for an error produced by ToError, even after wrapping.
// Errors that did not originate from a Status report StatusUnknown, and nil reports StatusOK.
func StatusFromError(err error) Status {
	if err == nil {
		return StatusOK
	}

	for status, sentinel := range statusErrors {
		if status != StatusUnknown && errors.Is(err, sentinel) {
			return status
		}
	}
	return StatusUnknown
}
