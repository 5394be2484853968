package mmfio

import (
	"errors"
	"fmt"
)

// Error represents an mmfio error with a failure-kind code.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error // wrapped OS-level error, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mmfio: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("mmfio: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorCode identifies the step of the mapping lifecycle that failed.
type ErrorCode int

const (
	// Success indicates the operation completed successfully
	Success ErrorCode = 0

	// ErrUnknown is reported for errors that did not originate here
	ErrUnknown ErrorCode = -1

	// ErrInvalidMode indicates the open mode lacks pure read capability
	ErrInvalidMode ErrorCode = 1

	// ErrOpen indicates the named file could not be opened for reading
	ErrOpen ErrorCode = 2

	// ErrSizeQuery indicates the file's byte length could not be determined
	ErrSizeQuery ErrorCode = 3

	// ErrEmptyFile indicates the file is zero-length (never mapped)
	ErrEmptyFile ErrorCode = 4

	// ErrMappingCreate indicates the mapping object could not be created
	// (Windows only)
	ErrMappingCreate ErrorCode = 5

	// ErrMapView indicates the view could not be mapped into the address
	// space (Windows only)
	ErrMapView ErrorCode = 6

	// ErrMmap indicates the mmap syscall failed (POSIX only)
	ErrMmap ErrorCode = 7

	// ErrNotMapped indicates the handle has already been closed
	ErrNotMapped ErrorCode = 8
)

// Error descriptions
var errorMessages = map[ErrorCode]string{
	Success:          "success",
	ErrInvalidMode:   "unsupported open mode",
	ErrOpen:          "could not open file",
	ErrSizeQuery:     "could not get file size",
	ErrEmptyFile:     "could not map file: file is empty",
	ErrMappingCreate: "could not create file mapping",
	ErrMapView:       "could not map view of file",
	ErrMmap:          "could not map file",
	ErrNotMapped:     "file is not mapped",
}

// NewError creates a new Error with the given code.
func NewError(code ErrorCode) *Error {
	msg, ok := errorMessages[code]
	if !ok {
		msg = fmt.Sprintf("unknown error code %d", code)
	}
	return &Error{Code: code, Message: msg}
}

// WrapError creates a new Error wrapping an underlying OS error.
func WrapError(code ErrorCode, err error) *Error {
	e := NewError(code)
	e.Err = err
	return e
}

// Code returns the error code carried by err, Success for nil, or
// ErrUnknown for errors that did not originate from this package.
func Code(err error) ErrorCode {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrUnknown
}

// IsInvalidMode returns true if the error reports an unsupported open mode.
func IsInvalidMode(err error) bool {
	return Code(err) == ErrInvalidMode
}

// IsEmptyFile returns true if the error reports a zero-length file.
func IsEmptyFile(err error) bool {
	return Code(err) == ErrEmptyFile
}

// IsNotMapped returns true if the error reports use of a closed handle.
func IsNotMapped(err error) bool {
	return Code(err) == ErrNotMapped
}
