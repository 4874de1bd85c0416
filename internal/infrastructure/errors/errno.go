package errors

import (
	"errors"
	"syscall"
)

// Win32 error values. Declared numerically so classification also builds
// and tests on non-windows hosts.
const (
	errnoAccessDenied        = syscall.Errno(5)
	errnoInvalidHandle       = syscall.Errno(6)
	errnoInvalidWindowHandle = syscall.Errno(1400)
)

// ClassifyErrno maps a Win32 error returned from a window placement call to an ErrorCode.
// Errors that carry no errno are treated as a denied placement, since the OS gave no reason.
func ClassifyErrno(err error) ErrorCode {
	if err == nil {
		return ErrCodeUnknown
	}

	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return ErrCodePlacementDenied
	}

	switch errno {
	case errnoInvalidHandle, errnoInvalidWindowHandle:
		return ErrCodeInvalidHandle
	default:
		// errnoAccessDenied and anything else the window manager refuses
		return ErrCodePlacementDenied
	}
}

// IsErrnoSet reports whether err carries a non-zero errno. The lazy proc Call
// helpers always return a non-nil error, which is Errno(0) when GetLastError was clear.
func IsErrnoSet(err error) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno != 0
	}
	return err != nil
}
