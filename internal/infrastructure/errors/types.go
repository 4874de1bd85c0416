package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrorCode represents different types of window placement errors
type ErrorCode int

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeEnvironmentQuery
	ErrCodePlacementDenied
	ErrCodeInvalidHandle
	ErrCodeUnsupported
	ErrCodeValidation
)

// String returns a string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case ErrCodeEnvironmentQuery:
		return "ENVIRONMENT_QUERY"
	case ErrCodePlacementDenied:
		return "PLACEMENT_DENIED"
	case ErrCodeInvalidHandle:
		return "INVALID_HANDLE"
	case ErrCodeUnsupported:
		return "UNSUPPORTED"
	case ErrCodeValidation:
		return "VALIDATION"
	default:
		return "UNKNOWN"
	}
}

// ErrUnsupportedPlatform is returned by the OS binding on platforms without window placement support
var ErrUnsupportedPlatform = errors.New("window placement is only supported on windows")

// PlacementError represents a failure of one window placement invocation
type PlacementError struct {
	Op        string            // operation name
	Err       error             // underlying error
	Code      ErrorCode         // error classification
	Context   map[string]string // additional context information
	Timestamp time.Time         // when the error occurred
}

func (e *PlacementError) Error() string {
	if e == nil {
		return "placement error"
	}

	var parts []string

	if e.Op != "" {
		parts = append(parts, fmt.Sprintf("op=%s", e.Op))
	}

	if e.Code != ErrCodeUnknown {
		parts = append(parts, fmt.Sprintf("code=%s", e.Code.String()))
	}

	// Context keys are sorted so the message is stable
	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", k, e.Context[k]))
		}
	}

	contextStr := ""
	if len(parts) > 0 {
		contextStr = fmt.Sprintf(" [%s]", strings.Join(parts, " "))
	}

	if e.Err != nil {
		return e.Err.Error() + contextStr
	}
	return "placement error" + contextStr
}

func (e *PlacementError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements error matching for errors.Is
func (e *PlacementError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*PlacementError); ok {
		return e.Code == t.Code
	}
	if e.Err != nil {
		return errors.Is(e.Err, target)
	}
	return false
}

// GetCode returns the error code as a string (for logging interface compatibility)
func (e *PlacementError) GetCode() string {
	if e == nil {
		return ErrCodeUnknown.String()
	}
	return e.Code.String()
}

// GetContext returns the error context (for logging interface compatibility)
func (e *PlacementError) GetContext() map[string]string {
	if e == nil || e.Context == nil {
		return make(map[string]string)
	}
	return e.Context
}

// GetTimestamp returns the error timestamp (for logging interface compatibility)
func (e *PlacementError) GetTimestamp() time.Time {
	if e == nil {
		return time.Time{}
	}
	return e.Timestamp
}

// WithContext adds context information to the error by mutating the receiver.
// Not safe once the error has been handed to another goroutine.
func (e *PlacementError) WithContext(key, value string) *PlacementError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// NewPlacementError creates a new placement error with the given parameters
func NewPlacementError(op string, err error, code ErrorCode) *PlacementError {
	return &PlacementError{
		Op:        op,
		Err:       err,
		Code:      code,
		Context:   make(map[string]string),
		Timestamp: time.Now(),
	}
}

// NewPlacementErrorWithContext creates a new placement error with additional context
func NewPlacementErrorWithContext(op string, err error, code ErrorCode, context map[string]string) *PlacementError {
	placementErr := NewPlacementError(op, err, code)
	if context != nil {
		placementErr.Context = make(map[string]string, len(context))
		for k, v := range context {
			placementErr.Context[k] = v
		}
	}
	return placementErr
}

// CodeOf returns the classification of err, or ErrCodeUnknown if err is not a PlacementError
func CodeOf(err error) ErrorCode {
	var placementErr *PlacementError
	if errors.As(err, &placementErr) {
		return placementErr.Code
	}
	return ErrCodeUnknown
}

// IsEnvironmentQuery checks if the error came from querying OS state
func IsEnvironmentQuery(err error) bool {
	return CodeOf(err) == ErrCodeEnvironmentQuery
}

// IsPlacementDenied checks if the OS refused to move or resize a window
func IsPlacementDenied(err error) bool {
	return CodeOf(err) == ErrCodePlacementDenied
}

// IsInvalidHandle checks if the target window no longer exists
func IsInvalidHandle(err error) bool {
	return CodeOf(err) == ErrCodeInvalidHandle
}

// IsUnsupported checks if the current platform cannot place windows
func IsUnsupported(err error) bool {
	return CodeOf(err) == ErrCodeUnsupported
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return CodeOf(err) == ErrCodeValidation
}
