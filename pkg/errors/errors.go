// Package errors provides structured error handling for easelab.
//
// Every failure the engine can produce is an [*EaseError] carrying the failing
// operation, an [ErrorKind] and one of the sentinel errors below, so callers can
// branch with the standard library's errors.Is:
//
//	if errors.Is(err, easeerrors.ErrInvalidPolicy) {
//	    // keep the previous policy
//	}
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindUnknownEasing indicates a lookup of an unregistered easing identifier.
	KindUnknownEasing
	// KindInvalidResolution indicates a sampler request that cannot form a path.
	KindInvalidResolution
	// KindInvalidPolicy indicates a timing policy that has no sensible motion.
	KindInvalidPolicy
	// KindConfig indicates an unreadable or invalid configuration file.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnknownEasing:
		return "unknown_easing"
	case KindInvalidResolution:
		return "invalid_resolution"
	case KindInvalidPolicy:
		return "invalid_policy"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel errors wrapped by EaseError.
var (
	// ErrUnknownEasing is returned when an easing identifier is not registered.
	ErrUnknownEasing = stderrors.New("unknown easing id")
	// ErrInvalidResolution is returned when a curve is sampled with fewer than one interval.
	ErrInvalidResolution = stderrors.New("invalid resolution")
	// ErrInvalidDomain is returned when a plot rectangle leaves no drawable area.
	ErrInvalidDomain = stderrors.New("invalid domain")
	// ErrInvalidPolicy is returned for a timing policy with a non-positive duration
	// or other out-of-range values.
	ErrInvalidPolicy = stderrors.New("invalid timing policy")
	// ErrInvalidConfig is returned when easelab.yaml cannot be read or holds
	// out-of-range values.
	ErrInvalidConfig = stderrors.New("invalid configuration")
)

// EaseError represents a structured error in easelab.
type EaseError struct {
	// Op is the operation that failed (e.g., "easing.Lookup").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// ID is the easing identifier involved, if any.
	ID string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *EaseError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s [%s] id=%s: %v", e.Op, e.Kind, e.ID, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *EaseError) Unwrap() error {
	return e.Err
}

// New builds an EaseError wrapping sentinel with a formatted detail message.
// The result matches sentinel under errors.Is.
func New(op string, kind ErrorKind, sentinel error, format string, args ...any) *EaseError {
	err := sentinel
	if format != "" {
		err = fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
	}
	return &EaseError{Op: op, Kind: kind, Err: err}
}

// KindOf returns the kind of the first EaseError in err's chain,
// or KindUnknown if there is none.
func KindOf(err error) ErrorKind {
	var ee *EaseError
	if stderrors.As(err, &ee) {
		return ee.Kind
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "animation.StepTickers").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by easelab.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *EaseError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
