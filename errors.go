package dragdrop

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

// Kind identifies the category of a UsageError.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindUnmounted indicates a measurable box was needed before one was mounted.
	KindUnmounted
	// KindNoDrag indicates a drop arrived while no drag was active.
	KindNoDrag
	// KindMissingPosition indicates a controlled element without a position.
	KindMissingPosition
	// KindIgnoredProp indicates a prop that has no effect in the element's mode.
	KindIgnoredProp
)

func (k Kind) String() string {
	switch k {
	case KindUnmounted:
		return "unmounted"
	case KindNoDrag:
		return "no-drag"
	case KindMissingPosition:
		return "missing-position"
	case KindIgnoredProp:
		return "ignored-prop"
	default:
		return "unknown"
	}
}

// Sentinel errors wrapped by UsageError. Match them with errors.Is.
var (
	ErrNotMounted      = errors.New("box is not mounted")
	ErrNoActiveDrag    = errors.New("no drag is active")
	ErrMissingPosition = errors.New("prop Position must be provided for a controlled element")
	ErrIgnoredDefault  = errors.New("prop DefaultPosition is ignored for a controlled element")
	ErrIgnoredPosition = errors.New("prop Position is ignored for an uncontrolled element")
)

// UsageError reports a contract violation by the integrating code.
// Fatal violations are raised with panic; advisory ones go to the
// WarningHandler and execution continues.
type UsageError struct {
	// Op is the operation that detected the problem (e.g. "Surface.Drop").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying sentinel error.
	Err error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("dragdrop: %s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// fatal panics with a UsageError.
func fatal(op string, kind Kind, err error) {
	panic(&UsageError{Op: op, Kind: kind, Err: err})
}

// WarningHandler receives advisory usage errors.
type WarningHandler interface {
	HandleWarning(err *UsageError)
}

// LogHandler is a WarningHandler that logs warnings to stderr.
type LogHandler struct{}

// HandleWarning prints the warning to stderr.
func (LogHandler) HandleWarning(err *UsageError) {
	if err == nil {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[dragdrop] warning: %s: %v\n", err.Op, err.Err)
}

var (
	warningHandler WarningHandler = LogHandler{}
	handlerMu      sync.RWMutex
)

// SetWarningHandler replaces the global warning handler.
// Pass nil to restore the default LogHandler.
func SetWarningHandler(h WarningHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		warningHandler = LogHandler{}
	} else {
		warningHandler = h
	}
}

// warn sends an advisory usage error to the global handler.
func warn(op string, kind Kind, err error) {
	handlerMu.RLock()
	h := warningHandler
	handlerMu.RUnlock()
	if h != nil {
		h.HandleWarning(&UsageError{Op: op, Kind: kind, Err: err})
	}
}
