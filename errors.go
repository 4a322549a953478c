package weba

import (
	"errors"
	"fmt"
)

// Sentinel errors for template resolution.
var (
	ErrTemplateNotFound = errors.New("weba: template not found")
	ErrSourceMissing    = errors.New("weba: component source is missing")
	ErrSourceType       = errors.New("weba: unrecognized component source type")
	ErrRootNotFound     = errors.New("weba: root element not found")
	ErrEncoding         = errors.New("weba: could not determine markup encoding")
)

// Sentinel errors for tree structure violations.
var (
	ErrNoParent             = errors.New("weba: node has no parent")
	ErrSelfReplacement      = errors.New("weba: node cannot replace itself")
	ErrParentReplacement    = errors.New("weba: node cannot be replaced by its own parent")
	ErrEmptyNode            = errors.New("weba: node has no children")
	ErrIndexOutOfRange      = errors.New("weba: child index out of range")
	ErrUnsupportedKeyAccess = errors.New("weba: key access is not supported on this node")
)

// Sentinel errors for attribute and capability access.
var (
	ErrUnknownAttribute = errors.New("weba: unknown attribute")
	ErrInvalidSelector  = errors.New("weba: invalid selector")
)

// Sentinel errors for lifecycle sequencing and type contracts. They are
// always returned wrapped with the component name, as in
// "weba: component (Card): has async hooks but was called synchronously".
var (
	ErrComponentAsync       = errors.New("has async hooks but was called synchronously")
	ErrComponentAfterRender = errors.New("AfterRender cannot run in a synchronous scope: use AwaitWith or remove AfterRender")
	ErrComponentBuilt       = errors.New("instance was already built")
	ErrComponentType        = errors.New("render returned an unsupported type")
)

// IsTemplateError checks if err was caused by resolving, decoding or
// parsing a component source.
func IsTemplateError(err error) bool {
	return errors.Is(err, ErrTemplateNotFound) ||
		errors.Is(err, ErrSourceMissing) ||
		errors.Is(err, ErrSourceType) ||
		errors.Is(err, ErrRootNotFound) ||
		errors.Is(err, ErrEncoding)
}

// IsStructuralError checks if err is a tree mutation precondition failure.
func IsStructuralError(err error) bool {
	return errors.Is(err, ErrNoParent) ||
		errors.Is(err, ErrSelfReplacement) ||
		errors.Is(err, ErrParentReplacement) ||
		errors.Is(err, ErrEmptyNode) ||
		errors.Is(err, ErrIndexOutOfRange) ||
		errors.Is(err, ErrUnsupportedKeyAccess)
}

// IsLifecycleError checks if err reports a component invoked the wrong way
// for the hooks it declares.
func IsLifecycleError(err error) bool {
	return errors.Is(err, ErrComponentAsync) ||
		errors.Is(err, ErrComponentAfterRender) ||
		errors.Is(err, ErrComponentBuilt)
}

func componentError(name string, err error) error {
	return fmt.Errorf("weba: component (%s): %w", name, err)
}

// HookError wraps an error returned by a lifecycle hook with the component
// and phase it came from.
type HookError struct {
	Component string
	Phase     Phase
	Err       error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("weba: component (%s): %s: %v", e.Component, e.Phase, e.Err)
}

func (e *HookError) Unwrap() error {
	return e.Err
}
