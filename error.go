package flow

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidRole is returned when pads of the same role or request
	// pads are linked.
	ErrInvalidRole = errors.New("invalid pad role")
	// ErrIncompatibleCaps is returned when pads with incompatible caps are
	// linked.
	ErrIncompatibleCaps = errors.New("incompatible caps")
	// ErrPadClosed is returned when closed pad is used.
	ErrPadClosed = errors.New("pad is closed")
	// ErrPadOwned is returned when pad is added to the second element.
	ErrPadOwned = errors.New("pad already has an owner")
	// ErrElementClosed is returned when pad is added to closed element.
	ErrElementClosed = errors.New("element is closed")
	// ErrInvalidState is returned if pad state transition is not allowed.
	ErrInvalidState = errors.New("invalid state")
	// ErrNoTemplate is returned when element has no request pad which can
	// serve requested caps.
	ErrNoTemplate = errors.New("no request pad template")
)

// LinkError is returned when two pads cannot be linked.
type LinkError struct {
	Src  string
	Sink string
	Err  error
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link %s to %s: %v", e.Src, e.Sink, e.Err)
}

// Unwrap returns the reason of link failure.
func (e *LinkError) Unwrap() error {
	return e.Err
}

// Is checks if link failed with provided sentinel error.
func (e *LinkError) Is(err error) bool {
	return e.Err != nil && errors.Is(e.Err, err)
}

// linkErrors wraps errors that occured when multiple pad pairs failed to
// link.
type linkErrors []error

func (e linkErrors) Error() string {
	s := []string{}
	for _, se := range e {
		s = append(s, se.Error())
	}
	return strings.Join(s, ",")
}

// Unwrap allows errors.Is to match any of wrapped errors.
func (e linkErrors) Unwrap() []error {
	return e
}

// ret returns untyped nil if error is list is empty.
func (e linkErrors) ret() error {
	if len(e) > 0 {
		return e
	}
	return nil
}
