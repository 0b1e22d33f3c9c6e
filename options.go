package flow

import (
	"github.com/rs/xid"

	"pipelined.dev/flow/log"
)

// Logger is a diagnostic sink for pads and elements. It's used to report
// state changes and received events and never affects control flow.
type Logger interface {
	Debug(...interface{})
	Info(...interface{})
}

// defaultLogger is used when no logger is provided with options.
var defaultLogger Logger = log.GetLogger()

// newUID returns new unique id value.
func newUID() string {
	return xid.New().String()
}

// Option provides a way to set functional parameters to element.
type Option func(e *Element) error

// PadOption provides a way to set functional parameters to pad.
type PadOption func(p *Pad)

// WithName sets name to element. Element uid is used by default.
func WithName(n string) Option {
	return func(e *Element) error {
		e.name = n
		return nil
	}
}

// WithLogger sets logger to element. Pads without own logger inherit it.
func WithLogger(l Logger) Option {
	return func(e *Element) error {
		e.log = l
		return nil
	}
}

// WithPads adds pads to element in provided order.
func WithPads(pads ...*Pad) Option {
	return func(e *Element) error {
		for _, p := range pads {
			if err := e.AddPad(p); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithPadName sets name to pad. Pad uid is used by default.
func WithPadName(n string) PadOption {
	return func(p *Pad) {
		p.name = n
	}
}

// WithPadLogger sets logger to pad.
func WithPadLogger(l Logger) PadOption {
	return func(p *Pad) {
		p.log = l
	}
}

// WithHook installs a hook which is called for every item pushed into a
// playing pad. Linked source pads forward data to peers instead and use
// the hook only when they have no peers.
func WithHook(fn HookFunc) PadOption {
	return func(p *Pad) {
		p.hook = fn
	}
}

// WithEventHook installs a hook which is called after pad handled received
// event.
func WithEventHook(fn EventFunc) PadOption {
	return func(p *Pad) {
		p.onEvent = fn
	}
}
