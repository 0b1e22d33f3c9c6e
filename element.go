package flow

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Component is a pipeline unit composed of pads. Element implements the
// default behaviour. Concrete components embed *Element and override
// Process and OnEvent.
type Component interface {
	Pads() []*Pad
	Process(item interface{})
	OnEvent(e Event)
}

// Element owns an ordered collection of pads.
//
// Element is not safe for concurrent use.
type Element struct {
	uid    string
	name   string
	pads   []*Pad
	closed bool
	log    Logger
}

// New creates a new element and applies provided options.
func New(options ...Option) (*Element, error) {
	e := &Element{
		uid: newUID(),
	}
	for _, option := range options {
		if err := option(e); err != nil {
			return nil, err
		}
	}
	if e.name == "" {
		e.name = e.uid
	}
	return e, nil
}

// Name returns name of the element.
func (e *Element) Name() string {
	return e.name
}

func (e *Element) String() string {
	return e.name
}

// AddPad appends pad to the element. Pad can be owned by one element
// only.
func (e *Element) AddPad(p *Pad) error {
	switch {
	case e.closed:
		return ErrElementClosed
	case p == nil:
		return fmt.Errorf("add nil pad to %v: %w", e, ErrPadClosed)
	case p.closed:
		return ErrPadClosed
	case p.owner != nil:
		return fmt.Errorf("add %v to %v: %w", p, e, ErrPadOwned)
	}
	p.owner = e
	e.pads = append(e.pads, p)
	return nil
}

// Pads returns pads of the element in the order they were added.
func (e *Element) Pads() []*Pad {
	if e == nil {
		return nil
	}
	return append([]*Pad(nil), e.pads...)
}

// Pad returns pad with provided name or nil if there is no such pad.
func (e *Element) Pad(name string) *Pad {
	for _, p := range e.pads {
		if p.name == name {
			return p
		}
	}
	return nil
}

// RequestPad instantiates a new pad from compatible request pad template.
// ErrNoTemplate is returned if element has no such template.
func (e *Element) RequestPad(role Role, caps Caps, options ...PadOption) (*Pad, error) {
	if role == Request {
		return nil, ErrInvalidRole
	}
	for _, t := range e.pads {
		if t.role != Request || !Compatible(t.caps, caps) {
			continue
		}
		p := NewPad(role, t.caps, options...)
		if err := e.AddPad(p); err != nil {
			return nil, err
		}
		e.logger().Debug(fmt.Sprintf("requested %v pad %v", role, p.name))
		return p, nil
	}
	return nil, fmt.Errorf("request %v pad %v: %w", role, caps, ErrNoTemplate)
}

// Link links every source pad of the element with every compatible sink
// pad of other component. Returns the number of linked pairs. If there
// were pairs to link, but none of them could be linked, the error lists
// all failures. Zero pairs and nil error mean there was nothing to link.
// ErrElementClosed is returned if other component is nil.
func (e *Element) Link(other Component) (int, error) {
	if other == nil {
		return 0, fmt.Errorf("link %v to nil component: %w", e, ErrElementClosed)
	}
	var (
		linked int
		errs   linkErrors
	)
	for _, src := range e.pads {
		if src.role != Source {
			continue
		}
		for _, sink := range other.Pads() {
			if sink.role != Sink {
				continue
			}
			if err := src.Link(sink); err != nil {
				errs = append(errs, err)
				continue
			}
			linked++
		}
	}
	if linked > 0 {
		e.logger().Debug(fmt.Sprintf("linked %d pad pairs", linked))
		return linked, nil
	}
	return 0, errs.ret()
}

// Unlink removes all links between source pads of the element and sink
// pads of other component. Returns the number of removed links.
func (e *Element) Unlink(other Component) int {
	if other == nil {
		return 0
	}
	var unlinked int
	for _, src := range e.pads {
		if src.role != Source {
			continue
		}
		for _, sink := range other.Pads() {
			if src.Unlink(sink) {
				unlinked++
			}
		}
	}
	return unlinked
}

// Process pushes item into every source pad of the element.
func (e *Element) Process(item interface{}) {
	for _, p := range e.pads {
		if p.role == Source {
			p.PushData(item)
		}
	}
}

// ActivateAllPads activates every pad of the element.
func (e *Element) ActivateAllPads() {
	for _, p := range e.pads {
		p.Activate()
	}
}

// DeactivateAllPads deactivates every pad of the element.
func (e *Element) DeactivateAllPads() {
	for _, p := range e.pads {
		p.Deactivate()
	}
}

// PauseAllPads pauses every playing pad of the element. Returns the number
// of paused pads.
func (e *Element) PauseAllPads() int {
	var paused int
	for _, p := range e.pads {
		if p.state == Playing && p.Pause() == nil {
			paused++
		}
	}
	return paused
}

// OnEvent sends event to every pad of the element.
func (e *Element) OnEvent(ev Event) {
	e.logger().Info(fmt.Sprintf("event received: %v", ev))
	for _, p := range e.pads {
		p.SendEvent(ev)
	}
}

// Close destroys all pads of the element. Links to them become stale.
func (e *Element) Close() {
	if e.closed {
		return
	}
	for _, p := range e.pads {
		p.Close()
	}
	e.pads = nil
	e.closed = true
	e.logger().Debug("element closed")
}

func (e *Element) logger() Logger {
	l := e.log
	if l == nil {
		l = defaultLogger
	}
	if fl, ok := l.(logrus.FieldLogger); ok {
		return fl.WithField("element", e.name)
	}
	return l
}
