package flow

import (
	"fmt"
	"weak"

	"github.com/sirupsen/logrus"

	"pipelined.dev/flow/metric"
)

type (
	// HookFunc processes an item pushed into a pad.
	HookFunc func(item interface{})

	// EventFunc is called when pad received an event.
	EventFunc func(p *Pad, e Event)
)

// Pad is a typed connection point of an element. Data pushed into a
// playing pad is passed to its hook. Linked source pads forward data to
// all their peers instead and fall back to the hook once all peers are
// gone.
//
// Peers are referenced weakly: a pad never keeps its peers alive. Peers
// that were garbage collected or closed are skipped during propagation and
// pruned.
//
// Pad is not safe for concurrent use. All propagation happens
// synchronously on the caller's goroutine.
type Pad struct {
	uid  string
	name string
	role Role
	caps Caps

	state      State
	closed     bool
	owner      *Element
	peers      []weak.Pointer[Pad]
	forwarding bool
	hook       HookFunc
	onEvent    EventFunc

	stats Stats
	meter *metric.Counters
	log   Logger
}

// Stats contains pad counters.
type Stats struct {
	Pushed     int // items pushed into the pad.
	Handled    int // items passed to the hook or delivered to peers.
	Dropped    int // items dropped because pad wasn't playing or had no receiver.
	Forwarded  int // items delivered to peers.
	StalePeers int // stale peers skipped.
	Events     int // events received.
}

// NewPad creates a new stopped pad.
func NewPad(role Role, caps Caps, options ...PadOption) *Pad {
	p := &Pad{
		uid:   newUID(),
		role:  role,
		caps:  caps,
		state: Stopped,
		meter: metric.Meter(caps.Format()),
	}
	for _, option := range options {
		option(p)
	}
	if p.name == "" {
		p.name = p.uid
	}
	return p
}

// Name returns name of the pad.
func (p *Pad) Name() string {
	return p.name
}

// Role returns role of the pad.
func (p *Pad) Role() Role {
	return p.role
}

// Caps returns caps of the pad.
func (p *Pad) Caps() Caps {
	return p.caps
}

// State returns current state of the pad.
func (p *Pad) State() State {
	return p.state
}

// Owner returns element which owns the pad.
func (p *Pad) Owner() *Element {
	return p.owner
}

// Closed returns true if pad was closed.
func (p *Pad) Closed() bool {
	return p.closed
}

// Stats returns pad counters.
func (p *Pad) Stats() Stats {
	return p.stats
}

// SetHook installs a hook which is called for every item pushed into a
// playing pad. Linked source pads use it only when they have no peers.
func (p *Pad) SetHook(fn HookFunc) {
	p.hook = fn
}

func (p *Pad) String() string {
	if p.owner != nil {
		return fmt.Sprintf("%s.%s", p.owner.name, p.name)
	}
	return p.name
}

// Activate sets pad into playing state. Closed pads stay stopped.
func (p *Pad) Activate() {
	if p.closed {
		return
	}
	p.state = Playing
	p.logger().Info("pad activated")
}

// Deactivate sets pad into stopped state. Subsequent pushes are dropped
// until pad is activated again.
func (p *Pad) Deactivate() {
	p.state = Stopped
	p.logger().Info("pad deactivated")
}

// Pause sets playing pad into paused state. Paused pads drop pushed data.
// ErrInvalidState is returned if pad is stopped.
func (p *Pad) Pause() error {
	switch p.state {
	case Playing:
		p.state = Paused
		p.logger().Info("pad paused")
		return nil
	case Paused:
		return nil
	}
	return ErrInvalidState
}

// PushData passes item to the pad peers or to the pad hook. Item is
// dropped if pad is not playing or nothing could receive it. Returns true
// if item was handled.
func (p *Pad) PushData(item interface{}) bool {
	p.stats.Pushed++
	p.meter.Pushed.Add(1)
	if p.state != Playing {
		return p.drop()
	}
	// all peers might turn out stale, then the hook is used.
	if p.forwarding && p.forward(item) > 0 {
		p.stats.Handled++
		return true
	}
	if p.hook == nil {
		return p.drop()
	}
	p.stats.Handled++
	p.hook(item)
	return true
}

func (p *Pad) drop() bool {
	p.stats.Dropped++
	p.meter.Dropped.Add(1)
	p.debug("data dropped")
	return false
}

// SendEvent delivers event to the pad. EndOfStream deactivates the pad,
// other events are only logged.
func (p *Pad) SendEvent(e Event) {
	p.stats.Events++
	p.meter.Events.Add(1)
	p.logger().Info(fmt.Sprintf("event received: %v", e))
	if e == EndOfStream {
		p.Deactivate()
	}
	if p.onEvent != nil {
		p.onEvent(p, e)
	}
}

// PushEvent sends event to every live peer of the pad. Returns the number
// of peers which received the event.
func (p *Pad) PushEvent(e Event) int {
	var sent, stale int
	for _, w := range p.peers {
		peer := resolve(w)
		if peer == nil {
			stale++
			continue
		}
		peer.SendEvent(e)
		sent++
	}
	p.skipStale(stale)
	return sent
}

// Link creates a symmetric association between the pad and other pad.
// Pads must have opposite roles and compatible caps. Source side of the
// link starts to forward pushed data to all its peers. Linking already
// linked pads has no effect.
func (p *Pad) Link(other *Pad) error {
	src, sink, err := orient(p, other)
	if err != nil {
		return &LinkError{
			Src:  nameOf(p),
			Sink: nameOf(other),
			Err:  err,
		}
	}
	if src.linked(sink) {
		return nil
	}
	src.peers = append(src.peers, weak.Make(sink))
	sink.peers = append(sink.peers, weak.Make(src))
	src.forwarding = true
	src.debug("linked to %v", sink)
	return nil
}

// Unlink removes association between the pad and other pad. Returns false
// if pads were not linked.
func (p *Pad) Unlink(other *Pad) bool {
	if other == nil || !p.linked(other) {
		return false
	}
	p.peers = without(p.peers, other)
	other.peers = without(other.peers, p)
	p.updateForwarding()
	other.updateForwarding()
	p.debug("unlinked from %v", other)
	return true
}

// Peers returns live peers of the pad in link order.
func (p *Pad) Peers() []*Pad {
	peers := make([]*Pad, 0, len(p.peers))
	for _, w := range p.peers {
		if peer := resolve(w); peer != nil {
			peers = append(peers, peer)
		}
	}
	return peers
}

// IsLinked returns true if pad is linked with other pad.
func (p *Pad) IsLinked(other *Pad) bool {
	return other != nil && !p.closed && !other.closed && p.linked(other)
}

// Close stops the pad and releases its hooks and links. Peers see closed
// pad as stale. Closed pad cannot be linked or activated.
func (p *Pad) Close() {
	if p.closed {
		return
	}
	p.state = Stopped
	p.closed = true
	p.hook = nil
	p.onEvent = nil
	p.peers = nil
	p.forwarding = false
	p.meter.Pads.Add(-1)
	p.debug("pad closed")
}

// forward pushes item to every live peer in link order and returns the
// number of peers reached. Peer set is scanned on every call, so links
// made during propagation are served by the next push.
func (p *Pad) forward(item interface{}) int {
	var sent, stale int
	for _, w := range p.peers {
		peer := resolve(w)
		if peer == nil {
			stale++
			continue
		}
		p.stats.Forwarded++
		p.meter.Forwarded.Add(1)
		peer.PushData(item)
		sent++
	}
	p.skipStale(stale)
	return sent
}

// skipStale accounts skipped stale peers and prunes them.
func (p *Pad) skipStale(n int) {
	if n == 0 {
		return
	}
	p.stats.StalePeers += n
	p.meter.Stale.Add(int64(n))
	p.debug("stale peers skipped: %d", n)
	p.prune()
}

// prune removes stale peers. New slice is allocated, because forward
// might be iterating over the current one.
func (p *Pad) prune() {
	live := make([]weak.Pointer[Pad], 0, len(p.peers))
	for _, w := range p.peers {
		if resolve(w) != nil {
			live = append(live, w)
		}
	}
	p.peers = live
	p.updateForwarding()
}

// updateForwarding switches source pad back to its hook when it has no
// peers left.
func (p *Pad) updateForwarding() {
	p.forwarding = p.role == Source && len(p.peers) > 0
}

func (p *Pad) linked(other *Pad) bool {
	w := weak.Make(other)
	for _, peer := range p.peers {
		if peer == w {
			return true
		}
	}
	return false
}

// levelEnabler is implemented by loggers which can tell if level is on.
type levelEnabler interface {
	IsLevelEnabled(logrus.Level) bool
}

// debug formats and logs message only if debug level is enabled.
func (p *Pad) debug(format string, args ...interface{}) {
	if le, ok := p.base().(levelEnabler); ok && !le.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	if len(args) > 0 {
		format = fmt.Sprintf(format, args...)
	}
	p.logger().Debug(format)
}

func (p *Pad) base() Logger {
	l := p.log
	if l == nil && p.owner != nil {
		l = p.owner.log
	}
	if l == nil {
		l = defaultLogger
	}
	return l
}

func (p *Pad) logger() Logger {
	l := p.base()
	fl, ok := l.(logrus.FieldLogger)
	if !ok {
		return l
	}
	fields := logrus.Fields{
		"pad":    p.name,
		"role":   p.role.String(),
		"format": p.caps.Format(),
		"state":  p.state.String(),
	}
	if p.owner != nil {
		fields["element"] = p.owner.name
	}
	return fl.WithFields(fields)
}

// orient validates pads and returns them in source, sink order.
func orient(a, b *Pad) (*Pad, *Pad, error) {
	if b == nil || a.closed || b.closed {
		return nil, nil, ErrPadClosed
	}
	var src, sink *Pad
	switch {
	case a.role == Source && b.role == Sink:
		src, sink = a, b
	case a.role == Sink && b.role == Source:
		src, sink = b, a
	default:
		return nil, nil, ErrInvalidRole
	}
	if !Compatible(src.caps, sink.caps) {
		return nil, nil, ErrIncompatibleCaps
	}
	return src, sink, nil
}

// resolve returns peer if it's still alive and not closed.
func resolve(w weak.Pointer[Pad]) *Pad {
	p := w.Value()
	if p == nil || p.closed {
		return nil
	}
	return p
}

func nameOf(p *Pad) string {
	if p == nil {
		return "<nil>"
	}
	return p.String()
}

// without returns a new slice of peers without provided pad.
func without(peers []weak.Pointer[Pad], p *Pad) []weak.Pointer[Pad] {
	w := weak.Make(p)
	result := make([]weak.Pointer[Pad], 0, len(peers))
	for _, peer := range peers {
		if peer != w {
			result = append(result, peer)
		}
	}
	return result
}
