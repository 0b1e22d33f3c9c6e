// Package mock provides mock elements and allows to execute integration
// tests of pipelines.
package mock

import (
	"errors"
	"fmt"

	"pipelined.dev/flow"
)

// Source is an element with a single source pad.
type Source struct {
	*flow.Element
	Out *flow.Pad
}

// NewSource returns a new source with a pad of provided format.
func NewSource(format string, options ...flow.Option) (*Source, error) {
	out := flow.NewPad(flow.Source, flow.NewCaps(format), flow.WithPadName("src"))
	e, err := flow.New(append(options, flow.WithPads(out))...)
	if err != nil {
		return nil, err
	}
	return &Source{
		Element: e,
		Out:     out,
	}, nil
}

// Sink is an element with a single sink pad. It collects received items
// and counts received events.
type Sink struct {
	*flow.Element
	In      *flow.Pad
	Discard bool
	items   []interface{}
	events  map[flow.Event]int
}

// NewSink returns a new sink with a pad of provided format.
func NewSink(format string, options ...flow.Option) (*Sink, error) {
	s := &Sink{
		events: make(map[flow.Event]int),
	}
	s.In = flow.NewPad(
		flow.Sink,
		flow.NewCaps(format),
		flow.WithPadName("sink"),
		flow.WithHook(s.receive),
		flow.WithEventHook(func(_ *flow.Pad, e flow.Event) {
			s.events[e]++
		}),
	)
	e, err := flow.New(append(options, flow.WithPads(s.In))...)
	if err != nil {
		return nil, err
	}
	s.Element = e
	return s, nil
}

func (s *Sink) receive(item interface{}) {
	if !s.Discard {
		s.items = append(s.items, item)
	}
}

// Items returns received items.
func (s *Sink) Items() []interface{} {
	return s.items
}

// Events returns how many times event was received.
func (s *Sink) Events(e flow.Event) int {
	return s.events[e]
}

// Reset drops received items and events.
func (s *Sink) Reset() {
	s.items = nil
	s.events = make(map[flow.Event]int)
}

// Demuxer is an element with multiple source pads.
type Demuxer struct {
	*flow.Element
	Outs []*flow.Pad
}

// NewDemuxer returns a new demuxer with a source pad per provided format.
func NewDemuxer(formats []string, options ...flow.Option) (*Demuxer, error) {
	outs := make([]*flow.Pad, 0, len(formats))
	for i, format := range formats {
		outs = append(outs, flow.NewPad(
			flow.Source,
			flow.NewCaps(format),
			flow.WithPadName(fmt.Sprintf("src_%d", i)),
		))
	}
	e, err := flow.New(append(options, flow.WithPads(outs...))...)
	if err != nil {
		return nil, err
	}
	return &Demuxer{
		Element: e,
		Outs:    outs,
	}, nil
}

// ErrNoInputs is returned when mixer is created without inputs.
var ErrNoInputs = errors.New("mixer needs at least one input")

// Mixer is an element with multiple sink pads and a single source pad.
// Items received by any input are pushed to the output. End of stream is
// forwarded downstream only after it was received by all inputs.
type Mixer struct {
	*flow.Element
	Ins   []*flow.Pad
	Out   *flow.Pad
	ended map[*flow.Pad]bool
}

// NewMixer returns a new mixer with provided number of inputs.
func NewMixer(format string, inputs int, options ...flow.Option) (*Mixer, error) {
	if inputs <= 0 {
		return nil, ErrNoInputs
	}
	m := &Mixer{
		ended: make(map[*flow.Pad]bool),
	}
	caps := flow.NewCaps(format)
	pads := make([]*flow.Pad, 0, inputs+1)
	for i := 0; i < inputs; i++ {
		in := flow.NewPad(
			flow.Sink,
			caps,
			flow.WithPadName(fmt.Sprintf("sink_%d", i)),
			flow.WithHook(m.Process),
			flow.WithEventHook(m.inputEvent),
		)
		m.Ins = append(m.Ins, in)
		pads = append(pads, in)
	}
	m.Out = flow.NewPad(flow.Source, caps, flow.WithPadName("src"))
	pads = append(pads, m.Out)

	e, err := flow.New(append(options, flow.WithPads(pads...))...)
	if err != nil {
		return nil, err
	}
	m.Element = e
	return m, nil
}

// Process pushes item to the output until all inputs are ended.
func (m *Mixer) Process(item interface{}) {
	if m.done() {
		return
	}
	m.Out.PushData(item)
}

// OnEvent delivers end of stream to inputs only, output is ended once all
// inputs are. Other events are handled by element.
func (m *Mixer) OnEvent(e flow.Event) {
	if e != flow.EndOfStream {
		m.Element.OnEvent(e)
		return
	}
	for _, in := range m.Ins {
		in.SendEvent(e)
	}
}

// ActivateAllPads activates all pads and starts a new stream, so inputs
// ended before must receive end of stream again.
func (m *Mixer) ActivateAllPads() {
	m.ended = make(map[*flow.Pad]bool)
	m.Element.ActivateAllPads()
}

func (m *Mixer) inputEvent(p *flow.Pad, e flow.Event) {
	if e != flow.EndOfStream || m.ended[p] {
		return
	}
	m.ended[p] = true
	if m.done() {
		m.Out.PushEvent(e)
		m.Out.SendEvent(e)
	}
}

func (m *Mixer) done() bool {
	return len(m.ended) == len(m.Ins)
}
