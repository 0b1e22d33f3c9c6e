// Package metric exposes pad counters with expvar. Counters are aggregated
// per data format.
package metric

import (
	"expvar"
	"fmt"
	"sync"
)

const formatsLabel = "flow.formats"

const (
	// PushedCounter measures number of items pushed into pads.
	PushedCounter = "Pushed"
	// DroppedCounter measures number of items dropped by inactive pads.
	DroppedCounter = "Dropped"
	// ForwardedCounter measures number of items delivered to peers.
	ForwardedCounter = "Forwarded"
	// EventCounter measures number of received events.
	EventCounter = "Events"
	// StaleCounter measures number of skipped stale peers.
	StaleCounter = "Stale"
	// PadCounter counts number of open pads. Closed pads are subtracted.
	PadCounter = "Pads"
)

var (
	formats = metrics{
		m: make(map[string]*Counters),
	}

	counters = []string{
		PushedCounter,
		DroppedCounter,
		ForwardedCounter,
		EventCounter,
		StaleCounter,
		PadCounter,
	}
)

// Counters of a single format.
type Counters struct {
	Pushed    *expvar.Int
	Dropped   *expvar.Int
	Forwarded *expvar.Int
	Events    *expvar.Int
	Stale     *expvar.Int
	Pads      *expvar.Int
}

// Meter returns counters for provided format and registers a new pad in
// them.
func Meter(format string) *Counters {
	c := formats.get(format)
	c.Pads.Add(1)
	return c
}

// Get metrics values for provided format.
func Get(format string) map[string]string {
	m := make(map[string]string)
	for _, counter := range counters {
		v := expvar.Get(key(format, counter))
		if v != nil {
			m[counter] = v.String()
		}
	}
	return m
}

// GetAll returns counters for all measured formats.
func GetAll() map[string]map[string]string {
	m := make(map[string]map[string]string)
	formats.Lock()
	defer formats.Unlock()
	for format := range formats.m {
		m[format] = Get(format)
	}
	return m
}

type metrics struct {
	sync.Mutex
	m map[string]*Counters
}

func (m *metrics) get(format string) *Counters {
	m.Lock()
	defer m.Unlock()
	if c, ok := m.m[format]; ok {
		// return existing counters if available
		return c
	}
	c := &Counters{
		Pushed:    expvar.NewInt(key(format, PushedCounter)),
		Dropped:   expvar.NewInt(key(format, DroppedCounter)),
		Forwarded: expvar.NewInt(key(format, ForwardedCounter)),
		Events:    expvar.NewInt(key(format, EventCounter)),
		Stale:     expvar.NewInt(key(format, StaleCounter)),
		Pads:      expvar.NewInt(key(format, PadCounter)),
	}
	m.m[format] = c
	return c
}

func key(format, counter string) string {
	return fmt.Sprintf("%s.%s.%s", formatsLabel, format, counter)
}
