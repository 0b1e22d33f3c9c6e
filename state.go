package flow

// Role defines direction of a pad.
type Role int

// State of a pad.
type State int

// Event is a control event that travels along with data.
type Event string

// pad roles.
const (
	// Source pads produce data.
	Source Role = iota
	// Sink pads consume data.
	Sink
	// Request pads are templates for pads instantiated on demand. They
	// cannot be linked.
	Request
)

// pad states.
const (
	// Stopped pads drop all pushed data. This is the initial state.
	Stopped State = iota
	// Paused pads drop all pushed data, but keep their links.
	Paused
	// Playing pads pass pushed data to their hook.
	Playing
)

// EndOfStream signals that no more data will arrive. It deactivates the pad
// that receives it.
const EndOfStream Event = "EOS"

func (r Role) String() string {
	switch r {
	case Source:
		return "source"
	case Sink:
		return "sink"
	case Request:
		return "request"
	}
	return "unknown"
}

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Paused:
		return "paused"
	case Playing:
		return "playing"
	}
	return "unknown"
}

func (e Event) String() string {
	return string(e)
}
