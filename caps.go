package flow

// Caps describes the data format a pad can produce or accept. Caps are
// immutable once constructed.
type Caps struct {
	format string
}

// NewCaps returns caps for provided format identifier, e.g. "audio/pcm".
func NewCaps(format string) Caps {
	return Caps{format: format}
}

// Format returns format identifier.
func (c Caps) Format() string {
	return c.format
}

// CompatibleWith returns true if caps can be linked with provided caps.
func (c Caps) CompatibleWith(other Caps) bool {
	return Compatible(c, other)
}

func (c Caps) String() string {
	return c.format
}

// Compatible returns true if a and b describe the same format. Only exact
// match of format identifiers is supported.
func Compatible(a, b Caps) bool {
	return a.format == b.format
}
