package unit

import "strconv"

type valueState uint8

const (
	statePoints valueState = iota
	stateNA
	stateDoomed
	stateDestroyed
)

// Value is an armor or internal-structure reading. A location either has
// points, has no such armor at all (NA), is pending destruction (Doomed), or
// is gone (Destroyed).
type Value struct {
	state valueState
	n     int
}

var (
	NA        = Value{state: stateNA}
	Doomed    = Value{state: stateDoomed}
	Destroyed = Value{state: stateDestroyed}
)

// Points returns a numeric value. Negative input is clamped to zero.
func Points(n int) Value {
	if n < 0 {
		n = 0
	}
	return Value{state: statePoints, n: n}
}

func (v Value) IsPoints() bool    { return v.state == statePoints }
func (v Value) IsNA() bool        { return v.state == stateNA }
func (v Value) IsDoomed() bool    { return v.state == stateDoomed }
func (v Value) IsDestroyed() bool { return v.state == stateDestroyed }

// Bad reports a doomed or destroyed value.
func (v Value) Bad() bool { return v.state == stateDoomed || v.state == stateDestroyed }

// Amount is the point count, or 0 for any non-numeric state.
func (v Value) Amount() int {
	if v.state != statePoints {
		return 0
	}
	return v.n
}

func (v Value) Equal(o Value) bool { return v == o }

func (v Value) String() string {
	switch v.state {
	case stateNA:
		return "N/A"
	case stateDoomed:
		return "doomed"
	case stateDestroyed:
		return "destroyed"
	default:
		return strconv.Itoa(v.n)
	}
}
