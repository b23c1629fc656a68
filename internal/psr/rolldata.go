package psr

import (
	"fmt"
	"strings"

	"github.com/JustinWhittecar/mekrules/internal/unit"
)

// Outcome is the kind of result a piloting roll requirement carries. Only
// Numeric has a target number; the rest must be handled before rolling.
type Outcome int

const (
	Numeric Outcome = iota
	AutomaticSuccess
	AutomaticFail
	Impossible
	CheckFalse
)

func (o Outcome) String() string {
	switch o {
	case AutomaticSuccess:
		return "automatic success"
	case AutomaticFail:
		return "automatic failure"
	case Impossible:
		return "impossible"
	case CheckFalse:
		return "not required"
	default:
		return "numeric"
	}
}

// RollData is one piloting roll requirement. Modifiers accumulate while the
// requirement is built; a sentinel outcome overrides the number.
type RollData struct {
	Outcome    Outcome
	Base       int
	BaseReason string
	Modifiers  []unit.Modifier
	// Reason explains a sentinel outcome.
	Reason string
}

func newRoll(base int, reason string) *RollData {
	return &RollData{Base: base, BaseReason: reason}
}

func sentinel(o Outcome, reason string) *RollData {
	return &RollData{Outcome: o, Reason: reason}
}

// Add appends a modifier.
func (r *RollData) Add(value int, reason string) {
	r.Modifiers = append(r.Modifiers, unit.Modifier{Value: value, Reason: reason})
}

func (r *RollData) addAll(mods []unit.Modifier) {
	r.Modifiers = append(r.Modifiers, mods...)
}

// Set replaces the outcome when o outranks the current one. The ranking is
// CheckFalse, Impossible, AutomaticFail, AutomaticSuccess, Numeric.
func (r *RollData) Set(o Outcome, reason string) {
	if o > r.Outcome {
		r.Outcome = o
		r.Reason = reason
	}
}

// Required reports whether the turn engine has to resolve this check at all.
func (r *RollData) Required() bool { return r.Outcome != CheckFalse }

// Value is the base plus every modifier.
func (r *RollData) Value() int {
	v := r.Base
	for _, m := range r.Modifiers {
		v += m.Value
	}
	return v
}

// Target returns the number to roll, or false for sentinel outcomes.
func (r *RollData) Target() (int, bool) {
	if r.Outcome != Numeric {
		return 0, false
	}
	return r.Value(), true
}

// Has reports a modifier with the given reason.
func (r *RollData) Has(reason string) bool {
	for _, m := range r.Modifiers {
		if m.Reason == reason {
			return true
		}
	}
	return false
}

// Description lists the base and modifiers in order.
func (r *RollData) Description() string {
	parts := []string{fmt.Sprintf("%d (%s)", r.Base, r.BaseReason)}
	for _, m := range r.Modifiers {
		parts = append(parts, m.String())
	}
	return strings.Join(parts, ", ")
}

func (r *RollData) String() string {
	if r.Outcome != Numeric {
		return fmt.Sprintf("%s: %s", r.Outcome, r.Reason)
	}
	return fmt.Sprintf("%d [%s]", r.Value(), r.Description())
}
