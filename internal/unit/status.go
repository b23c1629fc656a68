package unit

import (
	"errors"
	"strings"
)

// ErrStatusConflict is returned when a status change contradicts the unit's
// current state.
var ErrStatusConflict = errors.New("status conflict")

// Status holds the unit's stance and activity flags. The setters keep the
// combinations legal: prone and hull-down exclude each other, and a unit that
// is shut down cannot evade.
type Status struct {
	prone    bool
	hullDown bool
	shutDown bool
	stuck    bool
	evading  bool
	immobile bool
	careful  bool
}

func (s *Status) Prone() bool    { return s.prone }
func (s *Status) HullDown() bool { return s.hullDown }
func (s *Status) ShutDown() bool { return s.shutDown }
func (s *Status) Stuck() bool    { return s.stuck }
func (s *Status) Evading() bool  { return s.evading }
func (s *Status) Immobile() bool { return s.immobile }
func (s *Status) Careful() bool  { return s.careful }

func (s *Status) SetProne(v bool) {
	s.prone = v
	if v {
		s.hullDown = false
		s.evading = false
	}
}

func (s *Status) SetHullDown(v bool) {
	s.hullDown = v
	if v {
		s.prone = false
	}
}

func (s *Status) SetShutDown(v bool) {
	s.shutDown = v
	if v {
		s.evading = false
	}
}

func (s *Status) SetStuck(v bool) {
	s.stuck = v
	if v {
		s.evading = false
	}
}

func (s *Status) SetImmobile(v bool) {
	s.immobile = v
	if v {
		s.evading = false
	}
}

func (s *Status) SetCareful(v bool) { s.careful = v }

// SetEvading fails while the unit is shut down, prone, stuck or immobile.
func (s *Status) SetEvading(v bool) error {
	if v && (s.shutDown || s.prone || s.stuck || s.immobile) {
		return ErrStatusConflict
	}
	s.evading = v
	return nil
}

func (s Status) String() string {
	var flags []string
	for _, f := range []struct {
		on   bool
		name string
	}{
		{s.prone, "prone"}, {s.hullDown, "hull-down"}, {s.shutDown, "shutdown"},
		{s.stuck, "stuck"}, {s.evading, "evading"}, {s.immobile, "immobile"},
		{s.careful, "careful"},
	} {
		if f.on {
			flags = append(flags, f.name)
		}
	}
	if len(flags) == 0 {
		return "normal"
	}
	return strings.Join(flags, ",")
}

// ─── Crew ───────────────────────────────────────────────────────────────────

// MaxCrewHits kills the pilot.
const MaxCrewHits = 6

type Crew struct {
	Name     string
	Gunnery  int
	Piloting int

	Hits        int
	Unconscious bool
	Dead        bool
	Doomed      bool

	// Edge is the number of rerolls left.
	Edge int
	// RoundsActive counts rounds of combat for fatigue.
	RoundsActive int

	Abilities []string
}

func NewCrew(name string, gunnery, piloting int) Crew {
	return Crew{Name: name, Gunnery: gunnery, Piloting: piloting}
}

// Damage adds pilot hits, capped at MaxCrewHits. Reaching the cap dooms the
// pilot.
func (c *Crew) Damage(n int) {
	c.Hits += n
	if c.Hits >= MaxCrewHits {
		c.Hits = MaxCrewHits
		c.Doomed = true
	}
}

// Incapacitated covers dead, doomed and crews at the hit cap.
func (c *Crew) Incapacitated() bool {
	return c.Dead || c.Doomed || c.Hits >= MaxCrewHits
}

// SpendEdge uses one edge point, reporting false when none remain.
func (c *Crew) SpendEdge() bool {
	if c.Edge <= 0 {
		return false
	}
	c.Edge--
	return true
}

func (c *Crew) HasAbility(name string) bool {
	for _, a := range c.Abilities {
		if strings.EqualFold(a, name) {
			return true
		}
	}
	return false
}
