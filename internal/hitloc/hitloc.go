package hitloc

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/JustinWhittecar/mekrules/internal/board"
	"github.com/JustinWhittecar/mekrules/internal/dice"
	"github.com/JustinWhittecar/mekrules/internal/unit"
)

// TACMode selects how a natural 2 on the normal table is resolved.
type TACMode int

const (
	// TACStandard reports the chart location with a critical.
	TACStandard TACMode = iota
	// TACFloating rerolls the location and reports that with a critical.
	TACFloating
	// TACNone treats a 2 as an ordinary hit.
	TACNone
)

func (m TACMode) String() string {
	switch m {
	case TACFloating:
		return "floating"
	case TACNone:
		return "none"
	default:
		return "standard"
	}
}

func ParseTACMode(s string) (TACMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard":
		return TACStandard, nil
	case "floating":
		return TACFloating, nil
	case "none", "off":
		return TACNone, nil
	}
	return TACStandard, fmt.Errorf("unknown TAC mode %q", s)
}

// Options are the optional hit-location rules in play.
type Options struct {
	TAC            TACMode
	EdgeOnTAC      bool
	EdgeOnHeadHit  bool
	ProneRearTable bool
}

// AimMode is what lets an attacker pick a location.
type AimMode int

const (
	AimNone AimMode = iota
	AimTargetingComputer
	AimImmobile
)

type Aim struct {
	Location int
	Mode     AimMode
}

// Resolver turns dice into hit locations. It holds no per-unit state.
type Resolver struct {
	Dice    dice.Roller
	Options Options
	Log     zerolog.Logger
}

func New(r dice.Roller, opts Options) *Resolver {
	return &Resolver{Dice: r, Options: opts, Log: zerolog.Nop()}
}

// Roll resolves a hit on the given table from side s.
func (r *Resolver) Roll(u *unit.Unit, t unit.Table, s unit.Side) unit.HitData {
	return r.roll(u, t, s, true)
}

// RollAimed resolves an aimed shot. A 2d6 roll of 6 to 8 hits the aimed
// location with a critical; anything else falls back to a normal roll.
func (r *Resolver) RollAimed(u *unit.Unit, t unit.Table, s unit.Side, aim Aim) unit.HitData {
	if aim.Mode == AimNone || aim.Location == unit.LocNone {
		return r.Roll(u, t, s)
	}
	roll := dice.Roll2d6(r.Dice)
	if roll >= 6 && roll <= 8 {
		return finish(u, unit.HitData{
			Location: aim.Location,
			Rear:     s == unit.SideRear,
			Effect:   unit.EffectCritical,
			Roll:     roll,
		})
	}
	return r.Roll(u, t, s)
}

func (r *Resolver) chart(u *unit.Unit, t unit.Table, s unit.Side) unit.Chart {
	if t == unit.TableNormal && s == unit.SideRear && r.Options.ProneRearTable && u.Status.Prone() {
		if pc, ok := u.Kind().(unit.ProneRearCharter); ok {
			return pc.ProneRearChart()
		}
	}
	return u.Kind().Chart(t, s)
}

// roll performs one lookup. allowEdge is false on the reroll so edge is
// spent at most once per hit.
func (r *Resolver) roll(u *unit.Unit, t unit.Table, s unit.Side, allowEdge bool) unit.HitData {
	c := r.chart(u, t, s)
	roll := dice.Roll(r.Dice, c.Dice)
	e := c.Lookup(roll)
	hit := unit.HitData{Location: e.Loc, Rear: e.Rear, Effect: e.Effect, Roll: roll}

	switch {
	case t == unit.TableNormal && e.TAC:
		if r.Options.TAC == TACNone {
			return finish(u, hit)
		}
		if allowEdge && r.Options.EdgeOnTAC && u.Crew.SpendEdge() {
			undone := hit
			undone.Effect = unit.EffectCritical
			undone = finish(u, undone)
			r.Log.Debug().Str("unit", u.Name).Int("edgeLeft", u.Crew.Edge).Msg("edge used to reroll through-armor critical")
			again := r.roll(u, t, s, false)
			again.Undone = &undone
			return again
		}
		return finish(u, r.throughArmor(c, hit))
	case e.Head:
		if allowEdge && r.Options.EdgeOnHeadHit && u.Crew.SpendEdge() {
			undone := finish(u, hit)
			r.Log.Debug().Str("unit", u.Name).Int("edgeLeft", u.Crew.Edge).Msg("edge used to reroll head hit")
			again := r.roll(u, t, s, false)
			again.Undone = &undone
			return again
		}
	}
	return finish(u, hit)
}

func (r *Resolver) throughArmor(c unit.Chart, hit unit.HitData) unit.HitData {
	hit.Effect = unit.EffectCritical
	if r.Options.TAC == TACFloating {
		e := c.Lookup(dice.Roll(r.Dice, c.Dice))
		hit.Location = e.Loc
		hit.Rear = e.Rear
	}
	return hit
}

func finish(u *unit.Unit, hit unit.HitData) unit.HitData {
	hit.CheckRear = hit.Rear && u.HasRearArmor(hit.Location)
	return hit
}

// SideFromArc maps the attacker's arc to the hit-table column.
func SideFromArc(a board.ArcType) unit.Side {
	switch a {
	case board.ArcLeft:
		return unit.SideLeft
	case board.ArcRight:
		return unit.SideRight
	case board.ArcRear:
		return unit.SideRear
	}
	return unit.SideFront
}
