package psr

import (
	"math"

	"github.com/JustinWhittecar/mekrules/internal/board"
	"github.com/JustinWhittecar/mekrules/internal/unit"
)

// Environment is the board as the piloting rules see it. *board.Board
// satisfies it.
type Environment interface {
	HexAt(c board.HexCoord) (board.Hex, bool)
	Planetary() board.Conditions
}

// Options are the optional piloting rules in play.
type Options struct {
	CarefulStand      bool
	CarefulMovement   bool
	Fatigue           bool
	FatigueBaseRounds int
}

// DefaultFatigueBaseRounds is the fatigue threshold for elite pilots.
const DefaultFatigueBaseRounds = 16

type MoveType int

const (
	MoveNone MoveType = iota
	MoveWalk
	MoveRun
	MoveSprint
	MoveJump
)

func (m MoveType) String() string {
	switch m {
	case MoveWalk:
		return "walk"
	case MoveRun:
		return "run"
	case MoveSprint:
		return "sprint"
	case MoveJump:
		return "jump"
	default:
		return "none"
	}
}

func (m MoveType) running() bool { return m == MoveRun || m == MoveSprint }

// Step is one movement step. Elevation values are relative to the hex floor.
type Step struct {
	From, To      board.HexCoord
	FromElevation int
	Elevation     int
	Move          MoveType
	MPUsed        int
	// DistanceMoved is hexes entered so far this turn.
	DistanceMoved int
	Turning       bool
	Reckless      bool
}

// Builder assembles piloting roll requirements. It keeps no state between
// calls.
type Builder struct {
	Env     Environment
	Options Options
}

// BasePilotingRoll is the starting requirement every check builds on.
func (b *Builder) BasePilotingRoll(u *unit.Unit, move MoveType) *RollData {
	switch {
	case u.Crew.Incapacitated():
		return sentinel(AutomaticFail, "pilot dead")
	case u.Crew.Unconscious:
		return sentinel(Impossible, "pilot unconscious")
	case u.Status.ShutDown():
		return sentinel(AutomaticFail, "reactor shutdown")
	}
	if reason, ok := u.Kind().AutoFail(u); ok {
		return sentinel(AutomaticFail, reason)
	}

	r := newRoll(u.Crew.Piloting, "base piloting skill")
	r.addAll(u.Kind().PilotingBonuses(u))
	if b.Env != nil {
		addConditionModifiers(r, b.Env.Planetary())
	}
	if b.Options.CarefulMovement && u.Status.Careful() && (move == MoveWalk || move == MoveNone) {
		r.Add(-1, "careful movement")
	}
	if b.Options.Fatigue && u.Crew.RoundsActive > b.fatigueThreshold(u.Crew.Piloting) {
		r.Add(1, "fatigue")
	}
	if u.Interference > 0 {
		r.Add(u.Interference, "interference")
	}
	return r
}

// fatigueThreshold lowers the base by two rounds for each step of worse
// piloting skill.
func (b *Builder) fatigueThreshold(piloting int) int {
	base := b.Options.FatigueBaseRounds
	if base <= 0 {
		base = DefaultFatigueBaseRounds
	}
	switch {
	case piloting <= 1:
		return base
	case piloting <= 3:
		return base - 2
	case piloting <= 5:
		return base - 4
	default:
		return base - 6
	}
}

// ─── Conditions ─────────────────────────────────────────────────────────────

var weatherModifiers = map[board.Weather]int{
	board.WeatherHeavyRain:   1,
	board.WeatherGustingRain: 1,
	board.WeatherDownpour:    2,
	board.WeatherHeavySnow:   1,
	board.WeatherSleet:       1,
	board.WeatherIceStorm:    1,
	board.WeatherHeavyHail:   1,
}

var windModifiers = map[board.Wind]int{
	board.WindStrongGale: 1,
	board.WindStorm:      2,
	board.WindTornadoF13: 3,
	board.WindTornadoF4:  5,
}

func addConditionModifiers(r *RollData, pc board.Conditions) {
	if pc.Light.Dark() {
		r.Add(1, pc.Light.String())
	}
	if !pc.Vacuum() {
		if mod := weatherModifiers[pc.Weather]; mod != 0 {
			r.Add(mod, pc.Weather.String())
		}
		if mod := windModifiers[pc.Wind]; mod != 0 {
			r.Add(mod, pc.Wind.String())
		}
	}
	if pc.Space {
		return
	}
	switch {
	case pc.Gravity > 1:
		mod := int(math.Ceil((pc.Gravity - 1) / 0.5))
		r.Add(min(mod, 4), "high gravity")
	case pc.Gravity < 1:
		r.Add(1, "low gravity")
	}
}

// ─── Terrain ────────────────────────────────────────────────────────────────

// addTerrainModifier layers the difficulty of the hex at c. A unit standing
// on a bridge deck ignores the ground beneath it.
func (b *Builder) addTerrainModifier(r *RollData, u *unit.Unit, c board.HexCoord, elevation int) {
	if b.Env == nil {
		return
	}
	hex, ok := b.Env.HexAt(c)
	if !ok {
		return
	}
	if deck, ok := hex.BridgeElevation(); ok && elevation == deck {
		return
	}
	hover := u.Mode == unit.ModeHover

	if hex.Ice() {
		r.Add(4, "ice")
	}
	if !hover {
		if hex.SwampLevel() > 0 {
			r.Add(1, "swamp")
		}
		if hex.Mud() {
			r.Add(1, "mud")
		}
		if hex.SnowLevel() == board.DeepSnow {
			r.Add(1, "deep snow")
		}
	}
	if hex.RubbleLevel() == board.UltraRubble {
		r.Add(1, "ultra rubble")
	}
	if hex.RoughLevel() == board.UltraRough {
		r.Add(1, "ultra rough")
	}
}

func (b *Builder) hexAt(c board.HexCoord) (board.Hex, bool) {
	if b.Env == nil {
		return board.Hex{}, false
	}
	return b.Env.HexAt(c)
}
