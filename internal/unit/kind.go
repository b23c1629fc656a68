package unit

import "fmt"

// LocNone marks "no location", e.g. a mount with no second location.
const LocNone = -1

// Kind is the closed set of unit variants. Each kind fixes the location
// layout, hit charts and the kind-specific piloting rules; behavior common to
// all kinds lives in free functions on *Unit.
type Kind interface {
	Name() string
	Locations() int
	LocationName(loc int) string
	LocationAbbr(loc int) string
	CriticalSlots(loc int) int
	HasRearArmor(loc int) bool
	DependentLocation(loc int) int
	TransferLocation(hit HitData) (HitData, bool)
	// Legs lists the locations that count as legs for piloting rolls.
	Legs() []int
	CanFall() bool
	DefaultMode() MoveMode
	Chart(t Table, s Side) Chart
	PilotingBonuses(u *Unit) []Modifier
	AutoFail(u *Unit) (string, bool)

	sealed()
}

// ProneRearCharter is implemented by kinds with a separate chart for hits to
// the rear of a prone unit.
type ProneRearCharter interface {
	ProneRearChart() Chart
}

// Modifier is one reason-tagged adjustment to a target number.
type Modifier struct {
	Value  int
	Reason string
}

func (m Modifier) String() string {
	return fmt.Sprintf("%+d (%s)", m.Value, m.Reason)
}

// ─── Movement modes ─────────────────────────────────────────────────────────

type MoveMode int

const (
	ModeBiped MoveMode = iota
	ModeQuad
	ModeTracked
	ModeWheeled
	ModeHover
	ModeNaval
	ModeSubmarine
)

var moveModeNames = []string{"biped", "quad", "tracked", "wheeled", "hover", "naval", "submarine"}

func (m MoveMode) String() string {
	if m < 0 || int(m) >= len(moveModeNames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return moveModeNames[m]
}

// ─── Hit tables ─────────────────────────────────────────────────────────────

type Table int

const (
	TableNormal Table = iota
	TablePunch
	TableKick
	TableSwarm
	TableSwarmConventional
	TableAbove
	TableBelow
)

var tableNames = []string{"normal", "punch", "kick", "swarm", "swarm (conventional)", "above", "below"}

func (t Table) String() string {
	if t < 0 || int(t) >= len(tableNames) {
		return fmt.Sprintf("table(%d)", int(t))
	}
	return tableNames[t]
}

type Side int

const (
	SideFront Side = iota
	SideLeft
	SideRight
	SideRear
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideRear:
		return "rear"
	default:
		return "front"
	}
}

type Effect int

const (
	EffectNone Effect = iota
	EffectCritical
)

func (e Effect) String() string {
	if e == EffectCritical {
		return "critical"
	}
	return "none"
}

// HitData is a resolved hit. Undone holds the result that was replaced by an
// edge reroll, kept for display.
type HitData struct {
	Location  int
	Rear      bool
	CheckRear bool
	Effect    Effect
	Roll      int
	Undone    *HitData
}

// ChartEntry is one row of a hit chart.
type ChartEntry struct {
	Loc    int
	Rear   bool
	Effect Effect
	TAC    bool
	Head   bool
}

func at(loc int) ChartEntry                   { return ChartEntry{Loc: loc} }
func rearAt(loc int) ChartEntry               { return ChartEntry{Loc: loc, Rear: true} }
func (e ChartEntry) tac() ChartEntry          { e.TAC = true; return e }
func (e ChartEntry) head() ChartEntry         { e.Head = true; return e }
func (e ChartEntry) crit() ChartEntry         { e.Effect = EffectCritical; return e }
func (e ChartEntry) plain() ChartEntry        { e.Effect = EffectNone; return e }
func (e ChartEntry) rearIf(r bool) ChartEntry { e.Rear = e.Rear || r; return e }

// Chart maps a roll of Dice d6 to a location. Entries[0] is the minimum roll.
type Chart struct {
	Dice    int
	Entries []ChartEntry
}

func chart(dice int, entries ...ChartEntry) Chart {
	if len(entries) != 5*dice+1 {
		panic(fmt.Sprintf("unit: %dd6 chart needs %d entries, got %d", dice, 5*dice+1, len(entries)))
	}
	return Chart{Dice: dice, Entries: entries}
}

// Lookup returns the entry for roll.
func (c Chart) Lookup(roll int) ChartEntry {
	i := roll - c.Dice
	if i < 0 || i >= len(c.Entries) {
		panic(fmt.Sprintf("unit: roll %d outside %dd6 chart", roll, c.Dice))
	}
	return c.Entries[i]
}

func (c Chart) mapEntries(f func(ChartEntry) ChartEntry) Chart {
	out := Chart{Dice: c.Dice, Entries: make([]ChartEntry, len(c.Entries))}
	for i, e := range c.Entries {
		out.Entries[i] = f(e)
	}
	return out
}
