package unit

import "fmt"

// ─── Mech locations ─────────────────────────────────────────────────────────
// Quads reuse the arm indices for their front legs.

const (
	LocHD = 0
	LocCT = 1
	LocLT = 2
	LocRT = 3
	LocLA = 4
	LocRA = 5
	LocLL = 6
	LocRL = 7

	mechLocations = 8
)

var (
	bipedNames = [mechLocations]string{"Head", "Center Torso", "Left Torso", "Right Torso", "Left Arm", "Right Arm", "Left Leg", "Right Leg"}
	bipedAbbrs = [mechLocations]string{"HD", "CT", "LT", "RT", "LA", "RA", "LL", "RL"}
	quadNames  = [mechLocations]string{"Head", "Center Torso", "Left Torso", "Right Torso", "Front Left Leg", "Front Right Leg", "Rear Left Leg", "Rear Right Leg"}
	quadAbbrs  = [mechLocations]string{"HD", "CT", "LT", "RT", "FLL", "FRL", "RLL", "RRL"}
)

// mech carries the behavior bipeds and quads share.
type mech struct{}

func (mech) Locations() int { return mechLocations }

func (mech) HasRearArmor(loc int) bool {
	return loc == LocCT || loc == LocLT || loc == LocRT
}

func (mech) DependentLocation(loc int) int {
	switch loc {
	case LocLT:
		return LocLA
	case LocRT:
		return LocRA
	}
	return LocNone
}

func (mech) TransferLocation(hit HitData) (HitData, bool) {
	var to int
	switch hit.Location {
	case LocLA, LocLL:
		to = LocLT
	case LocRA, LocRL:
		to = LocRT
	case LocLT, LocRT:
		to = LocCT
	default:
		return HitData{}, false
	}
	return HitData{Location: to, Rear: hit.Rear, Roll: hit.Roll}, true
}

func (mech) CanFall() bool { return true }

func (mech) sealed() {}

func locString(names [mechLocations]string, loc int) string {
	if loc < 0 || loc >= mechLocations {
		return fmt.Sprintf("loc(%d)", loc)
	}
	return names[loc]
}

// gyroModifiers applies the gyro damage rules shared by every mech.
func gyroModifiers(u *Unit) []Modifier {
	hits := u.CountBadSystem(SystemGyro)
	if hits == 0 || u.Gyro == GyroNone {
		return nil
	}
	if u.Gyro == GyroHeavyDuty && hits == 1 {
		return []Modifier{{1, "Gyro damaged"}}
	}
	return []Modifier{{3, "Gyro damaged"}}
}

func gyroAutoFail(u *Unit) (string, bool) {
	if u.Gyro == GyroNone {
		return "", false
	}
	if u.CountBadSystem(SystemGyro) >= u.Gyro.gyroFailHits() {
		return "Gyro destroyed", true
	}
	return "", false
}

// legModifiers adds +5 per destroyed leg; a damaged hip replaces the
// individual actuator modifiers for that leg.
func legModifiers(u *Unit) []Modifier {
	var mods []Modifier
	for _, loc := range u.kind.Legs() {
		name := u.LocationName(loc)
		if u.LocationBad(loc) {
			mods = append(mods, Modifier{5, name + " destroyed"})
			continue
		}
		if u.CountBad(SlotSystem, SystemHip, loc) > 0 {
			mods = append(mods, Modifier{2, name + " hip actuator destroyed"})
			continue
		}
		for _, act := range []int{SystemUpperLeg, SystemLowerLeg, SystemFoot} {
			if u.CountBad(SlotSystem, act, loc) > 0 {
				mods = append(mods, Modifier{1, name + " " + SystemName(act) + " destroyed"})
			}
		}
	}
	return mods
}

func cockpitModifiers(u *Unit) []Modifier {
	if u.Cockpit == CockpitSmall {
		return []Modifier{{1, "using small cockpit"}}
	}
	return nil
}

// BadLegs counts destroyed leg locations.
func BadLegs(u *Unit) int {
	n := 0
	for _, loc := range u.kind.Legs() {
		if u.LocationBad(loc) {
			n++
		}
	}
	return n
}

// rearOf turns torso hits into rear-armor hits.
func rearOf(c Chart, k Kind) Chart {
	return c.mapEntries(func(e ChartEntry) ChartEntry {
		return e.rearIf(k.HasRearArmor(e.Loc))
	})
}

// ─── Shared mech charts ─────────────────────────────────────────────────────

var (
	mechNormalFront = chart(2,
		at(LocCT).tac(), at(LocRA), at(LocRA), at(LocRL), at(LocRT), at(LocCT),
		at(LocLT), at(LocLL), at(LocLA), at(LocLA), at(LocHD).head())
	mechNormalLeft = chart(2,
		at(LocLT).tac(), at(LocLL), at(LocLA), at(LocLA), at(LocLL), at(LocLT),
		at(LocCT), at(LocRT), at(LocRA), at(LocRL), at(LocHD).head())
	mechNormalRight = chart(2,
		at(LocRT).tac(), at(LocRL), at(LocRA), at(LocRA), at(LocRL), at(LocRT),
		at(LocCT), at(LocLT), at(LocLA), at(LocLL), at(LocHD).head())

	mechPunchFront = chart(1, at(LocLA), at(LocLT), at(LocCT), at(LocRT), at(LocRA), at(LocHD).head())
	mechPunchLeft  = chart(1, at(LocLT), at(LocLT), at(LocCT), at(LocLA), at(LocLA), at(LocHD).head())
	mechPunchRight = chart(1, at(LocRT), at(LocRT), at(LocCT), at(LocRA), at(LocRA), at(LocHD).head())

	mechSwarm = chart(2,
		at(LocHD).head().crit(), rearAt(LocCT).crit(), rearAt(LocRT).crit(), at(LocRT).crit(),
		at(LocRA).crit(), at(LocCT).crit(), at(LocLA).crit(), at(LocLT).crit(),
		rearAt(LocLT).crit(), rearAt(LocCT).crit(), at(LocHD).head().crit())

	mechAboveFront = chart(1, at(LocLA), at(LocLT), at(LocCT), at(LocRT), at(LocRA), at(LocHD).head())
	mechAboveLeft  = chart(1, at(LocLA), at(LocLT), at(LocCT), at(LocLA), at(LocLT), at(LocHD).head())
	mechAboveRight = chart(1, at(LocRA), at(LocRT), at(LocCT), at(LocRA), at(LocRT), at(LocHD).head())

	mechBelowFront = chart(1, at(LocLL), at(LocLL), at(LocLT), at(LocRT), at(LocRL), at(LocRL))
	mechBelowLeft  = chart(1, at(LocLL), at(LocLL), at(LocLL), at(LocLT), at(LocLT), at(LocCT))
	mechBelowRight = chart(1, at(LocRL), at(LocRL), at(LocRL), at(LocRT), at(LocRT), at(LocCT))
)

// mechChart covers every table except kick and the normal rear column, which
// differ between bipeds and quads.
func mechChart(k Kind, t Table, s Side) Chart {
	pick := func(front, left, right Chart) Chart {
		switch s {
		case SideLeft:
			return left
		case SideRight:
			return right
		case SideRear:
			return rearOf(front, k)
		}
		return front
	}
	switch t {
	case TableNormal:
		return pick(mechNormalFront, mechNormalLeft, mechNormalRight)
	case TablePunch:
		return pick(mechPunchFront, mechPunchLeft, mechPunchRight)
	case TableSwarm:
		return mechSwarm
	case TableSwarmConventional:
		return mechSwarm.mapEntries(ChartEntry.plain)
	case TableAbove:
		return pick(mechAboveFront, mechAboveLeft, mechAboveRight)
	case TableBelow:
		return pick(mechBelowFront, mechBelowLeft, mechBelowRight)
	}
	panic(fmt.Sprintf("unit: no mech chart for %v", t))
}

// ─── Biped ──────────────────────────────────────────────────────────────────

type Biped struct{ mech }

func (Biped) Name() string                { return "Biped" }
func (Biped) LocationName(loc int) string { return locString(bipedNames, loc) }
func (Biped) LocationAbbr(loc int) string { return locString(bipedAbbrs, loc) }
func (Biped) Legs() []int                 { return []int{LocLL, LocRL} }
func (Biped) DefaultMode() MoveMode       { return ModeBiped }

func (Biped) CriticalSlots(loc int) int {
	switch loc {
	case LocHD, LocLL, LocRL:
		return 6
	case LocCT, LocLT, LocRT, LocLA, LocRA:
		return 12
	}
	return 0
}

var (
	bipedKickFront = chart(1, at(LocRL), at(LocRL), at(LocRL), at(LocLL), at(LocLL), at(LocLL))
	bipedKickLeft  = chart(1, at(LocLL), at(LocLL), at(LocLL), at(LocLL), at(LocLL), at(LocLL))
	bipedKickRight = chart(1, at(LocRL), at(LocRL), at(LocRL), at(LocRL), at(LocRL), at(LocRL))

	bipedProneRear = chart(2,
		rearAt(LocCT).tac(), rearAt(LocRT), at(LocRA), at(LocRL), rearAt(LocRT), rearAt(LocCT),
		rearAt(LocLT), at(LocLL), at(LocLA), rearAt(LocLT), at(LocHD).head())
)

func (b Biped) Chart(t Table, s Side) Chart {
	if t == TableKick {
		switch s {
		case SideLeft:
			return bipedKickLeft
		case SideRight:
			return bipedKickRight
		}
		return bipedKickFront
	}
	return mechChart(b, t, s)
}

func (Biped) ProneRearChart() Chart { return bipedProneRear }

func (Biped) PilotingBonuses(u *Unit) []Modifier {
	var mods []Modifier
	mods = append(mods, gyroModifiers(u)...)
	mods = append(mods, legModifiers(u)...)
	mods = append(mods, cockpitModifiers(u)...)
	return mods
}

func (Biped) AutoFail(u *Unit) (string, bool) {
	if reason, ok := gyroAutoFail(u); ok {
		return reason, true
	}
	if BadLegs(u) >= 2 {
		return "both legs destroyed", true
	}
	return "", false
}

// ─── Quad ───────────────────────────────────────────────────────────────────

type Quad struct{ mech }

func (Quad) Name() string                { return "Quad" }
func (Quad) LocationName(loc int) string { return locString(quadNames, loc) }
func (Quad) LocationAbbr(loc int) string { return locString(quadAbbrs, loc) }
func (Quad) Legs() []int                 { return []int{LocLA, LocRA, LocLL, LocRL} }
func (Quad) DefaultMode() MoveMode       { return ModeQuad }

func (Quad) CriticalSlots(loc int) int {
	switch loc {
	case LocHD, LocLA, LocRA, LocLL, LocRL:
		return 6
	case LocCT, LocLT, LocRT:
		return 12
	}
	return 0
}

var (
	quadNormalRear = chart(2,
		rearAt(LocCT).tac(), at(LocRL), at(LocRL), at(LocRA), rearAt(LocRT), rearAt(LocCT),
		rearAt(LocLT), at(LocLA), at(LocLL), at(LocLL), at(LocHD).head())

	quadKickFront = chart(1, at(LocRA), at(LocRA), at(LocRA), at(LocLA), at(LocLA), at(LocLA))
	quadKickRear  = chart(1, at(LocRL), at(LocRL), at(LocRL), at(LocLL), at(LocLL), at(LocLL))
	quadKickLeft  = chart(1, at(LocLA), at(LocLA), at(LocLA), at(LocLL), at(LocLL), at(LocLL))
	quadKickRight = chart(1, at(LocRA), at(LocRA), at(LocRA), at(LocRL), at(LocRL), at(LocRL))
)

func (q Quad) Chart(t Table, s Side) Chart {
	switch {
	case t == TableNormal && s == SideRear:
		return quadNormalRear
	case t == TableKick:
		switch s {
		case SideLeft:
			return quadKickLeft
		case SideRight:
			return quadKickRight
		case SideRear:
			return quadKickRear
		}
		return quadKickFront
	}
	return mechChart(q, t, s)
}

func (Quad) PilotingBonuses(u *Unit) []Modifier {
	var mods []Modifier
	if BadLegs(u) == 0 {
		mods = append(mods, Modifier{-2, "Quad bonus"})
	}
	mods = append(mods, gyroModifiers(u)...)
	mods = append(mods, legModifiers(u)...)
	mods = append(mods, cockpitModifiers(u)...)
	return mods
}

func (Quad) AutoFail(u *Unit) (string, bool) {
	if reason, ok := gyroAutoFail(u); ok {
		return reason, true
	}
	if BadLegs(u) >= 3 {
		return "three or more legs destroyed", true
	}
	return "", false
}
