package unit

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Exposure int

const (
	ExposureNormal Exposure = iota
	ExposureBreached
)

func (e Exposure) String() string {
	if e == ExposureBreached {
		return "breached"
	}
	return "normal"
}

// location holds every piece of per-location state so the layout can only
// change all at once.
type location struct {
	armor, rearArmor, internal    Value
	oArmor, oRearArmor, oInternal Value
	exposure                      Exposure
	blownOff                      bool
	slots                         []*CriticalSlot
}

// Unit is a combat unit and everything it owns: locations, critical slots,
// mounted equipment, crew and status.
type Unit struct {
	ID      uuid.UUID
	Name    string
	Tonnage int

	Crew    Crew
	Status  Status
	Heat    int
	Mode    MoveMode
	WalkMP  int
	JumpMP  int
	Gyro    GyroType
	Cockpit CockpitType

	// Superheavy units get +1 to bog-down checks.
	Superheavy bool
	// Swarmer is the infantry unit currently swarming this one.
	Swarmer uuid.UUID
	// Interference is an externally applied piloting penalty.
	Interference  int
	MotivePenalty int

	kind      Kind
	locs      []location
	equipment []*Mounted
	pods      podLists

	engineHitsThisPhase int

	log zerolog.Logger
}

// New allocates a unit of kind k with zeroed armor and structure. Rear armor
// is NA wherever the kind has none.
func New(name string, tonnage int, k Kind) *Unit {
	u := &Unit{
		ID:      uuid.New(),
		Name:    name,
		Tonnage: tonnage,
		Mode:    k.DefaultMode(),
		kind:    k,
		locs:    make([]location, k.Locations()),
		log:     zerolog.Nop(),
	}
	for i := range u.locs {
		l := &u.locs[i]
		l.armor, l.oArmor = Points(0), Points(0)
		l.internal, l.oInternal = Points(0), Points(0)
		l.rearArmor, l.oRearArmor = NA, NA
		if k.HasRearArmor(i) {
			l.rearArmor, l.oRearArmor = Points(0), Points(0)
		}
		l.slots = make([]*CriticalSlot, k.CriticalSlots(i))
	}
	return u
}

func (u *Unit) Kind() Kind { return u.kind }

func (u *Unit) SetLogger(l zerolog.Logger) {
	u.log = l.With().Str("unit", u.Name).Logger()
}

func (u *Unit) String() string {
	return fmt.Sprintf("%s (%s, %dt)", u.Name, u.kind.Name(), u.Tonnage)
}

// RunMP is walking MP times 1.5, rounded up.
func (u *Unit) RunMP() int {
	return int(math.Ceil(float64(u.WalkMP) * 1.5))
}

// ─── Location store ─────────────────────────────────────────────────────────

func (u *Unit) Locations() int { return len(u.locs) }

func (u *Unit) validLoc(loc int) bool { return loc >= 0 && loc < len(u.locs) }

func (u *Unit) mustLoc(loc int) {
	if !u.validLoc(loc) {
		panic(fmt.Sprintf("unit: location %d out of range for %s (%d locations)", loc, u.kind.Name(), len(u.locs)))
	}
}

func (u *Unit) LocationName(loc int) string { return u.kind.LocationName(loc) }
func (u *Unit) LocationAbbr(loc int) string { return u.kind.LocationAbbr(loc) }

func (u *Unit) HasRearArmor(loc int) bool {
	return u.validLoc(loc) && u.kind.HasRearArmor(loc)
}

// Armor returns front or rear armor. A rear query on a location without rear
// armor reads the front. Out-of-range locations are NA.
func (u *Unit) Armor(loc int, rear bool) Value {
	if !u.validLoc(loc) {
		return NA
	}
	if rear && u.kind.HasRearArmor(loc) {
		return u.locs[loc].rearArmor
	}
	return u.locs[loc].armor
}

func (u *Unit) OArmor(loc int, rear bool) Value {
	if !u.validLoc(loc) {
		return NA
	}
	if rear && u.kind.HasRearArmor(loc) {
		return u.locs[loc].oRearArmor
	}
	return u.locs[loc].oArmor
}

func (u *Unit) SetArmor(v Value, loc int, rear bool) {
	u.mustLoc(loc)
	if rear && u.kind.HasRearArmor(loc) {
		u.locs[loc].rearArmor = v
		return
	}
	u.locs[loc].armor = v
}

func (u *Unit) Internal(loc int) Value {
	if !u.validLoc(loc) {
		return NA
	}
	return u.locs[loc].internal
}

func (u *Unit) OInternal(loc int) Value {
	if !u.validLoc(loc) {
		return NA
	}
	return u.locs[loc].oInternal
}

func (u *Unit) SetInternal(v Value, loc int) {
	u.mustLoc(loc)
	u.locs[loc].internal = v
}

// InitializeArmor sets current and original armor together. It is used when
// the unit is built.
func (u *Unit) InitializeArmor(points, loc int, rear bool) {
	u.mustLoc(loc)
	l := &u.locs[loc]
	if rear && u.kind.HasRearArmor(loc) {
		l.rearArmor, l.oRearArmor = Points(points), Points(points)
		return
	}
	l.armor, l.oArmor = Points(points), Points(points)
}

func (u *Unit) InitializeInternal(points, loc int) {
	u.mustLoc(loc)
	l := &u.locs[loc]
	l.internal, l.oInternal = Points(points), Points(points)
}

func (u *Unit) TotalArmor() int {
	return u.sumLocations(func(l *location, rear bool) Value {
		if rear {
			return l.rearArmor
		}
		return l.armor
	}, true)
}

func (u *Unit) TotalOArmor() int {
	return u.sumLocations(func(l *location, rear bool) Value {
		if rear {
			return l.oRearArmor
		}
		return l.oArmor
	}, true)
}

func (u *Unit) TotalInternal() int {
	return u.sumLocations(func(l *location, _ bool) Value { return l.internal }, false)
}

func (u *Unit) TotalOInternal() int {
	return u.sumLocations(func(l *location, _ bool) Value { return l.oInternal }, false)
}

// sumLocations adds every point value, skipping NA and destroyed states.
func (u *Unit) sumLocations(get func(l *location, rear bool) Value, withRear bool) int {
	total := 0
	for i := range u.locs {
		total += get(&u.locs[i], false).Amount()
		if withRear && u.kind.HasRearArmor(i) {
			total += get(&u.locs[i], true).Amount()
		}
	}
	return total
}

func (u *Unit) Exposure(loc int) Exposure {
	u.mustLoc(loc)
	return u.locs[loc].exposure
}

// SetExposure never lowers a breached location back to normal.
func (u *Unit) SetExposure(loc int, e Exposure) {
	u.mustLoc(loc)
	if u.locs[loc].exposure == ExposureBreached {
		return
	}
	u.locs[loc].exposure = e
}

// LocationBad reports a location that is doomed or destroyed.
func (u *Unit) LocationBad(loc int) bool {
	return u.Internal(loc).Bad()
}

func (u *Unit) BlownOff(loc int) bool {
	u.mustLoc(loc)
	return u.locs[loc].blownOff
}

// ─── Kind delegation ────────────────────────────────────────────────────────

func (u *Unit) DependentLocation(loc int) int {
	u.mustLoc(loc)
	return u.kind.DependentLocation(loc)
}

// TransferLocation is where damage beyond hit.Location's structure goes.
func (u *Unit) TransferLocation(hit HitData) (HitData, bool) {
	u.mustLoc(hit.Location)
	next, ok := u.kind.TransferLocation(hit)
	if !ok {
		return HitData{}, false
	}
	next.CheckRear = next.Rear && u.HasRearArmor(next.Location)
	return next, true
}

// HasUMU reports working underwater maneuvering units.
func (u *Unit) HasUMU() bool {
	for _, m := range u.equipment {
		if m.Type.UMU && m.Usable() {
			return true
		}
	}
	return false
}

// CanMoveUnderwater covers submarines and UMU-equipped units.
func (u *Unit) CanMoveUnderwater() bool {
	return u.Mode == ModeSubmarine || u.HasUMU()
}
