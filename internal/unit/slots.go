package unit

import (
	"errors"
	"fmt"

	"github.com/JustinWhittecar/mekrules/internal/equipment"
)

// ErrNoSpace is returned when equipment does not fit in a location.
var ErrNoSpace = errors.New("not enough critical space")

type SlotKind int

const (
	SlotSystem SlotKind = iota
	SlotEquipment
)

func (k SlotKind) String() string {
	if k == SlotEquipment {
		return "equipment"
	}
	return "system"
}

// CriticalSlot is one occupant of a location's critical table. Index is the
// system id for system slots and the equipment index otherwise.
type CriticalSlot struct {
	Kind  SlotKind
	Index int
	Mount *Mounted

	everHittable bool

	Hit       bool
	Destroyed bool
	Breached  bool
	Missing   bool
	Armored   bool
}

func NewSystemSlot(sys int) *CriticalSlot {
	return &CriticalSlot{Kind: SlotSystem, Index: sys, everHittable: true}
}

func NewEquipmentSlot(m *Mounted) *CriticalSlot {
	return &CriticalSlot{
		Kind:         SlotEquipment,
		Index:        m.index,
		Mount:        m,
		everHittable: m.Type.Hittable,
	}
}

// EverHittable is false for occupants that can never take a critical hit,
// such as endo steel or ferro-fibrous slots.
func (cs *CriticalSlot) EverHittable() bool { return cs.everHittable }

func (cs *CriticalSlot) Hittable() bool {
	return cs.everHittable && !cs.Destroyed && !cs.Breached
}

// Damaged covers pending hits as well as resolved destruction.
func (cs *CriticalSlot) Damaged() bool {
	return cs.Hit || cs.Destroyed || cs.Missing
}

func (cs *CriticalSlot) is(kind SlotKind, index int) bool {
	return cs.Kind == kind && cs.Index == index
}

func (cs *CriticalSlot) String() string {
	if cs.Kind == SlotSystem {
		return SystemName(cs.Index)
	}
	if cs.Mount != nil {
		return cs.Mount.Type.Name
	}
	return fmt.Sprintf("equipment #%d", cs.Index)
}

// ─── Mounted equipment ──────────────────────────────────────────────────────

// Mounted is one equipment instance on a unit. Split mounts span Location and
// SecondLocation.
type Mounted struct {
	Type           *equipment.Type
	Location       int
	SecondLocation int
	Rear           bool
	Shots          int

	Hit       bool
	Destroyed bool
	Missing   bool
	Jammed    bool
	Breached  bool

	LinkedAmmo *Mounted

	index int
}

func (m *Mounted) Index() int { return m.index }

// At reports whether any part of the mount sits in loc.
func (m *Mounted) At(loc int) bool {
	return m.Location == loc || (m.SecondLocation != LocNone && m.SecondLocation == loc)
}

// Usable reports whether the mount can still operate this phase.
func (m *Mounted) Usable() bool {
	return !m.Hit && !m.Destroyed && !m.Missing && !m.Breached && !m.Jammed
}

// ─── Critical table ─────────────────────────────────────────────────────────

func (u *Unit) slotsAt(loc int) []*CriticalSlot {
	u.mustLoc(loc)
	return u.locs[loc].slots
}

func (u *Unit) mustSlot(loc, slot int) {
	if n := len(u.slotsAt(loc)); slot < 0 || slot >= n {
		panic(fmt.Sprintf("unit: slot %d out of range for %s (%d slots)", slot, u.LocationAbbr(loc), n))
	}
}

// NumCriticals is the size of the location's critical table.
func (u *Unit) NumCriticals(loc int) int { return len(u.slotsAt(loc)) }

// CriticalAt returns the occupant of a slot, or nil when the slot is empty.
func (u *Unit) CriticalAt(loc, slot int) *CriticalSlot {
	u.mustSlot(loc, slot)
	return u.locs[loc].slots[slot]
}

func (u *Unit) SetCritical(loc, slot int, cs *CriticalSlot) {
	u.mustSlot(loc, slot)
	u.locs[loc].slots[slot] = cs
}

// AddCritical places cs in the first empty slot. It reports false when the
// location is full.
func (u *Unit) AddCritical(loc int, cs *CriticalSlot) bool {
	slots := u.slotsAt(loc)
	for i, s := range slots {
		if s == nil {
			slots[i] = cs
			return true
		}
	}
	return false
}

func (u *Unit) CountEmpty(loc int) int {
	n := 0
	for _, cs := range u.slotsAt(loc) {
		if cs == nil {
			n++
		}
	}
	return n
}

func (u *Unit) CountHittable(loc int) int {
	n := 0
	for _, cs := range u.slotsAt(loc) {
		if cs != nil && cs.Hittable() {
			n++
		}
	}
	return n
}

// CountGood counts occupied, undamaged and unbreached slots of the given
// occupant.
func (u *Unit) CountGood(kind SlotKind, index, loc int) int {
	n := 0
	for _, cs := range u.slotsAt(loc) {
		if cs != nil && cs.is(kind, index) && !cs.Damaged() && !cs.Breached {
			n++
		}
	}
	return n
}

// CountBad counts damaged or breached slots of the given occupant.
func (u *Unit) CountBad(kind SlotKind, index, loc int) int {
	n := 0
	for _, cs := range u.slotsAt(loc) {
		if cs != nil && cs.is(kind, index) && (cs.Damaged() || cs.Breached) {
			n++
		}
	}
	return n
}

// CountHit counts slots of the given occupant that are hit, missing or
// breached.
func (u *Unit) CountHit(kind SlotKind, index, loc int) int {
	n := 0
	for _, cs := range u.slotsAt(loc) {
		if cs != nil && cs.is(kind, index) && (cs.Hit || cs.Missing || cs.Breached) {
			n++
		}
	}
	return n
}

// CountBadSystem sums CountBad for a system over every location.
func (u *Unit) CountBadSystem(sys int) int {
	n := 0
	for loc := range u.locs {
		n += u.CountBad(SlotSystem, sys, loc)
	}
	return n
}

// ─── Mounting ───────────────────────────────────────────────────────────────

// AddMounted registers equipment without placing any critical slots. Callers
// that lay out slots themselves use NewEquipmentSlot and SetCritical.
func (u *Unit) AddMounted(t *equipment.Type, loc int, rear bool) *Mounted {
	u.mustLoc(loc)
	m := &Mounted{
		Type:           t,
		Location:       loc,
		SecondLocation: LocNone,
		Rear:           rear,
		Shots:          t.Shots,
		index:          len(u.equipment),
	}
	u.equipment = append(u.equipment, m)
	return m
}

// Mount adds equipment to loc and fills its critical slots first-fit.
func (u *Unit) Mount(t *equipment.Type, loc int, rear bool) (*Mounted, error) {
	need := u.slotNeed(t, loc)
	if free := u.CountEmpty(loc); free < need {
		return nil, fmt.Errorf("%w: %s needs %d slots in %s, %d free",
			ErrNoSpace, t.Name, need, u.LocationAbbr(loc), free)
	}
	m := u.AddMounted(t, loc, rear)
	for i := 0; i < need; i++ {
		u.AddCritical(loc, NewEquipmentSlot(m))
	}
	return m, nil
}

// MountSplit places n slots of t in loc and the rest in second.
func (u *Unit) MountSplit(t *equipment.Type, loc, n, second int) (*Mounted, error) {
	u.mustLoc(second)
	if n <= 0 || n >= t.CritSlots {
		return nil, fmt.Errorf("split of %s must leave slots in both locations (%d of %d)", t.Name, n, t.CritSlots)
	}
	rest := t.CritSlots - n
	if u.kind.CriticalSlots(loc) > 0 && u.CountEmpty(loc) < n {
		return nil, fmt.Errorf("%w: %s needs %d slots in %s", ErrNoSpace, t.Name, n, u.LocationAbbr(loc))
	}
	if u.kind.CriticalSlots(second) > 0 && u.CountEmpty(second) < rest {
		return nil, fmt.Errorf("%w: %s needs %d slots in %s", ErrNoSpace, t.Name, rest, u.LocationAbbr(second))
	}
	m := u.AddMounted(t, loc, false)
	m.SecondLocation = second
	if u.kind.CriticalSlots(loc) > 0 {
		for i := 0; i < n; i++ {
			u.AddCritical(loc, NewEquipmentSlot(m))
		}
	}
	if u.kind.CriticalSlots(second) > 0 {
		for i := 0; i < rest; i++ {
			u.AddCritical(second, NewEquipmentSlot(m))
		}
	}
	return m, nil
}

// slotNeed is zero for kinds without critical tables.
func (u *Unit) slotNeed(t *equipment.Type, loc int) int {
	if u.kind.CriticalSlots(loc) == 0 {
		return 0
	}
	return t.CritSlots
}

func (u *Unit) LinkAmmo(weapon, ammo *Mounted) {
	weapon.LinkedAmmo = ammo
}

// Equipment returns the mounted list in mount order.
func (u *Unit) Equipment() []*Mounted { return u.equipment }

func (u *Unit) EquipmentAt(loc int) []*Mounted {
	var out []*Mounted
	for _, m := range u.equipment {
		if m.At(loc) {
			out = append(out, m)
		}
	}
	return out
}
