package unit

import "fmt"

const (
	TankBody   = 0
	TankFront  = 1
	TankRight  = 2
	TankLeft   = 3
	TankRear   = 4
	TankTurret = 5
)

var (
	tankNames = []string{"Body", "Front", "Right", "Left", "Rear", "Turret"}
	tankAbbrs = []string{"BD", "FR", "RS", "LS", "RR", "TU"}
)

// Tank is a combat vehicle. Vehicles have no critical tables, no rear armor
// and never transfer damage between locations.
type Tank struct {
	Turret bool
}

func (Tank) Name() string { return "Tank" }

func (t Tank) Locations() int {
	if t.Turret {
		return 6
	}
	return 5
}

func (t Tank) LocationName(loc int) string {
	if loc < 0 || loc >= t.Locations() {
		return fmt.Sprintf("loc(%d)", loc)
	}
	return tankNames[loc]
}

func (t Tank) LocationAbbr(loc int) string {
	if loc < 0 || loc >= t.Locations() {
		return fmt.Sprintf("loc(%d)", loc)
	}
	return tankAbbrs[loc]
}

func (Tank) CriticalSlots(int) int                    { return 0 }
func (Tank) HasRearArmor(int) bool                    { return false }
func (Tank) DependentLocation(int) int                { return LocNone }
func (Tank) TransferLocation(HitData) (HitData, bool) { return HitData{}, false }
func (Tank) Legs() []int                              { return nil }
func (Tank) CanFall() bool                            { return false }
func (Tank) DefaultMode() MoveMode                    { return ModeTracked }
func (Tank) sealed()                                  {}

// top is the turret, or the fallback location on turretless vehicles.
func (t Tank) top(fallback int) int {
	if t.Turret {
		return TankTurret
	}
	return fallback
}

func sideLocation(s Side) int {
	switch s {
	case SideLeft:
		return TankLeft
	case SideRight:
		return TankRight
	case SideRear:
		return TankRear
	}
	return TankFront
}

// flankLocations are the locations hit on rolls of 5 and 9 from each side.
func flankLocations(s Side) (five, nine int) {
	switch s {
	case SideLeft:
		return TankFront, TankRear
	case SideRight:
		return TankRear, TankFront
	case SideRear:
		return TankLeft, TankRight
	}
	return TankRight, TankLeft
}

func (t Tank) Chart(table Table, s Side) Chart {
	side := sideLocation(s)
	switch table {
	case TableNormal:
		five, nine := flankLocations(s)
		top := t.top(side)
		return chart(2,
			at(side).tac(), at(side), at(side), at(five), at(side), at(side),
			at(side), at(nine), at(top), at(top), at(top).crit())
	case TableKick:
		return chart(1, at(side), at(side), at(side), at(side), at(side), at(side))
	case TablePunch:
		return chart(1, at(side), at(side), at(side), at(side), at(side), at(t.top(side)))
	case TableSwarm, TableSwarmConventional:
		top := t.top(TankRear)
		c := chart(2,
			at(TankRear), at(TankRear), at(TankRear), at(TankRear), at(top), at(top),
			at(top), at(TankBody), at(TankBody), at(TankBody), at(TankBody))
		if table == TableSwarm {
			c = c.mapEntries(ChartEntry.crit)
		}
		return c
	case TableAbove:
		top := t.top(TankBody)
		return chart(1, at(top), at(top), at(top), at(top), at(TankBody), at(TankBody))
	case TableBelow:
		return chart(1, at(TankBody), at(TankBody), at(TankBody), at(TankBody), at(TankBody), at(TankBody))
	}
	panic(fmt.Sprintf("unit: no tank chart for %v", table))
}

// PilotingBonuses applies accumulated motive system damage.
func (Tank) PilotingBonuses(u *Unit) []Modifier {
	if u.MotivePenalty > 0 {
		return []Modifier{{u.MotivePenalty, "motive system damage"}}
	}
	return nil
}

func (Tank) AutoFail(u *Unit) (string, bool) {
	if u.Status.Immobile() {
		return "vehicle immobile", true
	}
	return "", false
}
