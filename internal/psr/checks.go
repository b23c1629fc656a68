package psr

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/JustinWhittecar/mekrules/internal/board"
	"github.com/JustinWhittecar/mekrules/internal/unit"
)

// Every check starts from BasePilotingRoll. When the triggering condition
// does not hold the result is CheckFalse with the reason; otherwise the
// check's own modifier and the terrain at the step's hex are added.

// CheckGetUp is the roll to stand a prone unit up.
func (b *Builder) CheckGetUp(u *unit.Unit, step Step) *RollData {
	r := b.BasePilotingRoll(u, step.Move)
	if !u.Status.Prone() {
		r.Set(CheckFalse, "unit is not prone")
		return r
	}
	if _, quad := u.Kind().(unit.Quad); quad && unit.BadLegs(u) == 0 && u.CountBadSystem(unit.SystemGyro) == 0 {
		r.Set(AutomaticSuccess, "quad with all legs and a working gyro stands automatically")
	}
	if b.Options.CarefulStand && u.WalkMP > 2 {
		r.Add(-2, "careful stand")
	}
	r.Add(0, "attempting to get up")
	b.addTerrainModifier(r, u, step.To, step.Elevation)
	return r
}

// CheckRunningWithDamage applies to a mech running on a damaged gyro or hip.
func (b *Builder) CheckRunningWithDamage(u *unit.Unit, step Step) *RollData {
	r := b.BasePilotingRoll(u, step.Move)
	if !step.Move.running() {
		r.Set(CheckFalse, "unit is not running")
		return r
	}
	if u.Status.Prone() {
		r.Set(CheckFalse, "unit is prone")
		return r
	}
	if u.CountBadSystem(unit.SystemGyro) == 0 && !hipDamaged(u) {
		r.Set(CheckFalse, "no hip or gyro damage")
		return r
	}
	r.Add(0, "running with damaged hip actuator or gyro")
	b.addTerrainModifier(r, u, step.To, step.Elevation)
	return r
}

func hipDamaged(u *unit.Unit) bool {
	for _, loc := range u.Kind().Legs() {
		if u.CountBad(unit.SlotSystem, unit.SystemHip, loc) > 0 {
			return true
		}
	}
	return false
}

// CheckRecklessMove applies to units moving recklessly through darkness off
// paved ground.
func (b *Builder) CheckRecklessMove(u *unit.Unit, step Step) *RollData {
	r := b.BasePilotingRoll(u, step.Move)
	if !step.Reckless || step.Move == MoveJump || step.MPUsed == 0 {
		r.Set(CheckFalse, "not moving recklessly")
		return r
	}
	if b.Env == nil || !b.Env.Planetary().Light.Dark() {
		r.Set(CheckFalse, "light is good enough")
		return r
	}
	if hex, ok := b.hexAt(step.To); !ok || hex.Paved() {
		r.Set(CheckFalse, "hex is paved")
		return r
	}
	r.Add(0, "moving recklessly")
	b.addTerrainModifier(r, u, step.To, step.Elevation)
	return r
}

// skidModifier grows with the distance already covered this turn.
func skidModifier(distance int) int {
	switch {
	case distance <= 2:
		return -1
	case distance <= 4:
		return 0
	case distance <= 7:
		return 1
	case distance <= 10:
		return 2
	case distance <= 17:
		return 4
	default:
		return 5
	}
}

// CheckSkid applies when a running unit turns on ice or pavement.
func (b *Builder) CheckSkid(u *unit.Unit, step Step) *RollData {
	r := b.BasePilotingRoll(u, step.Move)
	if !step.Turning || !step.Move.running() {
		r.Set(CheckFalse, "not turning at running speed")
		return r
	}
	hex, ok := b.hexAt(step.To)
	if !ok || !(hex.Ice() || hex.Paved()) {
		r.Set(CheckFalse, "no slick surface")
		return r
	}
	r.Add(skidModifier(step.DistanceMoved), "running and turning on a slick surface")
	b.addTerrainModifier(r, u, step.To, step.Elevation)
	return r
}

// CheckBogDown applies when entering terrain a unit can get stuck in.
func (b *Builder) CheckBogDown(u *unit.Unit, step Step) *RollData {
	r := b.BasePilotingRoll(u, step.Move)
	if u.Mode == unit.ModeHover {
		r.Set(CheckFalse, "hover units do not bog down")
		return r
	}
	hex, ok := b.hexAt(step.To)
	if !ok || step.Elevation > 0 {
		r.Set(CheckFalse, "not on the ground")
		return r
	}
	switch {
	case hex.SwampLevel() == board.Quicksand:
		r.Add(3, "avoid bogging down in quicksand")
	case hex.SwampLevel() > 0:
		r.Add(1, "avoid bogging down in swamp")
	case hex.Mud():
		r.Add(0, "avoid bogging down in mud")
	case hex.SnowLevel() == board.DeepSnow && u.Mode == unit.ModeWheeled:
		r.Add(1, "avoid bogging down in deep snow")
	default:
		r.Set(CheckFalse, "no bog-down terrain")
		return r
	}
	if u.Superheavy {
		r.Add(1, "superheavy unit avoiding bogging down")
	}
	b.addTerrainModifier(r, u, step.To, step.Elevation)
	return r
}

// CheckWaterMove applies when a unit enters water of the given depth.
func (b *Builder) CheckWaterMove(u *unit.Unit, depth int, move MoveType) *RollData {
	r := b.BasePilotingRoll(u, move)
	if depth <= 0 {
		r.Set(CheckFalse, "not entering water")
		return r
	}
	if u.CanMoveUnderwater() || u.Mode == unit.ModeHover || u.Mode == unit.ModeNaval {
		r.Set(CheckFalse, "unit moves on or under water")
		return r
	}
	switch {
	case depth == 1:
		r.Add(-1, "entering Depth 1 Water")
	case depth == 2:
		r.Add(0, "entering Depth 2 Water")
	default:
		r.Add(1, "entering Depth 3+ Water")
	}
	return r
}

// CheckRubbleMove applies when entering rubble on foot.
func (b *Builder) CheckRubbleMove(u *unit.Unit, step Step) *RollData {
	r := b.BasePilotingRoll(u, step.Move)
	if !u.Kind().CanFall() {
		r.Set(CheckFalse, "unit cannot fall")
		return r
	}
	hex, ok := b.hexAt(step.To)
	if !ok || hex.RubbleLevel() == 0 || step.Move == MoveJump || step.Elevation > 0 {
		r.Set(CheckFalse, "not entering rubble")
		return r
	}
	r.Add(0, "entering Rubble")
	if u.Crew.HasAbility("mountaineer") {
		r.Add(-1, "mountaineer")
	}
	b.addTerrainModifier(r, u, step.To, step.Elevation)
	return r
}

var buildingModifiers = map[board.BuildingType]int{
	board.BuildingLight:    0,
	board.BuildingMedium:   1,
	board.BuildingHeavy:    2,
	board.BuildingHardened: 5,
	board.BuildingWall:     12,
}

// CheckBuildingMove applies when a unit enters, leaves or moves inside a
// building below its roof.
func (b *Builder) CheckBuildingMove(u *unit.Unit, step Step) *RollData {
	r := b.BasePilotingRoll(u, step.Move)
	if step.Move == MoveJump {
		r.Set(CheckFalse, "jumping over buildings")
		return r
	}
	fromType, inFrom := b.inBuilding(step.From, step.FromElevation)
	toType, inTo := b.inBuilding(step.To, step.Elevation)
	if step.From == step.To {
		inFrom = false
	}

	var (
		bt     board.BuildingType
		reason string
	)
	switch {
	case inFrom && inTo:
		bt, reason = toType, "moving through"
	case inTo:
		bt, reason = toType, "entering"
	case inFrom:
		bt, reason = fromType, "leaving"
	default:
		r.Set(CheckFalse, "not moving through a building")
		return r
	}
	r.Add(buildingModifiers[bt], fmt.Sprintf("%s %s building", reason, bt))
	if step.Move.running() {
		r.Add(1, "running")
	}
	b.addTerrainModifier(r, u, step.To, step.Elevation)
	return r
}

func (b *Builder) inBuilding(c board.HexCoord, elevation int) (board.BuildingType, bool) {
	hex, ok := b.hexAt(c)
	if !ok {
		return 0, false
	}
	bt, ok := hex.Building()
	if !ok || elevation >= hex.BuildingElevation() {
		return 0, false
	}
	return bt, true
}

// CheckDislodgeSwarmers is the roll to shake off swarming infantry by
// dropping prone.
func (b *Builder) CheckDislodgeSwarmers(u *unit.Unit, step Step) *RollData {
	r := b.BasePilotingRoll(u, step.Move)
	if u.Swarmer == uuid.Nil {
		r.Set(CheckFalse, "no swarming infantry")
		return r
	}
	r.Add(0, "attempting to dislodge swarmers by dropping prone")
	b.addTerrainModifier(r, u, step.To, step.Elevation)
	return r
}

// maxMP1G is the MP the unit could spend on move under standard gravity.
func maxMP1G(u *unit.Unit, move MoveType) int {
	switch move {
	case MoveWalk:
		return u.WalkMP
	case MoveRun:
		return u.RunMP()
	case MoveSprint:
		return u.WalkMP * 2
	case MoveJump:
		return u.JumpMP
	}
	return 0
}

// CheckMovedTooFast applies when a unit under non-standard gravity spends
// more MP than it could at 1G.
func (b *Builder) CheckMovedTooFast(u *unit.Unit, step Step) *RollData {
	r := b.BasePilotingRoll(u, step.Move)
	limit := maxMP1G(u, step.Move)
	if step.Move == MoveNone || step.MPUsed <= limit {
		r.Set(CheckFalse, "MP used within 1G limits")
		return r
	}
	r.Add(0, fmt.Sprintf("used %d MP, more than the %d possible at 1G", step.MPUsed, limit))
	b.addTerrainModifier(r, u, step.To, step.Elevation)
	return r
}
