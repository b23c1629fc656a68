package psr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/JustinWhittecar/mekrules/internal/board"
	"github.com/JustinWhittecar/mekrules/internal/equipment"
	"github.com/JustinWhittecar/mekrules/internal/unit"
)

const piloting = 5

var (
	open       = board.HexCoord{Col: 1, Row: 1}
	paved      = board.HexCoord{Col: 2, Row: 1}
	icy        = board.HexCoord{Col: 3, Row: 1}
	swamp      = board.HexCoord{Col: 1, Row: 2}
	quicksand  = board.HexCoord{Col: 2, Row: 2}
	mud        = board.HexCoord{Col: 3, Row: 2}
	deepSnow   = board.HexCoord{Col: 4, Row: 2}
	rubble     = board.HexCoord{Col: 1, Row: 3}
	heavyBldg  = board.HexCoord{Col: 2, Row: 3}
	heavyBldg2 = board.HexCoord{Col: 2, Row: 4}
	iceBridge  = board.HexCoord{Col: 3, Row: 3}
)

func testBoard() *board.Board {
	b := board.NewBoard(5, 5)
	b.SetTerrain(paved, board.TerrainPavement, 1)
	b.SetTerrain(icy, board.TerrainIce, 1)
	b.SetTerrain(swamp, board.TerrainSwamp, 1)
	b.SetTerrain(quicksand, board.TerrainSwamp, board.Quicksand)
	b.SetTerrain(mud, board.TerrainMud, 1)
	b.SetTerrain(deepSnow, board.TerrainSnow, board.DeepSnow)
	b.SetTerrain(rubble, board.TerrainRubble, 1)
	for _, c := range []board.HexCoord{heavyBldg, heavyBldg2} {
		b.SetTerrain(c, board.TerrainBuilding, int(board.BuildingHeavy))
		b.SetTerrain(c, board.TerrainBuildingElev, 2)
	}
	b.SetTerrain(iceBridge, board.TerrainIce, 1)
	b.SetTerrain(iceBridge, board.TerrainWater, 2)
	b.SetTerrain(iceBridge, board.TerrainBridge, 1)
	b.SetTerrain(iceBridge, board.TerrainBridgeElev, 3)
	return b
}

func newBuilder() *Builder {
	return &Builder{Env: testBoard()}
}

func newMech(k unit.Kind) *unit.Unit {
	u := unit.New("Test Mech", 50, k)
	u.Crew = unit.NewCrew("Pilot", 4, piloting)
	u.WalkMP, u.JumpMP = 5, 3
	for loc := 0; loc < u.Locations(); loc++ {
		u.InitializeInternal(5, loc)
	}
	for _, sys := range []int{
		unit.SystemEngine, unit.SystemEngine, unit.SystemEngine,
		unit.SystemGyro, unit.SystemGyro, unit.SystemGyro, unit.SystemGyro,
		unit.SystemEngine, unit.SystemEngine, unit.SystemEngine,
	} {
		u.AddCritical(unit.LocCT, unit.NewSystemSlot(sys))
	}
	for _, loc := range k.Legs() {
		for _, sys := range []int{unit.SystemHip, unit.SystemUpperLeg, unit.SystemLowerLeg, unit.SystemFoot} {
			u.AddCritical(loc, unit.NewSystemSlot(sys))
		}
	}
	return u
}

func newTank(mode unit.MoveMode) *unit.Unit {
	u := unit.New("Test Tank", 40, unit.Tank{Turret: true})
	u.Crew = unit.NewCrew("Driver", 4, piloting)
	u.Mode = mode
	return u
}

func hitGyro(u *unit.Unit, n int) {
	for i := 0; i < n; i++ {
		u.HitCritical(unit.LocCT, 3+i)
	}
}

func mods(r *RollData) []unit.Modifier { return r.Modifiers }

// ─── Base roll ──────────────────────────────────────────────────────────────

func TestPilotDeadAlwaysFails(t *testing.T) {
	u := newMech(unit.Biped{})
	u.Crew.Damage(6)
	hitGyro(u, 1)
	u.Interference = 3

	r := newBuilder().BasePilotingRoll(u, MoveWalk)
	if r.Outcome != AutomaticFail || r.Reason != "pilot dead" {
		t.Errorf("BasePilotingRoll = %v, want automatic failure (pilot dead)", r)
	}
	if _, ok := r.Target(); ok {
		t.Error("sentinel roll has a target number")
	}
}

func TestBaseSentinels(t *testing.T) {
	tests := []struct {
		name  string
		setup func(u *unit.Unit)
		want  Outcome
	}{
		{"unconscious", func(u *unit.Unit) { u.Crew.Unconscious = true }, Impossible},
		{"shutdown", func(u *unit.Unit) { u.Status.SetShutDown(true) }, AutomaticFail},
		{"both legs", func(u *unit.Unit) {
			u.DestroyLocation(unit.LocLL, false)
			u.DestroyLocation(unit.LocRL, false)
		}, AutomaticFail},
		{"gyro", func(u *unit.Unit) { hitGyro(u, 2) }, AutomaticFail},
		{"healthy", func(*unit.Unit) {}, Numeric},
	}
	for _, tt := range tests {
		u := newMech(unit.Biped{})
		tt.setup(u)
		if got := newBuilder().BasePilotingRoll(u, MoveWalk); got.Outcome != tt.want {
			t.Errorf("%s: outcome = %v, want %v", tt.name, got.Outcome, tt.want)
		}
	}
}

func TestGyroDamage(t *testing.T) {
	tests := []struct {
		gyro    unit.GyroType
		hits    int
		want    Outcome
		wantMod int
	}{
		{unit.GyroStandard, 1, Numeric, 3},
		{unit.GyroStandard, 2, AutomaticFail, 0},
		{unit.GyroCompact, 2, AutomaticFail, 0},
		{unit.GyroHeavyDuty, 1, Numeric, 1},
		{unit.GyroHeavyDuty, 2, Numeric, 3},
		{unit.GyroHeavyDuty, 3, AutomaticFail, 0},
	}
	for _, tt := range tests {
		u := newMech(unit.Biped{})
		u.Gyro = tt.gyro
		hitGyro(u, tt.hits)
		u.ApplyPendingDamage()

		r := newBuilder().BasePilotingRoll(u, MoveWalk)
		if r.Outcome != tt.want {
			t.Errorf("%v with %d hits: outcome = %v, want %v", tt.gyro, tt.hits, r.Outcome, tt.want)
			continue
		}
		if tt.want == Numeric {
			want := []unit.Modifier{{Value: tt.wantMod, Reason: "Gyro damaged"}}
			if diff := cmp.Diff(want, mods(r)); diff != "" {
				t.Errorf("%v with %d hits (-want +got):\n%s", tt.gyro, tt.hits, diff)
			}
		}
	}
}

func TestLegDamage(t *testing.T) {
	u := newMech(unit.Biped{})
	u.DestroyLocation(unit.LocLL, false)
	u.HitCritical(unit.LocRL, 0)
	u.HitCritical(unit.LocRL, 3)

	r := newBuilder().BasePilotingRoll(u, MoveWalk)
	want := []unit.Modifier{
		{Value: 5, Reason: "Left Leg destroyed"},
		{Value: 2, Reason: "Right Leg hip actuator destroyed"},
	}
	if diff := cmp.Diff(want, mods(r)); diff != "" {
		t.Errorf("leg modifiers (-want +got):\n%s", diff)
	}

	u = newMech(unit.Biped{})
	u.HitCritical(unit.LocRL, 1)
	u.HitCritical(unit.LocRL, 3)
	u.Cockpit = unit.CockpitSmall
	if got := newBuilder().BasePilotingRoll(u, MoveWalk).Value(); got != piloting+3 {
		t.Errorf("two actuators and small cockpit = %d, want %d", got, piloting+3)
	}
}

func TestQuad(t *testing.T) {
	u := newMech(unit.Quad{})
	r := newBuilder().BasePilotingRoll(u, MoveWalk)
	if r.Value() != piloting-2 || !r.Has("Quad bonus") {
		t.Errorf("intact quad = %v", r)
	}

	u.DestroyLocation(unit.LocLA, false)
	r = newBuilder().BasePilotingRoll(u, MoveWalk)
	if r.Has("Quad bonus") || r.Value() != piloting+5 {
		t.Errorf("quad missing a leg = %v", r)
	}

	u.DestroyLocation(unit.LocRA, false)
	u.DestroyLocation(unit.LocLL, false)
	if r := newBuilder().BasePilotingRoll(u, MoveWalk); r.Outcome != AutomaticFail {
		t.Errorf("quad with three legs gone = %v", r)
	}
}

func TestConditions(t *testing.T) {
	tests := []struct {
		name string
		pc   board.Conditions
		want int
	}{
		{"default", board.DefaultConditions(), 0},
		{"moonless", board.Conditions{Light: board.LightMoonless, Gravity: 1}, 1},
		{"downpour and storm", board.Conditions{Weather: board.WeatherDownpour, Wind: board.WindStorm, Gravity: 1}, 4},
		{"tornado", board.Conditions{Wind: board.WindTornadoF4, Gravity: 1}, 5},
		{"1.6G", board.Conditions{Gravity: 1.6}, 2},
		{"3.5G capped", board.Conditions{Gravity: 3.5}, 4},
		{"low gravity", board.Conditions{Gravity: 0.5}, 1},
		{"vacuum", board.Conditions{Weather: board.WeatherDownpour, Wind: board.WindStorm, Gravity: 1.5, Atmosphere: board.AtmosphereVacuum}, 1},
		{"space", board.Conditions{Weather: board.WeatherDownpour, Gravity: 0, Space: true}, 0},
	}
	for _, tt := range tests {
		b := testBoard()
		b.Conditions = tt.pc
		r := (&Builder{Env: b}).BasePilotingRoll(newMech(unit.Biped{}), MoveWalk)
		if got := r.Value() - piloting; got != tt.want {
			t.Errorf("%s: modifier = %d, want %d (%s)", tt.name, got, tt.want, r.Description())
		}
	}
}

func TestCarefulFatigueInterference(t *testing.T) {
	b := &Builder{Env: testBoard(), Options: Options{CarefulMovement: true, Fatigue: true, FatigueBaseRounds: 16}}
	u := newMech(unit.Biped{})
	u.Status.SetCareful(true)
	u.Crew.RoundsActive = 13
	u.Interference = 2

	want := []unit.Modifier{
		{Value: -1, Reason: "careful movement"},
		{Value: 1, Reason: "fatigue"},
		{Value: 2, Reason: "interference"},
	}
	if diff := cmp.Diff(want, mods(b.BasePilotingRoll(u, MoveWalk))); diff != "" {
		t.Errorf("modifiers (-want +got):\n%s", diff)
	}
	if r := b.BasePilotingRoll(u, MoveRun); r.Has("careful movement") {
		t.Error("careful movement applied while running")
	}

	u.Crew.RoundsActive = 12
	if b.BasePilotingRoll(u, MoveWalk).Has("fatigue") {
		t.Error("fatigue at threshold")
	}

	thresholds := map[int]int{0: 16, 1: 16, 2: 14, 3: 14, 4: 12, 5: 12, 6: 10, 8: 10}
	for skill, want := range thresholds {
		if got := b.fatigueThreshold(skill); got != want {
			t.Errorf("fatigueThreshold(%d) = %d, want %d", skill, got, want)
		}
	}
}

func TestVehicleBase(t *testing.T) {
	u := newTank(unit.ModeTracked)
	u.MotivePenalty = 2
	if got := newBuilder().BasePilotingRoll(u, MoveRun).Value(); got != piloting+2 {
		t.Errorf("motive damage roll = %d, want %d", got, piloting+2)
	}
	u.Status.SetImmobile(true)
	if r := newBuilder().BasePilotingRoll(u, MoveRun); r.Outcome != AutomaticFail {
		t.Errorf("immobile vehicle = %v", r)
	}
}

// ─── Checks ─────────────────────────────────────────────────────────────────

func TestCheckWaterMove(t *testing.T) {
	b := newBuilder()
	u := newMech(unit.Biped{})

	if r := b.CheckWaterMove(u, 0, MoveWalk); r.Outcome != CheckFalse {
		t.Errorf("depth 0 = %v, want not required", r)
	}

	r := b.CheckWaterMove(u, 2, MoveWalk)
	want := []unit.Modifier{{Value: 0, Reason: "entering Depth 2 Water"}}
	if r.Outcome != Numeric || r.Value() != piloting {
		t.Errorf("depth 2 = %v, want %d", r, piloting)
	}
	if diff := cmp.Diff(want, mods(r)); diff != "" {
		t.Errorf("depth 2 modifiers (-want +got):\n%s", diff)
	}

	for depth, mod := range map[int]int{1: -1, 3: 1, 5: 1} {
		if got := b.CheckWaterMove(u, depth, MoveWalk).Value(); got != piloting+mod {
			t.Errorf("depth %d = %d, want %d", depth, got, piloting+mod)
		}
	}

	umu := &equipment.Type{Name: "UMU", CritSlots: 1, Hittable: true, UMU: true}
	if _, err := u.Mount(umu, unit.LocLL, false); err != nil {
		t.Fatal(err)
	}
	if r := b.CheckWaterMove(u, 2, MoveWalk); r.Outcome != CheckFalse {
		t.Errorf("UMU unit = %v, want not required", r)
	}
	if r := b.CheckWaterMove(newTank(unit.ModeHover), 2, MoveRun); r.Outcome != CheckFalse {
		t.Errorf("hover = %v, want not required", r)
	}
}

func TestCheckGetUp(t *testing.T) {
	b := newBuilder()
	u := newMech(unit.Biped{})
	if r := b.CheckGetUp(u, Step{To: open}); r.Outcome != CheckFalse {
		t.Errorf("standing unit = %v", r)
	}

	u.Status.SetProne(true)
	r := b.CheckGetUp(u, Step{To: open})
	if r.Outcome != Numeric || r.Value() != piloting || !r.Has("attempting to get up") {
		t.Errorf("prone biped = %v", r)
	}

	b.Options.CarefulStand = true
	if got := b.CheckGetUp(u, Step{To: open}).Value(); got != piloting-2 {
		t.Errorf("careful stand = %d, want %d", got, piloting-2)
	}

	// Ice on the ground, not on the bridge deck.
	b.Options.CarefulStand = false
	if got := b.CheckGetUp(u, Step{To: iceBridge, Elevation: 3}).Value(); got != piloting {
		t.Errorf("on bridge deck = %d, want %d", got, piloting)
	}
	if got := b.CheckGetUp(u, Step{To: iceBridge}).Value(); got != piloting+4 {
		t.Errorf("on the ice below = %d, want %d", got, piloting+4)
	}
}

func TestCheckGetUpQuad(t *testing.T) {
	b := newBuilder()
	u := newMech(unit.Quad{})
	u.Status.SetProne(true)
	if r := b.CheckGetUp(u, Step{To: open}); r.Outcome != AutomaticSuccess {
		t.Errorf("intact quad = %v, want automatic success", r)
	}

	hitGyro(u, 1)
	if r := b.CheckGetUp(u, Step{To: open}); r.Outcome != Numeric {
		t.Errorf("quad with gyro hit = %v, want numeric", r)
	}

	u = newMech(unit.Quad{})
	u.Status.SetProne(true)
	u.Crew.Damage(6)
	if r := b.CheckGetUp(u, Step{To: open}); r.Outcome != AutomaticFail {
		t.Errorf("quad with dead pilot = %v, want automatic failure", r)
	}
}

func TestCheckRunningWithDamage(t *testing.T) {
	b := newBuilder()
	u := newMech(unit.Biped{})
	run := Step{To: open, Move: MoveRun}

	if r := b.CheckRunningWithDamage(u, run); r.Outcome != CheckFalse {
		t.Errorf("undamaged = %v", r)
	}
	u.HitCritical(unit.LocLL, 0)
	if r := b.CheckRunningWithDamage(u, Step{To: open, Move: MoveWalk}); r.Outcome != CheckFalse {
		t.Errorf("walking = %v", r)
	}
	r := b.CheckRunningWithDamage(u, run)
	if r.Outcome != Numeric || r.Value() != piloting+2 {
		t.Errorf("running on a bad hip = %v", r)
	}
}

func TestSkidModifier(t *testing.T) {
	want := map[int]int{0: -1, 2: -1, 3: 0, 4: 0, 5: 1, 7: 1, 8: 2, 10: 2, 11: 4, 17: 4, 18: 5, 30: 5}
	for dist, mod := range want {
		if got := skidModifier(dist); got != mod {
			t.Errorf("skidModifier(%d) = %d, want %d", dist, got, mod)
		}
	}
}

func TestCheckSkid(t *testing.T) {
	b := newBuilder()
	u := newMech(unit.Biped{})
	tests := []struct {
		name string
		step Step
		want int
		req  bool
	}{
		{"pavement", Step{To: paved, Move: MoveRun, Turning: true, DistanceMoved: 6}, piloting + 1, true},
		{"ice", Step{To: icy, Move: MoveSprint, Turning: true, DistanceMoved: 1}, piloting - 1 + 4, true},
		{"walking", Step{To: paved, Move: MoveWalk, Turning: true}, 0, false},
		{"straight", Step{To: paved, Move: MoveRun}, 0, false},
		{"dry ground", Step{To: open, Move: MoveRun, Turning: true}, 0, false},
	}
	for _, tt := range tests {
		r := b.CheckSkid(u, tt.step)
		if r.Required() != tt.req || (tt.req && r.Value() != tt.want) {
			t.Errorf("%s: %v, want required=%v value %d", tt.name, r, tt.req, tt.want)
		}
	}
}

func TestCheckBogDown(t *testing.T) {
	b := newBuilder()
	tests := []struct {
		name string
		u    *unit.Unit
		to   board.HexCoord
		want int
		req  bool
	}{
		{"swamp", newMech(unit.Biped{}), swamp, piloting + 2, true},
		{"quicksand", newMech(unit.Biped{}), quicksand, piloting + 4, true},
		{"mud", newMech(unit.Biped{}), mud, piloting + 1, true},
		{"deep snow wheeled", newTank(unit.ModeWheeled), deepSnow, piloting + 2, true},
		{"deep snow tracked", newTank(unit.ModeTracked), deepSnow, 0, false},
		{"hover", newTank(unit.ModeHover), swamp, 0, false},
		{"firm ground", newMech(unit.Biped{}), open, 0, false},
	}
	for _, tt := range tests {
		r := b.CheckBogDown(tt.u, Step{To: tt.to, Move: MoveWalk})
		if r.Required() != tt.req || (tt.req && r.Value() != tt.want) {
			t.Errorf("%s: %v, want required=%v value %d", tt.name, r, tt.req, tt.want)
		}
	}

	heavy := newMech(unit.Biped{})
	heavy.Superheavy = true
	if got := b.CheckBogDown(heavy, Step{To: swamp}).Value(); got != piloting+3 {
		t.Errorf("superheavy in swamp = %d, want %d", got, piloting+3)
	}
}

func TestCheckRubbleMove(t *testing.T) {
	b := newBuilder()
	u := newMech(unit.Biped{})
	r := b.CheckRubbleMove(u, Step{To: rubble, Move: MoveWalk})
	if r.Outcome != Numeric || !r.Has("entering Rubble") || r.Value() != piloting {
		t.Errorf("rubble = %v", r)
	}
	u.Crew.Abilities = []string{"Mountaineer"}
	if got := b.CheckRubbleMove(u, Step{To: rubble, Move: MoveWalk}).Value(); got != piloting-1 {
		t.Errorf("mountaineer = %d, want %d", got, piloting-1)
	}
	if r := b.CheckRubbleMove(u, Step{To: rubble, Move: MoveJump}); r.Required() {
		t.Errorf("jumping into rubble = %v", r)
	}
	if r := b.CheckRubbleMove(newTank(unit.ModeTracked), Step{To: rubble}); r.Required() {
		t.Errorf("vehicle in rubble = %v", r)
	}
}

func TestCheckBuildingMove(t *testing.T) {
	b := newBuilder()
	u := newMech(unit.Biped{})
	tests := []struct {
		name   string
		step   Step
		want   int
		reason string
	}{
		{"entering", Step{From: open, To: heavyBldg, Move: MoveWalk}, piloting + 2, "entering heavy building"},
		{"entering running", Step{From: open, To: heavyBldg, Move: MoveRun}, piloting + 3, "entering heavy building"},
		{"leaving", Step{From: heavyBldg, To: rubble, Move: MoveWalk}, piloting + 2 + 0, "leaving heavy building"},
		{"within", Step{From: heavyBldg, To: heavyBldg2, Move: MoveWalk}, piloting + 2, "moving through heavy building"},
	}
	for _, tt := range tests {
		r := b.CheckBuildingMove(u, tt.step)
		if r.Outcome != Numeric || r.Value() != tt.want || !r.Has(tt.reason) {
			t.Errorf("%s: %v, want %d with %q", tt.name, r, tt.want, tt.reason)
		}
	}
	for name, step := range map[string]Step{
		"jumping":   {From: open, To: heavyBldg, Move: MoveJump},
		"on roof":   {From: open, To: heavyBldg, Elevation: 2, Move: MoveWalk},
		"open land": {From: open, To: paved, Move: MoveWalk},
	} {
		if r := b.CheckBuildingMove(u, step); r.Required() {
			t.Errorf("%s: %v, want not required", name, r)
		}
	}
}

func TestCheckDislodgeSwarmers(t *testing.T) {
	b := newBuilder()
	u := newMech(unit.Biped{})
	if r := b.CheckDislodgeSwarmers(u, Step{To: open}); r.Outcome != CheckFalse {
		t.Errorf("no swarmer = %v", r)
	}
	u.Swarmer = uuid.New()
	if r := b.CheckDislodgeSwarmers(u, Step{To: open}); r.Outcome != Numeric || r.Value() != piloting {
		t.Errorf("swarmed = %v", r)
	}
}

func TestCheckMovedTooFast(t *testing.T) {
	b := newBuilder()
	u := newMech(unit.Biped{})
	tests := []struct {
		move MoveType
		mp   int
		req  bool
	}{
		{MoveWalk, 5, false},
		{MoveWalk, 6, true},
		{MoveRun, 8, false},
		{MoveRun, 9, true},
		{MoveSprint, 10, false},
		{MoveJump, 4, true},
		{MoveNone, 3, false},
	}
	for _, tt := range tests {
		r := b.CheckMovedTooFast(u, Step{To: open, Move: tt.move, MPUsed: tt.mp})
		if r.Required() != tt.req {
			t.Errorf("%v with %d MP: %v, want required=%v", tt.move, tt.mp, r, tt.req)
		}
	}
}

func TestCheckRecklessMove(t *testing.T) {
	b := testBoard()
	b.Conditions.Light = board.LightMoonless
	builder := &Builder{Env: b}
	u := newMech(unit.Biped{})

	r := builder.CheckRecklessMove(u, Step{To: open, Move: MoveWalk, MPUsed: 3, Reckless: true})
	if r.Outcome != Numeric || r.Value() != piloting+1 {
		t.Errorf("reckless in the dark = %v", r)
	}
	if r := builder.CheckRecklessMove(u, Step{To: paved, Move: MoveWalk, MPUsed: 3, Reckless: true}); r.Required() {
		t.Errorf("reckless on pavement = %v", r)
	}
	if r := newBuilder().CheckRecklessMove(u, Step{To: open, Move: MoveWalk, MPUsed: 3, Reckless: true}); r.Required() {
		t.Errorf("reckless by day = %v", r)
	}
}

// ─── RollData ───────────────────────────────────────────────────────────────

func TestOutcomePrecedence(t *testing.T) {
	tests := []struct {
		first, second, want Outcome
	}{
		{Numeric, AutomaticSuccess, AutomaticSuccess},
		{AutomaticFail, AutomaticSuccess, AutomaticFail},
		{AutomaticSuccess, AutomaticFail, AutomaticFail},
		{AutomaticFail, Impossible, Impossible},
		{Impossible, CheckFalse, CheckFalse},
		{CheckFalse, AutomaticFail, CheckFalse},
	}
	for _, tt := range tests {
		r := newRoll(5, "base")
		r.Set(tt.first, "first")
		r.Set(tt.second, "second")
		if r.Outcome != tt.want {
			t.Errorf("%v then %v = %v, want %v", tt.first, tt.second, r.Outcome, tt.want)
		}
	}

	r := newRoll(4, "base piloting skill")
	r.Add(2, "hip")
	r.Add(-1, "careful movement")
	if got, ok := r.Target(); !ok || got != 5 {
		t.Errorf("Target = %d, %v", got, ok)
	}
	if got := r.String(); got != "5 [4 (base piloting skill), +2 (hip), -1 (careful movement)]" {
		t.Errorf("String = %q", got)
	}
}
