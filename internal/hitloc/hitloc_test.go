package hitloc

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JustinWhittecar/mekrules/internal/board"
	"github.com/JustinWhittecar/mekrules/internal/dice"
	"github.com/JustinWhittecar/mekrules/internal/unit"
)

func newMech(edge int) *unit.Unit {
	u := unit.New("Target", 50, unit.Biped{})
	u.Crew = unit.NewCrew("Target Pilot", 4, 5)
	u.Crew.Edge = edge
	return u
}

func hit(loc int, rear bool, effect unit.Effect, roll int) unit.HitData {
	return unit.HitData{Location: loc, Rear: rear, CheckRear: rear, Effect: effect, Roll: roll}
}

func TestThroughArmorCritical(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		rolls []int
		want  unit.HitData
	}{
		{"standard", Options{TAC: TACStandard}, []int{2}, hit(unit.LocCT, false, unit.EffectCritical, 2)},
		{"none", Options{TAC: TACNone}, []int{2}, hit(unit.LocCT, false, unit.EffectNone, 2)},
		{"floating", Options{TAC: TACFloating}, []int{2, 8}, hit(unit.LocLT, false, unit.EffectCritical, 2)},
		{"edge without points", Options{EdgeOnTAC: true}, []int{2}, hit(unit.LocCT, false, unit.EffectCritical, 2)},
	}
	for _, tt := range tests {
		d := dice.Totals(tt.rolls...)
		got := New(d, tt.opts).Roll(newMech(0), unit.TableNormal, unit.SideFront)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tt.name, diff)
		}
		if d.Remaining() != 0 {
			t.Errorf("%s: %d dice faces unused", tt.name, d.Remaining())
		}
	}
}

func TestEdgeRerollKeepsUndone(t *testing.T) {
	u := newMech(2)
	r := New(dice.Totals(2, 7), Options{EdgeOnTAC: true})
	got := r.Roll(u, unit.TableNormal, unit.SideFront)

	undone := hit(unit.LocCT, false, unit.EffectCritical, 2)
	want := hit(unit.LocCT, false, unit.EffectNone, 7)
	want.Undone = &undone
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("edge reroll (-want +got):\n%s", diff)
	}
	if u.Crew.Edge != 1 {
		t.Errorf("edge left = %d, want 1", u.Crew.Edge)
	}
}

func TestEdgeRerollOnlyOnce(t *testing.T) {
	u := newMech(3)
	r := New(dice.Totals(2, 2), Options{EdgeOnTAC: true})
	got := r.Roll(u, unit.TableNormal, unit.SideFront)
	if got.Roll != 2 || got.Effect != unit.EffectCritical || got.Undone == nil {
		t.Errorf("second TAC = %+v", got)
	}
	if u.Crew.Edge != 2 {
		t.Errorf("edge left = %d, want 2", u.Crew.Edge)
	}
}

func TestEdgeNotSpentWithTACDisabled(t *testing.T) {
	u := newMech(1)
	got := New(dice.Totals(2), Options{TAC: TACNone, EdgeOnTAC: true}).Roll(u, unit.TableNormal, unit.SideFront)
	if got.Undone != nil || u.Crew.Edge != 1 {
		t.Errorf("edge spent on a plain hit: %+v, edge %d", got, u.Crew.Edge)
	}
}

func TestHeadHitEdge(t *testing.T) {
	u := newMech(1)
	r := New(dice.Totals(12, 6), Options{EdgeOnHeadHit: true})
	got := r.Roll(u, unit.TableNormal, unit.SideFront)
	if got.Location != unit.LocRT || got.Undone == nil || got.Undone.Location != unit.LocHD {
		t.Errorf("head reroll = %+v", got)
	}
	if u.Crew.Edge != 0 {
		t.Errorf("edge left = %d", u.Crew.Edge)
	}

	// Punch charts put the head on a 6.
	got = New(dice.NewFixed(6), Options{}).Roll(newMech(0), unit.TablePunch, unit.SideFront)
	if got.Location != unit.LocHD {
		t.Errorf("punch 6 = %s, want head", unit.Biped{}.LocationAbbr(got.Location))
	}
}

func TestAimedShot(t *testing.T) {
	u := newMech(0)
	tests := []struct {
		name  string
		side  unit.Side
		aim   Aim
		rolls []int
		want  unit.HitData
	}{
		{"hit", unit.SideFront, Aim{unit.LocRA, AimTargetingComputer}, []int{7},
			hit(unit.LocRA, false, unit.EffectCritical, 7)},
		{"hit rear", unit.SideRear, Aim{unit.LocCT, AimImmobile}, []int{6},
			hit(unit.LocCT, true, unit.EffectCritical, 6)},
		{"rear on a limb", unit.SideRear, Aim{unit.LocLL, AimImmobile}, []int{8},
			unit.HitData{Location: unit.LocLL, Rear: true, Effect: unit.EffectCritical, Roll: 8}},
		{"miss", unit.SideFront, Aim{unit.LocHD, AimImmobile}, []int{9, 5},
			hit(unit.LocRL, false, unit.EffectNone, 5)},
		{"no aim mode", unit.SideFront, Aim{unit.LocHD, AimNone}, []int{7},
			hit(unit.LocCT, false, unit.EffectNone, 7)},
	}
	for _, tt := range tests {
		got := New(dice.Totals(tt.rolls...), Options{}).RollAimed(u, unit.TableNormal, tt.side, tt.aim)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestProneRearTable(t *testing.T) {
	u := newMech(0)
	u.Status.SetProne(true)

	got := New(dice.Totals(3), Options{ProneRearTable: true}).Roll(u, unit.TableNormal, unit.SideRear)
	if diff := cmp.Diff(hit(unit.LocRT, true, unit.EffectNone, 3), got); diff != "" {
		t.Errorf("prone rear (-want +got):\n%s", diff)
	}

	got = New(dice.Totals(3), Options{}).Roll(u, unit.TableNormal, unit.SideRear)
	if got.Location != unit.LocRA {
		t.Errorf("rear without option = %+v, want RA", got)
	}

	u.Status.SetProne(false)
	got = New(dice.Totals(3), Options{ProneRearTable: true}).Roll(u, unit.TableNormal, unit.SideRear)
	if got.Location != unit.LocRA {
		t.Errorf("standing rear = %+v, want RA", got)
	}
}

func TestSwarmAlwaysCritical(t *testing.T) {
	u := newMech(0)
	got := New(dice.Totals(10), Options{}).Roll(u, unit.TableSwarm, unit.SideLeft)
	if diff := cmp.Diff(hit(unit.LocLT, true, unit.EffectCritical, 10), got); diff != "" {
		t.Errorf("swarm (-want +got):\n%s", diff)
	}
	got = New(dice.Totals(10), Options{}).Roll(u, unit.TableSwarmConventional, unit.SideLeft)
	if got.Effect != unit.EffectNone {
		t.Errorf("conventional swarm effect = %v", got.Effect)
	}
}

func TestSeededRollsStayOnChart(t *testing.T) {
	r := New(dice.NewRand(7), Options{TAC: TACFloating})
	tank := unit.New("Tank", 40, unit.Tank{Turret: true})
	for i := 0; i < 2000; i++ {
		for _, u := range []*unit.Unit{newMech(0), tank} {
			for _, s := range []unit.Side{unit.SideFront, unit.SideLeft, unit.SideRight, unit.SideRear} {
				h := r.Roll(u, unit.TableNormal, s)
				if h.Location < 0 || h.Location >= u.Locations() {
					t.Fatalf("%s %v: location %d", u.Kind().Name(), s, h.Location)
				}
				if h.Roll < 2 || h.Roll > 12 {
					t.Fatalf("roll %d", h.Roll)
				}
			}
		}
	}
}

func TestSideFromArc(t *testing.T) {
	tests := map[board.ArcType]unit.Side{
		board.ArcFront: unit.SideFront,
		board.ArcLeft:  unit.SideLeft,
		board.ArcRight: unit.SideRight,
		board.ArcRear:  unit.SideRear,
	}
	for arc, want := range tests {
		if got := SideFromArc(arc); got != want {
			t.Errorf("SideFromArc(%v) = %v, want %v", arc, got, want)
		}
	}
}

func TestParseTACMode(t *testing.T) {
	for in, want := range map[string]TACMode{"": TACStandard, "Floating": TACFloating, "none": TACNone} {
		got, err := ParseTACMode(in)
		if err != nil || got != want {
			t.Errorf("ParseTACMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseTACMode("sometimes"); err == nil {
		t.Error("ParseTACMode accepted junk")
	}
}
