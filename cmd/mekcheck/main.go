// Command mekcheck loads a unit from an MTF file, applies a damage scenario
// and prints its hit-location spread and piloting roll requirements.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rodaine/table"

	"github.com/JustinWhittecar/mekrules/internal/board"
	"github.com/JustinWhittecar/mekrules/internal/config"
	"github.com/JustinWhittecar/mekrules/internal/db"
	"github.com/JustinWhittecar/mekrules/internal/dice"
	"github.com/JustinWhittecar/mekrules/internal/hitloc"
	"github.com/JustinWhittecar/mekrules/internal/ingestion"
	"github.com/JustinWhittecar/mekrules/internal/logging"
	"github.com/JustinWhittecar/mekrules/internal/psr"
	"github.com/JustinWhittecar/mekrules/internal/unit"
)

type options struct {
	mtf     string
	board   string
	config  string
	damage  string
	destroy string
	hex     string
	table   string
	rolls   int
	seed    uint64
}

func main() {
	var o options
	flag.StringVar(&o.mtf, "mtf", "", "Path to the unit's .mtf file")
	flag.StringVar(&o.board, "board", "", "Path to a MegaMek .board file (default: open 16x17 map)")
	flag.StringVar(&o.config, "config", ".", "Directory holding "+config.FileName)
	flag.StringVar(&o.damage, "damage", "", "Damage to apply first, e.g. CT:20,RTR:8 (R suffix on torsos hits rear armor)")
	flag.StringVar(&o.destroy, "destroy", "", "Comma-separated locations to destroy outright, e.g. LT,RL")
	flag.StringVar(&o.hex, "hex", "0101", "Hex (XXYY) the unit moves into for piloting checks")
	flag.StringVar(&o.table, "table", "normal", "Hit table: normal, punch, kick, swarm, above, below")
	flag.IntVar(&o.rolls, "rolls", 10000, "Hit-location rolls per side")
	flag.Uint64Var(&o.seed, "seed", uint64(time.Now().UnixNano()), "Dice seed")
	flag.Parse()

	if o.mtf == "" {
		fmt.Fprintln(os.Stderr, "usage: mekcheck -mtf unit.mtf [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(context.Background(), o, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "mekcheck: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, o options, out io.Writer) error {
	cfg, err := config.Load(o.config)
	if err != nil {
		return err
	}
	log := logging.New(os.Stderr, cfg.LogLevel)

	catalog, err := db.LoadCatalog(ctx, cfg.DB.SQLitePath, cfg.DB.PostgresDSN, log)
	if err != nil {
		return err
	}

	data, err := ingestion.ParseMTF(o.mtf)
	if err != nil {
		return err
	}
	u, unknown, err := ingestion.BuildUnit(data, catalog)
	if err != nil {
		return err
	}
	u.SetLogger(log)
	for _, name := range unknown {
		log.Warn().Str("item", name).Msg("not in equipment catalog, mounted as a one-slot placeholder")
	}
	log.Info().Str("unit", u.String()).Int("equipment", len(u.Equipment())).Msg("unit loaded")

	if err := applyScenario(u, o.damage, o.destroy); err != nil {
		return err
	}

	b := board.NewBoard(16, 17)
	if o.board != "" {
		if b, err = board.ParseBoard(o.board); err != nil {
			return err
		}
	}
	hex, err := parseHex(o.hex)
	if err != nil {
		return err
	}
	if !b.InBounds(hex) {
		return fmt.Errorf("hex %s is off the %dx%d board", o.hex, b.Width, b.Height)
	}
	t, err := parseTable(o.table)
	if err != nil {
		return err
	}

	printState(out, u)

	resolver := hitloc.New(dice.NewRand(o.seed), cfg.HitOptions())
	resolver.Log = log
	printHitSpread(out, resolver, u, t, o.rolls)

	builder := &psr.Builder{Env: b, Options: cfg.PilotingOptions()}
	printChecks(out, builder, b, u, hex)
	return nil
}

// ─── Scenario ───────────────────────────────────────────────────────────────

func locationByAbbr(u *unit.Unit, abbr string) (int, bool) {
	for loc := 0; loc < u.Locations(); loc++ {
		if strings.EqualFold(u.LocationAbbr(loc), abbr) {
			return loc, true
		}
	}
	return unit.LocNone, false
}

// applyScenario applies the -damage and -destroy flags and settles the
// result. Rear torso damage is written with an R prefix as MTF does: RTC,
// RTL, RTR.
func applyScenario(u *unit.Unit, damage, destroy string) error {
	for _, item := range splitList(damage) {
		where, amount, ok := strings.Cut(item, ":")
		if !ok {
			return fmt.Errorf("damage %q: want LOC:POINTS", item)
		}
		n, err := strconv.Atoi(amount)
		if err != nil || n <= 0 {
			return fmt.Errorf("damage %q: bad amount", item)
		}
		hit, err := parseTarget(u, where)
		if err != nil {
			return err
		}
		u.Damage(hit, n)
	}
	for _, abbr := range splitList(destroy) {
		loc, ok := locationByAbbr(u, abbr)
		if !ok {
			return fmt.Errorf("destroy: unknown location %q", abbr)
		}
		u.DestroyLocation(loc, false)
	}
	u.ApplyPendingDamage()
	return nil
}

var rearTargets = map[string]string{"RTC": "CT", "RTL": "LT", "RTR": "RT"}

func parseTarget(u *unit.Unit, s string) (unit.HitData, error) {
	abbr, rear := strings.ToUpper(s), false
	if front, ok := rearTargets[abbr]; ok {
		abbr, rear = front, true
	}
	loc, ok := locationByAbbr(u, abbr)
	if !ok {
		return unit.HitData{}, fmt.Errorf("damage: unknown location %q", s)
	}
	return unit.HitData{Location: loc, Rear: rear}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseHex reads MegaMek's XXYY hex notation.
func parseHex(s string) (board.HexCoord, error) {
	if len(s) != 4 {
		return board.HexCoord{}, fmt.Errorf("hex %q: want XXYY", s)
	}
	col, err1 := strconv.Atoi(s[:2])
	row, err2 := strconv.Atoi(s[2:])
	if err1 != nil || err2 != nil {
		return board.HexCoord{}, fmt.Errorf("hex %q: want XXYY", s)
	}
	return board.HexCoord{Col: col, Row: row}, nil
}

func parseTable(s string) (unit.Table, error) {
	for t := unit.TableNormal; t <= unit.TableBelow; t++ {
		if strings.EqualFold(t.String(), s) {
			return t, nil
		}
	}
	return unit.TableNormal, fmt.Errorf("unknown hit table %q", s)
}

// ─── Output ─────────────────────────────────────────────────────────────────

func printState(out io.Writer, u *unit.Unit) {
	fmt.Fprintf(out, "%s\n\n", u)
	t := table.New("Location", "Armor", "Rear", "Internal", "Hittable", "Status").WithWriter(out)
	for loc := 0; loc < u.Locations(); loc++ {
		rear := "-"
		if u.HasRearArmor(loc) {
			rear = u.Armor(loc, true).String()
		}
		status := "ok"
		if u.LocationBad(loc) {
			status = "destroyed"
		}
		t.AddRow(u.LocationAbbr(loc), u.Armor(loc, false), rear, u.Internal(loc), u.CountHittable(loc), status)
	}
	t.Print()
	fmt.Fprintln(out)
}

// hitSpread is a location's share of rolls on each side plus the share of
// those hits that carried a critical.
type hitSpread struct {
	hits  [4]int
	crits [4]int
}

func printHitSpread(out io.Writer, r *hitloc.Resolver, u *unit.Unit, tbl unit.Table, rolls int) {
	if rolls <= 0 {
		return
	}
	// Sampling must not spend the crew's edge.
	sample := *r
	sample.Options.EdgeOnTAC = false
	sample.Options.EdgeOnHeadHit = false

	spread := make(map[int]*hitSpread)
	sides := []unit.Side{unit.SideFront, unit.SideLeft, unit.SideRight, unit.SideRear}
	for i, side := range sides {
		for n := 0; n < rolls; n++ {
			h := sample.Roll(u, tbl, side)
			s, ok := spread[h.Location]
			if !ok {
				s = &hitSpread{}
				spread[h.Location] = s
			}
			s.hits[i]++
			if h.Effect == unit.EffectCritical {
				s.crits[i]++
			}
		}
	}

	locs := make([]int, 0, len(spread))
	for loc := range spread {
		locs = append(locs, loc)
	}
	sort.Ints(locs)

	fmt.Fprintf(out, "Hit locations, %s table, %d rolls per side\n\n", tbl, rolls)
	t := table.New("Location", "Front", "Left", "Right", "Rear", "Crit%").WithWriter(out)
	for _, loc := range locs {
		s := spread[loc]
		hits, crits := 0, 0
		row := []interface{}{u.LocationAbbr(loc)}
		for i := range sides {
			row = append(row, pct(s.hits[i], rolls))
			hits += s.hits[i]
			crits += s.crits[i]
		}
		row = append(row, pct(crits, hits))
		t.AddRow(row...)
	}
	t.Print()
	fmt.Fprintln(out)
}

func pct(n, of int) string {
	if of == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(of))
}

type namedCheck struct {
	name string
	roll *psr.RollData
}

func printChecks(out io.Writer, b *psr.Builder, brd *board.Board, u *unit.Unit, to board.HexCoord) {
	from := to
	if n := board.Neighbors(to)[0]; brd.InBounds(n) {
		from = n
	}
	walk := psr.Step{From: from, To: to, Move: psr.MoveWalk, MPUsed: u.WalkMP, DistanceMoved: u.WalkMP}
	running := psr.Step{From: from, To: to, Move: psr.MoveRun, MPUsed: u.RunMP(), DistanceMoved: u.RunMP(), Turning: true}
	depth := 0
	if h, ok := brd.HexAt(to); ok {
		depth = h.WaterDepth()
	}

	checks := []namedCheck{
		{"base (walking)", b.BasePilotingRoll(u, psr.MoveWalk)},
		{"get up", b.CheckGetUp(u, walk)},
		{"running with damage", b.CheckRunningWithDamage(u, running)},
		{"reckless movement", b.CheckRecklessMove(u, psr.Step{From: from, To: to, Move: psr.MoveWalk, MPUsed: u.WalkMP, Reckless: true})},
		{"skid", b.CheckSkid(u, running)},
		{"bog down", b.CheckBogDown(u, walk)},
		{"enter water", b.CheckWaterMove(u, depth, psr.MoveWalk)},
		{"enter rubble", b.CheckRubbleMove(u, walk)},
		{"building", b.CheckBuildingMove(u, walk)},
		{"dislodge swarmers", b.CheckDislodgeSwarmers(u, walk)},
		{"moved too fast", b.CheckMovedTooFast(u, running)},
	}

	fmt.Fprintf(out, "Piloting checks entering %02d%02d\n\n", to.Col, to.Row)
	t := table.New("Check", "Outcome", "Target", "Detail").WithWriter(out)
	for _, c := range checks {
		target := "-"
		if v, ok := c.roll.Target(); ok {
			target = strconv.Itoa(v)
		}
		detail := c.roll.Reason
		if c.roll.Outcome == psr.Numeric {
			detail = c.roll.Description()
		}
		t.AddRow(c.name, c.roll.Outcome, target, detail)
	}
	t.Print()
}
