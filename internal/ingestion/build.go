package ingestion

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JustinWhittecar/mekrules/internal/equipment"
	"github.com/JustinWhittecar/mekrules/internal/unit"
)

var ErrUnsupported = errors.New("unsupported unit configuration")

// Standard internal structure by tonnage: head, center torso, side torso,
// arm, leg. Quad front legs use the leg value.
var isTable = map[int][5]int{
	10: {3, 4, 3, 1, 2}, 15: {3, 5, 4, 2, 3}, 20: {3, 6, 5, 3, 4},
	25: {3, 8, 6, 4, 6}, 30: {3, 10, 7, 5, 7}, 35: {3, 11, 8, 6, 8},
	40: {3, 12, 10, 6, 10}, 45: {3, 14, 11, 7, 11}, 50: {3, 16, 12, 8, 12},
	55: {3, 18, 13, 9, 13}, 60: {3, 20, 14, 10, 14}, 65: {3, 21, 15, 10, 15},
	70: {3, 22, 15, 11, 15}, 75: {3, 23, 16, 12, 16}, 80: {3, 25, 17, 13, 17},
	85: {3, 27, 18, 14, 18}, 90: {3, 29, 19, 15, 19}, 95: {3, 30, 20, 16, 20},
	100: {3, 31, 21, 17, 21},
}

// rearArmorKeys are the MTF prefixes of the torso rear armor lines.
var rearArmorKeys = map[int]string{
	unit.LocCT: "RTC",
	unit.LocLT: "RTL",
	unit.LocRT: "RTR",
}

// KindFor picks the unit kind from the MTF Config line.
func KindFor(config string) (unit.Kind, error) {
	l := strings.ToLower(config)
	switch {
	case strings.Contains(l, "tripod"), strings.Contains(l, "lam"):
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, config)
	case strings.Contains(l, "quad"):
		return unit.Quad{}, nil
	default:
		return unit.Biped{}, nil
	}
}

func internalStructure(tonnage int, k unit.Kind, loc int) (int, bool) {
	row, ok := isTable[tonnage]
	if !ok {
		return 0, false
	}
	switch loc {
	case unit.LocHD:
		return row[0], true
	case unit.LocCT:
		return row[1], true
	case unit.LocLT, unit.LocRT:
		return row[2], true
	case unit.LocLA, unit.LocRA:
		if _, quad := k.(unit.Quad); quad {
			return row[4], true
		}
		return row[3], true
	default:
		return row[4], true
	}
}

// BuildUnit turns parsed MTF data into a unit with armor, structure,
// critical slots and mounted equipment. Names the catalog does not know are
// mounted as one-slot placeholders and returned so the caller can report
// them.
func BuildUnit(data *MTFData, catalog *equipment.Catalog) (*unit.Unit, []string, error) {
	k, err := KindFor(data.Config)
	if err != nil {
		return nil, nil, err
	}
	u := unit.New(data.FullName(), data.Mass, k)
	u.Crew = unit.NewCrew("", 4, 5)
	u.WalkMP, u.JumpMP = data.WalkMP, data.JumpMP
	u.Gyro = unit.ParseGyro(data.Gyro)
	u.Cockpit = unit.ParseCockpit(data.Cockpit)

	for loc := 0; loc < u.Locations(); loc++ {
		is, ok := internalStructure(data.Mass, k, loc)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s: no internal structure table for %d tons", ErrUnsupported, data.FullName(), data.Mass)
		}
		u.InitializeInternal(is, loc)
		u.InitializeArmor(data.ArmorValues[k.LocationAbbr(loc)], loc, false)
		if key, ok := rearArmorKeys[loc]; ok {
			u.InitializeArmor(data.ArmorValues[key], loc, true)
		}
	}

	var unknown []string
	for loc := 0; loc < u.Locations(); loc++ {
		lines := data.LocationEquipment[k.LocationName(loc)]
		missing, err := layoutLocation(u, catalog, loc, lines)
		if err != nil {
			return nil, nil, fmt.Errorf("%s %s: %w", data.FullName(), k.LocationAbbr(loc), err)
		}
		unknown = append(unknown, missing...)
	}
	linkAmmo(u)
	return u, unknown, nil
}

// run is equipment whose slots are still being laid out.
type run struct {
	name string
	m    *unit.Mounted
	left int
}

// layoutLocation places each critical line at its own slot index.
// Consecutive lines naming the same equipment fill one mount up to its slot
// count.
func layoutLocation(u *unit.Unit, catalog *equipment.Catalog, loc int, lines []string) ([]string, error) {
	var (
		unknown []string
		open    run
	)
	slots := u.NumCriticals(loc)
	for i, line := range lines {
		name, rear, armored := parseCritLine(line)
		if isEmpty(name) {
			open = run{}
			continue
		}
		if i >= slots {
			return unknown, fmt.Errorf("%q at slot %d past the %d-slot table", line, i+1, slots)
		}

		if sys, ok := unit.ParseSystem(name); ok {
			open = run{}
			cs := unit.NewSystemSlot(sys)
			cs.Armored = armored
			u.SetCritical(loc, i, cs)
			continue
		}

		if open.m == nil || open.left == 0 || !strings.EqualFold(open.name, name) {
			t, ok := catalog.Lookup(name)
			if !ok {
				t = &equipment.Type{Name: name, CritSlots: 1}
				equipment.Classify(t)
				unknown = append(unknown, name)
			}
			open = run{name: name, m: u.AddMounted(t, loc, rear), left: max(t.CritSlots, 1)}
		}
		cs := unit.NewEquipmentSlot(open.m)
		cs.Armored = armored
		u.SetCritical(loc, i, cs)
		open.left--
	}
	return unknown, nil
}

func isEmpty(name string) bool {
	return name == "" || strings.EqualFold(name, "-Empty-")
}

// parseCritLine strips the rear, omnipod and armored markers from a critical
// line.
func parseCritLine(line string) (name string, rear, armored bool) {
	name = strings.TrimSpace(line)
	for {
		lower := strings.ToLower(name)
		switch {
		case strings.HasSuffix(lower, "(r)"):
			rear = true
			name = strings.TrimSpace(name[:len(name)-3])
		case strings.HasSuffix(lower, "(armored)"):
			armored = true
			name = strings.TrimSpace(name[:len(name)-9])
		case strings.HasSuffix(lower, "(omnipod)"):
			name = strings.TrimSpace(name[:len(name)-9])
		default:
			return name, rear, armored
		}
	}
}

// linkAmmo feeds each weapon from the first bin of its ammunition.
func linkAmmo(u *unit.Unit) {
	for _, w := range u.Equipment() {
		if w.Type.Category != equipment.CategoryWeapon {
			continue
		}
		for _, a := range u.Equipment() {
			if a.Type.Category == equipment.CategoryAmmo && ammoFor(w.Type, a.Type) {
				u.LinkAmmo(w, a)
				break
			}
		}
	}
}

func ammoFor(weapon, ammo *equipment.Type) bool {
	return strings.EqualFold(ammo.Name, weapon.Name+" Ammo")
}
