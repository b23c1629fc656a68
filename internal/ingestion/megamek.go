package ingestion

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// parseArmorValue handles both standard "26" and patchwork "Reactive(Inner Sphere):26" formats
func parseArmorValue(val string) int {
	if n, err := strconv.Atoi(val); err == nil {
		return n
	}
	if idx := strings.LastIndex(val, ":"); idx >= 0 {
		if n, err := strconv.Atoi(val[idx+1:]); err == nil {
			return n
		}
	}
	return 0
}

// MTFData holds the parts of a MegaMek .mtf file the damage model needs.
type MTFData struct {
	Chassis  string
	Model    string
	Config   string
	TechBase string

	Mass         int
	EngineRating int
	EngineType   string
	Structure    string
	Cockpit      string
	Gyro         string

	WalkMP int
	JumpMP int

	ArmorType string
	// ArmorValues is keyed by the upper-case MTF prefix: "CT", "RTC", "FLL" ...
	ArmorValues map[string]int

	// LocationEquipment holds each location block's critical lines in order,
	// keyed by the block header without its colon.
	LocationEquipment map[string][]string
}

// ParseMTF reads a MegaMek .mtf file from disk.
func ParseMTF(path string) (*MTFData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mtf: %w", err)
	}
	defer f.Close()
	return ReadMTF(f)
}

// ReadMTF parses MTF text.
func ReadMTF(r io.Reader) (*MTFData, error) {
	data := &MTFData{
		ArmorValues:       make(map[string]int),
		LocationEquipment: make(map[string][]string),
	}

	scanner := bufio.NewScanner(r)
	// Lore lines can be long.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var currentLocation string
	var inWeapons bool

	for scanner.Scan() {
		trimmed := strings.TrimSpace(scanner.Text())
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lower := strings.ToLower(trimmed)

		if loc := matchLocationHeader(trimmed); loc != "" {
			currentLocation = loc
			inWeapons = false
			continue
		}
		if strings.HasPrefix(lower, "weapons:") {
			inWeapons = true
			currentLocation = ""
			continue
		}
		// Critical lines never contain a colon; a key line ends the block.
		if currentLocation != "" && !strings.Contains(trimmed, ":") {
			data.LocationEquipment[currentLocation] = append(data.LocationEquipment[currentLocation], trimmed)
			continue
		}
		currentLocation = ""
		// The weapons summary repeats what the location blocks say.
		if inWeapons {
			if !strings.Contains(trimmed, ",") {
				inWeapons = false
			} else {
				continue
			}
		}

		idx := strings.Index(trimmed, ":")
		if idx < 0 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(trimmed[:idx]))
		val := strings.TrimSpace(trimmed[idx+1:])

		if loc, ok := strings.CutSuffix(key, " armor"); ok {
			data.ArmorValues[strings.ToUpper(loc)] = parseArmorValue(val)
			continue
		}
		switch key {
		case "chassis":
			data.Chassis = val
		case "model":
			data.Model = val
		case "config":
			data.Config = val
		case "techbase":
			data.TechBase = val
		case "mass":
			data.Mass, _ = strconv.Atoi(val)
		case "engine":
			data.EngineRating, data.EngineType = parseEngine(val)
		case "structure":
			data.Structure = val
		case "cockpit":
			data.Cockpit = val
		case "gyro":
			data.Gyro = val
		case "walk mp":
			data.WalkMP, _ = strconv.Atoi(val)
		case "jump mp":
			data.JumpMP, _ = strconv.Atoi(val)
		case "armor":
			data.ArmorType = val
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan mtf: %w", err)
	}
	if data.Chassis == "" {
		return nil, fmt.Errorf("missing chassis field")
	}
	if data.Mass <= 0 {
		return nil, fmt.Errorf("%s: missing mass", data.FullName())
	}
	return data, nil
}

var locationHeaders = []string{
	"Left Arm:",
	"Right Arm:",
	"Left Torso:",
	"Right Torso:",
	"Center Torso:",
	"Head:",
	"Left Leg:",
	"Right Leg:",
	"Front Left Leg:",
	"Front Right Leg:",
	"Rear Left Leg:",
	"Rear Right Leg:",
	"Center Leg:",
}

// matchLocationHeader checks if a line is a location header like "Left Arm:" or "Front Left Leg:"
func matchLocationHeader(line string) string {
	for _, loc := range locationHeaders {
		if strings.EqualFold(line, loc) {
			return strings.TrimSuffix(loc, ":")
		}
	}
	return ""
}

// parseEngine parses "300 Fusion Engine(IS)" -> (300, "Fusion Engine(IS)")
func parseEngine(val string) (int, string) {
	rating, kind, ok := strings.Cut(val, " ")
	n, _ := strconv.Atoi(rating)
	if !ok {
		return n, ""
	}
	return n, kind
}

// TotalArmor returns the sum of all armor values.
func (d *MTFData) TotalArmor() int {
	total := 0
	for _, v := range d.ArmorValues {
		total += v
	}
	return total
}

// FullName returns "Chassis Model" or just "Chassis" if model is empty.
func (d *MTFData) FullName() string {
	if d.Model == "" {
		return d.Chassis
	}
	return d.Chassis + " " + d.Model
}
