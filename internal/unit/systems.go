package unit

import "strings"

// System slot indices, numbered as MegaMek numbers them in MTF files.
const (
	SystemLifeSupport = 0
	SystemSensors     = 1
	SystemCockpit     = 2
	SystemEngine      = 3
	SystemGyro        = 4
	SystemShoulder    = 7
	SystemUpperArm    = 8
	SystemLowerArm    = 9
	SystemHand        = 10
	SystemHip         = 11
	SystemUpperLeg    = 12
	SystemLowerLeg    = 13
	SystemFoot        = 14
)

var systemNames = map[int]string{
	SystemLifeSupport: "Life Support",
	SystemSensors:     "Sensors",
	SystemCockpit:     "Cockpit",
	SystemEngine:      "Fusion Engine",
	SystemGyro:        "Gyro",
	SystemShoulder:    "Shoulder",
	SystemUpperArm:    "Upper Arm Actuator",
	SystemLowerArm:    "Lower Arm Actuator",
	SystemHand:        "Hand Actuator",
	SystemHip:         "Hip",
	SystemUpperLeg:    "Upper Leg Actuator",
	SystemLowerLeg:    "Lower Leg Actuator",
	SystemFoot:        "Foot Actuator",
}

func SystemName(sys int) string {
	if n, ok := systemNames[sys]; ok {
		return n
	}
	return "Unknown System"
}

// ParseSystem maps an MTF critical line to a system index.
func ParseSystem(line string) (int, bool) {
	l := strings.ToLower(strings.TrimSpace(line))
	switch {
	case l == "life support":
		return SystemLifeSupport, true
	case l == "sensors":
		return SystemSensors, true
	case strings.Contains(l, "cockpit"):
		return SystemCockpit, true
	case strings.Contains(l, "engine"):
		return SystemEngine, true
	case strings.Contains(l, "gyro"):
		return SystemGyro, true
	case l == "shoulder":
		return SystemShoulder, true
	case l == "upper arm actuator":
		return SystemUpperArm, true
	case l == "lower arm actuator":
		return SystemLowerArm, true
	case l == "hand actuator":
		return SystemHand, true
	case l == "hip":
		return SystemHip, true
	case l == "upper leg actuator":
		return SystemUpperLeg, true
	case l == "lower leg actuator":
		return SystemLowerLeg, true
	case l == "foot actuator":
		return SystemFoot, true
	}
	return 0, false
}

// ─── Gyro & cockpit ─────────────────────────────────────────────────────────

type GyroType int

const (
	GyroStandard GyroType = iota
	GyroCompact
	GyroHeavyDuty
	GyroXL
	GyroNone
)

func (g GyroType) String() string {
	switch g {
	case GyroCompact:
		return "Compact Gyro"
	case GyroHeavyDuty:
		return "Heavy Duty Gyro"
	case GyroXL:
		return "XL Gyro"
	case GyroNone:
		return "None"
	default:
		return "Standard Gyro"
	}
}

// ParseGyro reads the MTF "gyro:" value.
func ParseGyro(s string) GyroType {
	l := strings.ToLower(s)
	switch {
	case strings.Contains(l, "heavy"):
		return GyroHeavyDuty
	case strings.Contains(l, "compact"):
		return GyroCompact
	case strings.Contains(l, "xl"):
		return GyroXL
	case strings.Contains(l, "none"):
		return GyroNone
	default:
		return GyroStandard
	}
}

// gyroFailHits is the number of damaged gyro slots that make piloting rolls
// impossible to pass.
func (g GyroType) gyroFailHits() int {
	if g == GyroHeavyDuty {
		return 3
	}
	return 2
}

type CockpitType int

const (
	CockpitStandard CockpitType = iota
	CockpitSmall
	CockpitTorsoMounted
	CockpitCommandConsole
)

func (c CockpitType) String() string {
	switch c {
	case CockpitSmall:
		return "Small Cockpit"
	case CockpitTorsoMounted:
		return "Torso-Mounted Cockpit"
	case CockpitCommandConsole:
		return "Command Console"
	default:
		return "Standard Cockpit"
	}
}

func ParseCockpit(s string) CockpitType {
	l := strings.ToLower(s)
	switch {
	case strings.Contains(l, "small"):
		return CockpitSmall
	case strings.Contains(l, "torso"):
		return CockpitTorsoMounted
	case strings.Contains(l, "command"):
		return CockpitCommandConsole
	default:
		return CockpitStandard
	}
}
