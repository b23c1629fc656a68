package board

// ─── Terrain ────────────────────────────────────────────────────────────────

type TerrainType int

const (
	TerrainWoods           TerrainType = iota // level 1=light, 2=heavy
	TerrainWater                              // level = depth
	TerrainRough                              // level 1 or 2 (ultra)
	TerrainPavement
	TerrainRoad
	TerrainBuilding // level = building class (1-4), 5 = wall
	TerrainBuildingElev
	TerrainBridge
	TerrainBridgeElev
	TerrainRubble // level 1-5 by collapsed building class, 6 = ultra
	TerrainIce
	TerrainSand
	TerrainSwamp // level 3 = quicksand
	TerrainMud
	TerrainSnow // level 1 = thin, 2 = deep
)

const (
	UltraRough  = 2
	UltraRubble = 6
	Quicksand   = 3
	DeepSnow    = 2
)

type TerrainFeature struct {
	Type  TerrainType
	Level int
}

// BuildingType is the construction class of a building hex.
type BuildingType int

const (
	BuildingLight BuildingType = iota + 1
	BuildingMedium
	BuildingHeavy
	BuildingHardened
	BuildingWall
)

func (b BuildingType) String() string {
	switch b {
	case BuildingLight:
		return "light"
	case BuildingMedium:
		return "medium"
	case BuildingHeavy:
		return "heavy"
	case BuildingHardened:
		return "hardened"
	case BuildingWall:
		return "wall"
	default:
		return "none"
	}
}

type Hex struct {
	Coord     HexCoord
	Elevation int
	Terrain   []TerrainFeature
}

func (h *Hex) HasTerrain(t TerrainType) (bool, int) {
	for _, f := range h.Terrain {
		if f.Type == t {
			return true, f.Level
		}
	}
	return false, 0
}

func (h *Hex) level(t TerrainType) int {
	_, lvl := h.HasTerrain(t)
	return lvl
}

// WaterDepth is the water level of the hex, 0 when dry.
func (h *Hex) WaterDepth() int { return h.level(TerrainWater) }

func (h *Hex) Ice() bool {
	ok, _ := h.HasTerrain(TerrainIce)
	return ok
}

func (h *Hex) RubbleLevel() int { return h.level(TerrainRubble) }

// Paved reports pavement or road in the hex.
func (h *Hex) Paved() bool {
	if ok, _ := h.HasTerrain(TerrainPavement); ok {
		return true
	}
	ok, _ := h.HasTerrain(TerrainRoad)
	return ok
}

func (h *Hex) SwampLevel() int { return h.level(TerrainSwamp) }
func (h *Hex) SnowLevel() int  { return h.level(TerrainSnow) }
func (h *Hex) RoughLevel() int { return h.level(TerrainRough) }

func (h *Hex) Mud() bool {
	ok, _ := h.HasTerrain(TerrainMud)
	return ok
}

// Building returns the building class standing in the hex.
func (h *Hex) Building() (BuildingType, bool) {
	ok, lvl := h.HasTerrain(TerrainBuilding)
	if !ok {
		return 0, false
	}
	if lvl < int(BuildingLight) || lvl > int(BuildingWall) {
		lvl = int(BuildingMedium)
	}
	return BuildingType(lvl), true
}

// BuildingElevation is the height of the building above the hex floor.
func (h *Hex) BuildingElevation() int { return h.level(TerrainBuildingElev) }

// BridgeElevation returns the deck height of a bridge in the hex.
func (h *Hex) BridgeElevation() (int, bool) {
	if ok, _ := h.HasTerrain(TerrainBridge); !ok {
		return 0, false
	}
	return h.level(TerrainBridgeElev), true
}

func parseTerrainFeature(name string, level int) (TerrainFeature, bool) {
	var t TerrainType
	switch name {
	case "woods":
		t = TerrainWoods
	case "water":
		t = TerrainWater
	case "rough":
		t = TerrainRough
	case "pavement":
		t = TerrainPavement
	case "road":
		t = TerrainRoad
	case "building":
		t = TerrainBuilding
	case "bldg_elev":
		t = TerrainBuildingElev
	case "bridge":
		t = TerrainBridge
	case "bridge_elev":
		t = TerrainBridgeElev
	case "rubble":
		t = TerrainRubble
	case "ice":
		t = TerrainIce
	case "sand":
		t = TerrainSand
	case "swamp":
		t = TerrainSwamp
	case "mud":
		t = TerrainMud
	case "snow":
		t = TerrainSnow
	default:
		// ground_fluff, foliage_elev, fuel_tank etc. are cosmetic here
		return TerrainFeature{}, false
	}
	return TerrainFeature{Type: t, Level: level}, true
}
