package board

// ─── Hex Coordinates ────────────────────────────────────────────────────────
// MegaMek uses offset coordinates (col, row); 0-indexed odd columns shift down.
// We convert to cube coordinates for distance/arc calculations.

type HexCoord struct {
	Col, Row int // 1-indexed offset coords matching MegaMek XXYY format
}

type CubeCoord struct {
	Q, R, S int
}

// OffsetToCube converts offset coords (odd-q layout) to cube coords.
func OffsetToCube(h HexCoord) CubeCoord {
	q := h.Col - 1
	r := h.Row - 1
	x := q
	z := r - (q-(q&1))/2
	y := -x - z
	return CubeCoord{Q: x, R: y, S: z}
}

// CubeToOffset converts cube coords back to offset coords (odd-q, 1-indexed).
func CubeToOffset(c CubeCoord) HexCoord {
	col := c.Q
	row := c.S + (c.Q-(c.Q&1))/2
	return HexCoord{Col: col + 1, Row: row + 1}
}

// HexDistance returns the hex distance between two offset coordinates.
func HexDistance(a, b HexCoord) int {
	ac := OffsetToCube(a)
	bc := OffsetToCube(b)
	return (abs(ac.Q-bc.Q) + abs(ac.R-bc.R) + abs(ac.S-bc.S)) / 2
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ─── Facing & Neighbors ─────────────────────────────────────────────────────
// Facing 0-5: 0=N, 1=NE, 2=SE, 3=S, 4=SW, 5=NW (clockwise from top)

// Neighbors returns the 6 adjacent hex coordinates. Even (1-indexed) columns
// sit half a hex lower, matching OffsetToCube.
func Neighbors(h HexCoord) [6]HexCoord {
	col := h.Col
	row := h.Row
	low := col%2 == 0

	if low {
		return [6]HexCoord{
			{col, row - 1},     // 0: N
			{col + 1, row},     // 1: NE
			{col + 1, row + 1}, // 2: SE
			{col, row + 1},     // 3: S
			{col - 1, row + 1}, // 4: SW
			{col - 1, row},     // 5: NW
		}
	}
	return [6]HexCoord{
		{col, row - 1},     // 0: N
		{col + 1, row - 1}, // 1: NE
		{col + 1, row},     // 2: SE
		{col, row + 1},     // 3: S
		{col - 1, row},     // 4: SW
		{col - 1, row - 1}, // 5: NW
	}
}

// ArcType is the arc an attacker sits in relative to a unit's facing.
type ArcType int

const (
	ArcFront ArcType = iota
	ArcLeft
	ArcRight
	ArcRear
)

func (a ArcType) String() string {
	switch a {
	case ArcLeft:
		return "left"
	case ArcRight:
		return "right"
	case ArcRear:
		return "rear"
	default:
		return "front"
	}
}

// DetermineArc returns which arc 'attacker' is in relative to a unit at pos with facing.
// Forward = 3 hexsides centered on facing, left/right/rear = 1 hexside each.
func DetermineArc(pos HexCoord, facing int, attacker HexCoord) ArcType {
	dir := bearingToFacing(pos, attacker)
	diff := ((dir-facing)%6 + 6) % 6
	switch diff {
	case 2:
		return ArcRight
	case 4:
		return ArcLeft
	case 3:
		return ArcRear
	default:
		return ArcFront
	}
}

// bearingToFacing returns which of the 6 hex directions target is from source.
// Uses integer dot products against cube direction vectors.
func bearingToFacing(from, to HexCoord) int {
	if from == to {
		return 0
	}
	fc := OffsetToCube(from)
	tc := OffsetToCube(to)
	dq := tc.Q - fc.Q
	dr := tc.R - fc.R
	ds := tc.S - fc.S

	// 0(N): (0,+1,-1), 1(NE): (+1,0,-1), 2(SE): (+1,-1,0)
	// 3(S): (0,-1,+1), 4(SW): (-1,0,+1), 5(NW): (-1,+1,0)
	type dir3 struct{ q, r, s int }
	dirs := [6]dir3{
		{0, 1, -1}, {1, 0, -1}, {1, -1, 0},
		{0, -1, 1}, {-1, 0, 1}, {-1, 1, 0},
	}

	bestFacing := 0
	bestDot := -(1 << 30)
	for i, d := range dirs {
		dot := dq*d.q + dr*d.r + ds*d.s
		if dot > bestDot {
			bestDot = dot
			bestFacing = i
		}
	}
	return bestFacing
}
