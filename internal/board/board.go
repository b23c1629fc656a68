package board

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ─── Board ──────────────────────────────────────────────────────────────────

type Board struct {
	Width, Height int
	Grid          []Hex // flat 2D grid: (col-1)*Height + (row-1)
	Conditions    Conditions
}

func NewBoard(w, h int) *Board {
	b := &Board{
		Width:      w,
		Height:     h,
		Grid:       make([]Hex, w*h),
		Conditions: DefaultConditions(),
	}
	for col := 1; col <= w; col++ {
		for row := 1; row <= h; row++ {
			b.Grid[b.index(HexCoord{Col: col, Row: row})] = Hex{Coord: HexCoord{Col: col, Row: row}}
		}
	}
	return b
}

func (b *Board) index(h HexCoord) int {
	return (h.Col-1)*b.Height + (h.Row - 1)
}

func (b *Board) InBounds(h HexCoord) bool {
	return h.Col >= 1 && h.Col <= b.Width && h.Row >= 1 && h.Row <= b.Height
}

func (b *Board) Get(h HexCoord) *Hex {
	if !b.InBounds(h) {
		return nil
	}
	return &b.Grid[b.index(h)]
}

// HexAt returns a copy of the hex at c.
func (b *Board) HexAt(c HexCoord) (Hex, bool) {
	h := b.Get(c)
	if h == nil {
		return Hex{}, false
	}
	return *h, true
}

// Planetary returns the global conditions of the battlefield.
func (b *Board) Planetary() Conditions {
	return b.Conditions
}

// SetTerrain adds or replaces a terrain feature in the hex at c.
func (b *Board) SetTerrain(c HexCoord, t TerrainType, level int) {
	h := b.Get(c)
	if h == nil {
		panic(fmt.Sprintf("board: hex %02d%02d outside %dx%d board", c.Col, c.Row, b.Width, b.Height))
	}
	for i := range h.Terrain {
		if h.Terrain[i].Type == t {
			h.Terrain[i].Level = level
			return
		}
	}
	h.Terrain = append(h.Terrain, TerrainFeature{Type: t, Level: level})
}

// ─── Board Parser ───────────────────────────────────────────────────────────

func ParseBoard(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open board: %w", err)
	}
	defer f.Close()
	return ReadBoard(f)
}

// ReadBoard parses the MegaMek .board format.
func ReadBoard(r io.Reader) (*Board, error) {
	var board *Board
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line == "end" {
			continue
		}

		if strings.HasPrefix(line, "size ") {
			parts := strings.Fields(line)
			if len(parts) >= 3 {
				w, _ := strconv.Atoi(parts[1])
				h, _ := strconv.Atoi(parts[2])
				if w <= 0 || h <= 0 {
					return nil, fmt.Errorf("bad board size %q", line)
				}
				board = NewBoard(w, h)
			}
			continue
		}

		if strings.HasPrefix(line, "tag ") {
			continue
		}

		if strings.HasPrefix(line, "hex ") {
			if board == nil {
				return nil, fmt.Errorf("hex line before size: %q", line)
			}
			parseHexLine(board, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan board: %w", err)
	}
	if board == nil {
		return nil, fmt.Errorf("missing size line")
	}
	return board, nil
}

func parseHexLine(board *Board, line string) {
	// Format: hex XXYY elevation "terrain;terrain" "theme"
	parts := strings.Fields(line)
	if len(parts) < 3 {
		return
	}

	coord := parts[1]
	if len(coord) != 4 {
		return
	}
	col, _ := strconv.Atoi(coord[:2])
	row, _ := strconv.Atoi(coord[2:])
	c := HexCoord{Col: col, Row: row}
	hex := board.Get(c)
	if hex == nil {
		return
	}
	hex.Elevation, _ = strconv.Atoi(parts[2])
	hex.Terrain = hex.Terrain[:0]

	if len(parts) >= 4 {
		terrainStr := strings.Trim(parts[3], "\"")
		for _, feat := range strings.Split(terrainStr, ";") {
			feat = strings.TrimSpace(feat)
			if feat == "" {
				continue
			}
			// Format: "type:level:extra" or "type:level"
			fp := strings.Split(feat, ":")
			level := 1
			if len(fp) >= 2 {
				level, _ = strconv.Atoi(fp[1])
			}
			if tf, ok := parseTerrainFeature(strings.ToLower(fp[0]), level); ok {
				hex.Terrain = append(hex.Terrain, tf)
			}
		}
	}
}
