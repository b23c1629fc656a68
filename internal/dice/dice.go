package dice

import (
	"fmt"
	"math/rand/v2"
)

// Roller is the random source every rule consumes. *rand.Rand satisfies it.
type Roller interface {
	IntN(n int) int
}

func D6(r Roller) int      { return r.IntN(6) + 1 }
func Roll2d6(r Roller) int { return D6(r) + D6(r) }

// Roll rolls n six-sided dice and sums them.
func Roll(r Roller, n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += D6(r)
	}
	return total
}

// NewRand returns a seeded PCG source.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// ─── Fixed ──────────────────────────────────────────────────────────────────

// Fixed replays preset die faces in order. A 2d6 roll of 7 is two faces, e.g.
// Fixed(3, 4). Running past the end panics so a test never silently rolls
// random numbers.
type Fixed struct {
	faces []int
	next  int
}

func NewFixed(faces ...int) *Fixed {
	return &Fixed{faces: faces}
}

// Totals builds a Fixed that produces the given 2d6 totals (2..12), splitting
// each into two faces.
func Totals(totals ...int) *Fixed {
	var faces []int
	for _, t := range totals {
		if t < 2 || t > 12 {
			panic(fmt.Sprintf("dice: 2d6 total %d out of range", t))
		}
		a := t / 2
		faces = append(faces, a, t-a)
	}
	return NewFixed(faces...)
}

func (f *Fixed) IntN(n int) int {
	if f.next >= len(f.faces) {
		panic(fmt.Sprintf("dice: fixed roller exhausted after %d faces", len(f.faces)))
	}
	face := f.faces[f.next]
	f.next++
	if face < 1 || face > n {
		panic(fmt.Sprintf("dice: face %d out of range for d%d", face, n))
	}
	return face - 1
}

// Remaining is the number of unused faces.
func (f *Fixed) Remaining() int { return len(f.faces) - f.next }
