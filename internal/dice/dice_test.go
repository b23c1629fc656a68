package dice

import "testing"

func TestTotals(t *testing.T) {
	tests := []int{2, 3, 7, 11, 12}
	for _, want := range tests {
		r := Totals(want)
		if got := Roll2d6(r); got != want {
			t.Errorf("Roll2d6(Totals(%d)) = %d", want, got)
		}
		if r.Remaining() != 0 {
			t.Errorf("Totals(%d) left %d faces", want, r.Remaining())
		}
	}
}

func TestRollRange(t *testing.T) {
	r := NewRand(42)
	for i := 0; i < 1000; i++ {
		if v := Roll2d6(r); v < 2 || v > 12 {
			t.Fatalf("Roll2d6 = %d", v)
		}
		if v := D6(r); v < 1 || v > 6 {
			t.Fatalf("D6 = %d", v)
		}
	}
}

func TestFixedExhausted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on exhausted roller")
		}
	}()
	r := NewFixed(3)
	D6(r)
	D6(r)
}
