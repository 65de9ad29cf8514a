package draft

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func assertClose(t *testing.T, got, want, epsilon float64) {
	t.Helper()
	if d := math.Abs(got - want); d > epsilon || math.IsNaN(got) {
		t.Errorf("got %g, want %g (±%g)", got, want, epsilon)
	}
}

// The constructors below are for test fixtures that are known to be valid.

func mustLine(t *testing.T, x0, y0, x1, y1 float64) Line {
	t.Helper()
	l, err := NewLine(Pt(x0, y0), Pt(x1, y1))
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func mustCircle(t *testing.T, cx, cy, r float64) Circle {
	t.Helper()
	c, err := NewCircle(Pt(cx, cy), r)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func mustArc(t *testing.T, cx, cy, r, start, end float64, ccw bool) Arc {
	t.Helper()
	a, err := NewArc(Pt(cx, cy), r, start, end, ccw)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

// smallFloat maps arbitrary quick-generated values into a range where
// round trips don't lose all precision.
func smallFloat(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return math.Mod(f, 1e3)
}
