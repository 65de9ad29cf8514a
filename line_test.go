package draft

import (
	"errors"
	"math"
	"testing"
)

func TestNewLine(t *testing.T) {
	if _, err := NewLine(Pt(1, 1), Pt(1, 1)); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("got error %v, want ErrInvalidGeometry", err)
	}
	if _, err := NewLine(Pt(1, 1), Pt(1+1e-11, 1)); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("got error %v, want ErrInvalidGeometry", err)
	}

	l, err := NewLineFromPointAndAngle(Pt(1, 1), math.Pi/2, 3)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, l.End(), Pt(1, 4), 1e-12)

	l, err = NewLineFromPointAndVector(Pt(1, 1), Vec(2, 0))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, l.End(), Pt(3, 1))
}

func TestLineMeasures(t *testing.T) {
	l := mustLine(t, 0, 0, 3, 4)
	if got := l.Length(); got != 5 {
		t.Errorf("got length %v, want 5", got)
	}
	if got := l.LengthSquared(); got != 25 {
		t.Errorf("got squared length %v, want 25", got)
	}
	diff(t, l.Midpoint(), Pt(1.5, 2))
	diff(t, l.Direction(), Vec(3, 4))

	u, err := l.UnitVector()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, u, Vec(0.6, 0.8))
	n, err := l.NormalVector()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, n, Vec(-0.8, 0.6))

	m, ok := mustLine(t, 0, 1, 2, 5).Slope()
	if !ok || m != 2 {
		t.Errorf("got slope %v, %v, want 2, true", m, ok)
	}
	b, ok := mustLine(t, 1, 3, 2, 5).YIntercept()
	if !ok || b != 1 {
		t.Errorf("got intercept %v, %v, want 1, true", b, ok)
	}
	if _, ok := mustLine(t, 1, 0, 1, 5).Slope(); ok {
		t.Error("vertical line should have no slope")
	}
	if _, ok := mustLine(t, 1, 0, 1, 5).YIntercept(); ok {
		t.Error("vertical line should have no intercept")
	}
}

func TestLineEqual(t *testing.T) {
	l := mustLine(t, 0, 0, 1, 1)
	if !l.Equal(l.Reverse()) {
		t.Error("a line should equal its reverse")
	}
	if l.Equal(mustLine(t, 0, 0, 1, 2)) {
		t.Error("different lines should not be equal")
	}
}

func TestLineClosestPoint(t *testing.T) {
	l := mustLine(t, 0, 0, 10, 0)
	tests := []struct {
		pt      Point
		closest Point
		dist    float64
	}{
		{Pt(5, 3), Pt(5, 0), 3},
		{Pt(-3, 4), Pt(0, 0), 5},
		{Pt(13, -4), Pt(10, 0), 5},
		{Pt(7, 0), Pt(7, 0), 0},
	}
	for _, tt := range tests {
		diff(t, l.ClosestPoint(tt.pt), tt.closest)
		assertClose(t, l.DistanceToPoint(tt.pt), tt.dist, 1e-12)
	}

	assertClose(t, l.DistanceToPointInfinite(Pt(-3, 4)), 4, 1e-12)
	if !l.ContainsPoint(Pt(3, 0)) {
		t.Error("point on the segment should be contained")
	}
	if l.ContainsPoint(Pt(11, 0)) {
		t.Error("point on the extension should not be contained")
	}
}

func TestLineIntersect(t *testing.T) {
	l1 := mustLine(t, 0, 0, 10, 10)
	l2 := mustLine(t, 0, 10, 10, 0)
	p, ok := l1.Intersect(l2)
	if !ok {
		t.Fatal("lines should intersect")
	}
	diff(t, p, Pt(5, 5))

	// The crossing of the extensions lies outside the second segment.
	l3 := mustLine(t, 0, 10, 2, 8)
	if _, ok := l1.Intersect(l3); ok {
		t.Error("segments should not intersect")
	}
	p, ok = l1.IntersectInfinite(l3)
	if !ok {
		t.Fatal("infinite lines should intersect")
	}
	diff(t, p, Pt(5, 5))

	// Segments meeting at an endpoint intersect.
	p, ok = l1.Intersect(mustLine(t, 10, 10, 20, 0))
	if !ok {
		t.Fatal("segments sharing an endpoint should intersect")
	}
	diff(t, p, Pt(10, 10))

	if _, ok := l1.IntersectInfinite(mustLine(t, 0, 1, 10, 11)); ok {
		t.Error("parallel lines should not intersect")
	}
}

func TestLineIntersectCircle(t *testing.T) {
	tests := []struct {
		name string
		line Line
		want []Point
	}{
		{"secant", mustLine(t, -10, 0, 10, 0), []Point{Pt(-5, 0), Pt(5, 0)}},
		{"tangent", mustLine(t, -10, 5, 10, 5), []Point{Pt(0, 5)}},
		{"miss", mustLine(t, -10, 6, 10, 6), nil},
		{"inside", mustLine(t, -1, 0, 1, 0), nil},
		{"one end inside", mustLine(t, 0, 0, 10, 0), []Point{Pt(5, 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts, n := tt.line.IntersectCircle(Point{}, 5)
			var got []Point
			got = append(got, pts[:n]...)
			diff(t, tt.want, got)
		})
	}
}

func TestLineRelations(t *testing.T) {
	l := mustLine(t, 0, 0, 2, 1)
	if !l.IsParallelTo(mustLine(t, 5, 5, 1, 3)) {
		t.Error("lines should be parallel")
	}
	if !l.IsPerpendicularTo(mustLine(t, 0, 0, -1, 2)) {
		t.Error("lines should be perpendicular")
	}
	if l.IsParallelTo(mustLine(t, 0, 0, -1, 2)) {
		t.Error("lines should not be parallel")
	}
}

func TestLineExtend(t *testing.T) {
	l := mustLine(t, 0, 0, 10, 0)

	got, err := l.ExtendStart(2)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, got, mustLine(t, -2, 0, 10, 0))

	got, err = l.ExtendEnd(3)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, got, mustLine(t, 0, 0, 13, 0))

	got, err = l.ExtendBoth(1)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, got, mustLine(t, -1, 0, 11, 0))

	if _, err := l.ExtendEnd(-10); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("got error %v, want ErrInvalidGeometry", err)
	}
}

func TestLineOffset(t *testing.T) {
	l := mustLine(t, 0, 0, 10, 0)
	diff(t, l.Offset(2), mustLine(t, 0, 2, 10, 2))
	diff(t, l.Offset(-2), mustLine(t, 0, -2, 10, -2))

	// Offsetting keeps the direction.
	off := l.Offset(1)
	diff(t, off.Start(), Pt(0, 1))
}

func TestLineTransform(t *testing.T) {
	l := mustLine(t, 1, 0, 2, 0)
	diff(t, l.Translate(1, 1), mustLine(t, 2, 1, 3, 1))

	r := l.Rotate(math.Pi/2, Point{})
	assertNear(t, r.Start(), Pt(0, 1), 1e-12)
	assertNear(t, r.End(), Pt(0, 2), 1e-12)

	s, err := l.Scale(2, 2, Pt(1, 0))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, s, mustLine(t, 1, 0, 3, 0))

	if _, err := l.Scale(0, 1, Point{}); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("got error %v, want ErrInvalidGeometry", err)
	}
}

func TestLineBoundingBox(t *testing.T) {
	b := mustLine(t, 3, -1, -2, 4).BoundingBox()
	diff(t, b.Min(), Pt(-2, -1))
	diff(t, b.Max(), Pt(3, 4))
}

func TestLineEvalProperty(t *testing.T) {
	l := mustLine(t, -3, 2, 7, -8)
	for _, tt := range []float64{0, 0.25, 0.5, 1} {
		p := l.Eval(tt)
		if !l.ContainsPoint(p) {
			t.Errorf("Eval(%v) = %s is not on the line", tt, p)
		}
		assertClose(t, l.project(p), tt, 1e-12)
	}
}
