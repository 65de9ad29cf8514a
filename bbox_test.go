package draft

import (
	"errors"
	"testing"
)

func mustBox(t *testing.T, x0, y0, x1, y1 float64) BoundingBox {
	t.Helper()
	b, err := NewBoundingBox(Pt(x0, y0), Pt(x1, y1))
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestNewBoundingBox(t *testing.T) {
	if _, err := NewBoundingBox(Pt(1, 0), Pt(0, 1)); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("got error %v, want ErrInvalidGeometry", err)
	}
	if _, err := NewBoundingBoxFromPoints(); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("got error %v, want ErrInvalidGeometry", err)
	}
	if _, err := NewBoundingBoxFromCenterAndSize(Point{}, -1, 1); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("got error %v, want ErrInvalidGeometry", err)
	}

	b, err := NewBoundingBoxFromPoints(Pt(3, -1), Pt(-2, 4), Pt(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, b, mustBox(t, -2, -1, 3, 4))

	b, err = NewBoundingBoxFromCenterAndSize(Pt(1, 1), 4, 2)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, b, mustBox(t, -1, 0, 3, 2))

	// Degenerate boxes are allowed.
	b = mustBox(t, 1, 1, 1, 1)
	if !b.IsPoint() || !b.IsEmpty() {
		t.Error("box should be a point")
	}
}

func TestBoundingBoxMeasures(t *testing.T) {
	b := mustBox(t, 0, 0, 4, 2)
	if b.Width() != 4 || b.Height() != 2 {
		t.Errorf("got size %v×%v, want 4×2", b.Width(), b.Height())
	}
	if b.Area() != 8 || b.Perimeter() != 12 {
		t.Errorf("got area %v and perimeter %v, want 8 and 12", b.Area(), b.Perimeter())
	}
	diff(t, b.Center(), Pt(2, 1))
	diff(t, b.Corners(), [4]Point{Pt(0, 0), Pt(4, 0), Pt(4, 2), Pt(0, 2)})

	ar, err := b.AspectRatio()
	if err != nil {
		t.Fatal(err)
	}
	if ar != 2 {
		t.Errorf("got aspect ratio %v, want 2", ar)
	}
	if _, err := mustBox(t, 0, 0, 4, 0).AspectRatio(); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("got error %v, want ErrInvalidValue", err)
	}
}

func TestBoundingBoxContains(t *testing.T) {
	b := mustBox(t, 0, 0, 10, 10)
	if !b.ContainsPoint(Pt(0, 5)) || !b.ContainsPoint(Pt(5, 5)) {
		t.Error("ContainsPoint should include the boundary")
	}
	if b.ContainsPointStrictly(Pt(0, 5)) || !b.ContainsPointStrictly(Pt(5, 5)) {
		t.Error("ContainsPointStrictly should exclude the boundary")
	}
	if b.ContainsPoint(Pt(11, 5)) {
		t.Error("outside point should not be contained")
	}

	inner := mustBox(t, 0, 2, 5, 5)
	if !b.ContainsBox(inner) || b.ContainsBoxStrictly(inner) {
		t.Error("box touching the boundary is contained, but not strictly")
	}
	if !b.ContainsBoxStrictly(mustBox(t, 1, 1, 2, 2)) {
		t.Error("inner box should be strictly contained")
	}
}

func TestBoundingBoxIntersection(t *testing.T) {
	b := mustBox(t, 0, 0, 10, 10)
	tests := []struct {
		name string
		o    BoundingBox
		ok   bool
		want BoundingBox
	}{
		{"overlap", mustBox(t, 5, 5, 15, 15), true, mustBox(t, 5, 5, 10, 10)},
		{"inside", mustBox(t, 2, 2, 3, 3), true, mustBox(t, 2, 2, 3, 3)},
		{"touching edge", mustBox(t, 10, 0, 20, 10), true, mustBox(t, 10, 0, 10, 10)},
		{"disjoint", mustBox(t, 11, 0, 20, 10), false, BoundingBox{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Intersects(tt.o); got != tt.ok {
				t.Errorf("got Intersects %t, want %t", got, tt.ok)
			}
			got, ok := b.Intersection(tt.o)
			if ok != tt.ok {
				t.Fatalf("got ok %t, want %t", ok, tt.ok)
			}
			diff(t, tt.want, got)
		})
	}
}

func TestBoundingBoxUnionAndExpand(t *testing.T) {
	b := mustBox(t, 0, 0, 1, 1)
	diff(t, b.Union(mustBox(t, 2, -1, 3, 0)), mustBox(t, 0, -1, 3, 1))
	diff(t, b.ExpandToBox(mustBox(t, 2, -1, 3, 0)), mustBox(t, 0, -1, 3, 1))
	diff(t, b.ExpandToPoint(Pt(-1, 5)), mustBox(t, -1, 0, 1, 5))

	e, err := b.Expand(1)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, e, mustBox(t, -1, -1, 2, 2))

	e, err = b.Expand(-0.5)
	if err != nil {
		t.Fatal(err)
	}
	if !e.IsPoint() {
		t.Errorf("got %s, want a point", e)
	}
	if _, err := b.Expand(-1); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("got error %v, want ErrInvalidValue", err)
	}
}

func TestBoundingBoxTransform(t *testing.T) {
	b := mustBox(t, 0, 0, 2, 2)
	diff(t, b.Translate(1, -1), mustBox(t, 1, -1, 3, 1))

	s, err := b.Scale(2, 3, Pt(1, 1))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, s, mustBox(t, -1, -2, 3, 4))
	if _, err := b.Scale(0, 1, Point{}); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("got error %v, want ErrInvalidValue", err)
	}
}

func TestBoundingBoxDistance(t *testing.T) {
	b := mustBox(t, 0, 0, 2, 2)
	tests := []struct {
		pt      Point
		closest Point
		dist    float64
	}{
		{Pt(1, 1), Pt(1, 1), 0},
		{Pt(5, 1), Pt(2, 1), 3},
		{Pt(5, 6), Pt(2, 2), 5},
		{Pt(-3, -4), Pt(0, 0), 5},
	}
	for _, tt := range tests {
		diff(t, b.ClosestPoint(tt.pt), tt.closest)
		assertClose(t, b.DistanceToPoint(tt.pt), tt.dist, 1e-12)
	}
}
