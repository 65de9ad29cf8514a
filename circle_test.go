package draft

import (
	"errors"
	"math"
	"testing"
)

func TestNewCircle(t *testing.T) {
	for _, r := range []float64{0, -1, math.NaN()} {
		if _, err := NewCircle(Point{}, r); !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("radius %v: got error %v, want ErrInvalidGeometry", r, err)
		}
	}

	c, err := NewCircleFromThreePoints(Pt(5, 0), Pt(0, 5), Pt(-5, 0))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, c, mustCircle(t, 0, 0, 5))

	if _, err := NewCircleFromThreePoints(Pt(0, 0), Pt(1, 1), Pt(2, 2)); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("got error %v, want ErrInvalidGeometry", err)
	}

	c, err = NewCircleFromCenterAndPoint(Pt(1, 1), Pt(4, 5))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, c, mustCircle(t, 1, 1, 5))

	c, err = NewCircleFromDiameter(Pt(-2, 0), Pt(2, 0))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, c, mustCircle(t, 0, 0, 2))

	if _, err := NewCircleFromDiameter(Pt(1, 1), Pt(1, 1)); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("got error %v, want ErrInvalidGeometry", err)
	}
}

func TestCircleMeasures(t *testing.T) {
	c := mustCircle(t, 0, 0, 2)
	assertClose(t, c.Area(), 4*math.Pi, 1e-12)
	assertClose(t, c.Circumference(), 4*math.Pi, 1e-12)
	assertClose(t, c.Diameter(), 4, 0)
	assertClose(t, c.ArcLength(0, math.Pi/2), math.Pi, 1e-12)
	// The sweep wraps through angle zero.
	assertClose(t, c.ArcLength(3*math.Pi/2, 0), math.Pi, 1e-12)
	assertClose(t, c.ChordLength(0, math.Pi), 4, 1e-12)
	assertClose(t, c.SectorArea(0, math.Pi), 2*math.Pi, 1e-12)
}

func TestCirclePointQueries(t *testing.T) {
	c := mustCircle(t, 1, 1, 5)

	if !c.ContainsPoint(Pt(1, 1)) || !c.ContainsPoint(Pt(6, 1)) {
		t.Error("center and circumference should be contained")
	}
	if c.ContainsPoint(Pt(7, 1)) {
		t.Error("outside point should not be contained")
	}
	if !c.OnCircle(Pt(4, 5)) || c.OnCircle(Pt(1, 1)) {
		t.Error("OnCircle is wrong")
	}
	assertClose(t, c.DistanceToPoint(Pt(1, 1)), -5, 1e-12)
	assertClose(t, c.DistanceToPoint(Pt(1, 11)), 5, 1e-12)

	diff(t, c.ClosestPoint(Pt(1, 20)), Pt(1, 6))
	diff(t, c.ClosestPoint(Pt(1, 1)), Pt(6, 1))
	assertNear(t, c.PointAtAngle(math.Pi), Pt(-4, 1), 1e-12)

	angle, err := c.AngleOfPoint(Pt(1, 6))
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, angle, math.Pi/2, 1e-12)
	if _, err := c.AngleOfPoint(Pt(1, 7)); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("got error %v, want ErrInvalidValue", err)
	}

	tan, err := c.TangentAt(Pt(6, 1))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, tan, Vec(0, 1))
	n, err := c.NormalAt(Pt(1, -4))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, n, Vec(0, -1))
	if _, err := c.TangentAt(Pt(0, 0)); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("got error %v, want ErrInvalidValue", err)
	}
}

func TestCircleTransform(t *testing.T) {
	c := mustCircle(t, 1, 1, 2)
	diff(t, c.Translate(2, -1), mustCircle(t, 3, 0, 2))

	s, err := c.Scale(3, Pt(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, s, mustCircle(t, 3, 3, 6))
	if _, err := c.Scale(0, Point{}); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("got error %v, want ErrInvalidValue", err)
	}

	e, err := c.Expand(-1)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, e, mustCircle(t, 1, 1, 1))
	if _, err := c.Expand(-2); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("got error %v, want ErrInvalidValue", err)
	}
}

func TestCircleRelations(t *testing.T) {
	c := mustCircle(t, 0, 0, 5)
	if !c.IsTangentTo(mustCircle(t, 8, 0, 3)) {
		t.Error("circles should touch externally")
	}
	if !c.IsTangentTo(mustCircle(t, 2, 0, 3)) {
		t.Error("circles should touch internally")
	}
	if c.IsTangentTo(mustCircle(t, 8, 0, 5)) {
		t.Error("crossing circles are not tangent")
	}
	if !c.IsConcentricWith(mustCircle(t, 0, 0, 1)) || c.IsConcentricWith(mustCircle(t, 1, 0, 1)) {
		t.Error("IsConcentricWith is wrong")
	}
}

func TestCircleIntersectCircle(t *testing.T) {
	c := mustCircle(t, 0, 0, 5)

	t.Run("crossing", func(t *testing.T) {
		o := mustCircle(t, 8, 0, 5)
		pts, n := c.IntersectCircle(o)
		if n != 2 {
			t.Fatalf("got %d points, want 2", n)
		}
		for _, p := range pts {
			assertClose(t, p.Distance(c.Center()), 5, 1e-9)
			assertClose(t, p.Distance(o.Center()), 5, 1e-9)
		}
		assertNear(t, pts[1], Pt(pts[0].X, -pts[0].Y), 1e-9)
		diff(t, []Point{Pt(4, 3), Pt(4, -3)}, pts[:])
	})

	tests := []struct {
		name string
		o    Circle
		want []Point
	}{
		{"external tangent", mustCircle(t, 8, 0, 3), []Point{Pt(5, 0)}},
		{"internal tangent", mustCircle(t, 2, 0, 3), []Point{Pt(5, 0)}},
		{"internal tangent, larger", mustCircle(t, -2, 0, 7), []Point{Pt(5, 0)}},
		{"separate", mustCircle(t, 20, 0, 3), nil},
		{"nested", mustCircle(t, 1, 0, 1), nil},
		{"identical", mustCircle(t, 0, 0, 5), nil},
		{"concentric", mustCircle(t, 0, 0, 2), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts, n := c.IntersectCircle(tt.o)
			var got []Point
			got = append(got, pts[:n]...)
			diff(t, tt.want, got)
		})
	}
}

func TestCircleIntersectLine(t *testing.T) {
	c := mustCircle(t, 0, 0, 5)
	pts, n := c.IntersectLine(mustLine(t, -3, -10, -3, 10))
	if n != 2 {
		t.Fatalf("got %d points, want 2", n)
	}
	diff(t, []Point{Pt(-3, -4), Pt(-3, 4)}, pts[:])
}

func TestCircleBoundingBox(t *testing.T) {
	b := mustCircle(t, 1, 2, 3).BoundingBox()
	diff(t, b.Min(), Pt(-2, -1))
	diff(t, b.Max(), Pt(4, 5))
}
