package draft

import (
	"fmt"
	"math"
)

// Circle is a circle with a positive radius.
type Circle struct {
	center Point
	radius float64
}

// NewCircle returns the circle with the given center and radius. It fails
// with [ErrInvalidGeometry] if the radius isn't positive.
func NewCircle(center Point, radius float64) (Circle, error) {
	if !(radius > 0) {
		return Circle{}, invalidGeometry("circle radius must be positive, got %g", radius)
	}
	return Circle{center: center, radius: radius}, nil
}

// NewCircleFromThreePoints returns the circle passing through p1, p2 and p3.
// It fails with [ErrInvalidGeometry] if the points are collinear.
func NewCircleFromThreePoints(p1, p2, p3 Point) (Circle, error) {
	center, ok := circumcenter(p1, p2, p3)
	if !ok {
		return Circle{}, invalidGeometry("cannot create circle from collinear points %s, %s, %s", p1, p2, p3)
	}
	return NewCircle(center, center.Distance(p1))
}

// circumcenter intersects the perpendicular bisectors of p1p2 and p1p3.
func circumcenter(p1, p2, p3 Point) (Point, bool) {
	v12 := p2.Sub(p1)
	v13 := p3.Sub(p1)
	if approxZero(v12.Cross(v13)) {
		return Point{}, false
	}
	m12 := p1.Midpoint(p2)
	m13 := p1.Midpoint(p3)
	b12 := Line{start: m12, end: m12.TranslateVec(v12.Perpendicular())}
	b13 := Line{start: m13, end: m13.TranslateVec(v13.Perpendicular())}
	return b12.IntersectInfinite(b13)
}

// NewCircleFromCenterAndPoint returns the circle around center that passes
// through pt.
func NewCircleFromCenterAndPoint(center, pt Point) (Circle, error) {
	return NewCircle(center, center.Distance(pt))
}

// NewCircleFromDiameter returns the circle whose diameter is p1p2.
func NewCircleFromDiameter(p1, p2 Point) (Circle, error) {
	return NewCircle(p1.Midpoint(p2), p1.Distance(p2)/2)
}

func (c Circle) Center() Point { return c.center }
func (c Circle) Radius() float64 { return c.radius }
func (c Circle) Diameter() float64 { return 2 * c.radius }

func (c Circle) String() string {
	return fmt.Sprintf("Circle[center=%s, r=%g]", c.center, c.radius)
}

// Equal reports whether the circles have equal centers and radii within
// [Epsilon].
func (c Circle) Equal(o Circle) bool {
	return c.center.Equal(o.center) && approxEqual(c.radius, o.radius)
}

func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.radius
}

// ContainsPoint reports whether pt lies inside or on the circle.
func (c Circle) ContainsPoint(pt Point) bool {
	return c.center.Distance(pt) <= c.radius+Epsilon
}

// OnCircle reports whether pt lies on the circumference within [Epsilon].
func (c Circle) OnCircle(pt Point) bool {
	return math.Abs(c.center.Distance(pt)-c.radius) < Epsilon
}

// DistanceToPoint returns the signed distance from pt to the circumference.
// It is negative for points inside the circle.
func (c Circle) DistanceToPoint(pt Point) float64 {
	return c.center.Distance(pt) - c.radius
}

// ClosestPoint returns the point on the circumference closest to pt. For the
// center itself, which has no unique answer, it returns the point at angle
// zero.
func (c Circle) ClosestPoint(pt Point) Point {
	v, err := pt.Sub(c.center).Normalize()
	if err != nil {
		return c.center.Translate(c.radius, 0)
	}
	return c.center.TranslateVec(v.Mul(c.radius))
}

// PointAtAngle returns the point on the circumference at angle radians from
// the positive x axis.
func (c Circle) PointAtAngle(angle float64) Point {
	return c.center.PolarOffset(c.radius, angle)
}

// AngleOfPoint returns the angle of pt as seen from the center, in (−π, π].
// It fails with [ErrInvalidValue] if pt isn't on the circle.
func (c Circle) AngleOfPoint(pt Point) (float64, error) {
	if !c.OnCircle(pt) {
		return 0, invalidValue("point %s is not on circle", pt)
	}
	return c.center.AngleTo(pt), nil
}

// TangentAt returns the counterclockwise unit tangent at pt, which must lie
// on the circle.
func (c Circle) TangentAt(pt Point) (Vec2, error) {
	n, err := c.NormalAt(pt)
	if err != nil {
		return Vec2{}, err
	}
	return n.Perpendicular(), nil
}

// NormalAt returns the outward unit normal at pt, which must lie on the
// circle.
func (c Circle) NormalAt(pt Point) (Vec2, error) {
	if !c.OnCircle(pt) {
		return Vec2{}, invalidValue("point %s is not on circle", pt)
	}
	return pt.Sub(c.center).Normalize()
}

func (c Circle) Translate(dx, dy float64) Circle {
	return Circle{center: c.center.Translate(dx, dy), radius: c.radius}
}

// Scale scales the circle by factor about center. Pass the circle's own
// center to only change the radius. It fails with [ErrInvalidValue] for
// factors that aren't positive.
func (c Circle) Scale(factor float64, center Point) (Circle, error) {
	if !(factor > 0) {
		return Circle{}, invalidValue("scale factor must be positive, got %g", factor)
	}
	return Circle{
		center: c.center.Scale(factor, factor, center),
		radius: c.radius * factor,
	}, nil
}

// Expand adds amount to the radius. Negative amounts contract the circle. It
// fails with [ErrInvalidValue] if the radius would not stay positive.
func (c Circle) Expand(amount float64) (Circle, error) {
	r := c.radius + amount
	if r <= 0 {
		return Circle{}, invalidValue("expanded radius must be positive, got %g", r)
	}
	return Circle{center: c.center, radius: r}, nil
}

// sweep returns the counterclockwise angle from start to end in [0, 2π).
func sweep(start, end float64) float64 {
	return NormalizeAngle(end - start)
}

// ArcLength returns the length of the counterclockwise arc from start to
// end.
func (c Circle) ArcLength(start, end float64) float64 {
	return c.radius * sweep(start, end)
}

// ChordLength returns the distance between the points at the two angles.
func (c Circle) ChordLength(start, end float64) float64 {
	return c.PointAtAngle(start).Distance(c.PointAtAngle(end))
}

// SectorArea returns the area of the counterclockwise sector from start to
// end.
func (c Circle) SectorArea(start, end float64) float64 {
	return 0.5 * c.radius * c.radius * sweep(start, end)
}

// IsTangentTo reports whether the circles touch in exactly one point, from
// the outside or the inside.
func (c Circle) IsTangentTo(o Circle) bool {
	d := c.center.Distance(o.center)
	return math.Abs(d-(c.radius+o.radius)) < Epsilon ||
		math.Abs(d-math.Abs(c.radius-o.radius)) < Epsilon
}

func (c Circle) IsConcentricWith(o Circle) bool {
	return c.center.Distance(o.center) < Epsilon
}

// IntersectLine returns the points where the circle crosses the segment l.
func (c Circle) IntersectLine(l Line) ([2]Point, int) {
	return l.IntersectCircle(c.center, c.radius)
}

// IntersectCircle returns the points where the two circles cross. Tangent
// circles yield one point; identical, nested and separate circles yield
// none.
func (c Circle) IntersectCircle(o Circle) ([2]Point, int) {
	var out [2]Point
	d := c.center.Distance(o.center)
	r1, r2 := c.radius, o.radius

	if d > r1+r2+Epsilon || d < math.Abs(r1-r2)-Epsilon {
		return out, 0
	}
	if approxZero(d) {
		// Concentric: either identical, with infinitely many common points,
		// or nested.
		return out, 0
	}

	dir := o.center.Sub(c.center).Mul(1 / d)
	// a is the distance from c's center to the foot of the common chord.
	a := (r1*r1 - r2*r2 + d*d) / (2 * d)
	foot := c.center.TranslateVec(dir.Mul(a))

	if math.Abs(d-(r1+r2)) < Epsilon || math.Abs(d-math.Abs(r1-r2)) < Epsilon {
		out[0] = foot
		return out, 1
	}

	h := math.Sqrt(max(r1*r1-a*a, 0))
	off := dir.Perpendicular().Mul(h)
	out[0] = foot.TranslateVec(off)
	out[1] = foot.TranslateVec(off.Negate())
	return out, 2
}

// BoundingBox returns the smallest axis-aligned box containing the circle.
func (c Circle) BoundingBox() BoundingBox {
	return BoundingBox{
		min: c.center.Translate(-c.radius, -c.radius),
		max: c.center.Translate(c.radius, c.radius),
	}
}
