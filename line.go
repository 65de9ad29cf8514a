package draft

import (
	"fmt"
	"math"
)

// Line is a directed line segment from a start point to a distinct end
// point.
//
// Lines can only be obtained from [NewLine] and its siblings, which reject
// segments whose endpoints coincide. Methods that derive a new segment and
// could collapse it, such as [Line.ExtendStart] with a negative distance,
// return an error for the same reason.
type Line struct {
	start Point
	end   Point
}

// NewLine returns the segment from start to end. It fails with
// [ErrInvalidGeometry] if the two points are equal within [Epsilon].
func NewLine(start, end Point) (Line, error) {
	if start.Equal(end) {
		return Line{}, invalidGeometry("line start and end points cannot be the same: %s", start)
	}
	return Line{start: start, end: end}, nil
}

// NewLineFromPointAndVector returns the segment from p to p+v.
func NewLineFromPointAndVector(p Point, v Vec2) (Line, error) {
	return NewLine(p, p.TranslateVec(v))
}

// NewLineFromPointAndAngle returns the segment of the given length starting
// at p and pointing in the direction angle.
func NewLineFromPointAndAngle(p Point, angle, length float64) (Line, error) {
	return NewLine(p, p.PolarOffset(length, angle))
}

// Start returns the line's start point.
func (l Line) Start() Point { return l.start }

// End returns the line's end point.
func (l Line) End() Point { return l.end }

func (l Line) String() string {
	return fmt.Sprintf("Line[%s → %s]", l.start, l.end)
}

// Equal reports whether l and o have the same endpoints, in either order.
func (l Line) Equal(o Line) bool {
	return (l.start.Equal(o.start) && l.end.Equal(o.end)) ||
		(l.start.Equal(o.end) && l.end.Equal(o.start))
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.start.Distance(l.end)
}

func (l Line) LengthSquared() float64 {
	return l.start.DistanceSquared(l.end)
}

func (l Line) Midpoint() Point {
	return l.start.Midpoint(l.end)
}

// Direction returns the vector from start to end.
func (l Line) Direction() Vec2 {
	return l.end.Sub(l.start)
}

// UnitVector returns the direction of the line with unit length.
func (l Line) UnitVector() (Vec2, error) {
	return l.Direction().Normalize()
}

// NormalVector returns the unit normal pointing to the left of the line's
// direction.
func (l Line) NormalVector() (Vec2, error) {
	return l.Direction().Perpendicular().Normalize()
}

// Angle returns the direction of the line in radians, in (−π, π].
func (l Line) Angle() float64 {
	return l.Direction().Angle()
}

// Slope returns dy/dx. It reports false for vertical lines.
func (l Line) Slope() (float64, bool) {
	d := l.Direction()
	if approxZero(d.X) {
		return 0, false
	}
	return d.Y / d.X, true
}

// YIntercept returns the y coordinate at which the infinite extension of the
// line crosses x = 0. It reports false for vertical lines.
func (l Line) YIntercept() (float64, bool) {
	m, ok := l.Slope()
	if !ok {
		return 0, false
	}
	return l.start.Y - m*l.start.X, true
}

// Eval returns the point at parameter t, where 0 is the start and 1 is the
// end. Values outside [0, 1] lie on the infinite extension.
func (l Line) Eval(t float64) Point {
	return l.start.Lerp(l.end, t)
}

// project returns the unclamped parameter of pt's projection onto the line.
func (l Line) project(pt Point) float64 {
	d := l.Direction()
	return pt.Sub(l.start).Dot(d) / d.Hypot2()
}

// ClosestPoint returns the point on the segment closest to pt.
func (l Line) ClosestPoint(pt Point) Point {
	return l.Eval(clamp01(l.project(pt)))
}

// DistanceToPoint returns the distance from pt to the segment.
func (l Line) DistanceToPoint(pt Point) float64 {
	return pt.Distance(l.ClosestPoint(pt))
}

// DistanceToPointInfinite returns the distance from pt to the infinite line
// through the segment.
func (l Line) DistanceToPointInfinite(pt Point) float64 {
	d := l.Direction()
	return math.Abs(d.Cross(pt.Sub(l.start))) / d.Hypot()
}

// ContainsPoint reports whether pt lies on the segment within [Epsilon].
func (l Line) ContainsPoint(pt Point) bool {
	return l.DistanceToPoint(pt) < Epsilon
}

// Intersect returns the point where the two segments cross. It reports false
// if the segments are parallel or if the crossing lies outside either
// segment.
func (l Line) Intersect(o Line) (Point, bool) {
	t1, t2, ok := l.crossingParams(o)
	if !ok || !inUnitRange(t1) || !inUnitRange(t2) {
		return Point{}, false
	}
	return l.Eval(t1), true
}

// IntersectInfinite returns the point where the infinite extensions of the
// two lines cross. It reports false for parallel lines.
func (l Line) IntersectInfinite(o Line) (Point, bool) {
	t1, _, ok := l.crossingParams(o)
	if !ok {
		return Point{}, false
	}
	return l.Eval(t1), true
}

// crossingParams returns the parameters on l and o of the crossing point of
// the two infinite lines.
func (l Line) crossingParams(o Line) (t1, t2 float64, ok bool) {
	d1 := l.Direction()
	d2 := o.Direction()
	den := d1.Cross(d2)
	if approxZero(den) {
		return 0, 0, false
	}
	w := o.start.Sub(l.start)
	return w.Cross(d2) / den, w.Cross(d1) / den, true
}

// IntersectCircle returns the points where the segment crosses the circle
// with the given center and radius. A tangent line yields one point.
func (l Line) IntersectCircle(center Point, radius float64) ([2]Point, int) {
	var out [2]Point
	ts, n, _ := l.circleParams(center, radius)
	m := 0
	for _, t := range ts[:n] {
		if inUnitRange(t) {
			out[m] = l.Eval(t)
			m++
		}
	}
	return out, m
}

// circleParams returns the parameters, on the infinite line, of its
// intersections with a circle, in increasing order. tangent is set when the
// line touches the circle in a single point.
func (l Line) circleParams(center Point, radius float64) (ts [2]float64, n int, tangent bool) {
	d := l.Direction()
	f := l.start.Sub(center)
	perp := l.DistanceToPointInfinite(center)

	if perp > radius+Epsilon {
		return ts, 0, false
	}
	if math.Abs(perp-radius) < Epsilon {
		// The foot of the perpendicular from the center.
		ts[0] = -f.Dot(d) / d.Hypot2()
		return ts, 1, true
	}
	// |f + t·d|² = r²
	ts, n = SolveQuadratic(f.Hypot2()-radius*radius, 2*f.Dot(d), d.Hypot2())
	return ts, n, false
}

// IsParallelTo reports whether the two lines have parallel directions.
func (l Line) IsParallelTo(o Line) bool {
	return l.Direction().IsParallelTo(o.Direction())
}

// IsPerpendicularTo reports whether the two lines have perpendicular
// directions.
func (l Line) IsPerpendicularTo(o Line) bool {
	return l.Direction().IsPerpendicularTo(o.Direction())
}

// Reverse swaps the line's start and end points.
func (l Line) Reverse() Line {
	return Line{start: l.end, end: l.start}
}

// ExtendStart moves the start point backwards along the line by distance.
// Negative distances shorten the line.
func (l Line) ExtendStart(distance float64) (Line, error) {
	u := l.Direction().unit()
	return NewLine(l.start.TranslateVec(u.Mul(-distance)), l.end)
}

// ExtendEnd moves the end point forwards along the line by distance.
func (l Line) ExtendEnd(distance float64) (Line, error) {
	u := l.Direction().unit()
	return NewLine(l.start, l.end.TranslateVec(u.Mul(distance)))
}

// ExtendBoth extends the line by distance at both ends.
func (l Line) ExtendBoth(distance float64) (Line, error) {
	u := l.Direction().unit()
	return NewLine(l.start.TranslateVec(u.Mul(-distance)), l.end.TranslateVec(u.Mul(distance)))
}

// Offset returns the parallel line at the given distance. Positive distances
// offset to the left of the line's direction, negative ones to the right.
func (l Line) Offset(distance float64) Line {
	n := l.Direction().Perpendicular().unit().Mul(distance)
	return Line{start: l.start.TranslateVec(n), end: l.end.TranslateVec(n)}
}

func (l Line) Translate(dx, dy float64) Line {
	return Line{start: l.start.Translate(dx, dy), end: l.end.Translate(dx, dy)}
}

// Rotate rotates the line counterclockwise by angle radians about center.
func (l Line) Rotate(angle float64, center Point) Line {
	aff := RotateAbout(angle, center)
	return Line{start: l.start.Transform(aff), end: l.end.Transform(aff)}
}

// Scale scales the line by (sx, sy) about center. It fails if the scaled
// endpoints coincide.
func (l Line) Scale(sx, sy float64, center Point) (Line, error) {
	aff := ScaleAbout(sx, sy, center)
	return NewLine(l.start.Transform(aff), l.end.Transform(aff))
}

// BoundingBox returns the smallest axis-aligned box containing the segment.
func (l Line) BoundingBox() BoundingBox {
	return boxOf(l.start, l.end)
}
