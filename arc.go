package draft

import (
	"fmt"
	"math"
)

// Arc is a portion of a circle, running from a start angle to an end angle in
// either the counterclockwise or the clockwise direction.
//
// Both angles are kept normalized to [0, 2π). When they are equal the arc
// covers the full circle; there is no way to express a zero-length arc.
//
// Positions along the arc are addressed either by angle or by a parameter t
// in [0, 1], where 0 is the start and 1 is the end, following the sweep
// direction. [Arc.AngleAt] and [Arc.ParameterOfAngle] convert between the
// two.
type Arc struct {
	center Point
	radius float64
	start  float64
	end    float64
	ccw    bool
}

// NewArc returns an arc. It fails with [ErrInvalidGeometry] if the radius
// isn't positive.
func NewArc(center Point, radius, start, end float64, ccw bool) (Arc, error) {
	if !(radius > 0) {
		return Arc{}, invalidGeometry("arc radius must be positive, got %g", radius)
	}
	return Arc{
		center: center,
		radius: radius,
		start:  NormalizeAngle(start),
		end:    NormalizeAngle(end),
		ccw:    ccw,
	}, nil
}

// NewArcFromThreePoints returns the arc that starts at p1, passes through p2
// and ends at p3.
func NewArcFromThreePoints(p1, p2, p3 Point) (Arc, error) {
	c, err := NewCircleFromThreePoints(p1, p2, p3)
	if err != nil {
		return Arc{}, err
	}
	start := c.center.AngleTo(p1)
	end := c.center.AngleTo(p3)
	mid := c.center.AngleTo(p2)
	ccw := sweep(start, mid) <= sweep(start, end)
	return NewArc(c.center, c.radius, start, end, ccw)
}

// NewArcFromCenterStartEnd returns the arc around center that starts at
// start. The radius is taken from start; end only determines the end angle.
func NewArcFromCenterStartEnd(center, start, end Point, ccw bool) (Arc, error) {
	return NewArc(center, center.Distance(start), center.AngleTo(start), center.AngleTo(end), ccw)
}

func (a Arc) Center() Point { return a.center }
func (a Arc) Radius() float64 { return a.radius }
func (a Arc) StartAngle() float64 { return a.start }
func (a Arc) EndAngle() float64 { return a.end }
func (a Arc) CounterClockwise() bool { return a.ccw }

func (a Arc) String() string {
	dir := "CCW"
	if !a.ccw {
		dir = "CW"
	}
	return fmt.Sprintf("Arc[center=%s, r=%g, %.1f°→%.1f° %s]",
		a.center, a.radius, a.start*180/math.Pi, a.end*180/math.Pi, dir)
}

// Equal reports whether the arcs have the same center, radius, angles and
// direction. Angles are compared modulo 2π.
func (a Arc) Equal(o Arc) bool {
	return a.center.Equal(o.center) &&
		approxEqual(a.radius, o.radius) &&
		angleEqual(a.start, o.start) &&
		angleEqual(a.end, o.end) &&
		a.ccw == o.ccw
}

func angleEqual(a, b float64) bool {
	d := NormalizeAngle(a - b)
	return d < Epsilon || twoPi-d < Epsilon
}

// nearEndpoint reports whether angle is within tol of either end angle.
func (a Arc) nearEndpoint(angle, tol float64) bool {
	near := func(b float64) bool {
		d := NormalizeAngle(angle - b)
		return d < tol || twoPi-d < tol
	}
	return near(a.start) || near(a.end)
}

// delta returns how far angle lies past the start angle, measured in the
// sweep direction, in [0, 2π).
func (a Arc) delta(angle float64) float64 {
	if a.ccw {
		return NormalizeAngle(angle - a.start)
	}
	return NormalizeAngle(a.start - angle)
}

// Span returns the angle swept by the arc, in (0, 2π].
func (a Arc) Span() float64 {
	d := a.delta(a.end)
	if d < Epsilon || twoPi-d < Epsilon {
		return twoPi
	}
	return d
}

// IsFullCircle reports whether the arc covers the whole circle.
func (a Arc) IsFullCircle() bool {
	return approxEqual(a.Span(), twoPi)
}

func (a Arc) ArcLength() float64 {
	return a.radius * a.Span()
}

// ChordLength returns the distance between the arc's endpoints.
func (a Arc) ChordLength() float64 {
	return a.StartPoint().Distance(a.EndPoint())
}

// Sagitta returns the height of the arc above its chord.
func (a Arc) Sagitta() float64 {
	return a.radius * (1 - math.Cos(a.Span()/2))
}

// AngleAt returns the angle at parameter t, which is clamped to [0, 1].
func (a Arc) AngleAt(t float64) float64 {
	d := clamp01(t) * a.Span()
	if a.ccw {
		return NormalizeAngle(a.start + d)
	}
	return NormalizeAngle(a.start - d)
}

// ParameterOfAngle is the inverse of [Arc.AngleAt]. Angles outside the arc
// map to the parameter of the nearer endpoint.
func (a Arc) ParameterOfAngle(angle float64) float64 {
	span := a.Span()
	d := a.delta(angle)
	if twoPi-d < Epsilon {
		// Just short of the start, on the far side of the wrap.
		return 0
	}
	if d <= span {
		return d / span
	}
	if d-span < twoPi-d {
		return 1
	}
	return 0
}

// Eval returns the point at parameter t, which is clamped to [0, 1].
func (a Arc) Eval(t float64) Point {
	return a.center.PolarOffset(a.radius, a.AngleAt(t))
}

func (a Arc) StartPoint() Point {
	return a.center.PolarOffset(a.radius, a.start)
}

func (a Arc) EndPoint() Point {
	return a.center.PolarOffset(a.radius, a.end)
}

// Midpoint returns the point halfway along the arc.
func (a Arc) Midpoint() Point {
	return a.Eval(0.5)
}

// ContainsAngle reports whether angle lies within the arc's range. Angles
// within [Epsilon] of either endpoint are included, including across the
// wrap at 0.
func (a Arc) ContainsAngle(angle float64) bool {
	return a.containsAngleWithin(angle, Epsilon)
}

func (a Arc) containsAngleWithin(angle, tol float64) bool {
	if a.IsFullCircle() {
		return true
	}
	d := a.delta(angle)
	return d <= a.Span()+tol || twoPi-d < tol
}

// PointAtAngle returns the point at the given angle. It fails with
// [ErrInvalidValue] if the angle is outside the arc.
func (a Arc) PointAtAngle(angle float64) (Point, error) {
	if !a.ContainsAngle(angle) {
		return Point{}, invalidValue("angle %g is not within arc range", angle)
	}
	return a.center.PolarOffset(a.radius, angle), nil
}

// ContainsPoint reports whether pt is on the arc, within [Epsilon] of its
// circle and inside its angular range.
func (a Arc) ContainsPoint(pt Point) bool {
	if math.Abs(a.center.Distance(pt)-a.radius) > Epsilon {
		return false
	}
	return a.ContainsAngle(a.center.AngleTo(pt))
}

// DistanceToPoint returns the distance from pt to the nearest point of the
// arc.
func (a Arc) DistanceToPoint(pt Point) float64 {
	if a.ContainsAngle(a.center.AngleTo(pt)) {
		return math.Abs(a.center.Distance(pt) - a.radius)
	}
	return min(pt.Distance(a.StartPoint()), pt.Distance(a.EndPoint()))
}

// ClosestPoint returns the point on the arc nearest to pt. For the center,
// which is equidistant from every point, it returns the start point.
func (a Arc) ClosestPoint(pt Point) Point {
	if a.ContainsAngle(a.center.AngleTo(pt)) {
		v, err := pt.Sub(a.center).Normalize()
		if err != nil {
			return a.StartPoint()
		}
		return a.center.TranslateVec(v.Mul(a.radius))
	}
	s, e := a.StartPoint(), a.EndPoint()
	if pt.Distance(s) < pt.Distance(e) {
		return s
	}
	return e
}

// TangentAtAngle returns the unit tangent at angle, pointing in the sweep
// direction.
func (a Arc) TangentAtAngle(angle float64) (Vec2, error) {
	if !a.ContainsAngle(angle) {
		return Vec2{}, invalidValue("angle %g is not within arc range", angle)
	}
	sin, cos := math.Sincos(angle)
	if a.ccw {
		return Vec2{X: -sin, Y: cos}, nil
	}
	return Vec2{X: sin, Y: -cos}, nil
}

// TangentAt returns the unit tangent at pt, pointing in the sweep direction.
// It fails with [ErrInvalidValue] if pt isn't on the arc.
func (a Arc) TangentAt(pt Point) (Vec2, error) {
	n, err := a.NormalAt(pt)
	if err != nil {
		return Vec2{}, err
	}
	if a.ccw {
		return n.Perpendicular(), nil
	}
	return n.PerpendicularCW(), nil
}

// NormalAt returns the outward unit normal at pt.
func (a Arc) NormalAt(pt Point) (Vec2, error) {
	if !a.ContainsPoint(pt) {
		return Vec2{}, invalidValue("point %s is not on arc", pt)
	}
	return pt.Sub(a.center).Normalize()
}

// Reverse returns the same arc traversed from end to start.
func (a Arc) Reverse() Arc {
	return Arc{
		center: a.center,
		radius: a.radius,
		start:  a.end,
		end:    a.start,
		ccw:    !a.ccw,
	}
}

// Circle returns the arc's underlying circle.
func (a Arc) Circle() Circle {
	return Circle{center: a.center, radius: a.radius}
}

func (a Arc) Translate(dx, dy float64) Arc {
	a.center = a.center.Translate(dx, dy)
	return a
}

// Rotate rotates the arc counterclockwise by angle radians about center.
func (a Arc) Rotate(angle float64, center Point) Arc {
	a.center = a.center.Rotate(angle, center)
	a.start = NormalizeAngle(a.start + angle)
	a.end = NormalizeAngle(a.end + angle)
	return a
}

// Scale scales the arc by factor about center. It fails with
// [ErrInvalidValue] for factors that aren't positive.
func (a Arc) Scale(factor float64, center Point) (Arc, error) {
	if !(factor > 0) {
		return Arc{}, invalidValue("scale factor must be positive, got %g", factor)
	}
	a.center = a.center.Scale(factor, factor, center)
	a.radius *= factor
	return a, nil
}

// BoundingBox returns the smallest axis-aligned box containing the arc.
func (a Arc) BoundingBox() BoundingBox {
	bbox := boxOf(a.StartPoint(), a.EndPoint())
	for _, th := range [...]float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		if a.ContainsAngle(th) {
			bbox = bbox.ExpandToPoint(a.center.PolarOffset(a.radius, th))
		}
	}
	return bbox
}

// SplitAtAngle splits the arc into the part before and the part after angle.
// Both parts keep the sweep direction. It fails with [ErrInvalidValue] if
// angle is outside the arc or coincides with one of its endpoints, which
// would leave one part empty.
func (a Arc) SplitAtAngle(angle float64) (Arc, Arc, error) {
	if !a.ContainsAngle(angle) {
		return Arc{}, Arc{}, invalidValue("split angle %g is not within arc range", angle)
	}
	angle = NormalizeAngle(angle)
	if angleEqual(angle, a.start) || (!a.IsFullCircle() && angleEqual(angle, a.end)) {
		return Arc{}, Arc{}, invalidValue("split angle %g is at an endpoint of the arc", angle)
	}
	first, second := a, a
	first.end = angle
	second.start = angle
	return first, second, nil
}
