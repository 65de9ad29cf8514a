package draft

import (
	"fmt"
	"math"
)

// Point is a position in the plane. Points are values; every method returns
// a new point.
//
// Two points are [Point.Equal] if both coordinates differ by less than
// [Epsilon]. Because that relation isn't transitive, points shouldn't be used
// as map keys directly; use [Point.Key] instead.
type Point struct {
	X float64
	Y float64
}

// PointKey is a comparable, rounded form of a point, suitable as a map key.
type PointKey struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PtFromArray returns the point stored as [x, y].
func PtFromArray(a [2]float64) Point {
	return Point{X: a[0], Y: a[1]}
}

// Array returns the point as [x, y].
func (pt Point) Array() [2]float64 {
	return [2]float64{pt.X, pt.Y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Equal reports whether pt and o are equal within [Epsilon].
func (pt Point) Equal(o Point) bool {
	return approxEqual(pt.X, o.X) && approxEqual(pt.Y, o.Y)
}

// Key returns the point rounded to [KeyPrecision] decimal places.
func (pt Point) Key() PointKey {
	return PointKey{roundKey(pt.X), roundKey(pt.Y)}
}

// Translate returns the point moved by (dx, dy).
func (pt Point) Translate(dx, dy float64) Point {
	return Point{
		X: pt.X + dx,
		Y: pt.Y + dy,
	}
}

// TranslateVec returns the point moved by v.
func (pt Point) TranslateVec(v Vec2) Point {
	return pt.Translate(v.X, v.Y)
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Rotate rotates the point counterclockwise by angle radians about center.
// Pass the zero Point to rotate about the origin.
func (pt Point) Rotate(angle float64, center Point) Point {
	return pt.Transform(RotateAbout(angle, center))
}

// Scale scales the point's offset from center by (sx, sy).
func (pt Point) Scale(sx, sy float64, center Point) Point {
	return pt.Transform(ScaleAbout(sx, sy, center))
}

// MirrorX mirrors the point across the horizontal line y = axisY.
func (pt Point) MirrorX(axisY float64) Point {
	return pt.Transform(MirrorAbout(Point{Y: axisY}, Vec(1, 0)))
}

// MirrorY mirrors the point across the vertical line x = axisX.
func (pt Point) MirrorY(axisX float64) Point {
	return pt.Transform(MirrorAbout(Point{X: axisX}, Vec(0, 1)))
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Sqrt(x*x + y*y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// AngleTo returns the direction from pt to o in radians, in (−π, π].
func (pt Point) AngleTo(o Point) float64 {
	return math.Atan2(o.Y-pt.Y, o.X-pt.X)
}

// PolarOffset returns the point at the given distance from pt in the
// direction angle.
func (pt Point) PolarOffset(distance, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: pt.X + distance*cos,
		Y: pt.Y + distance*sin,
	}
}

// Magnitude returns the distance from the origin.
func (pt Point) Magnitude() float64 {
	return Vec2(pt).Hypot()
}

// IsOrigin reports whether the point is within [Epsilon] of the origin.
func (pt Point) IsOrigin() bool {
	return approxZero(pt.X) && approxZero(pt.Y)
}

// Normalize treats the point as a position vector and scales it to unit
// length. It fails with [ErrInvalidValue] for points at the origin.
func (pt Point) Normalize() (Point, error) {
	v, err := Vec2(pt).Normalize()
	return Point(v), err
}

// Div divides both coordinates by f. It fails with [ErrInvalidValue] if f is
// zero.
func (pt Point) Div(f float64) (Point, error) {
	v, err := Vec2(pt).Div(f)
	return Point(v), err
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
