package draft

import (
	"fmt"
	"math"
)

// Vec2 is a direction and magnitude, as opposed to a position.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

// VecBetween returns the vector from a to b.
func VecBetween(a, b Point) Vec2 {
	return b.Sub(a)
}

// VecFromAngle returns a unit vector of the given angle, which is expressed
// in radians. With θ = 0, the result is the positive x unit vector. At π/2,
// it is the positive y unit vector.
func VecFromAngle(th float64) Vec2 {
	y, x := math.Sincos(th)
	return Vec2{
		X: x,
		Y: y,
	}
}

// VecFromPolar returns the vector with the given angle and magnitude.
func VecFromPolar(th, magnitude float64) Vec2 {
	return VecFromAngle(th).Mul(magnitude)
}

// Splat returns the vector's x and y coordinates.
func (v Vec2) Splat() (float64, float64) {
	return v.X, v.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Equal reports whether v and o are equal within [Epsilon].
func (v Vec2) Equal(o Vec2) bool {
	return approxEqual(v.X, o.X) && approxEqual(v.Y, o.Y)
}

// Key returns the vector rounded to [KeyPrecision] decimal places.
func (v Vec2) Key() PointKey {
	return Point(v).Key()
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the cross product of v and o. It is
// positive if o is counterclockwise from v.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Sqrt(v.Hypot2())
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// Angle returns the angle in radians between the vector and ⟨1, 0⟩, in
// (−π, π]. This is atan2(y, x).
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleTo returns the unsigned angle between v and o, in [0, π]. It fails
// with [ErrInvalidValue] if either vector has zero length.
func (v Vec2) AngleTo(o Vec2) (float64, error) {
	mag := v.Hypot() * o.Hypot()
	if mag < Epsilon {
		return 0, invalidValue("cannot compute angle with zero-length vector")
	}
	cos := min(max(v.Dot(o)/mag, -1), 1)
	return math.Acos(cos), nil
}

// SignedAngleTo returns the angle that rotates v onto o, in (−π, π].
// Positive angles are counterclockwise.
func (v Vec2) SignedAngleTo(o Vec2) float64 {
	return math.Atan2(v.Cross(o), v.Dot(o))
}

// Rotate rotates the vector counterclockwise by th radians.
func (v Vec2) Rotate(th float64) Vec2 {
	sin, cos := math.Sincos(th)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Perpendicular returns v rotated by 90° counterclockwise.
func (v Vec2) Perpendicular() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// PerpendicularCW returns v rotated by 90° clockwise.
func (v Vec2) PerpendicularCW() Vec2 {
	return Vec2{X: v.Y, Y: -v.X}
}

// ProjectOnto returns the projection of v onto o. It fails with
// [ErrInvalidValue] if o has zero length.
func (v Vec2) ProjectOnto(o Vec2) (Vec2, error) {
	h2 := o.Hypot2()
	if h2 < Epsilon {
		return Vec2{}, invalidValue("cannot project onto zero-length vector")
	}
	return o.Mul(v.Dot(o) / h2), nil
}

// RejectFrom returns the component of v perpendicular to o.
func (v Vec2) RejectFrom(o Vec2) (Vec2, error) {
	p, err := v.ProjectOnto(o)
	if err != nil {
		return Vec2{}, err
	}
	return v.Sub(p), nil
}

// Reflect reflects v across a surface with the given normal. The normal
// needn't be unit length.
func (v Vec2) Reflect(normal Vec2) (Vec2, error) {
	n, err := normal.Normalize()
	if err != nil {
		return Vec2{}, err
	}
	return v.Sub(n.Mul(2 * v.Dot(n))), nil
}

// Lerp linearly interpolates between two vectors.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// IsParallelTo reports whether |v × o| is below [Epsilon].
func (v Vec2) IsParallelTo(o Vec2) bool {
	return approxZero(v.Cross(o))
}

// IsPerpendicularTo reports whether |v · o| is below [Epsilon].
func (v Vec2) IsPerpendicularTo(o Vec2) bool {
	return approxZero(v.Dot(o))
}

// IsZero reports whether the vector's magnitude is below [Epsilon].
func (v Vec2) IsZero() bool {
	return v.Hypot() < Epsilon
}

// IsUnit reports whether the vector's magnitude is within [Epsilon] of 1.
func (v Vec2) IsUnit() bool {
	return approxEqual(v.Hypot(), 1)
}

// Normalize returns a vector of magnitude 1 with the same angle as v. It
// fails with [ErrInvalidValue] if the magnitude is below [Epsilon].
func (v Vec2) Normalize() (Vec2, error) {
	h := v.Hypot()
	if h < Epsilon {
		return Vec2{}, invalidValue("cannot normalize zero-length vector")
	}
	return v.Mul(1 / h), nil
}

// unit normalizes v for callers that have already ruled out zero vectors.
func (v Vec2) unit() Vec2 {
	return v.Mul(1 / v.Hypot())
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}

// Div divides the vector by f. It fails with [ErrInvalidValue] if f is
// zero.
func (v Vec2) Div(f float64) (Vec2, error) {
	if math.Abs(f) < Epsilon {
		return Vec2{}, invalidValue("cannot divide by zero")
	}
	return Vec2{
		X: v.X / f,
		Y: v.Y / f,
	}, nil
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{
		X: -v.X,
		Y: -v.Y,
	}
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vec2) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}
