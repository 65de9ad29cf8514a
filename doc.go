// Package draft provides the 2D geometry kernel of a drafting application:
// primitive shapes and the modification tools built on top of them.
//
// # Shapes
//
// [Point] and [Vec2] are plain values with exported coordinates. Points are
// positions, vectors are directions and magnitudes, and subtracting two points
// produces a vector.
//
// [Line], [Circle], [Arc] and [BoundingBox] have invariants, such as a
// positive radius or distinct endpoints, and can only be created through
// their constructors ([NewLine], [NewCircle], [NewArc], [NewBoundingBox] and
// friends), which return an error wrapping [ErrInvalidGeometry] when the
// invariant doesn't hold. Queries whose argument is outside their domain,
// such as the tangent of a circle at a point that isn't on it, return an
// error wrapping [ErrInvalidValue].
//
// All shapes are immutable values. Transformations like Translate, Rotate and
// Scale return new shapes. Rotation and scaling are expressed through
// [Affine], which is available for composing transformations directly.
//
// # Parameters and angles
//
// Lines and arcs can be evaluated at a parameter t ∈ [0, 1], where 0 is the
// start and 1 is the end. For arcs, t advances in the sweep direction, which
// may be clockwise. [Arc.AngleAt] and [Arc.ParameterOfAngle] convert between
// parameters and angles.
//
// Angles are in radians, measured counterclockwise from the positive x axis.
// Arcs store their angles normalized to [0, 2π) and correctly handle ranges
// that cross angle 0. An arc whose start and end angles are equal covers the
// full circle.
//
// # Tolerances
//
// Floating point comparisons use the tolerances in [Epsilon] and
// [GeometricEpsilon]. Two points are equal if their coordinates differ by
// less than Epsilon. Because that relation isn't transitive, shapes should
// not be used as map keys; [Point.Key] and [Vec2.Key] produce rounded,
// comparable keys instead.
//
// # Operations
//
// The drafting operations work on [Entity], a tagged union of lines,
// circles and arcs:
//
//   - [FindIntersections] computes where two entities meet
//   - [Trim] cuts an entity back to a boundary
//   - [Extend] lengthens a line to a boundary
//   - [Offset] creates a parallel copy of an entity
//   - [Fillet] rounds the corner between two lines
//   - [Chamfer] bevels the corner between two lines
//
// Operations never return errors or panic. Instead, every result carries an
// [Outcome] and a human-readable message. When an operation turns an
// internal failure into an outcome it logs the cause at debug level to the
// logger configured with [SetLogger].
//
// [IntersectAll] intersects many entities at once, using an R-tree to skip
// pairs whose bounding boxes are disjoint.
//
// # Storage
//
// All shapes implement [encoding/json.Marshaler] and
// [encoding/json.Unmarshaler], encoding as compact arrays of numbers.
// Decoding validates the same invariants as the constructors.
//
// # Concurrency
//
// The package holds no mutable state other than the logger, which is safe to
// replace at any time. All functions are safe for concurrent use.
package draft
