package draft

import (
	"fmt"
	"math"
)

// BoundingBox is an axis-aligned rectangle given by its minimum and maximum
// corners. A box may have zero width or height, or both.
type BoundingBox struct {
	min Point
	max Point
}

// NewBoundingBox returns the box spanning min to max. It fails with
// [ErrInvalidGeometry] unless min is less than or equal to max in both
// coordinates.
func NewBoundingBox(min, max Point) (BoundingBox, error) {
	if min.X > max.X || min.Y > max.Y {
		return BoundingBox{}, invalidGeometry("bounding box min %s must not exceed max %s", min, max)
	}
	return BoundingBox{min: min, max: max}, nil
}

// NewBoundingBoxFromPoints returns the smallest box containing all points.
// It fails with [ErrInvalidGeometry] if no points are given.
func NewBoundingBoxFromPoints(pts ...Point) (BoundingBox, error) {
	if len(pts) == 0 {
		return BoundingBox{}, invalidGeometry("cannot create bounding box from empty point list")
	}
	bbox := BoundingBox{min: pts[0], max: pts[0]}
	for _, pt := range pts[1:] {
		bbox = bbox.ExpandToPoint(pt)
	}
	return bbox, nil
}

// NewBoundingBoxFromCenterAndSize returns the box of the given size centered
// on center. It fails with [ErrInvalidGeometry] for negative sizes.
func NewBoundingBoxFromCenterAndSize(center Point, width, height float64) (BoundingBox, error) {
	if width < 0 || height < 0 {
		return BoundingBox{}, invalidGeometry("width and height must be non-negative, got %g×%g", width, height)
	}
	return BoundingBox{
		min: center.Translate(-width/2, -height/2),
		max: center.Translate(width/2, height/2),
	}, nil
}

// boxOf returns the box spanned by two arbitrary corners.
func boxOf(p0, p1 Point) BoundingBox {
	return BoundingBox{
		min: Point{X: math.Min(p0.X, p1.X), Y: math.Min(p0.Y, p1.Y)},
		max: Point{X: math.Max(p0.X, p1.X), Y: math.Max(p0.Y, p1.Y)},
	}
}

func (b BoundingBox) Min() Point { return b.min }
func (b BoundingBox) Max() Point { return b.max }

func (b BoundingBox) String() string {
	return fmt.Sprintf("BoundingBox[%s, %s]", b.min, b.max)
}

// Equal reports whether both corners are equal within [Epsilon].
func (b BoundingBox) Equal(o BoundingBox) bool {
	return b.min.Equal(o.min) && b.max.Equal(o.max)
}

func (b BoundingBox) Width() float64  { return b.max.X - b.min.X }
func (b BoundingBox) Height() float64 { return b.max.Y - b.min.Y }

func (b BoundingBox) Area() float64 {
	return b.Width() * b.Height()
}

func (b BoundingBox) Perimeter() float64 {
	return 2 * (b.Width() + b.Height())
}

func (b BoundingBox) Center() Point {
	return b.min.Midpoint(b.max)
}

// Corners returns the four corners counterclockwise, starting at the
// minimum.
func (b BoundingBox) Corners() [4]Point {
	return [4]Point{
		b.min,
		{X: b.max.X, Y: b.min.Y},
		b.max,
		{X: b.min.X, Y: b.max.Y},
	}
}

// ContainsPoint reports whether pt is inside the box or on its boundary.
func (b BoundingBox) ContainsPoint(pt Point) bool {
	return b.min.X <= pt.X && pt.X <= b.max.X &&
		b.min.Y <= pt.Y && pt.Y <= b.max.Y
}

// ContainsPointStrictly reports whether pt is inside the box and not on its
// boundary.
func (b BoundingBox) ContainsPointStrictly(pt Point) bool {
	return b.min.X < pt.X && pt.X < b.max.X &&
		b.min.Y < pt.Y && pt.Y < b.max.Y
}

func (b BoundingBox) ContainsBox(o BoundingBox) bool {
	return b.ContainsPoint(o.min) && b.ContainsPoint(o.max)
}

func (b BoundingBox) ContainsBoxStrictly(o BoundingBox) bool {
	return b.ContainsPointStrictly(o.min) && b.ContainsPointStrictly(o.max)
}

// Intersects reports whether the boxes overlap. Boxes that only touch along
// an edge or at a corner intersect.
func (b BoundingBox) Intersects(o BoundingBox) bool {
	return !(b.max.X < o.min.X || o.max.X < b.min.X ||
		b.max.Y < o.min.Y || o.max.Y < b.min.Y)
}

// Intersection returns the overlap of the two boxes. It reports false if they
// don't intersect.
func (b BoundingBox) Intersection(o BoundingBox) (BoundingBox, bool) {
	if !b.Intersects(o) {
		return BoundingBox{}, false
	}
	return BoundingBox{
		min: Point{X: math.Max(b.min.X, o.min.X), Y: math.Max(b.min.Y, o.min.Y)},
		max: Point{X: math.Min(b.max.X, o.max.X), Y: math.Min(b.max.Y, o.max.Y)},
	}, true
}

// Union returns the smallest box containing both boxes.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	return BoundingBox{
		min: Point{X: math.Min(b.min.X, o.min.X), Y: math.Min(b.min.Y, o.min.Y)},
		max: Point{X: math.Max(b.max.X, o.max.X), Y: math.Max(b.max.Y, o.max.Y)},
	}
}

// Expand grows the box by amount on every side. Negative amounts shrink it.
// It fails with [ErrInvalidValue] if shrinking would invert the box.
func (b BoundingBox) Expand(amount float64) (BoundingBox, error) {
	min := b.min.Translate(-amount, -amount)
	max := b.max.Translate(amount, amount)
	if min.X > max.X || min.Y > max.Y {
		return BoundingBox{}, invalidValue("contraction amount %g too large", -amount)
	}
	return BoundingBox{min: min, max: max}, nil
}

// ExpandToPoint returns the smallest box containing b and pt.
func (b BoundingBox) ExpandToPoint(pt Point) BoundingBox {
	return b.Union(BoundingBox{min: pt, max: pt})
}

// ExpandToBox is the same as [BoundingBox.Union].
func (b BoundingBox) ExpandToBox(o BoundingBox) BoundingBox {
	return b.Union(o)
}

func (b BoundingBox) Translate(dx, dy float64) BoundingBox {
	return BoundingBox{min: b.min.Translate(dx, dy), max: b.max.Translate(dx, dy)}
}

// Scale scales the box by (sx, sy) about center. It fails with
// [ErrInvalidValue] for factors that aren't positive.
func (b BoundingBox) Scale(sx, sy float64, center Point) (BoundingBox, error) {
	if !(sx > 0) || !(sy > 0) {
		return BoundingBox{}, invalidValue("scale factors must be positive, got %g, %g", sx, sy)
	}
	return boxOf(b.min.Scale(sx, sy, center), b.max.Scale(sx, sy, center)), nil
}

// DistanceToPoint returns the distance from pt to the box. It is zero for
// points inside.
func (b BoundingBox) DistanceToPoint(pt Point) float64 {
	return pt.Distance(b.ClosestPoint(pt))
}

// ClosestPoint returns the point in or on the box nearest to pt.
func (b BoundingBox) ClosestPoint(pt Point) Point {
	return Point{
		X: min(max(pt.X, b.min.X), b.max.X),
		Y: min(max(pt.Y, b.min.Y), b.max.Y),
	}
}

// IsEmpty reports whether the box has zero area.
func (b BoundingBox) IsEmpty() bool {
	return b.Width() == 0 || b.Height() == 0
}

// IsPoint reports whether both corners coincide.
func (b BoundingBox) IsPoint() bool {
	return b.min.Equal(b.max)
}

// AspectRatio returns width / height. It fails with [ErrInvalidValue] for
// boxes of zero height.
func (b BoundingBox) AspectRatio() (float64, error) {
	h := b.Height()
	if h == 0 {
		return 0, invalidValue("cannot calculate aspect ratio for zero height")
	}
	return b.Width() / h, nil
}
