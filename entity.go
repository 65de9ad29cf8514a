package draft

// EntityKind identifies the shape stored in an [Entity].
type EntityKind int

const (
	LineKind EntityKind = iota + 1
	CircleKind
	ArcKind

	numKinds = ArcKind + 1
)

func (k EntityKind) String() string {
	switch k {
	case LineKind:
		return "Line"
	case CircleKind:
		return "Circle"
	case ArcKind:
		return "Arc"
	default:
		return "InvalidEntity"
	}
}

// Entity is one of the drawable shapes the geometry operations work on.
// Exactly one payload, selected by Kind, is meaningful. Entities are built
// with [Line.Entity], [Circle.Entity] and [Arc.Entity]; the zero Entity has
// no kind and intersects nothing.
type Entity struct {
	Kind EntityKind

	line   Line
	circle Circle
	arc    Arc
}

func (l Line) Entity() Entity   { return Entity{Kind: LineKind, line: l} }
func (c Circle) Entity() Entity { return Entity{Kind: CircleKind, circle: c} }
func (a Arc) Entity() Entity    { return Entity{Kind: ArcKind, arc: a} }

// Line returns the entity's line. It reports false for other kinds.
func (e Entity) Line() (Line, bool) {
	return e.line, e.Kind == LineKind
}

// Circle returns the entity's circle. It reports false for other kinds.
func (e Entity) Circle() (Circle, bool) {
	return e.circle, e.Kind == CircleKind
}

// Arc returns the entity's arc. It reports false for other kinds.
func (e Entity) Arc() (Arc, bool) {
	return e.arc, e.Kind == ArcKind
}

// supportCircle returns the full circle an arc or circle lies on.
func (e Entity) supportCircle() (Circle, bool) {
	switch e.Kind {
	case CircleKind:
		return e.circle, true
	case ArcKind:
		return e.arc.Circle(), true
	default:
		return Circle{}, false
	}
}

func (e Entity) String() string {
	switch e.Kind {
	case LineKind:
		return e.line.String()
	case CircleKind:
		return e.circle.String()
	case ArcKind:
		return e.arc.String()
	default:
		return e.Kind.String()
	}
}

// Equal reports whether both entities are of the same kind and hold equal
// shapes.
func (e Entity) Equal(o Entity) bool {
	if e.Kind != o.Kind {
		return false
	}
	switch e.Kind {
	case LineKind:
		return e.line.Equal(o.line)
	case CircleKind:
		return e.circle.Equal(o.circle)
	case ArcKind:
		return e.arc.Equal(o.arc)
	default:
		return true
	}
}

func (e Entity) BoundingBox() BoundingBox {
	switch e.Kind {
	case LineKind:
		return e.line.BoundingBox()
	case CircleKind:
		return e.circle.BoundingBox()
	case ArcKind:
		return e.arc.BoundingBox()
	default:
		return BoundingBox{}
	}
}

// DistanceToPoint returns the unsigned distance from pt to the shape's
// outline.
func (e Entity) DistanceToPoint(pt Point) float64 {
	switch e.Kind {
	case LineKind:
		return e.line.DistanceToPoint(pt)
	case CircleKind:
		d := e.circle.DistanceToPoint(pt)
		return max(d, -d)
	case ArcKind:
		return e.arc.DistanceToPoint(pt)
	default:
		return 0
	}
}

func (e Entity) Translate(dx, dy float64) Entity {
	switch e.Kind {
	case LineKind:
		return e.line.Translate(dx, dy).Entity()
	case CircleKind:
		return e.circle.Translate(dx, dy).Entity()
	case ArcKind:
		return e.arc.Translate(dx, dy).Entity()
	default:
		return e
	}
}

// Rotate rotates the shape counterclockwise by angle radians about center.
func (e Entity) Rotate(angle float64, center Point) Entity {
	switch e.Kind {
	case LineKind:
		return e.line.Rotate(angle, center).Entity()
	case CircleKind:
		c := e.circle
		c.center = c.center.Rotate(angle, center)
		return c.Entity()
	case ArcKind:
		return e.arc.Rotate(angle, center).Entity()
	default:
		return e
	}
}
