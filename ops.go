package draft

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"
)

// Outcome classifies the result of a geometry operation.
type Outcome int

const (
	Success Outcome = iota + 1
	// NoIntersection means the entities never meet, or don't meet where the
	// operation needs them to.
	NoIntersection
	// InvalidParameters means a distance or radius is out of range for the
	// given geometry.
	InvalidParameters
	// UnsupportedEntity means the operation isn't defined for an entity's
	// kind.
	UnsupportedEntity
	// GeometryError means the operation found its inputs acceptable but
	// couldn't construct a valid result.
	GeometryError
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "Success"
	case NoIntersection:
		return "NoIntersection"
	case InvalidParameters:
		return "InvalidParameters"
	case UnsupportedEntity:
		return "UnsupportedEntity"
	case GeometryError:
		return "GeometryError"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// TrimResult is returned by [Trim] and [Extend]. Entities holds the modified
// entity on success and is empty otherwise.
type TrimResult struct {
	Outcome  Outcome
	Entities []Entity
	Message  string
}

// OffsetResult is returned by [Offset]. Entity is only valid on success.
type OffsetResult struct {
	Outcome Outcome
	Entity  Entity
	Message string
}

// FilletResult is returned by [Fillet]. On success, Arc is the fillet and
// Lines holds the two input lines, trimmed to the fillet's tangent points.
type FilletResult struct {
	Outcome Outcome
	Arc     Arc
	Lines   [2]Line
	Message string
}

// ChamferResult is returned by [Chamfer]. On success, Chamfer connects the
// two chamfer points and Lines holds the input lines trimmed to them.
type ChamferResult struct {
	Outcome Outcome
	Chamfer Line
	Lines   [2]Line
	Message string
}

// Trim shortens entity to where it meets boundary, keeping the side that
// pick is on. Only lines and arcs can be trimmed.
//
// If the entity meets the boundary more than once, the intersection nearest
// to pick is used. A trimmed line keeps whichever endpoint is nearer to pick.
// A trimmed arc keeps its sweep direction and the part whose range contains
// the direction of pick as seen from the center. Intersections at an arc's
// ends are ignored, since cutting there would not shorten it.
func Trim(entity, boundary Entity, pick Point) TrimResult {
	if entity.Kind != LineKind && entity.Kind != ArcKind {
		return TrimResult{
			Outcome: UnsupportedEntity,
			Message: fmt.Sprintf("trimming not supported for %s", entity.Kind),
		}
	}

	hits := FindIntersections(entity, boundary)
	if len(hits) == 0 {
		return TrimResult{Outcome: NoIntersection, Message: "no intersection found"}
	}
	if a, ok := entity.Arc(); ok {
		hits = lo.Filter(hits, func(ip IntersectionPoint, _ int) bool {
			return !a.nearEndpoint(a.center.AngleTo(ip.Point), GeometricEpsilon)
		})
		if len(hits) == 0 {
			return TrimResult{Outcome: NoIntersection, Message: "boundary only meets the arc at its ends"}
		}
	}
	hit := nearest(hits, pick)

	var (
		out Entity
		err error
	)
	switch entity.Kind {
	case LineKind:
		var l Line
		l, err = trimLine(entity.line, hit.Point, pick)
		out = l.Entity()
	case ArcKind:
		var a Arc
		a, err = trimArc(entity.arc, hit.Point, pick)
		out = a.Entity()
	}
	if err != nil {
		Logger().Debug("trim failed", "entity", entity, "boundary", boundary, "error", err)
		return TrimResult{Outcome: GeometryError, Message: err.Error()}
	}
	return TrimResult{
		Outcome:  Success,
		Entities: []Entity{out},
		Message:  "entity trimmed",
	}
}

// nearest returns the intersection closest to pt. Earlier entries win ties.
func nearest(hits []IntersectionPoint, pt Point) IntersectionPoint {
	return lo.MinBy(hits, func(a, b IntersectionPoint) bool {
		return a.Point.DistanceSquared(pt) < b.Point.DistanceSquared(pt)
	})
}

func trimLine(l Line, at, pick Point) (Line, error) {
	if pick.Distance(l.start) < pick.Distance(l.end) {
		return NewLine(l.start, at)
	}
	return NewLine(at, l.end)
}

func trimArc(a Arc, at, pick Point) (Arc, error) {
	first, second, err := a.SplitAtAngle(a.center.AngleTo(at))
	if err != nil {
		return Arc{}, err
	}
	th := a.center.AngleTo(pick)
	switch {
	case first.ContainsAngle(th):
		return first, nil
	case second.ContainsAngle(th):
		return second, nil
	}
	// pick points outside the original arc; keep the nearer half.
	if first.DistanceToPoint(pick) <= second.DistanceToPoint(pick) {
		return first, nil
	}
	return second, nil
}

// Extend lengthens a line until it meets boundary. Only lines can be
// extended.
//
// The boundary is searched for up to [ExtendProbeLength] past either end.
// Of all points beyond the line's current ends, the one requiring the
// shortest extension wins, and the endpoint nearer to it is moved there.
func Extend(entity, boundary Entity) TrimResult {
	l, ok := entity.Line()
	if !ok {
		return TrimResult{
			Outcome: UnsupportedEntity,
			Message: fmt.Sprintf("extension not supported for %s", entity.Kind),
		}
	}

	probe, err := l.ExtendBoth(ExtendProbeLength)
	if err != nil {
		Logger().Debug("extend failed", "entity", entity, "error", err)
		return TrimResult{Outcome: GeometryError, Message: err.Error()}
	}
	// The original segment occupies [t0, t1] on the probe.
	plen := probe.Length()
	t0 := ExtendProbeLength / plen
	t1 := (ExtendProbeLength + l.Length()) / plen
	extension := func(ip IntersectionPoint) float64 {
		if ip.T0 > t1 {
			return ip.T0 - t1
		}
		return t0 - ip.T0
	}

	hits := lo.Filter(FindIntersections(probe.Entity(), boundary), func(ip IntersectionPoint, _ int) bool {
		return (ip.T0 < t0 || ip.T0 > t1) && !l.ContainsPoint(ip.Point)
	})
	if len(hits) == 0 {
		return TrimResult{Outcome: NoIntersection, Message: "no valid extension found"}
	}
	hit := lo.MinBy(hits, func(a, b IntersectionPoint) bool {
		return extension(a) < extension(b)
	})

	// The probe's length amplifies rounding; solve again on l itself.
	t := extensionParam(l, boundary, hit.Point)
	var out Line
	if t < 0 {
		out, err = NewLine(l.Eval(t), l.end)
	} else {
		out, err = NewLine(l.start, l.Eval(t))
	}
	if err != nil {
		Logger().Debug("extend failed", "entity", entity, "boundary", boundary, "error", err)
		return TrimResult{Outcome: GeometryError, Message: err.Error()}
	}
	return TrimResult{
		Outcome:  Success,
		Entities: []Entity{out.Entity()},
		Message:  "entity extended",
	}
}

// extensionParam returns the parameter on l's infinite extension, outside
// [0, 1], at which l meets boundary closest to approx.
func extensionParam(l Line, boundary Entity, approx Point) float64 {
	var ts []float64
	switch boundary.Kind {
	case LineKind:
		if t, _, ok := l.crossingParams(boundary.line); ok {
			ts = append(ts, t)
		}
	case CircleKind, ArcKind:
		c, _ := boundary.supportCircle()
		roots, n, _ := l.circleParams(c.center, c.radius)
		ts = append(ts, roots[:n]...)
	}
	ts = lo.Filter(ts, func(t float64, _ int) bool { return t < 0 || t > 1 })
	want := l.project(approx)
	if len(ts) == 0 {
		return want
	}
	return lo.MinBy(ts, func(a, b float64) bool {
		return math.Abs(a-want) < math.Abs(b-want)
	})
}

// Offset creates a copy of entity at the given distance, on the side of it
// that side is on. The distance must be positive.
//
// Lines move perpendicular to themselves. Circles and arcs keep their center
// and grow when side is outside their circle, shrink otherwise. An arc keeps
// its angles and sweep direction.
func Offset(entity Entity, distance float64, side Point) OffsetResult {
	if !(distance > 0) {
		return OffsetResult{
			Outcome: InvalidParameters,
			Message: fmt.Sprintf("offset distance must be positive, got %g", distance),
		}
	}

	var (
		out Entity
		err error
	)
	switch entity.Kind {
	case LineKind:
		l := entity.line
		d := distance
		if l.Direction().Perpendicular().Dot(side.Sub(l.Midpoint())) <= 0 {
			d = -d
		}
		out = l.Offset(d).Entity()
	case CircleKind:
		c := entity.circle
		var nc Circle
		nc, err = NewCircle(c.center, offsetRadius(c.center, c.radius, distance, side))
		out = nc.Entity()
	case ArcKind:
		a := entity.arc
		var na Arc
		na, err = NewArc(a.center, offsetRadius(a.center, a.radius, distance, side), a.start, a.end, a.ccw)
		out = na.Entity()
	default:
		return OffsetResult{
			Outcome: UnsupportedEntity,
			Message: fmt.Sprintf("offset not supported for %s", entity.Kind),
		}
	}
	if err != nil {
		Logger().Debug("offset failed", "entity", entity, "distance", distance, "error", err)
		return OffsetResult{Outcome: InvalidParameters, Message: err.Error()}
	}
	return OffsetResult{Outcome: Success, Entity: out, Message: "entity offset"}
}

func offsetRadius(center Point, radius, distance float64, side Point) float64 {
	if side.Distance(center) > radius {
		return radius + distance
	}
	return radius - distance
}

// corner holds two lines meeting at a point, with their unit directions.
type corner struct {
	l1, l2 Line
	d1, d2 Vec2
	at     Point
}

// findCorner checks the preconditions shared by [Fillet] and [Chamfer].
// When it returns false, the outcome and message describe why.
func findCorner(a, b Entity, op string) (corner, Outcome, string, bool) {
	l1, ok1 := a.Line()
	l2, ok2 := b.Line()
	if !ok1 || !ok2 {
		return corner{}, UnsupportedEntity, op + " only supported between lines", false
	}
	hits := FindIntersections(a, b)
	if len(hits) == 0 {
		return corner{}, NoIntersection, "lines do not intersect", false
	}
	return corner{
		l1: l1,
		l2: l2,
		d1: l1.Direction().unit(),
		d2: l2.Direction().unit(),
		at: hits[0].Point,
	}, Success, "", true
}

// Fillet rounds the corner where two lines meet with an arc of the given
// radius.
//
// The arc is tangent to both lines and sweeps the short way between its
// tangent points. It sits in the corner formed by the parts of the lines
// before the intersection, and each line is trimmed to run from its start
// to its tangent point. For two lines joined end to start, reverse the
// second line first, or the fillet lands outside the corner.
func Fillet(a, b Entity, radius float64) FilletResult {
	c, outcome, msg, ok := findCorner(a, b, "fillet")
	if !ok {
		return FilletResult{Outcome: outcome, Message: msg}
	}
	if !(radius > 0) {
		return FilletResult{
			Outcome: InvalidParameters,
			Message: fmt.Sprintf("fillet radius must be positive, got %g", radius),
		}
	}

	theta := math.Acos(min(max(c.d1.Dot(c.d2), -1), 1))
	if theta < GeometricEpsilon || theta > math.Pi-GeometricEpsilon {
		return FilletResult{Outcome: InvalidParameters, Message: "lines are parallel"}
	}
	half := theta / 2

	tdist := radius / math.Tan(half)
	t1 := c.at.TranslateVec(c.d1.Mul(-tdist))
	t2 := c.at.TranslateVec(c.d2.Mul(-tdist))

	bisector, err := c.d1.Add(c.d2).Negate().Normalize()
	if err != nil {
		Logger().Debug("fillet failed", "a", a, "b", b, "radius", radius, "error", err)
		return FilletResult{Outcome: GeometryError, Message: err.Error()}
	}
	center := c.at.TranslateVec(bisector.Mul(radius / math.Sin(half)))

	ccw := t1.Sub(center).Cross(t2.Sub(center)) > 0
	arc, err := NewArc(center, radius, center.AngleTo(t1), center.AngleTo(t2), ccw)
	if err != nil {
		Logger().Debug("fillet failed", "a", a, "b", b, "radius", radius, "error", err)
		return FilletResult{Outcome: GeometryError, Message: err.Error()}
	}
	trim1, err1 := NewLine(c.l1.start, t1)
	trim2, err2 := NewLine(c.l2.start, t2)
	if err := errors.Join(err1, err2); err != nil {
		Logger().Debug("fillet failed", "a", a, "b", b, "radius", radius, "error", err)
		return FilletResult{
			Outcome: InvalidParameters,
			Message: fmt.Sprintf("fillet radius %g consumes a whole line: %s", radius, err),
		}
	}
	return FilletResult{
		Outcome: Success,
		Arc:     arc,
		Lines:   [2]Line{trim1, trim2},
		Message: "fillet created",
	}
}

// Chamfer bevels the corner where two lines meet. The chamfer line connects
// the points d1 before the intersection on a and d2 before it on b, and
// each line is trimmed to run from its start to its chamfer point. As with
// [Fillet], lines joined end to start need the second one reversed.
func Chamfer(a, b Entity, d1, d2 float64) ChamferResult {
	c, outcome, msg, ok := findCorner(a, b, "chamfer")
	if !ok {
		return ChamferResult{Outcome: outcome, Message: msg}
	}
	if !(d1 > 0) || !(d2 > 0) {
		return ChamferResult{
			Outcome: InvalidParameters,
			Message: fmt.Sprintf("chamfer distances must be positive, got %g and %g", d1, d2),
		}
	}

	p1 := c.at.TranslateVec(c.d1.Mul(-d1))
	p2 := c.at.TranslateVec(c.d2.Mul(-d2))
	chamfer, err0 := NewLine(p1, p2)
	trim1, err1 := NewLine(c.l1.start, p1)
	trim2, err2 := NewLine(c.l2.start, p2)
	if err := errors.Join(err0, err1, err2); err != nil {
		Logger().Debug("chamfer failed", "a", a, "b", b, "d1", d1, "d2", d2, "error", err)
		return ChamferResult{Outcome: InvalidParameters, Message: err.Error()}
	}
	return ChamferResult{
		Outcome: Success,
		Chamfer: chamfer,
		Lines:   [2]Line{trim1, trim2},
		Message: "chamfer created",
	}
}
