package draft

import (
	"fmt"

	"github.com/samber/lo"
)

// IntersectionPoint is a point shared by two entities, as found by
// [FindIntersections].
//
// T0 and T1 locate the point on the first and second entity. For lines they
// are the segment parameter, for arcs the value of [Arc.ParameterOfAngle].
// Circles have no natural parameter and always report 0.
type IntersectionPoint struct {
	Point   Point
	T0      float64
	T1      float64
	Tangent bool
}

func (ip IntersectionPoint) String() string {
	s := fmt.Sprintf("%s @ (%g, %g)", ip.Point, ip.T0, ip.T1)
	if ip.Tangent {
		s += " tangent"
	}
	return s
}

// Equal compares points and parameters within [Epsilon].
func (ip IntersectionPoint) Equal(o IntersectionPoint) bool {
	return ip.Point.Equal(o.Point) &&
		approxEqual(ip.T0, o.T0) &&
		approxEqual(ip.T1, o.T1) &&
		ip.Tangent == o.Tangent
}

func (ip IntersectionPoint) swap() IntersectionPoint {
	ip.T0, ip.T1 = ip.T1, ip.T0
	return ip
}

type intersector func(a, b Entity) []IntersectionPoint

// intersectors holds one entry for every ordered pair of entity kinds.
var intersectors = [numKinds][numKinds]intersector{
	LineKind: {
		LineKind:   intersectLineLine,
		CircleKind: intersectLineCurve,
		ArcKind:    intersectLineCurve,
	},
	CircleKind: {
		LineKind:   intersectCurveLine,
		CircleKind: intersectCurveCurve,
		ArcKind:    intersectCurveCurve,
	},
	ArcKind: {
		LineKind:   intersectCurveLine,
		CircleKind: intersectCurveCurve,
		ArcKind:    intersectCurveCurve,
	},
}

// FindIntersections returns the points where a and b meet, with each point's
// parameter on a in T0 and on b in T1. Points are only reported if they lie
// within both shapes: inside [0, 1] on lines and inside the angular range of
// arcs.
//
// Coincident shapes, such as overlapping collinear lines or identical
// circles, share infinitely many points and report none.
func FindIntersections(a, b Entity) []IntersectionPoint {
	if a.Kind <= 0 || a.Kind >= numKinds || b.Kind <= 0 || b.Kind >= numKinds {
		return nil
	}
	return intersectors[a.Kind][b.Kind](a, b)
}

func intersectLineLine(a, b Entity) []IntersectionPoint {
	l1, l2 := a.line, b.line
	t1, t2, ok := l1.crossingParams(l2)
	if !ok || !inUnitRange(t1) || !inUnitRange(t2) {
		return nil
	}
	return []IntersectionPoint{{Point: l1.Eval(t1), T0: t1, T1: t2}}
}

func intersectLineCurve(a, b Entity) []IntersectionPoint {
	l := a.line
	c, _ := b.supportCircle()
	ts, n, tangent := l.circleParams(c.center, c.radius)

	ts2 := lo.Filter(ts[:n], func(t float64, _ int) bool {
		return inUnitRange(t) && b.onCurve(l.Eval(t))
	})
	return lo.Map(ts2, func(t float64, _ int) IntersectionPoint {
		pt := l.Eval(t)
		return IntersectionPoint{
			Point:   pt,
			T0:      t,
			T1:      b.curveParam(pt),
			Tangent: tangent,
		}
	})
}

func intersectCurveLine(a, b Entity) []IntersectionPoint {
	return lo.Map(intersectLineCurve(b, a), func(ip IntersectionPoint, _ int) IntersectionPoint {
		return ip.swap()
	})
}

func intersectCurveCurve(a, b Entity) []IntersectionPoint {
	c1, _ := a.supportCircle()
	c2, _ := b.supportCircle()
	pts, n := c1.IntersectCircle(c2)
	tangent := n == 1

	pts2 := lo.Filter(pts[:n], func(pt Point, _ int) bool {
		return a.onCurve(pt) && b.onCurve(pt)
	})
	return lo.Map(pts2, func(pt Point, _ int) IntersectionPoint {
		return IntersectionPoint{
			Point:   pt,
			T0:      a.curveParam(pt),
			T1:      b.curveParam(pt),
			Tangent: tangent,
		}
	})
}

// onCurve reports whether a point already known to lie on e's circle falls
// within e's angular range. Computed points are accepted up to
// [GeometricEpsilon] past the arc's ends.
func (e Entity) onCurve(pt Point) bool {
	if e.Kind != ArcKind {
		return true
	}
	return e.arc.containsAngleWithin(e.arc.center.AngleTo(pt), GeometricEpsilon)
}

func (e Entity) curveParam(pt Point) float64 {
	if e.Kind != ArcKind {
		return 0
	}
	return e.arc.ParameterOfAngle(e.arc.center.AngleTo(pt))
}
