package draft

import (
	"encoding/json"
	"fmt"
)

// The shapes encode as bare JSON arrays of numbers, the form in which
// drawings store them:
//
//	Point, Vec2   [x, y]
//	Line          [[x0, y0], [x1, y1]]
//	Circle        [[cx, cy], r]
//	Arc           [[cx, cy], r, start, end, ccw]
//	BoundingBox   [[minx, miny], [maxx, maxy]]
//
// Decoding goes through the constructors, so stored data that violates a
// shape's invariants fails with ErrInvalidGeometry.

// MarshalJSON implements json.Marshaler.
func (pt Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(pt.Array())
}

// UnmarshalJSON implements json.Unmarshaler.
func (pt *Point) UnmarshalJSON(data []byte) error {
	var a [2]float64
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*pt = PtFromArray(a)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v Vec2) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{v.X, v.Y})
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Vec2) UnmarshalJSON(data []byte) error {
	var a [2]float64
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*v = Vec2{X: a[0], Y: a[1]}
	return nil
}

// tuple splits a JSON array of exactly n elements.
func tuple(data []byte, n int, what string) ([]json.RawMessage, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, err
	}
	if len(elems) != n {
		return nil, fmt.Errorf("%s: expected %d elements, got %d", what, n, len(elems))
	}
	return elems, nil
}

// unmarshalAll decodes each element of elems into the matching destination.
func unmarshalAll(elems []json.RawMessage, dsts ...any) error {
	for i, dst := range dsts {
		if err := json.Unmarshal(elems[i], dst); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (l Line) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]Point{l.start, l.end})
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Line) UnmarshalJSON(data []byte) error {
	var pts [2]Point
	if err := json.Unmarshal(data, &pts); err != nil {
		return err
	}
	nl, err := NewLine(pts[0], pts[1])
	if err != nil {
		return err
	}
	*l = nl
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c Circle) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{c.center, c.radius})
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Circle) UnmarshalJSON(data []byte) error {
	elems, err := tuple(data, 2, "circle")
	if err != nil {
		return err
	}
	var (
		center Point
		radius float64
	)
	if err := unmarshalAll(elems, &center, &radius); err != nil {
		return err
	}
	nc, err := NewCircle(center, radius)
	if err != nil {
		return err
	}
	*c = nc
	return nil
}

// MarshalJSON implements json.Marshaler.
func (a Arc) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{a.center, a.radius, a.start, a.end, a.ccw})
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Arc) UnmarshalJSON(data []byte) error {
	elems, err := tuple(data, 5, "arc")
	if err != nil {
		return err
	}
	var (
		center     Point
		radius     float64
		start, end float64
		ccw        bool
	)
	if err := unmarshalAll(elems, &center, &radius, &start, &end, &ccw); err != nil {
		return err
	}
	na, err := NewArc(center, radius, start, end, ccw)
	if err != nil {
		return err
	}
	*a = na
	return nil
}

// MarshalJSON implements json.Marshaler.
func (b BoundingBox) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]Point{b.min, b.max})
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *BoundingBox) UnmarshalJSON(data []byte) error {
	var pts [2]Point
	if err := json.Unmarshal(data, &pts); err != nil {
		return err
	}
	nb, err := NewBoundingBox(pts[0], pts[1])
	if err != nil {
		return err
	}
	*b = nb
	return nil
}
