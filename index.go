package draft

import (
	"cmp"
	"slices"

	"github.com/dhconnelly/rtreego"
)

// Crossing lists the intersections between entities I and J of the slice
// passed to [IntersectAll], with I < J. Point parameters are relative to I
// in T0 and to J in T1.
type Crossing struct {
	I, J   int
	Points []IntersectionPoint
}

// indexedBox is an entity's bounding box as stored in the R-tree.
type indexedBox struct {
	idx  int
	rect rtreego.Rect
}

func (b indexedBox) Bounds() rtreego.Rect { return b.rect }

var _ rtreego.Spatial = indexedBox{}

// Branching factors of the transient tree. IntersectAll builds the tree in
// bulk, so these only affect query speed.
const (
	minChildren = 25
	maxChildren = 50
)

// IntersectAll finds all pairs of entities that intersect, as if calling
// [FindIntersections] on every pair. Pairs whose bounding boxes don't
// overlap are skipped without computing their intersections.
//
// The result is ordered by I, then J. Entities without a valid kind are
// ignored.
func IntersectAll(entities []Entity) []Crossing {
	boxes := make([]indexedBox, 0, len(entities))
	objs := make([]rtreego.Spatial, 0, len(entities))
	for i, e := range entities {
		if e.Kind <= 0 || e.Kind >= numKinds {
			continue
		}
		r, err := paddedRect(e.BoundingBox())
		if err != nil {
			Logger().Debug("skipping entity in intersection index", "index", i, "entity", e, "error", err)
			continue
		}
		b := indexedBox{idx: i, rect: r}
		boxes = append(boxes, b)
		objs = append(objs, b)
	}
	if len(boxes) < 2 {
		return nil
	}

	tree := rtreego.NewTree(2, minChildren, maxChildren, objs...)
	var out []Crossing
	for _, b := range boxes {
		for _, s := range tree.SearchIntersect(b.rect) {
			j := s.(indexedBox).idx
			if j <= b.idx {
				continue
			}
			if pts := FindIntersections(entities[b.idx], entities[j]); len(pts) > 0 {
				out = append(out, Crossing{I: b.idx, J: j, Points: pts})
			}
		}
	}
	slices.SortFunc(out, func(a, b Crossing) int {
		if c := cmp.Compare(a.I, b.I); c != 0 {
			return c
		}
		return cmp.Compare(a.J, b.J)
	})
	return out
}

// paddedRect converts a bounding box into an R-tree rectangle, grown by
// [GeometricEpsilon] on every side. The tree rejects rectangles with a zero
// side, which axis-aligned lines would otherwise produce, and the padding
// keeps boxes that merely touch overlapping.
func paddedRect(b BoundingBox) (rtreego.Rect, error) {
	return rtreego.NewRectFromPoints(
		rtreego.Point{b.min.X - GeometricEpsilon, b.min.Y - GeometricEpsilon},
		rtreego.Point{b.max.X + GeometricEpsilon, b.max.Y + GeometricEpsilon},
	)
}
