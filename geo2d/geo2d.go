// Package geo2d provides an axis-aligned 2-D geometry satisfying the
// ntree Region contract. A Rect splits into its four quadrants, so an
// [ntree.NTree] over a Rect is a classic quadtree.
package geo2d

import "github.com/reem/ntree/ntree"

// Vec2 is a point in the plane.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle anchored at its minimum corner.
// All four edges are inclusive: a point on the boundary is contained.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Ensure Rect satisfies the Region contract.
var _ ntree.Region[Rect, Vec2] = Rect{}

// Square returns a square Rect of side wh anchored at (x, y).
func Square(x, y, wh float64) Rect {
	return Rect{X: x, Y: y, Width: wh, Height: wh}
}

// Contains reports whether p lies within the rectangle, boundary
// included.
func (r Rect) Contains(p Vec2) bool {
	return r.X <= p.X && p.X <= r.X+r.Width &&
		r.Y <= p.Y && p.Y <= r.Y+r.Height
}

// Split quarters the rectangle into four equal quadrants, ordered SW,
// NW, SE, NE.
//
// Because Contains is edge-inclusive, a point sitting exactly on an
// interior split line is claimed by more than one quadrant; the tree
// resolves the tie deterministically by taking the first quadrant in
// this order.
func (r Rect) Split() []Rect {
	halfwidth := r.Width / 2
	halfheight := r.Height / 2

	return []Rect{
		{X: r.X, Y: r.Y, Width: halfwidth, Height: halfheight},
		{X: r.X, Y: r.Y + halfheight, Width: halfwidth, Height: halfheight},
		{X: r.X + halfwidth, Y: r.Y, Width: halfwidth, Height: halfheight},
		{X: r.X + halfwidth, Y: r.Y + halfheight, Width: halfwidth, Height: halfheight},
	}
}

// Overlaps reports whether the two rectangles share at least one point.
// Touching edges count as overlapping, erring toward false positives
// the way the Region contract asks of its pruning predicate.
func (r Rect) Overlaps(other Rect) bool {
	return r.X <= other.X+other.Width && other.X <= r.X+r.Width &&
		r.Y <= other.Y+other.Height && other.Y <= r.Y+r.Height
}
