package ntree

import "iter"

// Cursor is an in-progress range query: a resumable, depth-first
// traversal that yields every stored point the query region contains,
// one point per [Cursor.Next] call.
//
// The traversal is lazy. Each Next does at most the work needed to
// locate one point — whole subtrees whose regions do not overlap the
// query are pruned, and nothing is materialized up front — so an
// abandoned cursor costs nothing beyond the steps already taken.
//
// A Cursor borrows from the tree for its entire lifetime: the tree must
// not be mutated while the cursor is in use. Cursors are not
// restartable; call [NTree.RangeQuery] again for a fresh traversal.
type Cursor[R Region[R, P], P any] struct {
	query R

	// pending holds, per ancestor level, the siblings not yet visited.
	// The innermost level sits at the top of the stack.
	pending [][]node[R, P]

	// points holds the not-yet-yielded points of the active bucket.
	points []P
}

// RangeQuery starts a query for all stored points contained by the
// query region. Points are yielded depth-first, left to right over each
// branch's sub-regions, in insertion order within a bucket.
//
// The tree itself is never mutated by a query: repeating a query
// without an intervening Insert yields identical results.
func (t *NTree[R, P]) RangeQuery(query R) *Cursor[R, P] {
	return &Cursor[R, P]{
		query:   query,
		pending: [][]node[R, P]{{t.root}},
	}
}

// Next returns the next point contained by the query region, or false
// when the traversal is exhausted. Once exhausted, every further call
// returns false.
func (c *Cursor[R, P]) Next() (P, bool) {
	for {
		// Drain the active bucket, skipping points the region-level
		// pruning admitted but the query itself does not contain.
		for len(c.points) > 0 {
			p := c.points[0]
			c.points = c.points[1:]

			if c.query.Contains(p) {
				return p, true
			}
		}

		if !c.descend() {
			var zero P

			return zero, false
		}
	}
}

// descend advances the traversal to the next bucket whose region
// overlaps the query, making its points the active point list. It
// reports false when every sibling stack has been exhausted.
func (c *Cursor[R, P]) descend() bool {
	for len(c.pending) > 0 {
		top := len(c.pending) - 1
		siblings := c.pending[top]

		if len(siblings) == 0 {
			c.pending = c.pending[:top]

			continue
		}

		next := siblings[0]
		c.pending[top] = siblings[1:]

		if !next.bounds().Overlaps(c.query) {
			// Prune: nothing under this node can match.
			continue
		}

		switch n := next.(type) {
		case *bucket[R, P]:
			c.points = n.points

			return true
		case *branch[R, P]:
			c.pending = append(c.pending, n.subregions)
		}
	}

	return false
}

// All returns an iterator over the cursor's remaining points, in the
// same order Next would produce them. Breaking out of the loop abandons
// the traversal with no extra cost.
func (c *Cursor[R, P]) All() iter.Seq[P] {
	return func(yield func(P) bool) {
		for {
			p, ok := c.Next()
			if !ok {
				return
			}

			if !yield(p) {
				return
			}
		}
	}
}
