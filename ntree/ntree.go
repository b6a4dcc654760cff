package ntree

// Region is the required interface for regions in this n-tree.
//
// Regions must be able to split themselves, tell if they overlap other
// regions, and tell if a point is contained within the region. A Region
// is a plain value: cheap to copy, sharing no mutable state with its
// copies, and none of its operations may mutate the receiver or the
// argument.
//
// The two type parameters tie a Region implementation to itself and to
// the point type it classifies, so a concrete geometry declares e.g.
//
//	var _ ntree.Region[Rect, Vec2] = Rect{}
type Region[R, P any] interface {
	// Contains reports whether the region contains the point, by
	// whatever boundary convention (inclusive or exclusive) the
	// implementation chooses consistently.
	Contains(p P) bool

	// Split subdivides the region, returning its sub-regions. The
	// returned slice must be non-empty and its length fixed for a
	// given implementation.
	//
	// Invariants the tree relies on but does not verify:
	//   - The sub-regions must NOT overlap.
	//   - All points in the region must be contained within one and
	//     only one sub-region.
	//
	// Violating these corrupts the tree: points become unreachable or
	// show up more than once across queries.
	Split() []R

	// Overlaps reports whether the two regions share any point. It is
	// used only to prune traversals, so when geometry is ambiguous
	// (touching boundaries, say) implementations should err toward
	// returning true: a false positive merely costs wasted traversal,
	// a false negative drops real results.
	Overlaps(other R) bool
}

// NTree is an n-ary spatial index over a bounded region.
//
// Points are stored in buckets of at most the configured limit; a
// bucket that overflows is replaced in place by a branch over the same
// region, its points redistributed into the fresh sub-buckets. The tree
// never rebalances beyond that, never deletes, and does not bound its
// own depth: a region/point combination that never separates under
// Split can recurse without bound.
type NTree[R Region[R, P], P any] struct {
	root node[R, P]
}

// New creates an empty tree over the given region. The region is split
// immediately, so the root is always a branch of empty buckets.
//
// bucketLimit is the capacity of every bucket the tree will ever
// create, including those produced by later splits. It is not
// validated; a limit of 0 is degenerate (every insert splits) but not
// unsafe.
func New[R Region[R, P], P any](region R, bucketLimit int) *NTree[R, P] {
	return &NTree[R, P]{
		root: newBranch[R, P](region, bucketLimit),
	}
}

// Insert adds a point to the tree, reporting whether it was stored.
// It returns false, without mutating the tree, if the point is outside
// the tree's region — callers can then retry against a different tree
// or report the point as out of bounds.
//
// Duplicate points are allowed and stored separately.
func (t *NTree[R, P]) Insert(p P) bool {
	root, ok := t.root.insert(p)
	t.root = root

	return ok
}

// Contains reports whether the point lies within the region covered by
// the tree. This tests the tree's territorial boundary, not whether the
// point has been stored.
func (t *NTree[R, P]) Contains(p P) bool {
	return t.root.bounds().Contains(p)
}

// Nearby returns the full point list of whichever single bucket's
// region contains the point, or false if no bucket on that path claims
// it. "Nearby" means co-located in the same leaf partition — a coarse
// proxy for spatial proximity, unfiltered by distance, and only as good
// as the Split policy's locality.
//
// The returned slice is a read-only view into the tree, valid until the
// next Insert.
func (t *NTree[R, P]) Nearby(p P) ([]P, bool) {
	return t.root.nearby(p)
}

// node is the interface both tree node shapes implement. There are
// exactly two: [bucket] leaves holding points, and [branch] interior
// nodes holding sub-nodes that partition their region.
type node[R Region[R, P], P any] interface {
	// bounds returns the region this node covers.
	bounds() R

	// insert stores p somewhere under this node, returning the node
	// that should take this node's place in its parent (itself, unless
	// an overflowing bucket replaced itself with a branch) and whether
	// p was stored.
	insert(p P) (node[R, P], bool)

	// nearby resolves the bucket point list for p, descending along
	// the single child path whose regions contain p.
	nearby(p P) ([]P, bool)
}

// bucket is a leaf of the tree, holding points directly in insertion
// order.
type bucket[R Region[R, P], P any] struct {
	region R
	points []P
	limit  int
}

// branch is an interior node of the tree, holding one child per
// sub-region produced by splitting its own region.
type branch[R Region[R, P], P any] struct {
	region     R
	subregions []node[R, P]
}

// newBranch builds a branch over region by splitting it once and
// hanging an empty bucket under each sub-region.
func newBranch[R Region[R, P], P any](region R, bucketLimit int) *branch[R, P] {
	subs := region.Split()
	children := make([]node[R, P], len(subs))

	for i, sub := range subs {
		children[i] = &bucket[R, P]{
			region: sub,
			limit:  bucketLimit,
		}
	}

	return &branch[R, P]{
		region:     region,
		subregions: children,
	}
}

func (b *bucket[R, P]) bounds() R {
	return b.region
}

func (b *bucket[R, P]) insert(p P) (node[R, P], bool) {
	if !b.region.Contains(p) {
		return b, false
	}

	if len(b.points) < b.limit {
		b.points = append(b.points, p)

		return b, true
	}

	// The bucket is at capacity: replace it with a branch over the
	// same region and redistribute, existing points first, then p.
	tracer().Debugf("ntree: bucket full at %d points, splitting", len(b.points))

	replacement := newBranch[R, P](b.region, b.limit)

	for _, q := range b.points {
		if _, ok := replacement.insert(q); !ok {
			// Every resident point was claimed by this bucket's
			// region, so a conforming Split must hand it to exactly
			// one sub-region.
			panic("ntree: Split contract violated: resident point not claimed by any sub-region")
		}
	}

	return replacement.insert(p)
}

func (b *bucket[R, P]) nearby(p P) ([]P, bool) {
	if !b.region.Contains(p) {
		return nil, false
	}

	return b.points, true
}

func (br *branch[R, P]) bounds() R {
	return br.region
}

func (br *branch[R, P]) insert(p P) (node[R, P], bool) {
	if !br.region.Contains(p) {
		return br, false
	}

	for i, sub := range br.subregions {
		if sub.bounds().Contains(p) {
			child, ok := sub.insert(p)
			br.subregions[i] = child

			return br, ok
		}
	}

	// No child claimed the point. For a conforming Split this is a
	// boundary/precision edge case; report it rather than guess.
	return br, false
}

func (br *branch[R, P]) nearby(p P) ([]P, bool) {
	if !br.region.Contains(p) {
		return nil, false
	}

	for _, sub := range br.subregions {
		if sub.bounds().Contains(p) {
			return sub.nearby(p)
		}
	}

	return nil, false
}
