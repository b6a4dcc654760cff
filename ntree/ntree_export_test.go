package ntree

// White-box helpers for invariant checks. They live in the package so
// tests can walk the unexported node structure without exporting it.

// CountPoints returns the total number of points stored anywhere in the
// tree.
func (t *NTree[R, P]) CountPoints() int {
	return countPoints(t.root)
}

func countPoints[R Region[R, P], P any](n node[R, P]) int {
	switch n := n.(type) {
	case *bucket[R, P]:
		return len(n.points)
	case *branch[R, P]:
		var total int
		for _, sub := range n.subregions {
			total += countPoints(sub)
		}

		return total
	}

	return 0
}

// MaxBucketLoad returns the largest number of points stored directly in
// any single bucket of the tree.
func (t *NTree[R, P]) MaxBucketLoad() int {
	return maxBucketLoad(t.root)
}

func maxBucketLoad[R Region[R, P], P any](n node[R, P]) int {
	switch n := n.(type) {
	case *bucket[R, P]:
		return len(n.points)
	case *branch[R, P]:
		var heaviest int
		for _, sub := range n.subregions {
			if load := maxBucketLoad(sub); load > heaviest {
				heaviest = load
			}
		}

		return heaviest
	}

	return 0
}

// RootArity returns the number of children directly under the root.
func (t *NTree[R, P]) RootArity() int {
	if br, ok := t.root.(*branch[R, P]); ok {
		return len(br.subregions)
	}

	return 0
}
