// Package ntree implements a generic, n-ary spatial index for fast
// neighbor lookups on multiple axes.
//
// A quadtree-like structure, but for arbitrary arity: regions split
// themselves into arbitrary numbers of subregions, allowing the tree to
// index data by any number of attributes and quickly stream the data
// that falls within a query region.
//
// The tree knows nothing about any concrete geometry. Callers supply a
// type satisfying the [Region] contract; everything else — insertion,
// overflow splitting, bucket lookup, lazy range queries — is driven
// through that contract alone.
//
// The tree is an ordinary in-memory mutable structure with no internal
// locking. Callers must serialize access: an insert performs in-place
// structural replacement that invalidates any query cursor still alive.
package ntree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
