package ntree_test

import (
	"fmt"

	"github.com/reem/ntree/geo2d"
	"github.com/reem/ntree/ntree"
)

func Example() {
	// A tree over a 2-D rectangle splits four ways: a quadtree.
	tree := ntree.New[geo2d.Rect, geo2d.Vec2](geo2d.Square(0, 0, 100), 4)

	tree.Insert(geo2d.Vec2{X: 30, Y: 30})
	tree.Insert(geo2d.Vec2{X: 20, Y: 20})
	tree.Insert(geo2d.Vec2{X: 75, Y: 75})
	tree.Insert(geo2d.Vec2{X: 60, Y: 20})

	// Everything stored in the same leaf partition as (25, 25).
	neighbors, _ := tree.Nearby(geo2d.Vec2{X: 25, Y: 25})
	fmt.Println("nearby:", neighbors)

	// Everything below the y = 40 line, streamed lazily.
	for p := range tree.RangeQuery(geo2d.Rect{X: 0, Y: 0, Width: 100, Height: 40}).All() {
		fmt.Println("in range:", p)
	}

	// Output:
	// nearby: [{30 30} {20 20}]
	// in range: {30 30}
	// in range: {20 20}
	// in range: {60 20}
}
