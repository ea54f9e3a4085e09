package geometry

import (
	"sort"

	"github.com/df07/go-cornell-pathtracer/pkg/core"
	"github.com/df07/go-cornell-pathtracer/pkg/material"
)

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []Shape // One or two shapes for leaf nodes (nil for internal nodes)
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection
type BVH struct {
	Root *BVHNode
}

// Leaf threshold: if we have this many or fewer shapes, store them in a leaf node
const leafThreshold = 2

// NewBVH constructs a BVH from a slice of shapes
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}

	// Sorting happens in place, so work on a copy of the caller's slice
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	return &BVH{Root: buildBVH(shapesCopy)}
}

// buildBVH sorts shapes by their box minimum along the longest axis of the
// combined box and splits at the median index
func buildBVH(shapes []Shape) *BVHNode {
	boundingBox := shapes[0].BoundingBox()
	for i := 1; i < len(shapes); i++ {
		boundingBox = boundingBox.Union(shapes[i].BoundingBox())
	}

	if len(shapes) <= leafThreshold {
		return &BVHNode{
			BoundingBox: boundingBox,
			Shapes:      shapes,
		}
	}

	sortShapesByAxis(shapes, boundingBox.LongestAxis())
	mid := len(shapes) / 2

	left := buildBVH(shapes[:mid])
	right := buildBVH(shapes[mid:])

	return &BVHNode{
		BoundingBox: left.BoundingBox.Union(right.BoundingBox),
		Left:        left,
		Right:       right,
	}
}

// sortShapesByAxis sorts shapes by the minimum of their bounding box along axis
func sortShapesByAxis(shapes []Shape, axis int) {
	sort.SliceStable(shapes, func(i, j int) bool {
		return shapes[i].BoundingBox().Min.Axis(axis) < shapes[j].BoundingBox().Min.Axis(axis)
	})
}

func (bvh *BVH) isShape() {}

// Hit tests if a ray intersects any shape in the BVH and returns the nearest hit
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	hit := bvh.hitNode(bvh.Root, ray, tMin, tMax, sampler)
	return hit, hit != nil
}

// hitNode recursively tests ray intersection with BVH nodes. The far bound
// shrinks to the closest hit found so far.
func (bvh *BVH) hitNode(node *BVHNode, ray core.Ray, tMin, tMax float64, sampler core.Sampler) *material.HitRecord {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil
	}

	var closest *material.HitRecord
	closestSoFar := tMax

	// Leaf node: test the shapes directly
	if node.Shapes != nil {
		for _, shape := range node.Shapes {
			if hit, ok := shape.Hit(ray, tMin, closestSoFar, sampler); ok {
				closest = hit
				closestSoFar = hit.T
			}
		}
		return closest
	}

	if hit := bvh.hitNode(node.Left, ray, tMin, closestSoFar, sampler); hit != nil {
		closest = hit
		closestSoFar = hit.T
	}
	if hit := bvh.hitNode(node.Right, ray, tMin, closestSoFar, sampler); hit != nil {
		closest = hit
	}

	return closest
}

// BoundingBox returns the overall bounding box of the BVH
func (bvh *BVH) BoundingBox() core.AABB {
	if bvh.Root == nil {
		return core.EmptyAABB()
	}
	return bvh.Root.BoundingBox
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes  int
	LeafNodes   int
	MaxDepth    int
	AvgDepth    float64
	TotalShapes int
}

// Stats walks the tree and reports its shape
func (bvh *BVH) Stats() BVHStats {
	if bvh.Root == nil {
		return BVHStats{}
	}

	stats := BVHStats{}
	bvh.collectStats(bvh.Root, 0, &stats)

	if stats.LeafNodes > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafNodes)
	}

	return stats
}

// collectStats recursively collects statistics about the BVH
func (bvh *BVH) collectStats(node *BVHNode, depth int, stats *BVHStats) {
	stats.TotalNodes++

	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	if node.Shapes != nil {
		stats.LeafNodes++
		stats.TotalShapes += len(node.Shapes)
		stats.AvgDepth += float64(depth) // summed here, averaged in Stats
		return
	}

	bvh.collectStats(node.Left, depth+1, stats)
	bvh.collectStats(node.Right, depth+1, stats)
}
