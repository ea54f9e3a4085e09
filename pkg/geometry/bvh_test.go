package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-cornell-pathtracer/pkg/core"
	"github.com/df07/go-cornell-pathtracer/pkg/material"
)

func randomShapes(random *rand.Rand, n int) []Shape {
	shapes := make([]Shape, 0, n)
	for i := 0; i < n; i++ {
		mat := material.NewLambertian(core.NewVec3(random.Float64(), random.Float64(), random.Float64()))
		x, y, z := random.Float64()*100, random.Float64()*100, random.Float64()*100
		switch random.Intn(4) {
		case 0:
			shapes = append(shapes, NewSphere(core.NewVec3(x, y, z), 0.5+random.Float64()*5, mat))
		case 1:
			shapes = append(shapes, NewXYRect(x, x+1+random.Float64()*10, y, y+1+random.Float64()*10, z, mat))
		case 2:
			shapes = append(shapes, NewFlipNormals(NewXZRect(x, x+1+random.Float64()*10, z, z+1+random.Float64()*10, y, mat)))
		default:
			box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1+random.Float64()*8, 1+random.Float64()*8, 1+random.Float64()*8), mat)
			shapes = append(shapes, NewTranslate(NewRotateY(box, random.Float64()*360), core.NewVec3(x, y, z)))
		}
	}
	return shapes
}

func randomRay(random *rand.Rand) core.Ray {
	origin := core.NewVec3(random.Float64()*140-20, random.Float64()*140-20, random.Float64()*140-20)
	target := core.NewVec3(random.Float64()*100, random.Float64()*100, random.Float64()*100)
	return core.NewRay(origin, target.Subtract(origin))
}

func TestBVH_MatchesHittableList(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for _, n := range []int{1, 2, 3, 7, 50, 300} {
		shapes := randomShapes(random, n)
		bvh := NewBVH(shapes)
		list := NewHittableList(shapes...)

		hits := 0
		for i := 0; i < 2000; i++ {
			ray := randomRay(random)
			tMin := 0.001
			tMax := math.Inf(1)
			if i%3 == 0 {
				tMax = 50 + random.Float64()*100
			}

			listHit, listOK := list.Hit(ray, tMin, tMax, nil)
			bvhHit, bvhOK := bvh.Hit(ray, tMin, tMax, nil)

			if listOK != bvhOK {
				t.Fatalf("n=%d ray %d: list hit=%t, bvh hit=%t", n, i, listOK, bvhOK)
			}
			if !listOK {
				continue
			}
			hits++
			if math.Abs(listHit.T-bvhHit.T) > 1e-9 {
				t.Fatalf("n=%d ray %d: list t=%f, bvh t=%f", n, i, listHit.T, bvhHit.T)
			}
			if !vecNear(listHit.Point, bvhHit.Point, 1e-9) {
				t.Fatalf("n=%d ray %d: list point %v, bvh point %v", n, i, listHit.Point, bvhHit.Point)
			}
			if !vecNear(listHit.Normal, bvhHit.Normal, 1e-9) {
				t.Fatalf("n=%d ray %d: list normal %v, bvh normal %v", n, i, listHit.Normal, bvhHit.Normal)
			}
			if listHit.Material != bvhHit.Material {
				t.Fatalf("n=%d ray %d: hits report different materials", n, i)
			}
		}
		if n >= 50 && hits == 0 {
			t.Errorf("n=%d: no ray hit anything, test is not exercising the BVH", n)
		}
	}
}

func TestBVH_Structure(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	shapes := randomShapes(random, 100)
	bvh := NewBVH(shapes)

	stats := bvh.Stats()
	if stats.TotalShapes != 100 {
		t.Errorf("Expected 100 shapes in leaves, got %d", stats.TotalShapes)
	}
	if stats.TotalNodes != 2*stats.LeafNodes-1 {
		t.Errorf("Expected a full binary tree, got %d nodes for %d leaves", stats.TotalNodes, stats.LeafNodes)
	}

	var check func(node *BVHNode)
	check = func(node *BVHNode) {
		if node.Shapes != nil {
			if len(node.Shapes) < 1 || len(node.Shapes) > leafThreshold {
				t.Errorf("Leaf holds %d shapes", len(node.Shapes))
			}
			for _, shape := range node.Shapes {
				if !node.BoundingBox.Contains(shape.BoundingBox()) {
					t.Errorf("Leaf box %v does not contain shape box %v", node.BoundingBox, shape.BoundingBox())
				}
			}
			return
		}
		if node.Left == nil || node.Right == nil {
			t.Fatal("Internal node must have two children")
		}
		if !node.BoundingBox.Contains(node.Left.BoundingBox) || !node.BoundingBox.Contains(node.Right.BoundingBox) {
			t.Error("Internal box must contain both children")
		}
		check(node.Left)
		check(node.Right)
	}
	check(bvh.Root)

	// Balanced median splits keep the depth logarithmic
	if stats.MaxDepth > 7 {
		t.Errorf("Expected depth <= 7 for 100 shapes, got %d", stats.MaxDepth)
	}
}

func TestBVH_DoesNotReorderInput(t *testing.T) {
	random := rand.New(rand.NewSource(9))
	shapes := randomShapes(random, 20)
	original := make([]Shape, len(shapes))
	copy(original, shapes)

	NewBVH(shapes)

	for i := range shapes {
		if shapes[i] != original[i] {
			t.Fatal("NewBVH must not reorder the caller's slice")
		}
	}
}

func TestBVH_Empty(t *testing.T) {
	bvh := NewBVH(nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	if _, ok := bvh.Hit(ray, 0.001, math.Inf(1), nil); ok {
		t.Error("Empty BVH should never be hit")
	}
	if bvh.BoundingBox().IsValid() {
		t.Error("Empty BVH should report an empty box")
	}
	if stats := bvh.Stats(); stats.TotalNodes != 0 {
		t.Errorf("Expected no nodes, got %d", stats.TotalNodes)
	}
}

func TestBVH_FlatShapesAreNotCulled(t *testing.T) {
	// Two coplanar rectangles side by side give a zero-thickness union box
	// along y; padding keeps it hittable.
	shapes := []Shape{
		NewXZRect(0, 1, 0, 1, 5, nil),
		NewXZRect(1, 2, 0, 1, 5, nil),
		NewXZRect(2, 3, 0, 1, 5, nil),
	}
	bvh := NewBVH(shapes)
	for _, x := range []float64{0.5, 1.5, 2.5} {
		ray := core.NewRay(core.NewVec3(x, 0, 0.5), core.NewVec3(0, 1, 0))
		hit, ok := bvh.Hit(ray, 0.001, math.Inf(1), nil)
		if !ok || math.Abs(hit.T-5) > 1e-9 {
			t.Errorf("Expected hit at t=5 for x=%f, got %v %v", x, hit, ok)
		}
	}
}
