package probe

import (
	"testing"

	"github.com/automoto/bugspy/shared/tilemap"
)

func floorGrid() *tilemap.Grid {
	g := tilemap.NewGrid(12, 20, 16, 16)
	g.Fill(6, 0, 11, 19, 1)
	return g
}

func TestUnregisteredTilesNeverHit(t *testing.T) {
	g := floorGrid()
	attrs := tilemap.NewAttrSet(0)
	attrs.Set(2, tilemap.Angle(0))

	rays := []Ray{
		{Origin: Vec{100, 84}, Dir: Vec{0, 1}, Distance: 64, Steps: 64},
		{Origin: Vec{100, 120}, Dir: Vec{0, -1}, Distance: 64, Steps: 8},
		{Origin: Vec{10, 100}, Dir: Vec{1, 0}, Distance: 200, Steps: 50},
		{Origin: Vec{300, 100}, Dir: Vec{-1, 0}, Distance: 200, Steps: 3},
	}
	for _, r := range rays {
		if hits := Cast(r, g, attrs); len(hits) != 0 {
			t.Errorf("ray %+v reported %d hits over unregistered tiles", r, len(hits))
		}
	}
}

func TestCastDownIntoFloor(t *testing.T) {
	g := floorGrid()
	attrs := tilemap.NewAttrSet(0)
	attrs.Set(1, tilemap.Angle(0))

	ray := Ray{Origin: Vec{100, 100}, Dir: Vec{0, 1}, Distance: 8, Steps: 8}
	hit, ok := CastNearest(ray, g, attrs)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Point.Y != 96 || hit.Point.X != 100 {
		t.Errorf("point = %+v, want (100,96)", hit.Point)
	}
	if hit.MapIndex != g.Index(6, 6) {
		t.Errorf("map index = %d, want %d", hit.MapIndex, g.Index(6, 6))
	}
	if hit.Overlap.Y != 8 {
		t.Errorf("overlap y = %v, want 8", hit.Overlap.Y)
	}
}

func TestCastAboveFloorMisses(t *testing.T) {
	g := floorGrid()
	attrs := tilemap.NewAttrSet(0)
	attrs.Set(1, tilemap.Angle(0))

	ray := Ray{Origin: Vec{100, 80}, Dir: Vec{0, 1}, Distance: 8, Steps: 8}
	if _, ok := CastNearest(ray, g, attrs); ok {
		t.Error("ray ending at y=88 should not reach the floor at y=96")
	}
}

func TestCastHorizontalFaces(t *testing.T) {
	g := tilemap.NewGrid(10, 20, 16, 16)
	g.Fill(0, 8, 9, 8, 1)
	attrs := tilemap.NewAttrSet(0)
	attrs.Set(1, tilemap.Angle(0))

	right := Ray{Origin: Vec{130, 40}, Dir: Vec{1, 0}, Distance: 4, Steps: 4}
	hit, ok := CastNearest(right, g, attrs)
	if !ok || hit.Point.X != 128 {
		t.Errorf("rightward hit = %+v ok=%v, want x=128", hit.Point, ok)
	}

	left := Ray{Origin: Vec{142, 40}, Dir: Vec{-1, 0}, Distance: 4, Steps: 4}
	hit, ok = CastNearest(left, g, attrs)
	if !ok || hit.Point.X != 144 {
		t.Errorf("leftward hit = %+v ok=%v, want x=144", hit.Point, ok)
	}
}

func TestNearestPrefersClosestOverWalkOrder(t *testing.T) {
	g := tilemap.NewGrid(10, 10, 16, 16)
	g.Set(5, 6, 1)
	g.Set(6, 6, 1)
	attrs := tilemap.NewAttrSet(0)
	attrs.Set(1, tilemap.Angle(0))

	// Origin 10px into row 5: row 5's face is 10 away, row 6's face is 6 away.
	ray := Ray{Origin: Vec{100, 90}, Dir: Vec{0, 1}, Distance: 8, Steps: 8}
	hits := Cast(ray, g, attrs)
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2", len(hits))
	}
	hit, _ := Nearest(ray, hits)
	if hit.MapIndex != g.Index(6, 6) {
		t.Errorf("nearest = index %d, want %d", hit.MapIndex, g.Index(6, 6))
	}
}

func TestCastOutsideGrid(t *testing.T) {
	g := floorGrid()
	attrs := tilemap.NewAttrSet(0)
	attrs.Set(1, tilemap.Angle(0))

	ray := Ray{Origin: Vec{-50, 100}, Dir: Vec{-1, 0}, Distance: 16, Steps: 4}
	if hits := Cast(ray, g, attrs); hits != nil {
		t.Errorf("got %v, want no hits", hits)
	}
}
