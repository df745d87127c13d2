// Package probe casts short rays across a tile grid and reports every
// registered tile the ray passes through.
package probe

import (
	"math"

	"github.com/automoto/bugspy/shared/tilemap"
)

// Vec is a point or direction in world space.
type Vec struct {
	X, Y float64
}

// Ray is a bounded query. Dir should be a unit vector.
type Ray struct {
	Origin   Vec
	Dir      Vec
	Distance float64
	Steps    int
}

// Hit describes a registered tile crossed by a ray.
type Hit struct {
	TileID int
	// Point is where the ray's line meets the cell face it enters through.
	Point    Vec
	MapIndex int
	// Overlap is the extent of the ray segment inside the cell on each axis.
	Overlap Vec
	Attr    tilemap.TileAttr
}

// Horizontal reports whether the ray's primary axis is x.
func (r Ray) Horizontal() bool {
	return math.Abs(r.Dir.X) >= math.Abs(r.Dir.Y)
}

// End is the far point of the ray.
func (r Ray) End() Vec {
	return Vec{r.Origin.X + r.Dir.X*r.Distance, r.Origin.Y + r.Dir.Y*r.Distance}
}

// Cast walks the ray in Steps increments and returns a hit for every distinct
// cell whose tile id is registered in attrs, in walk order. Unregistered ids
// never produce a hit.
func Cast(ray Ray, grid *tilemap.Grid, attrs *tilemap.AttrSet) []Hit {
	if grid == nil || attrs == nil {
		return nil
	}
	steps := ray.Steps
	if steps < 1 {
		steps = 1
	}

	var hits []Hit
	seen := make(map[int]struct{}, steps+1)
	for i := 0; i <= steps; i++ {
		t := ray.Distance * float64(i) / float64(steps)
		p := Vec{ray.Origin.X + ray.Dir.X*t, ray.Origin.Y + ray.Dir.Y*t}
		row, col := grid.CellAt(p.X, p.Y)
		idx := grid.Index(row, col)
		if idx < 0 {
			continue
		}
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}

		id := grid.Data[idx]
		attr, ok := attrs.Get(id)
		if !ok {
			continue
		}
		hits = append(hits, Hit{
			TileID:   id,
			Point:    entryPoint(ray, grid, row, col),
			MapIndex: idx,
			Overlap:  overlap(ray, grid, row, col),
			Attr:     attr,
		})
	}
	return hits
}

// Nearest picks the hit closest to the ray origin along the primary axis.
// Ties keep the earlier hit in walk order.
func Nearest(ray Ray, hits []Hit) (Hit, bool) {
	if len(hits) == 0 {
		return Hit{}, false
	}
	best := 0
	bestDist := AxisDistance(ray, hits[0])
	for i := 1; i < len(hits); i++ {
		if d := AxisDistance(ray, hits[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return hits[best], true
}

// AxisDistance is |origin - point| along the ray's primary axis.
func AxisDistance(ray Ray, h Hit) float64 {
	if ray.Horizontal() {
		return math.Abs(ray.Origin.X - h.Point.X)
	}
	return math.Abs(ray.Origin.Y - h.Point.Y)
}

// CastNearest is Cast followed by Nearest.
func CastNearest(ray Ray, grid *tilemap.Grid, attrs *tilemap.AttrSet) (Hit, bool) {
	return Nearest(ray, Cast(ray, grid, attrs))
}

func entryPoint(ray Ray, grid *tilemap.Grid, row, col int) Vec {
	left := float64(col) * grid.TileWidth
	top := float64(row) * grid.TileHeight

	if ray.Horizontal() {
		x := left
		if ray.Dir.X < 0 {
			x = left + grid.TileWidth
		}
		y := ray.Origin.Y
		if ray.Dir.X != 0 {
			y += ray.Dir.Y * (x - ray.Origin.X) / ray.Dir.X
		}
		return Vec{x, y}
	}

	y := top
	if ray.Dir.Y < 0 {
		y = top + grid.TileHeight
	}
	x := ray.Origin.X
	if ray.Dir.Y != 0 {
		x += ray.Dir.X * (y - ray.Origin.Y) / ray.Dir.Y
	}
	return Vec{x, y}
}

func overlap(ray Ray, grid *tilemap.Grid, row, col int) Vec {
	end := ray.End()
	left := float64(col) * grid.TileWidth
	top := float64(row) * grid.TileHeight
	return Vec{
		X: span(ray.Origin.X, end.X, left, left+grid.TileWidth),
		Y: span(ray.Origin.Y, end.Y, top, top+grid.TileHeight),
	}
}

func span(a, b, lo, hi float64) float64 {
	if a > b {
		a, b = b, a
	}
	d := math.Min(b, hi) - math.Max(a, lo)
	if d < 0 {
		return 0
	}
	return d
}
