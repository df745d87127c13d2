package gamemath

// TileSpan is the number of sub-tile columns in a height profile.
const TileSpan = 16

// SolidHeight is the surface height reported by a full tile.
const SolidHeight = 16

// Height profiles per slope category, indexed by the x offset inside the tile.
// Each value is the surface height measured up from the tile's bottom edge.
var surfaceHeights = [5][TileSpan]float64{
	{16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13, 14, 14, 15, 15},
	{0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7},
	{13, 13, 14, 14, 14, 14, 14, 14, 14, 14, 15, 15, 15, 16, 16, 16},
}

// Velocity multipliers per slope category.
var surfaceAccel = [5]float64{0, 0.5, 0.25, 0.25, 0}

// SurfaceHeight returns the walkable height of a tile with the given angle at
// world x. Negative angles use the mirrored profile.
func SurfaceHeight(x float64, angle int8) float64 {
	cat := category(angle)
	if cat >= len(surfaceHeights) {
		return SolidHeight
	}
	i := subTile(x)
	if angle < 0 {
		i = TileSpan - 1 - i
	}
	return surfaceHeights[cat][i]
}

// SurfaceAccel returns the horizontal damping multiplier for a surface.
// Moving downhill yields a value above 1, uphill below 1, flat exactly 1.
func SurfaceAccel(vx float64, angle int8) float64 {
	cat := category(angle)
	if cat >= len(surfaceAccel) {
		return 1
	}
	return Sign(vx)*-angleSign(angle)*surfaceAccel[cat] + 1
}

func category(angle int8) int {
	if angle < 0 {
		return int(-angle)
	}
	return int(angle)
}

func angleSign(angle int8) float64 {
	switch {
	case angle > 0:
		return 1
	case angle < 0:
		return -1
	}
	return 0
}

func subTile(x float64) int {
	i := int(Mod(x, TileSpan))
	if i >= TileSpan {
		i = TileSpan - 1
	}
	return i
}
