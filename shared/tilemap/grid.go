// Package tilemap holds the tile grid and the tile attribute registry used by
// collision queries. It has no dependencies on ebitengine, donburi, or resolv.
package tilemap

// Empty marks a grid cell with no tile.
const Empty = -1

// Grid is a row-major tile map with physical tile dimensions.
type Grid struct {
	Rows       int
	Columns    int
	TileWidth  float64
	TileHeight float64
	Data       []int
}

// NewGrid returns a grid with every cell set to Empty.
func NewGrid(rows, columns int, tileWidth, tileHeight float64) *Grid {
	data := make([]int, rows*columns)
	for i := range data {
		data[i] = Empty
	}
	return &Grid{
		Rows:       rows,
		Columns:    columns,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Data:       data,
	}
}

// Index returns the linear index of (row, col), or -1 when out of range.
func (g *Grid) Index(row, col int) int {
	if row < 0 || col < 0 || row >= g.Rows || col >= g.Columns {
		return -1
	}
	return row*g.Columns + col
}

// At returns the tile id at (row, col). Out of range cells are Empty.
func (g *Grid) At(row, col int) int {
	i := g.Index(row, col)
	if i < 0 {
		return Empty
	}
	return g.Data[i]
}

// Set writes a tile id. Out of range writes are ignored.
func (g *Grid) Set(row, col, id int) {
	if i := g.Index(row, col); i >= 0 {
		g.Data[i] = id
	}
}

// Fill sets every cell in the inclusive row/column rectangle.
func (g *Grid) Fill(row0, col0, row1, col1, id int) {
	for r := row0; r <= row1; r++ {
		for c := col0; c <= col1; c++ {
			g.Set(r, c, id)
		}
	}
}

// CellAt returns the row and column containing a world point.
func (g *Grid) CellAt(x, y float64) (row, col int) {
	return floorDiv(y, g.TileHeight), floorDiv(x, g.TileWidth)
}

// TileAtIndex returns the tile id stored at a linear index.
func (g *Grid) TileAtIndex(i int) int {
	if i < 0 || i >= len(g.Data) {
		return Empty
	}
	return g.Data[i]
}

// PixelWidth is the world width of the grid.
func (g *Grid) PixelWidth() float64 {
	return float64(g.Columns) * g.TileWidth
}

// PixelHeight is the world height of the grid.
func (g *Grid) PixelHeight() float64 {
	return float64(g.Rows) * g.TileHeight
}

func floorDiv(v, size float64) int {
	q := v / size
	i := int(q)
	if q < 0 && float64(i) != q {
		i--
	}
	return i
}
