package tilemap

import "testing"

func TestNewGridIsEmpty(t *testing.T) {
	g := NewGrid(3, 4, 16, 16)
	for i, id := range g.Data {
		if id != Empty {
			t.Fatalf("cell %d = %d, want Empty", i, id)
		}
	}
	if g.PixelWidth() != 64 || g.PixelHeight() != 48 {
		t.Errorf("pixel size = %vx%v, want 64x48", g.PixelWidth(), g.PixelHeight())
	}
}

func TestGridAddressing(t *testing.T) {
	g := NewGrid(4, 5, 16, 16)
	g.Set(2, 3, 7)

	if got := g.At(2, 3); got != 7 {
		t.Errorf("At(2,3) = %d, want 7", got)
	}
	if got := g.Index(2, 3); got != 13 {
		t.Errorf("Index(2,3) = %d, want 13", got)
	}
	if got := g.TileAtIndex(13); got != 7 {
		t.Errorf("TileAtIndex(13) = %d, want 7", got)
	}
	if got := g.At(-1, 0); got != Empty {
		t.Errorf("At(-1,0) = %d, want Empty", got)
	}
	if got := g.At(4, 0); got != Empty {
		t.Errorf("At(4,0) = %d, want Empty", got)
	}
}

func TestCellAt(t *testing.T) {
	g := NewGrid(10, 10, 16, 16)
	tests := []struct {
		x, y     float64
		row, col int
	}{
		{0, 0, 0, 0},
		{15.9, 15.9, 0, 0},
		{16, 16, 1, 1},
		{100, 84, 5, 6},
		{-0.5, -16, -1, -1},
	}
	for _, tt := range tests {
		row, col := g.CellAt(tt.x, tt.y)
		if row != tt.row || col != tt.col {
			t.Errorf("CellAt(%v,%v) = (%d,%d), want (%d,%d)", tt.x, tt.y, row, col, tt.row, tt.col)
		}
	}
}

func TestFill(t *testing.T) {
	g := NewGrid(4, 4, 16, 16)
	g.Fill(2, 0, 3, 3, 1)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			want := Empty
			if r >= 2 {
				want = 1
			}
			if got := g.At(r, c); got != want {
				t.Errorf("At(%d,%d) = %d, want %d", r, c, got, want)
			}
		}
	}
}
