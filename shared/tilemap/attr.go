package tilemap

// TileAttr classifies a collidable tile. Angle magnitude (0-4) selects the
// slope category and its sign selects the rising direction.
type TileAttr struct {
	Angle int8
}

// Angle builds a TileAttr for a slope angle.
func Angle(a int8) TileAttr {
	return TileAttr{Angle: a}
}

// Category returns the slope category index.
func (a TileAttr) Category() int {
	if a.Angle < 0 {
		return int(-a.Angle)
	}
	return int(a.Angle)
}

// AttrSet registers which tile ids of one tile set are collidable.
// Ids without an entry are never reported by probes.
type AttrSet struct {
	TileSetID int
	Tiles     map[int]TileAttr
}

// NewAttrSet returns an empty registry for a tile set.
func NewAttrSet(tileSetID int) *AttrSet {
	return &AttrSet{
		TileSetID: tileSetID,
		Tiles:     make(map[int]TileAttr),
	}
}

// Set registers or replaces a tile's attribute.
func (s *AttrSet) Set(id int, attr TileAttr) {
	s.Tiles[id] = attr
}

// Remove unregisters a tile id.
func (s *AttrSet) Remove(id int) {
	delete(s.Tiles, id)
}

// Get looks up a tile id.
func (s *AttrSet) Get(id int) (TileAttr, bool) {
	if s == nil || id == Empty {
		return TileAttr{}, false
	}
	a, ok := s.Tiles[id]
	return a, ok
}

// Has reports whether a tile id is collidable.
func (s *AttrSet) Has(id int) bool {
	_, ok := s.Get(id)
	return ok
}
