// Package leveldata parses TMX levels into a collision grid and placement
// records. It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

import (
	"strconv"

	"github.com/automoto/bugspy/shared/tilemap"
)

// Level is the parsed content of one TMX file.
type Level struct {
	Name       string
	Grid       *tilemap.Grid
	Placements []Placement
	Width      int // pixels
	Height     int // pixels
}

// Placement is a named entity type with free-form parameters.
type Placement struct {
	Type   string
	Name   string
	Params map[string]string
}

// Float reads a numeric parameter, falling back when absent or malformed.
func (p Placement) Float(key string, fallback float64) float64 {
	v, ok := p.Params[key]
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// String reads a parameter, falling back when absent.
func (p Placement) String(key, fallback string) string {
	if v, ok := p.Params[key]; ok {
		return v
	}
	return fallback
}

// PlacementsOf returns the placements of one entity type in file order.
func (l *Level) PlacementsOf(kind string) []Placement {
	var out []Placement
	for _, p := range l.Placements {
		if p.Type == kind {
			out = append(out, p)
		}
	}
	return out
}
