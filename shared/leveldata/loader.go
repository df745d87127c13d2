package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/bugspy/shared/tilemap"
	"github.com/lafriks/go-tiled"
)

const (
	// TileLayer is the tile layer that feeds the collision grid.
	TileLayer = "tiles"
	// EntityLayer is the object group holding placement records.
	EntityLayer = "entities"
)

var ErrNoTileLayer = errors.New("leveldata: level has no tile layer")

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("leveldata: load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != TileLayer {
			continue
		}
		grid := tilemap.NewGrid(levelMap.Height, levelMap.Width,
			float64(levelMap.TileWidth), float64(levelMap.TileHeight))
		for i, tile := range layer.Tiles {
			if i >= len(grid.Data) {
				break
			}
			if tile.IsNil() {
				continue
			}
			grid.Data[i] = int(tile.ID)
		}
		level.Grid = grid
		break
	}
	if level.Grid == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoTileLayer, tmxPath)
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != EntityLayer {
			continue
		}
		for _, o := range og.Objects {
			kind := o.Class
			if kind == "" {
				kind = o.Type //nolint:staticcheck // TMX uses type= attribute
			}
			p := Placement{
				Type:   kind,
				Name:   o.Name,
				Params: make(map[string]string, len(o.Properties)+2),
			}
			p.Params["scene_x"] = strconv.FormatFloat(o.X, 'f', -1, 64)
			p.Params["scene_y"] = strconv.FormatFloat(o.Y, 'f', -1, 64)
			// Explicit properties win over the object's own position.
			for _, prop := range o.Properties {
				p.Params[prop.Name] = prop.Value
			}
			level.Placements = append(level.Placements, p)
		}
	}

	return level, nil
}

// LoadAll discovers all .tmx files in dir within fsys and returns them keyed
// by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Level, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("leveldata: glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("leveldata: no .tmx files found in %s", dir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
