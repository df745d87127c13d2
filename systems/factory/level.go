package factory

import (
	"github.com/automoto/bugspy/archetypes"
	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/shared/leveldata"
	"github.com/automoto/bugspy/shared/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel installs the collision world: the level's grid plus a fresh
// tile attribute registry for the given mode.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level, mode cfg.Mode) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{
		Level: level,
		Grid:  level.Grid,
		Attrs: NewAttrSet(mode),
	})
	return entry
}

// NewAttrSet builds the registry from the configured tile attributes and
// applies the mode-only hazard tile.
func NewAttrSet(mode cfg.Mode) *tilemap.AttrSet {
	attrs := tilemap.NewAttrSet(cfg.TileAttrs.TileSetID)
	for id, angle := range cfg.TileAttrs.Angles {
		attrs.Set(id, tilemap.Angle(angle))
	}
	ApplyHazard(attrs, mode)
	return attrs
}

// ApplyHazard inserts the hazard tile in the hazard mode and removes it
// otherwise.
func ApplyHazard(attrs *tilemap.AttrSet, mode cfg.Mode) {
	if mode == cfg.Overlay.HazardMode {
		attrs.Set(cfg.Overlay.HazardTile, tilemap.Angle(0))
		return
	}
	attrs.Remove(cfg.Overlay.HazardTile)
}
