package components

import (
	cfg "github.com/automoto/bugspy/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	State      cfg.StateID
	Facing     float64 // cfg.DirectionLeft or cfg.DirectionRight
	Finished   bool    // Crossed the race finish line
	Frame      int     // Animation frame cursor
	FrameTick  int
	SpriteSlot int
}

var Player = donburi.NewComponentType[PlayerData]()
