package components

import (
	cfg "github.com/automoto/bugspy/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an input code
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's decoded input codes.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.InputCount]bool
	Previous [cfg.InputCount]bool
}

var Input = donburi.NewComponentType[InputData]()
