package components

import (
	cfg "github.com/automoto/bugspy/config"
	"github.com/yohamta/donburi"
)

// SceneState tracks a scene through its lifecycle.
type SceneState int

const (
	SceneInitial SceneState = iota
	SceneRunning
	SceneComplete
)

// SceneStatusData is how a scene reports completion to the director.
type SceneStatusData struct {
	State   SceneState
	Success bool
	Next    cfg.SceneKind
}

// Complete marks the scene done with an outcome and destination.
func (s *SceneStatusData) Complete(success bool, next cfg.SceneKind) {
	s.State = SceneComplete
	s.Success = success
	s.Next = next
}

var SceneStatus = donburi.NewComponentType[SceneStatusData]()
