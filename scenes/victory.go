package scenes

import cfg "github.com/automoto/bugspy/config"

// VictoryScene is the results screen shown once every event is complete.
// Confirming it starts a new session.
type VictoryScene struct {
	*ResultsScene
}

func NewVictoryScene(d *Director) *VictoryScene {
	return &VictoryScene{ResultsScene: &ResultsScene{director: d, kind: cfg.SceneVictory}}
}
