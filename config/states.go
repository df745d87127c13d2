package config

// StateID is the player's locomotion state.
type StateID int

const (
	Standing StateID = iota
	Walking
	Jumping
)

func (s StateID) String() string {
	switch s {
	case Standing:
		return "standing"
	case Walking:
		return "walking"
	case Jumping:
		return "jumping"
	}
	return "unknown"
}

// SceneKind identifies a scene the director can run.
type SceneKind int

const (
	SceneEvent SceneKind = iota
	SceneResults
	SceneVictory
)

func (k SceneKind) String() string {
	switch k {
	case SceneEvent:
		return "event"
	case SceneResults:
		return "results"
	case SceneVictory:
		return "victory"
	}
	return "unknown"
}
