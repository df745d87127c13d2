package systems

import (
	"math"

	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/shared/records"
	"github.com/automoto/bugspy/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Ruleset is the per-mode behaviour layered over the shared locomotion.
type Ruleset interface {
	Mode() cfg.Mode
	// MoveSpeed is the horizontal target speed for this frame.
	MoveSpeed(fireHeld bool) float64
	// Fire runs when Fire is held.
	Fire(e *ecs.ECS, player *donburi.Entry)
	JumpSound() cfg.SoundID
	// ClockRate is the per-second change of the event clock.
	ClockRate() float64
	Won(e *ecs.ECS, event *components.EventData) bool
	TimedOut(progress *components.ProgressData) bool
	// Record stores the result of a won run on the board.
	Record(board *records.Board, event *components.EventData, nation string)
}

var rulesets = [cfg.ModeCount]Ruleset{
	cfg.ModeRace:         RaceRules{},
	cfg.ModeInfiltration: InfiltrationRules{},
}

// RulesFor returns the ruleset of a mode.
func RulesFor(m cfg.Mode) Ruleset {
	if m < 0 || m >= cfg.ModeCount {
		return rulesets[cfg.ModeRace]
	}
	return rulesets[m]
}

// RaceRules: the clock counts up, Fire runs, the finish line wins.
type RaceRules struct{}

func (RaceRules) Mode() cfg.Mode { return cfg.ModeRace }

func (RaceRules) MoveSpeed(fireHeld bool) float64 {
	if fireHeld {
		return cfg.Player.RunSpeed
	}
	return cfg.Player.WalkSpeed
}

func (RaceRules) Fire(*ecs.ECS, *donburi.Entry) {}

func (RaceRules) JumpSound() cfg.SoundID { return cfg.SoundJumpRace }

func (RaceRules) ClockRate() float64 { return 1 }

func (RaceRules) Won(e *ecs.ECS, event *components.EventData) bool {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return false
	}
	player := components.Player.Get(entry)
	if !player.Finished {
		player.Finished = AtFinishLine(components.Transform.Get(entry), event.Config)
	}
	return player.Finished
}

func (RaceRules) TimedOut(*components.ProgressData) bool { return false }

func (RaceRules) Record(board *records.Board, event *components.EventData, nation string) {
	event.MedalPlace = board.RecordRace(records.RaceRecord{
		Nation: nation,
		Event:  event.Config.Name,
		Time:   event.Progress[cfg.ModeRace].Clock,
	})
}

// AtFinishLine reports whether a transform is inside the finish tolerance box.
func AtFinishLine(t *components.TransformData, ev cfg.EventConfig) bool {
	return math.Abs(t.X-ev.FinishX) < cfg.Finish.ToleranceX &&
		math.Abs(t.Y-ev.FinishY) < cfg.Finish.ToleranceY
}

// InfiltrationRules: the clock counts down, Fire shoots, hitting every target
// wins.
type InfiltrationRules struct{}

func (InfiltrationRules) Mode() cfg.Mode { return cfg.ModeInfiltration }

func (InfiltrationRules) MoveSpeed(bool) float64 { return cfg.Player.WalkSpeed }

func (InfiltrationRules) Fire(e *ecs.ECS, player *donburi.Entry) {
	FireLauncher(e, player)
}

func (InfiltrationRules) JumpSound() cfg.SoundID { return cfg.SoundJumpSpy }

func (InfiltrationRules) ClockRate() float64 { return -1 }

func (InfiltrationRules) Won(_ *ecs.ECS, event *components.EventData) bool {
	return event.TargetsHit >= event.TargetsTotal
}

func (InfiltrationRules) TimedOut(progress *components.ProgressData) bool {
	return progress.Clock <= 0
}

func (InfiltrationRules) Record(board *records.Board, event *components.EventData, _ string) {
	board.RecordMission(records.MissionRecord{
		Event:         event.Config.Name,
		TimeRemaining: event.Progress[cfg.ModeInfiltration].Clock,
	})
}
