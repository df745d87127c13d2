package systems

import (
	"github.com/automoto/bugspy/components"
	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/systems/factory"
	"github.com/automoto/bugspy/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEvent runs the active ruleset's clock and win check, records results,
// and completes the scene on failure or once both rulesets are won.
func UpdateEvent(ecs *ecs.ECS) {
	game := factory.MustGame(ecs)
	status := components.SceneStatus.Get(game)
	if status.State == components.SceneComplete {
		return
	}
	status.State = components.SceneRunning

	session := components.Session.Get(game)
	event := components.Event.Get(game)
	rules := RulesFor(session.Mode)
	progress := &event.Progress[session.Mode]

	if !progress.Finished {
		progress.Clock += rules.ClockRate() * cfg.World.FrameTime
		if rules.Won(ecs, event) {
			progress.Finished = true
			rules.Record(session.Board, event, session.Nation)
			log.Info("ruleset won", "event", event.Config.Name, "mode", session.Mode, "clock", progress.Clock)
		} else if rules.TimedOut(progress) {
			progress.Clock = 0
			failEvent(session, status, event, "clock ran out")
			return
		}
	}

	if fellOut(ecs) {
		failEvent(session, status, event, "fell out of the level")
		return
	}

	if event.Progress[cfg.ModeRace].Finished && event.Progress[cfg.ModeInfiltration].Finished {
		session.SceneMap().BothComplete = true
		session.LastSuccess = true
		session.LastEvent = event.Config.Name
		session.LastPlace = event.MedalPlace
		status.Complete(true, cfg.SceneResults)
		log.Info("event complete", "event", event.Config.Name)
	}
}

// UpdateTargets counts hit targets into the event.
func UpdateTargets(ecs *ecs.ECS) {
	event := components.Event.Get(factory.MustGame(ecs))
	hit := 0
	tags.Target.Each(ecs.World, func(entry *donburi.Entry) {
		if components.Target.Get(entry).Hit {
			hit++
		}
	})
	event.TargetsHit = hit
}

// fellOut reports whether the player dropped past the bottom of the level.
func fellOut(e *ecs.ECS) bool {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return false
	}
	player, ok := tags.Player.First(e.World)
	if !ok {
		return false
	}
	_, h := components.Level.Get(levelEntry).Bounds()
	return components.Transform.Get(player).Y+cfg.World.FallMargin > h
}

func failEvent(session *components.SessionData, status *components.SceneStatusData, event *components.EventData, reason string) {
	session.LastSuccess = false
	session.LastEvent = event.Config.Name
	session.LastPlace = event.MedalPlace
	status.Complete(false, cfg.SceneResults)
	log.Info("event failed", "event", event.Config.Name, "mode", session.Mode, "reason", reason)
}
