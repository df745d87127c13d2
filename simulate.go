package main

import (
	"fmt"

	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/scenes"
	"github.com/automoto/bugspy/shared/gamemath"
	"github.com/automoto/bugspy/shared/records"
	"github.com/automoto/bugspy/systems"
	"github.com/spf13/cobra"
)

var (
	flagFrames int
	flagHold   []string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run an event headlessly and print the outcome",
	Long: `Run one event without a window, holding the same inputs every frame,
until the event completes or the frame budget runs out. Records are only
written when --store is given explicitly.

Examples:
  bugspy simulate --hold right
  bugspy simulate --mode infiltration --hold right,fire --frames 1800`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 600, "Frames to run (60 per second)")
	simulateCmd.Flags().StringSliceVar(&flagHold, "hold", nil, "Input codes held every frame: left, right, up, down, jump, fire, confirm, swap")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	held := &systems.HeldInput{}
	for _, name := range flagHold {
		code, ok := cfg.ParseInputCode(name)
		if !ok {
			return fmt.Errorf("unknown input code %q", name)
		}
		held.Codes = append(held.Codes, code)
	}

	var store records.Store
	if cmd.Flags().Changed("store") {
		store = openStore()
		defer closeStore(store)
	}

	params, err := newSession(store)
	if err != nil {
		return err
	}
	systems.SetCueSink(systems.LogSink{})

	state := scenes.NewGameState(params.event, cfg.C.Nation, params.mode, params.board)
	director := scenes.NewDirector(state, held, store)
	scene := director.Scene().(*scenes.EventScene)

	frames := 0
	for frames < flagFrames && director.Kind() == cfg.SceneEvent {
		director.Update()
		frames++
	}

	printSnapshot(cmd, scene.Snapshot(), frames)
	return nil
}

func printSnapshot(cmd *cobra.Command, s scenes.Snapshot, frames int) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s) after %d frames\n", s.Event, s.Mode, frames)
	fmt.Fprintf(out, "  player   %.1f,%.1f %s\n", s.X, s.Y, s.State)

	race := s.Progress[cfg.ModeRace]
	fmt.Fprintf(out, "  race     %s", gamemath.FormatClock(race.Clock))
	if race.Finished {
		if s.MedalPlace >= 0 {
			fmt.Fprintf(out, " finished, place %d", s.MedalPlace+1)
		} else {
			fmt.Fprint(out, " finished, no medal")
		}
	}
	fmt.Fprintln(out)

	mission := s.Progress[cfg.ModeInfiltration]
	fmt.Fprintf(out, "  mission  %s left, %d/%d targets", gamemath.FormatClock(mission.Clock), s.TargetsHit, s.Targets)
	if mission.Finished {
		fmt.Fprint(out, " cleared")
	}
	fmt.Fprintln(out)

	switch {
	case !s.Complete:
		fmt.Fprintln(out, "  outcome  running")
	case s.Success:
		fmt.Fprintln(out, "  outcome  complete")
	default:
		fmt.Fprintln(out, "  outcome  failed")
	}
}
