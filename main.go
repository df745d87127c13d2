// bugspy is a two-mode biathlon platformer: every event can be skied as a
// race or played as an infiltration mission over the same level.
//
// Usage:
//
//	bugspy                 - Play, starting at --event
//	bugspy simulate        - Run an event headlessly and print the outcome
//	bugspy records [event] - Show medal standings and mission results
package main

import (
	"fmt"
	"os"

	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/shared/records"
	"github.com/automoto/bugspy/systems"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagRules    string
	flagEvent    string
	flagMode     string
	flagNation   string
	flagStore    string
	flagDBPath   string
	flagDebug    bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bugspy",
	Short: "Bugspy - a biathlon for insects",
	Long: `Bugspy runs each event as a race to the finish line or as an
infiltration mission against the clock. Swap between the two at any time;
an event is complete once both are won.

Examples:
  bugspy
  bugspy --event "DOWNHILL BIATHLON" --mode infiltration
  bugspy simulate --frames 600 --hold right
  bugspy records`,
	PersistentPreRunE: setup,
	RunE:              runPlay,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRules, "rules", "", "Rules override file (YAML)")
	rootCmd.PersistentFlags().StringVar(&flagEvent, "event", "", "Event to start at (default: first event)")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", cfg.ModeRace.String(), "Starting mode: race or infiltration")
	rootCmd.PersistentFlags().StringVar(&flagNation, "nation", "", "Nation credited for race finishes")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", systems.StoreGData, "Records store: gdata, sqlite or none")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bugspy/records.db", "Path to the sqlite records database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Draw probes and colliders, log at debug level")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(recordsCmd)
}

// setup installs the logger and applies the rules file and flags over the
// configured defaults.
func setup(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bugspy",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	if flagDebug {
		level = log.DebugLevel
		cfg.Debug.ShowProbes = true
	}
	logger.SetLevel(level)
	log.SetDefault(logger)

	path, err := cfg.LoadRules(flagRules)
	if err != nil {
		if flagRules != "" {
			return err
		}
		log.Warn("Could not load rules, using defaults", "error", err)
	} else if path != "" {
		log.Info("Loaded rules", "path", path)
	}

	if flagNation != "" {
		cfg.C.Nation = flagNation
	}
	if flagEvent == "" && len(cfg.Events) > 0 {
		flagEvent = cfg.Events[0].Name
	}
	return nil
}

// newSession validates the flags and builds the starting state from the
// store's board.
func newSession(store records.Store) (*sessionParams, error) {
	if err := cfg.ValidateEvent(flagEvent); err != nil {
		return nil, err
	}
	mode, err := cfg.ParseMode(flagMode)
	if err != nil {
		return nil, err
	}
	return &sessionParams{
		event: flagEvent,
		mode:  mode,
		board: systems.LoadBoard(store),
	}, nil
}

type sessionParams struct {
	event string
	mode  cfg.Mode
	board *records.Board
}

// openStore opens the --store backend. A store that cannot be opened is
// logged and the session runs without persistence.
func openStore() records.Store {
	store, err := systems.OpenStore(flagStore, flagDBPath)
	if err != nil {
		log.Warn("Could not open records store", "store", flagStore, "error", err)
		return nil
	}
	return store
}

func closeStore(store records.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		log.Warn("Could not close records store", "error", err)
	}
}
