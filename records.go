package main

import (
	"fmt"

	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/shared/gamemath"
	"github.com/automoto/bugspy/systems"
	"github.com/spf13/cobra"
)

var recordsCmd = &cobra.Command{
	Use:   "records [event]",
	Short: "Show medal standings and mission results",
	Long: `Display the medal standing and best mission result of every event,
or of one event when named.

Examples:
  bugspy records
  bugspy records "CRAGGY BIATHLON" --store sqlite`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecords,
}

func runRecords(cmd *cobra.Command, args []string) error {
	events := make([]string, 0, len(cfg.Events))
	if len(args) == 1 {
		if _, err := cfg.EventByName(args[0]); err != nil {
			return err
		}
		events = append(events, args[0])
	} else {
		for _, ev := range cfg.Events {
			events = append(events, ev.Name)
		}
	}

	store := openStore()
	defer closeStore(store)
	board := systems.LoadBoard(store)

	out := cmd.OutOrStdout()
	for i, name := range events {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, name)

		standing, err := board.Standing(name)
		if err != nil || len(standing.Records) == 0 {
			fmt.Fprintln(out, "  No medals recorded yet.")
		} else {
			fmt.Fprintf(out, "  %-5s  %-10s  %s\n", "Place", "Nation", "Time")
			for place, r := range standing.Records {
				fmt.Fprintf(out, "  %-5d  %-10s  %s\n", place+1, r.Nation, gamemath.FormatClock(r.Time))
			}
		}

		if m, ok := board.Missions[name]; ok {
			fmt.Fprintf(out, "  Mission: cleared with %s left\n", gamemath.FormatClock(m.TimeRemaining))
		} else {
			fmt.Fprintln(out, "  Mission: not cleared")
		}
	}
	return nil
}
