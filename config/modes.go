package config

import (
	"fmt"
	"strings"
)

// Mode selects which ruleset runs over the shared level.
type Mode int

const (
	ModeRace Mode = iota
	ModeInfiltration
	ModeCount // Must be last - used for array sizing
)

func (m Mode) String() string {
	switch m {
	case ModeRace:
		return "race"
	case ModeInfiltration:
		return "infiltration"
	}
	return "unknown"
}

// Other returns the opposite ruleset.
func (m Mode) Other() Mode {
	if m == ModeRace {
		return ModeInfiltration
	}
	return ModeRace
}

// ParseMode accepts the names returned by String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "race":
		return ModeRace, nil
	case "infiltration", "spy":
		return ModeInfiltration, nil
	}
	return ModeRace, fmt.Errorf("config: unknown mode %q", s)
}
