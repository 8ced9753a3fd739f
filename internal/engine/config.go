package engine

import (
	"time"

	"rogue-soccer/internal/domain"
)

// Config holds the match parameters.
type Config struct {
	// Seed drives the roster names and every random roll of the match.
	Seed int64

	FixedStep      float64 // seconds per simulation tick
	PathStep       float64 // seconds per walked tile
	BannerDuration float64 // seconds the turn banner stays up
	TurnTimeout    float64 // seconds a human may idle before the turn is ended

	// HumanTeam is driven by intents when HasHuman is set; otherwise both
	// teams are driven by the AI.
	HumanTeam domain.Team
	HasHuman  bool

	// MaxTicks stops headless runs; 0 means no limit.
	MaxTicks int

	Stats domain.StatDefaults
}

// NewConfig returns the defaults with a random seed.
func NewConfig() Config {
	return Config{
		Seed:           time.Now().UnixNano(),
		FixedStep:      1.0 / 64,
		PathStep:       0.25,
		BannerDuration: 1.0,
		TurnTimeout:    60,
		HumanTeam:      domain.TeamPlayer,
		HasHuman:       true,
		Stats:          domain.DefaultStats(),
	}
}

// IsHuman reports whether team is driven by intents.
func (c Config) IsHuman(team domain.Team) bool {
	return c.HasHuman && c.HumanTeam == team
}
