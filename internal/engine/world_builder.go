package engine

import (
	"fmt"
	"math/rand"

	"rogue-soccer/internal/domain"
	"rogue-soccer/pkg/field"
	"rogue-soccer/pkg/logger"

	"github.com/sirupsen/logrus"
)

// NewStandardMatch lines both teams up on the standard pitch. The roster and
// every roll of the match come from one generator seeded with cfg.Seed, so
// equal seeds give equal matches.
func NewStandardMatch(cfg Config) (*Match, error) {
	return NewMatchOn(cfg, field.Standard())
}

// NewMatchOn lines both teams up on f with the standard formation.
func NewMatchOn(cfg Config, f *domain.Field) (*Match, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))

	world, err := field.NewMatch(f, rng).WithStats(cfg.Stats).Build()
	if err != nil {
		return nil, fmt.Errorf("building lineup: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "world_builder",
		"seed":      cfg.Seed,
		"entities":  len(world.Entities),
		"width":     f.Width(),
		"height":    f.Height(),
	}).Info("match lined up")

	return newMatch(cfg, world, rng)
}

// PlayReplay re-simulates a recorded match headlessly. Every recorded intent
// is submitted at the tick it was accepted; the result is the match after
// session.Ticks steps. Seed and human seating come from the recording and
// override cfg.
func PlayReplay(cfg Config, session *domain.ReplaySession) (*Match, error) {
	cfg.Seed = session.Seed
	cfg.HumanTeam, cfg.HasHuman = session.HumanTeam, session.HasHuman
	m, err := NewStandardMatch(cfg)
	if err != nil {
		return nil, err
	}

	next := 0
	for m.tick < session.Ticks {
		for next < len(session.Actions) && session.Actions[next].Tick <= m.tick {
			a := session.Actions[next]
			if err := m.Submit(domain.Intent{Ability: a.Ability, Target: a.Target, Cursor: a.Cursor}); err != nil {
				logger.Log.WithFields(logrus.Fields{
					"component": "replay",
					"tick":      a.Tick,
					"ability":   a.Ability.String(),
				}).WithError(err).Warn("recorded intent rejected")
			}
			next++
		}
		m.Step()
	}
	return m, nil
}
