package engine

import (
	"fmt"

	"rogue-soccer/internal/domain"
	"rogue-soccer/internal/engine/handlers"
	"rogue-soccer/pkg/logger"

	"github.com/sirupsen/logrus"
)

// processEvent applies an event returned by a handler.
func (m *Match) processEvent(actor *domain.Entity, event *handlers.TurnEvent) {
	// Only the player holding the turn can hand it over.
	if !actor.IsCurrent {
		logger.Log.WithFields(logrus.Fields{
			"component": "event_processor",
			"actor":     actor.Name,
		}).Debug("end of turn from a player without the turn ignored")
		return
	}
	m.endTurn(actor, event.NextTeam)
}

// endTurn retires actor for this round and announces the next team.
func (m *Match) endTurn(actor *domain.Entity, next domain.Team) {
	actor.IsCurrent = false
	actor.HasActed = true
	actor.Path = nil
	if actor.Queue != nil {
		actor.Queue.Clear()
	}
	m.startTurn(next)
}

// startTurn raises the banner for team and designates its current player.
func (m *Match) startTurn(team domain.Team) {
	current := m.Turns.StartBanner(m.World, team)
	m.planned = domain.NoEntity
	m.idle = 0
	m.menu.dirty = true
	m.metrics.turn(team)

	m.Log.AddLog(fmt.Sprintf("%s team's turn", team), handlers.LogTurn)

	fields := logrus.Fields{
		"component": "event_processor",
		"team":      team.String(),
		"tick":      m.tick,
	}
	if current != nil {
		fields["current"] = current.Name
	}
	logger.Log.WithFields(fields).Info("turn started")
}
