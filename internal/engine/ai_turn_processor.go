package engine

import (
	"rogue-soccer/internal/systems"
	"rogue-soccer/pkg/logger"

	"github.com/sirupsen/logrus"
)

// processAITurn queues a plan for the current player when it belongs to an
// AI-driven team. A player is planned for once per turn.
func (m *Match) processAITurn() {
	current := m.World.CurrentPlayer()
	if current == nil || m.cfg.IsHuman(current.Team) {
		return
	}
	if current.ID == m.planned || !current.IsIdle() {
		return
	}

	n := systems.PlanTurn(current, m.World)
	m.planned = current.ID

	logger.Log.WithFields(logrus.Fields{
		"component": "ai_turn_processor",
		"actor":     current.Name,
		"actions":   n,
		"tick":      m.tick,
	}).Debug("AI turn queued")
}
