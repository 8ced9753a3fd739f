package engine

import (
	"errors"
	"fmt"

	"rogue-soccer/internal/domain"
	"rogue-soccer/internal/engine/handlers"
	"rogue-soccer/pkg/logger"

	"github.com/sirupsen/logrus"
)

var (
	// ErrNotYourTurn is returned for intents outside a human turn.
	ErrNotYourTurn = errors.New("not a human turn")
	// ErrBusy is returned while the current player is still carrying out
	// a previous intent.
	ErrBusy = errors.New("current player is busy")
	// ErrUnknownAbility is returned for intents with no ability.
	ErrUnknownAbility = errors.New("unknown ability")
	// ErrSpectator is returned for commands from clients without a player seat.
	ErrSpectator = errors.New("spectators cannot command")
)

// Submit turns a human intent into queued actions for the current player.
// Actions are pushed so that the approach walk runs before the ability:
//
//	WALK          MoveTo(cursor)
//	KICK t        MoveTo(cursor), Kick(t)
//	TAKE_CONTROL  MoveTo(cursor), TakeControl(t)
//	FOUL t        MoveTo(cursor), Foul(t)
//	PASS t        Pass(t, cursor)
//	SKIP          SkipTurn, EndTurn(opponent)
//
// Accepted intents are recorded for replay.
func (m *Match) Submit(intent domain.Intent) error {
	current := m.World.CurrentPlayer()
	if !m.Turns.InTurn() || current == nil || !m.cfg.IsHuman(current.Team) {
		return ErrNotYourTurn
	}
	if !current.IsIdle() {
		return ErrBusy
	}

	if intent.Ability.NeedsTarget() && m.World.GetEntity(intent.Target) == nil {
		return fmt.Errorf("%s %s: %w", intent.Ability, intent.Target, handlers.ErrTargetNotFound)
	}

	q := current.Queue
	switch intent.Ability {
	case domain.AbilityWalk:
		q.Push(domain.MoveTo(intent.Cursor))
	case domain.AbilityKick:
		q.PushAll(domain.Kick(intent.Target), domain.MoveTo(intent.Cursor))
	case domain.AbilityTakeControl:
		q.PushAll(domain.TakeControl(intent.Target), domain.MoveTo(intent.Cursor))
	case domain.AbilityFoul:
		q.PushAll(domain.Foul(intent.Target), domain.MoveTo(intent.Cursor))
	case domain.AbilityPass:
		q.Push(domain.Pass(intent.Target, intent.Cursor))
	case domain.AbilitySkip:
		q.PushAll(domain.EndTurn(current.Team.Opponent()), domain.SkipTurn())
	default:
		return ErrUnknownAbility
	}

	m.Replay.Actions = append(m.Replay.Actions, domain.ReplayAction{
		Tick:    m.tick,
		Ability: intent.Ability,
		Target:  intent.Target,
		Cursor:  intent.Cursor,
	})
	m.idle = 0
	m.menu.dirty = true

	logger.Log.WithFields(logrus.Fields{
		"component": "intents",
		"actor":     current.Name,
		"ability":   intent.Ability.String(),
		"target":    intent.Target,
		"tick":      m.tick,
	}).Debug("intent accepted")
	return nil
}

// SetCursor moves the aiming cursor.
func (m *Match) SetCursor(pos domain.Vec2) {
	if m.cursor == pos {
		return
	}
	m.cursor = pos
	m.menu.dirty = true
}

// Cursor returns the aiming cursor.
func (m *Match) Cursor() domain.Vec2 { return m.cursor }
