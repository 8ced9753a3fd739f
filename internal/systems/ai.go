package systems

import (
	"rogue-soccer/internal/domain"
	"rogue-soccer/pkg/logger"

	"github.com/sirupsen/logrus"
)

// PlanTurn fills an idle AI actor's queue with its plan for this turn.
// Plans are pushed in reverse order and always finish with
// EndTurn(opponent), so the turn hands over once the plan has run.
//
//   - Holding the ball: everyone but the attacker passes it down the pitch.
//   - Goalkeeper without the ball: falls back toward the own goal.
//   - Attacker without the ball: advances when a teammate has it, otherwise
//     runs at the ball (or its holder) and takes control.
//   - Anyone left without a plan skips the turn.
//
// It returns the number of actions queued.
func PlanTurn(actor *domain.Entity, world *domain.World) int {
	if actor.Queue == nil {
		return 0
	}
	endTurn := domain.EndTurn(actor.Team.Opponent())
	ball := world.Ball()

	aiLog := logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"actor":     actor.Name,
		"class":     actor.Class.String(),
	})

	if !actor.Claimed.IsZero() {
		if actor.Class != domain.ClassAttacker {
			actor.Queue.PushAll(endTurn, domain.PassDown())
		}
	} else {
		switch actor.Class {
		case domain.ClassGoalkeeper:
			actor.Queue.PushAll(endTurn, domain.DefendGoal())

		case domain.ClassAttacker:
			if ball == nil {
				break
			}
			if holder := world.GetEntity(ball.ClaimedBy); holder != nil {
				if holder.Team == actor.Team {
					actor.Queue.PushAll(endTurn, domain.Advance())
				} else {
					actor.Queue.PushAll(endTurn, domain.TakeControl(ball.ID), domain.MoveTo(holder.Pos))
				}
			} else {
				actor.Queue.PushAll(endTurn, domain.TakeControl(ball.ID), domain.MoveTo(ball.Pos))
			}
		}
	}

	if actor.Queue.IsEmpty() {
		actor.Queue.PushAll(endTurn, domain.SkipTurn())
	}

	aiLog.WithField("plan", actor.Queue.Snapshot()).Debug("turn planned")
	return actor.Queue.Len()
}
