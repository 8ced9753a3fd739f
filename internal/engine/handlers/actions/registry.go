package actions

import (
	"rogue-soccer/internal/domain"
	"rogue-soccer/internal/engine/handlers"
)

// Registry maps every queued action type to its handler.
func Registry() map[domain.ActionType]handlers.HandlerFunc {
	return map[domain.ActionType]handlers.HandlerFunc{
		domain.ActionMoveTo:      HandleMoveTo,
		domain.ActionKick:        handlers.WithReach(HandleKick),
		domain.ActionTakeControl: handlers.WithReach(HandleTakeControl),
		domain.ActionFoul:        handlers.WithReach(HandleFoul),
		domain.ActionPass:        handlers.WithTarget(HandlePass),
		domain.ActionDefendGoal:  handlers.WithEmptyPayload(HandleDefendGoal),
		domain.ActionSkipTurn:    handlers.WithEmptyPayload(HandleSkipTurn),
		domain.ActionEndTurn:     HandleEndTurn,
		domain.ActionAdvance:     handlers.WithEmptyPayload(HandleAdvance),
		domain.ActionPassDown:    handlers.WithEmptyPayload(HandlePassDown),
	}
}
