package actions

import (
	"fmt"

	"rogue-soccer/internal/domain"
	"rogue-soccer/internal/engine/handlers"
)

// HandleTakeControl links actor and target; the target then follows the
// actor around until released.
func HandleTakeControl(ctx handlers.Context, action domain.Action, target *domain.Entity) (handlers.Result, error) {
	ctx.World.Claim(ctx.Actor, target)
	return handlers.Result{
		Msg:     fmt.Sprintf("%s takes control of %s", ctx.Actor.Name, target.DisplayName()),
		MsgType: handlers.LogInfo,
	}, nil
}

// HandleFoul has no effect yet.
func HandleFoul(ctx handlers.Context, action domain.Action, target *domain.Entity) (handlers.Result, error) {
	return handlers.EmptyResult(), nil
}
