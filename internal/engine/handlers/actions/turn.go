package actions

import (
	"fmt"

	"rogue-soccer/internal/domain"
	"rogue-soccer/internal/engine/handlers"
)

func HandleSkipTurn(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     fmt.Sprintf("%s is skipping their turn", ctx.Actor.Name),
		MsgType: handlers.LogTurn,
	}, nil
}

// HandleEndTurn asks the engine to hand the turn to action.NextTeam.
func HandleEndTurn(ctx handlers.Context, action domain.Action) (handlers.Result, error) {
	return handlers.Result{Event: &handlers.TurnEvent{NextTeam: action.NextTeam}}, nil
}
