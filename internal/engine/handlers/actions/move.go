package actions

import (
	"fmt"

	"rogue-soccer/internal/domain"
	"rogue-soccer/internal/engine/handlers"
	"rogue-soccer/internal/systems"
)

// HandleMoveTo plans a path to the destination and attaches it to the actor.
// Walking itself happens in the path follower, one tile per timer period.
func HandleMoveTo(ctx handlers.Context, action domain.Action) (handlers.Result, error) {
	path, err := systems.FindPath(ctx.Actor.Pos, action.Dest, ctx.World.Index)
	if err != nil {
		return handlers.Result{
			Msg:     fmt.Sprintf("%s can't find a way to the target", ctx.Actor.Name),
			MsgType: handlers.LogError,
		}, fmt.Errorf("move %s: %w", ctx.Actor.ID, err)
	}

	ctx.Actor.Velocity = domain.Vec2{}
	if len(path) > 0 {
		ctx.Actor.Path = domain.NewPath(path, ctx.PathStep)
	}
	return handlers.EmptyResult(), nil
}

// HandleDefendGoal sends the actor to a point in front of its own goal, on
// the line from the goal centre toward the ball.
func HandleDefendGoal(ctx handlers.Context) (handlers.Result, error) {
	centre, ok := ctx.World.GoalCentroid(ctx.Actor.Team)
	if !ok {
		return handlers.Result{}, fmt.Errorf("defend goal: team %s has no goal", ctx.Actor.Team)
	}

	var toward domain.Vec2
	if ball := ctx.World.Ball(); ball != nil {
		toward = ball.Pos.Sub(centre)
	} else {
		toward = centre.Scale(-1)
	}
	dest := centre.Add(toward.NormalizeOrZero().Scale(DefendDistance))

	ctx.Actor.Queue.Push(domain.MoveTo(dest))
	return handlers.Result{
		Msg:     fmt.Sprintf("%s moves to defend the goal", ctx.Actor.Name),
		MsgType: handlers.LogInfo,
	}, nil
}

// DefendDistance is how far in front of the goal centre a defender stands.
const DefendDistance = 7 * domain.TileSize

// HandleAdvance walks the actor toward the tile just in front of the
// opponent goal.
func HandleAdvance(ctx handlers.Context) (handlers.Result, error) {
	goal, ok := ctx.World.ClosestGoalTile(ctx.Actor.Pos, ctx.Actor.Team.Opponent())
	if !ok {
		return handlers.Result{}, fmt.Errorf("advance: no goal for %s", ctx.Actor.Team.Opponent())
	}

	ctx.Actor.Queue.Push(domain.MoveTo(domain.ToWorld(inFrontOf(goal))))
	return handlers.Result{
		Msg:     fmt.Sprintf("%s advances", ctx.Actor.Name),
		MsgType: handlers.LogInfo,
	}, nil
}

// inFrontOf returns the tile one step from a goal mouth toward the centre line.
func inFrontOf(goal domain.Tile) domain.Tile {
	switch {
	case goal.X > 0:
		return goal.Shift(-1, 0)
	case goal.X < 0:
		return goal.Shift(1, 0)
	}
	return goal
}
