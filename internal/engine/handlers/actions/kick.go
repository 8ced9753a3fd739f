package actions

import (
	"fmt"

	"rogue-soccer/internal/domain"
	"rogue-soccer/internal/engine/handlers"
	"rogue-soccer/internal/systems"
)

// HandleKick launches the target with the actor's velocity times its kick
// strength. A person may evade with probability equal to its defense.
func HandleKick(ctx handlers.Context, action domain.Action, target *domain.Entity) (handlers.Result, error) {
	if target.IsPerson() && target.Stats != nil && ctx.Rng.Float64() < target.Stats.Defense {
		return handlers.Result{
			Msg:     fmt.Sprintf("%s tried to kick %s, but %s evaded", ctx.Actor.Name, target.Name, target.Name),
			MsgType: handlers.LogKick,
		}, nil
	}

	strength := 0.0
	if ctx.Actor.Stats != nil {
		strength = ctx.Actor.Stats.KickStrength
	}

	ctx.World.ReleaseHolder(target)
	target.Kicked = &domain.KickedComponent{Velocity: ctx.Actor.Velocity.Scale(strength)}

	return handlers.Result{
		Msg:     fmt.Sprintf("%s kicked %s", ctx.Actor.Name, target.DisplayName()),
		MsgType: handlers.LogKick,
	}, nil
}

// HandlePass sends the held target toward action.Dest.
func HandlePass(ctx handlers.Context, action domain.Action, target *domain.Entity) (handlers.Result, error) {
	if ctx.Actor.Claimed != target.ID {
		return handlers.Result{
			Msg:     fmt.Sprintf("%s has nothing to pass", ctx.Actor.Name),
			MsgType: handlers.LogError,
		}, fmt.Errorf("pass: %s does not hold %s", ctx.Actor.ID, target.ID)
	}

	skill := 0.0
	if ctx.Actor.Stats != nil {
		skill = ctx.Actor.Stats.PassingSkill
	}
	velocity := systems.KickVelocity(skill, ctx.Actor.Pos, action.Dest, ctx.FixedStep, ctx.Actor.Velocity)

	ctx.World.ReleaseHolder(target)
	target.Kicked = &domain.KickedComponent{Velocity: velocity}

	return handlers.Result{
		Msg:     fmt.Sprintf("%s is passing the ball", ctx.Actor.Name),
		MsgType: handlers.LogPass,
	}, nil
}

// HandlePassDown passes the held ball at the opponent goal.
func HandlePassDown(ctx handlers.Context) (handlers.Result, error) {
	ball := ctx.World.Ball()
	if ball == nil || ball.ClaimedBy != ctx.Actor.ID {
		return handlers.Result{}, fmt.Errorf("pass down: %s does not hold the ball", ctx.Actor.ID)
	}
	goal, ok := ctx.World.ClosestGoalTile(ctx.Actor.Pos, ctx.Actor.Team.Opponent())
	if !ok {
		return handlers.Result{}, fmt.Errorf("pass down: no goal for %s", ctx.Actor.Team.Opponent())
	}

	ctx.Actor.Queue.Push(domain.Pass(ball.ID, domain.ToWorld(goal)))
	return handlers.EmptyResult(), nil
}
