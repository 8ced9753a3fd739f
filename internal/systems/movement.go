package systems

import (
	"rogue-soccer/internal/domain"
)

// StepResult describes what one path-follow tick did to a walker.
type StepResult struct {
	Moved     bool        // the walker advanced one tile
	From, To  domain.Tile // valid when Moved
	Finished  bool        // the path was removed
	Exhausted bool        // AP hit zero; the queue was replaced by EndTurn
}

// FollowPath ticks the walker's step timer and, when it fires, moves it onto
// the next tile of its path.
//
// Each step costs one AP and adds the position delta to Velocity, so a kick
// made right after a walk inherits its direction. When the path runs out or
// AP reaches zero the path is removed; on zero AP the remaining plan is
// dropped and EndTurn(opponent) becomes the only queued action.
func FollowPath(e *domain.Entity, dt float64) StepResult {
	var res StepResult
	if e.Path == nil || e.Stats == nil {
		return res
	}
	if !e.Path.Tick(dt) {
		return res
	}

	next, ok := e.Path.Next()
	if ok && e.Stats.HasAP() {
		prev := e.Pos
		e.Pos = domain.ToWorld(next)
		e.Velocity = e.Velocity.Add(e.Pos.Sub(prev))
		e.Stats.SpendAP()
		res.Moved = true
		res.From, res.To = domain.ToTile(prev), next
	}

	if !ok || len(e.Path.Remaining()) == 0 || !e.Stats.HasAP() {
		e.Path = nil
		res.Finished = true
		if !e.Stats.HasAP() && e.Queue != nil {
			e.Queue.Clear()
			e.Queue.Push(domain.EndTurn(e.Team.Opponent()))
			res.Exhausted = true
		}
	}
	return res
}
