package systems

import (
	"errors"

	"rogue-soccer/internal/domain"
	"rogue-soccer/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ErrPathFailed is returned when the goal cannot be reached.
var ErrPathFailed = errors.New("no path to target")

// PersonStepPenalty is added to the cost of stepping onto a tile per person
// standing there.
const PersonStepPenalty = 10

// neighbourDirs is the fixed expansion order. Changing it changes which of
// several equal-cost paths is returned.
var neighbourDirs = [8]domain.Tile{
	{X: 1, Y: 0},
	{X: 1, Y: 1},
	{X: 0, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: 0},
	{X: -1, Y: -1},
	{X: 0, Y: -1},
	{X: 1, Y: -1},
}

// FindPath plans a route between two world positions.
// See FindTilePath.
func FindPath(start, goal domain.Vec2, index *domain.SpatialIndex) ([]domain.Tile, error) {
	return FindTilePath(domain.ToTile(start), domain.ToTile(goal), index)
}

// FindTilePath runs a best-first search over the 8-connected grid and
// returns the tiles to walk, start excluded and goal included. An empty
// path means start == goal.
//
// Walls and goal mouths are never entered; each person on a tile adds
// PersonStepPenalty to stepping there. Priority is cost + 1 + squared
// distance to the goal, which favours speed over optimality. The search
// stays inside index.SearchBounds, so an unreachable goal fails in finite
// time with ErrPathFailed.
func FindTilePath(start, goal domain.Tile, index *domain.SpatialIndex) ([]domain.Tile, error) {
	if start == goal {
		return []domain.Tile{}, nil
	}

	lo, hi := index.SearchBounds(start, goal)
	inBounds := func(t domain.Tile) bool {
		return t.X >= lo.X && t.X <= hi.X && t.Y >= lo.Y && t.Y <= hi.Y
	}

	open := newFrontier()
	open.Push(start, 0)
	costSoFar := map[domain.Tile]int{start: 0}
	cameFrom := make(map[domain.Tile]domain.Tile)

	for open.Len() > 0 {
		current := open.Pop()
		if current == goal {
			return reconstructPath(cameFrom, start, goal), nil
		}

		for _, dir := range neighbourDirs {
			next := current.Add(dir)
			if !inBounds(next) {
				continue
			}

			stepCost, passable := tileCost(index, next)
			if !passable {
				continue
			}

			newCost := costSoFar[current] + stepCost
			if old, seen := costSoFar[next]; seen && newCost >= old {
				continue
			}
			costSoFar[next] = newCost
			cameFrom[next] = current
			open.Push(next, newCost+1+next.DistanceSquaredTo(goal))
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "pathfinding",
		"start":     start,
		"goal":      goal,
		"explored":  len(costSoFar),
	}).Debug("search exhausted")

	return nil, ErrPathFailed
}

// tileCost returns the cost of stepping onto t and whether t may be entered.
func tileCost(index *domain.SpatialIndex, t domain.Tile) (int, bool) {
	cost := 1
	for _, occ := range index.Query(t) {
		switch {
		case occ.Impassable():
			return 0, false
		case occ.Kind == domain.KindPerson:
			cost += PersonStepPenalty
		}
	}
	return cost, true
}

// reconstructPath walks the predecessor links back from goal and returns
// them in walking order, without start.
func reconstructPath(cameFrom map[domain.Tile]domain.Tile, start, goal domain.Tile) []domain.Tile {
	var reversed []domain.Tile
	for t := goal; t != start; t = cameFrom[t] {
		reversed = append(reversed, t)
	}
	path := make([]domain.Tile, len(reversed))
	for i, t := range reversed {
		path[len(reversed)-1-i] = t
	}
	return path
}
