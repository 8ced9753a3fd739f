package engine

import (
	"container/heap"

	"rogue-soccer/internal/domain"
	"rogue-soccer/pkg/logger"

	"github.com/sirupsen/logrus"
)

// MatchState is the phase of the turn cycle.
type MatchState uint8

const (
	StateSetup MatchState = iota
	StatePlayerTurn
	StateEnemyTurn
	StateBanner
)

var stateNames = map[MatchState]string{
	StateSetup:      "SETUP",
	StatePlayerTurn: "PLAYER_TURN",
	StateEnemyTurn:  "ENEMY_TURN",
	StateBanner:     "BANNER",
}

func (s MatchState) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "UNKNOWN"
}

func turnStateFor(team domain.Team) MatchState {
	if team == domain.TeamEnemy {
		return StateEnemyTurn
	}
	return StatePlayerTurn
}

// TurnManager designates who acts. A team's persons act one at a time in
// initiative order; when all of them have acted the team rolls over and
// everyone gets AP back.
type TurnManager struct {
	State MatchState
	Team  domain.Team // team announced by the banner or holding the turn

	bannerDuration float64
	bannerLeft     float64

	// remaining candidates of the current round, for debugging
	queue TurnQueue
}

func NewTurnManager(bannerDuration float64) *TurnManager {
	return &TurnManager{
		State:          StateSetup,
		bannerDuration: bannerDuration,
		queue:          make(TurnQueue, 0),
	}
}

// InTurn is true while a team holds the turn (not during setup or banner).
func (tm *TurnManager) InTurn() bool {
	return tm.State == StatePlayerTurn || tm.State == StateEnemyTurn
}

// StartBanner announces team and designates its next current player.
func (tm *TurnManager) StartBanner(world *domain.World, team domain.Team) *domain.Entity {
	tm.State = StateBanner
	tm.Team = team
	tm.bannerLeft = tm.bannerDuration
	return tm.Designate(world, team)
}

// Update counts the banner down and reports whether the team's turn began.
func (tm *TurnManager) Update(dt float64) bool {
	if tm.State != StateBanner {
		return false
	}
	tm.bannerLeft -= dt
	if tm.bannerLeft > 0 {
		return false
	}
	tm.State = turnStateFor(tm.Team)
	return true
}

// Designate marks the highest-initiative member of team that has not acted
// this round as the current player. When everyone has acted the round rolls
// over first: HasActed is cleared and AP restored for the whole team.
// Exactly one entity holds the marker afterwards, unless the team is empty.
func (tm *TurnManager) Designate(world *domain.World, team domain.Team) *domain.Entity {
	for _, e := range world.Entities {
		e.IsCurrent = false
	}

	members := world.TeamMembers(team)
	candidates := make([]*domain.Entity, 0, len(members))
	for _, e := range members {
		if !e.HasActed {
			candidates = append(candidates, e)
		}
	}

	if len(candidates) == 0 {
		for _, e := range members {
			e.HasActed = false
			if e.Stats != nil {
				e.Stats.ResetAP()
			}
		}
		candidates = members

		logger.Log.WithFields(logrus.Fields{
			"component": "turn_manager",
			"team":      team.String(),
		}).Debug("round rolled over")
	}

	tm.queue = tm.queue[:0]
	for i, e := range candidates {
		initiative := 0
		if e.Stats != nil {
			initiative = e.Stats.Initiative
		}
		heap.Push(&tm.queue, &TurnItem{Value: e, Priority: initiative, Order: i})
	}

	if tm.queue.Len() == 0 {
		return nil
	}
	next := heap.Pop(&tm.queue).(*TurnItem)
	next.Value.IsCurrent = true

	logger.Log.WithFields(logrus.Fields{
		"component":  "turn_manager",
		"team":       team.String(),
		"entity_id":  next.Value.ID,
		"initiative": next.Priority,
	}).Debug("current player designated")

	return next.Value
}

// DebugDump returns the remaining candidates for the debug endpoint.
func (tm *TurnManager) DebugDump() []map[string]interface{} {
	// empty slice, not nil: encodes as [] instead of null
	result := make([]map[string]interface{}, 0)

	for _, item := range tm.queue {
		result = append(result, map[string]interface{}{
			"id":         item.Value.ID,
			"name":       item.Value.Name,
			"initiative": item.Priority,
			"order":      item.Order,
		})
	}
	return result
}
