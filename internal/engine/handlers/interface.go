package handlers

import (
	"rogue-soccer/internal/domain"
	"rogue-soccer/internal/systems"
)

// Log line types.
const (
	LogInfo  = "INFO"
	LogKick  = "KICK"
	LogPass  = "PASS"
	LogTurn  = "TURN"
	LogGoal  = "GOAL"
	LogError = "ERROR"
)

// EntityFinder describes anything that can resolve an entity by ID.
// domain.World implements it.
type EntityFinder interface {
	GetEntity(id domain.EntityID) *domain.Entity
}

// Context hands the world to a handler. Handlers mutate the entities they
// are given directly.
type Context struct {
	Finder EntityFinder
	World  *domain.World
	Actor  *domain.Entity // the entity whose queue produced the action
	Rng    systems.Roller

	FixedStep float64 // physics tick length, used for pass velocity
	PathStep  float64 // seconds per walked tile
}

// TurnEvent asks the engine to hand the turn over.
type TurnEvent struct {
	NextTeam domain.Team
}

// Result is what a handler produced.
// Handlers never write to the match log themselves; they return the line.
type Result struct {
	Msg     string
	MsgType string
	Event   *TurnEvent
}

// HandlerFunc is the contract for every queued action (MOVE_TO, KICK, ...).
type HandlerFunc func(ctx Context, action domain.Action) (Result, error)

// EmptyResult is the successful no-output result.
func EmptyResult() Result {
	return Result{}
}
