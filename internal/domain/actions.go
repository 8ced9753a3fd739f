package domain

import (
	"fmt"
	"strings"
)

// ActionType is the internal identifier of a queued action.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionMoveTo
	ActionKick
	ActionTakeControl
	ActionFoul
	ActionPass
	ActionDefendGoal
	ActionSkipTurn
	ActionEndTurn
	ActionAdvance
	ActionPassDown
)

var actionCmdToString = map[ActionType]string{
	ActionMoveTo:      "MOVE_TO",
	ActionKick:        "KICK",
	ActionTakeControl: "TAKE_CONTROL",
	ActionFoul:        "FOUL",
	ActionPass:        "PASS",
	ActionDefendGoal:  "DEFEND_GOAL",
	ActionSkipTurn:    "SKIP_TURN",
	ActionEndTurn:     "END_TURN",
	ActionAdvance:     "ADVANCE",
	ActionPassDown:    "PASS_DOWN",
}

// String implements fmt.Stringer (logs, metrics attributes).
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// Action is one queued step of an actor's plan. Only the fields relevant to
// Type are set: Target for Kick/TakeControl/Foul/Pass, Dest for MoveTo/Pass,
// NextTeam for EndTurn.
type Action struct {
	Type     ActionType `json:"type"`
	Target   EntityID   `json:"target,omitempty"`
	Dest     Vec2       `json:"dest"`
	NextTeam Team       `json:"nextTeam"`
}

func MoveTo(dest Vec2) Action { return Action{Type: ActionMoveTo, Dest: dest} }

func Kick(target EntityID) Action { return Action{Type: ActionKick, Target: target} }

func TakeControl(target EntityID) Action { return Action{Type: ActionTakeControl, Target: target} }

func Foul(target EntityID) Action { return Action{Type: ActionFoul, Target: target} }

func Pass(target EntityID, dest Vec2) Action {
	return Action{Type: ActionPass, Target: target, Dest: dest}
}

func DefendGoal() Action { return Action{Type: ActionDefendGoal} }

func SkipTurn() Action { return Action{Type: ActionSkipTurn} }

func EndTurn(next Team) Action { return Action{Type: ActionEndTurn, NextTeam: next} }

func Advance() Action { return Action{Type: ActionAdvance} }

func PassDown() Action { return Action{Type: ActionPassDown} }

func (a Action) String() string {
	switch a.Type {
	case ActionMoveTo:
		return fmt.Sprintf("MOVE_TO(%.1f,%.1f)", a.Dest.X, a.Dest.Y)
	case ActionKick, ActionTakeControl, ActionFoul:
		return fmt.Sprintf("%s(%s)", a.Type, a.Target)
	case ActionPass:
		return fmt.Sprintf("PASS(%s -> %.1f,%.1f)", a.Target, a.Dest.X, a.Dest.Y)
	case ActionEndTurn:
		return fmt.Sprintf("END_TURN(%s)", a.NextTeam)
	}
	return a.Type.String()
}

// AbilityType is a player-facing choice that expands into queued actions.
type AbilityType uint8

const (
	AbilityUnknown AbilityType = iota
	AbilityWalk
	AbilityTakeControl
	AbilityKick
	AbilityFoul
	AbilityPass
	AbilitySkip
)

// JSON command -> ability
var abilityStringToType = map[string]AbilityType{
	"WALK":         AbilityWalk,
	"TAKE_CONTROL": AbilityTakeControl,
	"KICK":         AbilityKick,
	"FOUL":         AbilityFoul,
	"PASS":         AbilityPass,
	"SKIP":         AbilitySkip,
}

var abilityTypeToString = map[AbilityType]string{
	AbilityWalk:        "WALK",
	AbilityTakeControl: "TAKE_CONTROL",
	AbilityKick:        "KICK",
	AbilityFoul:        "FOUL",
	AbilityPass:        "PASS",
	AbilitySkip:        "SKIP",
}

// ParseAbility converts a client command string into an AbilityType.
func ParseAbility(s string) AbilityType {
	if val, ok := abilityStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return AbilityUnknown
}

func (a AbilityType) String() string {
	if val, ok := abilityTypeToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// NeedsTarget is true for abilities aimed at another entity.
func (a AbilityType) NeedsTarget() bool {
	switch a {
	case AbilityTakeControl, AbilityKick, AbilityFoul, AbilityPass:
		return true
	}
	return false
}

// Intent is a submitted ability together with the cursor it was aimed at.
type Intent struct {
	Ability AbilityType `json:"ability"`
	Target  EntityID    `json:"target,omitempty"`
	Cursor  Vec2        `json:"cursor"`
}
