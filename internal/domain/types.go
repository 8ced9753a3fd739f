package domain

import "strings"

// Team is one of the two sides of the match.
type Team uint8

const (
	TeamPlayer Team = iota
	TeamEnemy
)

// Opponent returns the other side.
func (t Team) Opponent() Team {
	if t == TeamPlayer {
		return TeamEnemy
	}
	return TeamPlayer
}

func (t Team) String() string {
	if t == TeamEnemy {
		return "ENEMY"
	}
	return "PLAYER"
}

// ParseTeam accepts "player" / "enemy" in any case.
func ParseTeam(s string) (Team, bool) {
	switch strings.ToUpper(s) {
	case "PLAYER":
		return TeamPlayer, true
	case "ENEMY":
		return TeamEnemy, true
	}
	return TeamPlayer, false
}

// CharacterClass is the tactical role of a person in the lineup.
type CharacterClass uint8

const (
	ClassGoalkeeper CharacterClass = iota
	ClassCentralDefender
	ClassMidfielder
	ClassAttacker
)

var classNames = map[CharacterClass]string{
	ClassGoalkeeper:      "GOALKEEPER",
	ClassCentralDefender: "CENTRAL_DEFENDER",
	ClassMidfielder:      "MIDFIELDER",
	ClassAttacker:        "ATTACKER",
}

func (c CharacterClass) String() string {
	if s, ok := classNames[c]; ok {
		return s
	}
	return "UNKNOWN"
}

// InteractableKind classifies what occupies a tile.
type InteractableKind uint8

const (
	KindBall InteractableKind = iota
	KindPerson
	KindWall
	KindGoal
)

var kindNames = map[InteractableKind]string{
	KindBall:   "BALL",
	KindPerson: "PERSON",
	KindWall:   "WALL",
	KindGoal:   "GOAL",
}

func (k InteractableKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// Interactable is the tile-level classification used by the spatial index.
// Team is only meaningful for KindGoal and names the side that defends it.
type Interactable struct {
	Kind InteractableKind `json:"kind"`
	Team Team             `json:"team"`
}

var (
	Ball   = Interactable{Kind: KindBall}
	Person = Interactable{Kind: KindPerson}
	Wall   = Interactable{Kind: KindWall}
)

// Goal returns the goal-mouth interactable defended by team.
func Goal(team Team) Interactable {
	return Interactable{Kind: KindGoal, Team: team}
}

// Impassable reports whether a walker may never enter this occupant's tile.
func (i Interactable) Impassable() bool {
	return i.Kind == KindWall || i.Kind == KindGoal
}
