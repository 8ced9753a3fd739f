package api

import (
	"encoding/json"
)

// --- SERVER -> CLIENT ---

// ServerResponse is the root object the server pushes to every client.
// It is a full snapshot of the pitch plus the log lines produced since the
// previous snapshot.
type ServerResponse struct {
	// Type is "UPDATE" for tick snapshots and "ERROR" for rejected commands.
	Type string `json:"type"`

	// Tick is the fixed-step counter of the match.
	Tick int `json:"tick"`

	// State is SETUP, PLAYER_TURN, ENEMY_TURN or BANNER.
	State string `json:"state"`

	// Team is the side whose turn it is (or is about to be, during BANNER).
	Team string `json:"team"`

	// CurrentPlayer is the entity holding the turn; 0 while none does.
	CurrentPlayer uint32 `json:"currentPlayer,omitempty"`

	// Field carries the pitch bounds; it is sent with the first snapshot.
	Field *FieldMeta `json:"field,omitempty"`

	Entities []EntityView `json:"entities,omitempty"`
	Logs     []LogEntry   `json:"logs,omitempty"`

	// Actions is the menu for the current human player.
	Actions []ActionView `json:"actions,omitempty"`

	// Preview is the path a WALK would take to the cursor.
	Preview []TileView `json:"preview,omitempty"`

	Error string `json:"error,omitempty"`
}

// FieldMeta holds the inclusive tile bounds plus the static tiles.
type FieldMeta struct {
	MinX  int        `json:"minX"`
	MinY  int        `json:"minY"`
	MaxX  int        `json:"maxX"`
	MaxY  int        `json:"maxY"`
	Tiles []TileView `json:"tiles"`
}

// TileView is one grid cell. Kind is set for static tiles only.
type TileView struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Kind string `json:"kind,omitempty"` // WALL, GOAL
	Team string `json:"team,omitempty"` // defending side of a GOAL tile
}

// EntityView is the DTO for a ball or a person.
type EntityView struct {
	ID    uint32  `json:"id"`
	Kind  string  `json:"kind"` // BALL, PERSON
	Name  string  `json:"name"`
	Team  string  `json:"team,omitempty"`
	Class string  `json:"class,omitempty"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`

	Stats *StatsView `json:"stats,omitempty"`

	Claimed   uint32 `json:"claimed,omitempty"`
	ClaimedBy uint32 `json:"claimedBy,omitempty"`
	IsCurrent bool   `json:"isCurrent,omitempty"`
	HasActed  bool   `json:"hasActed,omitempty"`
	InFlight  bool   `json:"inFlight,omitempty"`
	Walking   bool   `json:"walking,omitempty"`
}

// StatsView is the DTO for a person's stats.
type StatsView struct {
	AP           int     `json:"ap"`
	MaxAP        int     `json:"maxAp"`
	KickStrength float64 `json:"kickStrength"`
	PassingSkill float64 `json:"passingSkill"`
	Defense      float64 `json:"defense"`
	Initiative   int     `json:"initiative"`
}

// LogEntry is one line of the match log.
type LogEntry struct {
	ID        string `json:"id"`
	Tick      int    `json:"tick"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, KICK, PASS, TURN, GOAL, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// ActionView is one entry of the current player's action menu.
type ActionView struct {
	Label   string `json:"label"`
	Key     string `json:"key"`
	Slot    int    `json:"slot"`
	Ability string `json:"ability"`
	Target  uint32 `json:"target,omitempty"`
	Enabled bool   `json:"enabled"`
}

// --- CLIENT -> SERVER ---

// ClientCommand is the root object of every client message.
type ClientCommand struct {
	// Token identifies the sending connection; the server fills it in.
	Token string `json:"token,omitempty"`

	// Action is one of CURSOR, SLOT, WALK, TAKE_CONTROL, KICK, FOUL, PASS, SKIP.
	Action string `json:"action"`

	// Payload depends on Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// CursorPayload moves the aiming cursor (CURSOR, WALK).
type CursorPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TargetPayload aims an ability at an entity; X/Y is the cursor used for the
// approach walk or the pass destination.
type TargetPayload struct {
	TargetID uint32  `json:"targetId"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// SlotPayload presses one of the ability keys.
type SlotPayload struct {
	Slot int `json:"slot"`
}
