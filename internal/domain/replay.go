package domain

// ReplayAction is one externally submitted intent.
type ReplayAction struct {
	Tick    int         `json:"tick"`
	Ability AbilityType `json:"ability"`
	Target  EntityID    `json:"target"`
	Cursor  Vec2        `json:"cursor"`
}

// ReplaySession is the full record of a match: the seed, which side (if
// any) took intents, and every human intent. Re-running the seed with the
// same seating and the same intents at the same ticks reproduces the match.
type ReplaySession struct {
	Seed      int64          `json:"seed"`
	Timestamp int64          `json:"timestamp"`
	Ticks     int            `json:"ticks"`
	HumanTeam Team           `json:"humanTeam"`
	HasHuman  bool           `json:"hasHuman"`
	Actions   []ReplayAction `json:"actions"`
}
