package domain

// --- COMPONENTS ---

// StatsComponent - resources and skills of a person.
type StatsComponent struct {
	AP           int     `json:"ap"`
	MaxAP        int     `json:"maxAp"`
	KickStrength float64 `json:"kickStrength"`
	PassingSkill float64 `json:"passingSkill"`
	Wit          float64 `json:"wit"`
	Defense      float64 `json:"defense"` // probability in [0,1] of evading or blocking
	Initiative   int     `json:"initiative"`
}

// --- ENTITY ---

// Entity is a ball or a person. Walls and goal mouths are static field tiles
// and never become entities.
//
// Optional components are nil when absent. The marker fields (Path, Kicked,
// Claimed, ClaimedBy, IsCurrent, HasActed) are transient and mutated by the
// systems every tick.
type Entity struct {
	ID    EntityID         `json:"id"`
	Name  string           `json:"name"`
	Kind  InteractableKind `json:"kind"`
	Team  Team             `json:"team"`
	Class CharacterClass   `json:"class"`

	Pos      Vec2 `json:"pos"`
	Velocity Vec2 `json:"velocity"`

	Stats *StatsComponent `json:"stats,omitempty"`
	Queue *ActionQueue    `json:"-"`

	Path   *PathComponent   `json:"path,omitempty"`
	Kicked *KickedComponent `json:"kicked,omitempty"`

	// Claimed is what this entity controls, ClaimedBy is who controls it.
	// The pair is always set and cleared together.
	Claimed   EntityID `json:"claimed,omitempty"`
	ClaimedBy EntityID `json:"claimedBy,omitempty"`

	IsCurrent bool `json:"isCurrent,omitempty"`
	HasActed  bool `json:"hasActed,omitempty"`
}

// NewPerson creates a person with stats and an empty action queue.
func NewPerson(name string, team Team, class CharacterClass, pos Vec2, stats *StatsComponent) *Entity {
	return &Entity{
		Name:  name,
		Kind:  KindPerson,
		Team:  team,
		Class: class,
		Pos:   pos,
		Stats: stats,
		Queue: &ActionQueue{},
	}
}

// NewBall creates the ball at pos.
func NewBall(pos Vec2) *Entity {
	return &Entity{
		Name: "Ball",
		Kind: KindBall,
		Pos:  pos,
	}
}

// Interactable returns how this entity appears in the spatial index.
func (e *Entity) Interactable() Interactable {
	return Interactable{Kind: e.Kind, Team: e.Team}
}

// Tile returns the grid cell under the entity.
func (e *Entity) Tile() Tile {
	return ToTile(e.Pos)
}

func (e *Entity) IsPerson() bool { return e.Kind == KindPerson }

func (e *Entity) IsBall() bool { return e.Kind == KindBall }

// IsIdle is true when the entity is not walking and has nothing queued.
func (e *Entity) IsIdle() bool {
	return e.Path == nil && (e.Queue == nil || e.Queue.IsEmpty())
}

// DisplayName prefixes the ball with an article for log lines.
func (e *Entity) DisplayName() string {
	if e.IsBall() {
		return "the ball"
	}
	return e.Name
}
