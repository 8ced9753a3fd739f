package domain

import (
	"math"
	"sort"
)

// Field is the static part of the pitch: walls and goal mouths keyed by tile.
// Min and Max are inclusive and bound every search over the pitch.
type Field struct {
	Min   Tile `json:"min"`
	Max   Tile `json:"max"`
	tiles map[Tile]Interactable
}

func NewField(min, max Tile) *Field {
	return &Field{Min: min, Max: max, tiles: make(map[Tile]Interactable)}
}

// Set places a static interactable on t.
func (f *Field) Set(t Tile, it Interactable) {
	f.tiles[t] = it
}

// At returns the static occupant of t, if any.
func (f *Field) At(t Tile) (Interactable, bool) {
	it, ok := f.tiles[t]
	return it, ok
}

// Contains reports whether t lies inside the bounds.
func (f *Field) Contains(t Tile) bool {
	return t.X >= f.Min.X && t.X <= f.Max.X && t.Y >= f.Min.Y && t.Y <= f.Max.Y
}

func (f *Field) Width() int  { return f.Max.X - f.Min.X + 1 }
func (f *Field) Height() int { return f.Max.Y - f.Min.Y + 1 }

// StaticTiles returns every static tile in row-major order (top row first).
func (f *Field) StaticTiles() []Tile {
	out := make([]Tile, 0, len(f.tiles))
	for t := range f.tiles {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y > out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// GoalTiles lists the goal-mouth tiles defended by team.
func (f *Field) GoalTiles(team Team) []Tile {
	var out []Tile
	for _, t := range f.StaticTiles() {
		if it := f.tiles[t]; it.Kind == KindGoal && it.Team == team {
			out = append(out, t)
		}
	}
	return out
}

// World owns the entity registry, the static field and the spatial index.
type World struct {
	Field    *Field
	Entities []*Entity
	Index    *SpatialIndex

	registry map[EntityID]*Entity
	nextID   EntityID
}

func NewWorld(field *Field) *World {
	return &World{
		Field:    field,
		Index:    NewSpatialIndex(),
		registry: make(map[EntityID]*Entity),
	}
}

// Spawn assigns an ID and registers the entity. Spawn order is the roster
// order used for deterministic iteration.
func (w *World) Spawn(e *Entity) *Entity {
	w.nextID++
	e.ID = w.nextID
	w.Entities = append(w.Entities, e)
	w.registry[e.ID] = e
	return e
}

// GetEntity implements the handlers' EntityFinder.
func (w *World) GetEntity(id EntityID) *Entity {
	return w.registry[id]
}

// RebuildIndex repopulates the spatial index from the field and entity
// positions. It runs once at the start of every tick.
func (w *World) RebuildIndex() {
	w.Index.Rebuild(w.Field, w.Entities)
}

// Ball returns the first ball in the roster.
func (w *World) Ball() *Entity {
	for _, e := range w.Entities {
		if e.IsBall() {
			return e
		}
	}
	return nil
}

// TeamMembers returns the persons of team in roster order.
func (w *World) TeamMembers(team Team) []*Entity {
	var out []*Entity
	for _, e := range w.Entities {
		if e.Kind == KindPerson && e.Team == team {
			out = append(out, e)
		}
	}
	return out
}

// CurrentPlayer returns the entity holding the turn, if any.
func (w *World) CurrentPlayer() *Entity {
	for _, e := range w.Entities {
		if e.IsCurrent {
			return e
		}
	}
	return nil
}

// GoalTiles returns the goal mouth defended by team.
func (w *World) GoalTiles(team Team) []Tile {
	if w.Field == nil {
		return nil
	}
	return w.Field.GoalTiles(team)
}

// GoalCentroid averages the world anchors of team's goal tiles.
func (w *World) GoalCentroid(team Team) (Vec2, bool) {
	tiles := w.GoalTiles(team)
	if len(tiles) == 0 {
		return Vec2{}, false
	}
	var sum Vec2
	for _, t := range tiles {
		sum = sum.Add(ToWorld(t))
	}
	return sum.Scale(1 / float64(len(tiles))), true
}

// ClosestGoalTile returns the tile of team's goal nearest to from.
// Ties keep the first tile in row-major order.
func (w *World) ClosestGoalTile(from Vec2, team Team) (Tile, bool) {
	best, found := Tile{}, false
	bestDist := math.MaxFloat64
	for _, t := range w.GoalTiles(team) {
		d := ToWorld(t).Sub(from).Length()
		if d < bestDist {
			best, bestDist, found = t, d, true
		}
	}
	return best, found
}

// Claim links owner and target. Any claim either side already holds is
// released first so the relation stays one-to-one.
func (w *World) Claim(owner, target *Entity) {
	w.ReleaseHeld(owner)
	w.ReleaseHolder(target)
	owner.Claimed = target.ID
	target.ClaimedBy = owner.ID
}

// ReleaseHeld drops whatever owner controls.
func (w *World) ReleaseHeld(owner *Entity) {
	if owner.Claimed.IsZero() {
		return
	}
	if held := w.GetEntity(owner.Claimed); held != nil && held.ClaimedBy == owner.ID {
		held.ClaimedBy = NoEntity
	}
	owner.Claimed = NoEntity
}

// ReleaseHolder frees target from whoever controls it.
func (w *World) ReleaseHolder(target *Entity) {
	if target.ClaimedBy.IsZero() {
		return
	}
	if holder := w.GetEntity(target.ClaimedBy); holder != nil && holder.Claimed == target.ID {
		holder.Claimed = NoEntity
	}
	target.ClaimedBy = NoEntity
}
