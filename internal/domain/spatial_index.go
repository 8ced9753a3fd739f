package domain

// Occupant is one index entry. Static field tiles carry NoEntity.
type Occupant struct {
	ID EntityID
	Interactable
}

// SpatialIndex maps tiles to occupants. It is rebuilt from scratch every
// tick, so readers see positions as of the start of the tick.
type SpatialIndex struct {
	cells map[Tile][]Occupant

	bounded  bool
	min, max Tile

	// bounding box of everything inserted, for unbounded test maps
	hasAny         bool
	occMin, occMax Tile
}

func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{cells: make(map[Tile][]Occupant)}
}

// Clear empties the index and forgets its bounds.
func (ix *SpatialIndex) Clear() {
	for k := range ix.cells {
		delete(ix.cells, k)
	}
	ix.bounded = false
	ix.hasAny = false
}

// SetBounds restricts searches to the inclusive rectangle [min, max].
func (ix *SpatialIndex) SetBounds(min, max Tile) {
	ix.bounded = true
	ix.min, ix.max = min, max
}

// Insert appends an occupant to t.
func (ix *SpatialIndex) Insert(t Tile, occ Occupant) {
	ix.cells[t] = append(ix.cells[t], occ)
	if !ix.hasAny {
		ix.occMin, ix.occMax, ix.hasAny = t, t, true
		return
	}
	ix.occMin = Tile{X: min(ix.occMin.X, t.X), Y: min(ix.occMin.Y, t.Y)}
	ix.occMax = Tile{X: max(ix.occMax.X, t.X), Y: max(ix.occMax.Y, t.Y)}
}

// Rebuild clears the index and inserts the field's static tiles followed by
// every entity in roster order.
func (ix *SpatialIndex) Rebuild(field *Field, entities []*Entity) {
	ix.Clear()
	if field != nil {
		ix.SetBounds(field.Min, field.Max)
		for _, t := range field.StaticTiles() {
			it, _ := field.At(t)
			ix.Insert(t, Occupant{ID: NoEntity, Interactable: it})
		}
	}
	for _, e := range entities {
		ix.Insert(e.Tile(), Occupant{ID: e.ID, Interactable: e.Interactable()})
	}
}

// Query returns the occupants of t. The slice must not be modified.
func (ix *SpatialIndex) Query(t Tile) []Occupant {
	return ix.cells[t]
}

// IsImpassable reports whether a wall or goal mouth sits on t.
func (ix *SpatialIndex) IsImpassable(t Tile) bool {
	for _, occ := range ix.cells[t] {
		if occ.Impassable() {
			return true
		}
	}
	return false
}

// SearchBounds returns the rectangle a search between a and b may explore:
// the configured bounds, or the box around a, b and all occupants padded by
// one tile. Both endpoints are always inside.
func (ix *SpatialIndex) SearchBounds(a, b Tile) (Tile, Tile) {
	lo := Tile{X: min(a.X, b.X), Y: min(a.Y, b.Y)}
	hi := Tile{X: max(a.X, b.X), Y: max(a.Y, b.Y)}
	if ix.bounded {
		lo = Tile{X: min(lo.X, ix.min.X), Y: min(lo.Y, ix.min.Y)}
		hi = Tile{X: max(hi.X, ix.max.X), Y: max(hi.Y, ix.max.Y)}
		return lo, hi
	}
	if ix.hasAny {
		lo = Tile{X: min(lo.X, ix.occMin.X), Y: min(lo.Y, ix.occMin.Y)}
		hi = Tile{X: max(hi.X, ix.occMax.X), Y: max(hi.Y, ix.occMax.Y)}
	}
	return lo.Shift(-1, -1), hi.Shift(1, 1)
}
