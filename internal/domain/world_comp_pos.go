package domain

import "math"

// TileSize is the edge length of one grid cell in world units.
const TileSize = 8.0

// Tile is an integer grid coordinate.
type Tile struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Vec2 is a continuous world-space position or velocity.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ToTile maps a world position onto the grid: floor(p / TileSize) per axis.
func ToTile(p Vec2) Tile {
	return Tile{
		X: int(math.Floor(p.X / TileSize)),
		Y: int(math.Floor(p.Y / TileSize)),
	}
}

// ToWorld maps a tile onto its world anchor: tile * TileSize per axis.
func ToWorld(t Tile) Vec2 {
	return Vec2{X: float64(t.X) * TileSize, Y: float64(t.Y) * TileSize}
}

// Add returns the tile shifted by other.
func (t Tile) Add(other Tile) Tile {
	return Tile{X: t.X + other.X, Y: t.Y + other.Y}
}

// Shift returns a new tile offset by dx, dy.
func (t Tile) Shift(dx, dy int) Tile {
	return Tile{X: t.X + dx, Y: t.Y + dy}
}

// DistanceSquaredTo returns the squared euclidean distance, used where only
// ordering matters.
func (t Tile) DistanceSquaredTo(other Tile) int {
	dx := t.X - other.X
	dy := t.Y - other.Y
	return dx*dx + dy*dy
}

// IsAdjacent returns true if other is one of the eight neighbours.
func (t Tile) IsAdjacent(other Tile) bool {
	dx := t.X - other.X
	dy := t.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= 1 && dy <= 1 && (dx != 0 || dy != 0)
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec2) Scale(k float64) Vec2 { return Vec2{X: v.X * k, Y: v.Y * k} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// NormalizeOrZero returns the unit vector in the direction of v, or the zero
// vector when v has no usable length.
func (v Vec2) NormalizeOrZero() Vec2 {
	l := v.Length()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Reflect mirrors v about the unit normal n: v - 2(v·n)n.
func Reflect(v, n Vec2) Vec2 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}
