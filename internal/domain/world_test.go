package domain

import (
	"math"
	"testing"
)

func TestTileConversions(t *testing.T) {
	tests := []struct {
		pos  Vec2
		want Tile
	}{
		{Vec2{0, 0}, Tile{0, 0}},
		{Vec2{7.9, 7.9}, Tile{0, 0}},
		{Vec2{8, 16}, Tile{1, 2}},
		{Vec2{-0.1, -8}, Tile{-1, -1}},
		{Vec2{-360, 0}, Tile{-45, 0}},
	}
	for _, tt := range tests {
		if got := ToTile(tt.pos); got != tt.want {
			t.Errorf("ToTile(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}

	for _, tile := range []Tile{{0, 0}, {3, -2}, {-45, 24}} {
		if got := ToTile(ToWorld(tile)); got != tile {
			t.Errorf("round trip %v -> %v", tile, got)
		}
	}
}

func TestReflect(t *testing.T) {
	got := Reflect(Vec2{X: 10, Y: 0}, Vec2{X: -1, Y: 0})
	if got != (Vec2{X: -10, Y: 0}) {
		t.Errorf("Reflect = %v, want (-10,0)", got)
	}

	// Reflection preserves length
	v := Vec2{X: 3, Y: -4}
	n := Vec2{X: 1, Y: 1}.NormalizeOrZero()
	if r := Reflect(v, n); math.Abs(r.Length()-5) > 1e-9 {
		t.Errorf("|Reflect| = %f, want 5", r.Length())
	}
}

func TestNormalizeOrZero(t *testing.T) {
	if got := (Vec2{}).NormalizeOrZero(); got != (Vec2{}) {
		t.Errorf("zero vector normalized to %v", got)
	}
	if got := (Vec2{X: 0, Y: -3}).NormalizeOrZero(); got != (Vec2{X: 0, Y: -1}) {
		t.Errorf("got %v", got)
	}
}

func TestWorld_SpawnAndIndex(t *testing.T) {
	field := NewField(Tile{-5, -5}, Tile{5, 5})
	field.Set(Tile{5, 0}, Wall)
	field.Set(Tile{-5, 0}, Goal(TeamPlayer))

	world := NewWorld(field)
	ball := world.Spawn(NewBall(Vec2{}))
	p := world.Spawn(NewPerson("Ann", TeamPlayer, ClassAttacker, ToWorld(Tile{1, 1}), NewStats(DefaultStats(), 0)))

	if ball.ID == NoEntity || p.ID == ball.ID {
		t.Fatalf("ids not assigned: ball=%v person=%v", ball.ID, p.ID)
	}
	if world.GetEntity(p.ID) != p {
		t.Error("GetEntity returned wrong entity")
	}

	world.RebuildIndex()

	occ := world.Index.Query(Tile{1, 1})
	if len(occ) != 1 || occ[0].ID != p.ID || occ[0].Kind != KindPerson {
		t.Errorf("person tile = %+v", occ)
	}
	if !world.Index.IsImpassable(Tile{5, 0}) || !world.Index.IsImpassable(Tile{-5, 0}) {
		t.Error("wall and goal must be impassable")
	}
	if world.Index.IsImpassable(Tile{0, 0}) {
		t.Error("ball tile must be passable")
	}

	// Moving an entity is only visible after the next rebuild
	p.Pos = ToWorld(Tile{2, 2})
	if len(world.Index.Query(Tile{1, 1})) == 0 {
		t.Error("index changed before rebuild")
	}
	world.RebuildIndex()
	if len(world.Index.Query(Tile{1, 1})) != 0 || len(world.Index.Query(Tile{2, 2})) == 0 {
		t.Error("index not refreshed by rebuild")
	}
}

func TestWorld_ClaimIsSymmetric(t *testing.T) {
	world := NewWorld(nil)
	ball := world.Spawn(NewBall(Vec2{}))
	a := world.Spawn(NewPerson("A", TeamPlayer, ClassAttacker, Vec2{}, NewStats(DefaultStats(), 0)))
	b := world.Spawn(NewPerson("B", TeamEnemy, ClassAttacker, Vec2{}, NewStats(DefaultStats(), 0)))

	world.Claim(a, ball)
	if a.Claimed != ball.ID || ball.ClaimedBy != a.ID {
		t.Fatalf("claim not linked: %v %v", a.Claimed, ball.ClaimedBy)
	}

	// Taking the ball over releases the previous owner
	world.Claim(b, ball)
	if a.Claimed != NoEntity {
		t.Errorf("previous owner still claims %v", a.Claimed)
	}
	if b.Claimed != ball.ID || ball.ClaimedBy != b.ID {
		t.Errorf("new claim not linked")
	}

	world.ReleaseHolder(ball)
	if b.Claimed != NoEntity || ball.ClaimedBy != NoEntity {
		t.Error("release must clear both sides")
	}
}

func TestWorld_Goals(t *testing.T) {
	field := NewField(Tile{-10, -3}, Tile{10, 3})
	for y := -1; y <= 1; y++ {
		field.Set(Tile{-10, y}, Goal(TeamPlayer))
		field.Set(Tile{10, y}, Goal(TeamEnemy))
	}
	world := NewWorld(field)

	c, ok := world.GoalCentroid(TeamEnemy)
	if !ok || c != (Vec2{X: 80, Y: 0}) {
		t.Errorf("centroid = %v %v", c, ok)
	}

	tile, ok := world.ClosestGoalTile(ToWorld(Tile{9, 3}), TeamEnemy)
	if !ok || tile != (Tile{10, 1}) {
		t.Errorf("closest goal = %v", tile)
	}
}

func TestSearchBounds(t *testing.T) {
	ix := NewSpatialIndex()
	ix.Insert(Tile{5, 5}, Occupant{Interactable: Wall})

	lo, hi := ix.SearchBounds(Tile{0, 0}, Tile{3, 0})
	if lo != (Tile{-1, -1}) || hi != (Tile{6, 6}) {
		t.Errorf("unbounded search = %v..%v", lo, hi)
	}

	ix.SetBounds(Tile{-2, -2}, Tile{2, 2})
	lo, hi = ix.SearchBounds(Tile{0, 0}, Tile{1, 1})
	if lo != (Tile{-2, -2}) || hi != (Tile{2, 2}) {
		t.Errorf("bounded search = %v..%v", lo, hi)
	}
}
