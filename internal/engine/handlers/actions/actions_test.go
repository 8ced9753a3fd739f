package actions

import (
	"errors"
	"math"
	"os"
	"strings"
	"testing"

	"rogue-soccer/internal/domain"
	"rogue-soccer/internal/engine/handlers"
	"rogue-soccer/internal/systems"
	"rogue-soccer/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type fixedRoll float64

func (f fixedRoll) Float64() float64 { return float64(f) }

type fixture struct {
	world *domain.World
	ball  *domain.Entity
	actor *domain.Entity
	other *domain.Entity
}

func newFixture() *fixture {
	field := domain.NewField(domain.Tile{X: -20, Y: -10}, domain.Tile{X: 20, Y: 10})
	for y := -1; y <= 1; y++ {
		field.Set(domain.Tile{X: -20, Y: y}, domain.Goal(domain.TeamPlayer))
		field.Set(domain.Tile{X: 20, Y: y}, domain.Goal(domain.TeamEnemy))
	}
	world := domain.NewWorld(field)
	f := &fixture{world: world}
	f.ball = world.Spawn(domain.NewBall(domain.ToWorld(domain.Tile{X: 1, Y: 0})))
	f.actor = world.Spawn(domain.NewPerson("Ada", domain.TeamPlayer, domain.ClassAttacker,
		domain.Vec2{}, domain.NewStats(domain.DefaultStats(), 0)))
	f.other = world.Spawn(domain.NewPerson("Bo", domain.TeamEnemy, domain.ClassCentralDefender,
		domain.ToWorld(domain.Tile{X: 0, Y: 1}), domain.NewStats(domain.DefaultStats(), 1)))
	world.RebuildIndex()
	return f
}

func (f *fixture) ctx(roll float64) handlers.Context {
	return handlers.Context{
		Finder:    f.world,
		World:     f.world,
		Actor:     f.actor,
		Rng:       fixedRoll(roll),
		FixedStep: 1,
		PathStep:  0.25,
	}
}

func run(t *testing.T, f *fixture, roll float64, action domain.Action) (handlers.Result, error) {
	t.Helper()
	h, ok := Registry()[action.Type]
	if !ok {
		t.Fatalf("no handler for %v", action.Type)
	}
	return h(f.ctx(roll), action)
}

func TestMoveTo(t *testing.T) {
	f := newFixture()
	f.actor.Velocity = domain.Vec2{X: 5}

	res, err := run(t, f, 0, domain.MoveTo(domain.ToWorld(domain.Tile{X: 3, Y: 0})))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Msg != "" {
		t.Errorf("unexpected log %q", res.Msg)
	}
	if f.actor.Path == nil || len(f.actor.Path.Tiles) != 3 {
		t.Fatalf("path = %+v, want 3 tiles", f.actor.Path)
	}
	if !f.actor.Velocity.IsZero() {
		t.Errorf("velocity should reset before a walk, got %v", f.actor.Velocity)
	}
}

func TestMoveTo_NoPath(t *testing.T) {
	f := newFixture()

	res, err := run(t, f, 0, domain.MoveTo(domain.ToWorld(domain.Tile{X: 20, Y: 0})))
	if !errors.Is(err, systems.ErrPathFailed) {
		t.Fatalf("err = %v, want ErrPathFailed", err)
	}
	if res.Msg != "Ada can't find a way to the target" || res.MsgType != handlers.LogError {
		t.Errorf("result = %+v", res)
	}
	if f.actor.Path != nil {
		t.Error("no path should be attached on failure")
	}
}

func TestKick(t *testing.T) {
	t.Run("ball", func(t *testing.T) {
		f := newFixture()
		f.actor.Velocity = domain.Vec2{X: 8}
		f.world.Claim(f.other, f.ball)

		res, err := run(t, f, 0, domain.Kick(f.ball.ID))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Msg != "Ada kicked the ball" {
			t.Errorf("msg = %q", res.Msg)
		}
		if f.ball.Kicked == nil || f.ball.Kicked.Velocity != (domain.Vec2{X: 120}) {
			t.Errorf("kicked = %+v, want velocity (120,0)", f.ball.Kicked)
		}
		if f.ball.ClaimedBy != domain.NoEntity || f.other.Claimed != domain.NoEntity {
			t.Error("kick must release the claim")
		}
	})

	t.Run("person evades", func(t *testing.T) {
		f := newFixture()
		res, err := run(t, f, 0.1, domain.Kick(f.other.ID))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Msg != "Ada tried to kick Bo, but Bo evaded" {
			t.Errorf("msg = %q", res.Msg)
		}
		if f.other.Kicked != nil {
			t.Error("evaded kick must not launch the target")
		}
	})

	t.Run("person is hit", func(t *testing.T) {
		f := newFixture()
		res, _ := run(t, f, 0.9, domain.Kick(f.other.ID))
		if res.Msg != "Ada kicked Bo" || f.other.Kicked == nil {
			t.Errorf("result = %+v kicked=%v", res, f.other.Kicked)
		}
	})

	t.Run("out of reach", func(t *testing.T) {
		f := newFixture()
		f.ball.Pos = domain.ToWorld(domain.Tile{X: 6, Y: 0})
		_, err := run(t, f, 0, domain.Kick(f.ball.ID))
		if !errors.Is(err, handlers.ErrOutOfReach) {
			t.Errorf("err = %v, want ErrOutOfReach", err)
		}
	})

	t.Run("missing target", func(t *testing.T) {
		f := newFixture()
		_, err := run(t, f, 0, domain.Kick(99))
		if !errors.Is(err, handlers.ErrTargetNotFound) {
			t.Errorf("err = %v, want ErrTargetNotFound", err)
		}
	})
}

func TestTakeControl(t *testing.T) {
	f := newFixture()
	f.world.Claim(f.other, f.ball)

	res, err := run(t, f, 0, domain.TakeControl(f.ball.ID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Msg != "Ada takes control of the ball" {
		t.Errorf("msg = %q", res.Msg)
	}
	if f.actor.Claimed != f.ball.ID || f.ball.ClaimedBy != f.actor.ID {
		t.Error("claim not linked")
	}
	if f.other.Claimed != domain.NoEntity {
		t.Error("previous holder still claims the ball")
	}
}

func TestPass(t *testing.T) {
	f := newFixture()
	f.ball.Pos = f.actor.Pos
	f.world.Claim(f.actor, f.ball)

	res, err := run(t, f, 0, domain.Pass(f.ball.ID, domain.Vec2{X: 80}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Msg != "Ada is passing the ball" || res.MsgType != handlers.LogPass {
		t.Errorf("result = %+v", res)
	}
	v := f.ball.Kicked.Velocity
	if math.Abs(v.X-10) > 1e-9 || v.Y != 0 {
		t.Errorf("pass velocity = %v, want (10,0)", v)
	}
	if f.actor.Claimed != domain.NoEntity || f.ball.ClaimedBy != domain.NoEntity {
		t.Error("pass must release the claim")
	}

	// Passing again without the ball fails
	if _, err := run(t, f, 0, domain.Pass(f.ball.ID, domain.Vec2{X: 80})); err == nil {
		t.Error("expected an error when not holding the target")
	}
}

func TestPassDown(t *testing.T) {
	f := newFixture()
	f.world.Claim(f.actor, f.ball)

	if _, err := run(t, f, 0, domain.PassDown()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, ok := f.actor.Queue.Pop()
	if !ok || a.Type != domain.ActionPass || a.Target != f.ball.ID {
		t.Fatalf("queued %v", a)
	}
	if a.Dest != domain.ToWorld(domain.Tile{X: 20, Y: 0}) {
		t.Errorf("pass aimed at %v, want the enemy goal", a.Dest)
	}
}

func TestDefendGoal(t *testing.T) {
	f := newFixture()
	f.ball.Pos = domain.Vec2{X: 0, Y: 0}

	res, err := run(t, f, 0, domain.DefendGoal())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(res.Msg, "moves to defend the goal") {
		t.Errorf("msg = %q", res.Msg)
	}
	a, _ := f.actor.Queue.Pop()
	want := domain.Vec2{X: -160 + DefendDistance, Y: 0}
	if a.Type != domain.ActionMoveTo || math.Abs(a.Dest.X-want.X) > 1e-9 || math.Abs(a.Dest.Y) > 1e-9 {
		t.Errorf("queued %v, want MOVE_TO %v", a, want)
	}
}

func TestAdvance(t *testing.T) {
	f := newFixture()
	if _, err := run(t, f, 0, domain.Advance()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, _ := f.actor.Queue.Pop()
	if a.Type != domain.ActionMoveTo || domain.ToTile(a.Dest) != (domain.Tile{X: 19, Y: 0}) {
		t.Errorf("queued %v, want MOVE_TO in front of the enemy goal", a)
	}
}

func TestTurnActions(t *testing.T) {
	f := newFixture()

	res, _ := run(t, f, 0, domain.SkipTurn())
	if res.Msg != "Ada is skipping their turn" {
		t.Errorf("msg = %q", res.Msg)
	}

	res, _ = run(t, f, 0, domain.EndTurn(domain.TeamEnemy))
	if res.Event == nil || res.Event.NextTeam != domain.TeamEnemy {
		t.Errorf("event = %+v", res.Event)
	}

	res, err := run(t, f, 0, domain.Foul(f.other.ID))
	if err != nil || res.Msg != "" {
		t.Errorf("foul should be a silent no-op: %+v %v", res, err)
	}
}
