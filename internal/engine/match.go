package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"rogue-soccer/internal/domain"
	"rogue-soccer/internal/engine/handlers"
	"rogue-soccer/internal/engine/handlers/actions"
	"rogue-soccer/internal/systems"
	"rogue-soccer/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Match is one running game: the pitch, the turn cycle and every entity's
// queue. It is driven by Step and is not safe for concurrent use; Service
// owns it from a single goroutine.
type Match struct {
	cfg   Config
	World *domain.World
	Turns *TurnManager
	Log   *MatchLog

	// Replay records every accepted human intent.
	Replay *domain.ReplaySession

	rng      *rand.Rand
	registry map[domain.ActionType]handlers.HandlerFunc
	metrics  *matchMetrics

	tick  int
	score map[domain.Team]int

	cursor domain.Vec2
	menu   menuState

	planned domain.EntityID // AI player whose plan is already queued
	idle    float64         // seconds the current player has been idle
}

// NewMatch wraps a built world. Rolls are seeded from cfg.Seed.
func NewMatch(cfg Config, world *domain.World) (*Match, error) {
	return newMatch(cfg, world, rand.New(rand.NewSource(cfg.Seed)))
}

func newMatch(cfg Config, world *domain.World, rng *rand.Rand) (*Match, error) {
	if world == nil {
		return nil, errors.New("match needs a world")
	}
	if cfg.FixedStep <= 0 {
		return nil, fmt.Errorf("fixed step must be positive, got %v", cfg.FixedStep)
	}

	metrics, err := newMatchMetrics()
	if err != nil {
		return nil, fmt.Errorf("registering match metrics: %w", err)
	}

	m := &Match{
		cfg:      cfg,
		World:    world,
		Turns:    NewTurnManager(cfg.BannerDuration),
		rng:      rng,
		registry: actions.Registry(),
		metrics:  metrics,
		score:    map[domain.Team]int{domain.TeamPlayer: 0, domain.TeamEnemy: 0},
		menu:     menuState{dirty: true},
		Replay: &domain.ReplaySession{
			Seed:      cfg.Seed,
			Timestamp: time.Now().Unix(),
			HumanTeam: cfg.HumanTeam,
			HasHuman:  cfg.HasHuman,
			Actions:   make([]domain.ReplayAction, 0),
		},
	}
	m.Log = NewMatchLog(func() int { return m.tick })
	m.World.RebuildIndex()
	return m, nil
}

// Config returns the parameters the match runs with.
func (m *Match) Config() Config { return m.cfg }

// Tick is the number of fixed steps run so far.
func (m *Match) Tick() int { return m.tick }

// Score returns the goals scored by team.
func (m *Match) Score(team domain.Team) int { return m.score[team] }

// Step advances the simulation by one fixed step:
// turn cycle, AI planning, path following, one queued action per idle
// entity, ball control, then kick physics.
func (m *Match) Step() {
	dt := m.cfg.FixedStep
	m.World.RebuildIndex()

	if m.Turns.State == StateSetup {
		m.startTurn(domain.TeamPlayer)
	}
	if m.Turns.Update(dt) {
		m.menu.dirty = true
	}

	if m.Turns.InTurn() {
		m.processAITurn()
		m.checkTimeout(dt)
	}

	m.followPaths(dt)
	m.World.RebuildIndex()
	m.processActions()
	m.followOwners()
	m.World.RebuildIndex()
	m.resolveKicks(dt)

	if m.Turns.InTurn() {
		m.guardStall()
	}

	m.tick++
	m.Replay.Ticks = m.tick
	m.metrics.tick()
}

// Run steps the match n times without pacing. Used by headless runs and
// replays.
func (m *Match) Run(n int) {
	for i := 0; i < n; i++ {
		m.Step()
	}
}

func (m *Match) followPaths(dt float64) {
	for _, e := range m.World.Entities {
		if e.Path == nil {
			continue
		}
		res := systems.FollowPath(e, dt)
		if res.Moved || res.Finished {
			m.menu.dirty = true
		}
		if res.Exhausted {
			logger.Log.WithFields(logrus.Fields{
				"component": "match",
				"entity":    e.Name,
				"tick":      m.tick,
			}).Debug("out of action points")
		}
	}
}

// processActions pops one action from every entity that is not walking.
func (m *Match) processActions() {
	for _, e := range m.World.Entities {
		if e.Queue == nil || e.Path != nil {
			continue
		}
		action, ok := e.Queue.Pop()
		if !ok {
			continue
		}
		m.execute(e, action)
	}
}

// execute runs one action through the handler registry.
func (m *Match) execute(actor *domain.Entity, action domain.Action) {
	handler, ok := m.registry[action.Type]
	if !ok {
		logger.Log.WithFields(logrus.Fields{
			"component": "match",
			"action":    action.Type.String(),
		}).Warn("no handler registered")
		return
	}

	ctx := handlers.Context{
		Finder:    m.World,
		World:     m.World,
		Actor:     actor,
		Rng:       m.rng,
		FixedStep: m.cfg.FixedStep,
		PathStep:  m.cfg.PathStep,
	}

	result, err := handler(ctx, action)
	m.metrics.action(action.Type, err != nil)
	if err != nil {
		if errors.Is(err, systems.ErrPathFailed) {
			m.metrics.pathFailure()
		}
		logger.Log.WithFields(logrus.Fields{
			"component": "match",
			"actor":     actor.Name,
			"action":    action.String(),
			"tick":      m.tick,
		}).WithError(err).Warn("action dropped")
		if result.Msg == "" {
			result = handlers.Result{Msg: err.Error(), MsgType: handlers.LogError}
		}
	}

	if result.Msg != "" {
		m.Log.AddLog(result.Msg, result.MsgType)
	}
	if result.Event != nil {
		m.processEvent(actor, result.Event)
	}
	m.menu.dirty = true
}

// followOwners keeps every claimed entity on its owner's position.
func (m *Match) followOwners() {
	for _, e := range m.World.Entities {
		if e.ClaimedBy.IsZero() {
			continue
		}
		owner := m.World.GetEntity(e.ClaimedBy)
		if owner == nil {
			e.ClaimedBy = domain.NoEntity
			continue
		}
		e.Pos = owner.Pos
	}
}

func (m *Match) resolveKicks(dt float64) {
	ignore := domain.NoEntity
	if current := m.World.CurrentPlayer(); current != nil {
		ignore = current.ID
	}

	for _, e := range m.World.Entities {
		if e.Kicked == nil {
			continue
		}
		out := systems.ResolveKick(e, dt, m.World.Index, m.World, m.rng, ignore)
		if out.Moved || out.Settled {
			m.menu.dirty = true
		}
		if out.BlockedBy != nil {
			m.Log.AddLog(fmt.Sprintf("%s blocked incoming %s", out.BlockedBy.Name, e.DisplayName()), handlers.LogKick)
		}
		if out.Scored {
			scorer := out.Goal.Opponent()
			m.score[scorer]++
			m.metrics.goal(scorer)
			m.Log.AddLog(fmt.Sprintf("GOAL! %s team scores (%d:%d)", scorer,
				m.score[domain.TeamPlayer], m.score[domain.TeamEnemy]), handlers.LogGoal)
		}
	}
}

// checkTimeout ends a human turn that has been idle for too long.
func (m *Match) checkTimeout(dt float64) {
	current := m.World.CurrentPlayer()
	if current == nil || !m.cfg.IsHuman(current.Team) || m.cfg.TurnTimeout <= 0 {
		return
	}
	if !current.IsIdle() {
		m.idle = 0
		return
	}
	m.idle += dt
	if m.idle < m.cfg.TurnTimeout {
		return
	}

	m.idle = 0
	logger.Log.WithFields(logrus.Fields{
		"component": "match",
		"actor":     current.Name,
		"tick":      m.tick,
	}).Warn("turn timed out")
	m.Log.AddLog(fmt.Sprintf("%s ran out of time", current.Name), handlers.LogTurn)
	current.Queue.Push(domain.EndTurn(current.Team.Opponent()))
}

// guardStall hands the turn over when an AI player has run out of plan
// without reaching its EndTurn.
func (m *Match) guardStall() {
	current := m.World.CurrentPlayer()
	if current == nil || m.cfg.IsHuman(current.Team) || current.ID != m.planned {
		return
	}
	if !current.IsIdle() {
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "match",
		"actor":     current.Name,
		"tick":      m.tick,
	}).Warn("AI plan stalled, ending turn")
	current.Queue.Push(domain.EndTurn(current.Team.Opponent()))
}
