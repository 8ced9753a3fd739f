package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"rogue-soccer/internal/domain"
	"rogue-soccer/internal/engine/handlers"
	"rogue-soccer/internal/network"
	"rogue-soccer/pkg/api"
	"rogue-soccer/pkg/logger"

	"github.com/sirupsen/logrus"
)

// GameService runs a match on its own goroutine. Clients talk to it only
// through CommandChan and JoinChan, so the match has a single writer.
type GameService struct {
	Match *Match
	Hub   *network.Broadcaster

	CommandChan chan api.ClientCommand
	JoinChan    chan string

	commands map[string]handlers.CommandFunc[*Match]

	// copies of the match state for the debug endpoints
	debugMu      sync.RWMutex
	debugEntries []domain.Entity
	debugQueue   []map[string]interface{}
	debugTick    int
}

func NewService(m *Match, hub *network.Broadcaster) *GameService {
	s := &GameService{
		Match:       m,
		Hub:         hub,
		CommandChan: make(chan api.ClientCommand, 100),
		JoinChan:    make(chan string, 10),
		commands:    make(map[string]handlers.CommandFunc[*Match]),
	}
	s.registerCommands()
	return s
}

func (s *GameService) registerCommands() {
	s.commands["CURSOR"] = handlers.WithPayload(func(m *Match, p api.CursorPayload) error {
		m.SetCursor(domain.Vec2{X: p.X, Y: p.Y})
		return nil
	})
	s.commands["SLOT"] = handlers.WithPayload(func(m *Match, p api.SlotPayload) error {
		return m.PressSlot(p.Slot)
	})
	s.commands["WALK"] = handlers.WithPayload(func(m *Match, p api.CursorPayload) error {
		return m.Submit(domain.Intent{Ability: domain.AbilityWalk, Cursor: domain.Vec2{X: p.X, Y: p.Y}})
	})
	s.commands["SKIP"] = handlers.WithPayload(func(m *Match, _ struct{}) error {
		return m.Submit(domain.Intent{Ability: domain.AbilitySkip, Cursor: m.Cursor()})
	})
	for _, ability := range []domain.AbilityType{
		domain.AbilityKick, domain.AbilityTakeControl, domain.AbilityFoul, domain.AbilityPass,
	} {
		s.commands[ability.String()] = handlers.WithPayload(targetCommand(ability))
	}
}

func targetCommand(ability domain.AbilityType) handlers.TypedCommandFunc[*Match, api.TargetPayload] {
	return func(m *Match, p api.TargetPayload) error {
		return m.Submit(domain.Intent{
			Ability: ability,
			Target:  domain.EntityID(p.TargetID),
			Cursor:  domain.Vec2{X: p.X, Y: p.Y},
		})
	}
}

// ProcessCommand hands a client command to the match loop. It never blocks;
// commands arriving while the buffer is full are dropped.
func (s *GameService) ProcessCommand(cmd api.ClientCommand) {
	select {
	case s.CommandChan <- cmd:
	default:
		logger.Log.WithFields(logrus.Fields{
			"component": "service",
			"client":    cmd.Token,
			"action":    cmd.Action,
		}).Warn("command buffer full, dropped")
	}
}

// Join asks the loop to send a full snapshot to a newly registered client.
func (s *GameService) Join(clientID string) {
	select {
	case s.JoinChan <- clientID:
	default:
	}
}

// Run ticks the match at the fixed step until ctx is done. When maxTicks is
// positive the loop also stops after that many ticks.
func (s *GameService) Run(ctx context.Context, maxTicks int) error {
	cfg := s.Match.Config()
	ticker := time.NewTicker(time.Duration(cfg.FixedStep * float64(time.Second)))
	defer ticker.Stop()

	logger.Log.WithFields(logrus.Fields{
		"component": "service",
		"seed":      cfg.Seed,
		"step":      cfg.FixedStep,
	}).Info("match loop started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case id := <-s.JoinChan:
			history := s.Match.Log.History()
			if len(history) > joinHistory {
				history = history[len(history)-joinHistory:]
			}
			s.Hub.SendTo(id, s.Match.BuildState(true, history))

		case cmd := <-s.CommandChan:
			s.apply(cmd)

		case <-ticker.C:
			s.Match.Step()
			s.Hub.Broadcast(s.Match.BuildState(false, s.Match.Log.Drain()))
			s.refreshDebug()
			if maxTicks > 0 && s.Match.Tick() >= maxTicks {
				return nil
			}
		}
	}
}

// joinHistory is how many past log lines a joining client receives.
const joinHistory = 50

func (s *GameService) apply(cmd api.ClientCommand) {
	if !s.Hub.CanCommand(cmd.Token) {
		s.reject(cmd, ErrSpectator)
		return
	}
	handler, ok := s.commands[strings.ToUpper(cmd.Action)]
	if !ok {
		s.reject(cmd, fmt.Errorf("unknown action %q", cmd.Action))
		return
	}
	if err := handler(s.Match, cmd.Payload); err != nil {
		s.reject(cmd, err)
	}
}

func (s *GameService) reject(cmd api.ClientCommand, err error) {
	logger.Log.WithFields(logrus.Fields{
		"component": "service",
		"client":    cmd.Token,
		"action":    cmd.Action,
	}).WithError(err).Debug("command rejected")
	s.Hub.SendTo(cmd.Token, api.ServerResponse{
		Type:  "ERROR",
		Tick:  s.Match.Tick(),
		Error: err.Error(),
	})
}

func (s *GameService) refreshDebug() {
	entities := make([]domain.Entity, 0, len(s.Match.World.Entities))
	for _, e := range s.Match.World.Entities {
		c := *e
		c.Queue = nil
		c.Path = nil
		if e.Stats != nil {
			stats := *e.Stats
			c.Stats = &stats
		}
		if e.Kicked != nil {
			kicked := *e.Kicked
			c.Kicked = &kicked
		}
		entities = append(entities, c)
	}
	queue := s.Match.Turns.DebugDump()

	s.debugMu.Lock()
	s.debugEntries = entities
	s.debugQueue = queue
	s.debugTick = s.Match.Tick()
	s.debugMu.Unlock()
}

// DebugTick returns the tick of the last refresh.
func (s *GameService) DebugTick() int {
	s.debugMu.RLock()
	defer s.debugMu.RUnlock()
	return s.debugTick
}

// DebugEntities returns the entities as of the last tick.
func (s *GameService) DebugEntities() []domain.Entity {
	s.debugMu.RLock()
	defer s.debugMu.RUnlock()
	return s.debugEntries
}

// DebugQueue returns the remaining turn order as of the last tick.
func (s *GameService) DebugQueue() []map[string]interface{} {
	s.debugMu.RLock()
	defer s.debugMu.RUnlock()
	return s.debugQueue
}
