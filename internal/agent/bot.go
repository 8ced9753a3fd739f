package agent

import (
	"context"
	"encoding/json"
	"math"

	"rogue-soccer/internal/domain"
	"rogue-soccer/internal/engine"
	"rogue-soccer/internal/network"
	"rogue-soccer/pkg/api"
	"rogue-soccer/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Bot plays the human side of a match as an ordinary client: it registers
// on the hub, reads the same snapshots a browser would and answers with the
// same commands.
//
// Each turn of the bot's team goes through three phases:
//  1. play: take the ball, pass it toward the opponent goal or walk at it.
//  2. wait until the current player is idle again, then SKIP.
//  3. done until the next banner.
//
// A rejected command (ERROR reply) rewinds to phase 2 so the turn is still
// closed once the player stops moving.
type Bot struct {
	ClientID string
	Service  *engine.GameService
	Inbox    chan api.ServerResponse

	phase botPhase
	// goal tiles keyed by the team defending them, learned from the join snapshot
	goals map[string][]api.TileView
}

type botPhase int

const (
	phaseIdle botPhase = iota
	phaseActing
	phaseDone
)

func NewBot(clientID string, service *engine.GameService) *Bot {
	logger.Log.WithFields(logrus.Fields{
		"component": "bot",
		"client":    clientID,
	}).Info("bot registered")

	b := &Bot{
		ClientID: clientID,
		Service:  service,
		Inbox:    service.Hub.Register(clientID, network.RolePlayer),
		goals:    make(map[string][]api.TileView),
	}
	service.Join(clientID)
	return b
}

// Run consumes snapshots until ctx is done or the hub drops the bot.
func (b *Bot) Run(ctx context.Context) {
	defer b.Service.Hub.Unregister(b.ClientID)

	for {
		select {
		case <-ctx.Done():
			return
		case state, ok := <-b.Inbox:
			if !ok {
				return
			}
			if cmd := b.Decide(state); cmd != nil {
				cmd.Token = b.ClientID
				b.Service.ProcessCommand(*cmd)
			}
		}
	}
}

// Decide returns the command to send for a snapshot, or nil.
func (b *Bot) Decide(state api.ServerResponse) *api.ClientCommand {
	if state.Field != nil {
		b.learnField(state.Field)
	}
	if state.Type == "ERROR" {
		if b.phase == phaseDone {
			b.phase = phaseActing
		}
		return nil
	}
	if state.State == "BANNER" || state.CurrentPlayer == 0 {
		b.phase = phaseIdle
		return nil
	}
	// the menu is only filled in for the human side
	if len(state.Actions) == 0 {
		return nil
	}

	me, ball, holder := findActors(state)
	if me == nil || me.Walking {
		return nil
	}

	switch b.phase {
	case phaseIdle:
		b.phase = phaseActing
		return b.play(me, ball, holder)
	case phaseActing:
		b.phase = phaseDone
		return command("SKIP", nil)
	}
	return nil
}

func (b *Bot) play(me, ball, holder *api.EntityView) *api.ClientCommand {
	if ball == nil || me.Stats == nil {
		return command("SKIP", nil)
	}

	if me.Claimed == ball.ID {
		x, y, ok := b.goalCenter(me.Team)
		if !ok {
			return command("SKIP", nil)
		}
		return command("PASS", api.TargetPayload{TargetID: ball.ID, X: x, Y: y})
	}

	// a teammate already has it
	if holder != nil && holder.Team == me.Team {
		return command("SKIP", nil)
	}

	from := domain.ToTile(domain.Vec2{X: me.X, Y: me.Y})
	to := domain.ToTile(domain.Vec2{X: ball.X, Y: ball.Y})
	dist := chebyshev(from, to)
	ap := me.Stats.AP

	if dist <= ap {
		return command("TAKE_CONTROL", api.TargetPayload{TargetID: ball.ID, X: ball.X, Y: ball.Y})
	}
	if ap <= 0 {
		return command("SKIP", nil)
	}

	// walk the AP budget along the line to the ball
	k := float64(ap) / float64(dist)
	step := domain.Tile{
		X: from.X + int(math.Round(float64(to.X-from.X)*k)),
		Y: from.Y + int(math.Round(float64(to.Y-from.Y)*k)),
	}
	dest := domain.ToWorld(step)
	return command("WALK", api.CursorPayload{X: dest.X, Y: dest.Y})
}

func (b *Bot) learnField(f *api.FieldMeta) {
	b.goals = make(map[string][]api.TileView)
	for _, t := range f.Tiles {
		if t.Kind == "GOAL" {
			b.goals[t.Team] = append(b.goals[t.Team], t)
		}
	}
}

// goalCenter returns the world centre of the goal the given team attacks.
func (b *Bot) goalCenter(myTeam string) (float64, float64, bool) {
	team, ok := domain.ParseTeam(myTeam)
	if !ok {
		return 0, 0, false
	}
	tiles := b.goals[team.Opponent().String()]
	if len(tiles) == 0 {
		return 0, 0, false
	}
	var sx, sy float64
	for _, t := range tiles {
		p := domain.ToWorld(domain.Tile{X: t.X, Y: t.Y})
		sx += p.X
		sy += p.Y
	}
	n := float64(len(tiles))
	return sx / n, sy / n, true
}

func findActors(state api.ServerResponse) (me, ball, holder *api.EntityView) {
	for i := range state.Entities {
		ev := &state.Entities[i]
		if ev.ID == state.CurrentPlayer {
			me = ev
		}
		if ev.Kind == "BALL" && ball == nil {
			ball = ev
		}
	}
	if ball != nil && ball.ClaimedBy != 0 {
		for i := range state.Entities {
			if state.Entities[i].ID == ball.ClaimedBy {
				holder = &state.Entities[i]
			}
		}
	}
	return me, ball, holder
}

func chebyshev(a, b domain.Tile) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

func command(action string, payload interface{}) *api.ClientCommand {
	cmd := &api.ClientCommand{Action: action}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			logger.Log.WithField("component", "bot").WithError(err).Error("marshal payload")
			return nil
		}
		cmd.Payload = raw
	}
	return cmd
}
