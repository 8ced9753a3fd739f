package network

import (
	"sync"

	"rogue-soccer/pkg/api"
	"rogue-soccer/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Role is what a connected client may do in the match.
type Role int

const (
	// RolePlayer steers the human side: it gets the action menu and its
	// commands reach the match.
	RolePlayer Role = iota
	// RoleSpectator only watches.
	RoleSpectator
)

func (r Role) String() string {
	if r == RoleSpectator {
		return "spectator"
	}
	return "player"
}

// ParseRole maps a query value to a role; anything but "spectator" seats a
// player.
func ParseRole(s string) Role {
	if s == "spectator" {
		return RoleSpectator
	}
	return RolePlayer
}

// Seats counts connected clients per role.
type Seats struct {
	Players    int `json:"players"`
	Spectators int `json:"spectators"`
}

type seat struct {
	role Role
	ch   chan api.ServerResponse
}

// Broadcaster fans match snapshots out to the seats of one match. Sends
// never block the match loop: a client whose channel is full misses the
// update. Spectators never get the action menu.
type Broadcaster struct {
	mu    sync.RWMutex
	seats map[string]seat
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		seats: make(map[string]seat),
	}
}

// Register seats a client with role, replacing an older seat of the same id.
func (b *Broadcaster) Register(clientID string, role Role) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.seats[clientID]; ok {
		close(old.ch)
	}

	ch := make(chan api.ServerResponse, 100)
	b.seats[clientID] = seat{role: role, ch: ch}

	logger.Log.WithFields(logrus.Fields{
		"component": "hub",
		"client":    clientID,
		"role":      role.String(),
	}).Debug("seat taken")
	return ch
}

// Unregister closes and removes a client's seat.
func (b *Broadcaster) Unregister(clientID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if s, ok := b.seats[clientID]; ok {
		close(s.ch)
		delete(b.seats, clientID)
	}
}

// SendTo delivers msg to one client. Spectators get it without Actions.
func (b *Broadcaster) SendTo(clientID string, msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if s, ok := b.seats[clientID]; ok {
		if s.role == RoleSpectator {
			msg.Actions = nil
		}
		b.deliver(clientID, s.ch, msg)
	}
}

// Broadcast delivers msg to every seat. Spectators get it without Actions.
func (b *Broadcaster) Broadcast(msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	watch := msg
	watch.Actions = nil
	for id, s := range b.seats {
		if s.role == RoleSpectator {
			b.deliver(id, s.ch, watch)
			continue
		}
		b.deliver(id, s.ch, msg)
	}
}

func (b *Broadcaster) deliver(clientID string, ch chan api.ServerResponse, msg api.ServerResponse) {
	select {
	case ch <- msg:
	default:
		logger.Log.WithFields(logrus.Fields{
			"component": "hub",
			"client":    clientID,
		}).Debug("channel full, update dropped")
	}
}

// CanCommand reports whether clientID holds a player seat.
func (b *Broadcaster) CanCommand(clientID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s, ok := b.seats[clientID]
	return ok && s.role == RolePlayer
}

// Seats counts the connected clients.
func (b *Broadcaster) Seats() Seats {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var out Seats
	for _, s := range b.seats {
		if s.role == RoleSpectator {
			out.Spectators++
		} else {
			out.Players++
		}
	}
	return out
}
