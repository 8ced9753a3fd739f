package server

import (
	"net/http"
	"time"

	"rogue-soccer/internal/engine"
	"rogue-soccer/internal/network"
	"rogue-soccer/pkg/api"
	"rogue-soccer/pkg/logger"
	"rogue-soccer/pkg/utils"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client connects one websocket to the GameService. A player connection
// steers the current human player; a spectator only receives snapshots.
type Client struct {
	ID   string
	Game *engine.GameService
	Conn *websocket.Conn
	Send chan api.ServerResponse
}

// NewClient registers the connection on the hub and asks for a full
// snapshot.
func NewClient(game *engine.GameService, conn *websocket.Conn, role network.Role) *Client {
	id := utils.GenerateID("ws-")
	c := &Client{
		ID:   id,
		Game: game,
		Conn: conn,
		Send: game.Hub.Register(id, role),
	}
	game.Join(id)

	logger.Log.WithFields(logrus.Fields{
		"component": "client",
		"client":    id,
		"role":      role.String(),
		"remote":    conn.RemoteAddr().String(),
	}).Info("client connected")
	return c
}

// readPump forwards commands to the match loop until the socket fails.
func (c *Client) readPump() {
	defer func() {
		c.Game.Hub.Unregister(c.ID)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
		logger.Log.WithFields(logrus.Fields{
			"component": "client",
			"client":    c.ID,
		}).Info("client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.WithField("client", c.ID).WithError(err).Warn("websocket read failed")
			}
			return
		}
		// the connection, not the payload, decides who sent it
		cmd.Token = c.ID
		c.Game.ProcessCommand(cmd)
	}
}

// writePump relays hub messages and keeps the connection alive with pings.
// It exits when the hub closes Send.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
