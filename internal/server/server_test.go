package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"rogue-soccer/internal/domain"
	"rogue-soccer/internal/engine"
	"rogue-soccer/internal/network"
	"rogue-soccer/internal/version"
	"rogue-soccer/pkg/api"
	"rogue-soccer/pkg/logger"

	"github.com/gorilla/websocket"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*engine.GameService, *httptest.Server) {
	t.Helper()
	m, err := engine.NewStandardMatch(engine.Config{
		Seed:           11,
		FixedStep:      1.0 / 64,
		PathStep:       0.25,
		BannerDuration: 0.5,
		TurnTimeout:    60,
		HasHuman:       true,
		Stats:          domain.DefaultStats(),
	})
	if err != nil {
		t.Fatalf("NewStandardMatch: %v", err)
	}
	svc := engine.NewService(m, network.NewBroadcaster())
	ts := httptest.NewServer(New(svc, "0").Handler())
	t.Cleanup(ts.Close)
	return svc, ts
}

func get(t *testing.T, url string) string {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status %d", url, resp.StatusCode)
	}
	return strings.TrimSpace(string(body))
}

func TestHTTPRoutes(t *testing.T) {
	_, ts := newTestServer(t)

	var health healthResponse
	if err := json.Unmarshal([]byte(get(t, ts.URL+"/health")), &health); err != nil {
		t.Fatalf("/health: %v", err)
	}
	if health.Status != "ok" || health.Players != 0 || health.Spectators != 0 {
		t.Errorf("/health = %+v", health)
	}

	var info version.Info
	if err := json.Unmarshal([]byte(get(t, ts.URL+"/version")), &info); err != nil {
		t.Fatalf("/version: %v", err)
	}
	if info.ReplayFormat != 2 || info.GoVersion == "" {
		t.Errorf("/version = %+v", info)
	}

	// nothing has ticked yet
	if body := get(t, ts.URL+"/debug/entities"); body != "[]" {
		t.Errorf("/debug/entities = %q", body)
	}
	if body := get(t, ts.URL+"/debug/queue"); body != "[]" {
		t.Errorf("/debug/queue = %q", body)
	}
}

func TestWebSocketSession(t *testing.T) {
	svc, ts := newTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	go func() { _ = svc.Run(ctx, 0) }()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	readUntil := func(what string, ok func(api.ServerResponse) bool) {
		t.Helper()
		_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		for i := 0; i < 500; i++ {
			var msg api.ServerResponse
			if err := conn.ReadJSON(&msg); err != nil {
				t.Fatalf("waiting for %s: %v", what, err)
			}
			if ok(msg) {
				return
			}
		}
		t.Fatalf("no %s received", what)
	}

	readUntil("join snapshot", func(m api.ServerResponse) bool {
		return m.Field != nil && len(m.Entities) == 23
	})

	if err := conn.WriteJSON(api.ClientCommand{Action: "DANCE"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	readUntil("error reply", func(m api.ServerResponse) bool {
		return m.Type == "ERROR" && strings.Contains(m.Error, "unknown action")
	})

	if body := get(t, ts.URL+"/debug/entities"); body == "[]" {
		t.Error("debug entities should be filled once the match ticks")
	}

	viewer, _, err := websocket.DefaultDialer.Dial(url+"?role=spectator", nil)
	if err != nil {
		t.Fatalf("dial spectator: %v", err)
	}
	defer viewer.Close()

	_ = viewer.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := viewer.WriteJSON(api.ClientCommand{Action: "SKIP"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	rejected := false
	for i := 0; i < 500 && !rejected; i++ {
		var msg api.ServerResponse
		if err := viewer.ReadJSON(&msg); err != nil {
			t.Fatalf("spectator read: %v", err)
		}
		if msg.Actions != nil {
			t.Fatalf("spectator received a menu: %v", msg.Actions)
		}
		rejected = msg.Type == "ERROR" && msg.Error == "spectators cannot command"
	}
	if !rejected {
		t.Error("spectator command was not rejected")
	}

	var health healthResponse
	if err := json.Unmarshal([]byte(get(t, ts.URL+"/health")), &health); err != nil {
		t.Fatalf("/health: %v", err)
	}
	if health.Players != 1 || health.Spectators != 1 || health.Tick == 0 {
		t.Errorf("/health = %+v", health)
	}
}
