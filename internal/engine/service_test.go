package engine

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"rogue-soccer/internal/network"
	"rogue-soccer/pkg/api"
)

func TestBuildState(t *testing.T) {
	m, p := newTestMatch(t, testConfig())
	stepUntil(t, m, 40, m.Turns.InTurn)

	state := m.BuildState(true, m.Log.Drain())

	if state.Type != "UPDATE" || state.State != "PLAYER_TURN" || state.Team != "PLAYER" {
		t.Errorf("header = %s %s %s", state.Type, state.State, state.Team)
	}
	if state.CurrentPlayer != uint32(p.ada.ID) {
		t.Errorf("current = %d, want %d", state.CurrentPlayer, p.ada.ID)
	}
	if len(state.Entities) != 4 {
		t.Fatalf("%d entities, want 4", len(state.Entities))
	}
	if ball := state.Entities[0]; ball.Kind != "BALL" || ball.Team != "" || ball.Stats != nil {
		t.Errorf("ball view = %+v", ball)
	}
	if state.Field == nil || len(state.Field.Tiles) != 6 {
		t.Fatalf("field = %+v", state.Field)
	}
	if state.Field.Tiles[0].Kind != "GOAL" || state.Field.Tiles[0].Team == "" {
		t.Errorf("goal tile = %+v", state.Field.Tiles[0])
	}
	if len(state.Logs) == 0 || len(m.Log.Drain()) != 0 {
		t.Error("logs should be handed over once")
	}
	if len(state.Actions) == 0 {
		t.Error("human turn should carry the action menu")
	}

	if m.BuildState(false, nil).Field != nil {
		t.Error("field should only be sent on join")
	}
}

func mustJSON(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestService_Commands(t *testing.T) {
	m, p := newTestMatch(t, testConfig())
	hub := network.NewBroadcaster()
	s := NewService(m, hub)
	ch := hub.Register("c1", network.RolePlayer)

	expectError := func(cmd api.ClientCommand, contains string) {
		t.Helper()
		s.apply(cmd)
		select {
		case msg := <-ch:
			if msg.Type != "ERROR" || !strings.Contains(msg.Error, contains) {
				t.Errorf("%s: got %s %q, want error containing %q", cmd.Action, msg.Type, msg.Error, contains)
			}
		default:
			t.Errorf("%s: no error sent", cmd.Action)
		}
	}

	walk := api.ClientCommand{Token: "c1", Action: "walk", Payload: mustJSON(t, api.CursorPayload{X: -8})}
	expectError(walk, ErrNotYourTurn.Error())
	expectError(api.ClientCommand{Token: "c1", Action: "DANCE"}, "unknown action")
	expectError(api.ClientCommand{Token: "c1", Action: "SLOT", Payload: mustJSON(t, api.SlotPayload{Slot: 99})}, "validation failed")
	expectError(api.ClientCommand{Token: "c1", Action: "KICK", Payload: json.RawMessage(`{"targetId":`)}, "invalid payload")

	viewer := hub.Register("v1", network.RoleSpectator)
	s.apply(api.ClientCommand{Token: "v1", Action: "SKIP"})
	if msg := <-viewer; msg.Type != "ERROR" || msg.Error != ErrSpectator.Error() {
		t.Errorf("spectator command: %s %q", msg.Type, msg.Error)
	}

	stepUntil(t, m, 40, m.Turns.InTurn)
	s.apply(walk)
	if len(ch) != 0 {
		t.Errorf("valid command produced %v", <-ch)
	}
	if p.ada.Queue.Len() != 1 {
		t.Errorf("queue = %v", p.ada.Queue.Snapshot())
	}

	s.apply(api.ClientCommand{Token: "c1", Action: "CURSOR", Payload: mustJSON(t, api.CursorPayload{X: 24, Y: 8})})
	if m.Cursor().X != 24 || m.Cursor().Y != 8 {
		t.Errorf("cursor = %v", m.Cursor())
	}
}

func TestService_Run(t *testing.T) {
	m, _ := newTestMatch(t, testConfig())
	hub := network.NewBroadcaster()
	s := NewService(m, hub)
	ch := hub.Register("viewer", network.RoleSpectator)

	s.Join("viewer")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Run(ctx, 3); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if m.Tick() != 3 {
		t.Errorf("ran %d ticks, want 3", m.Tick())
	}

	var withField, updates int
	for len(ch) > 0 {
		msg := <-ch
		updates++
		if msg.Field != nil {
			withField++
		}
	}
	if withField != 1 || updates != 4 {
		t.Errorf("got %d messages (%d with field), want 4 (1)", updates, withField)
	}
	if len(s.DebugEntities()) != 4 || len(s.DebugQueue()) != 1 {
		t.Errorf("debug state: %d entities, %d waiting", len(s.DebugEntities()), len(s.DebugQueue()))
	}
}

func TestService_ProcessCommandNeverBlocks(t *testing.T) {
	m, _ := newTestMatch(t, testConfig())
	s := NewService(m, network.NewBroadcaster())
	for i := 0; i < cap(s.CommandChan)+5; i++ {
		s.ProcessCommand(api.ClientCommand{Action: "SKIP"})
	}
	if len(s.CommandChan) != cap(s.CommandChan) {
		t.Errorf("buffered %d commands", len(s.CommandChan))
	}
}
