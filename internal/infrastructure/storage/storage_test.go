package storage

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"rogue-soccer/internal/domain"
	"rogue-soccer/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSession() *domain.ReplaySession {
	return &domain.ReplaySession{
		Seed:      42,
		Timestamp: 1700000000,
		Ticks:     900,
		HumanTeam: domain.TeamEnemy,
		HasHuman:  true,
		Actions: []domain.ReplayAction{
			{Tick: 70, Ability: domain.AbilityWalk, Cursor: domain.Vec2{X: 24.5, Y: -8.125}},
			{Tick: 300, Ability: domain.AbilityKick, Target: 1, Cursor: domain.Vec2{X: 4, Y: 4}},
			{Tick: 512, Ability: domain.AbilitySkip},
		},
	}
}

func TestReplay_SaveLoad(t *testing.T) {
	svc, err := NewReplayService(filepath.Join(t.TempDir(), "replays"))
	require.NoError(t, err)

	session := sampleSession()
	path, err := svc.Save(session)
	require.NoError(t, err)
	assert.Equal(t, FileExt, filepath.Ext(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, session, loaded)
}

func TestReplay_Layout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeBinary(&buf, sampleSession()))

	headerSize := binary.Size(ReplayFileHeader{})
	actionSize := binary.Size(ActionHeader{})
	assert.Equal(t, headerSize+3*actionSize, buf.Len())
	assert.Equal(t, MagicHeader, string(buf.Bytes()[:4]))
}

func TestReplay_HeadlessSeating(t *testing.T) {
	svc, err := NewReplayService(t.TempDir())
	require.NoError(t, err)

	session := &domain.ReplaySession{Seed: 7, Timestamp: 1700000001, Ticks: 1500, Actions: []domain.ReplayAction{}}
	path, err := svc.Save(session)
	require.NoError(t, err)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.False(t, loaded.HasHuman)
	assert.Equal(t, session, loaded)
}

func TestReplay_RejectsOldFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeBinary(&buf, sampleSession()))
	raw := buf.Bytes()
	binary.LittleEndian.PutUint32(raw[4:8], 1)

	_, err := readBinary(bytes.NewReader(raw))
	assert.ErrorContains(t, err, "unsupported version: 1")
}

func TestReplay_RejectsUnknownHumanTeam(t *testing.T) {
	session := sampleSession()
	session.HumanTeam = domain.Team(9)

	var buf bytes.Buffer
	require.NoError(t, writeBinary(&buf, session))

	_, err := readBinary(bytes.NewReader(buf.Bytes()))
	assert.ErrorContains(t, err, "human team 9")
}

func TestReplay_RejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.srrp")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte{'x'}, 64), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestReplay_Truncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeBinary(&buf, sampleSession()))
	truncated := buf.Bytes()[:buf.Len()-5]

	_, err := readBinary(bytes.NewReader(truncated))
	assert.Error(t, err)
}

func TestJournal_RecordAndList(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "journal.db")
	j, err := OpenJournal(DriverSQLite, dsn, 7)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })

	j.Observe(api.LogEntry{ID: "1_1", Tick: 1, Text: "PLAYER team's turn", Type: "TURN"})
	j.Observe(api.LogEntry{ID: "40_2", Tick: 40, Text: "Ann kicked the ball", Type: "KICK"})
	j.Observe(api.LogEntry{ID: "90_3", Tick: 90, Text: "ENEMY team's turn", Type: "TURN"})

	turns, err := j.ListByType("TURN")
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "PLAYER team's turn", turns[0].Text)
	assert.Equal(t, 90, turns[1].Tick)
	assert.Equal(t, int64(7), turns[1].MatchSeed)
	assert.Contains(t, string(turns[0].Fields), `"id":"1_1"`)

	kicks, err := j.ListByType("KICK")
	require.NoError(t, err)
	assert.Len(t, kicks, 1)
}

func TestJournal_SeparatesMatches(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "journal.db")
	a, err := OpenJournal(DriverSQLite, dsn, 1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	b, err := OpenJournal(DriverSQLite, dsn, 2)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	require.NoError(t, a.Record(api.LogEntry{Tick: 1, Text: "GOAL! PLAYER team scores (1:0)", Type: "GOAL"}))

	got, err := b.ListByType("GOAL")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOpenJournal_UnknownDriver(t *testing.T) {
	_, err := OpenJournal("mysql", "", 0)
	assert.Error(t, err)
}

func TestJournal_Close(t *testing.T) {
	j, err := OpenJournal(DriverSQLite, filepath.Join(t.TempDir(), "journal.db"), 3)
	require.NoError(t, err)

	require.NoError(t, j.Close())
	assert.Error(t, j.Record(api.LogEntry{Tick: 1, Text: "late entry", Type: "INFO"}))
}
