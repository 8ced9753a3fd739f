package storage

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"rogue-soccer/internal/domain"
)

// ErrBadMagic is returned for files that are not replays.
var ErrBadMagic = errors.New("invalid replay magic")

// Load reads a replay file written by Save.
func Load(path string) (*domain.ReplaySession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(bufio.NewReader(f))
}

func readBinary(r io.Reader) (*domain.ReplaySession, error) {
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicHeader {
		return nil, ErrBadMagic
	}
	if header.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, FormatVersion)
	}
	if header.ActionCount < 0 || header.Ticks < 0 {
		return nil, fmt.Errorf("corrupt header: %d actions over %d ticks", header.ActionCount, header.Ticks)
	}

	session := &domain.ReplaySession{
		Seed:      header.Seed,
		Timestamp: header.Timestamp,
		Ticks:     int(header.Ticks),
		HumanTeam: domain.Team(header.HumanTeam),
		HasHuman:  header.HasHuman != 0,
		Actions:   make([]domain.ReplayAction, header.ActionCount),
	}
	if session.HasHuman && session.HumanTeam != domain.TeamPlayer && session.HumanTeam != domain.TeamEnemy {
		return nil, fmt.Errorf("corrupt header: human team %d", header.HumanTeam)
	}

	for i := range session.Actions {
		var ah ActionHeader
		if err := binary.Read(r, binary.LittleEndian, &ah); err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		session.Actions[i] = domain.ReplayAction{
			Tick:    int(ah.Tick),
			Ability: domain.AbilityType(ah.Ability),
			Target:  domain.EntityID(ah.Target),
			Cursor:  domain.Vec2{X: ah.CursorX, Y: ah.CursorY},
		}
	}

	return session, nil
}
