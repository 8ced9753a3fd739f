package storage

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"rogue-soccer/internal/domain"
)

const (
	MagicHeader string = `SRRP` // 4 bytes
	// FormatVersion 2 added the human seating to the header.
	FormatVersion uint32 = 2

	// FileExt is the extension of saved replays.
	FileExt = ".srrp"
)

// ReplayFileHeader is the on-disk file header. binary.Write can encode it
// in one call because it holds only fixed-size fields.
type ReplayFileHeader struct {
	Magic       [4]byte
	Version     uint32
	Seed        int64
	Timestamp   int64
	Ticks       int32
	ActionCount int32
	HasHuman    uint8
	HumanTeam   uint8
}

// ActionHeader is one recorded intent. The cursor is stored at full
// precision so a replayed walk picks the same tiles.
type ActionHeader struct {
	Tick    int32
	Ability uint8
	Target  uint32
	CursorX float64
	CursorY float64
}

type ReplayService struct {
	SaveDir string
}

// NewReplayService creates dir if needed.
func NewReplayService(dir string) (*ReplayService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating replay dir: %w", err)
	}
	return &ReplayService{SaveDir: dir}, nil
}

// Save writes session under SaveDir and returns the file path.
func (s *ReplayService) Save(session *domain.ReplaySession) (string, error) {
	filename := fmt.Sprintf("replay_%d_%d%s", session.Seed, session.Timestamp, FileExt)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := writeBinary(bw, session); err != nil {
		return "", err
	}
	if err := bw.Flush(); err != nil {
		return "", fmt.Errorf("flushing replay: %w", err)
	}
	return path, nil
}

func writeBinary(w io.Writer, s *domain.ReplaySession) error {
	header := ReplayFileHeader{
		Version:     FormatVersion,
		Seed:        s.Seed,
		Timestamp:   s.Timestamp,
		Ticks:       int32(s.Ticks),
		ActionCount: int32(len(s.Actions)),
		HumanTeam:   uint8(s.HumanTeam),
	}
	if s.HasHuman {
		header.HasHuman = 1
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, act := range s.Actions {
		ah := ActionHeader{
			Tick:    int32(act.Tick),
			Ability: uint8(act.Ability),
			Target:  uint32(act.Target),
			CursorX: act.Cursor.X,
			CursorY: act.Cursor.Y,
		}
		if err := binary.Write(w, binary.LittleEndian, &ah); err != nil {
			return fmt.Errorf("action %d: %w", i, err)
		}
	}
	return nil
}
