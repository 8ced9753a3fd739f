package version

import (
	"fmt"
	"runtime"
	"time"

	"rogue-soccer/internal/infrastructure/storage"
)

// Set at link time: -ldflags "-X rogue-soccer/internal/version.BuildDate=2026-10-18".
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
)

// buildEpoch is day zero of the build counter.
var buildEpoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// Info is served on /version and printed at startup.
type Info struct {
	BuildID      int    `json:"buildId"`
	BuildDate    string `json:"buildDate"`
	Commit       string `json:"commit"`
	GoVersion    string `json:"goVersion"`
	ReplayFormat uint32 `json:"replayFormat"`
	Error        string `json:"error,omitempty"`
}

// BuildID counts days since buildEpoch.
func BuildID(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("build date is empty")
	}
	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid build date %q: %w", date, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("build date %s is before epoch", date)
	}
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

func Current() Info {
	info := Info{
		BuildDate:    BuildDate,
		Commit:       BuildCommit,
		GoVersion:    runtime.Version(),
		ReplayFormat: storage.FormatVersion,
	}
	id, err := BuildID(BuildDate)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.BuildID = id
	return info
}

func String() string {
	info := Current()
	commit := info.Commit
	if commit == "" {
		commit = "unknown"
	}
	if info.Error != "" {
		return fmt.Sprintf("rogue-soccer dev build commit[%s] replay v%d", commit, info.ReplayFormat)
	}
	return fmt.Sprintf("rogue-soccer build %d (%s) commit[%s] replay v%d",
		info.BuildID, info.BuildDate, commit, info.ReplayFormat)
}
