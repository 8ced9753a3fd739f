package engine

import (
	"fmt"
	"sync"
	"time"

	"rogue-soccer/pkg/api"
	"rogue-soccer/pkg/logger"

	"github.com/sirupsen/logrus"
)

// LogObserver receives every log line as it is added.
type LogObserver interface {
	Observe(entry api.LogEntry)
}

// MatchLog is the human-readable narration of a match. Lines accumulate in
// the history and in a pending buffer that the transport drains per update.
type MatchLog struct {
	mu        sync.Mutex
	tick      func() int
	seq       int
	history   []api.LogEntry
	pending   []api.LogEntry
	observers []LogObserver
}

// NewMatchLog creates a log stamping entries with tick().
func NewMatchLog(tick func() int) *MatchLog {
	return &MatchLog{tick: tick}
}

// Subscribe registers an observer, e.g. the match journal.
func (l *MatchLog) Subscribe(o LogObserver) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observers = append(l.observers, o)
}

// AddLog appends a line to the match history.
func (l *MatchLog) AddLog(text, logType string) {
	l.mu.Lock()
	tick := l.tick()
	l.seq++
	entry := api.LogEntry{
		ID:        fmt.Sprintf("%d_%d", tick, l.seq),
		Tick:      tick,
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	}
	l.history = append(l.history, entry)
	l.pending = append(l.pending, entry)
	observers := l.observers
	l.mu.Unlock()

	logger.Log.WithFields(logrus.Fields{
		"tick":      tick,
		"component": "game_log",
		"log_type":  logType,
	}).Info(text)

	for _, o := range observers {
		o.Observe(entry)
	}
}

// Drain returns and clears the lines added since the previous Drain.
func (l *MatchLog) Drain() []api.LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.pending
	l.pending = nil
	return out
}

// History returns a copy of every line so far.
func (l *MatchLog) History() []api.LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]api.LogEntry, len(l.history))
	copy(out, l.history)
	return out
}

// Texts returns the text of every line, for tests and the headless summary.
func (l *MatchLog) Texts() []string {
	h := l.History()
	out := make([]string, len(h))
	for i, e := range h {
		out[i] = e.Text
	}
	return out
}
