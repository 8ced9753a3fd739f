package main

import (
	"errors"
	"testing"

	"rogue-soccer/pkg/logger"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestCloseJournal(t *testing.T) {
	hook := test.NewLocal(logger.Log)
	defer hook.Reset()

	closeJournal(closerFunc(func() error { return nil }))
	if len(hook.AllEntries()) != 0 {
		t.Fatalf("clean close logged %v", hook.AllEntries())
	}

	closeJournal(closerFunc(func() error { return errors.New("database is locked") }))
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.WarnLevel {
		t.Fatalf("entry = %+v, want a warning", entry)
	}
	if err, _ := entry.Data[logrus.ErrorKey].(error); err == nil || err.Error() != "database is locked" {
		t.Errorf("logged error = %v", entry.Data[logrus.ErrorKey])
	}
}
