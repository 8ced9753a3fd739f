package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"rogue-soccer/internal/agent"
	"rogue-soccer/internal/config"
	"rogue-soccer/internal/domain"
	"rogue-soccer/internal/engine"
	"rogue-soccer/internal/infrastructure/storage"
	"rogue-soccer/internal/network"
	"rogue-soccer/internal/server"
	"rogue-soccer/internal/version"
	"rogue-soccer/pkg/logger"

	"github.com/sirupsen/logrus"
)

// headlessTicks bounds a headless match when match.maxTicks is unset.
const headlessTicks = 20000

func init() {
	logger.Init()
}

func main() {
	var (
		configDir  string
		replayPath string
		seed       int64
		ticks      int
		headless   bool
		withBot    bool
	)
	flag.StringVar(&configDir, "config", ".", "Directory holding "+config.FileName)
	flag.Int64Var(&seed, "seed", 0, "Match seed (0 keeps the configured one)")
	flag.IntVar(&ticks, "ticks", 0, "Stop after this many ticks (0 keeps the configured limit)")
	flag.BoolVar(&headless, "headless", false, "Run AI against AI without a server and print the log")
	flag.BoolVar(&withBot, "bot", false, "Let a built-in client play the human team")
	flag.StringVar(&replayPath, "replay", "", "Path to a "+storage.FileExt+" replay to simulate")
	flag.Parse()

	settings, err := config.Load(configDir)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load config")
	}
	logger.Configure(settings.LogLevel, settings.LogFormat)
	logger.Log.Info(version.String())

	cfg := settings.Match
	if seed != 0 {
		cfg.Seed = seed
	}
	if ticks > 0 {
		cfg.MaxTicks = ticks
	}

	if replayPath != "" {
		if err := runReplay(cfg, replayPath); err != nil {
			logger.Log.WithError(err).Fatal("replay failed")
		}
		return
	}

	if headless {
		cfg.HasHuman = false
	}
	match, err := engine.NewStandardMatch(cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to set up match")
	}

	if settings.Journal.Enabled {
		journal, err := storage.OpenJournal(settings.Journal.Driver, settings.Journal.DSN, cfg.Seed)
		if err != nil {
			logger.Log.WithError(err).Fatal("failed to open journal")
		}
		defer closeJournal(journal)
		match.Log.Subscribe(journal)
	}

	if headless {
		limit := cfg.MaxTicks
		if limit <= 0 {
			limit = headlessTicks
		}
		match.Run(limit)
		printSummary(match)
		saveReplay(settings.ReplayDir, match.Replay)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := engine.NewService(match, network.NewBroadcaster())
	if withBot {
		go agent.NewBot("bot", svc).Run(ctx)
	}

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		if err := svc.Run(ctx, cfg.MaxTicks); err != nil && !errors.Is(err, context.Canceled) {
			logger.Log.WithError(err).Error("match loop stopped")
		}
		// a finished match takes the server down with it
		stop()
	}()

	if err := server.New(svc, settings.Port).Run(ctx); err != nil {
		logger.Log.WithError(err).Error("server stopped")
		stop()
	}
	<-loopDone

	logger.Log.WithFields(logrus.Fields{
		"ticks":  match.Tick(),
		"player": match.Score(domain.TeamPlayer),
		"enemy":  match.Score(domain.TeamEnemy),
	}).Info("shutting down")
	saveReplay(settings.ReplayDir, match.Replay)
}

func runReplay(cfg engine.Config, path string) error {
	session, err := storage.Load(path)
	if err != nil {
		return err
	}
	logger.Log.WithFields(logrus.Fields{
		"path":    path,
		"seed":    session.Seed,
		"ticks":   session.Ticks,
		"intents": len(session.Actions),
	}).Info("replaying match")

	match, err := engine.PlayReplay(cfg, session)
	if err != nil {
		return err
	}
	printSummary(match)
	return nil
}

func closeJournal(journal io.Closer) {
	if err := journal.Close(); err != nil {
		logger.Log.WithField("component", "journal").WithError(err).Warn("failed to close journal")
	}
}

func saveReplay(dir string, session *domain.ReplaySession) {
	svc, err := storage.NewReplayService(dir)
	if err != nil {
		logger.Log.WithError(err).Error("replay dir unavailable")
		return
	}
	path, err := svc.Save(session)
	if err != nil {
		logger.Log.WithError(err).Error("failed to save replay")
		return
	}
	logger.Log.WithField("path", path).Info("replay saved")
}

func printSummary(m *engine.Match) {
	for _, entry := range m.Log.History() {
		fmt.Printf("[%6d] %-5s %s\n", entry.Tick, entry.Type, entry.Text)
	}
	fmt.Printf("Final score after %d ticks: PLAYER %d : %d ENEMY\n",
		m.Tick(), m.Score(domain.TeamPlayer), m.Score(domain.TeamEnemy))
}
