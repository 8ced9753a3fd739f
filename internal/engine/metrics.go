package engine

import (
	"context"
	"fmt"

	"rogue-soccer/internal/domain"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "rogue-soccer/internal/engine"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// matchMetrics holds the counters a match reports. Without a configured
// provider the global meter is a no-op.
type matchMetrics struct {
	ticks        metric.Int64Counter
	actions      metric.Int64Counter
	pathFailures metric.Int64Counter
	goals        metric.Int64Counter
	turns        metric.Int64Counter
}

func newMatchMetrics() (*matchMetrics, error) {
	m := meter()
	mm := &matchMetrics{}

	var err error
	if mm.ticks, err = m.Int64Counter("soccer.ticks",
		metric.WithDescription("Fixed simulation steps executed")); err != nil {
		return nil, fmt.Errorf("creating ticks counter: %w", err)
	}
	if mm.actions, err = m.Int64Counter("soccer.actions",
		metric.WithDescription("Queued actions executed, by type and outcome")); err != nil {
		return nil, fmt.Errorf("creating actions counter: %w", err)
	}
	if mm.pathFailures, err = m.Int64Counter("soccer.path_failures",
		metric.WithDescription("Path searches that found no route")); err != nil {
		return nil, fmt.Errorf("creating path failures counter: %w", err)
	}
	if mm.goals, err = m.Int64Counter("soccer.goals",
		metric.WithDescription("Goals scored, by scoring team")); err != nil {
		return nil, fmt.Errorf("creating goals counter: %w", err)
	}
	if mm.turns, err = m.Int64Counter("soccer.turns",
		metric.WithDescription("Turns started, by team")); err != nil {
		return nil, fmt.Errorf("creating turns counter: %w", err)
	}
	return mm, nil
}

func (mm *matchMetrics) tick() {
	mm.ticks.Add(context.Background(), 1)
}

func (mm *matchMetrics) action(t domain.ActionType, failed bool) {
	mm.actions.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("type", t.String()),
		attribute.Bool("failed", failed),
	))
}

func (mm *matchMetrics) pathFailure() {
	mm.pathFailures.Add(context.Background(), 1)
}

func (mm *matchMetrics) goal(scorer domain.Team) {
	mm.goals.Add(context.Background(), 1, metric.WithAttributes(attribute.String("team", scorer.String())))
}

func (mm *matchMetrics) turn(team domain.Team) {
	mm.turns.Add(context.Background(), 1, metric.WithAttributes(attribute.String("team", team.String())))
}
