package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"rogue-soccer/internal/domain"
	"rogue-soccer/pkg/api"
)

// ErrTargetNotFound is returned when an action names an entity that does not
// exist.
var ErrTargetNotFound = errors.New("target not found")

// ErrOutOfReach is returned when the actor is not next to its target.
var ErrOutOfReach = errors.New("target out of reach")

// TargetHandlerFunc is a handler that works on an already resolved target.
type TargetHandlerFunc func(ctx Context, action domain.Action, target *domain.Entity) (Result, error)

// EmptyHandlerFunc is a handler that needs nothing beyond the context.
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithTarget resolves action.Target before calling handler. A missing
// target is an error, never a panic.
func WithTarget(handler TargetHandlerFunc) HandlerFunc {
	return func(ctx Context, action domain.Action) (Result, error) {
		target := ctx.Finder.GetEntity(action.Target)
		if target == nil {
			return Result{}, fmt.Errorf("%s %s: %w", action.Type, action.Target, ErrTargetNotFound)
		}
		return handler(ctx, action, target)
	}
}

// WithReach is WithTarget plus a check that the actor stands on or next to
// the target's tile.
func WithReach(handler TargetHandlerFunc) HandlerFunc {
	return WithTarget(func(ctx Context, action domain.Action, target *domain.Entity) (Result, error) {
		a, b := ctx.Actor.Tile(), target.Tile()
		if a != b && !a.IsAdjacent(b) {
			return Result{
				Msg:     fmt.Sprintf("%s can't reach %s", ctx.Actor.Name, target.DisplayName()),
				MsgType: LogError,
			}, fmt.Errorf("%s %s: %w", action.Type, action.Target, ErrOutOfReach)
		}
		return handler(ctx, action, target)
	})
}

// WithEmptyPayload adapts a handler that ignores the action's fields.
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ domain.Action) (Result, error) {
		return handler(ctx)
	}
}

// TypedCommandFunc handles a decoded client payload of type T against a
// receiver of type C.
type TypedCommandFunc[C any, T any] func(c C, payload T) error

// CommandFunc is the raw form a command registry stores.
type CommandFunc[C any] func(c C, raw json.RawMessage) error

// WithPayload decodes and validates a client payload before calling handler.
func WithPayload[C any, T any](handler TypedCommandFunc[C, T]) CommandFunc[C] {
	return func(c C, raw json.RawMessage) error {
		var payload T

		// 1. Decode
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("invalid payload format: %w", err)
			}
		}

		// 2. Validate when the DTO supports it
		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
		}

		// 3. Run
		return handler(c, payload)
	}
}
