package api

import (
	"errors"
	"math"
)

// SlotCount is the number of ability keys a client can press.
const SlotCount = 7

// Validator is implemented by payload DTOs.
type Validator interface {
	Validate() error
}

func (p CursorPayload) Validate() error {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return errors.New("cursor must be finite")
	}
	return nil
}

func (p TargetPayload) Validate() error {
	if p.TargetID == 0 {
		return errors.New("targetId is required")
	}
	return CursorPayload{X: p.X, Y: p.Y}.Validate()
}

func (p SlotPayload) Validate() error {
	if p.Slot < 0 || p.Slot >= SlotCount {
		return errors.New("slot out of range")
	}
	return nil
}
