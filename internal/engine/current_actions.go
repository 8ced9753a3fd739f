package engine

import (
	"errors"
	"fmt"

	"rogue-soccer/internal/domain"
	"rogue-soccer/internal/systems"
	"rogue-soccer/pkg/api"
)

// Slots of the action menu. Each slot has a fixed key.
const (
	SlotSkip = iota
	SlotWalk
	SlotTakeControl
	SlotKick
	SlotFoul
	SlotPass
	SlotSpare
)

var slotKeys = [api.SlotCount]string{"SPACE", "f", "g", "h", "j", "k", "l"}

var (
	// ErrSlotEmpty is returned when a pressed slot has no ability bound.
	ErrSlotEmpty = errors.New("nothing bound to slot")
	// ErrSlotDisabled is returned when the bound ability is out of range.
	ErrSlotDisabled = errors.New("action not available")
)

// SlotBinding is what a slot resolves to when pressed.
type SlotBinding struct {
	Ability domain.AbilityType
	Target  domain.EntityID
	Enabled bool
}

type menuState struct {
	dirty   bool
	actions []api.ActionView
	slots   map[int]SlotBinding
	preview []domain.Tile
}

// CurrentActions returns the action menu of the current human player. It is
// rebuilt only after the cursor or the pitch changed.
func (m *Match) CurrentActions() []api.ActionView {
	m.refreshMenu()
	return m.menu.actions
}

// Slots returns the slot table behind CurrentActions.
func (m *Match) Slots() map[int]SlotBinding {
	m.refreshMenu()
	return m.menu.slots
}

// PreviewPath is the path a walk to the cursor would take.
func (m *Match) PreviewPath() []domain.Tile {
	m.refreshMenu()
	return m.menu.preview
}

// PressSlot submits the ability bound to slot, aimed at the cursor.
func (m *Match) PressSlot(slot int) error {
	m.refreshMenu()
	b, ok := m.menu.slots[slot]
	if !ok {
		return fmt.Errorf("slot %d: %w", slot, ErrSlotEmpty)
	}
	if !b.Enabled {
		return fmt.Errorf("%s: %w", b.Ability, ErrSlotDisabled)
	}
	return m.Submit(domain.Intent{Ability: b.Ability, Target: b.Target, Cursor: m.cursor})
}

func (m *Match) refreshMenu() {
	if !m.menu.dirty {
		return
	}
	m.menu = menuState{slots: make(map[int]SlotBinding)}

	current := m.World.CurrentPlayer()
	if current == nil || current.Stats == nil || !m.Turns.InTurn() || !m.cfg.IsHuman(current.Team) {
		return
	}

	path, err := systems.FindPath(current.Pos, m.cursor, m.World.Index)
	inRange := err == nil && len(path) <= current.Stats.AP
	if err == nil {
		m.menu.preview = path
	}

	m.bind(SlotSkip, "Skip turn", domain.AbilitySkip, domain.NoEntity, true)
	m.bind(SlotWalk, "Walk", domain.AbilityWalk, domain.NoEntity, inRange)

	for _, occ := range m.World.Index.Query(domain.ToTile(m.cursor)) {
		if occ.ID.IsZero() || occ.ID == current.ID {
			continue
		}
		target := m.World.GetEntity(occ.ID)
		if target == nil {
			continue
		}
		name := target.DisplayName()
		m.bind(SlotTakeControl, "Take control of "+name, domain.AbilityTakeControl, target.ID,
			inRange && current.Claimed.IsZero())
		m.bind(SlotKick, "Kick "+name, domain.AbilityKick, target.ID, inRange)
		if target.IsPerson() {
			m.bind(SlotFoul, "Foul "+name, domain.AbilityFoul, target.ID, inRange)
		}
	}

	if held := m.World.GetEntity(current.Claimed); held != nil {
		m.bind(SlotPass, "Pass "+held.DisplayName(), domain.AbilityPass, held.ID, true)
	}
}

// bind fills slot unless an earlier occupant already took it.
func (m *Match) bind(slot int, label string, ability domain.AbilityType, target domain.EntityID, enabled bool) {
	if _, taken := m.menu.slots[slot]; taken {
		return
	}
	m.menu.slots[slot] = SlotBinding{Ability: ability, Target: target, Enabled: enabled}
	m.menu.actions = append(m.menu.actions, api.ActionView{
		Label:   label,
		Key:     slotKeys[slot],
		Slot:    slot,
		Ability: ability.String(),
		Target:  uint32(target),
		Enabled: enabled,
	})
}
