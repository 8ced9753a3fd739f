package domain

import "strconv"

// EntityID identifies a spawned entity. Zero is never assigned and marks
// static field tiles and "no entity" references.
type EntityID uint32

const NoEntity EntityID = 0

func (id EntityID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// IsZero is true for NoEntity.
func (id EntityID) IsZero() bool {
	return id == NoEntity
}
