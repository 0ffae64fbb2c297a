package obj

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicatePlayer  = errors.New("obj: world already has a player")
	ErrNotOwned         = errors.New("obj: entity does not belong to this world")
	ErrAlreadyOwned     = errors.New("obj: entity already belongs to a world")
	ErrOutOfBounds      = errors.New("obj: tile outside the world grid")
	ErrCellOccupied     = errors.New("obj: grid cell already holds a tile")
	ErrPlacementBlocked = errors.New("obj: placement overlaps a solid entity")
	ErrUnknownKind      = errors.New("obj: unknown entity kind")
	ErrInvalidParams    = errors.New("obj: invalid entity parameters")
)

// InvariantError reports two immovable entities overlapping on an axis. The
// level geometry cannot be resolved and the session has to end.
type InvariantError struct {
	Axis  Axis
	Self  Kind
	Other Kind
	X, Y  float64
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("obj: invariant violation: immovable %s overlaps immovable %s on %s axis at (%.1f, %.1f)",
		e.Self, e.Other, e.Axis, e.X, e.Y)
}
