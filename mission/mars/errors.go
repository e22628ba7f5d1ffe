package mars

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfPlateau is returned when a deployment or move target lies
	// outside the plateau bounds.
	ErrOutOfPlateau = errors.New("location is outside of the plateau range")

	// ErrCollision is returned when a deployment or move target is occupied
	// by another rover.
	ErrCollision = errors.New("location is occupied by another rover")

	// ErrDuplicateRoverID is returned when a caller-supplied rover ID is
	// already registered on the plateau.
	ErrDuplicateRoverID = errors.New("rover id is already deployed")
)

// ParseError reports malformed command text. It carries the offending input
// so callers and logs can show exactly what was rejected.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s", e.Input, e.Reason)
}
