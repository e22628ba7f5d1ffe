package session

import (
	"time"

	"github.com/roverops/marsmission/mission/service"
)

// SessionPersistence defines the interface for persisting sessions
type SessionPersistence interface {
	// Save persists a session to storage
	Save(session *service.Session) error

	// Load retrieves a session from storage by ID
	Load(id string) (*service.Session, error)

	// Delete removes a session from storage
	Delete(id string) error

	// ListAll returns all persisted session IDs
	ListAll() ([]string, error)

	// Exists checks if a session exists in storage
	Exists(id string) bool
}

// PersistedRover captures one rover's pose as a redeployable instruction.
type PersistedRover struct {
	ID       string `json:"id"`
	Position string `json:"position"` // "X Y D" instruction reproducing the pose
}

// PersistedSessionData represents the JSON structure for persisted sessions
type PersistedSessionData struct {
	ID             string                    `json:"id"`
	ConfigName     string                    `json:"config_name"`
	CreatedAt      time.Time                 `json:"created_at"`
	LastAccessedAt time.Time                 `json:"last_accessed_at"`
	Plateau        string                    `json:"plateau"` // "W H" bounds
	Rovers         []PersistedRover          `json:"rovers"`
	CommandLog     []service.CommandLogEntry `json:"command_log,omitempty"`
}
