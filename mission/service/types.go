package service

import (
	"time"

	"github.com/roverops/marsmission/mission/mars"
)

// Position represents x,y grid coordinates.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RoverState is a serializable snapshot of one deployed rover.
type RoverState struct {
	ID        string   `json:"id"`
	Position  Position `json:"position"`
	Heading   float64  `json:"heading"`   // radians, one of the four canonical values
	Direction string   `json:"direction"` // cardinal letter
}

// MissionState is a serializable snapshot of a session's plateau.
type MissionState struct {
	PlateauWidth  int          `json:"plateau_width"`
	PlateauHeight int          `json:"plateau_height"`
	Rovers        []RoverState `json:"rovers"`
	Message       string       `json:"message,omitempty"`
	TotalCommands int          `json:"total_commands"`
}

// Session represents an active mission session.
type Session struct {
	ID             string
	Plateau        *mars.Plateau
	Config         *mars.MissionConfig
	CreatedAt      time.Time
	LastAccessedAt time.Time

	// CommandLog is the cumulative record of every deploy, move, and turn
	// issued against this session, successful or not.
	CommandLog []CommandLogEntry
}

// SessionInfo provides information about a mission session.
type SessionInfo struct {
	ID             string              `json:"id"`
	ConfigName     string              `json:"config_name"`
	CreatedAt      time.Time           `json:"created_at"`
	LastAccessedAt time.Time           `json:"last_accessed_at"`
	MissionState   *MissionState       `json:"mission_state"`
	MissionConfig  *mars.MissionConfig `json:"mission_config"`
}

// DeployResult contains the result of a rover deployment.
type DeployResult struct {
	Success      bool          `json:"success"`
	Rover        *RoverState   `json:"rover,omitempty"`
	MissionState *MissionState `json:"mission_state"`
	Message      string        `json:"message"`
	FailureCode  string        `json:"failure_code,omitempty"` // parse_error|out_of_plateau|collision|duplicate_rover_id
}

// CommandResult contains the result of a single move or turn command.
type CommandResult struct {
	Success      bool          `json:"success"`
	RoverID      string        `json:"rover_id"`
	Command      string        `json:"command"` // M, L, or R
	From         Position      `json:"from"`
	To           Position      `json:"to"`
	Direction    string        `json:"direction"`
	MissionState *MissionState `json:"mission_state"`
	Message      string        `json:"message"`
	FailureCode  string        `json:"failure_code,omitempty"` // out_of_plateau|collision
}

// CommandStep is a compact record for each executed command in a bulk call.
type CommandStep struct {
	Idx       int      `json:"idx"`
	Command   string   `json:"command"`
	From      Position `json:"from"`
	To        Position `json:"to"`
	Direction string   `json:"direction"`
	Success   bool     `json:"success"`
}

// BulkCommandResult contains the result of running an L/R/M command string.
type BulkCommandResult struct {
	RoverID           string        `json:"rover_id"`
	CommandsExecuted  int           `json:"commands_executed"`
	RequestedCommands int           `json:"requested_commands"`
	Success           bool          `json:"success"`
	MissionState      *MissionState `json:"mission_state"`
	StoppedReason     string        `json:"stopped_reason,omitempty"`
	StopReasonCode    string        `json:"stop_reason_code,omitempty"` // out_of_plateau|collision|invalid_command
	StoppedOnCommand  int           `json:"stopped_on_command,omitempty"`
	Truncated         bool          `json:"truncated,omitempty"`
	Limit             int           `json:"limit,omitempty"`

	StartPos Position `json:"start_pos"`
	EndPos   Position `json:"end_pos"`

	Steps []CommandStep `json:"steps,omitempty"`

	Message string `json:"message,omitempty"`
}

// CommandLogEntry represents a single command in the session history.
type CommandLogEntry struct {
	RoverID        string   `json:"rover_id"`
	Command        string   `json:"command"` // deploy instruction or M/L/R
	From           Position `json:"from"`
	To             Position `json:"to"`
	Direction      string   `json:"direction"`
	Success        bool     `json:"success"`
	Timestamp      int64    `json:"timestamp"`
	SequenceNumber int      `json:"sequence_number"`
}

// HistoryOptions configures command history retrieval.
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated command history.
type HistoryResponse struct {
	Commands      []CommandLogEntry `json:"commands"`
	TotalCommands int               `json:"total_commands"`
	Page          int               `json:"page"`
	PageSize      int               `json:"page_size"`
	TotalPages    int               `json:"total_pages"`
	HasNext       bool              `json:"has_next"`
	HasPrevious   bool              `json:"has_previous"`
}

// ConfigInfo provides information about a mission configuration.
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`
	Description string `json:"description"`
	Plateau     string `json:"plateau"`
	FleetSize   int    `json:"fleet_size"`
}
