package service

import (
	"context"

	"github.com/roverops/marsmission/mission/mars"
)

// MissionService defines all mission-related operations
type MissionService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Rover Operations
	DeployRover(ctx context.Context, sessionID, instructions, roverID string) (*DeployResult, error)
	MoveRover(ctx context.Context, sessionID, roverID string) (*CommandResult, error)
	TurnRover(ctx context.Context, sessionID, roverID, direction string) (*CommandResult, error)
	RunCommands(ctx context.Context, sessionID, roverID, commands string) (*BulkCommandResult, error)

	// Mission State
	GetMissionState(ctx context.Context, sessionID string) (*MissionState, error)
	GetCommandHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*mars.MissionConfig, error)
	SaveConfig(ctx context.Context, configName string, config *mars.MissionConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *mars.MissionConfig) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, config *mars.MissionConfig) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// ConfigManager handles mission configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*mars.MissionConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *mars.MissionConfig
	SaveConfig(name string, config *mars.MissionConfig) error
}
