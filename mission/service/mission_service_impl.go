package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/roverops/marsmission/mission/mars"
)

// ErrRoverNotFound is returned when a rover ID is not deployed in the
// addressed session.
var ErrRoverNotFound = errors.New("rover not found in session")

// missionServiceImpl implements the MissionService interface
type missionServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewMissionService creates a new mission service instance
func NewMissionService(sessions SessionManager, configs ConfigManager) MissionService {
	return &missionServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *missionServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateSession creates a new mission session
func (s *missionServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *mars.MissionConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let the session manager generate an ID
	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return s.sessionInfo(session, configID), nil
}

// GetSession retrieves session information
func (s *missionServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return s.sessionInfo(session, s.getConfigID(session.Config.Name)), nil
}

// ListSessions returns all active sessions
func (s *missionServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess, s.getConfigID(sess.Config.Name)))
	}

	return result, nil
}

// DeleteSession removes a session
func (s *missionServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Delete(sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeployRover deploys a new rover onto the session's plateau from an
// "X Y D" instruction string. Domain rejections come back as unsuccessful
// results with the registry unchanged.
func (s *missionServiceImpl) DeployRover(ctx context.Context, sessionID, instructions, roverID string) (*DeployResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	var opts []mars.DeployOption
	if roverID != "" {
		opts = append(opts, mars.WithRoverID(roverID))
	}

	rover, deployErr := session.Plateau.Deploy(instructions, opts...)

	entry := CommandLogEntry{
		RoverID:   roverID,
		Command:   strings.ToUpper(strings.TrimSpace(instructions)),
		Success:   deployErr == nil,
		Timestamp: time.Now().Unix(),
	}

	if deployErr != nil {
		s.appendLog(session, entry)
		s.saveSession(sessionID)
		return &DeployResult{
			Success:      false,
			MissionState: s.missionState(session, s.failureMessage(session.Config, deployErr)),
			Message:      s.failureMessage(session.Config, deployErr),
			FailureCode:  failureCode(deployErr),
		}, nil
	}

	state := roverState(rover)
	entry.RoverID = rover.ID()
	entry.From = state.Position
	entry.To = state.Position
	entry.Direction = state.Direction
	s.appendLog(session, entry)
	s.saveSession(sessionID)

	message := session.Config.Messages.Deployed
	if message == "" {
		message = fmt.Sprintf("Rover %s deployed at %d %d %s", rover.ID(), state.Position.X, state.Position.Y, state.Direction)
	}

	return &DeployResult{
		Success:      true,
		Rover:        &state,
		MissionState: s.missionState(session, message),
		Message:      message,
	}, nil
}

// MoveRover advances a rover one cell along its heading
func (s *missionServiceImpl) MoveRover(ctx context.Context, sessionID, roverID string) (*CommandResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, rover, err := s.findRover(sessionID, roverID)
	if err != nil {
		return nil, err
	}

	result := s.execCommand(session, rover, "M")
	s.saveSession(sessionID)
	return result, nil
}

// TurnRover rotates a rover left or right by 90 degrees
func (s *missionServiceImpl) TurnRover(ctx context.Context, sessionID, roverID, direction string) (*CommandResult, error) {
	var command string
	switch strings.ToLower(direction) {
	case "left", "l":
		command = "L"
	case "right", "r":
		command = "R"
	default:
		return nil, fmt.Errorf("invalid turn direction %q: must be left or right", direction)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, rover, err := s.findRover(sessionID, roverID)
	if err != nil {
		return nil, err
	}

	result := s.execCommand(session, rover, command)
	s.saveSession(sessionID)
	return result, nil
}

// RunCommands executes an L/R/M command string against one rover, stopping
// on the first failed move. Command strings longer than MaxBulkCommands are
// truncated.
func (s *missionServiceImpl) RunCommands(ctx context.Context, sessionID, roverID, commands string) (*BulkCommandResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, rover, err := s.findRover(sessionID, roverID)
	if err != nil {
		return nil, err
	}

	commands = strings.ToUpper(strings.TrimSpace(commands))
	requested := len(commands)

	truncated := false
	if len(commands) > mars.MaxBulkCommands {
		commands = commands[:mars.MaxBulkCommands]
		truncated = true
	}

	startX, startY := rover.Location()
	result := &BulkCommandResult{
		RoverID:           rover.ID(),
		RequestedCommands: requested,
		Success:           true,
		Truncated:         truncated,
		Limit:             mars.MaxBulkCommands,
		StartPos:          Position{X: startX, Y: startY},
	}

	for i, c := range commands {
		command := string(c)
		if command != "L" && command != "R" && command != "M" {
			result.Success = false
			result.StopReasonCode = "invalid_command"
			result.StoppedReason = fmt.Sprintf("invalid command %q at position %d", command, i+1)
			result.StoppedOnCommand = i + 1
			break
		}

		step := s.execCommand(session, rover, command)
		result.Steps = append(result.Steps, CommandStep{
			Idx:       i + 1,
			Command:   command,
			From:      step.From,
			To:        step.To,
			Direction: step.Direction,
			Success:   step.Success,
		})

		if !step.Success {
			result.Success = false
			result.StopReasonCode = step.FailureCode
			result.StoppedReason = step.Message
			result.StoppedOnCommand = i + 1
			break
		}
		result.CommandsExecuted++
	}

	endX, endY := rover.Location()
	result.EndPos = Position{X: endX, Y: endY}
	result.MissionState = s.missionState(session, result.StoppedReason)
	if result.Success {
		result.Message = fmt.Sprintf("Rover %s executed %d commands, now at %d %d %s",
			rover.ID(), result.CommandsExecuted, endX, endY, rover.Direction())
		result.MissionState.Message = result.Message
	}

	s.saveSession(sessionID)
	return result, nil
}

// GetMissionState returns the current mission state
func (s *missionServiceImpl) GetMissionState(ctx context.Context, sessionID string) (*MissionState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return s.missionState(session, ""), nil
}

// GetCommandHistory returns paginated command history for a session
func (s *missionServiceImpl) GetCommandHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = 50
	}

	entries := make([]CommandLogEntry, len(session.CommandLog))
	copy(entries, session.CommandLog)

	if strings.ToLower(opts.Order) == "desc" {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}

	total := len(entries)
	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	if start > total {
		start = total
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}

	return &HistoryResponse{
		Commands:      entries[start:end],
		TotalCommands: total,
		Page:          opts.Page,
		PageSize:      opts.Limit,
		TotalPages:    totalPages,
		HasNext:       opts.Page < totalPages,
		HasPrevious:   opts.Page > 1,
	}, nil
}

// ListConfigs returns all available mission configurations
func (s *missionServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a mission configuration by name
func (s *missionServiceImpl) LoadConfig(ctx context.Context, configName string) (*mars.MissionConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig validates and persists a mission configuration
func (s *missionServiceImpl) SaveConfig(ctx context.Context, configName string, config *mars.MissionConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// findRover resolves a session and one of its rovers. Callers must hold s.mu.
func (s *missionServiceImpl) findRover(sessionID, roverID string) (*Session, *mars.Rover, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	rover, ok := session.Plateau.Rover(roverID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrRoverNotFound, roverID)
	}

	return session, rover, nil
}

// execCommand runs a single M/L/R command against a rover and records it in
// the session log. Callers must hold s.mu.
func (s *missionServiceImpl) execCommand(session *Session, rover *mars.Rover, command string) *CommandResult {
	fromX, fromY := rover.Location()

	result := &CommandResult{
		RoverID: rover.ID(),
		Command: command,
		From:    Position{X: fromX, Y: fromY},
		Success: true,
	}

	var cmdErr error
	switch command {
	case "L":
		rover.TurnLeft()
	case "R":
		rover.TurnRight()
	case "M":
		cmdErr = rover.MoveForward()
	}

	toX, toY := rover.Location()
	result.To = Position{X: toX, Y: toY}
	result.Direction = rover.Direction()

	if cmdErr != nil {
		result.Success = false
		result.FailureCode = failureCode(cmdErr)
		result.Message = s.failureMessage(session.Config, cmdErr)
	} else {
		switch command {
		case "M":
			result.Message = session.Config.Messages.Moved
			if result.Message == "" {
				result.Message = fmt.Sprintf("Rover %s moved to %d %d", rover.ID(), toX, toY)
			}
		default:
			result.Message = session.Config.Messages.Turned
			if result.Message == "" {
				result.Message = fmt.Sprintf("Rover %s now faces %s", rover.ID(), result.Direction)
			}
		}
	}

	s.appendLog(session, CommandLogEntry{
		RoverID:   rover.ID(),
		Command:   command,
		From:      result.From,
		To:        result.To,
		Direction: result.Direction,
		Success:   result.Success,
		Timestamp: time.Now().Unix(),
	})

	result.MissionState = s.missionState(session, result.Message)
	return result
}

// appendLog records a command log entry with its sequence number
func (s *missionServiceImpl) appendLog(session *Session, entry CommandLogEntry) {
	entry.SequenceNumber = len(session.CommandLog) + 1
	session.CommandLog = append(session.CommandLog, entry)
}

// saveSession persists a session, logging persistence failures without
// failing the operation that triggered them
func (s *missionServiceImpl) saveSession(sessionID string) {
	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s: %v\n", sessionID, err)
	}
}

// missionState builds a serializable snapshot of a session's plateau
func (s *missionServiceImpl) missionState(session *Session, message string) *MissionState {
	width, height := session.Plateau.Size()

	state := &MissionState{
		PlateauWidth:  width,
		PlateauHeight: height,
		Rovers:        []RoverState{},
		Message:       message,
		TotalCommands: len(session.CommandLog),
	}
	for _, rover := range session.Plateau.Rovers() {
		state.Rovers = append(state.Rovers, roverState(rover))
	}

	return state
}

// sessionInfo builds the public view of a session
func (s *missionServiceImpl) sessionInfo(session *Session, configID string) *SessionInfo {
	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     configID,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		MissionState:   s.missionState(session, ""),
		MissionConfig:  session.Config,
	}
}

// roverState snapshots one rover
func roverState(rover *mars.Rover) RoverState {
	x, y := rover.Location()
	return RoverState{
		ID:        rover.ID(),
		Position:  Position{X: x, Y: y},
		Heading:   rover.Heading(),
		Direction: rover.Direction(),
	}
}

// failureCode maps core errors to machine-friendly codes
func failureCode(err error) string {
	var parseErr *mars.ParseError
	switch {
	case errors.Is(err, mars.ErrOutOfPlateau):
		return "out_of_plateau"
	case errors.Is(err, mars.ErrCollision):
		return "collision"
	case errors.Is(err, mars.ErrDuplicateRoverID):
		return "duplicate_rover_id"
	case errors.As(err, &parseErr):
		return "parse_error"
	default:
		return "error"
	}
}

// failureMessage prefers configured mission messages over raw error text
func (s *missionServiceImpl) failureMessage(config *mars.MissionConfig, err error) string {
	switch {
	case errors.Is(err, mars.ErrOutOfPlateau) && config.Messages.OutOfPlateau != "":
		return config.Messages.OutOfPlateau
	case errors.Is(err, mars.ErrCollision) && config.Messages.Collision != "":
		return config.Messages.Collision
	default:
		return err.Error()
	}
}
