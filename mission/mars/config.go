package mars

import (
	"fmt"
	"strings"
)

// Validation constants
const (
	MaxPlateauEdge      = 100
	MaxFleetSize        = 25
	MaxBulkCommands     = 50
	WebSocketBufferSize = 256
)

// RoverSetup describes one scripted rover in a mission configuration.
type RoverSetup struct {
	ID       string `json:"id,omitempty"`
	Position string `json:"position"`           // "X Y D" deployment instruction
	Commands string `json:"commands,omitempty"` // L/R/M command string
}

// MissionConfig represents a mission configuration from JSON.
type MissionConfig struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Plateau     string       `json:"plateau"` // "W H" upper-right corner
	Rovers      []RoverSetup `json:"rovers"`
	Messages    struct {
		Welcome      string `json:"welcome"`
		Deployed     string `json:"deployed"`
		Moved        string `json:"moved"`
		Turned       string `json:"turned"`
		OutOfPlateau string `json:"out_of_plateau"`
		Collision    string `json:"collision"`
	} `json:"messages"`
}

// ValidateMissionConfig validates a mission configuration for correctness.
// It replays the scripted deployments on a scratch plateau so range and
// collision problems are caught at load time instead of session creation.
func ValidateMissionConfig(config *MissionConfig) error {
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	plateau, err := ParseBounds(config.Plateau)
	if err != nil {
		return fmt.Errorf("config validation: plateau bounds: %v", err)
	}

	width, height := plateau.Size()
	if width < 0 || height < 0 {
		return fmt.Errorf("config validation: plateau bounds must be non-negative, got %d %d", width, height)
	}
	if width > MaxPlateauEdge || height > MaxPlateauEdge {
		return fmt.Errorf("config validation: plateau edge must be at most %d, got %d %d", MaxPlateauEdge, width, height)
	}

	if len(config.Rovers) > MaxFleetSize {
		return fmt.Errorf("config validation: at most %d rovers per mission, got %d", MaxFleetSize, len(config.Rovers))
	}

	seenIDs := make(map[string]bool)
	for i, setup := range config.Rovers {
		if setup.ID != "" {
			if seenIDs[setup.ID] {
				return fmt.Errorf("config validation: rover %d: duplicate id %q", i+1, setup.ID)
			}
			seenIDs[setup.ID] = true
		}

		var opts []DeployOption
		if setup.ID != "" {
			opts = append(opts, WithRoverID(setup.ID))
		}
		if _, err := plateau.Deploy(setup.Position, opts...); err != nil {
			return fmt.Errorf("config validation: rover %d (%q): %v", i+1, setup.Position, err)
		}

		for j, c := range strings.ToUpper(setup.Commands) {
			switch c {
			case 'L', 'R', 'M':
			default:
				return fmt.Errorf("config validation: rover %d: invalid command %q at position %d (must be L, R, or M)",
					i+1, string(c), j+1)
			}
		}
	}

	return nil
}

// BuildPlateau constructs the plateau described by a mission configuration
// and performs its scripted deployments. Command scripts are not executed;
// they stay available for clients and the planner.
func BuildPlateau(config *MissionConfig) (*Plateau, error) {
	plateau, err := ParseBounds(config.Plateau)
	if err != nil {
		return nil, err
	}

	for _, setup := range config.Rovers {
		var opts []DeployOption
		if setup.ID != "" {
			opts = append(opts, WithRoverID(setup.ID))
		}
		if _, err := plateau.Deploy(setup.Position, opts...); err != nil {
			return nil, fmt.Errorf("scripted deployment %q: %w", setup.Position, err)
		}
	}

	return plateau, nil
}
