// Command validate provides a small CLI that validates mission configuration
// JSON files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Plateau bounds: two non-negative integers within the edge limit
//   - Scripted rover deployments: "X Y D" format, in range, unique cells
//   - Rover IDs unique when supplied
//   - Command strings restricted to L, R, and M
//   - Required message keys
//   - Replay: scripted command strings never leave the plateau or collide
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const maxPlateauEdge = 100

// Config mirrors the JSON schema for a mission configuration.
type Config struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Plateau     string            `json:"plateau"`
	Rovers      []RoverSetup      `json:"rovers"`
	Messages    map[string]string `json:"messages"`
}

// RoverSetup is one scripted rover: a deployment instruction plus an
// optional command string executed at session creation.
type RoverSetup struct {
	ID       string `json:"id,omitempty"`
	Position string `json:"position"`
	Commands string `json:"commands,omitempty"`
}

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

type pose struct {
	x, y    int
	heading byte // N, E, S, or W
}

// validateConfig loads and validates a single configuration JSON file.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if config.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing name")
	}

	width, height, err := parseBounds(config.Plateau)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
	}

	// Validate scripted rovers
	seenIDs := map[string]bool{}
	seenCells := map[[2]int]string{}
	deployments := make([]pose, 0, len(config.Rovers))

	for i, rover := range config.Rovers {
		label := fmt.Sprintf("rover %d", i+1)
		if rover.ID != "" {
			label = fmt.Sprintf("rover %q", rover.ID)
			if seenIDs[rover.ID] {
				result.Valid = false
				result.Errors = append(result.Errors, fmt.Sprintf("Duplicate rover id %q", rover.ID))
			}
			seenIDs[rover.ID] = true
		}

		p, err := parseDeployment(rover.Position)
		if err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", label, err))
			continue
		}

		if width >= 0 && (p.x > width || p.y > height) {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("%s: position (%d,%d) outside plateau %s", label, p.x, p.y, config.Plateau))
		}

		cell := [2]int{p.x, p.y}
		if other, taken := seenCells[cell]; taken {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("%s: deploys onto the same cell as %s", label, other))
		}
		seenCells[cell] = label

		for j, command := range rover.Commands {
			if command != 'L' && command != 'R' && command != 'M' {
				result.Valid = false
				result.Errors = append(result.Errors, fmt.Sprintf("%s: invalid command %q at position %d (only L, R, M allowed)", label, command, j+1))
			}
		}

		deployments = append(deployments, p)
	}

	// Validate messages
	requiredMessages := []string{
		"welcome",
		"deployed",
		"moved",
		"turned",
		"out_of_plateau",
		"collision",
	}
	for _, msg := range requiredMessages {
		if _, exists := config.Messages[msg]; !exists {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Missing required message: %s", msg))
		}
	}

	// Replay the scripted commands so a config never ships with a rover
	// that drives off the plateau or into a teammate at session creation.
	if result.Valid {
		replayResult := validateReplay(config, width, height, deployments)
		result.Errors = append(result.Errors, replayResult.Errors...)
		if !replayResult.Valid {
			result.Valid = false
		}
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Plateau: %d x %d (inclusive)", width, height))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Scripted rovers: %d", len(config.Rovers)))
	}

	return result
}

func parseBounds(input string) (int, int, error) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return -1, -1, fmt.Errorf("Plateau must be two integers, got %q", input)
	}

	width, err := strconv.Atoi(fields[0])
	if err != nil {
		return -1, -1, fmt.Errorf("Plateau width %q is not an integer", fields[0])
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil {
		return -1, -1, fmt.Errorf("Plateau height %q is not an integer", fields[1])
	}

	if width < 0 || height < 0 {
		return -1, -1, fmt.Errorf("Plateau bounds must be non-negative, got %d %d", width, height)
	}
	if width > maxPlateauEdge || height > maxPlateauEdge {
		return -1, -1, fmt.Errorf("Plateau edge exceeds limit of %d: %q", maxPlateauEdge, input)
	}

	return width, height, nil
}

func parseDeployment(input string) (pose, error) {
	fields := strings.Fields(strings.ToUpper(input))
	if len(fields) != 3 {
		return pose{}, fmt.Errorf("position must be \"X Y D\", got %q", input)
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return pose{}, fmt.Errorf("position X %q is not an integer", fields[0])
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return pose{}, fmt.Errorf("position Y %q is not an integer", fields[1])
	}
	if x < 0 || y < 0 {
		return pose{}, fmt.Errorf("position (%d,%d) has negative coordinates", x, y)
	}

	direction := fields[2]
	if len(direction) != 1 || !strings.ContainsAny(direction, "NESW") {
		return pose{}, fmt.Errorf("direction %q must be one of N, E, S, W", fields[2])
	}

	return pose{x: x, y: y, heading: direction[0]}, nil
}

// validateReplay runs each scripted rover's command string in order, the way
// session creation does, and reports any move that would be rejected.
func validateReplay(config Config, width, height int, deployments []pose) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	occupied := make(map[[2]int]int)
	for i, p := range deployments {
		occupied[[2]int{p.x, p.y}] = i
	}

	totalMoves := 0
	for i := range deployments {
		p := deployments[i]
		label := fmt.Sprintf("rover %d", i+1)
		if config.Rovers[i].ID != "" {
			label = fmt.Sprintf("rover %q", config.Rovers[i].ID)
		}

		for j, command := range config.Rovers[i].Commands {
			switch command {
			case 'L':
				p.heading = turnLeft(p.heading)
			case 'R':
				p.heading = turnRight(p.heading)
			case 'M':
				dx, dy := step(p.heading)
				nx, ny := p.x+dx, p.y+dy

				if nx < 0 || ny < 0 || nx > width || ny > height {
					result.Valid = false
					result.Errors = append(result.Errors, fmt.Sprintf("Replay failure: %s command %d drives off the plateau at (%d,%d)", label, j+1, nx, ny))
					continue
				}
				if other, taken := occupied[[2]int{nx, ny}]; taken && other != i {
					result.Valid = false
					result.Errors = append(result.Errors, fmt.Sprintf("Replay failure: %s command %d collides with rover %d at (%d,%d)", label, j+1, other+1, nx, ny))
					continue
				}

				delete(occupied, [2]int{p.x, p.y})
				p.x, p.y = nx, ny
				occupied[[2]int{p.x, p.y}] = i
				totalMoves++
			}
		}

		deployments[i] = p
	}

	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Replay: %d scripted moves, no rejections", totalMoves))
	}

	return result
}

func turnLeft(heading byte) byte {
	switch heading {
	case 'N':
		return 'W'
	case 'W':
		return 'S'
	case 'S':
		return 'E'
	default:
		return 'N'
	}
}

func turnRight(heading byte) byte {
	switch heading {
	case 'N':
		return 'E'
	case 'E':
		return 'S'
	case 'S':
		return 'W'
	default:
		return 'N'
	}
}

func step(heading byte) (int, int) {
	switch heading {
	case 'N':
		return 0, 1
	case 'S':
		return 0, -1
	case 'E':
		return 1, 0
	default:
		return -1, 0
	}
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
