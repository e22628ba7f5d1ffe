// Command analyze prints quick, human-readable heuristics about mission
// configuration files in the project's configs directory. It summarizes
// plateau dimensions, fleet size, occupancy density, and highlights scripted
// deployments that crowd each other or sit on the plateau edge.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// AnalysisConfig is a light struct for reading config files used by analysis.
type AnalysisConfig struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Plateau     string            `json:"plateau"`
	Rovers      []AnalysisRover   `json:"rovers"`
	Messages    map[string]string `json:"messages"`
}

// AnalysisRover is one scripted rover entry.
type AnalysisRover struct {
	ID       string `json:"id"`
	Position string `json:"position"`
	Commands string `json:"commands"`
}

// AnalysisPoint denotes a plateau coordinate used during analysis output.
type AnalysisPoint struct {
	X, Y int
}

func main() {
	configDir := "configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil || len(files) == 0 {
		fmt.Printf("No config files found under %s\n", configDir)
		os.Exit(1)
	}

	for _, configFile := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(configFile))
		analyzeConfig(configFile)
	}
}

func analyzeConfig(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var config AnalysisConfig
	if err := json.Unmarshal(data, &config); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		return
	}

	fmt.Printf("Name: %s\n", config.Name)

	width, height, ok := parsePlateau(config.Plateau)
	if !ok {
		fmt.Printf("⚠️  Plateau bounds %q are malformed\n", config.Plateau)
		return
	}

	cells := (width + 1) * (height + 1)
	fmt.Printf("Plateau: %d x %d inclusive (%d cells)\n", width, height, cells)
	fmt.Printf("Scripted rovers: %d\n", len(config.Rovers))

	if cells > 0 {
		density := float64(len(config.Rovers)) / float64(cells) * 100
		fmt.Printf("Occupancy density: %.1f%%\n", density)
		if density > 50 {
			fmt.Printf("⚠️  WARNING: plateau is more than half full; moves will be hard to plan\n")
		}
	}

	totalCommands := 0
	moveCommands := 0
	var edgeRovers []string
	var crowded []string
	points := make([]AnalysisPoint, 0, len(config.Rovers))

	for i, rover := range config.Rovers {
		label := rover.ID
		if label == "" {
			label = strconv.Itoa(i + 1)
		}

		totalCommands += len(rover.Commands)
		moveCommands += strings.Count(rover.Commands, "M")

		p, ok := parsePosition(rover.Position)
		if !ok {
			fmt.Printf("⚠️  Rover %s has a malformed position %q\n", label, rover.Position)
			continue
		}

		if p.X == 0 || p.Y == 0 || p.X == width || p.Y == height {
			edgeRovers = append(edgeRovers, fmt.Sprintf("%s at (%d,%d)", label, p.X, p.Y))
		}

		// Flag rovers deployed on adjacent cells; their scripted runs are
		// the most likely to collide.
		for j, other := range points {
			if abs(p.X-other.X)+abs(p.Y-other.Y) == 1 {
				crowded = append(crowded, fmt.Sprintf("%s and rover %d", label, j+1))
			}
		}
		points = append(points, p)
	}

	fmt.Printf("Scripted commands: %d (%d moves)\n", totalCommands, moveCommands)

	if len(edgeRovers) > 0 {
		fmt.Printf("⚠️  %d rovers start on the plateau edge:\n", len(edgeRovers))
		for i, r := range edgeRovers {
			if i < 5 {
				fmt.Printf("   %s\n", r)
			}
		}
		if len(edgeRovers) > 5 {
			fmt.Printf("   ... and %d more\n", len(edgeRovers)-5)
		}
	} else {
		fmt.Printf("✅ No rovers start on the plateau edge\n")
	}

	if len(crowded) > 0 {
		fmt.Printf("⚠️  %d adjacent deployment pairs (collision-prone):\n", len(crowded))
		for _, pair := range crowded {
			fmt.Printf("   %s\n", pair)
		}
	} else {
		fmt.Printf("✅ No adjacent deployments\n")
	}
}

func parsePlateau(input string) (int, int, bool) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return 0, 0, false
	}
	width, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, false
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, false
	}
	if width < 0 || height < 0 {
		return 0, 0, false
	}
	return width, height, true
}

func parsePosition(input string) (AnalysisPoint, bool) {
	fields := strings.Fields(input)
	if len(fields) != 3 {
		return AnalysisPoint{}, false
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return AnalysisPoint{}, false
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return AnalysisPoint{}, false
	}
	return AnalysisPoint{x, y}, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
