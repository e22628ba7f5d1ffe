package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validMessages = `{
	"welcome": "Mission control online",
	"deployed": "Rover deployed",
	"moved": "Rover moved",
	"turned": "Rover turned",
	"out_of_plateau": "Target cell is outside the plateau",
	"collision": "A rover already occupies that cell"
}`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "test_config_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpfile.Close()

	return tmpfile.Name()
}

func hasError(result ValidationResult, substr string) bool {
	for _, err := range result.Errors {
		if strings.Contains(err, substr) {
			return true
		}
	}
	return false
}

func TestValidateConfig_ValidConfig(t *testing.T) {
	validConfig := `{
		"name": "Classic Mission",
		"description": "Two rovers on a 5x5 plateau",
		"plateau": "5 5",
		"rovers": [
			{"id": "1", "position": "1 2 N", "commands": "LMLMLMLMM"},
			{"id": "2", "position": "3 3 E", "commands": "MMRMMRMRRM"}
		],
		"messages": ` + validMessages + `
	}`

	path := writeConfig(t, validConfig)

	result := validateConfig(path)
	if !result.Valid {
		t.Errorf("Expected valid config, but got errors: %v", result.Errors)
	}

	if result.File != filepath.Base(path) {
		t.Errorf("Expected file name %s, got %s", filepath.Base(path), result.File)
	}
}

func TestValidateConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{"name": "test", invalid json}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config due to bad JSON")
	}
	if !hasError(result, "Invalid JSON") {
		t.Error("Expected 'Invalid JSON' error")
	}
}

func TestValidateConfig_MissingFile(t *testing.T) {
	result := validateConfig("/non/existent/file.json")
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}
	if !hasError(result, "Failed to read file") {
		t.Error("Expected 'Failed to read file' error")
	}
}

func TestValidateConfig_BadPlateau(t *testing.T) {
	tests := []struct {
		name    string
		plateau string
		want    string
	}{
		{"missing token", "5", "Plateau must be two integers"},
		{"non-integer", "5 five", "not an integer"},
		{"negative", "-1 5", "must be non-negative"},
		{"over the edge limit", "200 5", "exceeds limit"},
	}

	for _, tt := range tests {
		config := `{
			"name": "Test",
			"plateau": "` + tt.plateau + `",
			"rovers": [],
			"messages": ` + validMessages + `
		}`

		result := validateConfig(writeConfig(t, config))
		if result.Valid {
			t.Errorf("%s: expected invalid config", tt.name)
		}
		if !hasError(result, tt.want) {
			t.Errorf("%s: expected %q error, got %v", tt.name, tt.want, result.Errors)
		}
	}
}

func TestValidateConfig_RoverOutOfRange(t *testing.T) {
	config := `{
		"name": "Test",
		"plateau": "5 5",
		"rovers": [
			{"position": "6 2 N"}
		],
		"messages": ` + validMessages + `
	}`

	result := validateConfig(writeConfig(t, config))
	if result.Valid {
		t.Error("Expected invalid config due to out-of-range deployment")
	}
	if !hasError(result, "outside plateau") {
		t.Errorf("Expected 'outside plateau' error, got %v", result.Errors)
	}
}

func TestValidateConfig_DuplicateRoverID(t *testing.T) {
	config := `{
		"name": "Test",
		"plateau": "5 5",
		"rovers": [
			{"id": "scout", "position": "0 0 N"},
			{"id": "scout", "position": "1 1 E"}
		],
		"messages": ` + validMessages + `
	}`

	result := validateConfig(writeConfig(t, config))
	if result.Valid {
		t.Error("Expected invalid config due to duplicate rover id")
	}
	if !hasError(result, "Duplicate rover id") {
		t.Errorf("Expected 'Duplicate rover id' error, got %v", result.Errors)
	}
}

func TestValidateConfig_SameCellDeployment(t *testing.T) {
	config := `{
		"name": "Test",
		"plateau": "5 5",
		"rovers": [
			{"position": "2 2 N"},
			{"position": "2 2 S"}
		],
		"messages": ` + validMessages + `
	}`

	result := validateConfig(writeConfig(t, config))
	if result.Valid {
		t.Error("Expected invalid config due to shared deployment cell")
	}
	if !hasError(result, "same cell") {
		t.Errorf("Expected 'same cell' error, got %v", result.Errors)
	}
}

func TestValidateConfig_InvalidCommand(t *testing.T) {
	config := `{
		"name": "Test",
		"plateau": "5 5",
		"rovers": [
			{"position": "0 0 N", "commands": "LMX"}
		],
		"messages": ` + validMessages + `
	}`

	result := validateConfig(writeConfig(t, config))
	if result.Valid {
		t.Error("Expected invalid config due to invalid command letter")
	}
	if !hasError(result, "invalid command") {
		t.Errorf("Expected 'invalid command' error, got %v", result.Errors)
	}
}

func TestValidateConfig_MissingMessages(t *testing.T) {
	config := `{
		"name": "Test",
		"plateau": "5 5",
		"rovers": [],
		"messages": {"welcome": "hi"}
	}`

	result := validateConfig(writeConfig(t, config))
	if result.Valid {
		t.Error("Expected invalid config due to missing messages")
	}
	if !hasError(result, "Missing required message: collision") {
		t.Errorf("Expected missing message error, got %v", result.Errors)
	}
}

func TestValidateReplay_DrivesOffPlateau(t *testing.T) {
	config := Config{
		Name:    "Test",
		Plateau: "5 5",
		Rovers: []RoverSetup{
			{Position: "0 0 S", Commands: "M"},
		},
	}
	deployments := []pose{{x: 0, y: 0, heading: 'S'}}

	result := validateReplay(config, 5, 5, deployments)
	if result.Valid {
		t.Error("Expected replay failure for a rover driving off the plateau")
	}
	if !hasError(result, "drives off the plateau") {
		t.Errorf("Expected 'drives off the plateau' error, got %v", result.Errors)
	}
}

func TestValidateReplay_Collision(t *testing.T) {
	config := Config{
		Name:    "Test",
		Plateau: "5 5",
		Rovers: []RoverSetup{
			{Position: "0 0 E", Commands: "M"},
			{Position: "1 0 N", Commands: ""},
		},
	}
	deployments := []pose{
		{x: 0, y: 0, heading: 'E'},
		{x: 1, y: 0, heading: 'N'},
	}

	result := validateReplay(config, 5, 5, deployments)
	if result.Valid {
		t.Error("Expected replay failure for a scripted collision")
	}
	if !hasError(result, "collides with rover") {
		t.Errorf("Expected 'collides with rover' error, got %v", result.Errors)
	}
}

func TestValidateReplay_ClassicMission(t *testing.T) {
	config := Config{
		Name:    "Classic",
		Plateau: "5 5",
		Rovers: []RoverSetup{
			{Position: "1 2 N", Commands: "LMLMLMLMM"},
			{Position: "3 3 E", Commands: "MMRMMRMRRM"},
		},
	}
	deployments := []pose{
		{x: 1, y: 2, heading: 'N'},
		{x: 3, y: 3, heading: 'E'},
	}

	result := validateReplay(config, 5, 5, deployments)
	if !result.Valid {
		t.Errorf("Expected the classic mission to replay cleanly, got %v", result.Errors)
	}

	if deployments[0].x != 1 || deployments[0].y != 3 || deployments[0].heading != 'N' {
		t.Errorf("Rover 1 ended at (%d,%d,%c), want (1,3,N)", deployments[0].x, deployments[0].y, deployments[0].heading)
	}
	if deployments[1].x != 5 || deployments[1].y != 1 || deployments[1].heading != 'E' {
		t.Errorf("Rover 2 ended at (%d,%d,%c), want (5,1,E)", deployments[1].x, deployments[1].y, deployments[1].heading)
	}
}

func TestParseDeployment(t *testing.T) {
	p, err := parseDeployment("1 2 n")
	if err != nil {
		t.Fatalf("parseDeployment failed: %v", err)
	}
	if p.x != 1 || p.y != 2 || p.heading != 'N' {
		t.Errorf("Got (%d,%d,%c), want (1,2,N)", p.x, p.y, p.heading)
	}

	if _, err := parseDeployment("1 2"); err == nil {
		t.Error("Expected error for missing direction")
	}
	if _, err := parseDeployment("1 2 Q"); err == nil {
		t.Error("Expected error for unknown direction")
	}
}
