package mars

import (
	"strings"
	"testing"
)

func createTestMissionConfig() *MissionConfig {
	config := &MissionConfig{
		Name:        "Mission Test Config",
		Description: "Configuration for mission config tests",
		Plateau:     "5 5",
		Rovers: []RoverSetup{
			{ID: "curiosity", Position: "1 2 N", Commands: "LMLMLMLMM"},
			{ID: "spirit", Position: "3 3 E", Commands: "MMRMMRMRRM"},
		},
	}
	config.Messages.Welcome = "Welcome to the test mission!"
	config.Messages.Deployed = "Rover deployed"
	config.Messages.Moved = "Rover moved"
	config.Messages.Turned = "Rover turned"
	config.Messages.OutOfPlateau = "Target is outside the plateau"
	config.Messages.Collision = "Target cell is occupied"
	return config
}

func TestValidateMissionConfig(t *testing.T) {
	if err := ValidateMissionConfig(createTestMissionConfig()); err != nil {
		t.Fatalf("Expected valid config, got %v", err)
	}
}

func TestValidateMissionConfigErrors(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*MissionConfig)
		wantErr string
	}{
		{
			name:    "missing name",
			mutate:  func(c *MissionConfig) { c.Name = "" },
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			mutate:  func(c *MissionConfig) { c.Description = "" },
			wantErr: "description is required",
		},
		{
			name:    "malformed plateau",
			mutate:  func(c *MissionConfig) { c.Plateau = "5 five" },
			wantErr: "plateau bounds",
		},
		{
			name:    "oversized plateau",
			mutate:  func(c *MissionConfig) { c.Plateau = "500 5" },
			wantErr: "plateau edge",
		},
		{
			name:    "rover out of range",
			mutate:  func(c *MissionConfig) { c.Rovers[0].Position = "9 9 N" },
			wantErr: "rover 1",
		},
		{
			name: "rovers share a cell",
			mutate: func(c *MissionConfig) {
				c.Rovers[1].Position = c.Rovers[0].Position
			},
			wantErr: "rover 2",
		},
		{
			name: "duplicate rover ids",
			mutate: func(c *MissionConfig) {
				c.Rovers[1].ID = c.Rovers[0].ID
			},
			wantErr: "duplicate id",
		},
		{
			name:    "invalid command letter",
			mutate:  func(c *MissionConfig) { c.Rovers[0].Commands = "LMX" },
			wantErr: "invalid command",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := createTestMissionConfig()
			tc.mutate(config)

			err := ValidateMissionConfig(config)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestBuildPlateau(t *testing.T) {
	config := createTestMissionConfig()

	plateau, err := BuildPlateau(config)
	if err != nil {
		t.Fatalf("BuildPlateau failed: %v", err)
	}

	width, height := plateau.Size()
	if width != 5 || height != 5 {
		t.Errorf("Expected bounds (5, 5), got (%d, %d)", width, height)
	}
	if plateau.Count() != 2 {
		t.Fatalf("Expected 2 deployed rovers, got %d", plateau.Count())
	}

	rover, ok := plateau.Rover("curiosity")
	if !ok {
		t.Fatal("Expected scripted rover to be deployed")
	}
	x, y := rover.Location()
	if x != 1 || y != 2 || rover.Direction() != "N" {
		t.Errorf("Expected curiosity at 1 2 N, got %d %d %s", x, y, rover.Direction())
	}
}

func TestBuildPlateauScriptedCollision(t *testing.T) {
	config := createTestMissionConfig()
	config.Rovers[1].Position = "1 2 E"

	if _, err := BuildPlateau(config); err == nil {
		t.Fatal("Expected scripted collision to fail the build")
	}
}
