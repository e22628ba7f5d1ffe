package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

type RoverState struct {
	ID        string   `json:"id"`
	Position  Position `json:"position"`
	Direction string   `json:"direction"`
}

type MissionState struct {
	PlateauWidth  int          `json:"plateau_width"`
	PlateauHeight int          `json:"plateau_height"`
	Rovers        []RoverState `json:"rovers"`
}

type SessionResponse struct {
	ID           string        `json:"id"`
	ConfigName   string        `json:"config_name"`
	MissionState *MissionState `json:"mission_state"`
}

type DeployResponse struct {
	Success     bool        `json:"success"`
	Rover       *RoverState `json:"rover"`
	Message     string      `json:"message"`
	FailureCode string      `json:"failure_code"`
}

type CommandsResponse struct {
	Success          bool          `json:"success"`
	CommandsExecuted int           `json:"commands_executed"`
	StoppedReason    string        `json:"stopped_reason"`
	StopReasonCode   string        `json:"stop_reason_code"`
	EndPos           Position      `json:"end_pos"`
	MissionState     *MissionState `json:"mission_state"`
}

type Client struct {
	baseURL   string
	sessionID string
	client    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) CreateSession(configID string) (*MissionState, error) {
	var reqBody []byte
	var err error

	if configID != "" {
		reqBody, err = json.Marshal(map[string]string{"config_id": configID})
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
	}

	resp, err := c.client.Post(c.baseURL+"/api/sessions", "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create session failed: %s - %s", resp.Status, string(body))
	}

	var session SessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("parse session response: %w", err)
	}

	c.sessionID = session.ID
	return session.MissionState, nil
}

func (c *Client) GetState() (*MissionState, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/state", c.baseURL, c.sessionID)
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("get state: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("get state failed: %s - %s", resp.Status, string(body))
	}

	var state MissionState
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		return nil, fmt.Errorf("parse state: %w", err)
	}

	return &state, nil
}

func (c *Client) Deploy(instructions, roverID string) (*RoverState, error) {
	req := map[string]string{"instructions": instructions}
	if roverID != "" {
		req["rover_id"] = roverID
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal deploy: %w", err)
	}

	url := fmt.Sprintf("%s/api/sessions/%s/rovers", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("deploy: %w", err)
	}
	defer resp.Body.Close()

	var deployResp DeployResponse
	if err := json.NewDecoder(resp.Body).Decode(&deployResp); err != nil {
		return nil, fmt.Errorf("parse deploy response: %w", err)
	}

	if !deployResp.Success {
		return nil, fmt.Errorf("deploy rejected (%s): %s", deployResp.FailureCode, deployResp.Message)
	}

	return deployResp.Rover, nil
}

func (c *Client) RunCommands(roverID, commands string) (*CommandsResponse, error) {
	body, err := json.Marshal(map[string]string{"commands": commands})
	if err != nil {
		return nil, fmt.Errorf("marshal commands: %w", err)
	}

	url := fmt.Sprintf("%s/api/sessions/%s/rovers/%s/commands", c.baseURL, c.sessionID, roverID)
	resp, err := c.client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("run commands: %w", err)
	}
	defer resp.Body.Close()

	var cmdResp CommandsResponse
	if err := json.NewDecoder(resp.Body).Decode(&cmdResp); err != nil {
		return nil, fmt.Errorf("parse commands response: %w", err)
	}

	return &cmdResp, nil
}

func findRover(state *MissionState, roverID string) *RoverState {
	for i := range state.Rovers {
		if state.Rovers[i].ID == roverID {
			return &state.Rovers[i]
		}
	}
	return nil
}

func plannerFor(state *MissionState, roverID string) *RoutePlanner {
	planner := NewRoutePlanner(state.PlateauWidth, state.PlateauHeight)
	for _, rover := range state.Rovers {
		if rover.ID != roverID {
			planner.Occupy(rover.Position, rover.ID)
		}
	}
	return planner
}

func main() {
	serverURL := flag.String("url", "http://localhost:8080", "Mission server URL")
	configID := flag.String("config", "", "Mission configuration name")
	continueSession := flag.String("continue", "", "Drive a rover in an existing session by ID")
	roverID := flag.String("rover", "", "Rover to drive (deploys one when the session has none)")
	deploy := flag.String("deploy", "0 0 N", "Deployment instruction used when the rover does not exist yet")
	goalX := flag.Int("goal-x", -1, "Goal cell X coordinate")
	goalY := flag.Int("goal-y", -1, "Goal cell Y coordinate")
	maxReplans := flag.Int("max-replans", 5, "Maximum replanning rounds before giving up")
	flag.Parse()

	if *goalX < 0 || *goalY < 0 {
		log.Fatalf("Both -goal-x and -goal-y are required")
	}
	goal := Position{X: *goalX, Y: *goalY}

	log.Printf("Connecting to mission server at %s", *serverURL)
	client := NewClient(*serverURL)

	var state *MissionState
	var err error

	// Check for saved session ID
	sessionFile := ".session"
	savedSessionID := ""

	if *continueSession != "" {
		savedSessionID = *continueSession
	} else {
		if data, err := os.ReadFile(sessionFile); err == nil {
			savedSessionID = string(bytes.TrimSpace(data))
		}
	}

	if savedSessionID != "" {
		client.sessionID = savedSessionID
		log.Printf("Resuming session: %s", client.sessionID)
		state, err = client.GetState()
		if err != nil {
			log.Printf("Failed to resume session (may be expired): %v", err)
			log.Printf("Creating new session...")
			savedSessionID = ""
		}
	}

	if savedSessionID == "" {
		state, err = client.CreateSession(*configID)
		if err != nil {
			log.Fatalf("Failed to create session: %v", err)
		}
		log.Printf("Session created: %s", client.sessionID)

		if err := os.WriteFile(sessionFile, []byte(client.sessionID), 0644); err != nil {
			log.Printf("Warning: Failed to save session ID: %v", err)
		}
	}

	log.Printf("Plateau: %d x %d (inclusive), rovers: %d",
		state.PlateauWidth, state.PlateauHeight, len(state.Rovers))

	// Make sure the rover we want to drive exists
	rover := findRover(state, *roverID)
	if rover == nil {
		log.Printf("Deploying rover from %q", *deploy)
		rover, err = client.Deploy(*deploy, *roverID)
		if err != nil {
			log.Fatalf("Failed to deploy rover: %v", err)
		}
		log.Printf("Rover %s deployed at (%d,%d) facing %s",
			rover.ID, rover.Position.X, rover.Position.Y, rover.Direction)
	}

	// Plan, execute, and replan when a run stops early. Other sessions'
	// rovers never interfere, but a stale snapshot of this session can.
	for round := 1; round <= *maxReplans; round++ {
		state, err = client.GetState()
		if err != nil {
			log.Fatalf("Failed to refresh state: %v", err)
		}
		current := findRover(state, rover.ID)
		if current == nil {
			log.Fatalf("Rover %s disappeared from the session", rover.ID)
		}

		if current.Position == goal {
			log.Printf("Rover %s reached goal (%d,%d)", current.ID, goal.X, goal.Y)
			os.Exit(0)
		}

		planner := plannerFor(state, current.ID)
		commands, ok := planner.PlanCommands(current.Position, current.Direction, goal)
		if !ok {
			log.Fatalf("No route from (%d,%d) to (%d,%d): goal blocked or out of range",
				current.Position.X, current.Position.Y, goal.X, goal.Y)
		}

		log.Printf("Round %d: executing %d commands: %s", round, len(commands), commands)
		result, err := client.RunCommands(current.ID, commands)
		if err != nil {
			log.Fatalf("Failed to run commands: %v", err)
		}

		if result.Success {
			log.Printf("Rover %s reached goal (%d,%d) in %d commands",
				current.ID, result.EndPos.X, result.EndPos.Y, result.CommandsExecuted)
			os.Exit(0)
		}

		log.Printf("Run stopped at (%d,%d) after %d commands: %s (%s), replanning",
			result.EndPos.X, result.EndPos.Y, result.CommandsExecuted,
			result.StoppedReason, result.StopReasonCode)
	}

	log.Printf("Gave up after %d replanning rounds", *maxReplans)
	os.Exit(1)
}
