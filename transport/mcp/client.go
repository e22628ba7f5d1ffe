package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/roverops/marsmission/mission/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Mars Rover Mission Control",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Mars Rover Mission Control - MCP Interface

This is a thin client that proxies all requests to the REST API server.

MISSION OBJECTIVE:
Deploy rovers onto a rectangular plateau and drive them with turn and move
commands. A deployment or move is rejected when the target cell is outside
the plateau or already occupied by another rover.

AVAILABLE TOOLS:
- mission_state: Get current plateau state and rover positions
- deploy_rover: Deploy a rover from an "X Y D" instruction
- move_rover: Move one rover a single cell forward
- turn_rover: Rotate one rover left or right by 90 degrees
- run_commands: Execute an L/R/M command string against one rover - requires intent explanation
- command_history: View past commands
- create_session: Create new mission session
- get_session: Get session details
- list_sessions: List all active sessions
- list_configs: List available mission configurations
- mission_instructions: Get comprehensive mission instructions and rules
- describe_position: Check whether a plateau cell is in range and unoccupied

NOTE: The 'intent' parameter on run_commands serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new mission session with optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Name of the config to use (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active mission sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details for a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "mission_state",
		Description: "Get the current plateau state and rover positions",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMissionState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "deploy_rover",
		Description: "Deploy a new rover onto the plateau from an \"X Y D\" instruction (D is one of N, E, S, W)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"instructions": map[string]interface{}{
					"type":        "string",
					"description": "Deployment instruction, e.g. \"1 2 N\"",
				},
				"rover_id": map[string]interface{}{
					"type":        "string",
					"description": "Explicit rover ID (optional, auto-generated when omitted)",
				},
			},
			Required: []string{"session_id", "instructions"},
		},
	}, c.handleDeployRover)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_rover",
		Description: "Move one rover a single cell forward along its heading",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"rover_id": map[string]interface{}{
					"type":        "string",
					"description": "Rover ID",
				},
			},
			Required: []string{"session_id", "rover_id"},
		},
	}, c.handleMoveRover)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "turn_rover",
		Description: "Rotate one rover left or right by 90 degrees",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"rover_id": map[string]interface{}{
					"type":        "string",
					"description": "Rover ID",
				},
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"left", "right"},
					"description": "Turn direction",
				},
			},
			Required: []string{"session_id", "rover_id", "direction"},
		},
	}, c.handleTurnRover)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "run_commands",
		Description: "Execute an L/R/M command string against one rover, e.g. \"LMLMLMLMM\"",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"rover_id": map[string]interface{}{
					"type":        "string",
					"description": "Rover ID",
				},
				"commands": map[string]interface{}{
					"type":        "string",
					"description": "Command string of L (turn left), R (turn right), M (move forward)",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this command sequence (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "rover_id", "commands"},
		},
	}, c.handleRunCommands)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "command_history",
		Description: "Get command history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleCommandHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available mission configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "mission_instructions",
		Description: "Get comprehensive mission instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleMissionInstructions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_position",
		Description: "Check whether a plateau cell is within range and whether a rover currently occupies it",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"x": map[string]interface{}{
					"type":        "integer",
					"description": "X coordinate of the cell to describe",
				},
				"y": map[string]interface{}{
					"type":        "integer",
					"description": "Y coordinate of the cell to describe",
				},
			},
			Required: []string{"session_id", "x", "y"},
		},
	}, c.handleDescribePosition)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		// Domain rejections come back with a result payload; surface it
		// instead of a bare status code when possible.
		var payload map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			if msg, ok := payload["error"].(string); ok {
				return fmt.Errorf("%s", msg)
			}
			if msg, ok := payload["message"].(string); ok {
				return fmt.Errorf("%s", msg)
			}
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n\n%s",
		session.ID, session.ConfigName, formatMissionState(session.MissionState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                    `json:"count"`
		Sessions []*service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if response.Count == 0 {
		return mcp.NewToolResultText("No active sessions"), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Active sessions: %d\n\n", response.Count)
	for _, session := range response.Sessions {
		fleet := 0
		if session.MissionState != nil {
			fleet = len(session.MissionState.Rovers)
		}
		fmt.Fprintf(&b, "• %s (config: %s, rovers: %d, created: %s)\n",
			session.ID, session.ConfigName, fleet,
			session.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSessionInfo(&session)), nil
}

func (c *Client) handleMissionState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state service.MissionState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatMissionState(&state)), nil
}

func (c *Client) handleDeployRover(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	instructions, _ := args["instructions"].(string)
	roverID, _ := args["rover_id"].(string)

	body := map[string]interface{}{
		"instructions": instructions,
	}
	if roverID != "" {
		body["rover_id"] = roverID
	}

	var result service.DeployResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/rovers", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatDeployResult(&result)), nil
}

func (c *Client) handleMoveRover(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	roverID, _ := args["rover_id"].(string)

	var result service.CommandResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/rovers/%s/move", sessionID, roverID), map[string]interface{}{}, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatCommandResult(&result)), nil
}

func (c *Client) handleTurnRover(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	roverID, _ := args["rover_id"].(string)
	direction, _ := args["direction"].(string)

	body := map[string]interface{}{
		"direction": direction,
	}

	var result service.CommandResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/rovers/%s/turn", sessionID, roverID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatCommandResult(&result)), nil
}

func (c *Client) handleRunCommands(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	roverID, _ := args["rover_id"].(string)
	commands, _ := args["commands"].(string)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"commands": commands,
	}

	var result service.BulkCommandResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/rovers/%s/commands", sessionID, roverID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatBulkResult(&result)), nil
}

func (c *Client) handleCommandHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var history service.HistoryResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/history%s", sessionID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatHistory(&history)), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s\n  %s\n  Plateau: %s, Scripted rovers: %d\n\n",
			config.ConfigID, config.Description, config.Plateau, config.FleetSize)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMissionInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Mars Rover Mission Control - Complete Instructions

MISSION OBJECTIVE:
Deploy rovers onto a rectangular plateau and drive them with turn and move
commands while avoiding the plateau edge and other rovers.

PLATEAU MODEL:
• The plateau is a rectangle anchored at (0,0); its upper-right corner
  (W, H) is inclusive, so a 5 5 plateau has 36 valid cells.
• Every rover occupies exactly one cell. Two rovers never share a cell.
• A deployment or move targeting a cell outside the plateau is rejected
  with out_of_plateau; a move into an occupied cell is rejected with
  collision. The rover stays where it was.

DEPLOYMENT:
• Instruction format: "X Y D" where X and Y are integers and D is one of
  N, E, S, W (case-insensitive).
• Rover IDs are auto-assigned as "1", "2", ... unless you supply one.
  Supplied IDs must be unique within the session.

DRIVING COMMANDS:
• L - turn left 90 degrees (always succeeds)
• R - turn right 90 degrees (always succeeds)
• M - move one cell forward along the current heading
• run_commands executes a whole string, e.g. "LMLMLMLMM", stopping at the
  first rejected move so you can re-plan from the reported position.

HEADINGS:
Internally headings are radians: E=0, N=π/2, W=π, S=-π/2. Turning left
adds π/2, turning right subtracts it, wrapping within those four values.

STRATEGY NOTES:
• Use describe_position before deploying into a crowded session.
• Plan around other rovers: a blocked M does not consume the rest of the
  command string, the remainder is simply not executed.
• Multiple sessions run independently; each has its own plateau and fleet.

SESSION MANAGEMENT:
- Multiple mission sessions can run simultaneously
- Each session has a unique 4-character ID
- Sessions maintain independent state and configuration
- Use session-specific tools for multi-mission management`

	return mcp.NewToolResultText(instructions), nil
}

func (c *Client) handleDescribePosition(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	x := int(args["x"].(float64))
	y := int(args["y"].(float64))

	var state service.MissionState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	inRange := x >= 0 && x <= state.PlateauWidth && y >= 0 && y <= state.PlateauHeight

	occupiedBy := ""
	for _, rover := range state.Rovers {
		if rover.Position.X == x && rover.Position.Y == y {
			occupiedBy = rover.ID
			break
		}
	}

	status := "available for deployment or movement"
	if !inRange {
		status = fmt.Sprintf("OUT OF RANGE - plateau spans (0,0) to (%d,%d) inclusive", state.PlateauWidth, state.PlateauHeight)
	} else if occupiedBy != "" {
		status = fmt.Sprintf("OCCUPIED by rover %s - deploying or moving here collides", occupiedBy)
	}

	result := fmt.Sprintf("Position (%d, %d):\nIn range: %v\nOccupied: %v\nStatus: %s",
		x, y, inRange, occupiedBy != "", status)
	return mcp.NewToolResultText(result), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatMissionState(session.MissionState))
}

// formatMissionState draws the plateau with (0,0) at the bottom-left, the
// way mission coordinates are defined. Rovers render as their heading
// arrow.
func formatMissionState(state *service.MissionState) string {
	if state == nil {
		return "No mission state available"
	}

	var result strings.Builder
	fmt.Fprintf(&result, "Plateau: %d x %d (inclusive) | Rovers: %d | Commands: %d\n\n",
		state.PlateauWidth, state.PlateauHeight, len(state.Rovers), state.TotalCommands)

	occupied := make(map[[2]int]service.RoverState)
	for _, rover := range state.Rovers {
		occupied[[2]int{rover.Position.X, rover.Position.Y}] = rover
	}

	for y := state.PlateauHeight; y >= 0; y-- {
		for x := 0; x <= state.PlateauWidth; x++ {
			if rover, ok := occupied[[2]int{x, y}]; ok {
				result.WriteString(headingArrow(rover.Direction))
			} else {
				result.WriteString(".")
			}
		}
		result.WriteString("\n")
	}

	if len(state.Rovers) > 0 {
		result.WriteString("\nRovers:\n")
		for _, rover := range state.Rovers {
			fmt.Fprintf(&result, "• %s at (%d, %d) facing %s\n",
				rover.ID, rover.Position.X, rover.Position.Y, rover.Direction)
		}
	}

	if state.Message != "" {
		fmt.Fprintf(&result, "\nMessage: %s", state.Message)
	}

	return result.String()
}

func headingArrow(direction string) string {
	switch direction {
	case "N":
		return "^"
	case "S":
		return "v"
	case "E":
		return ">"
	case "W":
		return "<"
	default:
		return "?"
	}
}

func formatDeployResult(result *service.DeployResult) string {
	if !result.Success {
		return fmt.Sprintf("✗ Deployment failed (%s)\n%s\n\n%s",
			result.FailureCode, result.Message, formatMissionState(result.MissionState))
	}

	return fmt.Sprintf("✓ Rover %s deployed at (%d, %d) facing %s\n\n%s",
		result.Rover.ID, result.Rover.Position.X, result.Rover.Position.Y,
		result.Rover.Direction, formatMissionState(result.MissionState))
}

func formatCommandResult(result *service.CommandResult) string {
	status := "✓"
	if !result.Success {
		status = "✗"
	}

	response := fmt.Sprintf("%s Rover %s command %s: (%d,%d)→(%d,%d) facing %s\n",
		status, result.RoverID, result.Command,
		result.From.X, result.From.Y, result.To.X, result.To.Y, result.Direction)
	if !result.Success {
		response += fmt.Sprintf("Rejected: %s (%s)\n", result.Message, result.FailureCode)
	}

	response += "\n" + formatMissionState(result.MissionState)
	return response
}

func formatBulkResult(result *service.BulkCommandResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Rover %s: executed %d/%d commands\n",
		result.RoverID, result.CommandsExecuted, result.RequestedCommands)
	fmt.Fprintf(&b, "Start: (%d,%d) → End: (%d,%d)\n",
		result.StartPos.X, result.StartPos.Y, result.EndPos.X, result.EndPos.Y)

	if result.Truncated {
		fmt.Fprintf(&b, "Truncated to the per-call limit of %d commands\n", result.Limit)
	}
	if !result.Success {
		fmt.Fprintf(&b, "Stopped on command %d: %s (%s)\n",
			result.StoppedOnCommand, result.StoppedReason, result.StopReasonCode)
	}

	if len(result.Steps) > 0 {
		b.WriteString("\nSteps:\n")
		for _, step := range result.Steps {
			status := "✓"
			if !step.Success {
				status = "✗"
			}
			fmt.Fprintf(&b, "%2d. %s %s (%d,%d)→(%d,%d) %s\n",
				step.Idx, status, step.Command,
				step.From.X, step.From.Y, step.To.X, step.To.Y, step.Direction)
		}
	}

	b.WriteString("\n" + formatMissionState(result.MissionState))
	return b.String()
}

func formatHistory(history *service.HistoryResponse) string {
	if history.TotalCommands == 0 {
		return "No commands recorded yet"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Command history (page %d/%d, %d total):\n\n",
		history.Page, history.TotalPages, history.TotalCommands)

	for _, entry := range history.Commands {
		status := "✓"
		if !entry.Success {
			status = "✗"
		}
		fmt.Fprintf(&b, "%4d. %s rover=%s %s (%d,%d)→(%d,%d) %s\n",
			entry.SequenceNumber, status, entry.RoverID, entry.Command,
			entry.From.X, entry.From.Y, entry.To.X, entry.To.Y, entry.Direction)
	}

	if history.HasNext {
		b.WriteString("\n(more pages available)")
	}

	return b.String()
}
