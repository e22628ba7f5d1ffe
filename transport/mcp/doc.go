// Package mcp provides a Model Context Protocol server for the Mars rover mission API.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for rover operations
//   - Session-aware command execution
//   - Thin client proxying the REST API
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - create_session: Create new mission session with config selection
//   - list_sessions: List all active sessions
//   - get_session: Get specific session details
//   - mission_state: Get the plateau snapshot with rover poses
//   - deploy_rover: Deploy a rover from an "X Y D" instruction line
//   - move_rover: Move one rover a single cell forward
//   - turn_rover: Rotate a rover left or right in place
//   - run_commands: Execute a command string such as "LMLMLMLMM"
//   - command_history: Retrieve command history with pagination
//   - list_configs: List available mission configurations
//   - mission_instructions: Explain the plateau rules and command letters
//   - describe_position: Describe one cell and its occupancy
//
// Transport:
//
// The client wraps the REST API over HTTP, so the MCP process can run
// separately from the mission server. It is typically served over stdio for
// local MCP clients (see the stdio-mcp mode of the main binary).
//
// Session Management:
//
// All rover tools take a session_id parameter. AI agents can manage multiple
// concurrent mission sessions independently.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Drive rovers across the plateau autonomously
//   - Plan and test command sequences
//   - Analyze mission state and recover from failed commands
//   - Manage multiple mission sessions
//   - Learn from command history
package mcp
