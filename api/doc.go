// Package api provides HTTP REST API handlers for the Mars rover mission server.
//
// The api package implements:
//   - RESTful endpoints for rover operations
//   - Session management endpoints
//   - Configuration listing and creation
//   - WebSocket upgrade handling
//   - Static file serving
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session (optional {"config_id": "..."})
//   - GET /api/sessions - List sessions (sort, order, limit query params)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session and its persisted file
//
// Rover Operations:
//   - POST /api/sessions/{id}/rovers - Deploy a rover ({"instructions": "X Y D"})
//   - GET /api/sessions/{id}/rovers - List deployed rovers
//   - POST /api/sessions/{id}/rovers/{rover}/move - Move one cell forward
//   - POST /api/sessions/{id}/rovers/{rover}/turn - Turn ({"direction": "left|right"})
//   - POST /api/sessions/{id}/rovers/{rover}/commands - Run a command string ("LMLMLMLMM")
//   - GET /api/sessions/{id}/state - Get plateau snapshot
//   - GET /api/sessions/{id}/history - Get command history with pagination
//
// Configuration:
//   - GET /api/configs - List available mission configurations
//   - GET /api/configs/{name} - Get one configuration
//   - POST /api/configs - Save a new configuration
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Failed rover operations return the
// full result body with a failure_code and a status derived from it:
// parse_error maps to 400, collision and duplicate_rover_id to 409, and
// out_of_plateau to 422. Bulk command runs always return 200; partial
// execution is reported through commands_executed, stop_reason_code, and
// stopped_on_command rather than the status line.
//
// Usage:
//
//	server := api.NewServer(missionService, hub)
//	http.ListenAndServe(":8080", server)
//
// Error Handling:
//
// Transport-level errors (unknown session, bad body) are returned as JSON
// with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api
