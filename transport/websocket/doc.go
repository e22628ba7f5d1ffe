// Package websocket provides WebSocket transport for the Mars rover mission server.
//
// The websocket package implements:
//   - Real-time mission state streaming
//   - Session-aware WebSocket connections
//   - Automatic state broadcasting on rover activity
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine pair that manages reading, writing, and cleanup.
//
// Message Protocol:
//
// Outgoing messages are JSON-encoded:
//   - {session_id: "ab12", event: "state_update", mission_state: {...}}
//
// mission_state carries the full plateau snapshot (bounds, rover poses,
// command count) after each deploy, move, turn, or bulk command run.
// Incoming client messages are not processed; the read side only keeps the
// connection alive.
//
// Session Integration:
//
// WebSocket connections are session-aware. Clients specify their session ID
// via query parameter (?session=ab12) when establishing the connection.
// State updates are broadcast only to clients watching the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// from an HTTP handler, after validating the session:
//	hub.ServeWS(w, r, sessionID)
//
// Connection Lifecycle:
//
// 1. Client connects with session ID
// 2. Connection registered with hub
// 3. Client receives state updates as rovers act
// 4. Disconnection triggers cleanup; empty sessions are dropped from the hub
//
// Concurrency:
//
// The hub and client handlers are designed for concurrent operation.
// Multiple clients can connect, disconnect, and receive broadcasts
// simultaneously without blocking each other.
package websocket
