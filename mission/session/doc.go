// Package session provides session management for the Mars Rover Mission
// Control server.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session lifecycle management
//   - Optional JSON file persistence of plateau state and command history
//
// Core Types:
//
// Manager is the main session manager that handles all session operations.
// Each session wraps one plateau with its rover fleet plus metadata like
// creation time and last access time.
//
// Session Identifiers:
//
// Sessions use 4-character hex IDs for easy reference, generated with
// cryptographic randomness. Lookups are case-insensitive.
//
// Persistence:
//
// FilePersistence stores sessions as JSON files holding the plateau bounds,
// every rover's pose, and the session command log. Loading reconstructs the
// plateau by re-running the persisted deployments through the core, so a
// corrupted file cannot smuggle in an invalid fleet.
//
// Usage:
//
//	manager := session.NewManager()
//
//	sess, err := manager.Create("", config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err = manager.Get(sessionID)
//	sessions := manager.List()
package session
