// Package service provides the business logic layer for the Mars Rover
// Mission Control server.
//
// The service package implements:
//   - Multi-session mission management
//   - Rover deployment, movement, and turning over session-scoped plateaus
//   - Bulk L/R/M command string execution
//   - Command history tracking
//   - Configuration management and loading
//
// Core Interfaces:
//
// MissionService is the main service interface providing high-level mission
// operations. SessionManager handles session creation, retrieval, and
// lifecycle. ConfigManager manages mission configuration loading.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP)
// and the mars core, providing session isolation, configuration management,
// and business logic orchestration. Each session maintains its own plateau
// instance with an independent rover fleet.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr := config.NewManager("configs")
//	missionService := service.NewMissionService(sessionMgr, configMgr)
//
//	// Create a new session and deploy a rover
//	info, err := missionService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := missionService.DeployRover(ctx, info.ID, "1 2 N", "")
//
// Failure Model:
//
// Domain rejections (out-of-range targets, collisions, malformed
// instructions, duplicate rover ids) are reported as unsuccessful results
// with a machine-friendly failure code, leaving session state unchanged.
// Go errors are reserved for infrastructure problems such as unknown
// sessions or unloadable configurations.
package service
