// Package mars provides the core plateau logic for the Mars Rover Mission.
//
// The mars package implements the mission mechanics including:
//   - Plateau bounds and rover registry management
//   - Deployment validation (range and collision checks)
//   - Rover movement and heading rotation
//   - Direction letter to radian heading encoding
//   - Mission configuration loading and validation
//
// Core Types:
//
// The Surface interface defines the contract for deployable terrain,
// implemented by Plateau. Rover represents a single deployed vehicle with
// a position and heading, while MissionConfig defines scripted missions
// loaded from JSON files.
//
// Usage:
//
//	plateau, err := mars.ParseBounds("5 5")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	rover, err := plateau.Deploy("1 2 N")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Drive the rover
//	rover.TurnLeft()
//	err = rover.MoveForward()
//
// Mission Rules:
//
// Rovers are deployed onto a rectangular plateau anchored at (0,0) with an
// inclusive upper-right corner at (width, height). A deployment or move is
// rejected when the target cell is outside the plateau or already occupied
// by another rover. Two rovers never share a cell.
package mars
