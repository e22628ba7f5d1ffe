package session

import (
	"os"
	"testing"

	"github.com/roverops/marsmission/mission/config"
)

func TestManagerWithPersistence(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "manager_persistence_test_*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	configManager, err := config.NewManager("../../configs")
	if err != nil {
		t.Fatalf("Failed to create config manager: %v", err)
	}

	persistence, err := NewFilePersistence(tempDir, configManager)
	if err != nil {
		t.Fatalf("Failed to create file persistence: %v", err)
	}

	manager := NewManagerWithPersistence(persistence)

	t.Run("Create Session Auto-Saves", func(t *testing.T) {
		missionConfig := configManager.GetDefault()
		session, err := manager.Create("auto1", missionConfig)
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}

		if !persistence.Exists(session.ID) {
			t.Error("Session should be auto-saved on creation")
		}

		loadedSession, err := persistence.Load(session.ID)
		if err != nil {
			t.Fatalf("Failed to load auto-saved session: %v", err)
		}

		if loadedSession.ID != session.ID {
			t.Errorf("Expected ID %s, got %s", session.ID, loadedSession.ID)
		}
	})

	t.Run("Get Session Loads from Persistence", func(t *testing.T) {
		// New manager simulates a restart with nothing in memory
		manager2 := NewManagerWithPersistence(persistence)

		session, err := manager2.Get("auto1")
		if err != nil {
			t.Fatalf("Failed to get session from persistence: %v", err)
		}

		if session.ID != "auto1" {
			t.Errorf("Expected ID auto1, got %s", session.ID)
		}

		session2, err := manager2.Get("auto1")
		if err != nil {
			t.Fatalf("Failed to get session from memory: %v", err)
		}

		if session2.ID != session.ID {
			t.Error("Session should be cached in memory after loading from persistence")
		}
	})

	t.Run("Save Method Persists Changes", func(t *testing.T) {
		session, err := manager.Get("auto1")
		if err != nil {
			t.Fatalf("Failed to get session: %v", err)
		}

		rover, err := session.Plateau.Deploy("0 0 E")
		if err != nil {
			t.Fatalf("Failed to deploy rover: %v", err)
		}
		if err := rover.MoveForward(); err != nil {
			t.Fatalf("Failed to move rover: %v", err)
		}

		err = manager.Save("auto1")
		if err != nil {
			t.Fatalf("Failed to save session: %v", err)
		}

		manager3 := NewManagerWithPersistence(persistence)
		loadedSession, err := manager3.Get("auto1")
		if err != nil {
			t.Fatalf("Failed to load session after manual save: %v", err)
		}

		loaded, ok := loadedSession.Plateau.Rover(rover.ID())
		if !ok {
			t.Fatal("Deployed rover should be persisted")
		}
		x, y := loaded.Location()
		if x != 1 || y != 0 {
			t.Errorf("Expected persisted rover at (1, 0), got (%d, %d)", x, y)
		}
	})

	t.Run("Delete Removes from Persistence", func(t *testing.T) {
		missionConfig := configManager.GetDefault()
		session, err := manager.Create("delete_test", missionConfig)
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}

		if !persistence.Exists(session.ID) {
			t.Error("Session should exist in persistence")
		}

		err = manager.Delete(session.ID)
		if err != nil {
			t.Fatalf("Failed to delete session: %v", err)
		}

		if persistence.Exists(session.ID) {
			t.Error("Session should be removed from persistence on delete")
		}

		_, err = manager.Get(session.ID)
		if err == nil {
			t.Error("Should not be able to get deleted session")
		}
	})

	t.Run("Load Persisted Sessions on Startup", func(t *testing.T) {
		missionConfig := configManager.GetDefault()
		sessions := []string{"startup1", "startup2", "startup3"}
		for _, id := range sessions {
			_, err := manager.Create(id, missionConfig)
			if err != nil {
				t.Fatalf("Failed to create session %s: %v", id, err)
			}
		}

		// New manager simulates server restart
		manager4 := NewManagerWithPersistence(persistence)

		err := manager4.LoadPersistedSessions()
		if err != nil {
			t.Fatalf("Failed to load persisted sessions: %v", err)
		}

		for _, id := range sessions {
			session, err := manager4.Get(id)
			if err != nil {
				t.Errorf("Failed to get session %s after loading persisted sessions: %v", id, err)
				continue
			}
			if session.ID != id {
				t.Errorf("Expected ID %s, got %s", id, session.ID)
			}
		}

		allSessions := manager4.List()
		if len(allSessions) < len(sessions) {
			t.Errorf("Expected at least %d sessions, got %d", len(sessions), len(allSessions))
		}
	})

	t.Run("DeleteFromMemory Keeps File", func(t *testing.T) {
		missionConfig := configManager.GetDefault()
		session, err := manager.Create("memonly", missionConfig)
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}

		if err := manager.DeleteFromMemory(session.ID); err != nil {
			t.Fatalf("Failed to delete from memory: %v", err)
		}

		// The persisted file stays, so Get reloads it
		if !persistence.Exists(session.ID) {
			t.Error("Persisted file should survive DeleteFromMemory")
		}
		reloaded, err := manager.Get(session.ID)
		if err != nil {
			t.Fatalf("Expected session to reload from persistence: %v", err)
		}
		if reloaded.ID != session.ID {
			t.Errorf("Expected ID %s, got %s", session.ID, reloaded.ID)
		}
	})
}
