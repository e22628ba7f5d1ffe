package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/roverops/marsmission/mission/mars"
)

func createTestConfig() *mars.MissionConfig {
	config := &mars.MissionConfig{
		Name:        "Test Mission",
		Description: "Test configuration",
		Plateau:     "5 5",
		Rovers: []mars.RoverSetup{
			{Position: "1 2 N", Commands: "LMLMLMLMM"},
		},
	}
	config.Messages.Welcome = "Welcome!"
	config.Messages.Deployed = "Rover deployed."
	config.Messages.Moved = "Rover moved."
	config.Messages.Turned = "Rover turned."
	config.Messages.OutOfPlateau = "Move rejected: outside the plateau."
	config.Messages.Collision = "Move rejected: cell occupied."
	return config
}

func TestManager_Create(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	t.Run("create with custom ID", func(t *testing.T) {
		session, err := manager.Create("test-session", config)
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if session.ID != "test-session" {
			t.Errorf("Expected session ID 'test-session', got '%s'", session.ID)
		}
		if session.Plateau == nil {
			t.Fatal("Expected plateau to be initialized")
		}
		// Scripted deployment from the config must already be on the plateau
		if len(session.Plateau.Rovers()) != 1 {
			t.Errorf("Expected 1 scripted rover, got %d", len(session.Plateau.Rovers()))
		}
	})

	t.Run("create with auto-generated ID", func(t *testing.T) {
		session, err := manager.Create("", config)
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if session.ID == "" {
			t.Error("Expected auto-generated session ID")
		}
		if len(session.ID) != 4 {
			t.Errorf("Expected 4-character session ID, got %d characters", len(session.ID))
		}
	})

	t.Run("duplicate session ID", func(t *testing.T) {
		_, err := manager.Create("test-session", config)
		if err != ErrSessionAlreadyExists {
			t.Errorf("Expected ErrSessionAlreadyExists, got %v", err)
		}
	})

	t.Run("case-insensitive duplicate check", func(t *testing.T) {
		_, err := manager.Create("TEST-SESSION", config)
		if err != ErrSessionAlreadyExists {
			t.Errorf("Expected ErrSessionAlreadyExists for case variant, got %v", err)
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		invalidConfig := createTestConfig()
		invalidConfig.Plateau = "not a plateau"
		_, err := manager.Create("invalid-test", invalidConfig)
		if err == nil {
			t.Error("Expected error for invalid plateau bounds")
		}
	})

	t.Run("scripted deployment out of range", func(t *testing.T) {
		badConfig := createTestConfig()
		badConfig.Rovers = []mars.RoverSetup{{Position: "9 9 N"}}
		_, err := manager.Create("bad-deploy", badConfig)
		if err == nil {
			t.Error("Expected error for out-of-range scripted deployment")
		}
	})
}

func TestManager_Get(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	created, _ := manager.Create("get-test", config)

	t.Run("get existing session", func(t *testing.T) {
		session, err := manager.Get("get-test")
		if err != nil {
			t.Fatalf("Failed to get session: %v", err)
		}
		if session.ID != created.ID {
			t.Errorf("Expected session ID '%s', got '%s'", created.ID, session.ID)
		}
	})

	t.Run("case-insensitive get", func(t *testing.T) {
		session, err := manager.Get("GET-TEST")
		if err != nil {
			t.Fatalf("Failed to get session with different case: %v", err)
		}
		if session.ID != created.ID {
			t.Errorf("Expected same session regardless of case")
		}
	})

	t.Run("get non-existent session", func(t *testing.T) {
		_, err := manager.Get("non-existent")
		if err != ErrSessionNotFound {
			t.Errorf("Expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestManager_GetOrCreate(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	t.Run("create new session", func(t *testing.T) {
		session, err := manager.GetOrCreate("new-session", config)
		if err != nil {
			t.Fatalf("Failed to get or create session: %v", err)
		}
		if session.ID != "new-session" {
			t.Errorf("Expected session ID 'new-session', got '%s'", session.ID)
		}
	})

	t.Run("get existing session", func(t *testing.T) {
		session, err := manager.GetOrCreate("new-session", config)
		if err != nil {
			t.Fatalf("Failed to get existing session: %v", err)
		}
		if session.ID != "new-session" {
			t.Errorf("Expected same session ID")
		}
	})
}

func TestManager_Delete(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	manager.Create("delete-test", config)

	t.Run("delete existing session", func(t *testing.T) {
		err := manager.Delete("delete-test")
		if err != nil {
			t.Fatalf("Failed to delete session: %v", err)
		}

		_, err = manager.Get("delete-test")
		if err != ErrSessionNotFound {
			t.Error("Expected session to be deleted")
		}
	})

	t.Run("delete non-existent session", func(t *testing.T) {
		err := manager.Delete("non-existent")
		if err != ErrSessionNotFound {
			t.Errorf("Expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("case-insensitive delete", func(t *testing.T) {
		manager.Create("case-test", config)
		err := manager.Delete("CASE-TEST")
		if err != nil {
			t.Fatalf("Failed to delete with different case: %v", err)
		}
		_, err = manager.Get("case-test")
		if err != ErrSessionNotFound {
			t.Error("Expected session to be deleted regardless of case")
		}
	})
}

func TestManager_DeleteFromMemory(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	manager.Create("mem-test", config)

	if err := manager.DeleteFromMemory("MEM-TEST"); err != nil {
		t.Fatalf("Failed to delete from memory: %v", err)
	}
	if _, err := manager.Get("mem-test"); err != ErrSessionNotFound {
		t.Error("Expected session to be gone from memory")
	}

	if err := manager.DeleteFromMemory("mem-test"); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestManager_List(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	session1, _ := manager.Create("list-1", config)
	session2, _ := manager.Create("list-2", config)
	session3, _ := manager.Create("list-3", config)

	sessions := manager.List()

	if len(sessions) < 3 {
		t.Errorf("Expected at least 3 sessions, got %d", len(sessions))
	}

	foundSessions := make(map[string]bool)
	for _, s := range sessions {
		foundSessions[s.ID] = true
	}

	if !foundSessions[session1.ID] {
		t.Error("Session 1 not found in list")
	}
	if !foundSessions[session2.ID] {
		t.Error("Session 2 not found in list")
	}
	if !foundSessions[session3.ID] {
		t.Error("Session 3 not found in list")
	}
}

func TestManager_CleanupExpired(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	active, _ := manager.Create("active", config)
	expired, _ := manager.Create("expired", config)

	expired.LastAccessedAt = time.Now().Add(-2 * time.Hour)
	active.LastAccessedAt = time.Now()

	deleted := manager.CleanupExpiredSessions(1 * time.Hour)

	if deleted != 1 {
		t.Errorf("Expected 1 session to be deleted, got %d", deleted)
	}

	_, err := manager.Get("expired")
	if err != ErrSessionNotFound {
		t.Error("Expected expired session to be deleted")
	}

	_, err = manager.Get("active")
	if err != nil {
		t.Error("Expected active session to still exist")
	}
}

func TestManager_UpdateLastAccessed(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	session, _ := manager.Create("access-test", config)
	originalTime := session.LastAccessedAt

	time.Sleep(10 * time.Millisecond)

	err := manager.UpdateLastAccessed("access-test")
	if err != nil {
		t.Fatalf("Failed to update last accessed: %v", err)
	}

	updated, _ := manager.Get("access-test")
	if !updated.LastAccessedAt.After(originalTime) {
		t.Error("Expected LastAccessedAt to be updated")
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	var wg sync.WaitGroup
	errs := make(chan error, 100)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_, err := manager.Create(fmt.Sprintf("concurrent-%d", id), config)
			if err != nil && err != ErrSessionAlreadyExists {
				errs <- err
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Unexpected error during concurrent access: %v", err)
	}

	if manager.Count() != 100 {
		t.Errorf("Expected 100 sessions, got %d", manager.Count())
	}
}

func TestManager_SessionIsolation(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	session1, _ := manager.Create("iso-1", config)
	session2, _ := manager.Create("iso-2", config)

	rovers1 := session1.Plateau.Rovers()
	if len(rovers1) == 0 {
		t.Fatal("Expected scripted rover in session 1")
	}
	rover1 := rovers1[0]
	if err := rover1.MoveForward(); err != nil {
		t.Fatalf("Failed to move rover: %v", err)
	}

	rover2 := session2.Plateau.Rovers()[0]
	_, y1 := rover1.Location()
	_, y2 := rover2.Location()
	if y1 == y2 {
		t.Error("Sessions should have independent plateau state")
	}
}

func TestManager_SessionIDGeneration(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	generatedIDs := make(map[string]bool)

	for i := 0; i < 50; i++ {
		session, err := manager.Create("", config)
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}

		if generatedIDs[session.ID] {
			t.Errorf("Duplicate session ID generated: %s", session.ID)
		}
		generatedIDs[session.ID] = true

		if len(session.ID) != 4 {
			t.Errorf("Expected 4-character ID, got %d", len(session.ID))
		}
	}
}
