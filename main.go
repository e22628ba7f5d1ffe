// Command marsmission starts the Mars Rover Mission Control server.
//
// It supports two modes:
//  1. "serve" (default) – runs the HTTP server exposing REST API, WebSocket, and an /mcp HTTP endpoint
//  2. "mcp-stdio" – runs an MCP stdio server and spins up an internal HTTP API if none is available
//
// Flags control host/port, config directory, debug logging, and optional
// ngrok tunneling for easy external access during development. Environment
// variables (optionally from a .env file) provide the defaults.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/urfave/cli/v3"
	"golang.ngrok.com/ngrok"
	ngrokConfig "golang.ngrok.com/ngrok/config"

	"github.com/roverops/marsmission/api"
	"github.com/roverops/marsmission/mission/config"
	"github.com/roverops/marsmission/mission/service"
	"github.com/roverops/marsmission/mission/session"
	"github.com/roverops/marsmission/transport/mcp"
	"github.com/roverops/marsmission/transport/websocket"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Mars Rover Mission Control Server"
)

// envConfig holds settings that come from the environment rather than flags.
type envConfig struct {
	ConfigDir      string        `env:"CONFIG_DIR" envDefault:"configs"`
	SessionsDir    string        `env:"SESSIONS_DIR" envDefault:"sessions"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	NgrokEnabled   bool          `env:"NGROK_ENABLED"`
	NgrokAuthToken string        `env:"NGROK_AUTHTOKEN"`
	NgrokDomain    string        `env:"NGROK_DOMAIN"`
}

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	} else {
		log.Println("Loaded environment variables from .env file")
	}

	var envCfg envConfig
	if err := env.Parse(&envCfg); err != nil {
		log.Fatalf("Failed to parse environment: %v", err)
	}

	cmd := &cli.Command{
		Name:    "marsmission",
		Usage:   AppName,
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "host",
				Value:   "localhost",
				Usage:   "HTTP server host",
				Sources: cli.EnvVars("HOST"),
			},
			&cli.IntFlag{
				Name:    "port",
				Value:   8080,
				Usage:   "HTTP server port",
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:  "config-dir",
				Value: envCfg.ConfigDir,
				Usage: "Directory containing mission configurations",
			},
			&cli.StringFlag{
				Name:  "sessions-dir",
				Value: envCfg.SessionsDir,
				Usage: "Directory for persisted sessions",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "Enable debug logging",
				Sources: cli.EnvVars("DEBUG"),
			},
			&cli.BoolFlag{
				Name:  "ngrok",
				Value: envCfg.NgrokEnabled,
				Usage: "Enable ngrok tunnel",
			},
			&cli.StringFlag{
				Name:  "ngrok-auth",
				Value: envCfg.NgrokAuthToken,
				Usage: "Ngrok auth token (or use NGROK_AUTHTOKEN env var)",
			},
			&cli.StringFlag{
				Name:  "ngrok-domain",
				Value: envCfg.NgrokDomain,
				Usage: "Custom ngrok domain (optional)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Run HTTP server with API, WebSocket, and MCP endpoint (default)",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runServe(cmd, envCfg)
				},
			},
			{
				Name:    "mcp-stdio",
				Aliases: []string{"stdio-mcp", "mcp"},
				Usage:   "Run MCP stdio server with internal HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runMCPStdio(cmd, envCfg)
				},
			},
		},
		DefaultCommand: "serve",
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogging(cmd *cli.Command) {
	if cmd.Bool("debug") {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}
}

func runServe(cmd *cli.Command, envCfg envConfig) error {
	setupLogging(cmd)
	log.Printf("Starting %s v%s (mode: serve)", AppName, Version)

	missionService, sessionManager, persistence, err := initializeServices(cmd.String("config-dir"), cmd.String("sessions-dir"))
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	go sessionCleanupRoutine(sessionManager, envCfg.SessionTTL)
	go filesystemSyncRoutine(sessionManager, persistence)

	runHTTPServer(cmd, missionService)
	return nil
}

// runHTTPServer starts the HTTP server with REST API, WebSocket hub, and an /mcp proxy endpoint.
// If ngrok is enabled (via flag or environment), it also provisions a public tunnel.
func runHTTPServer(cmd *cli.Command, missionService service.MissionService) {
	// Create WebSocket hub
	hub := websocket.NewHub()
	go hub.Run()

	// Create API server
	apiServer := api.NewServer(missionService, hub)

	addr := fmt.Sprintf("%s:%d", cmd.String("host"), cmd.Int("port"))

	// Create MCP client for /mcp endpoint
	baseURL := fmt.Sprintf("http://%s", addr)
	mcpClient := mcp.NewClient(baseURL)

	// Create main router that combines API and MCP
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/", apiServer)

	mainRouter.HandleFunc("/mcp", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		response := mcpClient.GetMCPServer().HandleMessage(r.Context(), body)

		w.Header().Set("Content-Type", "application/json")
		responseData, err := json.Marshal(response)
		if err != nil {
			http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
			return
		}
		w.Write(responseData)
	})

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      mainRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		log.Printf("HTTP server listening on %s", addr)
		log.Printf("REST API: http://%s/api", addr)
		log.Printf("WebSocket: ws://%s/ws?session=<session_id>", addr)
		log.Printf("MCP endpoint: http://%s/mcp", addr)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Start ngrok tunnel if enabled
	if cmd.Bool("ngrok") {
		wg.Add(1)
		go func() {
			defer wg.Done()

			authToken := cmd.String("ngrok-auth")
			if authToken == "" {
				log.Println("WARNING: Ngrok enabled but no auth token provided (use --ngrok-auth or NGROK_AUTHTOKEN env var)")
				return
			}

			log.Println("Starting ngrok tunnel...")

			domain := cmd.String("ngrok-domain")
			var tunnel ngrokConfig.Tunnel
			if domain != "" {
				tunnel = ngrokConfig.HTTPEndpoint(ngrokConfig.WithDomain(domain))
				log.Printf("Using custom ngrok domain: %s", domain)
			} else {
				tunnel = ngrokConfig.HTTPEndpoint()
			}

			tun, err := ngrok.Listen(ctx,
				tunnel,
				ngrok.WithAuthtoken(authToken),
			)
			if err != nil {
				log.Printf("Failed to start ngrok tunnel: %v", err)
				return
			}
			defer func() {
				if err := tun.Close(); err != nil {
					log.Printf("Failed to close ngrok tunnel: %v", err)
				}
			}()

			ngrokURL := tun.URL()
			log.Printf("Ngrok tunnel established: %s", ngrokURL)
			log.Printf("  REST API (ngrok): %s/api", ngrokURL)
			log.Printf("  WebSocket (ngrok): %s/ws?session=<session_id>", ngrokURL)
			log.Printf("  MCP endpoint (ngrok): %s/mcp", ngrokURL)

			if err := http.Serve(tun, mainRouter); err != nil && err != http.ErrServerClosed {
				log.Printf("Ngrok server error: %v", err)
			}
			log.Println("Ngrok tunnel closed")
		}()
	}

	// Wait for shutdown signal
	sig := <-stop
	log.Printf("Received signal: %v. Shutting down...", sig)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	wg.Wait()
	log.Println("Server stopped")
}

// initializeServices wires session/config managers and the mission service.
func initializeServices(configDir, sessionsDir string) (service.MissionService, *session.Manager, session.SessionPersistence, error) {
	configManager, err := config.NewManager(configDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create config manager: %w", err)
	}

	persistence, err := session.NewFilePersistence(sessionsDir, configManager)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create session persistence: %w", err)
	}

	sessionManager := session.NewManagerWithPersistence(persistence)

	if err := sessionManager.LoadPersistedSessions(); err != nil {
		log.Printf("Warning: Failed to load persisted sessions: %v", err)
	}

	missionService := service.NewMissionService(sessionManager, configManager)

	return missionService, sessionManager, persistence, nil
}

// sessionCleanupRoutine periodically removes sessions that have not been accessed
// within the retention window.
func sessionCleanupRoutine(manager *session.Manager, ttl time.Duration) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		removed := manager.CleanupExpiredSessions(ttl)
		if removed > 0 {
			log.Printf("Cleaned up %d expired sessions", removed)
		}
	}
}

// filesystemSyncRoutine periodically syncs in-memory sessions with filesystem state.
// It removes sessions from memory when their corresponding files are deleted.
func filesystemSyncRoutine(manager *session.Manager, persistence session.SessionPersistence) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if persistence == nil {
			continue
		}

		memorySessions := manager.List()

		pruned := 0
		for _, sess := range memorySessions {
			if !persistence.Exists(sess.ID) {
				if err := manager.DeleteFromMemory(sess.ID); err == nil {
					pruned++
					log.Printf("Pruned session %s from memory (file deleted)", sess.ID)
				}
			}
		}

		if pruned > 0 {
			log.Printf("Filesystem sync: pruned %d orphaned sessions from memory", pruned)
		}
	}
}

// runMCPStdio runs an MCP stdio server. It tries to reuse an external API at
// http://localhost:8080; if unavailable, it starts a minimal internal HTTP API
// bound to a random loopback port and targets that.
func runMCPStdio(cmd *cli.Command, envCfg envConfig) error {
	setupLogging(cmd)
	log.Printf("Starting %s v%s (mode: mcp-stdio)", AppName, Version)

	missionService, sessionManager, persistence, err := initializeServices(cmd.String("config-dir"), cmd.String("sessions-dir"))
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	go sessionCleanupRoutine(sessionManager, envCfg.SessionTTL)
	go filesystemSyncRoutine(sessionManager, persistence)

	var baseURL string

	externalURL := fmt.Sprintf("http://%s:%d", cmd.String("host"), cmd.Int("port"))
	log.Printf("Checking for external API server at %s...", externalURL)

	testClient := &http.Client{Timeout: 2 * time.Second}
	resp, err := testClient.Get(externalURL + "/api/health")
	if err == nil && resp.StatusCode < 500 {
		resp.Body.Close()
		log.Printf("External API server found at %s, using it for MCP", externalURL)
		baseURL = externalURL
	} else {
		log.Printf("No external API server found, starting internal HTTP server")

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return fmt.Errorf("failed to get available port: %w", err)
		}

		internalPort := listener.Addr().(*net.TCPAddr).Port
		internalAddr := fmt.Sprintf("127.0.0.1:%d", internalPort)

		log.Printf("Starting internal HTTP server on %s for MCP stdio", internalAddr)

		hub := websocket.NewHub()
		go hub.Run()

		apiServer := api.NewServer(missionService, hub)

		httpServer := &http.Server{
			Handler: apiServer,
		}

		go func() {
			if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
				log.Printf("Internal HTTP server error: %v", err)
			}
		}()

		// Wait a moment for the server to be ready
		time.Sleep(100 * time.Millisecond)

		baseURL = fmt.Sprintf("http://%s", internalAddr)
	}

	mcpClient := mcp.NewClient(baseURL)

	log.Println("MCP stdio server ready")
	if err := server.ServeStdio(mcpClient.GetMCPServer()); err != nil {
		return fmt.Errorf("MCP stdio server error: %w", err)
	}

	return nil
}
