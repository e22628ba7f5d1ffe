package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	cellSize     = 48
	headerHeight = 60
	screenWidth  = 800
	screenHeight = 640
	baseURL      = "http://localhost:8080"
)

// Rover colors cycle by registry order
var roverColors = []color.RGBA{
	{255, 100, 100, 255}, // Red
	{100, 100, 255, 255}, // Blue
	{100, 255, 100, 255}, // Green
	{255, 255, 100, 255}, // Yellow
	{255, 100, 255, 255}, // Magenta
	{100, 255, 255, 255}, // Cyan
	{255, 165, 0, 255},   // Orange
	{128, 0, 128, 255},   // Purple
	{255, 192, 203, 255}, // Pink
}

// Position is a plateau cell coordinate
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RoverState mirrors the server's rover snapshot
type RoverState struct {
	ID        string   `json:"id"`
	Position  Position `json:"position"`
	Direction string   `json:"direction"`
}

// MissionState mirrors the server's plateau snapshot
type MissionState struct {
	PlateauWidth  int          `json:"plateau_width"`
	PlateauHeight int          `json:"plateau_height"`
	Rovers        []RoverState `json:"rovers"`
	Message       string       `json:"message"`
	TotalCommands int          `json:"total_commands"`
}

// WSMessage is the WebSocket broadcast wrapper
type WSMessage struct {
	SessionID    string        `json:"session_id"`
	MissionState *MissionState `json:"mission_state,omitempty"`
	Event        string        `json:"event,omitempty"`
}

// Viewer is the desktop mission client
type Viewer struct {
	sessionID  string
	state      *MissionState
	stateMutex sync.RWMutex
	wsConn     *websocket.Conn
	lastUpdate time.Time

	selectedRover int // index into state.Rovers
	statusLine    string
}

// NewViewer creates a viewer bound to one session, creating the session
// when no ID is given.
func NewViewer(sessionID string) *Viewer {
	v := &Viewer{sessionID: sessionID}

	if v.sessionID == "" {
		if err := v.createSession(); err != nil {
			log.Fatalf("Failed to create session: %v", err)
		}
	}

	if err := v.connectWebSocket(); err != nil {
		log.Printf("WebSocket connect failed: %v (falling back to polling)", err)
	} else {
		go v.listenWebSocket()
	}

	if err := v.fetchState(); err != nil {
		log.Printf("Initial state fetch failed: %v", err)
	}

	return v
}

func (v *Viewer) createSession() error {
	resp, err := http.Post(baseURL+"/api/sessions", "application/json", strings.NewReader("{}"))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse session response: %v (body: %s)", err, string(body))
	}

	v.sessionID = result.ID
	log.Printf("Created new session: %s", v.sessionID)
	return nil
}

func (v *Viewer) connectWebSocket() error {
	wsURL := url.URL{Scheme: "ws", Host: "localhost:8080", Path: "/ws"}
	q := wsURL.Query()
	q.Set("session", v.sessionID)
	wsURL.RawQuery = q.Encode()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL.String(), nil)
	if err != nil {
		return err
	}

	v.wsConn = conn
	log.Printf("WebSocket connected for session %s", v.sessionID)
	return nil
}

func (v *Viewer) listenWebSocket() {
	defer func() {
		if v.wsConn != nil {
			v.wsConn.Close()
		}
	}()

	for {
		_, message, err := v.wsConn.ReadMessage()
		if err != nil {
			log.Printf("WebSocket read error: %v", err)
			return
		}

		var wsMsg WSMessage
		if err := json.Unmarshal(message, &wsMsg); err != nil {
			log.Printf("WebSocket JSON parse error: %v", err)
			continue
		}

		if wsMsg.MissionState == nil {
			continue
		}

		v.stateMutex.Lock()
		v.state = wsMsg.MissionState
		v.lastUpdate = time.Now()
		v.stateMutex.Unlock()
	}
}

func (v *Viewer) fetchState() error {
	resp, err := http.Get(fmt.Sprintf("%s/api/sessions/%s/state", baseURL, v.sessionID))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var state MissionState
	if err := json.Unmarshal(body, &state); err != nil {
		return fmt.Errorf("failed to parse JSON: %v (body: %s)", err, string(body))
	}

	v.stateMutex.Lock()
	v.state = &state
	v.lastUpdate = time.Now()
	v.stateMutex.Unlock()

	return nil
}

// deployRover deploys onto the first free cell scanning bottom-left up
func (v *Viewer) deployRover() {
	v.stateMutex.RLock()
	state := v.state
	v.stateMutex.RUnlock()
	if state == nil {
		return
	}

	occupied := make(map[Position]bool)
	for _, rover := range state.Rovers {
		occupied[rover.Position] = true
	}

	for y := 0; y <= state.PlateauHeight; y++ {
		for x := 0; x <= state.PlateauWidth; x++ {
			if occupied[Position{X: x, Y: y}] {
				continue
			}
			payload := fmt.Sprintf(`{"instructions":"%d %d N"}`, x, y)
			resp, err := http.Post(
				fmt.Sprintf("%s/api/sessions/%s/rovers", baseURL, v.sessionID),
				"application/json", strings.NewReader(payload))
			if err != nil {
				v.statusLine = fmt.Sprintf("Deploy failed: %v", err)
				return
			}
			resp.Body.Close()
			v.statusLine = fmt.Sprintf("Deployed at (%d,%d)", x, y)
			v.fetchState()
			return
		}
	}

	v.statusLine = "Plateau is full"
}

// sendCommand sends a single L, R, or M command to the selected rover
func (v *Viewer) sendCommand(command string) {
	v.stateMutex.RLock()
	state := v.state
	idx := v.selectedRover
	v.stateMutex.RUnlock()

	if state == nil || idx >= len(state.Rovers) {
		v.statusLine = "No rover selected (press D to deploy)"
		return
	}
	roverID := state.Rovers[idx].ID

	var endpoint, payload string
	switch command {
	case "M":
		endpoint = fmt.Sprintf("%s/api/sessions/%s/rovers/%s/move", baseURL, v.sessionID, roverID)
		payload = "{}"
	case "L":
		endpoint = fmt.Sprintf("%s/api/sessions/%s/rovers/%s/turn", baseURL, v.sessionID, roverID)
		payload = `{"direction":"left"}`
	case "R":
		endpoint = fmt.Sprintf("%s/api/sessions/%s/rovers/%s/turn", baseURL, v.sessionID, roverID)
		payload = `{"direction":"right"}`
	default:
		return
	}

	resp, err := http.Post(endpoint, "application/json", strings.NewReader(payload))
	if err != nil {
		v.statusLine = fmt.Sprintf("Command failed: %v", err)
		return
	}
	defer resp.Body.Close()

	var result struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err == nil && !result.Success {
		v.statusLine = result.Message
	} else {
		v.statusLine = ""
	}

	v.fetchState()
}

// Update handles input and polling
func (v *Viewer) Update() error {
	// Poll when the WebSocket never connected
	if v.wsConn == nil {
		v.stateMutex.RLock()
		stale := v.state == nil || time.Since(v.lastUpdate) > 500*time.Millisecond
		v.stateMutex.RUnlock()
		if stale {
			if err := v.fetchState(); err != nil {
				log.Printf("Error fetching state: %v", err)
			}
		}
	}

	// Rover switching with number keys (1-9)
	for i := ebiten.Key1; i <= ebiten.Key9; i++ {
		if inpututil.IsKeyJustPressed(i) {
			roverIdx := int(i - ebiten.Key1)
			v.stateMutex.RLock()
			count := 0
			if v.state != nil {
				count = len(v.state.Rovers)
			}
			v.stateMutex.RUnlock()
			if roverIdx < count {
				v.selectedRover = roverIdx
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyD) || inpututil.IsKeyJustPressed(ebiten.KeyN) {
		v.deployRover()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyM) {
		v.sendCommand("M")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyL) {
		v.sendCommand("L")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.sendCommand("R")
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		v.fetchState()
	}

	return nil
}

// Draw renders the plateau and fleet
func (v *Viewer) Draw(screen *ebiten.Image) {
	v.stateMutex.RLock()
	defer v.stateMutex.RUnlock()

	screen.Fill(color.RGBA{30, 20, 15, 255})

	if v.state == nil {
		ebitenutil.DebugPrint(screen, "Loading...")
		return
	}

	// Header: session and selected rover
	header := fmt.Sprintf("Session %s | Plateau %dx%d | Rovers %d | Commands %d",
		v.sessionID, v.state.PlateauWidth, v.state.PlateauHeight,
		len(v.state.Rovers), v.state.TotalCommands)
	ebitenutil.DebugPrintAt(screen, header, 10, 5)

	if v.selectedRover < len(v.state.Rovers) {
		rover := v.state.Rovers[v.selectedRover]
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("Driving rover %s at (%d,%d) facing %s",
				rover.ID, rover.Position.X, rover.Position.Y, rover.Direction),
			10, 20)
	}
	if v.statusLine != "" {
		ebitenutil.DebugPrintAt(screen, v.statusLine, 10, 35)
	}

	// Plateau grid, (0,0) bottom-left
	rows := v.state.PlateauHeight + 1
	cols := v.state.PlateauWidth + 1
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			screenY := (rows-1-y)*cellSize + headerHeight
			ebitenutil.DrawRect(screen,
				float64(x*cellSize), float64(screenY),
				cellSize-1, cellSize-1,
				color.RGBA{160, 82, 45, 255})
		}
	}

	// Rovers
	for idx, rover := range v.state.Rovers {
		roverColor := roverColors[idx%len(roverColors)]

		screenX := float64(rover.Position.X*cellSize) + 4
		screenY := float64((rows-1-rover.Position.Y)*cellSize+headerHeight) + 4
		ebitenutil.DrawRect(screen, screenX, screenY, cellSize-9, cellSize-9, roverColor)

		marker := ""
		if idx == v.selectedRover {
			marker = "*"
		}
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("%s%s %s", marker, rover.ID, rover.Direction),
			int(screenX)+4, int(screenY)+12)
	}

	ebitenutil.DebugPrintAt(screen,
		"1-9: Select Rover | D: Deploy | Up/M: Move | Left/L, Right/R: Turn | F5: Refresh",
		10, screenHeight-20)
}

// Layout returns the screen size
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	sessionID := ""
	if len(os.Args) > 1 {
		sessionID = os.Args[1]
	}

	viewer := NewViewer(sessionID)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Mars Rover Mission Control - Desktop Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}
