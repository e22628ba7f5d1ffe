package mars

import (
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Surface is the capability a rover needs from the terrain it is deployed
// on. Plateau is the only implementation today; alternative grid shapes can
// implement Surface and be selected by configuration.
type Surface interface {
	Deploy(instructions string, opts ...DeployOption) (*Rover, error)
	IsInRange(x, y int) bool
	IsPositionAvailable(x, y int) bool
}

// Plateau is a rectangular grid anchored at (0,0) with an inclusive
// upper-right corner at (width, height). It owns the registry of deployed
// rovers and is the sole authority for whether a location is legal.
type Plateau struct {
	width  int
	height int

	// mu spans every check-then-mutate sequence so concurrent deploys and
	// moves cannot race an occupancy check against a registration.
	mu     sync.RWMutex
	rovers map[string]*Rover
}

var _ Surface = (*Plateau)(nil)

// NewPlateau creates a plateau with the given inclusive upper-right corner.
// Bounds are expected to be non-negative; negative bounds are a caller
// error and are not checked defensively.
func NewPlateau(width, height int) *Plateau {
	return &Plateau{
		width:  width,
		height: height,
		rovers: make(map[string]*Rover),
	}
}

// ParseBounds constructs a plateau from a string of two whitespace-separated
// integers, e.g. "5 5". Malformed input is logged with the offending value
// and returned as a *ParseError.
func ParseBounds(input string) (*Plateau, error) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		log.Printf("The plateau initialization command is incorrect: %q", input)
		return nil, &ParseError{Input: input, Reason: "expected two integers \"W H\""}
	}

	width, err := strconv.Atoi(fields[0])
	if err != nil {
		log.Printf("The plateau initialization command is incorrect: %q", input)
		return nil, &ParseError{Input: input, Reason: "width is not an integer"}
	}

	height, err := strconv.Atoi(fields[1])
	if err != nil {
		log.Printf("The plateau initialization command is incorrect: %q", input)
		return nil, &ParseError{Input: input, Reason: "height is not an integer"}
	}

	return NewPlateau(width, height), nil
}

// DeployOption customizes a single deployment.
type DeployOption func(*deployOptions)

type deployOptions struct {
	roverID string
}

// WithRoverID supplies an explicit rover ID instead of the auto-generated
// one. Deploy rejects IDs that are already registered.
func WithRoverID(id string) DeployOption {
	return func(o *deployOptions) {
		o.roverID = id
	}
}

// Deploy places a new rover on the plateau from an instruction string
// "X Y D" (case-insensitive), where X and Y are integer coordinates and D
// is a cardinal direction letter.
//
// Validation happens fully before mutation: a failed deploy leaves the
// registry unchanged. It returns *ParseError for malformed instructions,
// ErrOutOfPlateau when the target is outside the bounds, ErrCollision when
// the target cell is occupied, and ErrDuplicateRoverID when a supplied ID
// is already registered.
func (p *Plateau) Deploy(instructions string, opts ...DeployOption) (*Rover, error) {
	var options deployOptions
	for _, opt := range opts {
		opt(&options)
	}

	x, y, heading, err := parseDeployment(instructions)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.inRange(x, y) {
		return nil, ErrOutOfPlateau
	}
	if !p.positionAvailable(x, y) {
		return nil, ErrCollision
	}

	roverID := options.roverID
	if roverID == "" {
		roverID = p.nextRoverID()
	} else if _, exists := p.rovers[roverID]; exists {
		return nil, ErrDuplicateRoverID
	}

	rover := &Rover{
		id:      roverID,
		x:       x,
		y:       y,
		heading: heading,
		plateau: p,
	}
	p.rovers[roverID] = rover

	return rover, nil
}

// parseDeployment tokenizes and uppercases an "X Y D" instruction string.
func parseDeployment(instructions string) (x, y int, heading float64, err error) {
	fields := strings.Fields(strings.ToUpper(instructions))
	if len(fields) != 3 {
		return 0, 0, 0, &ParseError{Input: instructions, Reason: "expected \"X Y D\""}
	}

	x, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, 0, &ParseError{Input: instructions, Reason: "x coordinate is not an integer"}
	}

	y, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, &ParseError{Input: instructions, Reason: "y coordinate is not an integer"}
	}

	heading, ok := HeadingForLetter(fields[2])
	if !ok {
		return 0, 0, 0, &ParseError{Input: instructions, Reason: "direction must be one of N, E, S, W"}
	}

	return x, y, heading, nil
}

// nextRoverID generates the ID for an auto-assigned deployment: the decimal
// string of the current registry size plus one. When callers mix in their
// own numeric IDs that slot can already be taken, so the counter advances
// until a free ID is found. Callers must hold p.mu.
func (p *Plateau) nextRoverID() string {
	n := len(p.rovers) + 1
	id := strconv.Itoa(n)
	for _, taken := p.rovers[id]; taken; _, taken = p.rovers[id] {
		n++
		id = strconv.Itoa(n)
	}
	return id
}

// IsInRange reports whether (x, y) lies within the plateau bounds.
func (p *Plateau) IsInRange(x, y int) bool {
	return p.inRange(x, y)
}

// IsPositionAvailable reports whether no registered rover currently occupies
// (x, y). The scan is O(number of rovers); fleets are expected to be small.
func (p *Plateau) IsPositionAvailable(x, y int) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.positionAvailable(x, y)
}

// inRange checks bounds. Bounds are immutable so no lock is needed.
func (p *Plateau) inRange(x, y int) bool {
	return 0 <= x && x <= p.width && 0 <= y && y <= p.height
}

// positionAvailable scans the registry without locking; callers must hold
// p.mu (read or write).
func (p *Plateau) positionAvailable(x, y int) bool {
	for _, rover := range p.rovers {
		if rover.x == x && rover.y == y {
			return false
		}
	}
	return true
}

// moveRover relocates a rover by the given cardinal step, holding the lock
// across the check and the mutation. The rover's position is unchanged on
// failure.
func (p *Plateau) moveRover(r *Rover, dx, dy int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	x, y := r.x+dx, r.y+dy
	if !p.inRange(x, y) {
		return ErrOutOfPlateau
	}
	if !p.positionAvailable(x, y) {
		return ErrCollision
	}

	r.x, r.y = x, y
	return nil
}

// turnRover rotates a rover's heading under the plateau lock so concurrent
// readers never observe a torn pose.
func (p *Plateau) turnRover(r *Rover, rotate func(float64) float64) {
	p.mu.Lock()
	r.heading = rotate(r.heading)
	p.mu.Unlock()
}

// Size returns the plateau's inclusive upper-right corner.
func (p *Plateau) Size() (width, height int) {
	return p.width, p.height
}

// Rover looks up a deployed rover by ID.
func (p *Plateau) Rover(id string) (*Rover, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	rover, ok := p.rovers[id]
	return rover, ok
}

// Rovers returns all deployed rovers sorted by ID for stable iteration.
func (p *Plateau) Rovers() []*Rover {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make([]*Rover, 0, len(p.rovers))
	for _, rover := range p.rovers {
		result = append(result, rover)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].id < result[j].id
	})

	return result
}

// Count returns the number of deployed rovers.
func (p *Plateau) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.rovers)
}
