package main

import "strings"

// Position is a plateau cell.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Heading indices used by the planner. Left turns increment, right turns
// decrement, modulo 4.
const (
	headEast = iota
	headNorth
	headWest
	headSouth
)

var headingLetters = map[string]int{
	"E": headEast,
	"N": headNorth,
	"W": headWest,
	"S": headSouth,
}

var headingSteps = [4]Position{
	headEast:  {X: 1, Y: 0},
	headNorth: {X: 0, Y: 1},
	headWest:  {X: -1, Y: 0},
	headSouth: {X: 0, Y: -1},
}

// RoutePlanner finds shortest cell paths across a plateau snapshot and
// converts them into L/R/M command strings.
type RoutePlanner struct {
	width    int // inclusive upper bound
	height   int
	occupied map[Position]string // cell -> rover ID
}

func NewRoutePlanner(width, height int) *RoutePlanner {
	return &RoutePlanner{
		width:    width,
		height:   height,
		occupied: make(map[Position]string),
	}
}

// Occupy marks a cell as blocked by a rover.
func (p *RoutePlanner) Occupy(pos Position, roverID string) {
	p.occupied[pos] = roverID
}

// Clear unmarks a cell, for planning a rover's own route from its current
// position.
func (p *RoutePlanner) Clear(pos Position) {
	delete(p.occupied, pos)
}

func (p *RoutePlanner) inRange(pos Position) bool {
	return pos.X >= 0 && pos.X <= p.width && pos.Y >= 0 && pos.Y <= p.height
}

func (p *RoutePlanner) passable(pos Position) bool {
	if !p.inRange(pos) {
		return false
	}
	_, blocked := p.occupied[pos]
	return !blocked
}

// FindPath runs BFS from start to goal over the 4-neighborhood, avoiding
// occupied cells. The returned path includes both endpoints. Returns nil
// when the goal is unreachable.
func (p *RoutePlanner) FindPath(start, goal Position) []Position {
	if !p.inRange(start) || !p.passable(goal) {
		return nil
	}
	if start == goal {
		return []Position{start}
	}

	parent := map[Position]Position{start: start}
	queue := []Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, step := range headingSteps {
			next := Position{X: current.X + step.X, Y: current.Y + step.Y}
			if _, seen := parent[next]; seen {
				continue
			}
			if !p.passable(next) {
				continue
			}
			parent[next] = current
			if next == goal {
				return reconstruct(parent, start, goal)
			}
			queue = append(queue, next)
		}
	}

	return nil
}

func reconstruct(parent map[Position]Position, start, goal Position) []Position {
	path := []Position{goal}
	for current := goal; current != start; {
		current = parent[current]
		path = append(path, current)
	}
	// Reverse into start-to-goal order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// CommandsForPath converts a cell path into an L/R/M command string, given
// the rover's starting heading letter. Each leg turns the rover toward the
// next cell with the fewest 90-degree turns, then moves once.
func CommandsForPath(path []Position, startHeading string) string {
	heading, ok := headingLetters[strings.ToUpper(startHeading)]
	if !ok || len(path) < 2 {
		return ""
	}

	var b strings.Builder
	for i := 1; i < len(path); i++ {
		step := Position{X: path[i].X - path[i-1].X, Y: path[i].Y - path[i-1].Y}
		target := headingForStep(step)
		if target < 0 {
			return ""
		}

		switch (target - heading + 4) % 4 {
		case 1:
			b.WriteString("L")
		case 2:
			b.WriteString("LL")
		case 3:
			b.WriteString("R")
		}
		heading = target
		b.WriteString("M")
	}

	return b.String()
}

func headingForStep(step Position) int {
	for idx, s := range headingSteps {
		if s == step {
			return idx
		}
	}
	return -1
}

// PlanCommands is the one-call entry: BFS to the goal, then emit commands.
// The second return reports whether a route exists.
func (p *RoutePlanner) PlanCommands(start Position, startHeading string, goal Position) (string, bool) {
	path := p.FindPath(start, goal)
	if path == nil {
		return "", false
	}
	return CommandsForPath(path, startHeading), true
}
