package mars

// Rover is a single vehicle deployed on a plateau. It tracks its own pose
// and consults its owning plateau for legality before committing a move.
// Rovers are created only by a successful Plateau.Deploy and hold a
// non-owning back-reference to their plateau.
type Rover struct {
	id      string
	x, y    int
	heading float64

	plateau *Plateau
}

// ID returns the rover's immutable identifier.
func (r *Rover) ID() string {
	return r.id
}

// Location returns the rover's current grid cell.
func (r *Rover) Location() (x, y int) {
	r.plateau.mu.RLock()
	defer r.plateau.mu.RUnlock()
	return r.x, r.y
}

// Heading returns the rover's current heading in radians, one of the four
// canonical values East, North, West, South.
func (r *Rover) Heading() float64 {
	r.plateau.mu.RLock()
	defer r.plateau.mu.RUnlock()
	return r.heading
}

// Direction returns the rover's heading as its cardinal letter.
func (r *Rover) Direction() string {
	return LetterForHeading(r.Heading())
}

// MoveForward advances the rover one cell along its current heading. The
// target cell is validated against the owning plateau's bounds and
// occupancy before the move commits; on failure the rover's position is
// unchanged and ErrOutOfPlateau or ErrCollision is returned.
func (r *Rover) MoveForward() error {
	dx, dy := headingStep(r.Heading())
	return r.plateau.moveRover(r, dx, dy)
}

// TurnLeft rotates the rover's heading by +π/2. Turning never consults the
// plateau and always succeeds.
func (r *Rover) TurnLeft() {
	r.plateau.turnRover(r, rotateLeft)
}

// TurnRight rotates the rover's heading by -π/2.
func (r *Rover) TurnRight() {
	r.plateau.turnRover(r, rotateRight)
}
