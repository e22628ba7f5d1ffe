package mars

import "math"

// Canonical headings in radians. East is the zero angle and headings grow
// counter-clockwise, so north is +π/2 and south is -π/2.
const (
	East  = 0.0
	North = math.Pi / 2
	West  = math.Pi
	South = -math.Pi / 2
)

// HeadingForLetter converts a cardinal direction letter (N, E, S, W) to its
// radian heading. The letter must already be uppercase.
func HeadingForLetter(letter string) (float64, bool) {
	switch letter {
	case "N":
		return North, true
	case "S":
		return South, true
	case "E":
		return East, true
	case "W":
		return West, true
	default:
		return 0, false
	}
}

// LetterForHeading converts a canonical radian heading back to its cardinal
// direction letter. Non-canonical headings return an empty string.
func LetterForHeading(heading float64) string {
	switch heading {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	default:
		return ""
	}
}

// rotateLeft returns the heading rotated +π/2, wrapped within the four
// canonical values. Rotation goes through this table rather than float
// addition so the canonical values never accumulate drift.
func rotateLeft(heading float64) float64 {
	switch heading {
	case East:
		return North
	case North:
		return West
	case West:
		return South
	default:
		return East
	}
}

// rotateRight returns the heading rotated -π/2, wrapped within the four
// canonical values.
func rotateRight(heading float64) float64 {
	switch heading {
	case East:
		return South
	case South:
		return West
	case West:
		return North
	default:
		return East
	}
}

// headingStep returns the cardinal unit step for a canonical heading.
func headingStep(heading float64) (dx, dy int) {
	switch heading {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case West:
		return -1, 0
	default:
		return 1, 0
	}
}
