// Package seat models the four table positions and the two players who
// control them. North/South belong to the human player and East/West to the
// AI opponent; play rotates clockwise North, East, South, West.
package seat

import (
	"cmp"
	"fmt"
)

// HandIdentifier names one of the four hands at the table.
type HandIdentifier uint8

const (
	// North is the dummy partner of the human player.
	North HandIdentifier = iota
	// East is the dummy partner of the AI player.
	East
	// South is always the human player.
	South
	// West is always the AI player.
	West
)

// AllHands returns the four seats in turn order starting from North.
func AllHands() []HandIdentifier {
	return []HandIdentifier{North, East, South, West}
}

// Valid reports whether h is one of the four seats.
func (h HandIdentifier) Valid() bool {
	switch h {
	case North, East, South, West:
		return true
	}
	return false
}

// Next returns the seat that plays after h.
func (h HandIdentifier) Next() HandIdentifier {
	switch h {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	}
	panic(invalidHand(h))
}

// Partner returns the seat across the table from h.
func (h HandIdentifier) Partner() HandIdentifier {
	switch h {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	}
	panic(invalidHand(h))
}

// PlayerName returns the player who controls h.
func (h HandIdentifier) PlayerName() PlayerName {
	switch h {
	case South, North:
		return User
	case East, West:
		return Opponent
	}
	panic(invalidHand(h))
}

func (h HandIdentifier) position() int {
	switch h {
	case North:
		return 0
	case East:
		return 1
	case South:
		return 2
	case West:
		return 3
	}
	panic(invalidHand(h))
}

// Compare orders seats North < East < South < West. The order exists for
// stable iteration and sorting; turn order is Next.
func (h HandIdentifier) Compare(other HandIdentifier) int {
	return cmp.Compare(h.position(), other.position())
}

func (h HandIdentifier) String() string {
	switch h {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return "?"
}

func invalidHand(h HandIdentifier) string {
	return fmt.Sprintf("seat: invalid hand %d", uint8(h))
}
