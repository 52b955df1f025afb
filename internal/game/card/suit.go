package card

import (
	"cmp"
	"fmt"
)

// Suit is one of the four French suits. Suits order Clubs < Diamonds < Hearts < Spades.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Color is the printed color of a suit.
type Color uint8

const (
	Black Color = iota
	Red
)

// AllSuits returns every suit in ascending order.
func AllSuits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// Valid reports whether s is one of the declared suits.
func (s Suit) Valid() bool {
	switch s {
	case Clubs, Diamonds, Hearts, Spades:
		return true
	}
	return false
}

// position is the suit's place in the fixed suit order.
func (s Suit) position() int {
	switch s {
	case Clubs:
		return 0
	case Diamonds:
		return 1
	case Hearts:
		return 2
	case Spades:
		return 3
	}
	panic(fmt.Sprintf("card: invalid suit %d", uint8(s)))
}

// Compare returns -1, 0 or +1 depending on whether s sorts before, equal to,
// or after other.
func (s Suit) Compare(other Suit) int {
	return cmp.Compare(s.position(), other.position())
}

// Color returns Red for Diamonds and Hearts, Black otherwise.
func (s Suit) Color() Color {
	switch s {
	case Diamonds, Hearts:
		return Red
	case Clubs, Spades:
		return Black
	}
	panic(fmt.Sprintf("card: invalid suit %d", uint8(s)))
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	}
	return "?"
}
