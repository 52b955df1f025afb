package card

import (
	"cmp"
	"fmt"
)

// Rank is a card's face value. Aces are high.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// AllRanks returns every rank from Two to Ace.
func AllRanks() []Rank {
	return []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

// Valid reports whether r is one of the declared ranks.
func (r Rank) Valid() bool {
	switch r {
	case Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace:
		return true
	}
	return false
}

func (r Rank) position() int {
	switch r {
	case Two:
		return 0
	case Three:
		return 1
	case Four:
		return 2
	case Five:
		return 3
	case Six:
		return 4
	case Seven:
		return 5
	case Eight:
		return 6
	case Nine:
		return 7
	case Ten:
		return 8
	case Jack:
		return 9
	case Queen:
		return 10
	case King:
		return 11
	case Ace:
		return 12
	}
	panic(fmt.Sprintf("card: invalid rank %d", uint8(r)))
}

// Compare orders ranks with Two lowest and Ace highest.
func (r Rank) Compare(other Rank) int {
	return cmp.Compare(r.position(), other.position())
}

// rankNames maps each rank to its face label.
var rankNames = map[Rank]string{
	Two:   "2",
	Three: "3",
	Four:  "4",
	Five:  "5",
	Six:   "6",
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "10",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return "?"
}
