package seat

import "fmt"

// PlayerName identifies one of the two players in a round.
type PlayerName uint8

const (
	User PlayerName = iota
	Opponent
)

// AllPlayers returns both players, User first.
func AllPlayers() []PlayerName {
	return []PlayerName{User, Opponent}
}

// Valid reports whether p is User or Opponent.
func (p PlayerName) Valid() bool {
	switch p {
	case User, Opponent:
		return true
	}
	return false
}

// PrimaryHand returns the hand this player can see at the start of the
// auction. It is also the hand that leads the first trick when this player is
// declarer.
func (p PlayerName) PrimaryHand() HandIdentifier {
	switch p {
	case User:
		return South
	case Opponent:
		return West
	}
	panic(fmt.Sprintf("seat: invalid player %d", uint8(p)))
}

// Hands returns the two seats p controls, primary hand first.
func (p PlayerName) Hands() []HandIdentifier {
	primary := p.PrimaryHand()
	return []HandIdentifier{primary, primary.Partner()}
}

func (p PlayerName) String() string {
	switch p {
	case User:
		return "User"
	case Opponent:
		return "Opponent"
	}
	return "?"
}
