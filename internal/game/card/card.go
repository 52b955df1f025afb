// Package card defines the standard 52-card deck vocabulary: suits, ranks and
// the cards built from them.
package card

import "slices"

// Card is one of the 52 standard playing cards. Cards order by Suit first and
// then by Rank, so every club sorts before every diamond.
type Card struct {
	Suit Suit
	Rank Rank
}

// New pairs a suit and a rank.
func New(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// Valid reports whether both the suit and the rank are declared variants.
func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Rank.Valid()
}

// Compare orders cards suit-first, rank-second.
func (c Card) Compare(other Card) int {
	if n := c.Suit.Compare(other.Suit); n != 0 {
		return n
	}
	return c.Rank.Compare(other.Rank)
}

// Less reports whether c sorts before other.
func (c Card) Less(other Card) bool {
	return c.Compare(other) < 0
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// AllCards returns the 52 distinct cards in canonical order.
func AllCards() []Card {
	suits, ranks := AllSuits(), AllRanks()
	cards := make([]Card, 0, len(suits)*len(ranks))
	for _, s := range suits {
		for _, r := range ranks {
			cards = append(cards, New(s, r))
		}
	}
	return cards
}

// Sort sorts cards in place in canonical order.
func Sort(cards []Card) {
	slices.SortStableFunc(cards, Card.Compare)
}

// Sorted returns a sorted copy of cards, leaving the input untouched.
func Sorted(cards []Card) []Card {
	out := slices.Clone(cards)
	Sort(out)
	return out
}
