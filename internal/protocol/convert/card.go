package convert

import (
	"fmt"

	"github.com/oakgame/oak/internal/apperrors"
	"github.com/oakgame/oak/internal/game/card"
	"github.com/oakgame/oak/internal/protocol"
)

// suitIndex and rankIndex fix the wire ordinals independently of the
// in-memory representation.
var (
	suitIndex = indexOf(card.AllSuits())
	rankIndex = indexOf(card.AllRanks())
)

// CardToInfo converts a card to its wire form. Out-of-range fields encode as
// -1 and are rejected by InfoToCard.
func CardToInfo(c card.Card) protocol.CardInfo {
	return protocol.CardInfo{
		Suit: ordinal(suitIndex, c.Suit),
		Rank: ordinal(rankIndex, c.Rank),
	}
}

// CardsToInfos converts a slice of cards.
func CardsToInfos(cards []card.Card) []protocol.CardInfo {
	infos := make([]protocol.CardInfo, len(cards))
	for i, c := range cards {
		infos[i] = CardToInfo(c)
	}
	return infos
}

// InfoToCard converts a wire card back, rejecting out-of-range ordinals with
// apperrors.ErrInvalidCard.
func InfoToCard(info protocol.CardInfo) (card.Card, error) {
	suits, ranks := card.AllSuits(), card.AllRanks()
	if info.Suit < 0 || info.Suit >= len(suits) || info.Rank < 0 || info.Rank >= len(ranks) {
		return card.Card{}, fmt.Errorf("suit %d rank %d: %w", info.Suit, info.Rank, apperrors.ErrInvalidCard)
	}
	return card.New(suits[info.Suit], ranks[info.Rank]), nil
}

// InfosToCards converts a slice of wire cards, failing on the first invalid
// entry.
func InfosToCards(infos []protocol.CardInfo) ([]card.Card, error) {
	cards := make([]card.Card, len(infos))
	for i, info := range infos {
		c, err := InfoToCard(info)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		cards[i] = c
	}
	return cards, nil
}

func indexOf[T comparable](values []T) map[T]int {
	m := make(map[T]int, len(values))
	for i, v := range values {
		m[v] = i
	}
	return m
}

func ordinal[T comparable](index map[T]int, v T) int {
	if n, ok := index[v]; ok {
		return n
	}
	return -1
}
