package convert

import (
	"fmt"

	"github.com/oakgame/oak/internal/apperrors"
	"github.com/oakgame/oak/internal/game/card"
	"github.com/oakgame/oak/internal/game/seat"
	"github.com/oakgame/oak/internal/protocol"
)

var (
	handIndex   = indexOf(seat.AllHands())
	playerIndex = indexOf(seat.AllPlayers())
)

// HandToInfo returns the wire ordinal of a seat.
func HandToInfo(h seat.HandIdentifier) int {
	return ordinal(handIndex, h)
}

// InfoToHand parses a seat ordinal.
func InfoToHand(n int) (seat.HandIdentifier, error) {
	hands := seat.AllHands()
	if n < 0 || n >= len(hands) {
		return 0, fmt.Errorf("hand %d: %w", n, apperrors.ErrInvalidSeat)
	}
	return hands[n], nil
}

// PlayerToInfo returns the wire ordinal of a player.
func PlayerToInfo(p seat.PlayerName) int {
	return ordinal(playerIndex, p)
}

// InfoToPlayer parses a player ordinal.
func InfoToPlayer(n int) (seat.PlayerName, error) {
	players := seat.AllPlayers()
	if n < 0 || n >= len(players) {
		return 0, fmt.Errorf("player %d: %w", n, apperrors.ErrInvalidPlayer)
	}
	return players[n], nil
}

// SeatToInfo describes a seat with its controlling player and partner.
func SeatToInfo(h seat.HandIdentifier) protocol.SeatInfo {
	return protocol.SeatInfo{
		Hand:    HandToInfo(h),
		Player:  PlayerToInfo(h.PlayerName()),
		Partner: HandToInfo(h.Partner()),
	}
}

// NewTablePayload lists all four seats in turn order starting from the
// perspective player's primary hand.
func NewTablePayload(perspective seat.PlayerName) protocol.TablePayload {
	seats := make([]protocol.SeatInfo, 0, len(seat.AllHands()))
	h := perspective.PrimaryHand()
	for range seat.AllHands() {
		seats = append(seats, SeatToInfo(h))
		h = h.Next()
	}
	return protocol.TablePayload{
		Perspective: PlayerToInfo(perspective),
		Seats:       seats,
	}
}

// NewHandPayload builds the payload for a seat's cards, sorted canonically.
func NewHandPayload(h seat.HandIdentifier, cards []card.Card) protocol.HandPayload {
	return protocol.HandPayload{
		Hand:  HandToInfo(h),
		Cards: CardsToInfos(card.Sorted(cards)),
	}
}

// PayloadToHand decodes a hand payload back into a seat and its cards.
func PayloadToHand(p protocol.HandPayload) (seat.HandIdentifier, []card.Card, error) {
	h, err := InfoToHand(p.Hand)
	if err != nil {
		return 0, nil, err
	}
	cards, err := InfosToCards(p.Cards)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", h, err)
	}
	return h, cards, nil
}
