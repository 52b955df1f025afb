package protocol

// CardInfo is the wire form of a card. Suit and Rank carry the ordinal of
// the variant: Suit 0..3 is Clubs..Spades, Rank 0..12 is Two..Ace.
type CardInfo struct {
	Suit int `json:"suit"`
	Rank int `json:"rank"`
}

// SeatInfo describes one seat at the table.
type SeatInfo struct {
	Hand    int `json:"hand"`    // 0..3, North..West
	Player  int `json:"player"`  // 0 User, 1 Opponent
	Partner int `json:"partner"` // seat across the table
}

// HandPayload carries the cards held by one seat, in canonical order.
type HandPayload struct {
	Hand  int        `json:"hand"`
	Cards []CardInfo `json:"cards"`
}

// TablePayload describes the seating as seen from one player.
type TablePayload struct {
	Perspective int        `json:"perspective"`
	Seats       []SeatInfo `json:"seats"` // turn order, starting at the perspective's primary hand
}
