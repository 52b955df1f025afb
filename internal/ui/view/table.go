package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oakgame/oak/internal/game/seat"
	"github.com/oakgame/oak/internal/ui/common"
)

const seatLabelWidth = 10

// Table renders the four seats as a compass seen from perspective: its
// primary hand at the bottom, the partner across the table, and the other
// two seats placed clockwise.
func (r *Renderer) Table(perspective seat.PlayerName) string {
	bottom := perspective.PrimaryHand()
	left := bottom.Next()
	top := left.Next()
	right := top.Next()

	middle := lipgloss.JoinHorizontal(lipgloss.Center,
		r.seatBox(left, perspective),
		strings.Repeat(" ", 8),
		r.seatBox(right, perspective),
	)

	return lipgloss.JoinVertical(lipgloss.Center,
		r.seatBox(top, perspective),
		middle,
		r.seatBox(bottom, perspective),
	)
}

func (r *Renderer) seatBox(h seat.HandIdentifier, perspective seat.PlayerName) string {
	player := h.PlayerName()
	label := common.TruncateName(player.String(), seatLabelWidth)

	name := h.String()
	switch h {
	case player.PrimaryHand():
		name += " " + common.PrimaryIcon
	case player.PrimaryHand().Partner():
		name += " " + common.PartnerIcon
	}

	if player == perspective {
		label = r.styles.Active.Render(label)
	} else {
		label = r.styles.Muted.Render(label)
	}
	return r.styles.Seat.Render(lipgloss.JoinVertical(lipgloss.Center, name, label))
}
