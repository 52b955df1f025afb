// Package view renders cards, hands and the seating plan as terminal text.
package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/oakgame/oak/internal/game/card"
	"github.com/oakgame/oak/internal/ui/common"
)

// Renderer draws views for one output. It is safe to reuse but not to mutate
// concurrently.
type Renderer struct {
	lg     *lipgloss.Renderer
	styles common.Styles
}

// NewRenderer creates a renderer for w. With color false every view is
// plain text.
func NewRenderer(w io.Writer, color bool) *Renderer {
	lg := lipgloss.NewRenderer(w)
	if !color {
		lg.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{lg: lg, styles: common.NewStyles(lg)}
}

// Card renders a single card as rank followed by suit.
func (r *Renderer) Card(c card.Card) string {
	style := r.styles.Black
	if c.Suit.Color() == card.Red {
		style = r.styles.Red
	}
	return style.Render(c.String())
}

// Hand renders cards in canonical order, one line per suit present.
func (r *Renderer) Hand(title string, cards []card.Card) string {
	header := r.styles.Title.Render(fmt.Sprintf("%s (%d)", title, len(cards)))
	if len(cards) == 0 {
		return r.styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left, header, r.styles.Muted.Render("(empty)")))
	}

	lines := []string{header}
	for _, group := range groupBySuit(card.Sorted(cards)) {
		rendered := make([]string, len(group))
		for i, c := range group {
			rendered[i] = r.Card(c)
		}
		lines = append(lines, strings.Join(rendered, " "))
	}
	return r.styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Deck renders all 52 cards.
func (r *Renderer) Deck() string {
	return r.Hand("Deck", card.AllCards())
}

// groupBySuit splits sorted cards into runs of the same suit.
func groupBySuit(sorted []card.Card) [][]card.Card {
	var groups [][]card.Card
	for i, c := range sorted {
		if i == 0 || c.Suit != sorted[i-1].Suit {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], c)
	}
	return groups
}
