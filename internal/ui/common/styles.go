// Package common provides shared styles and utilities for the UI.
package common

import (
	"github.com/charmbracelet/lipgloss"
)

// Seat markers
const (
	PrimaryIcon = "★"
	PartnerIcon = "☆"
)

// Styles are the lipgloss styles shared by every view. They are bound to one
// lipgloss.Renderer so the color profile follows that renderer.
type Styles struct {
	Red    lipgloss.Style
	Black  lipgloss.Style
	Title  lipgloss.Style
	Box    lipgloss.Style
	Seat   lipgloss.Style
	Active lipgloss.Style
	Muted  lipgloss.Style
}

// NewStyles builds the style set on r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Red:    r.NewStyle().Foreground(lipgloss.Color("#CD0000")).Bold(true),
		Black:  r.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#FFFFFF")).Bold(true),
		Title:  r.NewStyle().Foreground(lipgloss.Color("228")).Bold(true),
		Box:    r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Seat:   r.NewStyle().Border(lipgloss.RoundedBorder()).Width(12).Align(lipgloss.Center),
		Active: r.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		Muted:  r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
