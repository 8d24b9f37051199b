// Package display holds terminal styling and the user-facing message strings
// for passgen's commands.
package display

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nchaloult/passgen/pkg/strength"
)

// Styles renders passgen's output.
type Styles struct {
	Label lipgloss.Style
	Value lipgloss.Style
	Error lipgloss.Style
	tiers map[strength.Tier]lipgloss.Style
}

// NewStyles returns colored styles, or plain ones when color is false.
// lipgloss also drops colors on its own when stdout isn't a terminal.
func NewStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{Label: plain, Value: plain, Error: plain}
	}

	return Styles{
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Value: lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Bold(true),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		tiers: map[strength.Tier]lipgloss.Style{
			strength.VeryWeak:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
			strength.Weak:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
			strength.Normal:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
			strength.Strong:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			strength.VeryStrong: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		},
	}
}

// Tier renders t with its tier color.
func (s Styles) Tier(t strength.Tier) string {
	if style, ok := s.tiers[t]; ok {
		return style.Render(t.String())
	}
	return t.String()
}
