package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	// Chrome
	Brand        lipgloss.Style
	NavLink      lipgloss.Style
	NavActive    lipgloss.Style
	Footer       lipgloss.Style
	PageTitle    lipgloss.Style
	PageSubtitle lipgloss.Style

	// Text
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	// Containers
	Card        lipgloss.Style
	CardFocused lipgloss.Style
	Input       lipgloss.Style
	InputActive lipgloss.Style

	// Tabs
	Tab       lipgloss.Style
	TabActive lipgloss.Style

	// Hints
	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style

	// Toast
	Toast lipgloss.Style

	// RSVP badges
	BadgeAttending lipgloss.Style
	BadgePending   lipgloss.Style
	BadgeDeclined  lipgloss.Style
}

// buildStyles constructs the pre-built styles from theme colors.
func (t *Theme) buildStyles() *Styles {
	badge := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color(t.BgBase))
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.BorderDefault)).
		Padding(0, 1)
	input := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.BorderDefault)).
		Padding(0, 1)

	return &Styles{
		Brand: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),
		NavLink: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)).
			Padding(0, 1),
		NavActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BgBase)).
			Background(lipgloss.Color(t.Primary)).
			Bold(true).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),
		PageTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgBright)).
			Bold(true),
		PageSubtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),

		Text:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
		Bold:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBright)).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error)).Bold(true),

		Card:        card,
		CardFocused: card.BorderForeground(lipgloss.Color(t.BorderFocused)),
		Input:       input,
		InputActive: input.BorderForeground(lipgloss.Color(t.Primary)),

		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)).
			Padding(0, 2),
		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgBright)).
			Background(lipgloss.Color(t.BgSurface0)).
			Bold(true).
			Padding(0, 2),

		HintKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgSubtle)).
			Bold(true),
		HintDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),
		HintSeparator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BgSurface2)),

		Toast: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BgBase)).
			Background(lipgloss.Color(t.Success)).
			Padding(0, 1).
			Bold(true),

		BadgeAttending: badge.Background(lipgloss.Color(t.Success)),
		BadgePending:   badge.Background(lipgloss.Color(t.Warning)),
		BadgeDeclined:  badge.Background(lipgloss.Color(t.Error)),
	}
}
