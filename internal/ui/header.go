package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the brand on the left and cluster status on the right.
// The region label is dropped when the line gets too tight.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	left := bg.Render("◆ SENTINEL", styles.Logo) + bg.Spaces(1) +
		bg.Render("Enterprise Core", styles.MutedText)

	rightParts := []string{
		bg.Render("Global Cluster (EU/US/asia)", styles.MutedText),
		bg.Render("● 99.99% Uptime", styles.SuccessText),
		styles.Badge.Render("ENTERPRISE PLAN"),
	}
	right := bg.Join(rightParts, 2)
	if lipgloss.Width(left)+lipgloss.Width(right)+2 > m.width-2 {
		right = bg.Join(rightParts[1:], 2)
	}

	gap := max(m.width-2-lipgloss.Width(left)-lipgloss.Width(right), 1)
	line := bg.Spaces(1) + left + bg.Spaces(gap) + right
	return bg.FillLine(line, m.width)
}

// renderFooter renders the short key help and the event counter.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	status := bg.Render(fmt.Sprintf("%d events", m.snapshot.Fired), styles.FaintText) + bg.Spaces(2) +
		bg.Render("T", styles.AccentText) + bg.Render(":"+m.theme.Name, styles.FaintText)

	h := m.help
	h.Width = max(m.width-lipgloss.Width(status)-4, 0)
	shortHelp := h.View(m.keys)

	gap := max(m.width-2-lipgloss.Width(shortHelp)-lipgloss.Width(status), 1)
	return bg.FillLine(bg.Spaces(1)+shortHelp+bg.Spaces(gap)+status, m.width)
}
