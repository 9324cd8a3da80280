package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

const (
	restrictedTitle  = "Restricted Access"
	restrictedBody   = "This demo represents a live business intelligence environment. Client-specific data is masked for privacy."
	restrictedClient = "Client: CONFIDENTIAL_LLC"
	restrictedLevel  = "Data Clearance: LEVEL_3_REQUIRED"
	restrictedButton = "Return to Dashboard"
	restrictedCloser = "✕"
	restrictedWidth  = 56
)

// restrictedModal is shown whenever a navigation item or service card is
// opened. It swallows every key except the close bindings.
type restrictedModal struct {
	trigger string // label of the control that opened it
}

func (r restrictedModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, keys.Close) {
		return r, nil, true
	}
	return r, nil, false
}

func (r restrictedModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	inner := restrictedWidth - 6 // border + padding

	title := styles.Text.Bold(true).Render("🔒 " + restrictedTitle)
	closer := styles.MutedText.Render(restrictedCloser)
	gap := max(inner-lipgloss.Width(title)-lipgloss.Width(closer), 1)
	head := title + strings.Repeat(" ", gap) + closer

	body := styles.MutedText.Width(inner).Render(restrictedBody)

	details := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(theme.Accent)).
		PaddingLeft(1).
		Render(styles.AccentText.Render(restrictedClient) + "\n" + styles.WarningText.Render(restrictedLevel))

	button := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Text)).
		Background(lipgloss.Color(theme.Accent)).
		Bold(true).
		Width(inner).
		Align(lipgloss.Center).
		Render(restrictedButton)

	requested := styles.FaintText.Render("Requested: " + truncate(r.trigger, inner-len("Requested: ")))
	hint := styles.FaintText.Render("esc/enter/x close")

	content := strings.Join([]string{head, requested, "", body, "", details, "", button, hint}, "\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.BorderFocus)).
		Padding(1, 2).
		Width(restrictedWidth - 2).
		Render(content)

	return overlay(theme, width, height, box)
}
