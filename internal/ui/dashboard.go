package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/sentinelhq/sentinel/internal/feed"
	"github.com/sentinelhq/sentinel/internal/mockdata"
	"github.com/sentinelhq/sentinel/internal/viewstate"
)

const (
	sidebarWidth = 30
	minWidth     = 80
	minHeight    = 24
)

// renderMain renders header, sidebar, widget grid and footer.
func (m Model) renderMain() string {
	bodyHeight := m.height - 2
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderSidebar(sidebarWidth, bodyHeight),
		m.renderGrid(m.width-sidebarWidth, bodyHeight),
	)
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderFooter())
}

// renderResizeHint is shown instead of the dashboard on small terminals.
func (m Model) renderResizeHint() string {
	styles := m.theme.Styles()
	msg := styles.WarningText.Render("Terminal too small") + "\n" +
		styles.MutedText.Render(fmt.Sprintf("%dx%d, need at least %dx%d", m.width, m.height, minWidth, minHeight))
	return overlay(m.theme, m.width, m.height, lipgloss.NewStyle().Align(lipgloss.Center).Render(msg))
}

func (m Model) renderSidebar(width, height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	focused := m.focus == paneSidebar
	if focused {
		styles = m.theme.Styles().WithBackground(m.theme.FocusBg)
	}
	active := m.view.State().ActiveTab

	var lines []string
	for i, tab := range viewstate.Tabs() {
		cursor := " "
		if focused && i == m.navCursor {
			cursor = styles.AccentText.Render("›")
		}
		label := styles.Text.Render(tab.Label)
		if tab.ID == active {
			label = styles.AccentText.Bold(true).Render(tab.Label)
		}
		line := cursor + " " + styles.FaintText.Render(fmt.Sprint(i+1)) + " " + label
		if tab.Locked {
			line += " " + styles.FaintText.Render("⊘")
		}
		lines = append(lines, line)
	}

	innerHeight := height - 2
	for len(lines) < innerHeight-2 {
		lines = append(lines, "")
	}
	lines = append(lines,
		styles.SuccessText.Render("● SYSTEM ONLINE"),
		styles.FaintText.Render("v3.0.1 (Business Ed.)"),
	)
	return m.renderTitledBox("Navigation", strings.Join(lines, "\n"), width, height, focused)
}

// renderGrid lays out the four widgets in two rows.
func (m Model) renderGrid(width, height int) string {
	topHeight := height / 2
	bottomHeight := height - topHeight

	chartWidth := width * 2 / 3
	logWidth := width * 9 / 20

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderRevenue(chartWidth, topHeight),
		m.renderSecurity(width-chartWidth, topHeight),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderOpsLog(logWidth, bottomHeight),
		m.renderInfrastructure(width-logWidth, bottomHeight),
	)
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

func (m Model) renderRevenue(width, height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	innerWidth, innerHeight := width-2, height-2

	revenues := mockdata.Revenues(m.series)
	var summary string
	if n := len(m.series); n > 0 {
		last := m.series[n-1]
		summary = styles.MutedText.Render("Latest ") +
			styles.SuccessText.Render("$"+humanize.Comma(int64(last.Revenue))) +
			styles.MutedText.Render("  Users ") +
			styles.InfoText.Render(humanize.Comma(int64(last.Users)))
	}

	lines := []string{summary}
	for _, row := range areaChart(revenues, innerWidth, innerHeight-2) {
		lines = append(lines, styles.AccentText.Render(row))
	}
	axisRight := fmt.Sprintf("D%d", len(m.series))
	axis := "D1" + strings.Repeat(" ", max(innerWidth-2-len(axisRight), 1)) + axisRight
	lines = append(lines, styles.FaintText.Render(axis))

	return m.renderTitledBox("Revenue Trajectory (Last 14 Days)", strings.Join(lines, "\n"), width, height, false)
}

func (m Model) renderSecurity(width, height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	radar := bg.Render("(", styles.FaintText) + bg.Spaces(1) + m.radar.View() + bg.Spaces(1) + bg.Render(")", styles.FaintText)
	block := lipgloss.JoinVertical(lipgloss.Center,
		radar,
		"",
		styles.SuccessText.Render("Fortress Active"),
		styles.MutedText.Render("GDPR & SOC2 Compliant"),
	)
	content := lipgloss.Place(width-2, height-2, lipgloss.Center, lipgloss.Center, block,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Surface)))
	return m.renderTitledBox("Security", content, width, height, false)
}

func (m Model) renderOpsLog(width, height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	innerWidth, innerHeight := width-2, height-2

	if len(m.snapshot.Entries) == 0 {
		return m.renderTitledBox("Operations Log", styles.MutedText.Render("Awaiting events…"), width, height, false)
	}

	lines := make([]string, 0, innerHeight)
	for _, e := range m.snapshot.Entries {
		if len(lines) == innerHeight {
			break
		}
		lines = append(lines, m.formatEntry(e, innerWidth, styles))
	}
	if innerHeight > feed.HistoryLimit+1 && !m.snapshot.LastFired.IsZero() {
		lines = append(lines, "", styles.FaintText.Render("last event "+m.snapshot.LastFired.Local().Format(feed.TimestampLayout)))
	}
	return m.renderTitledBox("Operations Log", strings.Join(lines, "\n"), width, height, false)
}

// formatEntry renders one log line: a category bar, the timestamp and the message.
func (m Model) formatEntry(e feed.Entry, width int, styles Styles) string {
	bar := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.CategoryColor(e.Category))).
		Background(lipgloss.Color(m.theme.Surface)).
		Render("▌")
	room := width - 3 - len(e.Timestamp)
	return bar + " " + styles.FaintText.Render(e.Timestamp) + " " + styles.Text.Render(truncate(e.Message, room))
}

func (m Model) renderInfrastructure(width, height int) string {
	innerWidth := width - 2
	focused := m.focus == paneServices
	cardWidth := innerWidth / 2

	cards := make([]string, len(m.services))
	for i, svc := range m.services {
		cards[i] = m.renderServiceCard(svc, cardWidth, focused && i == m.serviceCursor)
	}

	var rows []string
	for i := 0; i < len(cards); i += 2 {
		if i+1 < len(cards) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i], cards[i+1]))
		} else {
			rows = append(rows, cards[i])
		}
	}
	return m.renderTitledBox("Core Infrastructure", lipgloss.JoinVertical(lipgloss.Left, rows...), width, height, focused)
}

// renderServiceCard draws a two-line card: name, then status and load bar.
func (m Model) renderServiceCard(svc mockdata.Service, width int, selected bool) string {
	cardBg, border := m.theme.SurfaceAlt, m.theme.Border
	if selected {
		cardBg, border = m.theme.FocusBg, m.theme.BorderFocus
	}
	styles := m.theme.Styles().WithBackground(cardBg)
	inner := max(width-4, 1)

	nameStyle := styles.Text.Bold(true)
	if svc.Idle() {
		nameStyle = styles.MutedText
	}
	name := nameStyle.Render(truncate(svc.Name, inner))

	dot := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.ServiceColor(svc))).
		Background(lipgloss.Color(cardBg)).
		Render("●")
	status := dot + styles.MutedText.Render(" "+svc.Status)
	pct := styles.FaintText.Render(fmt.Sprintf("%3d%%", svc.Load))

	statusLine := status
	if barWidth := inner - lipgloss.Width(status) - lipgloss.Width(pct) - 2; barWidth >= 3 {
		bar := m.loadBar
		bar.Width = barWidth
		bar.FullColor = m.theme.ServiceColor(svc)
		statusLine = status + " " + bar.ViewAs(float64(svc.Load)/100) + " " + pct
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(m.theme.Surface)).
		Background(lipgloss.Color(cardBg)).
		Padding(0, 1).
		Width(width - 2).
		Render(name + "\n" + truncateStyled(statusLine, inner))
}
