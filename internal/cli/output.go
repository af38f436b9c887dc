package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CLI output styles.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliKey     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#3B82F6"}).Bold(true)
	cliCard    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}).
			Padding(0, 1)
)

func symSuccess() string { return cliSuccess.Render("✓") }
func symWarning() string { return cliWarn.Render("!") }

type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines aligns keys into a column.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		width = max(width, len(p.key))
	}

	lines := make([]string, len(pairs))
	for i, p := range pairs {
		key := fmt.Sprintf("%-*s", width, p.key)
		lines[i] = cliKey.Render(key) + "  " + p.value
	}
	return strings.Join(lines, "\n")
}

// renderSuccessCard draws a bordered card with a check-marked title.
func renderSuccessCard(title string, details ...string) string {
	body := symSuccess() + " " + title
	if len(details) > 0 {
		body += "\n\n" + strings.Join(details, "\n")
	}
	return cliCard.Render(body)
}

// yesNo formats a flag for display.
func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return cliMuted.Render("no")
}
