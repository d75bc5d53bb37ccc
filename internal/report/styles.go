package report

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor   = lipgloss.Color("#A78BFA") // Purple
	secondaryColor = lipgloss.Color("#10B981") // Green
	warningColor   = lipgloss.Color("#F59E0B") // Amber
	errorColor     = lipgloss.Color("#F87171") // Red
	mutedColor     = lipgloss.Color("#9CA3AF") // Gray
	borderColor    = lipgloss.Color("#6B7280")
)

// palette holds the styles used by the text renderer. The plain palette is
// used when output is not a terminal.
type palette struct {
	title      lipgloss.Style
	label      lipgloss.Style
	strategist lipgloss.Style
	critic     lipgloss.Style
	judge      lipgloss.Style
	muted      lipgloss.Style
	errorText  lipgloss.Style
	box        lipgloss.Style
}

func styledPalette() palette {
	return palette{
		title:      lipgloss.NewStyle().Bold(true).Foreground(primaryColor),
		label:      lipgloss.NewStyle().Foreground(mutedColor).Width(12),
		strategist: lipgloss.NewStyle().Bold(true).Foreground(primaryColor),
		critic:     lipgloss.NewStyle().Foreground(warningColor),
		judge:      lipgloss.NewStyle().Foreground(secondaryColor),
		muted:      lipgloss.NewStyle().Foreground(mutedColor).Italic(true),
		errorText:  lipgloss.NewStyle().Bold(true).Foreground(errorColor),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1),
	}
}

func plainPalette() palette {
	plain := lipgloss.NewStyle()
	return palette{
		title:      plain,
		label:      plain.Width(12),
		strategist: plain,
		critic:     plain,
		judge:      plain,
		muted:      plain,
		errorText:  plain,
		box:        plain,
	}
}
