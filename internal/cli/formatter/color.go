package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// priorityStyles maps each priority level to its display style.
var priorityStyles = map[domain.Priority]lipgloss.Style{
	domain.PriorityHigh:   StyleRed,
	domain.PriorityMedium: StyleYellow,
	domain.PriorityLow:    StyleGreen,
}

// priorityIndicators maps each priority level to a colored bullet label.
var priorityIndicators = map[domain.Priority]string{
	domain.PriorityHigh:   StyleRed.Render("● HIGH"),
	domain.PriorityMedium: StyleYellow.Render("● MEDIUM"),
	domain.PriorityLow:    StyleGreen.Render("● LOW"),
}

// PriorityColor returns the lipgloss style for the given priority level.
func PriorityColor(p domain.Priority) lipgloss.Style {
	if style, ok := priorityStyles[p]; ok {
		return style
	}
	return StyleDim
}

// PriorityIndicator returns a colored indicator string such as "● HIGH".
func PriorityIndicator(p domain.Priority) string {
	if indicator, ok := priorityIndicators[p]; ok {
		return indicator
	}
	return StyleDim.Render("● UNKNOWN")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
