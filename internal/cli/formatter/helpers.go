package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}

	return boxStyle.Render(content)
}

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderScoreBar renders a 0-100 score as a colored bar like [████░░░░]  72.
// Green above 66, yellow between 33 and 66, red below 33.
func RenderScoreBar(score float64, width int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	if width < 2 {
		width = 2
	}

	filled := int(score / 100 * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if score < 33 {
		style = StyleRed
	} else if score < 66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %5.1f", style.Render(bar), score)
}
