package browser

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pokebrowse/internal/theme"
)

// Every color is adaptive; ApplyTheme picks the light or dark variant.
var (
	// Colors
	primaryColor = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#FF5350"} // Pokédex red
	accentColor  = lipgloss.AdaptiveColor{Light: "#1565C0", Dark: "#64B5F6"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#B00020", Dark: "#FF6E6E"}
	warningColor = lipgloss.AdaptiveColor{Light: "#8D6E00", Dark: "#FFD54F"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#9E9E9E"}
	textColor    = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#EDEDED"}
	borderColor  = lipgloss.AdaptiveColor{Light: "#BDBDBD", Dark: "#4A4A4A"}

	// Header
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingRight(2)

	toggleStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(borderColor).
			MarginBottom(1)

	// Cards
	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Foreground(textColor).
			Padding(0, 1).
			MarginRight(1)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	cardTypeStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Italic(true)

	cardLabelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Status lines
	summaryStyle = lipgloss.NewStyle().
			Foreground(textColor).
			MarginBottom(1)

	noticeStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			MarginBottom(1)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			PaddingTop(2).
			PaddingBottom(2)

	errorTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor).
			MarginBottom(1)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 2)

	disabledButtonStyle = buttonStyle.
				Foreground(mutedColor).
				BorderForeground(borderColor).
				Bold(false)

	pageIndicatorStyle = lipgloss.NewStyle().
				Foreground(textColor).
				Padding(1, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(borderColor).
			MarginTop(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)
)

// ApplyTheme makes t the global display attribute every adaptive color
// resolves against. It is the theme store's applier.
func ApplyTheme(t theme.Theme) {
	lipgloss.SetHasDarkBackground(t == theme.Dark)
}
