package ui

import "github.com/charmbracelet/lipgloss"

// 16-color ANSI Dracula palette
var (
	DraculaForeground = lipgloss.AdaptiveColor{Light: "0", Dark: "255"}
	DraculaPurple     = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	DraculaPink       = lipgloss.AdaptiveColor{Light: "13", Dark: "13"}
	DraculaCyan       = lipgloss.AdaptiveColor{Light: "14", Dark: "14"}
	DraculaGreen      = lipgloss.AdaptiveColor{Light: "10", Dark: "10"}
	DraculaComment    = lipgloss.AdaptiveColor{Light: "7", Dark: "7"}
	DraculaOrange     = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}
	DraculaRed        = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}

	// Header
	SiteNameStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true).
			Padding(0, 1)
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(DraculaComment).
			Italic(true)
	StatValueStyle = lipgloss.NewStyle().
			Foreground(DraculaGreen).
			Bold(true)
	StatLabelStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)

	// Section tabs
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true).
			Padding(0, 1)
	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(DraculaComment).
				Padding(0, 1)

	// List styles
	TitleStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true).
			Padding(0, 1)
	FeaturedBadgeStyle = lipgloss.NewStyle().
				Foreground(DraculaOrange).
				Bold(true)
	PlaceholderRowStyle = lipgloss.NewStyle().
				Foreground(DraculaComment).
				Faint(true)

	// Detail view styles
	DetailTitleStyle = lipgloss.NewStyle().
				Foreground(DraculaPink).
				Bold(true)
	DetailTaglineStyle = lipgloss.NewStyle().
				Foreground(DraculaCyan).
				Italic(true)
	SectionLabelStyle = lipgloss.NewStyle().
				Foreground(DraculaPurple).
				Bold(true)
	LinkActiveStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true)
	LinkStyle = lipgloss.NewStyle().
			Foreground(DraculaForeground)
	LinkURLStyle = lipgloss.NewStyle().
			Foreground(DraculaCyan).
			Underline(true)
	LinkMissingStyle = lipgloss.NewStyle().
				Foreground(DraculaComment).
				Italic(true)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)
	ErrorStyle = lipgloss.NewStyle().
			Foreground(DraculaRed)
)
