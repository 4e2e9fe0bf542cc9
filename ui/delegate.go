package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/cybersky/showcase/reveal"
	"github.com/cybersky/showcase/types"
)

const rowIndent = "    "

// ProductDelegate renders Product items. Rows whose product has not been
// revealed yet are drawn as dimmed placeholders.
type ProductDelegate struct {
	revealed *reveal.Tracker[string]
}

// Height returns the height of a list item (3 lines)
func (d ProductDelegate) Height() int {
	return 3
}

func (d ProductDelegate) Spacing() int {
	return 0
}

func (d ProductDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render renders a single product item
func (d ProductDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	product, ok := item.(types.Product)
	if !ok {
		return
	}

	if d.revealed != nil && !d.revealed.Revealed(product.Slug()) {
		fmt.Fprint(w, placeholderRow(product, m.Width()))
		return
	}

	isSelected := index == m.Index()

	// Line 1: Name + New badge ... platform icons
	badge := ""
	if product.Featured() {
		badge = " " + FeaturedBadgeStyle.Render("New")
	}
	icons := make([]string, 0, len(product.Platforms()))
	for _, p := range product.Platforms() {
		icons = append(icons, p.Icon())
	}
	iconStr := strings.Join(icons, " ")

	nameAvailable := m.Width() - len(rowIndent) - lipgloss.Width(badge) - runewidth.StringWidth(iconStr) - 1
	name := fit(product.Name(), nameAvailable)

	var line1 string
	if isSelected {
		line1 = lipgloss.NewStyle().Foreground(DraculaCyan).Bold(true).Render("  ▸ ") +
			lipgloss.NewStyle().Foreground(DraculaPink).Bold(true).Render(name) +
			badge + " " +
			lipgloss.NewStyle().Foreground(DraculaGreen).Render(iconStr)
	} else {
		line1 = rowIndent +
			lipgloss.NewStyle().Foreground(DraculaCyan).Render(name) +
			badge + " " +
			lipgloss.NewStyle().Foreground(DraculaComment).Render(iconStr)
	}

	// Line 2: description
	line2 := rowIndent + lipgloss.NewStyle().Foreground(DraculaForeground).
		Render(truncate(product.Description(), m.Width()-len(rowIndent)))

	// Line 3: platform labels
	labels := make([]string, 0, len(product.Platforms()))
	for _, p := range product.Platforms() {
		labels = append(labels, p.Label())
	}
	line3 := rowIndent + lipgloss.NewStyle().Foreground(DraculaComment).
		Render(truncate(strings.Join(labels, " • "), m.Width()-len(rowIndent)))

	fmt.Fprint(w, line1+"\n"+line2+"\n"+line3)
}

func placeholderRow(p types.Product, width int) string {
	bar := func(n int) string {
		if limit := width - len(rowIndent); n > limit {
			n = limit
		}
		if n < 1 {
			n = 1
		}
		return rowIndent + PlaceholderRowStyle.Render(strings.Repeat("░", n))
	}
	return bar(runewidth.StringWidth(p.Name())) + "\n" + bar(24) + "\n" + bar(12)
}

// truncate shortens s to width cells, ending with an ellipsis when cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// fit truncates s to width cells and pads it with spaces to exactly width.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(truncate(s, width), width)
}
