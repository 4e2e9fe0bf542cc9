package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cybersky/showcase/types"
)

func (m Model) headerView() string {
	name := "showcase"
	subtitle := ""
	if m.loaded {
		site := m.catalog.Site()
		name = site.Name
		subtitle = site.Subtitle
	}
	title := SiteNameStyle.Render(name)
	if subtitle != "" {
		title += SubtitleStyle.Render(truncate(subtitle, m.width-lipgloss.Width(title)-1))
	}

	stats := make([]string, 0, len(m.counters))
	for _, c := range m.counters {
		stats = append(stats, StatValueStyle.Render(c.View())+" "+StatLabelStyle.Render(c.Label()))
	}

	tabs := []string{InactiveTabStyle.Render("Products"), InactiveTabStyle.Render("Contact")}
	if m.state == ContactView {
		tabs[1] = ActiveTabStyle.Render("Contact")
	} else {
		tabs[0] = ActiveTabStyle.Render("Products")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		" "+strings.Join(stats, "   "),
		strings.Join(tabs, " "),
	)
}

func (m Model) statusView() string {
	if m.err != nil {
		return ErrorStyle.Render(" " + m.err.Error())
	}
	status := m.statusMsg
	if m.loading && m.loaded {
		status = m.spinner.View() + " " + status
	}
	return StatusBarStyle.Render(" " + status)
}

// renderDetail lays out one product with a line per resolved link. The link
// at linkIndex is highlighted as the copy target.
func renderDetail(p types.Product, linkIndex int, width int) string {
	var b strings.Builder

	title := DetailTitleStyle.Render(p.Name())
	if p.Featured() {
		title += " " + FeaturedBadgeStyle.Render("New")
	}
	b.WriteString(title + "\n")

	desc := DetailTaglineStyle
	if width > 4 {
		desc = desc.Width(width - 2)
	}
	b.WriteString(desc.Render(p.Description()) + "\n\n")

	b.WriteString(SectionLabelStyle.Render("Links") + "\n")
	links := types.ResolveLinks(p)
	if len(links) == 0 {
		b.WriteString(LinkMissingStyle.Render("  no platforms listed") + "\n")
	}
	for i, l := range links {
		marker, style := "  ", LinkStyle
		if i == linkIndex {
			marker, style = "▸ ", LinkActiveStyle
		}
		label := fmt.Sprintf("%s %-8s %-9s", l.Platform.Icon(), l.Platform.Label(), l.Platform.Action())
		url := LinkURLStyle.Render(l.URL)
		if l.URL == types.PlaceholderLink {
			url = LinkMissingStyle.Render("no link")
		}
		b.WriteString(marker + style.Render(label) + " " + url + "\n")
	}

	if logo := p.Logo(); logo != "" {
		b.WriteString("\n" + StatusBarStyle.Render("logo "+logo) + "\n")
	}
	return b.String()
}

func renderContacts(c types.Catalog, selected int) string {
	var b strings.Builder
	site := c.Site()
	if site.ContactTitle != "" {
		b.WriteString(DetailTitleStyle.Render(site.ContactTitle) + "\n")
	}
	if site.ContactBlurb != "" {
		b.WriteString(DetailTaglineStyle.Render(site.ContactBlurb) + "\n")
	}
	b.WriteString("\n")

	for i, ct := range c.Contacts() {
		marker, style := "  ", LinkStyle
		if i == selected {
			marker, style = "▸ ", LinkActiveStyle
		}
		url := LinkURLStyle.Render(ct.URL())
		if ct.Placeholder() {
			url = LinkMissingStyle.Render("not configured")
		}
		b.WriteString(marker + style.Render(fmt.Sprintf("%-10s", ct.Label())) + " " + url + "\n")
	}
	return b.String()
}
