package types

import "strings"

const (
	// WebsiteKey is the links entry used for the web platform and as the
	// fallback for every other platform.
	WebsiteKey = "website"

	// PlaceholderLink is the inert href used when no destination exists.
	PlaceholderLink = "#"
)

// ResolveLink maps a product and platform to a navigable URL.
// web reads the website entry; other platforms read their own entry and
// fall back to website. When neither exists the placeholder is returned.
func ResolveLink(p Product, platform Platform) string {
	key := string(platform)
	if platform == Web {
		key = WebsiteKey
	}
	if v, ok := p.Link(key); ok {
		return v
	}
	if v, ok := p.Link(WebsiteKey); ok {
		return v
	}
	return PlaceholderLink
}

// ResolvedLink pairs a platform with its resolved destination
type ResolvedLink struct {
	Platform Platform
	URL      string
}

// ResolveLinks resolves one link per platform in the product's order.
func ResolveLinks(p Product) []ResolvedLink {
	out := make([]ResolvedLink, 0, len(p.platforms))
	for _, platform := range p.platforms {
		out = append(out, ResolvedLink{Platform: platform, URL: ResolveLink(p, platform)})
	}
	return out
}

// Slugify lowercases name and collapses every run of characters outside
// [a-z0-9] into a single dash.
// "Doodle Duel" -> "doodle-duel", "AI Diary" -> "ai-diary"
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	return b.String()
}
