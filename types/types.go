package types

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/list"
)

// Platform is a deployment target a product ships on.
type Platform string

const (
	Web     Platform = "web"
	IOS     Platform = "ios"
	Android Platform = "android"
	Mac     Platform = "mac"
)

// AllPlatforms lists the known platforms in display order.
var AllPlatforms = []Platform{Web, IOS, Android, Mac}

// ParsePlatform validates a raw platform tag.
func ParsePlatform(raw string) (Platform, error) {
	p := Platform(strings.TrimSpace(strings.ToLower(raw)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown platform %q; expected web|ios|android|mac", raw)
	}
	return p, nil
}

// Valid reports whether p is one of the known platforms.
func (p Platform) Valid() bool {
	return slices.Contains(AllPlatforms, p)
}

// String returns the platform tag
func (p Platform) String() string { return string(p) }

// Label returns a human readable platform name
func (p Platform) Label() string {
	switch p {
	case Web:
		return "Web"
	case IOS:
		return "iOS"
	case Android:
		return "Android"
	case Mac:
		return "Mac"
	default:
		return ""
	}
}

// Icon returns a single-glyph badge for terminal output
func (p Platform) Icon() string {
	switch p {
	case Web:
		return "◍"
	case IOS:
		return "◆"
	case Android:
		return "▣"
	case Mac:
		return "▭"
	default:
		return ""
	}
}

// Action is the call to action shown on a product link for this platform.
func (p Platform) Action() string {
	if p == Web {
		return "Visit"
	}
	return "Download"
}

// Product represents a portfolio entry
type Product struct {
	name        string
	description string
	platforms   []Platform
	featured    bool
	logo        string
	links       map[string]string
	slug        string
}

// NewProduct creates a new Product. Slices and maps are copied so the
// returned value cannot be mutated through the arguments.
func NewProduct(name, description string, platforms []Platform, featured bool, logo string, links map[string]string) Product {
	return Product{
		name:        name,
		description: description,
		platforms:   slices.Clone(platforms),
		featured:    featured,
		logo:        logo,
		links:       maps.Clone(links),
		slug:        Slugify(name),
	}
}

// Getters for Product fields
func (p Product) Name() string             { return p.name }
func (p Product) Featured() bool           { return p.featured }
func (p Product) Logo() string             { return p.logo }
func (p Product) Slug() string             { return p.slug }
func (p Product) Platforms() []Platform    { return slices.Clone(p.platforms) }
func (p Product) Links() map[string]string { return maps.Clone(p.links) }

// Link returns the raw link stored under key without any fallback.
func (p Product) Link(key string) (string, bool) {
	v, ok := p.links[key]
	return v, ok && v != ""
}

// list.Item interface implementation
func (p Product) Title() string       { return p.name }
func (p Product) Description() string { return p.description }
func (p Product) FilterValue() string { return p.name }

// Compile-time check that Product implements list.Item
var _ list.Item = Product{}

// Statistic is a headline number shown with an animated counter
type Statistic struct {
	value  int
	suffix string
	label  string
}

// NewStatistic creates a new Statistic
func NewStatistic(value int, suffix, label string) Statistic {
	return Statistic{value: value, suffix: suffix, label: label}
}

func (s Statistic) Value() int     { return s.value }
func (s Statistic) Suffix() string { return s.suffix }
func (s Statistic) Label() string  { return s.label }

// ContactLink is an entry of the contact section
type ContactLink struct {
	label string
	url   string
	icon  string
}

// NewContactLink creates a new ContactLink
func NewContactLink(label, url, icon string) ContactLink {
	return ContactLink{label: label, url: url, icon: icon}
}

func (c ContactLink) Label() string { return c.label }
func (c ContactLink) Icon() string  { return c.icon }

// URL returns the destination, or PlaceholderLink when none was given.
func (c ContactLink) URL() string {
	if strings.TrimSpace(c.url) == "" {
		return PlaceholderLink
	}
	return c.url
}

// Placeholder reports whether the link has no real destination.
func (c ContactLink) Placeholder() bool { return c.URL() == PlaceholderLink }

// Mail reports whether the link opens mail composition.
func (c ContactLink) Mail() bool { return strings.HasPrefix(c.url, "mailto:") }

// External reports whether the link should open in a new browsing context.
func (c ContactLink) External() bool { return !c.Placeholder() && !c.Mail() }

// Site holds the page-level copy and branding
type Site struct {
	Name           string
	Logo           string
	Headline       string
	Highlight      string
	HeadlineSuffix string
	Subtitle       string
	// Emphasis lists phrases of Subtitle rendered in bold.
	Emphasis       []string
	PortfolioTitle string
	PortfolioBlurb string
	ContactTitle   string
	ContactBlurb   string
	Owner          string
}

// Catalog is the immutable, ordered content of the page
type Catalog struct {
	site     Site
	products []Product
	stats    []Statistic
	contacts []ContactLink
}

// NewCatalog creates a new Catalog preserving the given order
func NewCatalog(site Site, products []Product, stats []Statistic, contacts []ContactLink) Catalog {
	return Catalog{
		site:     site,
		products: slices.Clone(products),
		stats:    slices.Clone(stats),
		contacts: slices.Clone(contacts),
	}
}

func (c Catalog) Site() Site              { return c.site }
func (c Catalog) Products() []Product     { return slices.Clone(c.products) }
func (c Catalog) Stats() []Statistic      { return slices.Clone(c.stats) }
func (c Catalog) Contacts() []ContactLink { return slices.Clone(c.contacts) }

// Product looks up a product by slug
func (c Catalog) Product(slug string) (Product, bool) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	for _, p := range c.products {
		if p.slug == slug {
			return p, true
		}
	}
	return Product{}, false
}

// Logos returns every asset path the page references, site logo first,
// without duplicates.
func (c Catalog) Logos() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(path string) {
		if path == "" {
			return
		}
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		out = append(out, path)
	}
	add(c.site.Logo)
	for _, p := range c.products {
		add(p.logo)
	}
	return out
}

// CatalogSource is the core abstraction for data access.
// The TUI, web server and MCP server all read through it.
type CatalogSource interface {
	GetCatalog(ctx context.Context) (Catalog, error)
}
